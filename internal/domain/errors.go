package domain

import "errors"

var (
	ErrUnknownObjective = errors.New("objective kind not in vocabulary")
	ErrUnknownZone      = errors.New("zone not in vocabulary")
	ErrInvalidDuration  = errors.New("invalid duration")
	ErrEmptyVocabulary  = errors.New("vocabulary is empty")
)
