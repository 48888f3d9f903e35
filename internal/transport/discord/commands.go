package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/5YPEXE/albion-objectives-bot/internal/app"
	"github.com/5YPEXE/albion-objectives-bot/internal/domain"
)

const (
	commandAdd   = "addobjectives"
	commandClear = "clear"

	optionObjective = "obj"
	optionZone      = "zone"
	optionHours     = "hours"
	optionMinutes   = "minutes"
)

// handlerTimeout bounds interaction-driven work. The service serializes all
// mutations behind one mutex, so a command hanging on the database must not
// hold it indefinitely and wedge the reconcile ticks.
const handlerTimeout = 30 * time.Second

// ObjectiveService is the surface of the tracker the command handlers need.
type ObjectiveService interface {
	CreateObjective(ctx context.Context, in app.CreateObjectiveInput) (domain.Objective, error)
	ClearAll(ctx context.Context) error
	Autocomplete(field app.AutocompleteField, partial string) []string
}

// Handler wires slash commands and autocomplete to the tracker.
type Handler struct {
	service ObjectiveService
	logger  *log.Logger
}

func NewHandler(service ObjectiveService, logger *log.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register overwrites the guild's command set with the bot's two commands.
func (h *Handler) Register(s *discordgo.Session, appID, guildID string) error {
	var zero float64
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        commandAdd,
			Description: "Add a new objective",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:         discordgo.ApplicationCommandOptionString,
					Name:         optionObjective,
					Description:  "Type",
					Required:     true,
					Autocomplete: true,
				},
				{
					Type:         discordgo.ApplicationCommandOptionString,
					Name:         optionZone,
					Description:  "Map",
					Required:     true,
					Autocomplete: true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        optionHours,
					Description: "Hours",
					Required:    true,
					MinValue:    &zero,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        optionMinutes,
					Description: "Minutes",
					Required:    true,
					MinValue:    &zero,
				},
			},
		},
		{
			Name:        commandClear,
			Description: "Clear all objectives",
		},
	}

	if _, err := s.ApplicationCommandBulkOverwrite(appID, guildID, commands); err != nil {
		return fmt.Errorf("register commands: %w", err)
	}
	return nil
}

// HandleInteraction is the discordgo handler for all interactions the bot
// receives.
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommandAutocomplete:
		h.handleAutocomplete(s, i)
	case discordgo.InteractionApplicationCommand:
		switch i.ApplicationCommandData().Name {
		case commandAdd:
			content, ephemeral := h.createReply(i)
			h.reply(s, i, content, ephemeral)
		case commandClear:
			content, ephemeral := h.clearReply()
			h.reply(s, i, content, ephemeral)
		}
	}
}

func (h *Handler) handleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var field app.AutocompleteField
	var partial string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt == nil || !opt.Focused {
			continue
		}
		partial = opt.StringValue()
		if opt.Name == optionZone {
			field = app.FieldZone
		} else {
			field = app.FieldObjective
		}
	}

	matches := h.service.Autocomplete(field, partial)
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(matches))
	for _, m := range matches {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: m, Value: m})
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	})
	if err != nil {
		h.logger.Printf("WARN: autocomplete respond: %v", err)
	}
}

// createReply runs the create command and renders the response text. The
// bool marks the reply as ephemeral.
func (h *Handler) createReply(i *discordgo.InteractionCreate) (string, bool) {
	in := app.CreateObjectiveInput{}
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case optionObjective:
			in.Kind = opt.StringValue()
		case optionZone:
			in.Zone = opt.StringValue()
		case optionHours:
			in.Hours = int(opt.IntValue())
		case optionMinutes:
			in.Minutes = int(opt.IntValue())
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	obj, err := h.service.CreateObjective(ctx, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownObjective),
			errors.Is(err, domain.ErrUnknownZone):
			return "❌ Please select valid options from the lists!", true
		case errors.Is(err, domain.ErrInvalidDuration):
			return "❌ Hours and minutes must not be negative.", true
		default:
			h.logger.Printf("create objective: %v", err)
			return "❌ Could not save the objective, try again.", true
		}
	}

	var when string
	if obj.Status == domain.ObjectiveStatusActive {
		when = fmt.Sprintf("Ends at `%s UTC`", time.Unix(obj.EndTime, 0).UTC().Format("15:04"))
	} else {
		// Server is down; the timer starts once it comes back.
		when = fmt.Sprintf("Starts paused, `%dh %dm` owed", obj.RemainingSeconds/3600, (obj.RemainingSeconds%3600)/60)
	}
	return fmt.Sprintf("✅ **%s** added **%s** in **%s** (%s).", requesterName(i), obj.Kind, obj.Zone, when), false
}

func (h *Handler) clearReply() (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	if err := h.service.ClearAll(ctx); err != nil {
		h.logger.Printf("clear objectives: %v", err)
		return "❌ Could not clear objectives, try again.", true
	}
	return "🗑️ All objectives cleared.", true
}

func (h *Handler) reply(s *discordgo.Session, i *discordgo.InteractionCreate, content string, ephemeral bool) {
	data := &discordgo.InteractionResponseData{Content: content}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		h.logger.Printf("WARN: interaction respond: %v", err)
	}
}

func requesterName(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.Username
	}
	if i.User != nil {
		return i.User.Username
	}
	return "someone"
}
