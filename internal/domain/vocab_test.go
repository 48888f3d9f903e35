package domain

import (
	"fmt"
	"reflect"
	"testing"
)

func TestVocabulary_Contains(t *testing.T) {
	v := Vocabulary{"4.4 Ore", "Black Monastery"}

	if !v.Contains("4.4 Ore") {
		t.Fatalf("expected exact entry to be contained")
	}
	if v.Contains("4.4 ore") {
		t.Fatalf("Contains must be case-sensitive, membership is exact")
	}
	if v.Contains("Ore") {
		t.Fatalf("partial labels are not members")
	}
}

func TestVocabulary_Match(t *testing.T) {
	ores := Vocabulary{
		"Common(Green) Vortex", "Uncommon(Blue) Vortex",
		"Common(Green) Power Core", "Rare(Purple) Power Core",
		"4.4 Ore", "5.4 Ore", "6.4 Ore", "7.4 Ore", "8.4 Ore",
		"4.4 Fiber",
	}

	t.Run("case-insensitive match in vocabulary order", func(t *testing.T) {
		got := ores.Match("ore")
		want := []string{"4.4 Ore", "5.4 Ore", "6.4 Ore", "7.4 Ore", "8.4 Ore"}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("matches start at word boundaries only", func(t *testing.T) {
		if got := ores.Match("core"); len(got) != 2 {
			t.Fatalf("expected the two Power Core entries, got %v", got)
		}
		if got := ores.Match("purple"); len(got) != 1 {
			t.Fatalf("expected the purple core after its paren boundary, got %v", got)
		}
	})

	t.Run("empty partial matches everything", func(t *testing.T) {
		if got := ores.Match(""); len(got) != len(ores) {
			t.Fatalf("expected %d matches, got %d", len(ores), len(got))
		}
	})

	t.Run("no match returns empty slice", func(t *testing.T) {
		if got := ores.Match("wood"); len(got) != 0 {
			t.Fatalf("expected no matches, got %v", got)
		}
	})

	t.Run("caps at 25 entries", func(t *testing.T) {
		var big Vocabulary
		for i := 0; i < 40; i++ {
			big = append(big, fmt.Sprintf("entry %d", i))
		}
		if got := big.Match("entry"); len(got) != MaxMatches {
			t.Fatalf("expected %d matches, got %d", MaxMatches, len(got))
		}
	})
}

func TestObjective_Expired(t *testing.T) {
	active := Objective{Status: ObjectiveStatusActive, EndTime: 1000}

	if !active.Expired(1000) {
		t.Fatalf("deadline reached exactly now must count as expired")
	}
	if active.Expired(999) {
		t.Fatalf("deadline in the future must not be expired")
	}

	paused := Objective{Status: ObjectiveStatusPaused, RemainingSeconds: 0}
	if paused.Expired(5000) {
		t.Fatalf("paused objectives never expire, their clock is stopped")
	}
}
