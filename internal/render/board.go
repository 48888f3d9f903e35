package render

import (
	"fmt"
	"time"

	"github.com/5YPEXE/albion-objectives-bot/internal/domain"
)

// Entry is one objective line on the board.
type Entry struct {
	Name  string
	Value string
}

// Board is the rendered status message, ready for publishing. Building it
// has no side effects; publishing is the caller's concern.
type Board struct {
	Title       string
	Description string
	Entries     []Entry
	Timestamp   time.Time
}

const (
	boardTitle        = "🟢 Active Objectives"
	maintenanceBanner = "⚠️ **Server Maintenance.** Timers Stopped."
	allClearBanner    = "✅ No active objectives at the moment."
)

// Build projects the current objective list and availability flag into a
// board. Objectives must already be ordered by effective deadline. While the
// server is offline the board carries only the maintenance banner; the
// records survive but their countdowns are withheld.
func Build(objectives []domain.Objective, online bool, now time.Time) Board {
	board := Board{Title: boardTitle, Timestamp: now}

	if !online {
		board.Description = maintenanceBanner
		return board
	}
	if len(objectives) == 0 {
		board.Description = allClearBanner
		return board
	}

	board.Entries = make([]Entry, 0, len(objectives))
	for _, obj := range objectives {
		board.Entries = append(board.Entries, Entry{
			Name:  "📍 " + obj.Zone,
			Value: fmt.Sprintf("💰 %s\n%s", obj.Kind, countdown(obj)),
		})
	}
	return board
}

func countdown(obj domain.Objective) string {
	if obj.Status == domain.ObjectiveStatusPaused {
		return "⏸️ **Stopped** (" + remaining(obj.RemainingSeconds) + " remaining)"
	}
	utc := time.Unix(obj.EndTime, 0).UTC().Format("15:04")
	return fmt.Sprintf("⌛ <t:%d:t> • <t:%d:R> • `%s UTC`", obj.EndTime, obj.EndTime, utc)
}

// remaining formats seconds as "Xh Ym", dropping the hour part when zero.
func remaining(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
