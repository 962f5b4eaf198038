// Package schedule holds the class-scheduling core: conflict detection for
// proposed weekly slots and suggestion of alternative start times.
package schedule

import (
	"context"

	"github.com/rghamilton3/yogitrack-prototype/internal/models"
)

// ClassFinder is the slice of the class store the scheduling core needs.
// FindActiveByDaytime returns an active class holding a slot with the given
// day and time, or nil when no such class exists. excludeClassID, when
// non-empty, removes that class from consideration.
type ClassFinder interface {
	FindActiveByDaytime(ctx context.Context, day, start, excludeClassID string) (*models.Class, error)
}

// ConflictResult reports the outcome of a conflict check. ConflictingSlot is
// the proposed slot that collided, not the stored class's matching slot; the
// two share day and time but may differ in duration.
type ConflictResult struct {
	HasConflict      bool             `json:"hasConflict"`
	ConflictingClass *models.Class    `json:"conflictingClass,omitempty"`
	ConflictingSlot  models.ClassSlot `json:"conflictingSlot"`
}

// startTimes is the candidate grid for alternative suggestions: hourly starts
// from 09:00 through 20:00.
var startTimes = []string{
	"09:00:00", "10:00:00", "11:00:00", "12:00:00",
	"13:00:00", "14:00:00", "15:00:00", "16:00:00",
	"17:00:00", "18:00:00", "19:00:00", "20:00:00",
}

const maxAlternatives = 3

// CheckConflict walks the proposed slots in order and reports the first one
// that collides with an existing active class on (day, time). Evaluation
// stops at the first hit. Store errors propagate unchanged.
func CheckConflict(ctx context.Context, store ClassFinder, slots []models.ClassSlot, excludeClassID string) (ConflictResult, error) {
	for _, slot := range slots {
		existing, err := store.FindActiveByDaytime(ctx, slot.Day, slot.Time, excludeClassID)
		if err != nil {
			return ConflictResult{}, err
		}
		if existing != nil {
			return ConflictResult{
				HasConflict:      true,
				ConflictingClass: existing,
				ConflictingSlot:  slot,
			}, nil
		}
	}
	return ConflictResult{}, nil
}

// SuggestAlternatives scans the candidate grid in ascending order and returns
// up to three conflict-free slots on the same day, carrying the original
// duration. The original time is skipped even when free, since it already
// produced the conflict being resolved. Fewer than three results, possibly
// none, is a valid outcome.
func SuggestAlternatives(ctx context.Context, store ClassFinder, day, originalTime string, duration int) ([]models.ClassSlot, error) {
	alternatives := make([]models.ClassSlot, 0, maxAlternatives)
	for _, start := range startTimes {
		if start == originalTime {
			continue
		}
		probe := models.ClassSlot{Day: day, Time: start, Duration: duration}
		res, err := CheckConflict(ctx, store, []models.ClassSlot{probe}, "")
		if err != nil {
			return nil, err
		}
		if !res.HasConflict {
			alternatives = append(alternatives, probe)
			if len(alternatives) == maxAlternatives {
				break
			}
		}
	}
	return alternatives, nil
}
