package schedule

import (
	"sort"

	"github.com/jarvishq/jarvis/internal/clock"
	"github.com/jarvishq/jarvis/internal/models"
)

// SortForList returns the todos in list-view order without mutating the
// input. Once any todo in the day carries a manual order index, that
// ordering wins: ordered todos sort by their index and unordered ones
// trail in their original relative order. Otherwise the fallback is
// start time ascending, then timeblocked-but-unstarted todos by
// duration, then everything else by creation time, oldest first.
func SortForList(todos []models.TodoItem) []models.TodoItem {
	out := append([]models.TodoItem(nil), todos...)

	manual := false
	for _, t := range out {
		if t.Order != nil {
			manual = true
			break
		}
	}

	if manual {
		sort.SliceStable(out, func(i, j int) bool {
			oi, oj := out[i].Order, out[j].Order
			switch {
			case oi != nil && oj != nil:
				return *oi < *oj
			case oi != nil:
				return true
			case oj != nil:
				return false
			default:
				return false
			}
		})
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		ti, tj := sortTier(out[i]), sortTier(out[j])
		if ti != tj {
			return ti < tj
		}
		switch ti {
		case tierTimed:
			return startMinutesOf(out[i]) < startMinutesOf(out[j])
		case tierBlocked:
			return out[i].TimeblockMinutes < out[j].TimeblockMinutes
		default:
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
	})
	return out
}

const (
	tierTimed = iota
	tierBlocked
	tierPlain
)

func sortTier(t models.TodoItem) int {
	if t.StartTime != "" {
		return tierTimed
	}
	if t.TimeblockMinutes > 0 {
		return tierBlocked
	}
	return tierPlain
}

func startMinutesOf(t models.TodoItem) int {
	m, err := clock.ClockToMinutes(t.StartTime)
	if err != nil {
		return clock.MinutesPerDay
	}
	return m
}
