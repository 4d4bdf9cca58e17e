package planner

import (
	"cmp"
	"slices"

	"github.com/sandeepkv93/taskline/internal/model"
)

// Sort orders tasks by field without touching the input. Ties keep their
// relative order and SortNone returns the input order.
func Sort(tasks []model.Task, field model.SortField, order model.SortOrder) []model.Task {
	out := slices.Clone(tasks)
	key := func(t model.Task) int {
		switch field {
		case model.SortUrgency:
			return t.Urgency
		case model.SortImportance:
			return t.Importance
		default:
			return 0
		}
	}
	slices.SortStableFunc(out, func(a, b model.Task) int {
		c := cmp.Compare(key(a), key(b))
		if order == model.SortDesc {
			return -c
		}
		return c
	})
	return out
}

// Sorted returns the collection ordered by field.
func (p *Planner) Sorted(field model.SortField, order model.SortOrder) []model.Task {
	return Sort(p.Tasks(), field, order)
}

// SortState is the sort bar: picking the active field again flips the order,
// picking a new field starts descending.
type SortState struct {
	Field model.SortField
	Order model.SortOrder
}

func DefaultSortState() SortState {
	return SortState{Field: model.SortNone, Order: model.SortDesc}
}

func (s SortState) Choose(field model.SortField) SortState {
	if field == s.Field {
		return SortState{Field: field, Order: s.Order.Toggle()}
	}
	return SortState{Field: field, Order: model.SortDesc}
}
