// Package state holds the to-do view state and the pure transitions applied to
// it. Nothing here performs I/O; callers feed in the results of remote calls.
package state

import (
	"slices"

	"github.com/Makepad-fr/tada/internal/model"
)

// LoadWarning is shown when the initial fetch fails.
const LoadWarning = "Failed to load todos. Working offline with local items."

// State is the full view state. Transitions return a new State and never
// modify the receiver's Items slice in place.
type State struct {
	Items   []model.Item
	Draft   string
	Loading bool
	Warning string
}

// Phase is what the list area shows.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseEmpty
	PhaseList
)

// Counts are derived from Items on every render.
type Counts struct {
	Total     int
	Completed int
	Remaining int
}

func (s State) LoadStarted() State {
	s.Loading = true
	return s
}

// LoadSucceeded replaces Items verbatim.
func (s State) LoadSucceeded(items []model.Item) State {
	s.Items = slices.Clone(items)
	s.Warning = ""
	s.Loading = false
	return s
}

// LoadFailed keeps whatever Items were held before the call.
func (s State) LoadFailed(warning string) State {
	if warning == "" {
		warning = LoadWarning
	}
	s.Warning = warning
	s.Loading = false
	return s
}

func (s State) WithDraft(text string) State {
	s.Draft = text
	return s
}

// Added appends the outcome's item and clears the draft. An item whose id is
// already held replaces the held one so ids stay unique. Items without an id
// are always appended.
func (s State) Added(o Outcome) State {
	s.Draft = ""
	if o.Item.ID.IsZero() {
		s.Items = append(slices.Clip(s.Items), o.Item)
		return s
	}
	if i := s.index(o.Item.ID); i >= 0 {
		s.Items = slices.Clone(s.Items)
		s.Items[i] = o.Item
		return s
	}
	s.Items = append(slices.Clip(s.Items), o.Item)
	return s
}

// Toggled flips IsCompleted on the item with id. Unknown ids are a no-op.
func (s State) Toggled(id model.ID) State {
	i := s.index(id)
	if i < 0 {
		return s
	}
	s.Items = slices.Clone(s.Items)
	s.Items[i] = s.Items[i].Toggled()
	return s
}

// Deleted drops the item with id. Unknown ids are a no-op.
func (s State) Deleted(id model.ID) State {
	i := s.index(id)
	if i < 0 {
		return s
	}
	s.Items = slices.Delete(slices.Clone(s.Items), i, i+1)
	return s
}

// Find returns the held item with id.
func (s State) Find(id model.ID) (model.Item, bool) {
	if i := s.index(id); i >= 0 {
		return s.Items[i], true
	}
	return model.Item{}, false
}

func (s State) Counts() Counts {
	c := Counts{Total: len(s.Items)}
	for _, it := range s.Items {
		if it.IsCompleted {
			c.Completed++
		}
	}
	c.Remaining = c.Total - c.Completed
	return c
}

func (s State) Phase() Phase {
	switch {
	case s.Loading:
		return PhaseLoading
	case len(s.Items) == 0:
		return PhaseEmpty
	default:
		return PhaseList
	}
}

func (s State) index(id model.ID) int {
	return slices.IndexFunc(s.Items, func(it model.Item) bool { return it.ID == id })
}
