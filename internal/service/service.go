// Package service runs the four to-do operations against the remote service
// and turns every remote failure into a local fallback outcome.
package service

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/state"
)

// Remote is the collaborator the service calls. *api.Client implements it.
type Remote interface {
	List(ctx context.Context) ([]model.Item, error)
	Create(ctx context.Context, title string) (model.Item, error)
	Update(ctx context.Context, item model.Item) error
	Delete(ctx context.Context, id model.ID) error
}

type Service struct {
	remote Remote
	log    *log.Logger
	now    func() time.Time
	newID  func() model.ID
}

func New(remote Remote, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Service{
		remote: remote,
		log:    logger,
		now:    time.Now,
		newID:  model.NewLocalID,
	}
}

// Load fetches the collection. The caller decides how to surface the error;
// the view shows state.LoadWarning and keeps what it had.
func (s *Service) Load(ctx context.Context) ([]model.Item, error) {
	items, err := s.remote.List(ctx)
	if err != nil {
		s.log.Warn("load failed", "err", err)
		return nil, err
	}
	s.log.Debug("loaded", "count", len(items))
	return items, nil
}

// Add creates an item. ok is false when the title is blank and nothing was
// attempted.
func (s *Service) Add(ctx context.Context, title string) (out state.Outcome, ok bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return state.Outcome{}, false
	}
	item, err := s.remote.Create(ctx, title)
	if err == nil {
		s.log.Debug("created", "id", item.ID)
		return state.RemoteOutcome(item), true
	}
	now := s.now()
	local := model.Item{
		ID:          s.newID(),
		Title:       title,
		IsCompleted: false,
		CreatedAt:   &now,
	}
	s.log.Warn("create failed, keeping local item", "id", local.ID, "err", err)
	return state.LocalOutcome(local, err), true
}

// Toggle sends current with IsCompleted flipped. The returned outcome's item
// is the flipped copy either way.
func (s *Service) Toggle(ctx context.Context, current model.Item) state.Outcome {
	next := current.Toggled()
	if err := s.remote.Update(ctx, next); err != nil {
		s.log.Warn("update failed, toggling locally", "id", current.ID, "err", err)
		return state.LocalOutcome(next, err)
	}
	return state.RemoteOutcome(next)
}

func (s *Service) Delete(ctx context.Context, id model.ID) state.Outcome {
	gone := model.Item{ID: id}
	if err := s.remote.Delete(ctx, id); err != nil {
		s.log.Warn("delete failed, removing locally", "id", id, "err", err)
		return state.LocalOutcome(gone, err)
	}
	return state.RemoteOutcome(gone)
}
