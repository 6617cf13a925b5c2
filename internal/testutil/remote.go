// Package testutil provides a scripted in-memory Remote for tests of the
// service and the TUI.
package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/Makepad-fr/tada/internal/model"
)

// ErrUnavailable is what a failing Remote returns.
var ErrUnavailable = errors.New("remote unavailable")

// Call records one request made to the Remote.
type Call struct {
	Op   string // list | create | update | delete
	ID   model.ID
	Item model.Item
}

// Remote answers from Items and fails every call while Fail is set.
type Remote struct {
	mu     sync.Mutex
	Items  []model.Item
	Fail   bool
	NextID int64
	Calls  []Call
}

func (r *Remote) record(c Call) error {
	r.Calls = append(r.Calls, c)
	if r.Fail {
		return ErrUnavailable
	}
	return nil
}

func (r *Remote) List(ctx context.Context) ([]model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record(Call{Op: "list"}); err != nil {
		return nil, err
	}
	return append([]model.Item(nil), r.Items...), nil
}

func (r *Remote) Create(ctx context.Context, title string) (model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record(Call{Op: "create", Item: model.Item{Title: title}}); err != nil {
		return model.Item{}, err
	}
	r.NextID++
	it := model.Item{ID: model.NumericID(r.NextID), Title: title}
	r.Items = append(r.Items, it)
	return it, nil
}

func (r *Remote) Update(ctx context.Context, item model.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record(Call{Op: "update", ID: item.ID, Item: item}); err != nil {
		return err
	}
	for i := range r.Items {
		if r.Items[i].ID == item.ID {
			r.Items[i] = item
		}
	}
	return nil
}

func (r *Remote) Delete(ctx context.Context, id model.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record(Call{Op: "delete", ID: id}); err != nil {
		return err
	}
	for i := range r.Items {
		if r.Items[i].ID == id {
			r.Items = append(r.Items[:i], r.Items[i+1:]...)
			break
		}
	}
	return nil
}

// CallCount returns how many calls of op were made.
func (r *Remote) CallCount(op string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}
