package state

import "github.com/Makepad-fr/tada/internal/model"

// Origin tells whether the remote service accepted a change.
type Origin int

const (
	// Remote means the service acknowledged the change.
	Remote Origin = iota
	// Local means the remote call failed and the change only exists here.
	Local
)

func (o Origin) String() string {
	if o == Local {
		return "local"
	}
	return "remote"
}

// Outcome is the result of an add, toggle or delete. Err is set only for
// Local outcomes and holds the remote failure that was masked.
type Outcome struct {
	Item   model.Item
	Origin Origin
	Err    error
}

func RemoteOutcome(item model.Item) Outcome {
	return Outcome{Item: item, Origin: Remote}
}

func LocalOutcome(item model.Item, cause error) Outcome {
	return Outcome{Item: item, Origin: Local, Err: cause}
}

func (o Outcome) IsLocal() bool { return o.Origin == Local }
