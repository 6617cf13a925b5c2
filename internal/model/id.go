package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

const localPrefix = "local-"

// ID identifies an item. Server ids may be JSON numbers or strings and are
// re-encoded in the same kind. Local ids are minted on the client when a
// create call fails; they never compare equal to a server id.
type ID struct {
	raw   string
	num   bool
	local bool
}

// NumericID returns a server id encoded as a JSON number.
func NumericID(n int64) ID { return ID{raw: strconv.FormatInt(n, 10), num: true} }

// StringID returns a server id encoded as a JSON string.
func StringID(s string) ID { return ID{raw: s} }

// NewLocalID returns a fresh client-side id.
func NewLocalID() ID { return ID{raw: localPrefix + uuid.NewString(), local: true} }

func (id ID) String() string { return id.raw }
func (id ID) IsZero() bool   { return id.raw == "" }

// IsLocal reports whether the id was minted on the client.
func (id ID) IsLocal() bool { return id.local }

func (id ID) MarshalJSON() ([]byte, error) {
	if id.raw == "" {
		return []byte("null"), nil
	}
	if id.num {
		return []byte(id.raw), nil
	}
	return json.Marshal(id.raw)
}

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*id = ID{}
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("id: %w", err)
		}
		*id = StringID(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("id: %w", err)
		}
		*id = ID{raw: n.String(), num: true}
		return nil
	}
}
