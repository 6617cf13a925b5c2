package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestIDKeepsJSONKind(t *testing.T) {
	var items []Item
	in := `[{"id":7,"title":"a","isCompleted":false},{"id":"abc","title":"b","isCompleted":true}]`
	if err := json.Unmarshal([]byte(in), &items); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if items[0].ID != NumericID(7) {
		t.Fatalf("numeric id: got %#v", items[0].ID)
	}
	if items[1].ID != StringID("abc") {
		t.Fatalf("string id: got %#v", items[1].ID)
	}

	out, err := json.Marshal(items[0])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(out), `"id":7`) {
		t.Errorf("expected numeric id to stay a number, got %s", out)
	}
	out, _ = json.Marshal(items[1])
	if !strings.Contains(string(out), `"id":"abc"`) {
		t.Errorf("expected string id to stay a string, got %s", out)
	}
}

func TestNumericAndStringIDsDiffer(t *testing.T) {
	if NumericID(1) == StringID("1") {
		t.Fatal("numeric 1 and string \"1\" must not be equal")
	}
}

func TestLocalIDsAreUniqueAndNamespaced(t *testing.T) {
	seen := map[ID]bool{}
	for i := 0; i < 1000; i++ {
		id := NewLocalID()
		if !id.IsLocal() {
			t.Fatalf("expected local id, got %v", id)
		}
		if seen[id] {
			t.Fatalf("duplicate local id %v", id)
		}
		seen[id] = true
	}

	local := NewLocalID()
	if local == StringID(local.String()) {
		t.Fatal("a server string id with the same text must not equal a local id")
	}
}

func TestNullAndMissingID(t *testing.T) {
	var it Item
	if err := json.Unmarshal([]byte(`{"id":null,"title":"x"}`), &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !it.ID.IsZero() {
		t.Errorf("expected zero id, got %v", it.ID)
	}
	if err := json.Unmarshal([]byte(`{"id":{},"title":"x"}`), &it); err == nil {
		t.Error("expected error for object id")
	}
}

func TestToggledDoesNotModifyReceiver(t *testing.T) {
	it := Item{ID: NumericID(1), Title: "a"}
	next := it.Toggled()
	if it.IsCompleted || !next.IsCompleted {
		t.Fatalf("got original=%v next=%v", it.IsCompleted, next.IsCompleted)
	}
	if next.Toggled().IsCompleted != it.IsCompleted {
		t.Fatal("toggling twice should restore the original value")
	}
}
