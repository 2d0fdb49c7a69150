package model

import (
	"fmt"
	"sort"
)

// FieldKey addresses one field of one traveller record.
type FieldKey struct {
	Room      int
	GuestType GuestType
	Index     int
	Field     string
}

func (k FieldKey) String() string {
	group := "adults"
	if k.GuestType == GuestTypeChild {
		group = "children"
	}

	return fmt.Sprintf("rooms[%d].%s[%d].%s", k.Room, group, k.Index, k.Field)
}

// ErrorMap collects field validation errors. Absence of a key means the field
// is currently valid.
type ErrorMap map[FieldKey]string

// Merge copies every entry of other into the map, overwriting on collision.
func (m ErrorMap) Merge(other ErrorMap) {
	for key, msg := range other {
		m[key] = msg
	}
}

// Flatten renders the map with stable string keys for JSON responses.
func (m ErrorMap) Flatten() map[string]string {
	if len(m) == 0 {
		return nil
	}

	out := make(map[string]string, len(m))
	for key, msg := range m {
		out[key.String()] = msg
	}

	return out
}

// Keys returns the composite keys in lexical order, for deterministic logs.
func (m ErrorMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key.String())
	}

	sort.Strings(keys)

	return keys
}
