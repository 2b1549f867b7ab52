package tree

import (
	"encoding/json"

	"tableflip.dev/focus/pkg/entry"
)

// MarshalForest serializes the root-level forest in display order. The
// output is the persisted shadow of the in-memory tree; every field
// (ids, kinds, labels, child order, metadata) survives the round trip.
func MarshalForest(forest []*entry.Entry) ([]byte, error) {
	if forest == nil {
		forest = []*entry.Entry{}
	}
	return json.MarshalIndent(forest, "", "  ")
}

// UnmarshalForest deserializes a forest produced by MarshalForest. Empty
// input yields an empty forest rather than an error.
func UnmarshalForest(data []byte) ([]*entry.Entry, error) {
	if len(data) == 0 {
		return []*entry.Entry{}, nil
	}
	var forest []*entry.Entry
	if err := json.Unmarshal(data, &forest); err != nil {
		return nil, err
	}
	if forest == nil {
		forest = []*entry.Entry{}
	}
	return forest, nil
}
