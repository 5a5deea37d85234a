package chaucha

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression against the persisted form of u,
// e.g. "$.goals[*].name" or "$.transactions[?(@.isFixed == true)].description".
func Query(u UserData, path string) (any, error) {
	raw, err := json.Marshal(u)
	if err != nil {
		return nil, fmt.Errorf("cannot encode profile: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("cannot decode profile: %w", err)
	}
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	return v, nil
}
