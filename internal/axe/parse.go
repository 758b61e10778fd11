package axe

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Parse decodes an axe results document. Shape problems that would otherwise
// surface as opaque decode errors are reported as *InvalidInputError.
func Parse(payload []byte) (*Results, error) {
	if err := validateEnvelope(payload); err != nil {
		return nil, err
	}
	var r Results
	if err := json.Unmarshal(payload, &r); err != nil {
		return nil, &InvalidInputError{Path: "$", Reason: err.Error()}
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Validate checks invariants json decoding cannot enforce.
func (r *Results) Validate() error {
	if r == nil {
		return Invalidf("$", "results are nil")
	}
	for _, b := range Buckets {
		for i, rr := range r.Bucket(b) {
			if strings.TrimSpace(rr.ID) == "" {
				return Invalidf(fmt.Sprintf("$.%s[%d].id", b, i), "rule id must be non-empty")
			}
		}
	}
	return nil
}

func validateEnvelope(payload []byte) error {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(payload, &root); err != nil {
		return &InvalidInputError{Path: "$", Reason: "document must be a JSON object: " + err.Error()}
	}
	for _, b := range Buckets {
		raw, ok := root[string(b)]
		if !ok || isNull(raw) {
			continue
		}
		var entries []json.RawMessage
		if err := json.Unmarshal(raw, &entries); err != nil {
			return Invalidf("$."+string(b), "bucket must be an array")
		}
		for i, entry := range entries {
			if err := validateRuleEnvelope(entry, fmt.Sprintf("$.%s[%d]", b, i)); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateRuleEnvelope(raw json.RawMessage, path string) error {
	var rule map[string]json.RawMessage
	if err := json.Unmarshal(raw, &rule); err != nil {
		return Invalidf(path, "rule result must be an object")
	}
	rawID, ok := rule["id"]
	if !ok {
		return Invalidf(path, "missing id")
	}
	var id string
	if err := json.Unmarshal(rawID, &id); err != nil {
		return Invalidf(path+".id", "must be a string")
	}
	for _, key := range []string{"tags", "nodes"} {
		v, ok := rule[key]
		if !ok || isNull(v) {
			continue
		}
		var items []json.RawMessage
		if err := json.Unmarshal(v, &items); err != nil {
			return Invalidf(path+"."+key, "must be an array")
		}
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
