package lr

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ReadRules reads a list of rules in JSON format. Accepted are a plain array
// of rules
//
//     [ { "left": "S", "right": ["'a'", "S", "'b'"] }, … ]
//
// or an object with the rules in field "rules". Other fields are ignored.
func ReadRules(r io.Reader) ([]Rule, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading rules: %w", err)
	}
	data = bytes.TrimSpace(data)
	var rules []Rule
	if len(data) > 0 && data[0] == '{' {
		var wrapper struct {
			Rules []Rule `json:"rules"`
		}
		err = json.Unmarshal(data, &wrapper)
		rules = wrapper.Rules
	} else {
		err = json.Unmarshal(data, &rules)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding rules: %w", err)
	}
	for i := range rules {
		if len(rules[i].RHS) == 0 {
			rules[i].RHS = []string{Epsilon}
		}
	}
	return rules, nil
}

// LoadRules reads a list of rules in JSON format from a file.
func LoadRules(path string) ([]Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading rules: %w", err)
	}
	defer f.Close()
	return ReadRules(f)
}

// ReadOverrides reads a list of table overrides in JSON format:
//
//     [ { "state": 4, "symbol": "'else'", "action": "s7" }, … ]
func ReadOverrides(r io.Reader) ([]Override, error) {
	var overrides []Override
	if err := json.NewDecoder(r).Decode(&overrides); err != nil {
		return nil, fmt.Errorf("decoding table overrides: %w", err)
	}
	return overrides, nil
}

// LoadOverrides reads a list of table overrides in JSON format from a file.
func LoadOverrides(path string) ([]Override, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading table overrides: %w", err)
	}
	defer f.Close()
	return ReadOverrides(f)
}

// MarshalJSON encodes an action in table notation.
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON decodes an action in table notation.
func (a *Action) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	action, err := ParseAction(s)
	if err != nil {
		return err
	}
	*a = action
	return nil
}
