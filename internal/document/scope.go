// SPDX-License-Identifier: MIT

package document

import (
	"encoding/json"
	"fmt"
)

// Scope is one serialized circuit definition. Element records live under
// top-level keys named after their type tag; every other unrecognized field is
// preserved untouched in Extra so round-tripping foreign data never loses it.
type Scope struct {
	ID   ID     `json:"id"`
	Name string `json:"name,omitempty"`

	AllNodes []*NodeRec `json:"allNodes"`
	Wires    []*WireRec `json:"wires,omitempty"`

	Layout          *Layout          `json:"layout,omitempty"`
	VerilogMetadata *VerilogMetadata `json:"verilogMetadata,omitempty"`
	TestbenchData   json.RawMessage  `json:"testbenchData,omitempty"`

	RestrictedCircuitElementsUsed []string `json:"restrictedCircuitElementsUsed,omitempty"`

	Folders       []*Folder         `json:"folders,omitempty"`
	SubcircuitMap map[string]string `json:"subcircuitMap,omitempty"`

	// Elements groups element records by their document key (the type tag).
	Elements map[string][]*Element `json:"-"`

	// Extra preserves unrecognized fields verbatim.
	Extra map[string]json.RawMessage `json:"-"`
}

// scopeKnownKeys are the ScopeDoc fields handled structurally; every other key
// is either an element-record array or pass-through data.
var scopeKnownKeys = map[string]struct{}{
	"id":                            {},
	"name":                          {},
	"allNodes":                      {},
	"wires":                         {},
	"layout":                        {},
	"verilogMetadata":               {},
	"testbenchData":                 {},
	"restrictedCircuitElementsUsed": {},
	"folders":                       {},
	"subcircuitMap":                 {},
}

// UnmarshalJSON decodes the structural fields and then sorts every remaining
// key into either an element-record collection or pass-through Extra data.
func (s *Scope) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("scope document is not an object: %w", err)
	}

	type field struct {
		key string
		dst any
	}
	fields := []field{
		{"id", &s.ID},
		{"name", &s.Name},
		{"allNodes", &s.AllNodes},
		{"wires", &s.Wires},
		{"layout", &s.Layout},
		{"verilogMetadata", &s.VerilogMetadata},
		{"testbenchData", &s.TestbenchData},
		{"restrictedCircuitElementsUsed", &s.RestrictedCircuitElementsUsed},
		{"folders", &s.Folders},
		{"subcircuitMap", &s.SubcircuitMap},
	}
	for _, f := range fields {
		val, ok := raw[f.key]
		if !ok || string(val) == "null" {
			continue
		}
		if err := json.Unmarshal(val, f.dst); err != nil {
			return fmt.Errorf("scope field %q: %w", f.key, err)
		}
	}

	s.Elements = make(map[string][]*Element)
	s.Extra = make(map[string]json.RawMessage)
	for key, val := range raw {
		if _, known := scopeKnownKeys[key]; known {
			continue
		}
		if recs, ok := decodeElementArray(val); ok {
			s.Elements[key] = recs
			continue
		}
		s.Extra[key] = val
	}
	return nil
}

// decodeElementArray reports whether a raw value is an array of element
// records. Arrays whose entries lack an objectType are foreign data, not
// element records.
func decodeElementArray(val json.RawMessage) ([]*Element, bool) {
	if len(val) == 0 || val[0] != '[' {
		return nil, false
	}
	var recs []*Element
	if err := json.Unmarshal(val, &recs); err != nil {
		return nil, false
	}
	if len(recs) == 0 {
		return nil, false
	}
	for _, rec := range recs {
		if rec == nil || rec.ObjectType == "" {
			return nil, false
		}
	}
	return recs, true
}
