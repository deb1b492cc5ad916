// SPDX-License-Identifier: MIT

package document

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// ID is a scope or element identifier. Legacy documents store ids as raw JSON
// numbers (millisecond timestamps), newer ones as strings; both decode to the
// same canonical string form.
type ID string

// UnmarshalJSON accepts either a JSON string or a JSON number.
func (id *ID) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty id")
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON writes the id back as a string.
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

// Value is one dynamically-typed entry from a customData bag. The JSON value
// is decoded into a cty.Value with its implied type, so the loader can
// validate and convert it against the declared property type of the element.
type Value struct {
	cty.Value
}

// UnmarshalJSON decodes an arbitrary JSON value via its implied cty type.
func (v *Value) UnmarshalJSON(data []byte) error {
	ty, err := ctyjson.ImpliedType(data)
	if err != nil {
		return fmt.Errorf("cannot imply type of custom value: %w", err)
	}
	val, err := ctyjson.Unmarshal(data, ty)
	if err != nil {
		return fmt.Errorf("cannot decode custom value: %w", err)
	}
	v.Value = val
	return nil
}

// NodeRef is a reference into a scope's allNodes array: either a single index
// for scalar connection fields or a list of indexes for array-valued ones.
// The sentinel index -1 means "keep the freshly constructed node".
type NodeRef struct {
	Index   int
	Indexes []int
	IsList  bool
}

// UnmarshalJSON accepts either a bare index or an array of indexes.
func (r *NodeRef) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty node reference")
	}
	if data[0] == '[' {
		r.IsList = true
		return json.Unmarshal(data, &r.Indexes)
	}
	idx, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("node reference must be an index or index array: %w", err)
	}
	r.Index = idx
	return nil
}
