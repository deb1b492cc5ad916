// SPDX-License-Identifier: MIT

package document

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Project is a full serialized project: an ordered list of scope documents in
// dependency order plus cross-scope editor state.
type Project struct {
	Name      string   `json:"name"`
	ProjectID string   `json:"projectId,omitempty"`
	Scopes    []*Scope `json:"scopes"`

	// TimePeriod and ClockEnabled are pointers so the loader can apply its
	// 500-unit / enabled defaults only when a document truly omits them.
	TimePeriod   *int  `json:"timePeriod,omitempty"`
	ClockEnabled *bool `json:"clockEnabled,omitempty"`

	OrderedTabs     []ID `json:"orderedTabs,omitempty"`
	FocussedCircuit ID   `json:"focussedCircuit,omitempty"`
}

// ParseProject decodes a project document. An empty or JSON-null payload
// yields a nil project: the "new project" path, not an error.
func ParseProject(data []byte) (*Project, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	var p Project
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return nil, fmt.Errorf("failed to decode project document: %w", err)
	}
	return &p, nil
}
