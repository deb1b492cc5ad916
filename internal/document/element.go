// SPDX-License-Identifier: MIT

package document

import "encoding/json"

// Element is one serialized circuit-element instance. It is created
// transiently during load, consumed to mutate a freshly constructed element,
// and discarded.
type Element struct {
	ObjectType string `json:"objectType"`
	X          int    `json:"x"`
	Y          int    `json:"y"`

	Label          string `json:"label,omitempty"`
	LabelDirection string `json:"labelDirection,omitempty"`

	// PropagationDelay is a pointer so an explicit zero survives decoding:
	// zero means zero, absence means "use the type default".
	PropagationDelay *int `json:"propagationDelay,omitempty"`

	CustomData CustomData `json:"customData"`

	// ID carries the referenced child scope id for subcircuit records.
	ID ID `json:"id,omitempty"`

	// SubcircuitMetadata is attached verbatim to the constructed instance.
	SubcircuitMetadata json.RawMessage `json:"subcircuitMetadata,omitempty"`
}

// CustomData is the nested bag of per-element restore data.
type CustomData struct {
	// ConstructorParamaters keeps the historical field name, see package doc.
	ConstructorParamaters []Value `json:"constructorParamaters,omitempty"`

	// Values holds scalar/object property overrides applied after
	// construction, validated against the element type's allow-list.
	Values map[string]Value `json:"values,omitempty"`

	// Nodes maps the element's connection-bearing property names to the old
	// node identities that must replace the freshly constructed nodes.
	Nodes map[string]NodeRef `json:"nodes,omitempty"`
}

// NodeRec is one serialized connection point.
type NodeRec struct {
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Type     int    `json:"type"`
	BitWidth int    `json:"bitWidth,omitempty"`
	Label    string `json:"label,omitempty"`

	// Connections references peer nodes by allNodes array index.
	Connections []int `json:"connections"`
}

// WireRec is one serialized wire segment. Its routing type is derived data and
// is recomputed after load, so only its presence matters here.
type WireRec struct {
	Type string `json:"type,omitempty"`
}

// Folder is one organizational folder for subcircuits.
type Folder struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parentId,omitempty"`
}

// VerilogMetadata marks scopes generated from a hardware description and
// carries the original source.
type VerilogMetadata struct {
	IsVerilogCircuit bool   `json:"isVerilogCircuit"`
	IsMainCircuit    bool   `json:"isMainCircuit"`
	Code             string `json:"code,omitempty"`
	SubCircuitScopeIds []ID `json:"subCircuitScopeIds,omitempty"`
}

// Layout is a serialized layout record. TitleEnabled is a pointer because
// older documents predate the flag; the loader defaults it to visible.
type Layout struct {
	Width        int   `json:"width"`
	Height       int   `json:"height"`
	TitleX       int   `json:"title_x"`
	TitleY       int   `json:"title_y"`
	TitleEnabled *bool `json:"titleEnabled,omitempty"`
}
