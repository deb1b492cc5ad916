package loader_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kunal-10-cloud/CircuitVerse/elements/gates"
	"github.com/kunal-10-cloud/CircuitVerse/elements/io"
	"github.com/kunal-10-cloud/CircuitVerse/elements/memory"
	"github.com/kunal-10-cloud/CircuitVerse/elements/subcircuit"
	"github.com/kunal-10-cloud/CircuitVerse/internal/circuit"
	"github.com/kunal-10-cloud/CircuitVerse/internal/element"
	"github.com/kunal-10-cloud/CircuitVerse/internal/loader"
	"github.com/kunal-10-cloud/CircuitVerse/internal/registry"
	"github.com/kunal-10-cloud/CircuitVerse/internal/session"
	"github.com/kunal-10-cloud/CircuitVerse/internal/testutil"
)

func TestLoadNilDocumentStartsNewProject(t *testing.T) {
	h := testutil.NewHarness(t)
	require.NoError(t, h.Loader.Load(h.Ctx, nil))
	assert.Equal(t, "Untitled", h.Session.ProjectName)
	assert.Empty(t, h.Session.Scopes())
	assert.Nil(t, h.Session.Active())
}

func TestLoadRestoresSharedNodeIdentity(t *testing.T) {
	h := testutil.NewHarness(t)
	h.MustLoadJSON(t, `{
		"name": "identity",
		"scopes": [{
			"id": "1",
			"name": "main",
			"allNodes": [
				{"x": 110, "y": 100, "type": 1, "bitWidth": 1, "connections": [1]},
				{"x": 150, "y": 100, "type": 2, "bitWidth": 1, "connections": [0, 2]},
				{"x": 190, "y": 100, "type": 0, "bitWidth": 1, "connections": [1]}
			],
			"Input": [{
				"objectType": "Input", "x": 100, "y": 100,
				"customData": {"constructorParamaters": ["RIGHT", 1], "nodes": {"output1": 0}}
			}],
			"Output": [{
				"objectType": "Output", "x": 200, "y": 100,
				"customData": {"constructorParamaters": ["LEFT", 1], "nodes": {"inp1": 2}}
			}]
		}]
	}`)

	scope := h.Session.Active()
	require.NotNil(t, scope)

	in := scope.ElementsByTag("Input")[0].(*io.Input)
	out := scope.ElementsByTag("Output")[0].(*io.Output)

	// Fresh constructor ports were replaced by the registered nodes, so the
	// scope holds exactly the three serialized nodes.
	require.Len(t, scope.AllNodes, 3)
	assert.Equal(t, 110, in.Output1.X)
	assert.Equal(t, 190, out.Inp1.X)
	assert.Same(t, in, in.Output1.Parent)
	assert.Same(t, out, out.Inp1.Parent)

	// Both element ports reach each other through the shared intermediate.
	var mid *circuit.Node
	for _, n := range scope.AllNodes {
		if n.Kind == circuit.NodeIntermediate {
			mid = n
		}
	}
	require.NotNil(t, mid)
	assert.True(t, in.Output1.ConnectedTo(mid))
	assert.True(t, out.Inp1.ConnectedTo(mid))
	assert.Len(t, scope.Wires, 2)
	for _, w := range scope.Wires {
		assert.Equal(t, circuit.WireHorizontal, w.Orientation)
	}
}

func TestLoadPurgesUnclaimedPorts(t *testing.T) {
	h := testutil.NewHarness(t)
	h.MustLoadJSON(t, `{
		"name": "purge",
		"scopes": [{
			"id": "1",
			"allNodes": [
				{"x": 0, "y": 0, "type": 0, "connections": [1]},
				{"x": 10, "y": 0, "type": 2, "connections": [0]}
			]
		}]
	}`)

	scope := h.Session.Active()
	require.Len(t, scope.AllNodes, 1)
	assert.Equal(t, circuit.NodeIntermediate, scope.AllNodes[0].Kind)
	assert.Empty(t, scope.AllNodes[0].Connections)
	assert.Empty(t, scope.Wires)
	assert.Contains(t, h.Logs.String(), "unclaimed")
}

func TestLoadPreservesExplicitZeroDelay(t *testing.T) {
	h := testutil.NewHarness(t)
	h.MustLoadJSON(t, `{
		"name": "delays",
		"scopes": [{
			"id": "1",
			"allNodes": [],
			"AndGate": [
				{"objectType": "AndGate", "x": 100, "y": 100, "propagationDelay": 0, "customData": {}},
				{"objectType": "AndGate", "x": 100, "y": 200, "customData": {}}
			]
		}]
	}`)

	ands := h.Session.Active().ElementsByTag("AndGate")
	require.Len(t, ands, 2)
	assert.Equal(t, 0, ands[0].(*gates.Gate).Base().PropagationDelay)
	assert.Equal(t, 10, ands[1].(*gates.Gate).Base().PropagationDelay)
}

func TestLoadRectifiesRetiredTypeNames(t *testing.T) {
	h := testutil.NewHarness(t)
	h.MustLoadJSON(t, `{
		"name": "legacy",
		"scopes": [{
			"id": "1",
			"allNodes": [],
			"FlipFlop": [{"objectType": "FlipFlop", "x": 100, "y": 100, "customData": {}}],
			"DLatch": [{"objectType": "DLatch", "x": 100, "y": 200, "customData": {}}],
			"Ram": [{"objectType": "Ram", "x": 200, "y": 100, "customData": {"values": {"data": [1, 2, 3]}}}]
		}]
	}`)

	scope := h.Session.Active()
	assert.Empty(t, scope.ElementsByTag("FlipFlop"))
	assert.Len(t, scope.ElementsByTag("DflipFlop"), 1)
	assert.Len(t, scope.ElementsByTag("Dlatch"), 1)

	roms := scope.ElementsByTag("Rom")
	require.Len(t, roms, 1)
	assert.Equal(t, []int{1, 2, 3}, roms[0].(*memory.Rom).Data)
}

func TestLoadFailsOnUnknownElementType(t *testing.T) {
	h := testutil.NewHarness(t)
	err := h.LoadJSON(t, `{
		"name": "bad",
		"scopes": [{
			"id": "1",
			"allNodes": [],
			"QuantumGate": [{"objectType": "QuantumGate", "x": 1, "y": 1, "customData": {}}]
		}]
	}`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, registry.ErrUnknownElementType))
	assert.Len(t, h.Notice.All(), 1)
}

func TestLoadSynthesizesLegacyLayout(t *testing.T) {
	h := testutil.NewHarness(t)
	h.MustLoadJSON(t, `{
		"name": "legacy-layout",
		"scopes": [{
			"id": "1",
			"allNodes": [],
			"Input": [{"objectType": "Input", "x": 100, "y": 100, "customData": {}}],
			"Output": [{"objectType": "Output", "x": 300, "y": 100, "customData": {}}]
		}]
	}`)

	scope := h.Session.Active()
	assert.Equal(t, circuit.Layout{Width: 100, Height: 40, TitleX: 50, TitleY: 13, TitleEnabled: true}, scope.Layout)

	in := scope.ElementsByTag("Input")[0].(*io.Input)
	assert.Equal(t, 0, in.Layout.X)
	assert.Equal(t, 20, in.Layout.Y)
	assert.NotEmpty(t, in.Layout.ID)

	out := scope.ElementsByTag("Output")[0].(*io.Output)
	assert.Equal(t, 100, out.Layout.X)
	assert.Equal(t, 20, out.Layout.Y)
}

func TestLoadStoredLayoutTitleDefaultsToVisible(t *testing.T) {
	h := testutil.NewHarness(t)
	h.MustLoadJSON(t, `{
		"name": "layouts",
		"scopes": [
			{"id": "1", "allNodes": [], "layout": {"width": 300, "height": 200, "title_x": 10, "title_y": 5}},
			{"id": "2", "allNodes": [], "layout": {"width": 120, "height": 80, "title_x": 60, "title_y": 13, "titleEnabled": false}}
		]
	}`)

	scopes := h.Session.Scopes()
	require.Len(t, scopes, 2)
	assert.Equal(t, circuit.Layout{Width: 300, Height: 200, TitleX: 10, TitleY: 5, TitleEnabled: true}, scopes[0].Layout)
	assert.False(t, scopes[1].Layout.TitleEnabled)
}

const childScopeJSON = `{
	"id": "1", "name": "child",
	"allNodes": [],
	"Input": [{"objectType": "Input", "x": 100, "y": 100, "customData": {}}],
	"Output": [{"objectType": "Output", "x": 300, "y": 100, "customData": {}}]
}`

const parentScopeJSON = `{
	"id": "2", "name": "parent",
	"allNodes": [],
	"SubCircuit": [{"objectType": "SubCircuit", "x": 300, "y": 200, "id": "1", "customData": {}}]
}`

func TestLoadResolvesSubcircuitsInDocumentOrder(t *testing.T) {
	h := testutil.NewHarness(t)
	h.MustLoadJSON(t, `{"name": "nested", "scopes": [`+childScopeJSON+`, `+parentScopeJSON+`]}`)

	parent := h.Session.ScopeByID("2")
	require.NotNil(t, parent)
	subs := parent.ElementsByTag("SubCircuit")
	require.Len(t, subs, 1)

	sub := subs[0].(*subcircuit.SubCircuit)
	assert.Equal(t, "1", sub.ScopeID)
	assert.Same(t, h.Session.ScopeByID("1"), sub.Child)
	assert.Len(t, sub.InputNodes, 1)
	assert.Len(t, sub.OutputNodes, 1)
}

func TestLoadRejectsForwardSubcircuitReference(t *testing.T) {
	h := testutil.NewHarness(t)
	err := h.LoadJSON(t, `{"name": "nested", "scopes": [`+parentScopeJSON+`, `+childScopeJSON+`]}`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, loader.ErrScopeNotLoaded))
	assert.Len(t, h.Notice.All(), 1)
}

func TestLoadAppliesClockDefaults(t *testing.T) {
	h := testutil.NewHarness(t)
	h.MustLoadJSON(t, `{"name": "bare", "scopes": [{"id": "1", "allNodes": []}]}`)
	assert.Equal(t, session.ClockSettings{Period: 500, Enabled: true}, h.Session.Clock)

	h.MustLoadJSON(t, `{
		"name": "tuned", "timePeriod": 250, "clockEnabled": false,
		"scopes": [{"id": "1", "allNodes": []}]
	}`)
	assert.Equal(t, session.ClockSettings{Period: 250, Enabled: false}, h.Session.Clock)
}

func TestLoadRestoresTabsAndFocus(t *testing.T) {
	h := testutil.NewHarness(t)
	h.MustLoadJSON(t, `{
		"name": "tabs",
		"orderedTabs": [2, 1, 9],
		"focussedCircuit": 2,
		"scopes": [
			{"id": "1", "name": "first", "allNodes": []},
			{"id": "2", "name": "second", "allNodes": []}
		]
	}`)

	assert.Equal(t, []string{"2", "1"}, h.Session.TabOrder)
	require.NotNil(t, h.Session.Active())
	assert.Equal(t, "2", h.Session.Active().ID)
	assert.Contains(t, h.Logs.String(), "Ordered tab references an unloaded scope")
}

func TestLoadSkipsUndeclaredProperties(t *testing.T) {
	h := testutil.NewHarness(t)
	h.MustLoadJSON(t, `{
		"name": "props",
		"scopes": [{
			"id": "1",
			"allNodes": [],
			"Input": [{
				"objectType": "Input", "x": 100, "y": 100,
				"customData": {"values": {"glow": 5, "bitWidth": 4}}
			}]
		}]
	}`)

	in := h.Session.Active().ElementsByTag("Input")[0].(*io.Input)
	assert.Equal(t, 4, in.BitWidth)
	assert.Equal(t, 4, in.Output1.BitWidth)
	assert.Contains(t, h.Logs.String(), "Skipping undeclared property")
}

func TestLoadFailsOnUnconvertiblePropertyValue(t *testing.T) {
	h := testutil.NewHarness(t)
	err := h.LoadJSON(t, `{
		"name": "props",
		"scopes": [{
			"id": "1",
			"allNodes": [],
			"Input": [{
				"objectType": "Input", "x": 100, "y": 100,
				"customData": {"values": {"bitWidth": "wide"}}
			}]
		}]
	}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bitWidth")
	assert.Len(t, h.Notice.All(), 1)
}

func TestLoadNormalizesDirections(t *testing.T) {
	h := testutil.NewHarness(t)
	h.MustLoadJSON(t, `{
		"name": "directions",
		"scopes": [{
			"id": "1",
			"allNodes": [],
			"Input": [
				{"objectType": "Input", "x": 100, "y": 100,
				 "customData": {"constructorParamaters": ["down", 1]}},
				{"objectType": "Input", "x": 100, "y": 200, "labelDirection": "right",
				 "customData": {"constructorParamaters": ["0", 1]}}
			]
		}]
	}`)

	ins := h.Session.Active().ElementsByTag("Input")
	require.Len(t, ins, 2)

	first := ins[0].(*io.Input).Base()
	assert.Equal(t, element.Down, first.Direction)
	// Absent label direction derives from the element orientation.
	assert.Equal(t, element.Up, first.LabelDirection)

	second := ins[1].(*io.Input).Base()
	assert.Equal(t, element.Right, second.Direction)
	assert.Equal(t, element.Right, second.LabelDirection)
}

func TestLoadSchedulesCollaboratorsPerScope(t *testing.T) {
	h := testutil.NewHarness(t)
	h.MustLoadJSON(t, `{
		"name": "collab",
		"scopes": [{"id": "1", "allNodes": []}, {"id": "2", "allNodes": []}]
	}`)
	assert.Equal(t, 2, h.Sim.Count())
	assert.Equal(t, 2, h.Backup.Count())
	assert.Empty(t, h.Notice.All())
}

func TestLoadRestoresFoldersAndVerilogMetadata(t *testing.T) {
	h := testutil.NewHarness(t)
	h.MustLoadJSON(t, `{
		"name": "meta",
		"scopes": [
			`+childScopeJSON+`,
			{
				"id": "2", "name": "organizer",
				"allNodes": [],
				"folders": [{"id": "f1", "name": "adders"}],
				"subcircuitMap": {"1": "f1"},
				"verilogMetadata": {"isVerilogCircuit": true, "isMainCircuit": true, "code": "module m; endmodule"},
				"restrictedCircuitElementsUsed": ["Rom"]
			}
		]
	}`)

	scope := h.Session.ScopeByID("2")
	require.NotNil(t, scope)

	require.NotNil(t, scope.Folders)
	fs := scope.Folders.Folders()
	require.Len(t, fs, 1)
	assert.Equal(t, "adders", fs[0].Name)
	owner, ok := scope.Folders.FolderOf("1")
	assert.True(t, ok)
	assert.Equal(t, "f1", owner)

	require.NotNil(t, scope.VerilogMetadata)
	assert.True(t, scope.VerilogMetadata.IsVerilogCircuit)
	assert.Equal(t, []string{"Rom"}, scope.RestrictedElementsUsed)
}

func TestLoadRestoresFlipFlopConnections(t *testing.T) {
	h := testutil.NewHarness(t)
	h.MustLoadJSON(t, `{
		"name": "ff",
		"scopes": [{
			"id": "1",
			"allNodes": [
				{"x": 80, "y": 90, "type": 0, "connections": []},
				{"x": 120, "y": 90, "type": 1, "connections": []}
			],
			"DflipFlop": [{
				"objectType": "DflipFlop", "x": 100, "y": 100,
				"customData": {"nodes": {"dInp": 0, "qOutput": 1, "clockInp": -1}}
			}]
		}]
	}`)

	scope := h.Session.Active()
	ffs := scope.ElementsByTag("DflipFlop")
	require.Len(t, ffs, 1)
	ff := ffs[0].(element.Element)

	bindings := ff.NodeBindings()
	assert.Equal(t, 80, bindings["dInp"].Get(0).X)
	assert.Equal(t, 120, bindings["qOutput"].Get(0).X)
	// The sentinel -1 keeps the freshly constructed node.
	require.NotNil(t, bindings["clockInp"].Get(0))
	assert.Same(t, ff, bindings["clockInp"].Get(0).Parent)
}

func TestLoadRestoresGateInputList(t *testing.T) {
	h := testutil.NewHarness(t)
	h.MustLoadJSON(t, `{
		"name": "gate-nodes",
		"scopes": [{
			"id": "1",
			"allNodes": [
				{"x": 90, "y": 95, "type": 0, "connections": []},
				{"x": 90, "y": 105, "type": 0, "connections": []},
				{"x": 120, "y": 100, "type": 1, "connections": []}
			],
			"AndGate": [{
				"objectType": "AndGate", "x": 100, "y": 100,
				"customData": {
					"constructorParamaters": ["RIGHT", 2, 1],
					"nodes": {"inp": [0, 1], "output1": 2}
				}
			}]
		}]
	}`)

	g := h.Session.Active().ElementsByTag("AndGate")[0].(*gates.Gate)
	require.Len(t, g.Inputs, 2)
	assert.Equal(t, 95, g.Inputs[0].Y)
	assert.Equal(t, 105, g.Inputs[1].Y)
	assert.Equal(t, 120, g.Output1.X)
	assert.Len(t, h.Session.Active().AllNodes, 3)
}

func TestLoadFailsOnOutOfRangeConnection(t *testing.T) {
	h := testutil.NewHarness(t)
	err := h.LoadJSON(t, `{
		"name": "corrupt",
		"scopes": [{
			"id": "1",
			"allNodes": [{"x": 0, "y": 0, "type": 2, "connections": [5]}]
		}]
	}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection index")
}

func TestLoadDefaultsScopeAndProjectNames(t *testing.T) {
	h := testutil.NewHarness(t)
	h.MustLoadJSON(t, `{"scopes": [{"id": "1", "allNodes": []}]}`)
	assert.Equal(t, "Untitled", h.Session.ProjectName)
	assert.Equal(t, "Untitled-Circuit", h.Session.Active().Name)
}

func TestSequentialLoadsResetSession(t *testing.T) {
	h := testutil.NewHarness(t)
	h.MustLoadJSON(t, `{"name": "one", "scopes": [{"id": "1", "allNodes": []}, {"id": "2", "allNodes": []}]}`)
	require.Len(t, h.Session.Scopes(), 2)

	h.MustLoadJSON(t, `{"name": "two", "scopes": [{"id": "9", "allNodes": []}]}`)
	assert.Equal(t, "two", h.Session.ProjectName)
	require.Len(t, h.Session.Scopes(), 1)
	assert.Nil(t, h.Session.ScopeByID("1"))
	assert.Equal(t, "9", h.Session.Active().ID)
}

func TestRegisteredSequentialModuleExposesBothVariants(t *testing.T) {
	h := testutil.NewHarness(t)
	h.MustLoadJSON(t, `{
		"name": "variants",
		"scopes": [{
			"id": "1",
			"allNodes": [],
			"TflipFlop": [{"objectType": "TflipFlop", "x": 100, "y": 100, "customData": {}}]
		}]
	}`)
	tffs := h.Session.Active().ElementsByTag("TflipFlop")
	require.Len(t, tffs, 1)
	_, hasT := tffs[0].(element.Element).NodeBindings()["tInp"]
	assert.True(t, hasT)
}
