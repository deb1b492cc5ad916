package folders

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func treeNames(nodes []*TreeNode) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Folder.Name)
	}
	return out
}

func TestTreeNestsFoldersAndSubcircuits(t *testing.T) {
	s := NewStore(nil, nil)
	s.Load([]Folder{
		{ID: "f1", Name: "adders"},
		{ID: "f2", Name: "ripple", ParentID: "f1"},
	}, map[string]string{
		"sub-a": "f2",
	})

	root := s.Tree([]string{"sub-a", "sub-b"})

	require.Len(t, root.Children, 1)
	adders := root.Children[0]
	assert.Equal(t, "adders", adders.Folder.Name)
	require.Len(t, adders.Children, 1)
	assert.Equal(t, []string{"sub-a"}, adders.Children[0].Subcircuits)

	// A loaded subcircuit with no map entry renders at root.
	assert.Equal(t, []string{"sub-b"}, root.Subcircuits)
}

func TestTreeHealsMissingParent(t *testing.T) {
	s := NewStore(nil, nil)
	s.Load([]Folder{
		{ID: "f1", Name: "orphan", ParentID: "ghost"},
	}, nil)

	root := s.Tree(nil)
	assert.Equal(t, []string{"orphan"}, treeNames(root.Children))
}

func TestTreeHealsParentCycle(t *testing.T) {
	s := NewStore(nil, nil)
	s.Load([]Folder{
		{ID: "f1", Name: "a", ParentID: "f2"},
		{ID: "f2", Name: "b", ParentID: "f1"},
	}, map[string]string{"sub-a": "f1"})

	root := s.Tree([]string{"sub-a"})

	// Both folders of the cycle surface at root rather than becoming
	// unreachable.
	assert.ElementsMatch(t, []string{"a", "b"}, treeNames(root.Children))
	for _, n := range root.Children {
		if n.Folder.ID == "f1" {
			assert.Equal(t, []string{"sub-a"}, n.Subcircuits)
		}
	}
}

func TestTreeIgnoresStaleMapEntries(t *testing.T) {
	s := NewStore(nil, nil)
	s.Load([]Folder{
		{ID: "f1", Name: "adders"},
	}, map[string]string{
		"sub-gone":  "f1",      // not in the known set
		"sub-alive": "deleted", // folder no longer exists
	})

	root := s.Tree([]string{"sub-alive"})
	require.Len(t, root.Children, 1)
	assert.Empty(t, root.Children[0].Subcircuits)
	assert.Equal(t, []string{"sub-alive"}, root.Subcircuits)
}

func TestTreeFullStructure(t *testing.T) {
	s := NewStore(nil, nil)
	s.Load([]Folder{
		{ID: "f1", Name: "adders"},
		{ID: "f2", Name: "ripple", ParentID: "f1"},
		{ID: "f3", Name: "misc"},
	}, map[string]string{
		"sub-a": "f2",
		"sub-b": "f3",
	})

	want := &TreeNode{
		Children: []*TreeNode{
			{
				Folder: &Folder{ID: "f1", Name: "adders"},
				Children: []*TreeNode{
					{
						Folder:      &Folder{ID: "f2", Name: "ripple", ParentID: "f1"},
						Subcircuits: []string{"sub-a"},
					},
				},
			},
			{
				Folder:      &Folder{ID: "f3", Name: "misc"},
				Subcircuits: []string{"sub-b"},
			},
		},
		Subcircuits: []string{"sub-c"},
	}

	got := s.Tree([]string{"sub-a", "sub-b", "sub-c"})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestTreeOfEmptyStore(t *testing.T) {
	s := NewStore(nil, nil)
	root := s.Tree([]string{"only"})
	assert.Empty(t, root.Children)
	assert.Equal(t, []string{"only"}, root.Subcircuits)
	assert.Nil(t, root.Folder)
}
