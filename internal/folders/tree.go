package folders

// TreeNode is one node of the display tree. The root node has a nil Folder.
type TreeNode struct {
	Folder      *Folder
	Children    []*TreeNode
	Subcircuits []string
}

// Tree builds the display tree for the given set of currently loaded
// subcircuit ids. The construction is self-healing:
//
//   - a folder whose declared parent does not exist is treated as a
//     root-level folder rather than dropped;
//   - a subcircuit mapped to a folder that no longer exists renders at root;
//   - stale map entries for subcircuits not in knownSubcircuits are ignored.
//
// No subcircuit is ever unreachable from the returned root.
func (s *Store) Tree(knownSubcircuits []string) *TreeNode {
	s.mu.RLock()
	defer s.mu.RUnlock()

	root := &TreeNode{}
	nodes := make(map[string]*TreeNode, len(s.order))
	for _, id := range s.order {
		f := *s.folders[id]
		nodes[id] = &TreeNode{Folder: &f}
	}

	for _, id := range s.order {
		n := nodes[id]
		parentID := n.Folder.ParentID
		if parent, ok := nodes[parentID]; ok && parentID != "" && s.rootedChain(id) {
			parent.Children = append(parent.Children, n)
			continue
		}
		root.Children = append(root.Children, n)
	}

	for _, sub := range knownSubcircuits {
		folderID, mapped := s.subcircuits[sub]
		if mapped {
			if n, ok := nodes[folderID]; ok {
				n.Subcircuits = append(n.Subcircuits, sub)
				continue
			}
		}
		root.Subcircuits = append(root.Subcircuits, sub)
	}

	return root
}

// rootedChain reports whether a folder's parent chain terminates at the root
// (or at a missing parent, which the caller already heals to root). A cyclic
// chain from a corrupt document reports false, which plants the folder at
// root instead of making the cycle unreachable.
func (s *Store) rootedChain(id string) bool {
	seen := map[string]struct{}{}
	for cur := s.folders[id].ParentID; cur != ""; {
		if _, looped := seen[cur]; looped {
			return false
		}
		seen[cur] = struct{}{}
		parent, ok := s.folders[cur]
		if !ok {
			return true
		}
		cur = parent.ParentID
	}
	return true
}
