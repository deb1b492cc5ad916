// Package folders maintains one scope's tree of named subcircuit folders and
// the mapping from subcircuit identity to owning folder. The root container is
// implicit: a subcircuit with no map entry lives at the root.
//
// Every mutation is atomic with respect to a single caller: operations
// validate first and mutate only on success, so no caller ever observes a
// partially-applied move or delete.
package folders

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Folder is one organizational node. An empty ParentID means the folder sits
// directly under the implicit root.
type Folder struct {
	ID       string
	Name     string
	ParentID string
}

// Store implements the folder collection and subcircuit map for one scope
// using maps guarded by a mutex.
type Store struct {
	mu          sync.RWMutex
	order       []string // folder ids in creation order, for stable traversal
	folders     map[string]*Folder
	subcircuits map[string]string // subcircuit id -> folder id

	// exists validates subcircuit identities on Move. A nil func accepts any
	// id (used by scopes loaded standalone).
	exists func(subcircuitID string) bool

	// persist is invoked after every state-changing mutation so backup
	// scheduling stays coupled to folder operations. No-ops never call it.
	persist func()
}

// NewStore creates an empty store. Both funcs may be nil.
func NewStore(exists func(string) bool, persist func()) *Store {
	return &Store{
		folders:     make(map[string]*Folder),
		subcircuits: make(map[string]string),
		exists:      exists,
		persist:     persist,
	}
}

// Load replaces the store contents with reconstructed document state. Folder
// order follows the document's collection order.
func (s *Store) Load(fs []Folder, subcircuitMap map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = s.order[:0]
	s.folders = make(map[string]*Folder, len(fs))
	for _, f := range fs {
		f := f
		if _, dup := s.folders[f.ID]; dup {
			continue
		}
		s.folders[f.ID] = &f
		s.order = append(s.order, f.ID)
	}

	s.subcircuits = make(map[string]string, len(subcircuitMap))
	for sub, folder := range subcircuitMap {
		s.subcircuits[sub] = folder
	}
}

// Create appends a folder with a fresh unique identifier under the given
// parent ("" for root) and returns the new identifier.
func (s *Store) Create(name, parentID string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("folder name must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if parentID != "" {
		if _, ok := s.folders[parentID]; !ok {
			return "", fmt.Errorf("parent folder %q does not exist", parentID)
		}
	}

	id := uuid.NewString()
	s.folders[id] = &Folder{ID: id, Name: name, ParentID: parentID}
	s.order = append(s.order, id)
	s.notify()
	return id, nil
}

// Rename updates a folder's name in place.
func (s *Store) Rename(folderID, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return fmt.Errorf("folder name must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.folders[folderID]
	if !ok {
		return fmt.Errorf("folder %q does not exist", folderID)
	}
	if f.Name == newName {
		return nil
	}
	f.Name = newName
	s.notify()
	return nil
}

// Delete removes a folder. Subcircuits it owned are reassigned to root, and
// child folders are promoted to the deleted folder's parent (root when the
// deleted folder was itself top-level), so no dangling references remain.
func (s *Store) Delete(folderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.folders[folderID]
	if !ok {
		return fmt.Errorf("folder %q does not exist", folderID)
	}

	for sub, owner := range s.subcircuits {
		if owner == folderID {
			delete(s.subcircuits, sub)
		}
	}
	for _, child := range s.folders {
		if child.ParentID == folderID {
			child.ParentID = f.ParentID
		}
	}

	delete(s.folders, folderID)
	for i, id := range s.order {
		if id == folderID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.notify()
	return nil
}

// Move reassigns a subcircuit to a folder, or to the root when folderID is
// empty. Moving a subcircuit to its current container is a no-op and triggers
// no persistence side effect. On any validation failure the map is unchanged.
func (s *Store) Move(subcircuitID, folderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.exists != nil && !s.exists(subcircuitID) {
		return fmt.Errorf("subcircuit %q does not exist", subcircuitID)
	}
	if folderID != "" {
		if _, ok := s.folders[folderID]; !ok {
			return fmt.Errorf("target folder %q does not exist", folderID)
		}
	}

	current, mapped := s.subcircuits[subcircuitID]
	if folderID == "" {
		if !mapped {
			return nil
		}
		delete(s.subcircuits, subcircuitID)
		s.notify()
		return nil
	}
	if mapped && current == folderID {
		return nil
	}
	s.subcircuits[subcircuitID] = folderID
	s.notify()
	return nil
}

// FolderOf returns the owning folder of a subcircuit, or ok=false for root.
func (s *Store) FolderOf(subcircuitID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.subcircuits[subcircuitID]
	return id, ok
}

// Folders returns a snapshot of the folder collection in creation order.
func (s *Store) Folders() []Folder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Folder, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.folders[id])
	}
	return out
}

// SubcircuitMap returns a copy of the subcircuit-to-folder map.
func (s *Store) SubcircuitMap() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.subcircuits))
	for k, v := range s.subcircuits {
		out[k] = v
	}
	return out
}

// notify must be called with the write lock held, after a successful mutation.
func (s *Store) notify() {
	if s.persist != nil {
		s.persist()
	}
}
