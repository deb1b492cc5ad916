package loader

import "errors"

// ErrScopeNotLoaded reports a subcircuit record referencing a scope that has
// not been constructed yet. Documents list scopes in dependency order, so a
// forward reference means the document is corrupt.
var ErrScopeNotLoaded = errors.New("referenced scope not loaded")
