package registry

import "errors"

// ErrUnknownElementType reports a document type tag that resolves to nothing
// even after rectification. Documents are assumed to come from a compatible
// save routine, so this is treated as corruption.
var ErrUnknownElementType = errors.New("unknown element type")
