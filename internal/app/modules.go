package app

import (
	"github.com/kunal-10-cloud/CircuitVerse/elements/gates"
	"github.com/kunal-10-cloud/CircuitVerse/elements/io"
	"github.com/kunal-10-cloud/CircuitVerse/elements/memory"
	"github.com/kunal-10-cloud/CircuitVerse/elements/sequential"
	"github.com/kunal-10-cloud/CircuitVerse/elements/subcircuit"
	"github.com/kunal-10-cloud/CircuitVerse/internal/registry"
)

// coreModules is the definitive list of all element modules that are
// compiled into the binary. Registration order is also the per-tag
// reconstruction order, so io comes first: subcircuit pin counts depend on
// the child scope's Input/Output elements.
var coreModules = []registry.Module{
	&io.Module{},
	&gates.Module{},
	&sequential.Module{},
	&memory.Module{},
	&subcircuit.Module{},
}
