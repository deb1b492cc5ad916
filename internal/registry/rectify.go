package registry

// rectifications translates retired or renamed type tags to their current
// equivalents so documents written by older save routines still resolve to a
// constructible type.
var rectifications = map[string]string{
	"FlipFlop": "DflipFlop",
	"Ram":      "Rom",
	"DLatch":   "Dlatch",
}

// Rectify normalizes a possibly-retired type tag. Unknown tags pass through
// unchanged; Lookup decides whether they resolve.
func Rectify(tag string) string {
	if current, ok := rectifications[tag]; ok {
		return current
	}
	return tag
}
