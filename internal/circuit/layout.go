package circuit

// Layout describes the geometry a scope presents when embedded as a
// subcircuit: outer box, title position, and whether the title is drawn.
type Layout struct {
	Width        int
	Height       int
	TitleX       int
	TitleY       int
	TitleEnabled bool
}

// Fixed parameters of the synthesized layout for documents that predate stored
// layouts. Changing any of these silently re-shapes every legacy subcircuit,
// so they are pinned by tests.
const (
	synthesizedWidth  = 100
	portPitch         = 20
	synthesizedMargin = 20
	synthesizedTitleX = 50
	synthesizedTitleY = 13
)

// SynthesizeLayout derives the layout an old document would have stored had
// the format existed at the time: fixed width, height driven by the larger of
// the two port counts, fixed title position, title visible.
func SynthesizeLayout(inputCount, outputCount int) Layout {
	ports := inputCount
	if outputCount > ports {
		ports = outputCount
	}
	return Layout{
		Width:        synthesizedWidth,
		Height:       ports*portPitch + synthesizedMargin,
		TitleX:       synthesizedTitleX,
		TitleY:       synthesizedTitleY,
		TitleEnabled: true,
	}
}

// PortY returns the y coordinate of the i-th of count ports, spaced evenly
// around the middle of a synthesized layout of the given height.
func PortY(height, count, i int) int {
	return height/2 - count*10 + 20*i + 10
}
