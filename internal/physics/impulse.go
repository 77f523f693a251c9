package physics

// Impulses are the velocity kicks applied to the prompt link by edits.
type Impulses struct {
	// Edit is an ordinary edit or cursor move.
	Edit float64
	// Edge is an edit that hits the edge of the text or involves a selection.
	Edge float64
	// Word is a word-wise delete.
	Word float64
}

// DefaultImpulses returns the stock impulse magnitudes.
func DefaultImpulses() Impulses {
	return Impulses{Edit: 10, Edge: 30, Word: 50}
}
