package i

// Chooser is a source of uniform random choices.
type Chooser interface {
	// Intn returns a uniformly distributed index in [0, n). n must be positive.
	Intn(n int) int
}

// SeededChooser is a Chooser that can report the seed it was created with.
type SeededChooser interface {
	Chooser
	Seed() int64
}
