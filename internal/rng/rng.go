package rng

// Generator supplies random numbers for shuffling
type Generator interface {
	// Intn returns a random number in [0, n)
	Intn(n int) int
}
