package bitarray

// BitArray is a fixed-size sequence of boolean flags packed into 64-bit
// words, addressable by zero-based index. The size is fixed at construction;
// accesses outside [0, size) fail with *OutOfRangeError and leave the array
// unchanged.
//
// A BitArray is not safe for concurrent use; callers sharing one across
// goroutines must synchronize externally.
type BitArray interface {
	// Get returns the bit at position i.
	Get(i int) (bool, error)

	// Set writes the bit at position i: 1 if v is true, 0 if false.
	Set(i int, v bool) error

	// Size returns the total number of addressable bits.
	Size() int
}
