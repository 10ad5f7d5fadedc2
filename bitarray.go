package bitarray

import "fmt"

// wordBits is the width of a single storage word.
const wordBits = 64

// OutOfRangeError reports an access at an index outside [0, Size).
type OutOfRangeError struct {
	Size     int // fixed size of the array
	Position int // offending index
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("given position: %d is out of the bitarray size %d", e.Position, e.Size)
}

// bitArrayImpl is a concrete implementation of the BitArray interface.
type bitArrayImpl struct {
	words []uint64 // Backing storage: each word stores 64 bits
	size  int      // Total number of addressable bits
}

var _ BitArray = (*bitArrayImpl)(nil)

// NewBitArray creates a bit array holding size bits, all initialized to
// false. Construction never fails: a size <= 0 yields a zero-length array on
// which every Get and Set fails with *OutOfRangeError.
func NewBitArray(size int) BitArray {
	if size < 0 {
		size = 0
	}
	// Number of words needed: ceil(size / 64)
	numWords := (size + wordBits - 1) / wordBits
	return &bitArrayImpl{
		words: make([]uint64, numWords),
		size:  size,
	}
}

// Get returns the bit at position i.
func (b *bitArrayImpl) Get(i int) (bool, error) {
	if i < 0 || i >= b.size {
		return false, &OutOfRangeError{Size: b.size, Position: i}
	}
	return b.words[i/wordBits]&(1<<(i%wordBits)) != 0, nil
}

// Set writes the bit at position i. All other bits are left unchanged.
func (b *bitArrayImpl) Set(i int, v bool) error {
	if i < 0 || i >= b.size {
		return &OutOfRangeError{Size: b.size, Position: i}
	}
	mask := uint64(1) << (i % wordBits)
	if v {
		b.words[i/wordBits] |= mask
	} else {
		b.words[i/wordBits] &^= mask
	}
	return nil
}

// Size returns the total number of addressable bits.
func (b *bitArrayImpl) Size() int {
	return b.size
}
