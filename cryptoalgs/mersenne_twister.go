package cryptoalgs

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

const (
	mtStateWords = 624
	mtOffset     = 397
	mtMatrixA    = uint32(0x9908B0DF)
	mtUpperMask  = uint32(0x80000000)

	// MersenneTwisterStateSize is the number of bytes of state material a
	// deterministic MersenneTwister is built from.
	MersenneTwisterStateSize = mtStateWords * 4
)

// MersenneTwister is a generator over a 624-word twisted state. Next hands
// out state words directly and refreshes each word it consumed with the
// twist recurrence, so the state rolls forward one word at a time rather
// than in whole-state batches.
type MersenneTwister struct {
	state    []uint32
	nextWord int
}

// NewMersenneTwister draws the initial state from crypto/rand.
func NewMersenneTwister() (*MersenneTwister, error) {
	seed := make([]uint8, MersenneTwisterStateSize)
	if _, err := rand.Read(seed); err != nil {
		return nil, fmt.Errorf("failed to gather initial state: %w", err)
	}

	return NewMersenneTwisterFromState(seed)
}

// NewMersenneTwisterFromState builds a generator from explicit state
// material, for reproducible sequences. The state must be exactly
// MersenneTwisterStateSize bytes, read as big-endian 32-bit words.
func NewMersenneTwisterFromState(stateBytes []uint8) (*MersenneTwister, error) {
	if len(stateBytes) != MersenneTwisterStateSize {
		return nil, fmt.Errorf("state must be %d bytes, got %d", MersenneTwisterStateSize, len(stateBytes))
	}

	state := make([]uint32, mtStateWords)
	for i := range state {
		state[i] = binary.BigEndian.Uint32(stateBytes[i*4:])
	}

	return &MersenneTwister{state: state}, nil
}

// refresh replaces the next n state words using the twist recurrence: the
// sign bit of the current word joined with the following word, shifted right
// and conditionally folded with the twist matrix, then XORed into the word
// mtOffset positions ahead.
func (mt *MersenneTwister) refresh(n int) {
	for k := 0; k < n; k++ {
		cword := mt.nextWord
		nword := (cword + 1) % mtStateWords

		input := mt.state[cword]&mtUpperMask | mt.state[nword]
		twisted := input >> 1
		if input&mtUpperMask != 0 {
			twisted ^= mtMatrixA
		}

		mt.state[cword] = mt.state[(cword+mtOffset)%mtStateWords] ^ twisted
		mt.nextWord = nword
	}
}

// Next returns the next n four-byte words of output and refreshes the n
// state positions it consumed.
func (mt *MersenneTwister) Next(n int) ([]uint8, error) {
	if n <= 0 {
		return nil, fmt.Errorf("word count must be positive, got %d", n)
	}

	output := make([]uint8, 0, n*4)
	for w := mt.nextWord; w < mt.nextWord+n; w++ {
		output = binary.BigEndian.AppendUint32(output, mt.state[w%mtStateWords])
	}

	mt.refresh(n)
	return output, nil
}
