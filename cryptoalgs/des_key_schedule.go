package cryptoalgs

import (
	"fmt"
)

// DESKeySchedule derives the 16 48-bit round keys of DES from a 64-bit
// master key.
type DESKeySchedule struct{}

var PC1 = []int{
	57, 49, 41, 33, 25, 17, 9,
	1, 58, 50, 42, 34, 26, 18,
	10, 2, 59, 51, 43, 35, 27,
	19, 11, 3, 60, 52, 44, 36,
	63, 55, 47, 39, 31, 23, 15,
	7, 62, 54, 46, 38, 30, 22,
	14, 6, 61, 53, 45, 37, 29,
	21, 13, 5, 28, 20, 12, 4,
}

var PC2 = []int{
	14, 17, 11, 24, 1, 5,
	3, 28, 15, 6, 21, 10,
	23, 19, 12, 4, 26, 8,
	16, 7, 27, 20, 13, 2,
	41, 52, 31, 37, 47, 55,
	30, 40, 51, 45, 33, 48,
	44, 49, 39, 56, 34, 53,
	46, 42, 50, 36, 29, 32,
}

var SHIFT_SCHEDULE = []int{
	1, 1, 2, 2, 2, 2, 2, 2,
	1, 2, 2, 2, 2, 2, 2, 1,
}

// rotateLeft28 rotates a 28-bit value held in the low bits of a uint32.
func rotateLeft28(value uint32, shifts int) uint32 {
	shifts %= 28
	const mask28 = uint32(1)<<28 - 1
	return ((value << shifts) | (value >> (28 - shifts))) & mask28
}

// GenerateRoundKeys applies PC-1 to the master key, splits the result into
// the C and D halves, and produces one 48-bit key per round by rotating both
// halves per the shift schedule and compressing the pair through PC-2. The
// rotation state carries across rounds; the PC-2 output never feeds back.
func (dks *DESKeySchedule) GenerateRoundKeys(masterKey []uint8) ([][]uint8, error) {
	if len(masterKey) != 8 {
		return nil, fmt.Errorf("DES key must be 8 bytes (64 bits), got %d", len(masterKey))
	}

	permutedKey, err := PermuteBits(masterKey, PC1, false, 1)
	if err != nil {
		return nil, fmt.Errorf("PC1 permutation failed: %w", err)
	}

	var c, d uint32
	for i := 0; i < 28; i++ {
		c = c<<1 | uint32(getBit(permutedKey, i))
		d = d<<1 | uint32(getBit(permutedKey, i+28))
	}

	roundKeys := make([][]uint8, 0, 16)

	for round := 0; round < 16; round++ {
		c = rotateLeft28(c, SHIFT_SCHEDULE[round])
		d = rotateLeft28(d, SHIFT_SCHEDULE[round])

		cd := make([]uint8, 7)
		for i := 0; i < 28; i++ {
			if c&(1<<(27-i)) != 0 {
				setBit(cd, i)
			}
			if d&(1<<(27-i)) != 0 {
				setBit(cd, i+28)
			}
		}

		roundKey, err := PermuteBits(cd, PC2, false, 1)
		if err != nil {
			return nil, fmt.Errorf("PC2 permutation failed in round %d: %w", round, err)
		}

		roundKeys = append(roundKeys, roundKey)
	}

	return roundKeys, nil
}
