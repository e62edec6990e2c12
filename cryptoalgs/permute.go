package cryptoalgs

import "fmt"

// getBit reads bit i of data, counting from the most significant bit of the
// first byte.
func getBit(data []uint8, i int) uint8 {
	return (data[i/8] >> (7 - i%8)) & 1
}

// setBit sets bit i of data to one, same numbering as getBit.
func setBit(data []uint8, i int) {
	data[i/8] |= 1 << (7 - i%8)
}

// PermuteBits rearranges the bits of value according to rule. Each entry of
// rule names a source bit; the output has exactly len(rule) bits, packed
// MSB-first into the minimal number of bytes. Entries may repeat (expansion)
// or skip source bits (compression).
//
// startBitNum is the number the rule gives to the first source bit (the DES
// tables are 1-based). indexFromLSB selects LSB-first bit numbering within
// each byte; the DES tables number bits from the MSB, so they pass false.
func PermuteBits(value []uint8, rule []int, indexFromLSB bool, startBitNum int) ([]uint8, error) {
	outputBits := len(rule)
	result := make([]uint8, (outputBits+7)/8)

	for i, entry := range rule {
		sourcePos := entry - startBitNum
		if sourcePos < 0 || sourcePos >= len(value)*8 {
			return nil, fmt.Errorf("permutation entry %d out of range for %d-bit input", entry, len(value)*8)
		}

		var bit uint8
		if indexFromLSB {
			bit = (value[sourcePos/8] >> (sourcePos % 8)) & 1
		} else {
			bit = getBit(value, sourcePos)
		}

		if bit != 0 {
			if indexFromLSB {
				result[i/8] |= 1 << (i % 8)
			} else {
				setBit(result, i)
			}
		}
	}

	return result, nil
}

// XorBytes returns a ^ b. Both slices must have the same length.
func XorBytes(a []uint8, b []uint8) ([]uint8, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("xor length mismatch: %d vs %d", len(a), len(b))
	}

	result := make([]uint8, len(a))
	for i := range a {
		result[i] = a[i] ^ b[i]
	}
	return result, nil
}
