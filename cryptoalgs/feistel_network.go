package cryptoalgs

import (
	"fmt"
)

// FeistelNetwork runs an iterated Feistel transformation over a configurable
// key schedule and round function. Encryption and decryption share one round
// loop; decryption only reverses the round-key order.
type FeistelNetwork struct {
	keySchedule   IKeySchedule
	roundFunction IRoundFunction

	blockSize   int
	roundsCount int

	roundKeys [][]uint8
}

func NewFeistelNetwork(
	keyScheduleImpl IKeySchedule,
	roundFunctionImpl IRoundFunction,
	blockSize int,
	roundsCount int,
) (*FeistelNetwork, error) {

	if keyScheduleImpl == nil {
		return nil, fmt.Errorf("key schedule implementation cannot be nil")
	}
	if roundFunctionImpl == nil {
		return nil, fmt.Errorf("round function implementation cannot be nil")
	}
	if blockSize <= 0 || blockSize%2 != 0 {
		return nil, fmt.Errorf("block size must be positive and even, got %d", blockSize)
	}
	if roundsCount <= 0 {
		return nil, fmt.Errorf("rounds count must be positive, got %d", roundsCount)
	}

	return &FeistelNetwork{
		keySchedule:   keyScheduleImpl,
		roundFunction: roundFunctionImpl,
		blockSize:     blockSize,
		roundsCount:   roundsCount,
	}, nil
}

func (fn *FeistelNetwork) GetBlockSize() int {
	return fn.blockSize
}

func (fn *FeistelNetwork) GetRoundsCount() int {
	return fn.roundsCount
}

// SetKey derives and stores the round keys for the given master key. The
// schedule must yield exactly one key per round.
func (fn *FeistelNetwork) SetKey(key []uint8) error {
	if len(key) == 0 {
		return fmt.Errorf("key cannot be empty")
	}

	roundKeys, err := fn.keySchedule.GenerateRoundKeys(key)
	if err != nil {
		return fmt.Errorf("failed to generate round keys: %w", err)
	}

	if len(roundKeys) != fn.roundsCount {
		return fmt.Errorf("key schedule produced %d round keys, need %d", len(roundKeys), fn.roundsCount)
	}

	fn.roundKeys = roundKeys
	return nil
}

// transform runs the round loop with the keys in the order given. Each round
// computes newR = L xor f(R, k) and carries the untouched R forward as the
// new L. The output is assembled as R||L, undoing the last round's swap, so
// that running transform again with reversed keys inverts it.
func (fn *FeistelNetwork) transform(block []uint8, roundKeys [][]uint8) ([]uint8, error) {
	halfSize := fn.blockSize / 2

	left := make([]uint8, halfSize)
	right := make([]uint8, halfSize)
	copy(left, block[:halfSize])
	copy(right, block[halfSize:])

	for round, roundKey := range roundKeys {
		functionOutput, err := fn.roundFunction.Apply(right, roundKey)
		if err != nil {
			return nil, fmt.Errorf("round function error in round %d: %w", round, err)
		}

		newRight, err := XorBytes(left, functionOutput)
		if err != nil {
			return nil, fmt.Errorf("xor operation failed in round %d: %w", round, err)
		}

		left = right
		right = newRight
	}

	result := make([]uint8, fn.blockSize)
	copy(result[:halfSize], right)
	copy(result[halfSize:], left)
	return result, nil
}

func (fn *FeistelNetwork) checkBlock(block []uint8) error {
	if len(block) != fn.blockSize {
		return fmt.Errorf("block size must match configured block size: got %d, need %d", len(block), fn.blockSize)
	}
	if len(fn.roundKeys) == 0 {
		return fmt.Errorf("key not set, call SetKey() first")
	}
	return nil
}

func (fn *FeistelNetwork) EncryptBlock(plainBlock []uint8) ([]uint8, error) {
	if err := fn.checkBlock(plainBlock); err != nil {
		return nil, err
	}
	return fn.transform(plainBlock, fn.roundKeys)
}

func (fn *FeistelNetwork) DecryptBlock(cipherBlock []uint8) ([]uint8, error) {
	if err := fn.checkBlock(cipherBlock); err != nil {
		return nil, err
	}

	reversed := make([][]uint8, len(fn.roundKeys))
	for i, roundKey := range fn.roundKeys {
		reversed[len(fn.roundKeys)-1-i] = roundKey
	}

	return fn.transform(cipherBlock, reversed)
}
