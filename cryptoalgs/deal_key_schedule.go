package cryptoalgs

import (
	"fmt"
)

// DEALKeySchedule derives 64-bit DEAL round keys by encrypting the master
// key's 8-byte blocks, XOR-masked with the round number, under a fixed DES
// key.
type DEALKeySchedule struct {
	keyLength int
	numRounds int
}

var DEAL_FIXED_KEY = []uint8{
	0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF,
}

func dealRounds(keyLength int) (int, error) {
	switch keyLength {
	case 16, 24:
		return 6, nil
	case 32:
		return 8, nil
	default:
		return 0, fmt.Errorf("DEAL key length must be 16, 24 or 32 bytes, got %d", keyLength)
	}
}

func NewDEALKeySchedule(keyLength int) (*DEALKeySchedule, error) {
	numRounds, err := dealRounds(keyLength)
	if err != nil {
		return nil, err
	}

	return &DEALKeySchedule{
		keyLength: keyLength,
		numRounds: numRounds,
	}, nil
}

func (dks *DEALKeySchedule) GenerateRoundKeys(masterKey []uint8) ([][]uint8, error) {
	if len(masterKey) != dks.keyLength {
		return nil, fmt.Errorf("master key size doesn't match configured key length: got %d, need %d", len(masterKey), dks.keyLength)
	}

	des, err := NewDESCipher()
	if err != nil {
		return nil, fmt.Errorf("failed to create DES cipher: %w", err)
	}
	if err := des.SetKey(DEAL_FIXED_KEY); err != nil {
		return nil, fmt.Errorf("failed to set fixed DES key: %w", err)
	}

	keyBlocks := make([][]uint8, 0, dks.keyLength/8)
	for i := 0; i < dks.keyLength; i += 8 {
		block := make([]uint8, 8)
		copy(block, masterKey[i:i+8])
		keyBlocks = append(keyBlocks, block)
	}

	roundKeys := make([][]uint8, dks.numRounds)

	for round := 0; round < dks.numRounds; round++ {
		input := make([]uint8, 8)
		copy(input, keyBlocks[round%len(keyBlocks)])
		for i := range input {
			input[i] ^= uint8(round + 1)
		}

		roundKey, err := des.EncryptBlock(input)
		if err != nil {
			return nil, fmt.Errorf("DES encryption failed for round key %d: %w", round, err)
		}

		roundKeys[round] = roundKey
	}

	return roundKeys, nil
}
