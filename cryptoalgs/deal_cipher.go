package cryptoalgs

import (
	"fmt"
)

// DEALCipher is a 128-bit-block Feistel cipher whose round function is DES
// keyed by the round key. 16- and 24-byte keys run 6 rounds, 32-byte keys
// run 8.
type DEALCipher struct {
	feistel   *FeistelNetwork
	keyLength int
}

func NewDEALCipher(keyLength int) (*DEALCipher, error) {
	numRounds, err := dealRounds(keyLength)
	if err != nil {
		return nil, err
	}

	keySchedule, err := NewDEALKeySchedule(keyLength)
	if err != nil {
		return nil, fmt.Errorf("failed to create key schedule: %w", err)
	}
	roundFunction, err := NewDEALRoundFunction()
	if err != nil {
		return nil, fmt.Errorf("failed to create round function: %w", err)
	}

	feistel, err := NewFeistelNetwork(
		keySchedule,
		roundFunction,
		16,
		numRounds,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Feistel network: %w", err)
	}

	return &DEALCipher{
		feistel:   feistel,
		keyLength: keyLength,
	}, nil
}

func (deal *DEALCipher) GetKeyLength() int {
	return deal.keyLength
}

func (deal *DEALCipher) SetKey(key []uint8) error {
	if len(key) != deal.keyLength {
		return fmt.Errorf("key size must match configured DEAL key length: got %d, need %d", len(key), deal.keyLength)
	}

	if err := deal.feistel.SetKey(key); err != nil {
		return fmt.Errorf("failed to set key in feistel network: %w", err)
	}

	return nil
}

func (deal *DEALCipher) EncryptBlock(plainBlock []uint8) ([]uint8, error) {
	if len(plainBlock) != 16 {
		return nil, fmt.Errorf("DEAL block must be 16 bytes (128 bits), got %d", len(plainBlock))
	}

	cipherBlock, err := deal.feistel.EncryptBlock(plainBlock)
	if err != nil {
		return nil, fmt.Errorf("feistel encryption failed: %w", err)
	}

	return cipherBlock, nil
}

func (deal *DEALCipher) DecryptBlock(cipherBlock []uint8) ([]uint8, error) {
	if len(cipherBlock) != 16 {
		return nil, fmt.Errorf("DEAL block must be 16 bytes (128 bits), got %d", len(cipherBlock))
	}

	plainBlock, err := deal.feistel.DecryptBlock(cipherBlock)
	if err != nil {
		return nil, fmt.Errorf("feistel decryption failed: %w", err)
	}

	return plainBlock, nil
}
