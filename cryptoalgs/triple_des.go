package cryptoalgs

import "fmt"

// TripleDESCipher chains three DES instances in EDE order. Key material
// selects the keying option: 24 bytes (three independent keys), 16 bytes
// (K1, K2, K1), or 8 bytes (one key, equivalent to single DES).
type TripleDESCipher struct {
	des1 *DESCipher
	des2 *DESCipher
	des3 *DESCipher
}

func NewTripleDESCipher() (*TripleDESCipher, error) {
	des1, err := NewDESCipher()
	if err != nil {
		return nil, fmt.Errorf("failed to create first DES instance: %w", err)
	}
	des2, err := NewDESCipher()
	if err != nil {
		return nil, fmt.Errorf("failed to create second DES instance: %w", err)
	}
	des3, err := NewDESCipher()
	if err != nil {
		return nil, fmt.Errorf("failed to create third DES instance: %w", err)
	}

	return &TripleDESCipher{des1: des1, des2: des2, des3: des3}, nil
}

func (tdes *TripleDESCipher) SetKey(key []uint8) error {
	var k1, k2, k3 []uint8

	switch len(key) {
	case 24:
		k1, k2, k3 = key[0:8], key[8:16], key[16:24]
	case 16:
		k1, k2, k3 = key[0:8], key[8:16], key[0:8]
	case 8:
		k1, k2, k3 = key, key, key
	default:
		return fmt.Errorf("3DES key must be 8, 16 or 24 bytes, got %d", len(key))
	}

	if err := tdes.des1.SetKey(k1); err != nil {
		return fmt.Errorf("failed to set key K1: %w", err)
	}
	if err := tdes.des2.SetKey(k2); err != nil {
		return fmt.Errorf("failed to set key K2: %w", err)
	}
	if err := tdes.des3.SetKey(k3); err != nil {
		return fmt.Errorf("failed to set key K3: %w", err)
	}

	return nil
}

// EncryptBlock applies encrypt-decrypt-encrypt with K1, K2, K3.
func (tdes *TripleDESCipher) EncryptBlock(plainBlock []uint8) ([]uint8, error) {
	if len(plainBlock) != 8 {
		return nil, fmt.Errorf("3DES block must be 8 bytes (64 bits), got %d", len(plainBlock))
	}

	stage1, err := tdes.des1.EncryptBlock(plainBlock)
	if err != nil {
		return nil, fmt.Errorf("EDE stage 1 failed: %w", err)
	}
	stage2, err := tdes.des2.DecryptBlock(stage1)
	if err != nil {
		return nil, fmt.Errorf("EDE stage 2 failed: %w", err)
	}
	cipherBlock, err := tdes.des3.EncryptBlock(stage2)
	if err != nil {
		return nil, fmt.Errorf("EDE stage 3 failed: %w", err)
	}

	return cipherBlock, nil
}

// DecryptBlock applies decrypt-encrypt-decrypt with K3, K2, K1.
func (tdes *TripleDESCipher) DecryptBlock(cipherBlock []uint8) ([]uint8, error) {
	if len(cipherBlock) != 8 {
		return nil, fmt.Errorf("3DES block must be 8 bytes (64 bits), got %d", len(cipherBlock))
	}

	stage1, err := tdes.des3.DecryptBlock(cipherBlock)
	if err != nil {
		return nil, fmt.Errorf("DED stage 1 failed: %w", err)
	}
	stage2, err := tdes.des2.EncryptBlock(stage1)
	if err != nil {
		return nil, fmt.Errorf("DED stage 2 failed: %w", err)
	}
	plainBlock, err := tdes.des1.DecryptBlock(stage2)
	if err != nil {
		return nil, fmt.Errorf("DED stage 3 failed: %w", err)
	}

	return plainBlock, nil
}
