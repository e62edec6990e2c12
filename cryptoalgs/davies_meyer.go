package cryptoalgs

import (
	"encoding/binary"
	"fmt"
)

// DaviesMeyerHash builds a one-way compression function from the DES block
// cipher: H_i = E(M_i, H_{i-1}) xor H_{i-1}, where the message block is the
// cipher key and the running state is the plaintext. The message is padded
// with Merkle-Damgard strengthening before compression.
type DaviesMeyerHash struct {
	cipher *DESCipher
}

var daviesMeyerIV = []uint8{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF}

const daviesMeyerBlockSize = 8

func NewDaviesMeyerHash() (*DaviesMeyerHash, error) {
	cipher, err := NewDESCipher()
	if err != nil {
		return nil, fmt.Errorf("failed to create DES cipher: %w", err)
	}

	return &DaviesMeyerHash{cipher: cipher}, nil
}

// compress computes E(block, state) xor state. The feed-forward XOR is what
// makes the step one-way.
func (dm *DaviesMeyerHash) compress(state []uint8, block []uint8) ([]uint8, error) {
	if err := dm.cipher.SetKey(block); err != nil {
		return nil, fmt.Errorf("failed to key compression cipher: %w", err)
	}

	encrypted, err := dm.cipher.EncryptBlock(state)
	if err != nil {
		return nil, fmt.Errorf("compression encryption failed: %w", err)
	}

	return XorBytes(encrypted, state)
}

// Sum returns the 8-byte digest of message.
func (dm *DaviesMeyerHash) Sum(message []uint8) ([]uint8, error) {
	padded := mdStrengtheningPad(message, daviesMeyerBlockSize)

	state := make([]uint8, daviesMeyerBlockSize)
	copy(state, daviesMeyerIV)

	for i := 0; i < len(padded); i += daviesMeyerBlockSize {
		next, err := dm.compress(state, padded[i:i+daviesMeyerBlockSize])
		if err != nil {
			return nil, fmt.Errorf("compression failed at block %d: %w", i/daviesMeyerBlockSize, err)
		}
		state = next
	}

	return state, nil
}

// mdStrengtheningPad appends the 0x80 marker, zero fill, and the original
// length in bits as a 64-bit big-endian integer, so the padded length is a
// multiple of blockSize.
func mdStrengtheningPad(message []uint8, blockSize int) []uint8 {
	messageLen := len(message)

	padded := make([]uint8, 0, messageLen+blockSize+9)
	padded = append(padded, message...)
	padded = append(padded, 0x80)

	zeros := (blockSize - (len(padded)+8)%blockSize) % blockSize
	padded = append(padded, make([]uint8, zeros)...)

	padded = binary.BigEndian.AppendUint64(padded, uint64(messageLen)*8)
	return padded
}
