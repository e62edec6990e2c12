package cryptoalgs

import "fmt"

// MerkleDamgardHash iterates a direct compression function f(state, block)
// over the padded message. Unlike DaviesMeyerHash it does not use a block
// cipher; state and message bytes are mixed with XOR, rotation and addition,
// followed by a neighbour-diffusion pass.
type MerkleDamgardHash struct {
	blockSize  int
	outputSize int
	iv         []uint8
}

// NewMerkleDamgardHash configures the block and digest widths. The
// compression function reads at most outputSize bytes of each block, so an
// outputSize smaller than blockSize leaves the block tail, length padding
// included, without influence on the digest; pick outputSize >= blockSize
// when that binding matters.
func NewMerkleDamgardHash(blockSize int, outputSize int) (*MerkleDamgardHash, error) {
	if blockSize <= 0 {
		return nil, fmt.Errorf("block size must be positive, got %d", blockSize)
	}
	if outputSize <= 0 || outputSize%4 != 0 {
		return nil, fmt.Errorf("output size must be a positive multiple of 4, got %d", outputSize)
	}

	iv := make([]uint8, outputSize)
	for i := 0; i < outputSize; i += 4 {
		copy(iv[i:], []uint8{0x67, 0x45, 0x23, 0x01})
	}

	return &MerkleDamgardHash{
		blockSize:  blockSize,
		outputSize: outputSize,
		iv:         iv,
	}, nil
}

func (md *MerkleDamgardHash) GetOutputSize() int {
	return md.outputSize
}

func (md *MerkleDamgardHash) compress(state []uint8, block []uint8) []uint8 {
	result := make([]uint8, md.outputSize)

	for i := 0; i < md.outputSize; i++ {
		stateByte := state[i%len(state)]
		blockByte := block[i%len(block)]

		mixed := stateByte ^ blockByte
		mixed = mixed<<3 | mixed>>5
		mixed += stateByte + blockByte

		result[i] = mixed
	}

	// Diffusion pass over neighbours. Runs in place, so each step already
	// sees the updated previous byte.
	for i := 0; i < md.outputSize; i++ {
		prev := result[(i-1+md.outputSize)%md.outputSize]
		next := result[(i+1)%md.outputSize]
		result[i] ^= prev ^ next
	}

	return result
}

// Sum returns the digest of message.
func (md *MerkleDamgardHash) Sum(message []uint8) []uint8 {
	padded := mdStrengtheningPad(message, md.blockSize)

	state := make([]uint8, md.outputSize)
	copy(state, md.iv)

	for i := 0; i < len(padded); i += md.blockSize {
		state = md.compress(state, padded[i:i+md.blockSize])
	}

	return state
}
