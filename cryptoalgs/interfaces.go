package cryptoalgs

// IKeySchedule turns one master key into the ordered round keys a cipher
// consumes. Implementations must be deterministic.
type IKeySchedule interface {
	GenerateRoundKeys(masterKey []uint8) ([][]uint8, error)
}

// IRoundFunction is the per-round transformation of a Feistel network.
type IRoundFunction interface {
	Apply(inputBlock []uint8, roundKey []uint8) ([]uint8, error)
}

// ISymmetricCipher is a single-block cipher. EncryptBlock and DecryptBlock
// operate on exactly one block; callers are responsible for sizing.
type ISymmetricCipher interface {
	SetKey(key []uint8) error
	EncryptBlock(plainBlock []uint8) ([]uint8, error)
	DecryptBlock(cipherBlock []uint8) ([]uint8, error)
}
