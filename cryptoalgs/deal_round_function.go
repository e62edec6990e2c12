package cryptoalgs

import (
	"fmt"
	"sync"
)

// DEALRoundFunction is DES encryption of the 64-bit half-block under the
// 64-bit round key. DES instances are pooled so concurrent DEAL transforms
// never share a key schedule mid-derivation.
type DEALRoundFunction struct {
	desPool sync.Pool
}

func NewDEALRoundFunction() (*DEALRoundFunction, error) {
	// Build one instance up front so a broken DES constructor surfaces
	// here instead of on the first Apply.
	des, err := NewDESCipher()
	if err != nil {
		return nil, fmt.Errorf("inner DES setup failed: %w", err)
	}

	drf := &DEALRoundFunction{}
	drf.desPool.New = func() interface{} {
		instance, _ := NewDESCipher()
		return instance
	}
	drf.desPool.Put(des)

	return drf, nil
}

func (drf *DEALRoundFunction) Apply(inputBlock []uint8, roundKey []uint8) ([]uint8, error) {
	if len(inputBlock) != 8 {
		return nil, fmt.Errorf("half-block must be 8 bytes, got %d", len(inputBlock))
	}
	if len(roundKey) != 8 {
		return nil, fmt.Errorf("round key must be 8 bytes, got %d", len(roundKey))
	}

	des := drf.desPool.Get().(*DESCipher)
	defer drf.desPool.Put(des)

	if err := des.SetKey(roundKey); err != nil {
		return nil, fmt.Errorf("keying pooled DES instance failed: %w", err)
	}

	output, err := des.EncryptBlock(inputBlock)
	if err != nil {
		return nil, fmt.Errorf("inner DES encryption failed: %w", err)
	}

	return output, nil
}
