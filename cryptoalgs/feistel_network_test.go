package cryptoalgs

import (
	"bytes"
	"testing"
)

// stubKeySchedule hands out a fixed number of two-byte round keys derived by
// repeating the master key bytes.
type stubKeySchedule struct {
	rounds int
}

func (s *stubKeySchedule) GenerateRoundKeys(masterKey []uint8) ([][]uint8, error) {
	roundKeys := make([][]uint8, s.rounds)
	for i := range roundKeys {
		roundKeys[i] = []uint8{masterKey[i%len(masterKey)], uint8(i)}
	}
	return roundKeys, nil
}

// stubRoundFunction XORs the half-block with the round key.
type stubRoundFunction struct{}

func (s *stubRoundFunction) Apply(inputBlock []uint8, roundKey []uint8) ([]uint8, error) {
	return XorBytes(inputBlock, roundKey)
}

func TestFeistelNetworkConstructorValidation(t *testing.T) {
	schedule := &stubKeySchedule{rounds: 4}
	roundFunc := &stubRoundFunction{}

	if _, err := NewFeistelNetwork(nil, roundFunc, 4, 4); err == nil {
		t.Error("expected error for nil key schedule, got nil")
	}
	if _, err := NewFeistelNetwork(schedule, nil, 4, 4); err == nil {
		t.Error("expected error for nil round function, got nil")
	}
	if _, err := NewFeistelNetwork(schedule, roundFunc, 5, 4); err == nil {
		t.Error("expected error for odd block size, got nil")
	}
	if _, err := NewFeistelNetwork(schedule, roundFunc, 0, 4); err == nil {
		t.Error("expected error for zero block size, got nil")
	}
	if _, err := NewFeistelNetwork(schedule, roundFunc, 4, 0); err == nil {
		t.Error("expected error for zero rounds, got nil")
	}
}

func TestFeistelNetworkRoundTrip(t *testing.T) {
	fn, err := NewFeistelNetwork(&stubKeySchedule{rounds: 8}, &stubRoundFunction{}, 4, 8)
	if err != nil {
		t.Fatalf("NewFeistelNetwork failed: %v", err)
	}
	if err := fn.SetKey([]uint8{0x5A, 0xC3}); err != nil {
		t.Fatalf("SetKey failed: %v", err)
	}

	for _, block := range [][]uint8{
		{0x00, 0x00, 0x00, 0x00},
		{0xDE, 0xAD, 0xBE, 0xEF},
		{0x01, 0x00, 0xFF, 0x80},
	} {
		encrypted, err := fn.EncryptBlock(block)
		if err != nil {
			t.Fatalf("EncryptBlock(%x) failed: %v", block, err)
		}

		decrypted, err := fn.DecryptBlock(encrypted)
		if err != nil {
			t.Fatalf("DecryptBlock(%x) failed: %v", encrypted, err)
		}

		if !bytes.Equal(decrypted, block) {
			t.Errorf("round trip failed: got %x, want %x", decrypted, block)
		}
	}
}

func TestFeistelNetworkSetKeyCountMismatch(t *testing.T) {
	// Schedule yields 4 keys but the network is configured for 6 rounds.
	fn, err := NewFeistelNetwork(&stubKeySchedule{rounds: 4}, &stubRoundFunction{}, 4, 6)
	if err != nil {
		t.Fatalf("NewFeistelNetwork failed: %v", err)
	}

	if err := fn.SetKey([]uint8{0x01}); err == nil {
		t.Fatal("expected error for round key count mismatch, got nil")
	}
}

func TestFeistelNetworkRequiresKey(t *testing.T) {
	fn, err := NewFeistelNetwork(&stubKeySchedule{rounds: 2}, &stubRoundFunction{}, 4, 2)
	if err != nil {
		t.Fatalf("NewFeistelNetwork failed: %v", err)
	}

	if _, err := fn.EncryptBlock(make([]uint8, 4)); err == nil {
		t.Error("expected error before SetKey, got nil")
	}
	if err := fn.SetKey([]uint8{0x01}); err != nil {
		t.Fatalf("SetKey failed: %v", err)
	}
	if _, err := fn.EncryptBlock(make([]uint8, 3)); err == nil {
		t.Error("expected error for wrong block size, got nil")
	}
}

func TestFeistelNetworkGetters(t *testing.T) {
	fn, err := NewFeistelNetwork(&stubKeySchedule{rounds: 3}, &stubRoundFunction{}, 10, 3)
	if err != nil {
		t.Fatalf("NewFeistelNetwork failed: %v", err)
	}

	if fn.GetBlockSize() != 10 {
		t.Errorf("GetBlockSize() = %d, want 10", fn.GetBlockSize())
	}
	if fn.GetRoundsCount() != 3 {
		t.Errorf("GetRoundsCount() = %d, want 3", fn.GetRoundsCount())
	}
}
