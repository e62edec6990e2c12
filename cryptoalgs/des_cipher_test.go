package cryptoalgs

import (
	"bytes"
	"encoding/hex"
	"math/bits"
	"testing"
)

func mustHex(t *testing.T, s string) []uint8 {
	t.Helper()
	data, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return data
}

func newKeyedDES(t *testing.T, key []uint8) *DESCipher {
	t.Helper()
	des, err := NewDESCipher()
	if err != nil {
		t.Fatalf("NewDESCipher failed: %v", err)
	}
	if err := des.SetKey(key); err != nil {
		t.Fatalf("SetKey(%x) failed: %v", key, err)
	}
	return des
}

// Published single-block vectors; the definitive compliance check for the
// table values and the Feistel assembly order.
func TestDESKnownAnswerVectors(t *testing.T) {
	vectors := []struct {
		key        string
		plaintext  string
		ciphertext string
	}{
		{"0000000000000000", "0000000000000000", "8ca64de9c1b123a7"},
		{"133457799bbcdff1", "0123456789abcdef", "85e813540f0ab405"},
		{"0123456789abcdef", "4e6f772069732074", "3fa40e8a984d4815"},
	}

	for _, v := range vectors {
		des := newKeyedDES(t, mustHex(t, v.key))

		got, err := des.EncryptBlock(mustHex(t, v.plaintext))
		if err != nil {
			t.Fatalf("EncryptBlock failed for key %s: %v", v.key, err)
		}
		if !bytes.Equal(got, mustHex(t, v.ciphertext)) {
			t.Errorf("key %s plaintext %s: got %x, want %s", v.key, v.plaintext, got, v.ciphertext)
		}

		back, err := des.DecryptBlock(mustHex(t, v.ciphertext))
		if err != nil {
			t.Fatalf("DecryptBlock failed for key %s: %v", v.key, err)
		}
		if !bytes.Equal(back, mustHex(t, v.plaintext)) {
			t.Errorf("key %s ciphertext %s: decrypted to %x, want %s", v.key, v.ciphertext, back, v.plaintext)
		}
	}
}

func TestDESRoundTrip(t *testing.T) {
	des := newKeyedDES(t, mustHex(t, "a1b2c3d4e5f60718"))

	blocks := [][]uint8{
		make([]uint8, 8),
		{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
		{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80},
		[]uint8("testdata"),
	}

	for _, block := range blocks {
		encrypted, err := des.EncryptBlock(block)
		if err != nil {
			t.Fatalf("EncryptBlock(%x) failed: %v", block, err)
		}
		if bytes.Equal(encrypted, block) {
			t.Errorf("ciphertext equals plaintext for block %x", block)
		}

		decrypted, err := des.DecryptBlock(encrypted)
		if err != nil {
			t.Fatalf("DecryptBlock(%x) failed: %v", encrypted, err)
		}
		if !bytes.Equal(decrypted, block) {
			t.Errorf("round trip failed: got %x, want %x", decrypted, block)
		}
	}
}

func TestDESDeterminism(t *testing.T) {
	des := newKeyedDES(t, mustHex(t, "133457799bbcdff1"))
	block := mustHex(t, "0123456789abcdef")

	first, err := des.EncryptBlock(block)
	if err != nil {
		t.Fatalf("first encryption failed: %v", err)
	}
	second, err := des.EncryptBlock(block)
	if err != nil {
		t.Fatalf("second encryption failed: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Fatalf("repeated encryption differs: %x vs %x", first, second)
	}
}

func countDifferingBits(a, b []uint8) int {
	total := 0
	for i := range a {
		total += bits.OnesCount8(a[i] ^ b[i])
	}
	return total
}

// Regression guard against a degenerate transform: flipping one plaintext
// bit must change a substantial number of ciphertext bits.
func TestDESAvalanche(t *testing.T) {
	des := newKeyedDES(t, mustHex(t, "0123456789abcdef"))
	block := mustHex(t, "4e6f772069732074")

	base, err := des.EncryptBlock(block)
	if err != nil {
		t.Fatalf("base encryption failed: %v", err)
	}

	for bit := 0; bit < 64; bit += 13 {
		flipped := make([]uint8, len(block))
		copy(flipped, block)
		flipped[bit/8] ^= 1 << (7 - bit%8)

		output, err := des.EncryptBlock(flipped)
		if err != nil {
			t.Fatalf("encryption of flipped block failed: %v", err)
		}

		if diff := countDifferingBits(base, output); diff < 16 {
			t.Errorf("flipping bit %d changed only %d output bits", bit, diff)
		}
	}
}

func TestDESRejectsWrongSizes(t *testing.T) {
	des, err := NewDESCipher()
	if err != nil {
		t.Fatalf("NewDESCipher failed: %v", err)
	}

	if err := des.SetKey(make([]uint8, 7)); err == nil {
		t.Error("expected error for 7-byte key, got nil")
	}
	if err := des.SetKey(nil); err == nil {
		t.Error("expected error for nil key, got nil")
	}

	if err := des.SetKey(make([]uint8, 8)); err != nil {
		t.Fatalf("SetKey failed: %v", err)
	}
	if _, err := des.EncryptBlock(make([]uint8, 7)); err == nil {
		t.Error("expected error for 7-byte block, got nil")
	}
	if _, err := des.DecryptBlock(make([]uint8, 9)); err == nil {
		t.Error("expected error for 9-byte block, got nil")
	}
}

func TestDESEncryptBeforeSetKey(t *testing.T) {
	des, err := NewDESCipher()
	if err != nil {
		t.Fatalf("NewDESCipher failed: %v", err)
	}

	if _, err := des.EncryptBlock(make([]uint8, 8)); err == nil {
		t.Fatal("expected error when encrypting without a key, got nil")
	}
}

// Every 6-bit input must resolve to a valid (row, column) pair and a 4-bit
// substitution value.
func TestSBoxLookupBounds(t *testing.T) {
	for box := 0; box < 8; box++ {
		for input := 0; input < 64; input++ {
			row := ((input>>5)&1)<<1 | input&1
			col := (input >> 1) & 0x0F

			if row < 0 || row > 3 {
				t.Fatalf("box %d input %06b: row %d out of range", box, input, row)
			}
			if col < 0 || col > 15 {
				t.Fatalf("box %d input %06b: col %d out of range", box, input, col)
			}
			if value := S_BOXES[box][row][col]; value > 15 {
				t.Fatalf("box %d input %06b: value %d is not a 4-bit quantity", box, input, value)
			}
		}
	}
}

func TestSubstituteWidth(t *testing.T) {
	for _, input := range [][]uint8{
		make([]uint8, 6),
		{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
		{0x6D, 0x14, 0x9A, 0xE0, 0x33, 0x58},
	} {
		if output := substitute(input); len(output) != 4 {
			t.Fatalf("substitute(%x) returned %d bytes, want 4", input, len(output))
		}
	}
}
