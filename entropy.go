// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package hdkeys

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
)

// NewEntropy reads bits/8 bytes of entropy from r. bits must be one of 128,
// 160, 192, 224 or 256.
func NewEntropy(r io.Reader, bits int) ([]byte, error) {
	if !validEntropyBits(bits) {
		return nil, &PhraseError{Reason: ErrInvalidEntropyLength}
	}
	if r == nil {
		return nil, ErrRandomnessUnavailable
	}
	entropy := make([]byte, bits/8)
	if _, err := io.ReadFull(r, entropy); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomnessUnavailable, err)
	}
	return entropy, nil
}

// combineSeedPassphrase combines a seed passphrase with the SSH key seed. The
// passphrase is hashed with SHA256 to produce 32 bytes, which are XORed with
// the key seed.
func combineSeedPassphrase(keySeed []byte, seedPassphrase string) []byte {
	passphraseHash := sha256.Sum256([]byte(seedPassphrase))

	combined := make([]byte, len(keySeed))
	for i := range keySeed {
		combined[i] = keySeed[i] ^ passphraseHash[i%len(passphraseHash)]
	}
	return combined
}

// EntropyFromEd25519 deterministically derives mnemonic entropy for wordCount
// words from an ed25519 private key, such as an SSH key. The key cannot be
// recovered from the result.
//
// If seedPassphrase is non-empty it is mixed into the key seed first. For 24
// words the (mixed) 32-byte seed is used as is. Other lengths hash the seed
// prefixed with the big-endian word count, so a 12-word phrase is not a
// truncation of the 24-word one.
func EntropyFromEd25519(key ed25519.PrivateKey, wordCount int, seedPassphrase string) ([]byte, error) {
	bits, err := EntropyBitsForWords(wordCount)
	if err != nil {
		return nil, err
	}
	if len(key) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("could not use ed25519 key: got %d bytes, want %d", len(key), ed25519.PrivateKeySize)
	}

	seed := key.Seed()
	if seedPassphrase != "" {
		seed = combineSeedPassphrase(seed, seedPassphrase)
	}
	if bits == 256 {
		return seed, nil
	}

	prefixed := make([]byte, 2+len(seed))
	binary.BigEndian.PutUint16(prefixed, uint16(wordCount))
	copy(prefixed[2:], seed)

	hash := sha256.Sum256(prefixed)
	return hash[:bits/8], nil
}
