// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package hdkeys

import (
	"crypto/sha512"
	"strings"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

// SeedSize is the length of a BIP39 seed in bytes.
const SeedSize = 64

const (
	seedIterations = 2048
	seedSaltPrefix = "mnemonic"
)

// ToSeed stretches a phrase and optional passphrase into a 64-byte seed with
// PBKDF2-HMAC-SHA512. Both inputs are NFKD normalized and the words of the
// phrase are rejoined with single spaces, so ideographic separators and
// stray whitespace do not change the result. The phrase is not validated.
func ToSeed(phrase, passphrase string) []byte {
	words := strings.Fields(norm.NFKD.String(phrase))
	password := []byte(strings.Join(words, " "))
	salt := []byte(seedSaltPrefix + norm.NFKD.String(passphrase))
	return pbkdf2.Key(password, salt, seedIterations, SeedSize, sha512.New)
}
