// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package hdkeys

import (
	"encoding/hex"
	"testing"

	"github.com/matryer/is"
	"github.com/tyler-smith/go-bip39"
)

// TestToSeed_TrezorVector checks the BIP39 reference seed.
func TestToSeed_TrezorVector(t *testing.T) {
	is := is.New(t)

	seed := ToSeed(abandonPhrase, "TREZOR")
	is.Equal(hex.EncodeToString(seed), "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04")
}

// TestToSeed_MatchesGoBIP39 compares seeds with go-bip39.
func TestToSeed_MatchesGoBIP39(t *testing.T) {
	is := is.New(t)

	phrase, err := GeneratePhrase(24, English)
	is.NoErr(err)
	for _, pass := range []string{"", "TREZOR", "correct horse battery staple"} {
		is.Equal(ToSeed(phrase, pass), bip39.NewSeed(phrase, pass))
	}
}

// TestToSeed_Whitespace ignores separators and surrounding blanks.
func TestToSeed_Whitespace(t *testing.T) {
	is := is.New(t)

	want := ToSeed(abandonPhrase, "")
	messy := "  abandon abandon\tabandon abandon  abandon abandon abandon abandon abandon abandon abandon\nabout "
	is.Equal(ToSeed(messy, ""), want)
	is.Equal(len(want), SeedSize)
}

// TestToSeed_Passphrase changes the seed with the passphrase.
func TestToSeed_Passphrase(t *testing.T) {
	is := is.New(t)
	is.True(hex.EncodeToString(ToSeed(abandonPhrase, "")) != hex.EncodeToString(ToSeed(abandonPhrase, "x")))
}

// TestToSeed_NFKD normalizes composed passphrases.
func TestToSeed_NFKD(t *testing.T) {
	is := is.New(t)

	composed := "caf\u00e9"
	decomposed := "cafe\u0301"
	is.Equal(ToSeed(abandonPhrase, composed), ToSeed(abandonPhrase, decomposed))
}
