// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package hdkeys

import (
	"errors"
	"fmt"
	"runtime"
	"testing"

	"github.com/matryer/is"
)

// TestGeneratePhrase generates valid phrases in every language.
func TestGeneratePhrase(t *testing.T) {
	for _, lang := range DefaultWordlists().Languages() {
		t.Run(string(lang), func(t *testing.T) {
			is := is.New(t)
			phrase, err := GeneratePhrase(12, lang)
			is.NoErr(err)

			wl, err := DefaultWordlists().Get(lang)
			is.NoErr(err)
			is.NoErr(NewMnemonic(wl).Validate(phrase))
		})
	}

	is := is.New(t)
	phrase, err := GeneratePhrase(24, English)
	is.NoErr(err)
	_, err = PhraseToRootKey(phrase, "", Bitcoin())
	is.NoErr(err)

	_, err = GeneratePhrase(13, English)
	is.True(errors.Is(err, ErrInvalidWordCount))
}

// TestPhraseToRootKey_Deterministic returns the same root for the same input.
func TestPhraseToRootKey_Deterministic(t *testing.T) {
	is := is.New(t)

	a, err := PhraseToRootKey(abandonPhrase, "TREZOR", Bitcoin())
	is.NoErr(err)
	b, err := PhraseToRootKey(abandonPhrase, "TREZOR", Bitcoin())
	is.NoErr(err)
	is.Equal(a.String(), b.String())
	is.Equal(a.String(), "xprv9s21ZrQH143K3h3fDYiay8mocZ3afhfULfb5GX8kCBdno77K4HiA15Tg23wpbeF1pLfs1c5SPmYHrEpTuuRhxMwvKDwqdKiGJS9XFKzUsAF")
}

// TestPhraseToRootKey_Translated accepts translated phrases. The seed
// stretches the words themselves, so the root differs from the English one.
func TestPhraseToRootKey_Translated(t *testing.T) {
	is := is.New(t)

	spanish, err := DefaultWordlists().Translate(abandonPhrase, Spanish)
	is.NoErr(err)
	es, err := PhraseToRootKey(spanish, "", Bitcoin())
	is.NoErr(err)
	en, err := PhraseToRootKey(abandonPhrase, "", Bitcoin())
	is.NoErr(err)
	is.True(es.String() != en.String())
}

// TestPhraseToRootKey_Invalid returns typed phrase errors.
func TestPhraseToRootKey_Invalid(t *testing.T) {
	is := is.New(t)

	_, err := PhraseToRootKey("", "", Bitcoin())
	is.True(errors.Is(err, ErrEmptyPhrase))

	_, err = PhraseToRootKey("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon", "", Bitcoin())
	is.True(errors.Is(err, ErrChecksumMismatch))
}

// TestRootKeyFromSerialized accepts keys of the network only.
func TestRootKeyFromSerialized(t *testing.T) {
	is := is.New(t)

	root, err := RootKeyFromSerialized(vector1Xpub, Bitcoin())
	is.NoErr(err)
	is.True(!root.IsPrivate())

	_, err = DeriveAtPath(root, "m/0'")
	is.True(errors.Is(err, ErrHardenedPathWithPublicRoot))

	_, err = RootKeyFromSerialized(vector1Xpub, lookup(t, "DOGE"))
	is.True(errors.Is(err, ErrBadKeyVersion))
}

// TestDeriveAddresses keeps results in index order and labels paths.
func TestDeriveAddresses(t *testing.T) {
	is := is.New(t)
	base := "m/44'/0'/0'/0"
	key := accountKey(t, abandonPhrase, Bitcoin(), base)

	out, err := DeriveAddresses(key, Bitcoin(), base, 10, 20, EncodeOptions{})
	is.NoErr(err)
	is.Equal(len(out), 20)
	for i, addr := range out {
		index := uint32(10 + i)
		is.Equal(addr.Index, index)
		is.Equal(addr.Path, fmt.Sprintf("%s/%d", base, index))

		want, err := EncodeAddress(key, Bitcoin(), index, EncodeOptions{})
		is.NoErr(err)
		is.Equal(addr.Address, want.Address)
	}

	hardened, err := DeriveAddresses(key, Bitcoin(), base, 0, 2, EncodeOptions{Hardened: true})
	is.NoErr(err)
	is.Equal(hardened[1].Path, base+"/1'")

	_, err = DeriveAddresses(key, Bitcoin(), base, HardenedKeyStart-1, 2, EncodeOptions{})
	is.True(errors.Is(err, ErrIndexOutOfRange))

	none, err := DeriveAddresses(key, Bitcoin(), "", 0, 0, EncodeOptions{})
	is.NoErr(err)
	is.Equal(len(none), 0)
}

// TestDeriveAddresses_FreshKey fans out over a key whose public point has
// not been used yet. Run with -race.
func TestDeriveAddresses_FreshKey(t *testing.T) {
	is := is.New(t)
	defer runtime.GOMAXPROCS(runtime.GOMAXPROCS(8))

	root, err := NewMasterKey(ToSeed(abandonPhrase, ""), Bitcoin())
	is.NoErr(err)
	acct, err := DeriveAtPath(root, "m/44'/0'/0'/0")
	is.NoErr(err)

	out, err := DeriveAddresses(acct, Bitcoin(), "", 0, 16, EncodeOptions{})
	is.NoErr(err)
	is.Equal(len(out), 16)
	is.Equal(out[0].Address, "1LqBGSKuX5yYUonjxT5qGfpUsXKYYWeabA")
}

// TestAccountKeys serializes the BIP84 account in both key formats.
func TestAccountKeys(t *testing.T) {
	is := is.New(t)
	root, err := PhraseToRootKey(abandonPhrase, "", Bitcoin())
	is.NoErr(err)

	info, err := AccountKeys(root, "m/84'/0'/0'", SegwitP2WPKH)
	is.NoErr(err)
	is.Equal(info.Path, "m/84'/0'/0'")
	is.Equal(info.SegwitXpub, "zpub6rFR7y4Q2AijBEqTUquhVz398htDFrtymD9xYYfG1m4wAcvPhXNfE3EfH1r1ADqtfSdVCToUG868RvUUkgDKf31mGDtKsAYz2oz2AGutZYs")
	is.Equal(info.SegwitXprv, "zprvAdG4iTXWBoARxkkzNpNh8r6Qag3irQB8PzEMkAFeTRXxHpbF9z4QgEvBRmfvqWvGp42t42nvgGpNgYSJA9iefm1yYNZKEm7z6qUWCroSQnE")
	is.Equal(info.Xprv[:4], "xprv")
	is.Equal(info.Xpub[:4], "xpub")

	pub, err := RootKeyFromSerialized(info.Xpub, Bitcoin())
	is.NoErr(err)
	child, err := AccountKeys(pub, "m/0", SegwitNone)
	is.NoErr(err)
	is.Equal(child.Xprv, "")
	is.Equal(child.SegwitXpub, "")

	_, err = AccountKeys(root, "44'", SegwitNone)
	is.True(errors.Is(err, ErrMissingRootMarker))
}
