// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package hdkeys

import (
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/matryer/is"
	"github.com/mr-tron/base58"
	"github.com/nbd-wtf/go-nostr/nip19"
	hdwallet "github.com/stephenlacy/go-ethereum-hdwallet"
)

func lookup(t *testing.T, name string) *Network {
	t.Helper()
	n, err := DefaultRegistry().Lookup(name)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func accountKey(t *testing.T, phrase string, net *Network, path string) *ExtendedKey {
	t.Helper()
	root, err := PhraseToRootKey(phrase, "", net)
	if err != nil {
		t.Fatal(err)
	}
	key, err := DeriveAtPath(root, path)
	if err != nil {
		t.Fatal(err)
	}
	return key
}

// TestEncodeAddress_BIP44 derives the first bitcoin receive address.
func TestEncodeAddress_BIP44(t *testing.T) {
	is := is.New(t)
	key := accountKey(t, abandonPhrase, Bitcoin(), "m/44'/0'/0'/0")

	addr, err := EncodeAddress(key, Bitcoin(), 0, EncodeOptions{})
	is.NoErr(err)
	is.Equal(addr.Address, "1LqBGSKuX5yYUonjxT5qGfpUsXKYYWeabA")
	is.Equal(len(addr.PublicKey), 66)

	wif, err := btcutil.DecodeWIF(addr.PrivateKey)
	is.NoErr(err)
	is.True(wif.CompressPubKey)
	is.Equal(hex.EncodeToString(wif.SerializePubKey()), addr.PublicKey)
}

// TestEncodeAddress_BIP84 checks the native segwit vector.
func TestEncodeAddress_BIP84(t *testing.T) {
	is := is.New(t)
	key := accountKey(t, abandonPhrase, Bitcoin(), "m/84'/0'/0'/0")

	addr, err := EncodeAddress(key, Bitcoin(), 0, EncodeOptions{Segwit: SegwitP2WPKH})
	is.NoErr(err)
	is.Equal(addr.Address, "bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyu")
	is.Equal(addr.PublicKey, "0330d54fd0dd420a6e5f8d3624f5f3482cae350f79d5f0753bf5beef9c2d91af3c")
	is.Equal(addr.PrivateKey, "KyZpNDKnfs94vbrwhJneDi77V6jF64PWPF8x5cdJb8ifgg2DSJzh")
}

// TestEncodeAddress_BIP49Testnet checks the nested segwit vector.
func TestEncodeAddress_BIP49Testnet(t *testing.T) {
	is := is.New(t)
	testnet := lookup(t, "BTC - Bitcoin Testnet")
	key := accountKey(t, abandonPhrase, testnet, "m/49'/1'/0'/0")

	addr, err := EncodeAddress(key, testnet, 0, EncodeOptions{Segwit: SegwitP2WPKHInP2SH})
	is.NoErr(err)
	is.Equal(addr.Address, "2Mww8dCYPUpKHofjgcXcBCEGmniw9CoaiD2")
}

// TestEncodeAddress_SegwitUnsupported rejects segwit on legacy networks
// without deriving anything.
func TestEncodeAddress_SegwitUnsupported(t *testing.T) {
	is := is.New(t)
	doge := lookup(t, "DOGE")
	key := accountKey(t, abandonPhrase, doge, "m/44'/3'/0'/0")

	for _, mode := range []SegwitMode{SegwitP2WPKH, SegwitP2WPKHInP2SH} {
		addr, err := EncodeAddress(key, doge, 0, EncodeOptions{Segwit: mode})
		is.True(errors.Is(err, ErrDerivationRejected))
		is.True(errors.Is(err, ErrSegwitUnsupported))
		is.Equal(addr, Address{})
	}

	out, err := DeriveAddresses(key, doge, "m/44'/3'/0'/0", 0, 5, EncodeOptions{Segwit: SegwitP2WPKH})
	is.True(errors.Is(err, ErrSegwitUnsupported))
	is.Equal(len(out), 0)
}

// TestEncodeAddress_Ethereum checks the EIP-55 address of the first account
// against go-ethereum-hdwallet.
func TestEncodeAddress_Ethereum(t *testing.T) {
	is := is.New(t)
	eth := lookup(t, "ETH")
	key := accountKey(t, abandonPhrase, eth, "m/44'/60'/0'/0")

	addr, err := EncodeAddress(key, eth, 0, EncodeOptions{})
	is.NoErr(err)
	is.Equal(addr.Address, "0x9858EfFD232B4033E47d90003D41EC34EcaEda94")
	is.True(strings.HasPrefix(addr.PublicKey, "0x"))
	is.Equal(len(addr.PrivateKey), 66)

	wallet, err := hdwallet.NewFromMnemonic(abandonPhrase)
	is.NoErr(err)
	for i, p := range []string{"m/44'/60'/0'/0/0", "m/44'/60'/0'/0/1", "m/44'/60'/0'/0/2"} {
		account, err := wallet.Derive(hdwallet.MustParseDerivationPath(p), false)
		is.NoErr(err)
		priv, err := wallet.PrivateKeyHex(account)
		is.NoErr(err)

		ours, err := EncodeAddress(key, eth, uint32(i), EncodeOptions{})
		is.NoErr(err)
		is.Equal(ours.Address, account.Address.Hex())
		is.Equal(ours.PrivateKey, "0x"+priv)
	}
}

// TestEncodeAddress_Neutered encodes public keys without a private part, and
// rejects hardened children.
func TestEncodeAddress_Neutered(t *testing.T) {
	for _, name := range []string{"BTC", "ETH", "XRP", "NOSTR", "LTC"} {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)
			net := lookup(t, name)
			priv := accountKey(t, abandonPhrase, net, BIP44Fields{}.Path(net))
			pub, err := priv.Neuter()
			is.NoErr(err)

			want, err := EncodeAddress(priv, net, 3, EncodeOptions{})
			is.NoErr(err)
			got, err := EncodeAddress(pub, net, 3, EncodeOptions{})
			is.NoErr(err)
			is.Equal(got.Address, want.Address)
			is.Equal(got.PublicKey, want.PublicKey)
			is.Equal(got.PrivateKey, "")
			is.True(want.PrivateKey != "")

			_, err = EncodeAddress(pub, net, 3, EncodeOptions{Hardened: true})
			is.True(errors.Is(err, ErrHardenedFromPublic))
		})
	}
}

// TestEncodeAddress_Hardened derives a different key from the hardened index.
func TestEncodeAddress_Hardened(t *testing.T) {
	is := is.New(t)
	key := accountKey(t, abandonPhrase, Bitcoin(), "m/44'/0'/0'/0")

	normal, err := EncodeAddress(key, Bitcoin(), 0, EncodeOptions{})
	is.NoErr(err)
	hardened, err := EncodeAddress(key, Bitcoin(), 0, EncodeOptions{Hardened: true})
	is.NoErr(err)
	is.True(hardened.Hardened)
	is.True(normal.Address != hardened.Address)
}

// TestEncodeAddress_Ripple re-encodes the P2PKH bytes with the Ripple
// alphabet.
func TestEncodeAddress_Ripple(t *testing.T) {
	is := is.New(t)
	xrp := lookup(t, "XRP")
	key := accountKey(t, abandonPhrase, xrp, "m/44'/144'/0'/0")

	addr, err := EncodeAddress(key, xrp, 0, EncodeOptions{})
	is.NoErr(err)
	is.Equal(addr.Address, "rHsMGQEkVNJmpGWs8XUBoTBiAAbwxZN5v3")
	is.Equal(len(addr.PrivateKey), 64)

	km, err := materialOf(mustChild(t, key, 0), 0, false)
	is.NoErr(err)
	std, err := EncodeStandard(km, xrp)
	is.NoErr(err)

	rippleBytes, err := base58.DecodeAlphabet(addr.Address, RippleAlphabet)
	is.NoErr(err)
	stdBytes, err := base58.Decode(std.Address)
	is.NoErr(err)
	is.Equal(rippleBytes, stdBytes)
	is.Equal(addr.PrivateKey, hex.EncodeToString(km.PrivateKey))
}

// TestEncodeAddress_Nostr checks the NIP-06 vector.
func TestEncodeAddress_Nostr(t *testing.T) {
	is := is.New(t)
	nostr := lookup(t, "NOSTR")
	key := accountKey(t, "leader monkey parrot ring guide accident before fence cannon height naive bean", nostr, "m/44'/1237'/0'/0")

	addr, err := EncodeAddress(key, nostr, 0, EncodeOptions{})
	is.NoErr(err)
	is.Equal(addr.PublicKey, "17162c921dc4d2518f9a101db33695df1afb56ab82f5ff3e5da6eec3ca5cd917")
	is.True(strings.HasPrefix(addr.Address, "npub1"))
	is.True(strings.HasPrefix(addr.PrivateKey, "nsec1"))

	prefix, value, err := nip19.Decode(addr.Address)
	is.NoErr(err)
	is.Equal(prefix, "npub")
	is.Equal(value, addr.PublicKey)

	prefix, value, err = nip19.Decode(addr.PrivateKey)
	is.NoErr(err)
	is.Equal(prefix, "nsec")
	is.Equal(value, "7f7ff03d123792d6ac594bfa67bf6d0c0ab55b6b1fdb6249303fe861f1ccba9a")
}

// TestEncode_Dispatch routes each network flag to its strategy.
func TestEncode_Dispatch(t *testing.T) {
	is := is.New(t)
	key := mustChild(t, accountKey(t, abandonPhrase, Bitcoin(), "m/44'/0'/0'/0"), 0)
	km, err := materialOf(key, 0, false)
	is.NoErr(err)

	btc, err := Encode(km, Bitcoin(), SegwitNone)
	is.NoErr(err)
	is.True(strings.HasPrefix(btc.Address, "1"))

	native, err := Encode(km, Bitcoin(), SegwitP2WPKH)
	is.NoErr(err)
	is.True(strings.HasPrefix(native.Address, "bc1q"))

	nested, err := Encode(km, Bitcoin(), SegwitP2WPKHInP2SH)
	is.NoErr(err)
	is.True(strings.HasPrefix(nested.Address, "3"))

	eth, err := Encode(km, lookup(t, "ETC"), SegwitNone)
	is.NoErr(err)
	is.True(strings.HasPrefix(eth.Address, "0x"))
	is.Equal(len(eth.Address), 42)

	ltc, err := Encode(km, lookup(t, "LTC"), SegwitNone)
	is.NoErr(err)
	is.True(strings.HasPrefix(ltc.Address, "L"))
}

func mustChild(t *testing.T, k *ExtendedKey, index uint32) *ExtendedKey {
	t.Helper()
	child, err := k.Child(index, false)
	if err != nil {
		t.Fatal(err)
	}
	return child
}
