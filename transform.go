// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package hdkeys

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/mr-tron/base58"
	"github.com/nbd-wtf/go-nostr/nip19"
)

// RippleAlphabet is the Base58 alphabet of XRP Ledger addresses.
var RippleAlphabet = base58.NewAlphabet("rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz")

// rippleTransform re-encodes the P2PKH address bytes with the Ripple alphabet
// and replaces the WIF private key with the raw hex scalar.
func rippleTransform(std Address, km KeyMaterial, _ *Network) (Address, error) {
	raw, err := base58.Decode(std.Address)
	if err != nil {
		return Address{}, fmt.Errorf("could not decode address: %w", err)
	}
	std.Address = base58.EncodeAlphabet(raw, RippleAlphabet)
	if km.HasPrivate() {
		std.PrivateKey = hex.EncodeToString(km.PrivateKey)
	}
	return std, nil
}

// nostrTransform encodes NIP-06 keys as bech32 npub/nsec. Nostr public keys
// are the 32-byte x-only form of the point.
func nostrTransform(std Address, km KeyMaterial, _ *Network) (Address, error) {
	pub, err := btcec.ParsePubKey(km.PublicKey)
	if err != nil {
		return Address{}, fmt.Errorf("could not parse public key: %w", err)
	}
	xonly := hex.EncodeToString(schnorr.SerializePubKey(pub))

	npub, err := nip19.EncodePublicKey(xonly)
	if err != nil {
		return Address{}, fmt.Errorf("failed to encode public key: %w", err)
	}
	std.Address = npub
	std.PublicKey = xonly
	std.PrivateKey = ""
	if km.HasPrivate() {
		nsec, err := nip19.EncodePrivateKey(hex.EncodeToString(km.PrivateKey))
		if err != nil {
			return Address{}, fmt.Errorf("failed to encode private key: %w", err)
		}
		std.PrivateKey = nsec
	}
	return std, nil
}
