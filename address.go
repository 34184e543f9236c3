// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package hdkeys

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// KeyMaterial is everything an encoding strategy needs: the compressed public
// key, the private scalar (nil for neutered keys) and the position of the key
// under its parent.
type KeyMaterial struct {
	PublicKey  []byte
	PrivateKey []byte
	Index      uint32
	Hardened   bool
}

// HasPrivate reports whether the material includes a private key.
func (km KeyMaterial) HasPrivate() bool { return len(km.PrivateKey) > 0 }

// Address is the text encoding of one derived key. PrivateKey is empty when
// the key was neutered.
type Address struct {
	Path       string
	Index      uint32
	Hardened   bool
	Address    string
	PublicKey  string
	PrivateKey string
}

// EncodeOptions select how a child key is derived and encoded.
type EncodeOptions struct {
	Hardened bool
	Segwit   SegwitMode
}

// EncodeAddress derives child index of key and encodes it for net. Segwit
// modes are rejected with ErrSegwitUnsupported on networks without segwit.
func EncodeAddress(key *ExtendedKey, net *Network, index uint32, opts EncodeOptions) (Address, error) {
	if opts.Segwit != SegwitNone && !net.Segwit {
		return Address{}, &DerivationError{Reason: ErrSegwitUnsupported, Index: index, Hardened: opts.Hardened}
	}
	child, err := key.Child(index, opts.Hardened)
	if err != nil {
		return Address{}, err
	}
	km, err := materialOf(child, index, opts.Hardened)
	if err != nil {
		return Address{}, err
	}
	return Encode(km, net, opts.Segwit)
}

func materialOf(k *ExtendedKey, index uint32, hardened bool) (KeyMaterial, error) {
	pub, err := k.PublicKey()
	if err != nil {
		return KeyMaterial{}, err
	}
	km := KeyMaterial{PublicKey: pub, Index: index, Hardened: hardened}
	if k.IsPrivate() {
		if km.PrivateKey, err = k.PrivateKey(); err != nil {
			return KeyMaterial{}, err
		}
	}
	return km, nil
}

// Encode dispatches km to the strategy selected by the network flags and mode.
func Encode(km KeyMaterial, net *Network, mode SegwitMode) (Address, error) {
	switch {
	case mode != SegwitNone:
		return EncodeSegwit(km, net, mode)
	case net.AccountBased:
		return EncodeAccount(km, net)
	case net.Transform != nil:
		std, err := EncodeStandard(km, net)
		if err != nil {
			return Address{}, err
		}
		return net.Transform(std, km, net)
	default:
		return EncodeStandard(km, net)
	}
}

func baseAddress(km KeyMaterial) Address {
	return Address{
		Index:     km.Index,
		Hardened:  km.Hardened,
		PublicKey: hex.EncodeToString(km.PublicKey),
	}
}

// EncodeStandard encodes a P2PKH address and a compressed WIF private key.
func EncodeStandard(km KeyMaterial, net *Network) (Address, error) {
	out := baseAddress(km)
	addr, err := btcutil.NewAddressPubKeyHash(btcutil.Hash160(km.PublicKey), net.Params())
	if err != nil {
		return Address{}, fmt.Errorf("could not encode address: %w", err)
	}
	out.Address = addr.EncodeAddress()
	if km.HasPrivate() {
		if out.PrivateKey, err = encodeWIF(km.PrivateKey, net); err != nil {
			return Address{}, err
		}
	}
	return out, nil
}

func encodeWIF(priv []byte, net *Network) (string, error) {
	key, _ := btcec.PrivKeyFromBytes(priv)
	wif, err := btcutil.NewWIF(key, net.Params(), true)
	if err != nil {
		return "", fmt.Errorf("could not encode private key: %w", err)
	}
	return wif.String(), nil
}

// EncodeSegwit encodes a P2WPKH or P2WPKH-in-P2SH address. The private key is
// emitted as WIF.
func EncodeSegwit(km KeyMaterial, net *Network, mode SegwitMode) (Address, error) {
	if !net.Segwit {
		return Address{}, &DerivationError{Reason: ErrSegwitUnsupported, Index: km.Index, Hardened: km.Hardened}
	}
	witness, err := btcutil.NewAddressWitnessPubKeyHash(btcutil.Hash160(km.PublicKey), net.Params())
	if err != nil {
		return Address{}, fmt.Errorf("could not encode witness program: %w", err)
	}

	out := baseAddress(km)
	switch mode {
	case SegwitP2WPKH:
		out.Address = witness.EncodeAddress()
	case SegwitP2WPKHInP2SH:
		redeem, err := txscript.PayToAddrScript(witness)
		if err != nil {
			return Address{}, fmt.Errorf("could not build redeem script: %w", err)
		}
		nested, err := btcutil.NewAddressScriptHash(redeem, net.Params())
		if err != nil {
			return Address{}, fmt.Errorf("could not encode script hash: %w", err)
		}
		out.Address = nested.EncodeAddress()
	default:
		return Address{}, fmt.Errorf("could not encode segwit address: unknown mode %d", mode)
	}

	if km.HasPrivate() {
		if out.PrivateKey, err = encodeWIF(km.PrivateKey, net); err != nil {
			return Address{}, err
		}
	}
	return out, nil
}

// EncodeAccount encodes keys of account-based networks: a 0x-prefixed
// EIP-55 address from the Keccak-256 hash of the uncompressed point, and hex
// public and private keys.
func EncodeAccount(km KeyMaterial, _ *Network) (Address, error) {
	pub, err := crypto.DecompressPubkey(km.PublicKey)
	if err != nil {
		return Address{}, fmt.Errorf("could not decompress public key: %w", err)
	}
	out := Address{
		Index:     km.Index,
		Hardened:  km.Hardened,
		Address:   crypto.PubkeyToAddress(*pub).Hex(),
		PublicKey: hexutil.Encode(km.PublicKey),
	}
	if km.HasPrivate() {
		out.PrivateKey = hexutil.Encode(km.PrivateKey)
	}
	return out, nil
}
