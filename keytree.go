// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package hdkeys

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
)

// HardenedKeyStart is the index offset of hardened children.
const HardenedKeyStart = hdkeychain.HardenedKeyStart

// MaxChildRetries bounds NextChild. Each attempt fails with probability
// below 2^-127, so hitting the bound means something else is wrong.
const MaxChildRetries = 8

// ExtendedKey is a node of a BIP32 key tree bound to a network. Values are
// immutable; deriving or neutering returns a new key. A key may be shared by
// concurrent derivations.
type ExtendedKey struct {
	key *hdkeychain.ExtendedKey
	net *Network
}

// newExtendedKey wraps key. hdkeychain computes the public point of a
// private key lazily and caches it in the key; it is filled here so later
// derivations only read.
func newExtendedKey(key *hdkeychain.ExtendedKey, net *Network) (*ExtendedKey, error) {
	if _, err := key.ECPubKey(); err != nil {
		return nil, fmt.Errorf("could not compute public key: %w", err)
	}
	return &ExtendedKey{key: key, net: net}, nil
}

// NewMasterKey computes the root key of the tree for seed.
func NewMasterKey(seed []byte, net *Network) (*ExtendedKey, error) {
	master, err := hdkeychain.NewMaster(seed, net.Params())
	switch {
	case errors.Is(err, hdkeychain.ErrUnusableSeed):
		return nil, &DerivationError{Reason: ErrUnusableSeed}
	case err != nil:
		return nil, fmt.Errorf("could not create master key: %w", err)
	}
	return newExtendedKey(master, net)
}

// ParseExtendedKey decodes a Base58Check serialized extended key and checks
// that its version bytes belong to net.
func ParseExtendedKey(s string, net *Network) (*ExtendedKey, error) {
	key, err := hdkeychain.NewKeyFromString(s)
	switch {
	case errors.Is(err, hdkeychain.ErrInvalidKeyLen):
		return nil, &KeyError{Reason: ErrMalformedKeyLength}
	case errors.Is(err, hdkeychain.ErrBadChecksum):
		return nil, &KeyError{Reason: ErrBadKeyChecksum}
	case err != nil:
		return nil, &KeyError{Reason: err}
	}

	known, private := net.versionKind(key.Version())
	if !known || private != key.IsPrivate() {
		return nil, &KeyError{Reason: ErrBadKeyVersion}
	}
	k, err := newExtendedKey(key, net)
	if err != nil {
		return nil, &KeyError{Reason: err}
	}
	return k, nil
}

// Network returns the network the key serializes for.
func (k *ExtendedKey) Network() *Network { return k.net }

// IsPrivate reports whether the key holds a private scalar.
func (k *ExtendedKey) IsPrivate() bool { return k.key.IsPrivate() }

// Depth returns the number of derivations from the master key.
func (k *ExtendedKey) Depth() uint8 { return k.key.Depth() }

// ChildIndex returns the index this key was derived at, hardened offset
// included.
func (k *ExtendedKey) ChildIndex() uint32 { return k.key.ChildIndex() }

// ParentFingerprint returns the first four bytes of the parent's key hash.
func (k *ExtendedKey) ParentFingerprint() uint32 { return k.key.ParentFingerprint() }

// ChainCode returns a copy of the chain code.
func (k *ExtendedKey) ChainCode() []byte {
	return append([]byte(nil), k.key.ChainCode()...)
}

// PublicKey returns the 33-byte compressed public key.
func (k *ExtendedKey) PublicKey() ([]byte, error) {
	pub, err := k.key.ECPubKey()
	if err != nil {
		return nil, fmt.Errorf("could not compute public key: %w", err)
	}
	return pub.SerializeCompressed(), nil
}

// PrivateKey returns the 32-byte private scalar.
func (k *ExtendedKey) PrivateKey() ([]byte, error) {
	if !k.key.IsPrivate() {
		return nil, &DerivationError{Reason: ErrNoPrivateKey, Index: k.ChildIndex()}
	}
	priv, err := k.key.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("could not read private key: %w", err)
	}
	return priv.Serialize(), nil
}

// Child derives the child at index. Hardened children add 2^31 to index and
// need a private key. The rare invalid child (IL >= n or a zero key) is
// reported as ErrInvalidChild; BIP32 callers move on to the next index, see
// NextChild.
func (k *ExtendedKey) Child(index uint32, hardened bool) (*ExtendedKey, error) {
	if index >= HardenedKeyStart {
		return nil, &PathError{Reason: ErrIndexOutOfRange, Segment: fmt.Sprint(index)}
	}
	if hardened && !k.IsPrivate() {
		return nil, &DerivationError{Reason: ErrHardenedFromPublic, Index: index, Hardened: true}
	}
	i := index
	if hardened {
		i += HardenedKeyStart
	}
	child, err := k.key.Derive(i)
	switch {
	case errors.Is(err, hdkeychain.ErrInvalidChild):
		return nil, &DerivationError{Reason: ErrInvalidChild, Index: index, Hardened: hardened}
	case errors.Is(err, hdkeychain.ErrDeriveBeyondMaxDepth):
		return nil, &PathError{Reason: ErrDepthExceeded}
	case errors.Is(err, hdkeychain.ErrDeriveHardFromPublic):
		return nil, &DerivationError{Reason: ErrHardenedFromPublic, Index: index, Hardened: true}
	case err != nil:
		return nil, fmt.Errorf("could not derive child %d: %w", index, err)
	}
	return newExtendedKey(child, k.net)
}

// NextChild derives the first valid child at index or after it, trying at
// most MaxChildRetries indexes. It returns the index actually used.
func (k *ExtendedKey) NextChild(index uint32, hardened bool) (*ExtendedKey, uint32, error) {
	return nextValidChild(index, func(i uint32) (*ExtendedKey, error) {
		return k.Child(i, hardened)
	})
}

func nextValidChild(index uint32, derive func(uint32) (*ExtendedKey, error)) (*ExtendedKey, uint32, error) {
	var err error
	for attempt := uint32(0); attempt < MaxChildRetries; attempt++ {
		var child *ExtendedKey
		child, err = derive(index + attempt)
		if err == nil {
			return child, index + attempt, nil
		}
		if !errors.Is(err, ErrInvalidChild) {
			return nil, 0, err
		}
	}
	return nil, 0, err
}

// Neuter returns the public-only form of the key. Private keys of a
// neutered key cannot be recovered.
func (k *ExtendedKey) Neuter() (*ExtendedKey, error) {
	if !k.IsPrivate() {
		return k, nil
	}
	version, ok := k.net.publicKeyID(k.key.Version())
	if !ok {
		version = k.net.HDKeyIDs.Public
	}
	return k.withKeyIDs(version[:], false)
}

func (k *ExtendedKey) withKeyIDs(version []byte, private bool) (*ExtendedKey, error) {
	var keyData []byte
	if private {
		priv, err := k.PrivateKey()
		if err != nil {
			return nil, err
		}
		keyData = priv
	} else {
		pub, err := k.PublicKey()
		if err != nil {
			return nil, err
		}
		keyData = pub
	}
	var fp [4]byte
	binary.BigEndian.PutUint32(fp[:], k.ParentFingerprint())
	key := hdkeychain.NewExtendedKey(version, keyData, k.ChainCode(), fp[:],
		k.Depth(), k.ChildIndex(), private)
	return newExtendedKey(key, k.net)
}

// Serialize returns the Base58Check encoding of the key. With asPrivate the
// private form is emitted, which fails on neutered keys.
func (k *ExtendedKey) Serialize(asPrivate bool) (string, error) {
	if asPrivate {
		if !k.IsPrivate() {
			return "", &DerivationError{Reason: ErrNoPrivateKey, Index: k.ChildIndex()}
		}
		return k.key.String(), nil
	}
	pub, err := k.Neuter()
	if err != nil {
		return "", err
	}
	return pub.key.String(), nil
}

// SerializeFor serializes the key with the version bytes of a segwit mode
// (ypub/zpub and friends). SegwitNone uses the standard version bytes.
func (k *ExtendedKey) SerializeFor(mode SegwitMode, asPrivate bool) (string, error) {
	ids, ok := k.net.KeyIDs(mode)
	if !ok {
		return "", &FeatureError{Network: k.net.Name, Feature: mode.String() + " extended key version"}
	}
	if asPrivate && !k.IsPrivate() {
		return "", &DerivationError{Reason: ErrNoPrivateKey, Index: k.ChildIndex()}
	}
	version := ids.Public
	if asPrivate {
		version = ids.Private
	}
	key, err := k.withKeyIDs(version[:], asPrivate)
	if err != nil {
		return "", err
	}
	return key.key.String(), nil
}

// String returns the private serialization of private keys and the public
// one otherwise.
func (k *ExtendedKey) String() string {
	s, err := k.Serialize(k.IsPrivate())
	if err != nil {
		return ""
	}
	return s
}
