// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package hdkeys derives BIP39 mnemonic phrases and BIP32 key trees and
// encodes the derived keys for a catalog of networks.
//
// The pipeline is pure: the same phrase, passphrase, path and network always
// produce the same keys.
//
//	entropy -> phrase -> seed -> root key -> path -> key -> address
//
// Networks are immutable values picked from a Registry and passed explicitly
// to every call; there is no selected-network global.
package hdkeys

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// GeneratePhrase returns a random phrase of wordCount words in lang.
func GeneratePhrase(wordCount int, lang Language) (string, error) {
	wl, err := DefaultWordlists().Get(lang)
	if err != nil {
		return "", err
	}
	return NewMnemonic(wl).GenerateWords(wordCount)
}

// PhraseToRootKey validates phrase in its detected language and returns the
// master key of its seed.
func PhraseToRootKey(phrase, passphrase string, net *Network) (*ExtendedKey, error) {
	wl, _ := DefaultWordlists().DetectLanguage(phrase)
	if err := NewMnemonic(wl).Validate(phrase); err != nil {
		return nil, err
	}
	return NewMasterKey(ToSeed(phrase, passphrase), net)
}

// RootKeyFromSerialized parses an xprv/xpub style root key for net.
func RootKeyFromSerialized(s string, net *Network) (*ExtendedKey, error) {
	return ParseExtendedKey(s, net)
}

// DeriveAtPath parses path and applies it to root.
func DeriveAtPath(root *ExtendedKey, path string) (*ExtendedKey, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return p.Apply(root)
}

// AccountInfo holds the extended keys of a derivation path.
type AccountInfo struct {
	Path string
	Key  *ExtendedKey
	Xprv string // empty when the root was neutered
	Xpub string

	// Segwit flavoured serializations (ypub/zpub), set when requested and
	// defined by the network.
	SegwitXprv string
	SegwitXpub string
}

// AccountKeys derives path from root and serializes the resulting key in its
// private and public forms. With a segwit mode the keys are also serialized
// with the BIP49/BIP84 version bytes when the network defines them.
func AccountKeys(root *ExtendedKey, path string, mode SegwitMode) (AccountInfo, error) {
	p, err := ParsePath(path)
	if err != nil {
		return AccountInfo{}, err
	}
	key, err := p.Apply(root)
	if err != nil {
		return AccountInfo{}, err
	}
	info := AccountInfo{Path: p.String(), Key: key}
	if key.IsPrivate() {
		if info.Xprv, err = key.Serialize(true); err != nil {
			return AccountInfo{}, err
		}
	}
	if info.Xpub, err = key.Serialize(false); err != nil {
		return AccountInfo{}, err
	}
	if _, ok := root.Network().KeyIDs(mode); ok && mode != SegwitNone {
		if info.SegwitXpub, err = key.SerializeFor(mode, false); err != nil {
			return AccountInfo{}, err
		}
		if key.IsPrivate() {
			if info.SegwitXprv, err = key.SerializeFor(mode, true); err != nil {
				return AccountInfo{}, err
			}
		}
	}
	return info, nil
}

// DeriveAddresses encodes count consecutive children of key starting at
// start. Children are derived in parallel; result i is always the child at
// start+i. basePath labels the results and may be empty.
func DeriveAddresses(key *ExtendedKey, net *Network, basePath string, start, count uint32, opts EncodeOptions) ([]Address, error) {
	if opts.Segwit != SegwitNone && !net.Segwit {
		return nil, &DerivationError{Reason: ErrSegwitUnsupported, Index: start, Hardened: opts.Hardened}
	}
	if uint64(start)+uint64(count) > uint64(HardenedKeyStart) {
		return nil, &PathError{Reason: ErrIndexOutOfRange, Segment: fmt.Sprint(uint64(start) + uint64(count) - 1)}
	}

	out := make([]Address, count)
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := uint32(0); i < count; i++ {
		g.Go(func() error {
			index := start + i
			addr, err := EncodeAddress(key, net, index, opts)
			if err != nil {
				return err
			}
			if basePath != "" {
				addr.Path = basePath + "/" + Step{Index: index, Hardened: opts.Hardened}.String()
			}
			out[i] = addr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
