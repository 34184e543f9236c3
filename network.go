// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package hdkeys

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
)

// SegwitMode selects the address encoding of segwit capable networks.
type SegwitMode int

const (
	// SegwitNone encodes legacy P2PKH addresses.
	SegwitNone SegwitMode = iota
	// SegwitP2WPKHInP2SH nests the witness program in a P2SH address (BIP49).
	SegwitP2WPKHInP2SH
	// SegwitP2WPKH encodes native bech32 addresses (BIP84).
	SegwitP2WPKH
)

func (m SegwitMode) String() string {
	switch m {
	case SegwitP2WPKHInP2SH:
		return "p2wpkh-p2sh"
	case SegwitP2WPKH:
		return "p2wpkh"
	default:
		return "none"
	}
}

// ParseSegwitMode accepts the names returned by SegwitMode.String. The empty
// string is SegwitNone.
func ParseSegwitMode(s string) (SegwitMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "p2pkh":
		return SegwitNone, nil
	case "p2wpkh-p2sh", "p2wpkh-in-p2sh", "p2sh-p2wpkh":
		return SegwitP2WPKHInP2SH, nil
	case "p2wpkh":
		return SegwitP2WPKH, nil
	}
	return SegwitNone, fmt.Errorf("unknown segwit mode %q", s)
}

// Purpose returns the BIP43 purpose conventionally paired with the mode.
func (m SegwitMode) Purpose() uint32 {
	switch m {
	case SegwitP2WPKHInP2SH:
		return 49
	case SegwitP2WPKH:
		return 84
	default:
		return 44
	}
}

// HDKeyIDs holds the version bytes of serialized extended keys.
type HDKeyIDs struct {
	Private [4]byte
	Public  [4]byte
}

var (
	bitcoinHDKeyIDs = HDKeyIDs{
		Private: [4]byte{0x04, 0x88, 0xad, 0xe4}, // xprv
		Public:  [4]byte{0x04, 0x88, 0xb2, 0x1e}, // xpub
	}
	testnetHDKeyIDs = HDKeyIDs{
		Private: [4]byte{0x04, 0x35, 0x83, 0x94}, // tprv
		Public:  [4]byte{0x04, 0x35, 0x87, 0xcf}, // tpub
	}
)

// Transform rewrites the standard encoding of a key for networks with their
// own text formats. It receives the P2PKH/WIF result and the raw key.
type Transform func(std Address, km KeyMaterial, net *Network) (Address, error)

// Network holds the parameters needed to derive and encode keys for one
// network. Values are built once by the registry and never modified.
type Network struct {
	Name     string // display name, e.g. "BTC - Bitcoin"
	Symbol   string
	CoinType uint32 // BIP44 coin type, unhardened

	PubKeyHashAddrID byte
	ScriptHashAddrID byte
	PrivateKeyID     byte // WIF prefix
	Bech32HRP        string

	HDKeyIDs HDKeyIDs
	// SegwitHDKeyIDs overrides HDKeyIDs when serializing for a segwit mode
	// (ypub/zpub and friends).
	SegwitHDKeyIDs map[SegwitMode]HDKeyIDs

	Segwit       bool
	AccountBased bool
	Transform    Transform

	params *chaincfg.Params
}

func newNetwork(n Network) *Network {
	n.params = &chaincfg.Params{
		Name:             n.Name,
		Bech32HRPSegwit:  n.Bech32HRP,
		PubKeyHashAddrID: n.PubKeyHashAddrID,
		ScriptHashAddrID: n.ScriptHashAddrID,
		PrivateKeyID:     n.PrivateKeyID,
		HDPrivateKeyID:   n.HDKeyIDs.Private,
		HDPublicKeyID:    n.HDKeyIDs.Public,
		HDCoinType:       n.CoinType,
	}
	return &n
}

// Params returns btcd chain parameters carrying the network's version bytes.
// The value is shared; callers must not modify it.
func (n *Network) Params() *chaincfg.Params { return n.params }

// KeyIDs returns the extended key version bytes for mode, falling back to
// the standard pair.
func (n *Network) KeyIDs(mode SegwitMode) (HDKeyIDs, bool) {
	if mode == SegwitNone {
		return n.HDKeyIDs, true
	}
	ids, ok := n.SegwitHDKeyIDs[mode]
	return ids, ok
}

// publicKeyID maps a private version to its public counterpart.
func (n *Network) publicKeyID(private []byte) ([4]byte, bool) {
	for _, ids := range n.allKeyIDs() {
		if bytes.Equal(ids.Private[:], private) {
			return ids.Public, true
		}
	}
	return [4]byte{}, false
}

// versionKind reports whether version belongs to the network and whether it
// is a private version.
func (n *Network) versionKind(version []byte) (known, private bool) {
	for _, ids := range n.allKeyIDs() {
		if bytes.Equal(ids.Private[:], version) {
			return true, true
		}
		if bytes.Equal(ids.Public[:], version) {
			return true, false
		}
	}
	return false, false
}

func (n *Network) allKeyIDs() []HDKeyIDs {
	ids := []HDKeyIDs{n.HDKeyIDs}
	for _, mode := range []SegwitMode{SegwitP2WPKHInP2SH, SegwitP2WPKH} {
		if s, ok := n.SegwitHDKeyIDs[mode]; ok {
			ids = append(ids, s)
		}
	}
	return ids
}

func (n *Network) String() string { return n.Name }

// Registry is an ordered, read-only catalog of networks.
type Registry struct {
	networks []*Network
}

// NewRegistry builds a registry from network definitions in display order.
func NewRegistry(defs ...Network) *Registry {
	r := &Registry{networks: make([]*Network, len(defs))}
	for i, d := range defs {
		r.networks[i] = newNetwork(d)
	}
	return r
}

// Len returns the number of networks.
func (r *Registry) Len() int { return len(r.networks) }

// All returns the networks in order.
func (r *Registry) All() []*Network {
	out := make([]*Network, len(r.networks))
	copy(out, r.networks)
	return out
}

// At returns the network at index i.
func (r *Registry) At(i int) (*Network, error) {
	if i < 0 || i >= len(r.networks) {
		return nil, fmt.Errorf("%w: index %d out of range [0, %d)", ErrUnknownNetwork, i, len(r.networks))
	}
	return r.networks[i], nil
}

// Lookup finds a network by display name or symbol, case-insensitively.
// Symbols shared by several entries (mainnet and testnet) resolve to the
// first one.
func (r *Registry) Lookup(name string) (*Network, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, n := range r.networks {
		if strings.ToLower(n.Name) == want {
			return n, nil
		}
	}
	for _, n := range r.networks {
		if strings.ToLower(n.Symbol) == want {
			return n, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
}
