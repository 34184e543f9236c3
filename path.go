// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package hdkeys

import (
	"errors"
	"strconv"
	"strings"
)

// MaxPathDepth is the deepest path BIP32 serialization can express.
const MaxPathDepth = 255

// MaxIndex is the largest index of a single path step.
const MaxIndex = HardenedKeyStart - 1

// Step is one derivation of a path.
type Step struct {
	Index    uint32
	Hardened bool
}

func (s Step) String() string {
	if s.Hardened {
		return strconv.FormatUint(uint64(s.Index), 10) + "'"
	}
	return strconv.FormatUint(uint64(s.Index), 10)
}

// Path is an ordered list of steps from the root key "m".
type Path []Step

// ParsePath parses paths such as m/44'/0'/0'/0. A bare "m" is the root.
// Empty segments, a trailing slash included, are rejected.
func ParsePath(s string) (Path, error) {
	if !strings.HasPrefix(s, "m") {
		return nil, &PathError{Reason: ErrMissingRootMarker}
	}
	if len(s) == 1 {
		return Path{}, nil
	}
	if s[1] != '/' {
		return nil, &PathError{Reason: ErrMissingSeparator}
	}

	segments := strings.Split(s[2:], "/")
	if len(segments) > MaxPathDepth {
		return nil, &PathError{Reason: ErrDepthExceeded, Depth: len(segments)}
	}

	path := make(Path, 0, len(segments))
	for i, seg := range segments {
		depth := i + 1
		digits, hardened := strings.CutSuffix(seg, "'")
		if digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
			return nil, &PathError{Reason: ErrNonNumericSegment, Segment: seg, Depth: depth}
		}
		v, err := strconv.ParseUint(digits, 10, 32)
		if err != nil || v > uint64(MaxIndex) {
			var numErr *strconv.NumError
			if err != nil && !(errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange)) {
				return nil, &PathError{Reason: ErrNonNumericSegment, Segment: seg, Depth: depth}
			}
			return nil, &PathError{Reason: ErrIndexOutOfRange, Segment: digits, Depth: depth}
		}
		path = append(path, Step{Index: uint32(v), Hardened: hardened})
	}
	return path, nil
}

// MustParsePath is ParsePath for constant paths; it panics on error.
func MustParsePath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the canonical form of the path.
func (p Path) String() string {
	var b strings.Builder
	b.WriteString("m")
	for _, s := range p {
		b.WriteByte('/')
		b.WriteString(s.String())
	}
	return b.String()
}

// HasHardened reports whether any step is hardened.
func (p Path) HasHardened() bool {
	for _, s := range p {
		if s.Hardened {
			return true
		}
	}
	return false
}

// Child returns a copy of p extended by one step.
func (p Path) Child(index uint32, hardened bool) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, Step{Index: index, Hardened: hardened})
}

// Validate checks that p can be applied to root. A neutered root rejects
// any hardened step up front instead of failing midway.
func (p Path) Validate(root *ExtendedKey) error {
	if root == nil {
		return &PathError{Reason: ErrNoRootKey}
	}
	if int(root.Depth())+len(p) > MaxPathDepth {
		return &PathError{Reason: ErrDepthExceeded, Depth: int(root.Depth()) + len(p)}
	}
	if p.HasHardened() && !root.IsPrivate() {
		return &PathError{Reason: ErrHardenedPathWithPublicRoot}
	}
	return nil
}

// Apply validates p against root and derives each step in order.
func (p Path) Apply(root *ExtendedKey) (*ExtendedKey, error) {
	if err := p.Validate(root); err != nil {
		return nil, err
	}
	key := root
	for _, s := range p {
		child, err := key.Child(s.Index, s.Hardened)
		if err != nil {
			return nil, err
		}
		key = child
	}
	return key, nil
}

// BIP44Path returns m/purpose'/coinType'/account'/change. Purpose, coin type
// and account are hardened; change is not.
func BIP44Path(purpose, coinType, account, change uint32) string {
	return Path{
		{Index: purpose, Hardened: true},
		{Index: coinType, Hardened: true},
		{Index: account, Hardened: true},
		{Index: change},
	}.String()
}

// BIP44Fields is user input for BIP44Path. Fields that do not parse as
// numbers fall back to their default.
type BIP44Fields struct {
	Purpose, Coin, Account, Change string
}

// Path builds the path for net, defaulting to purpose 44, the network coin
// type, account 0 and change 0.
func (f BIP44Fields) Path(net *Network) string {
	return BIP44Path(
		parseUintOr(f.Purpose, 44),
		parseUintOr(f.Coin, net.CoinType),
		parseUintOr(f.Account, 0),
		parseUintOr(f.Change, 0),
	)
}

func parseUintOr(s string, def uint32) uint32 {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 31)
	if err != nil {
		return def
	}
	return uint32(v)
}
