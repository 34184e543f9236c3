// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package hdkeys

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by this package matches exactly one
// of these with errors.Is, plus a more specific reason below.
var (
	ErrRandomnessUnavailable     = errors.New("secure randomness unavailable")
	ErrInvalidPhrase             = errors.New("invalid mnemonic phrase")
	ErrInvalidSerializedKey      = errors.New("invalid serialized key")
	ErrInvalidPath               = errors.New("invalid derivation path")
	ErrDerivationRejected        = errors.New("derivation rejected")
	ErrUnsupportedNetworkFeature = errors.New("unsupported network feature")
)

// Phrase and entropy reasons.
var (
	ErrEmptyPhrase          = errors.New("blank mnemonic")
	ErrUnknownWord          = errors.New("word not in wordlist")
	ErrChecksumMismatch     = errors.New("checksum mismatch")
	ErrInvalidWordCount     = errors.New("word count must be 12, 15, 18, 21 or 24")
	ErrInvalidEntropyLength = errors.New("entropy must be 128, 160, 192, 224 or 256 bits")
	ErrUnknownLanguage      = errors.New("unknown wordlist language")
)

// Serialized key reasons.
var (
	ErrBadKeyChecksum     = errors.New("bad checksum")
	ErrBadKeyVersion      = errors.New("version bytes do not match network")
	ErrMalformedKeyLength = errors.New("malformed key length")
)

// Path reasons.
var (
	ErrMissingRootMarker          = errors.New("first character must be 'm'")
	ErrMissingSeparator           = errors.New("separator must be '/'")
	ErrNonNumericSegment          = errors.New("invalid characters in path segment")
	ErrDepthExceeded              = errors.New("derivation depth exceeds 255")
	ErrIndexOutOfRange            = errors.New("index exceeds 2^31-1")
	ErrNoRootKey                  = errors.New("no root key")
	ErrHardenedPathWithPublicRoot = errors.New("hardened derivation path is invalid with xpub key")
)

// Derivation and encoding reasons.
var (
	ErrHardenedFromPublic = errors.New("hardened derivation requires a private key")
	ErrInvalidChild       = errors.New("derived key is invalid, use the next index")
	ErrUnusableSeed       = errors.New("seed produces an invalid master key")
	ErrNoPrivateKey       = errors.New("key holds no private part")
	ErrSegwitUnsupported  = errors.New("network does not support segwit")
	ErrUnknownNetwork     = errors.New("unknown network")
)

// PhraseError describes why a mnemonic phrase was rejected. For unknown words
// it carries the offending word and the closest wordlist entry.
type PhraseError struct {
	Reason     error
	Word       string
	Suggestion string
}

func (e *PhraseError) Error() string {
	if e.Word != "" {
		if e.Suggestion != "" {
			return fmt.Sprintf("%s not in wordlist, did you mean %s?", e.Word, e.Suggestion)
		}
		return fmt.Sprintf("%s not in wordlist", e.Word)
	}
	return fmt.Sprintf("%v: %v", ErrInvalidPhrase, e.Reason)
}

func (e *PhraseError) Unwrap() []error { return []error{ErrInvalidPhrase, e.Reason} }

// KeyError describes why a serialized extended key was rejected.
type KeyError struct {
	Reason error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%v: %v", ErrInvalidSerializedKey, e.Reason)
}

func (e *KeyError) Unwrap() []error { return []error{ErrInvalidSerializedKey, e.Reason} }

// PathError describes why a derivation path was rejected. Depth is the
// 1-based position of Segment in the path, or 0 when the error is not tied to
// a single segment.
type PathError struct {
	Reason  error
	Segment string
	Depth   int
}

func (e *PathError) Error() string {
	switch {
	case errors.Is(e.Reason, ErrNonNumericSegment):
		return fmt.Sprintf("invalid characters %q found at depth %d", e.Segment, e.Depth)
	case errors.Is(e.Reason, ErrIndexOutOfRange):
		return fmt.Sprintf("value of %s at depth %d must be less than 2147483648", e.Segment, e.Depth)
	}
	return fmt.Sprintf("%v: %v", ErrInvalidPath, e.Reason)
}

func (e *PathError) Unwrap() []error { return []error{ErrInvalidPath, e.Reason} }

// DerivationError reports a refused derivation or encoding step.
type DerivationError struct {
	Reason   error
	Index    uint32
	Hardened bool
}

func (e *DerivationError) Error() string {
	mark := ""
	if e.Hardened {
		mark = "'"
	}
	return fmt.Sprintf("%v at index %d%s: %v", ErrDerivationRejected, e.Index, mark, e.Reason)
}

func (e *DerivationError) Unwrap() []error {
	return []error{ErrDerivationRejected, e.Reason}
}

// FeatureError reports that a network lacks something the caller asked for.
type FeatureError struct {
	Network string
	Feature string
}

func (e *FeatureError) Error() string {
	return fmt.Sprintf("%v: %s has no %s", ErrUnsupportedNetworkFeature, e.Network, e.Feature)
}

func (e *FeatureError) Unwrap() error { return ErrUnsupportedNetworkFeature }
