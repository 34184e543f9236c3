// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package hdkeys

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
)

// TestParsePath parses valid paths into steps and back.
func TestParsePath(t *testing.T) {
	tests := []struct {
		in   string
		want Path
	}{
		{"m", Path{}},
		{"m/0", Path{{Index: 0}}},
		{"m/44'/0'/0'/0", Path{{44, true}, {0, true}, {0, true}, {0, false}}},
		{"m/2147483647'/2147483647", Path{{MaxIndex, true}, {MaxIndex, false}}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			is := is.New(t)
			p, err := ParsePath(tt.in)
			is.NoErr(err)
			is.Equal(p, tt.want)
			is.Equal(p.String(), tt.in)
		})
	}
}

// TestParsePath_Errors reports the first problem of each malformed path.
func TestParsePath_Errors(t *testing.T) {
	tests := []struct {
		in     string
		reason error
		msg    string
	}{
		{"", ErrMissingRootMarker, ""},
		{"44'/0'", ErrMissingRootMarker, ""},
		{"M/0", ErrMissingRootMarker, ""},
		{"m44", ErrMissingSeparator, ""},
		{"m/", ErrNonNumericSegment, `invalid characters "" found at depth 1`},
		{"m/0/", ErrNonNumericSegment, `invalid characters "" found at depth 2`},
		{"m/0/x1", ErrNonNumericSegment, `invalid characters "x1" found at depth 2`},
		{"m/0''", ErrNonNumericSegment, `invalid characters "0''" found at depth 1`},
		{"m/-1", ErrNonNumericSegment, ""},
		{"m/0//1", ErrNonNumericSegment, ""},
		{"m/2147483648", ErrIndexOutOfRange, "value of 2147483648 at depth 1 must be less than 2147483648"},
		{"m/0/99999999999999999999'", ErrIndexOutOfRange, "value of 99999999999999999999 at depth 2 must be less than 2147483648"},
		{"m" + strings.Repeat("/0", MaxPathDepth+1), ErrDepthExceeded, ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			is := is.New(t)
			_, err := ParsePath(tt.in)
			is.True(errors.Is(err, ErrInvalidPath))
			is.True(errors.Is(err, tt.reason))
			if tt.msg != "" {
				is.Equal(err.Error(), tt.msg)
			}
		})
	}
}

// TestParsePath_MaxDepth accepts exactly 255 steps.
func TestParsePath_MaxDepth(t *testing.T) {
	is := is.New(t)

	p, err := ParsePath("m" + strings.Repeat("/1", MaxPathDepth))
	is.NoErr(err)
	is.Equal(len(p), MaxPathDepth)
}

// TestPathValidate checks the root before any derivation.
func TestPathValidate(t *testing.T) {
	is := is.New(t)
	master := vector1Master(t)
	pub, err := master.Neuter()
	is.NoErr(err)

	hardened := MustParsePath("m/44'/0'/0'/0")
	normal := MustParsePath("m/0/1/2")

	err = hardened.Validate(nil)
	is.True(errors.Is(err, ErrNoRootKey))

	is.NoErr(hardened.Validate(master))
	is.NoErr(normal.Validate(pub))

	err = hardened.Validate(pub)
	is.True(errors.Is(err, ErrInvalidPath))
	is.True(errors.Is(err, ErrHardenedPathWithPublicRoot))

	_, err = hardened.Apply(pub)
	is.True(errors.Is(err, ErrHardenedPathWithPublicRoot))

	key, err := normal.Apply(pub)
	is.NoErr(err)
	is.Equal(key.Depth(), uint8(3))
}

// TestPathApply_Root returns the root itself for "m".
func TestPathApply_Root(t *testing.T) {
	is := is.New(t)
	master := vector1Master(t)

	key, err := DeriveAtPath(master, "m")
	is.NoErr(err)
	is.Equal(key.String(), master.String())
}

// TestPathChild does not alias the parent path.
func TestPathChild(t *testing.T) {
	is := is.New(t)

	base := MustParsePath("m/44'/0'/0'")
	a := base.Child(0, false)
	b := base.Child(1, false)
	is.Equal(a.String(), "m/44'/0'/0'/0")
	is.Equal(b.String(), "m/44'/0'/0'/1")
	is.Equal(base.String(), "m/44'/0'/0'")
	is.True(base.HasHardened())
	is.True(!MustParsePath("m/1/2").HasHardened())
}

// TestBIP44Path builds the conventional account paths.
func TestBIP44Path(t *testing.T) {
	is := is.New(t)

	is.Equal(BIP44Path(44, 0, 0, 0), "m/44'/0'/0'/0")
	is.Equal(BIP44Path(84, 1, 3, 1), "m/84'/1'/3'/1")

	eth, err := DefaultRegistry().Lookup("ETH")
	is.NoErr(err)
	is.Equal(BIP44Fields{}.Path(eth), "m/44'/60'/0'/0")
	is.Equal(BIP44Fields{Purpose: "49", Coin: "x", Account: " 2 ", Change: "1"}.Path(Bitcoin()), "m/49'/0'/2'/1")
}
