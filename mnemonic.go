// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package hdkeys

import (
	"crypto/rand"
	"crypto/sha256"
	"io"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/unicode/norm"
)

// Mnemonic converts between entropy and phrases of one wordlist.
type Mnemonic struct {
	wordlist *Wordlist
}

// NewMnemonic returns a codec for wl.
func NewMnemonic(wl *Wordlist) *Mnemonic {
	return &Mnemonic{wordlist: wl}
}

// Wordlist returns the list the codec encodes with.
func (m *Mnemonic) Wordlist() *Wordlist { return m.wordlist }

// EntropyBitsForWords maps a phrase length to its entropy size:
//   - 12 words = 128 bits
//   - 15 words = 160 bits
//   - 18 words = 192 bits
//   - 21 words = 224 bits
//   - 24 words = 256 bits
func EntropyBitsForWords(wordCount int) (int, error) {
	if wordCount < 12 || wordCount > 24 || wordCount%3 != 0 {
		return 0, &PhraseError{Reason: ErrInvalidWordCount}
	}
	return wordCount / 3 * 32, nil
}

func validEntropyBits(bits int) bool {
	return bits >= 128 && bits <= 256 && bits%32 == 0
}

// Generate returns a new phrase holding entropyBits bits of entropy read from
// crypto/rand.
func (m *Mnemonic) Generate(entropyBits int) (string, error) {
	return m.GenerateFrom(rand.Reader, entropyBits)
}

// GenerateFrom is Generate with an explicit randomness source. A short read
// or read error is reported as ErrRandomnessUnavailable, never papered over.
func (m *Mnemonic) GenerateFrom(r io.Reader, entropyBits int) (string, error) {
	entropy, err := NewEntropy(r, entropyBits)
	if err != nil {
		return "", err
	}
	return m.FromEntropy(entropy)
}

// GenerateWords returns a new random phrase of wordCount words.
func (m *Mnemonic) GenerateWords(wordCount int) (string, error) {
	bits, err := EntropyBitsForWords(wordCount)
	if err != nil {
		return "", err
	}
	return m.Generate(bits)
}

// FromEntropy encodes entropy as a phrase. The checksum is the first
// len(entropy)*8/32 bits of SHA-256(entropy), appended before splitting into
// 11-bit word indexes.
func (m *Mnemonic) FromEntropy(entropy []byte) (string, error) {
	bits := len(entropy) * 8
	if !validEntropyBits(bits) {
		return "", &PhraseError{Reason: ErrInvalidEntropyLength}
	}
	csBits := bits / 32
	hash := sha256.Sum256(entropy)

	data := make([]byte, len(entropy)+1)
	copy(data, entropy)
	data[len(entropy)] = hash[0]

	count := (bits + csBits) / 11
	words := make([]string, count)
	for i := 0; i < count; i++ {
		idx := 0
		for j := 0; j < 11; j++ {
			idx = idx<<1 | bitAt(data, i*11+j)
		}
		words[i] = m.wordlist.Word(idx)
	}
	return m.wordlist.JoinWords(words), nil
}

// ToEntropy decodes a phrase back to its entropy after checking the words
// and the checksum.
func (m *Mnemonic) ToEntropy(phrase string) ([]byte, error) {
	indexes, err := m.WordIndexes(phrase)
	if err != nil {
		return nil, err
	}
	if _, err := EntropyBitsForWords(len(indexes)); err != nil {
		return nil, err
	}

	total := len(indexes) * 11
	csBits := total / 33
	entBits := total - csBits

	data := make([]byte, entBits/8+1)
	for i, idx := range indexes {
		for j := 0; j < 11; j++ {
			if idx&(1<<(10-j)) != 0 {
				pos := i*11 + j
				data[pos/8] |= 1 << (7 - pos%8)
			}
		}
	}
	entropy := data[:entBits/8]
	hash := sha256.Sum256(entropy)
	want := hash[0] >> (8 - csBits)
	got := data[entBits/8] >> (8 - csBits)
	if want != got {
		return nil, &PhraseError{Reason: ErrChecksumMismatch}
	}
	return entropy, nil
}

// Validate checks that phrase is non-blank, uses only wordlist words, has a
// valid length and a matching checksum. Unknown words are reported with the
// nearest wordlist entry.
func (m *Mnemonic) Validate(phrase string) error {
	_, err := m.ToEntropy(phrase)
	return err
}

// WordIndexes returns the wordlist index of every word of phrase.
func (m *Mnemonic) WordIndexes(phrase string) ([]int, error) {
	words := SplitWords(phrase)
	if len(words) == 0 {
		return nil, &PhraseError{Reason: ErrEmptyPhrase}
	}
	indexes := make([]int, len(words))
	for i, w := range words {
		idx, ok := m.wordlist.Index(w)
		if !ok {
			return nil, &PhraseError{
				Reason:     ErrUnknownWord,
				Word:       w,
				Suggestion: m.SuggestCorrection(w),
			}
		}
		indexes[i] = idx
	}
	return indexes, nil
}

// Normalize rejoins the words of phrase with the wordlist separator.
func (m *Mnemonic) Normalize(phrase string) string {
	return m.wordlist.JoinWords(SplitWords(phrase))
}

// SuggestCorrection returns the wordlist entry closest to word. The first
// entry starting with word wins outright; otherwise the entry with the
// smallest edit distance does, ties going to the earlier entry. Both sides
// are compared in NFKD form.
func (m *Mnemonic) SuggestCorrection(word string) string {
	words := m.wordlist.words
	word = norm.NFKD.String(word)
	normalized := make([]string, len(words))
	for i, w := range words {
		normalized[i] = norm.NFKD.String(w)
		if strings.HasPrefix(normalized[i], word) {
			return w
		}
	}
	closest, best := words[0], -1
	for i, w := range normalized {
		d := levenshtein.ComputeDistance(word, w)
		if best < 0 || d < best {
			closest, best = words[i], d
		}
	}
	return closest
}

func bitAt(data []byte, pos int) int {
	return int(data[pos/8]>>(7-pos%8)) & 1
}
