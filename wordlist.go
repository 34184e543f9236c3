// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package hdkeys

import (
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39/wordlists"
	"golang.org/x/text/unicode/norm"
)

// WordlistSize is the number of words in every BIP39 wordlist.
const WordlistSize = 2048

// Language names a BIP39 wordlist.
type Language string

// Supported languages, in registration order of the default store.
const (
	English            Language = "english"
	Japanese           Language = "japanese"
	Spanish            Language = "spanish"
	ChineseSimplified  Language = "chinese_simplified"
	ChineseTraditional Language = "chinese_traditional"
	French             Language = "french"
	Italian            Language = "italian"
	Korean             Language = "korean"
	Czech              Language = "czech"
)

// ideographicSpace joins Japanese phrases.
const ideographicSpace = "　"

// Wordlist is an immutable list of 2048 words. Lookups are done on the NFKD
// form so that accented and composed input both match.
type Wordlist struct {
	lang  Language
	words []string
	index map[string]int
}

// NewWordlist builds a wordlist, rejecting lists of the wrong size or with
// duplicate words.
func NewWordlist(lang Language, words []string) (*Wordlist, error) {
	if len(words) != WordlistSize {
		return nil, fmt.Errorf("wordlist %s has %d words, want %d", lang, len(words), WordlistSize)
	}
	wl := &Wordlist{
		lang:  lang,
		words: make([]string, len(words)),
		index: make(map[string]int, len(words)),
	}
	for i, w := range words {
		key := norm.NFKD.String(w)
		if _, dup := wl.index[key]; dup {
			return nil, fmt.Errorf("wordlist %s has duplicate word %q", lang, w)
		}
		wl.words[i] = w
		wl.index[key] = i
	}
	return wl, nil
}

// Language returns the language of the list.
func (w *Wordlist) Language() Language { return w.lang }

// Word returns the word at index i.
func (w *Wordlist) Word(i int) string { return w.words[i] }

// Index returns the position of word in the list.
func (w *Wordlist) Index(word string) (int, bool) {
	i, ok := w.index[norm.NFKD.String(word)]
	return i, ok
}

// Contains reports whether word is in the list.
func (w *Wordlist) Contains(word string) bool {
	_, ok := w.Index(word)
	return ok
}

// Separator returns the string placed between words of a phrase.
func (w *Wordlist) Separator() string {
	if w.lang == Japanese {
		return ideographicSpace
	}
	return " "
}

// JoinWords joins words with the separator of the list.
func (w *Wordlist) JoinWords(words []string) string {
	return strings.Join(words, w.Separator())
}

// SplitWords splits a phrase on any whitespace, including the ideographic
// space, dropping blanks.
func SplitWords(phrase string) []string {
	return strings.Fields(phrase)
}

// WordlistStore holds wordlists in registration order.
type WordlistStore struct {
	lists  []*Wordlist
	byLang map[Language]*Wordlist
}

// NewWordlistStore returns a store holding lists in the given order.
func NewWordlistStore(lists ...*Wordlist) (*WordlistStore, error) {
	s := &WordlistStore{byLang: make(map[Language]*Wordlist, len(lists))}
	for _, wl := range lists {
		if _, dup := s.byLang[wl.lang]; dup {
			return nil, fmt.Errorf("wordlist %s registered twice", wl.lang)
		}
		s.lists = append(s.lists, wl)
		s.byLang[wl.lang] = wl
	}
	return s, nil
}

// Get returns the wordlist for lang.
func (s *WordlistStore) Get(lang Language) (*Wordlist, error) {
	wl, ok := s.byLang[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, lang)
	}
	return wl, nil
}

// Languages returns the registered languages in order.
func (s *WordlistStore) Languages() []Language {
	langs := make([]Language, len(s.lists))
	for i, wl := range s.lists {
		langs[i] = wl.lang
	}
	return langs
}

// DetectLanguage returns the wordlist sharing the most words with phrase and
// the number of matching words. Ties go to the list registered first, which
// matters for simplified and traditional Chinese that share many characters.
func (s *WordlistStore) DetectLanguage(phrase string) (*Wordlist, int) {
	words := SplitWords(phrase)
	var (
		best    *Wordlist
		matches = -1
	)
	for _, wl := range s.lists {
		n := 0
		for _, w := range words {
			if wl.Contains(w) {
				n++
			}
		}
		if n > matches {
			best, matches = wl, n
		}
	}
	return best, matches
}

// Translate re-encodes phrase, written in its detected language, with the
// words of language to. Word indexes are preserved so the entropy does not
// change.
func (s *WordlistStore) Translate(phrase string, to Language) (string, error) {
	dst, err := s.Get(to)
	if err != nil {
		return "", err
	}
	src, _ := s.DetectLanguage(phrase)
	if src == nil {
		return "", fmt.Errorf("%w: empty wordlist store", ErrUnknownLanguage)
	}
	indexes, err := NewMnemonic(src).WordIndexes(phrase)
	if err != nil {
		return "", err
	}
	words := make([]string, len(indexes))
	for i, idx := range indexes {
		words[i] = dst.Word(idx)
	}
	return dst.JoinWords(words), nil
}

var defaultWordlists = mustDefaultWordlists()

// DefaultWordlists returns the store of all BIP39 wordlists shipped with
// go-bip39, english first.
func DefaultWordlists() *WordlistStore { return defaultWordlists }

func mustDefaultWordlists() *WordlistStore {
	sources := []struct {
		lang  Language
		words []string
	}{
		{English, wordlists.English},
		{Japanese, wordlists.Japanese},
		{Spanish, wordlists.Spanish},
		{ChineseSimplified, wordlists.ChineseSimplified},
		{ChineseTraditional, wordlists.ChineseTraditional},
		{French, wordlists.French},
		{Italian, wordlists.Italian},
		{Korean, wordlists.Korean},
		{Czech, wordlists.Czech},
	}
	lists := make([]*Wordlist, 0, len(sources))
	for _, src := range sources {
		wl, err := NewWordlist(src.lang, src.words)
		if err != nil {
			panic(err)
		}
		lists = append(lists, wl)
	}
	store, err := NewWordlistStore(lists...)
	if err != nil {
		panic(err)
	}
	return store
}
