package main

import (
	"fmt"
	"strings"

	"github.com/complex-gh/hdkeys"
	lang "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var languages = map[lang.Tag]hdkeys.Language{
	lang.Chinese:              hdkeys.ChineseSimplified,
	lang.SimplifiedChinese:    hdkeys.ChineseSimplified,
	lang.TraditionalChinese:   hdkeys.ChineseTraditional,
	lang.Czech:                hdkeys.Czech,
	lang.AmericanEnglish:      hdkeys.English,
	lang.BritishEnglish:       hdkeys.English,
	lang.English:              hdkeys.English,
	lang.French:               hdkeys.French,
	lang.Italian:              hdkeys.Italian,
	lang.Japanese:             hdkeys.Japanese,
	lang.Korean:               hdkeys.Korean,
	lang.Spanish:              hdkeys.Spanish,
	lang.EuropeanSpanish:      hdkeys.Spanish,
	lang.LatinAmericanSpanish: hdkeys.Spanish,
}

func sanitizeLang(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}

// parseLanguage resolves a wordlist from a BCP 47 tag ("ja", "zh-Hant"), an
// English language name ("Japanese", "Traditional Chinese") or a wordlist
// name ("chinese_traditional").
func parseLanguage(name string) (hdkeys.Language, error) {
	for _, l := range hdkeys.DefaultWordlists().Languages() {
		if strings.EqualFold(name, string(l)) {
			return l, nil
		}
	}

	name = sanitizeLang(name)
	en := display.English.Languages() // default language name matcher
	for t, l := range languages {
		if sanitizeLang(en.Name(t)) == name {
			return l, nil
		}
	}

	tag, err := lang.Parse(name)
	if err != nil || tag == lang.Und {
		return "", fmt.Errorf("%w: %s", hdkeys.ErrUnknownLanguage, name)
	}
	if l, ok := languages[tag]; ok {
		return l, nil
	}
	base, _ := tag.Base()
	if l, ok := languages[lang.MustParse(base.String())]; ok {
		return l, nil
	}
	return "", fmt.Errorf("%w: %s", hdkeys.ErrUnknownLanguage, name)
}
