package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/complex-gh/hdkeys"
	"github.com/spf13/cobra"
)

var (
	entropyHex     string
	sshKeyPath     string
	seedPassphrase string
	translateTo    string

	phraseCmd = &cobra.Command{
		Use:   "phrase",
		Short: "Generate a mnemonic phrase",
		Long: `Generate a BIP39 mnemonic phrase.

The phrase is random unless --entropy or --ssh-key is given. An ed25519
SSH key always yields the same phrase for a given word count and seed
passphrase; the key cannot be recovered from the phrase.`,
		Example: `  hdkeys phrase
  hdkeys phrase --words 24 --language japanese
  hdkeys phrase --entropy 000102030405060708090a0b0c0d0e0f
  hdkeys phrase --ssh-key ~/.ssh/id_ed25519 --words 12`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			m, err := configuredMnemonic()
			if err != nil {
				return formatError(err)
			}

			var phrase string
			switch {
			case entropyHex != "" && sshKeyPath != "":
				return formatError(errors.New("--entropy and --ssh-key are mutually exclusive"))
			case entropyHex != "":
				entropy, err := hex.DecodeString(strings.TrimPrefix(entropyHex, "0x"))
				if err != nil {
					return formatError(fmt.Errorf("could not decode entropy: %w", err))
				}
				phrase, err = m.FromEntropy(entropy)
				if err != nil {
					return formatError(err)
				}
			case sshKeyPath != "":
				key, err := readEd25519Key(sshKeyPath)
				if err != nil {
					return formatError(err)
				}
				entropy, err := hdkeys.EntropyFromEd25519(key, cfg.Words, seedPassphrase)
				if err != nil {
					return formatError(fmt.Errorf("could not derive entropy from key: %w", err))
				}
				phrase, err = m.FromEntropy(entropy)
				if err != nil {
					return formatError(err)
				}
			default:
				phrase, err = m.GenerateWords(cfg.Words)
				if err != nil {
					return formatError(err)
				}
			}

			logger.Debug().
				Str("language", string(m.Wordlist().Language())).
				Int("words", len(hdkeys.SplitWords(phrase))).
				Msg("phrase generated")

			header(os.Stdout, fmt.Sprintf("%d word %s phrase", len(hdkeys.SplitWords(phrase)), m.Wordlist().Language()))
			fmt.Println(phrase)
			return nil
		},
	}

	checkCmd = &cobra.Command{
		Use:   "check [phrase...]",
		Short: "Validate a mnemonic phrase",
		Long: `Validate a mnemonic phrase and show its language, entropy and word
indexes. Unknown words are reported with the closest wordlist entry.

The phrase is read from stdin when no arguments are given.`,
		Example: `  hdkeys check abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about
  cat phrase.txt | hdkeys check`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			phrase, err := readPhrase(args, os.Stdin)
			if err != nil {
				return formatError(err)
			}
			wl, _ := hdkeys.DefaultWordlists().DetectLanguage(phrase)
			m := hdkeys.NewMnemonic(wl)

			entropy, err := m.ToEntropy(phrase)
			if err != nil {
				return formatError(err)
			}
			indexes, err := m.WordIndexes(phrase)
			if err != nil {
				return formatError(err)
			}

			header(os.Stdout, "valid phrase")
			fmt.Printf("%s (language)\n", wl.Language())
			fmt.Printf("%d (words)\n", len(indexes))
			fmt.Printf("%s (entropy)\n", hex.EncodeToString(entropy))
			fmt.Printf("%s (word indexes)\n", joinInts(indexes))
			return nil
		},
	}

	translateCmd = &cobra.Command{
		Use:   "translate --to <language> [phrase...]",
		Short: "Write a phrase with the words of another language",
		Long: `Write a phrase with the words of another language. The entropy is
kept, but the seed of the translated phrase differs because BIP39 stretches
the words themselves.`,
		Example: `  hdkeys translate --to spanish abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			to, err := parseLanguage(translateTo)
			if err != nil {
				return formatError(err)
			}
			phrase, err := readPhrase(args, os.Stdin)
			if err != nil {
				return formatError(err)
			}
			store := hdkeys.DefaultWordlists()
			from, _ := store.DetectLanguage(phrase)
			if err := hdkeys.NewMnemonic(from).Validate(phrase); err != nil {
				return formatError(err)
			}
			out, err := store.Translate(phrase, to)
			if err != nil {
				return formatError(err)
			}
			fmt.Println(out)
			return nil
		},
	}
)

func init() {
	phraseCmd.Flags().StringVar(&entropyHex, "entropy", "", "Hex entropy to encode instead of random bytes")
	phraseCmd.Flags().StringVar(&sshKeyPath, "ssh-key", "", "Derive the phrase from an ed25519 SSH private key (- for stdin)")
	phraseCmd.Flags().StringVar(&seedPassphrase, "seed-passphrase", "", "Passphrase to combine with SSH key seed for additional entropy")
	translateCmd.Flags().StringVar(&translateTo, "to", "", "Target language")
	_ = translateCmd.MarkFlagRequired("to")
}

func configuredMnemonic() (*hdkeys.Mnemonic, error) {
	language, err := parseLanguage(cfg.Language)
	if err != nil {
		return nil, err
	}
	wl, err := hdkeys.DefaultWordlists().Get(language)
	if err != nil {
		return nil, err
	}
	return hdkeys.NewMnemonic(wl), nil
}

// readPhrase joins args, or reads r when there are none.
func readPhrase(args []string, r io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	bts, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("could not read phrase: %w", err)
	}
	return strings.TrimSpace(string(bts)), nil
}

func joinInts(v []int) string {
	s := make([]string, len(v))
	for i, n := range v {
		s[i] = fmt.Sprint(n)
	}
	return strings.Join(s, " ")
}
