// Package main provides the hdkeys CLI tool for generating mnemonic phrases
// and deriving hierarchical deterministic keys and addresses.
package main

import (
	"fmt"
	"os"

	mcobra "github.com/muesli/mango-cobra"
	"github.com/muesli/roff"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     Config
	logger  = zerolog.Nop()

	rootCmd = &cobra.Command{
		Use:   "hdkeys",
		Short: "Generate mnemonic phrases and derive HD wallet keys",
		Long: `Generate BIP39 mnemonic phrases and derive BIP32 keys and addresses
for bitcoin, its forks, ethereum-style networks, ripple and nostr.

Settings can also come from a YAML config file (--config) or from
environment variables prefixed with HDKEYS_, for example
HDKEYS_NETWORK="LTC - Litecoin".

SECURITY TIP: Add a space before the command to prevent it from being
saved in your shell history. Phrases and keys printed by this tool
control funds; run it offline.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			cfg = c
			logger = newLogger(os.Stderr, cfg.LogLevel)
			logger.Debug().
				Str("network", cfg.Network).
				Str("language", cfg.Language).
				Int("words", cfg.Words).
				Msg("configuration loaded")
			return nil
		},
	}

	manCmd = &cobra.Command{
		Use:          "man",
		Args:         cobra.NoArgs,
		Short:        "generate man pages",
		Hidden:       true,
		SilenceUsage: true,
		RunE: func(*cobra.Command, []string) error {
			manPage, err := mcobra.NewManPage(1, rootCmd)
			if err != nil {
				//nolint: wrapcheck
				return err
			}
			manPage = manPage.WithSection("Copyright", "(C) 2025-2026 complex (complex@ft.hn)\n"+
				"See LICENSE for licensing information.")
			fmt.Println(manPage.Build(roff.NewDocument()))
			return nil
		},
	}

	// completionCmd generates shell completion scripts for bash, zsh, fish, and powershell.
	completionCmd = &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for hdkeys.

To load completions:

Bash:
  $ source <(hdkeys completion bash)

Zsh:
  $ hdkeys completion zsh > "${fpath[1]}/_hdkeys"

Fish:
  $ hdkeys completion fish | source

PowerShell:
  PS> hdkeys completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		SilenceUsage:          true,
		RunE: func(_ *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(os.Stdout)
			case "zsh":
				return rootCmd.GenZshCompletion(os.Stdout)
			case "fish":
				return rootCmd.GenFishCompletion(os.Stdout, true)
			case "powershell":
				return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unknown shell: %s", args[0])
			}
		},
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "YAML config file")
	flags.StringP("language", "l", defaultLanguage, "Wordlist language")
	flags.StringP("network", "n", defaultNetwork, "Network name, symbol or index (see `hdkeys networks`)")
	flags.IntP("words", "w", defaultWords, "Number of words in generated phrases (12, 15, 18, 21 or 24)")
	flags.String("log-level", defaultLogLevel, "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(phraseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(deriveCmd)
	rootCmd.AddCommand(networksCmd)
	rootCmd.AddCommand(manCmd)
	rootCmd.AddCommand(completionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
