package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/complex-gh/hdkeys"
	"github.com/spf13/cobra"
)

// clientPreset mirrors the derivation layout of a well known wallet.
type clientPreset struct {
	Name     string
	Path     string
	Hardened bool
}

var clients = []clientPreset{
	{Name: "Bitcoin Core", Path: "m/0'/0'", Hardened: true},
	{Name: "blockchain.info", Path: "m/44'/0'/0'", Hardened: false},
	{Name: "MultiBit HD", Path: "m/0'/0", Hardened: false},
}

func lookupClient(name string) (clientPreset, error) {
	want := sanitizeLang(name)
	for _, c := range clients {
		if sanitizeLang(c.Name) == want {
			return c, nil
		}
	}
	names := make([]string, len(clients))
	for i, c := range clients {
		names[i] = sanitizeLang(c.Name)
	}
	return clientPreset{}, fmt.Errorf("unknown client %q (known: %s)", name, strings.Join(names, ", "))
}

// resolveNetwork accepts a registry index, a display name or a symbol.
func resolveNetwork(reg *hdkeys.Registry, name string) (*hdkeys.Network, error) {
	if i, err := strconv.Atoi(strings.TrimSpace(name)); err == nil {
		return reg.At(i)
	}
	return reg.Lookup(name)
}

// deriveOptions are the flags of the derive command.
type deriveOptions struct {
	phrase        string
	rootKey       string
	passphrase    string
	askPassphrase bool
	path          string
	purpose       string
	coin          string
	account       string
	change        string
	start         uint32
	count         int
	hardened      bool
	client        string
	segwit        string
}

// derivationPath picks the path to derive: an explicit --path, then a client
// preset, then BIP44 fields with the purpose defaulting to the segwit mode.
func (o deriveOptions) derivationPath(net *hdkeys.Network, mode hdkeys.SegwitMode) (string, bool, error) {
	hardened := o.hardened
	if o.client != "" {
		c, err := lookupClient(o.client)
		if err != nil {
			return "", false, err
		}
		hardened = c.Hardened
		if o.path == "" {
			return c.Path, hardened, nil
		}
	}
	if o.path != "" {
		return o.path, hardened, nil
	}
	purpose := o.purpose
	if purpose == "" {
		purpose = strconv.FormatUint(uint64(mode.Purpose()), 10)
	}
	fields := hdkeys.BIP44Fields{Purpose: purpose, Coin: o.coin, Account: o.account, Change: o.change}
	return fields.Path(net), hardened, nil
}

var (
	deriveFlags deriveOptions

	deriveCmd = &cobra.Command{
		Use:   "derive",
		Short: "Derive keys and addresses from a phrase or an extended key",
		Long: `Derive keys and addresses from a mnemonic phrase or a serialized
extended key (xprv/xpub and network equivalents).

The phrase is read from stdin unless --phrase or --root-key is given. The
default path is BIP44 for the selected network; --segwit switches the
purpose to 49 or 84 unless --purpose is set.

With an xpub root only non-hardened paths and addresses can be derived.`,
		Example: `  echo "abandon ... about" | hdkeys derive
  hdkeys derive --network ETH --count 5 < phrase.txt
  hdkeys derive --segwit p2wpkh --ask-passphrase < phrase.txt
  hdkeys derive --root-key xpub6C... --path m/0
  hdkeys derive --client bitcoin-core < phrase.txt`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o := deriveFlags
			if !cmd.Flags().Changed("count") {
				o.count = cfg.Derive.Count
			}
			if !cmd.Flags().Changed("segwit") {
				o.segwit = cfg.Derive.Segwit
			}
			if !cmd.Flags().Changed("client") {
				o.client = cfg.Derive.Client
			}
			return formatError(runDerive(os.Stdout, os.Stdin, o))
		},
	}

	networksCmd = &cobra.Command{
		Use:          "networks",
		Short:        "List supported networks",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			printNetworks(os.Stdout, hdkeys.DefaultRegistry())
			return nil
		},
	}
)

func init() {
	f := deriveCmd.Flags()
	f.StringVar(&deriveFlags.phrase, "phrase", "", "Mnemonic phrase (prefer stdin, flags end up in shell history)")
	f.StringVar(&deriveFlags.rootKey, "root-key", "", "Serialized root extended key")
	f.StringVar(&deriveFlags.passphrase, "passphrase", "", "BIP39 passphrase")
	f.BoolVar(&deriveFlags.askPassphrase, "ask-passphrase", false, "Prompt for the BIP39 passphrase")
	f.StringVar(&deriveFlags.path, "path", "", "Derivation path of the address parent, e.g. m/44'/0'/0'/0")
	f.StringVar(&deriveFlags.purpose, "purpose", "", "BIP44 purpose (default 44, 49 or 84 by segwit mode)")
	f.StringVar(&deriveFlags.coin, "coin", "", "BIP44 coin type (default: network coin type)")
	f.StringVar(&deriveFlags.account, "account", "", "BIP44 account (default 0)")
	f.StringVar(&deriveFlags.change, "change", "", "BIP44 change (default 0)")
	f.Uint32Var(&deriveFlags.start, "start", 0, "First address index")
	f.IntVar(&deriveFlags.count, "count", defaultCount, "Number of addresses")
	f.BoolVar(&deriveFlags.hardened, "hardened", false, "Derive hardened addresses")
	f.StringVar(&deriveFlags.client, "client", "", "Use the layout of a wallet client (bitcoin-core, blockchain.info, multibit-hd)")
	f.StringVar(&deriveFlags.segwit, "segwit", "none", "Segwit address mode (none, p2wpkh-p2sh, p2wpkh)")
}

func runDerive(w io.Writer, stdin io.Reader, o deriveOptions) error {
	net, err := resolveNetwork(hdkeys.DefaultRegistry(), cfg.Network)
	if err != nil {
		return err
	}
	mode, err := hdkeys.ParseSegwitMode(o.segwit)
	if err != nil {
		return err
	}
	if o.count < 0 {
		return fmt.Errorf("invalid address count %d", o.count)
	}

	root, err := rootKey(stdin, o, net)
	if err != nil {
		return err
	}
	path, hardened, err := o.derivationPath(net, mode)
	if err != nil {
		return err
	}

	info, err := hdkeys.AccountKeys(root, path, mode)
	if err != nil {
		return err
	}

	start := time.Now()
	addrs, err := hdkeys.DeriveAddresses(info.Key, net, info.Path, o.start, uint32(o.count), hdkeys.EncodeOptions{ //nolint:gosec
		Hardened: hardened,
		Segwit:   mode,
	})
	if err != nil {
		return err
	}
	logger.Debug().
		Str("network", net.Name).
		Str("path", info.Path).
		Str("segwit", mode.String()).
		Int("count", len(addrs)).
		Dur("took", time.Since(start)).
		Msg("addresses derived")

	header(w, "root key")
	_, _ = fmt.Fprintln(w, root.String())
	_, _ = fmt.Fprintln(w)

	header(w, fmt.Sprintf("%s extended keys at %s", strings.ToLower(net.Name), info.Path))
	if info.Xprv != "" {
		_, _ = fmt.Fprintf(w, "%s (xprv)\n", info.Xprv)
	}
	_, _ = fmt.Fprintf(w, "%s (xpub)\n", info.Xpub)
	if info.SegwitXprv != "" {
		_, _ = fmt.Fprintf(w, "%s (%s private)\n", info.SegwitXprv, mode)
	}
	if info.SegwitXpub != "" {
		_, _ = fmt.Fprintf(w, "%s (%s public)\n", info.SegwitXpub, mode)
	}
	_, _ = fmt.Fprintln(w)

	header(w, fmt.Sprintf("%s addresses", strings.ToLower(net.Name)))
	printAddresses(w, addrs)
	return nil
}

func rootKey(stdin io.Reader, o deriveOptions, net *hdkeys.Network) (*hdkeys.ExtendedKey, error) {
	if o.rootKey != "" {
		if o.phrase != "" {
			return nil, errors.New("--phrase and --root-key are mutually exclusive")
		}
		return hdkeys.RootKeyFromSerialized(strings.TrimSpace(o.rootKey), net)
	}

	phrase := o.phrase
	if phrase == "" {
		if f, ok := stdin.(*os.File); ok && isTerminal(f) {
			return nil, errors.New("no phrase given: pipe one on stdin or use --phrase or --root-key")
		}
		var err error
		if phrase, err = readPhrase(nil, stdin); err != nil {
			return nil, err
		}
	}

	passphrase := o.passphrase
	if o.askPassphrase {
		var err error
		if passphrase, err = askSeedPassphrase(); err != nil {
			return nil, err
		}
	}
	return hdkeys.PhraseToRootKey(phrase, passphrase, net)
}

func printAddresses(w io.Writer, addrs []hdkeys.Address) {
	if !isTerminal(w) {
		for _, a := range addrs {
			_, _ = fmt.Fprintf(w, "%s %s %s %s\n", a.Path, a.Address, a.PublicKey, a.PrivateKey)
		}
		return
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("path", "address", "public key", "private key")
	for _, a := range addrs {
		t.Row(a.Path, a.Address, a.PublicKey, a.PrivateKey)
	}
	_, _ = fmt.Fprintln(w, t.String())
}

func printNetworks(w io.Writer, reg *hdkeys.Registry) {
	for i, n := range reg.All() {
		var flags []string
		if n.Segwit {
			flags = append(flags, "segwit")
		}
		if n.AccountBased {
			flags = append(flags, "account")
		}
		if n.Transform != nil {
			flags = append(flags, "custom")
		}
		_, _ = fmt.Fprintf(w, "%3d  %-28s coin %-5d %s\n", i, n.Name, n.CoinType, strings.Join(flags, ","))
	}
}
