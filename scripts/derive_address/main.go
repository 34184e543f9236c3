// derive_address derives the first receive address of a network from a BIP39
// mnemonic for testing.
//
// Usage:
//
//	go run ./scripts/derive_address "your seed phrase here"
//
// Or with stdin:
//
//	echo "your seed phrase" | go run ./scripts/derive_address
//
// The network defaults to bitcoin and can be changed with HDKEYS_NETWORK,
// e.g. HDKEYS_NETWORK=ETH. The path is BIP44 m/44'/coin'/0'/0/0.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/complex-gh/hdkeys"
)

func main() {
	var mnemonic string

	if len(os.Args) > 1 {
		mnemonic = strings.Join(os.Args[1:], " ")
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			mnemonic = strings.TrimSpace(scanner.Text())
		}
	}

	if mnemonic == "" {
		fmt.Fprintln(os.Stderr, "Usage: derive_address \"seed phrase\"")
		fmt.Fprintln(os.Stderr, "   or: echo \"seed phrase\" | derive_address")
		os.Exit(1)
	}

	network := os.Getenv("HDKEYS_NETWORK")
	if network == "" {
		network = "BTC - Bitcoin"
	}
	net, err := hdkeys.DefaultRegistry().Lookup(network)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	root, err := hdkeys.PhraseToRootKey(mnemonic, "", net)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	key, err := hdkeys.DeriveAtPath(root, hdkeys.BIP44Fields{}.Path(net))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	addr, err := hdkeys.EncodeAddress(key, net, 0, hdkeys.EncodeOptions{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(addr.Address)
}
