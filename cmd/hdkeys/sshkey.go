package main

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-tty"
	"golang.org/x/crypto/ssh"
	"golang.org/x/term"
)

// getDefaultSSHDir returns the default SSH directory for the current platform.
func getDefaultSSHDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".ssh"), nil
}

// resolveKeyPath attempts to resolve a key path. If the path doesn't exist
// and is a bare filename, the default SSH directory is checked for a key
// with that name.
func resolveKeyPath(path string) (string, error) {
	if path == "-" {
		return path, nil
	}
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	cleanedPath := filepath.Clean(path)
	dir := filepath.Dir(cleanedPath)
	if dir != "." && dir != "" {
		return "", fmt.Errorf("could not open %s: %w", path, os.ErrNotExist)
	}

	// Explicit relative paths are never looked up in the SSH directory.
	pathLower := strings.ToLower(path)
	if strings.HasPrefix(pathLower, "./") || strings.HasPrefix(pathLower, "../") ||
		strings.HasPrefix(pathLower, ".\\") || strings.HasPrefix(pathLower, "..\\") {
		return "", fmt.Errorf("could not open %s: %w", path, os.ErrNotExist)
	}

	sshDir, err := getDefaultSSHDir()
	if err != nil {
		return "", fmt.Errorf("could not determine SSH directory: %w", err)
	}
	defaultPath := filepath.Join(sshDir, filepath.Base(cleanedPath))
	if _, err := os.Stat(defaultPath); err == nil {
		return defaultPath, nil
	}
	return "", fmt.Errorf("could not open %s: file not found in current directory or %s: %w", path, sshDir, os.ErrNotExist)
}

func openFileOrStdin(path string) (*os.File, error) {
	if path == "-" {
		return os.Stdin, nil
	}

	resolvedPath, err := resolveKeyPath(path)
	if err != nil {
		return nil, err
	}

	// G304: resolvedPath is user-provided input, which is expected for a CLI tool
	f, err := os.Open(resolvedPath) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", resolvedPath, err)
	}
	return f, nil
}

func parsePrivateKey(bts, pass []byte) (interface{}, error) {
	if len(pass) == 0 {
		//nolint: wrapcheck
		return ssh.ParseRawPrivateKey(bts)
	}
	//nolint: wrapcheck
	return ssh.ParseRawPrivateKeyWithPassphrase(bts, pass)
}

func isPasswordError(err error) bool {
	var kerr *ssh.PassphraseMissingError
	return errors.As(err, &kerr)
}

// readEd25519Key loads an ed25519 SSH private key, asking for its passphrase
// when the key is encrypted.
func readEd25519Key(path string) (ed25519.PrivateKey, error) {
	f, err := openFileOrStdin(path)
	if err != nil {
		return nil, fmt.Errorf("could not read key: %w", err)
	}
	defer f.Close() //nolint:errcheck
	bts, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("could not read key: %w", err)
	}

	key, err := parsePrivateKey(bts, nil)
	if err != nil && isPasswordError(err) {
		pass, err := askKeyPassphrase(path)
		if err != nil {
			return nil, err
		}
		key, err = parsePrivateKey(bts, pass)
		if err != nil {
			return nil, fmt.Errorf("could not parse key with passphrase: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("could not parse key: %w", err)
	}

	switch key := key.(type) {
	case *ed25519.PrivateKey:
		return *key, nil
	case ed25519.PrivateKey:
		return key, nil
	default:
		return nil, fmt.Errorf("unknown key type: %T", key)
	}
}

func readPassword(msg string) ([]byte, error) {
	_, _ = fmt.Fprint(os.Stderr, msg)
	t, err := tty.Open()
	if err != nil {
		return nil, fmt.Errorf("could not open tty: %w", err)
	}
	defer t.Close()                                     //nolint: errcheck
	pass, err := term.ReadPassword(int(t.Input().Fd())) //nolint: gosec
	if err != nil {
		return nil, fmt.Errorf("could not read passphrase: %w", err)
	}
	return pass, nil
}

func askKeyPassphrase(path string) ([]byte, error) {
	defer fmt.Fprintf(os.Stderr, "\n")
	return readPassword(fmt.Sprintf("Enter the passphrase to unlock %q: ", path))
}

func askSeedPassphrase() (string, error) {
	defer fmt.Fprintf(os.Stderr, "\n")
	pass, err := readPassword("Enter the BIP39 passphrase: ")
	if err != nil {
		return "", err
	}
	return string(pass), nil
}
