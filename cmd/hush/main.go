package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/awnumar/memguard"
	"github.com/codahale/hush"
	"github.com/codahale/hush/store/boltstore"
	"golang.org/x/term"
)

// Globals are the flags shared by every command.
type Globals struct {
	Store   string `type:"path" default:"${store}" help:"The path to the group key store."`
	Verbose bool   `short:"v" help:"Log debug output."`
}

type cli struct {
	Globals

	Generate       generateCmd       `cmd:"" help:"Generate a new identity key pair."`
	PublicKey      publicKeyCmd      `cmd:"" help:"Print the public key of an identity."`
	Fingerprint    fingerprintCmd    `cmd:"" help:"Print the fingerprint of a public key."`
	ChangePassword changePasswordCmd `cmd:"" help:"Re-protect an identity with a new password."`
	Encrypt        encryptCmd        `cmd:"" help:"Encrypt a direct message."`
	Decrypt        decryptCmd        `cmd:"" help:"Decrypt a direct message."`
	GroupCreate    groupCreateCmd    `cmd:"" help:"Create a group key and wrap it for each member."`
	GroupUnwrap    groupUnwrapCmd    `cmd:"" help:"Unwrap a group key and cache it."`
	GroupEncrypt   groupEncryptCmd   `cmd:"" help:"Encrypt a group message with a cached group key."`
	GroupDecrypt   groupDecryptCmd   `cmd:"" help:"Decrypt a group message with a cached group key."`
}

func main() {
	memguard.CatchInterrupt()

	var cli cli

	dir := configDir()

	ctx := kong.Parse(&cli,
		kong.Description("End-to-end encryption for chat messages."),
		kong.Vars{"store": filepath.Join(dir, "groups.db")},
		kong.Configuration(yamlConfig, filepath.Join(dir, "config.yaml")),
	)

	err := ctx.Run(&cli.Globals, newLogger(cli.Verbose))
	ctx.FatalIfErrorf(err)
}

func configDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	return filepath.Join(dir, "hush")
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func openStore(g *Globals, log *slog.Logger) (*hush.GroupKeyCache, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(g.Store), 0o700); err != nil {
		return nil, nil, err
	}

	s, err := boltstore.Open(g.Store, log)
	if err != nil {
		return nil, nil, err
	}

	return &hush.GroupKeyCache{Store: s}, s, nil
}

func readRecord(path string) (*hush.ProtectedRecord, error) {
	var record hush.ProtectedRecord
	if err := readJSON(path, &record); err != nil {
		return nil, fmt.Errorf("read identity: %w", err)
	}

	return &record, nil
}

func unlock(path string, log *slog.Logger) (*hush.PrivateKey, error) {
	record, err := readRecord(path)
	if err != nil {
		return nil, err
	}

	pwd, err := askPassword("Enter password: ")
	if err != nil {
		return nil, err
	}

	defer memguard.WipeBytes(pwd)

	sk, err := hush.UnprotectPrivateKey(record, pwd)
	if errors.Is(err, hush.ErrWrongPassword) {
		return nil, errors.New("incorrect password")
	} else if err != nil {
		return nil, err
	}

	log.Debug("unlocked identity", "fingerprint", sk.PublicKey().Fingerprint())

	return sk, nil
}

func askNewPassword() ([]byte, error) {
	pwd, err := askPassword("Enter password: ")
	if err != nil {
		return nil, err
	}

	cfm, err := askPassword("Confirm password: ")
	if err != nil {
		return nil, err
	}

	defer memguard.WipeBytes(cfm)

	if !bytes.Equal(pwd, cfm) {
		memguard.WipeBytes(pwd)

		return nil, errPasswordMismatch
	}

	return pwd, nil
}

func askPassword(prompt string) ([]byte, error) {
	defer func() { _, _ = fmt.Fprintln(os.Stderr) }()

	_, _ = fmt.Fprint(os.Stderr, prompt)

	return term.ReadPassword(int(os.Stdin.Fd()))
}

func decodePublicKeys(pathsOrKeys []string) ([]*hush.PublicKey, error) {
	keys := make([]*hush.PublicKey, len(pathsOrKeys))

	for i, path := range pathsOrKeys {
		pk, err := decodePublicKey(path)
		if err != nil {
			return nil, err
		}

		keys[i] = pk
	}

	return keys, nil
}

func decodePublicKey(pathOrKey string) (*hush.PublicKey, error) {
	// Try decoding the key directly.
	var pk hush.PublicKey
	if err := pk.UnmarshalText([]byte(pathOrKey)); err == nil {
		return &pk, nil
	}

	// Otherwise, try reading the contents of it as a file.
	b, err := os.ReadFile(pathOrKey)
	if err != nil {
		return nil, err
	}

	if err := pk.UnmarshalText(bytes.TrimSpace(b)); err != nil {
		return nil, fmt.Errorf("%s: %w", pathOrKey, err)
	}

	return &pk, nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(path)
}

func readJSON(path string, v interface{}) error {
	b, err := readInput(path)
	if err != nil {
		return err
	}

	return json.Unmarshal(b, v)
}

func writeOutput(path string, b []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(b)
		return err
	}

	return os.WriteFile(path, b, 0o600)
}

func writeJSON(path string, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	return writeOutput(path, append(b, '\n'))
}

var errPasswordMismatch = errors.New("password mismatch")
