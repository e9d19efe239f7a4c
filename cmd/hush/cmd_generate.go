package main

import (
	"log/slog"

	"github.com/awnumar/memguard"
	"github.com/codahale/hush"
)

type generateCmd struct {
	Identity  string `arg:"" type:"path" help:"The output path for the password-protected identity."`
	PublicKey string `arg:"" type:"path" help:"The output path for the public key."`
}

func (cmd *generateCmd) Run(_ *Globals, log *slog.Logger) error {
	pwd, err := askNewPassword()
	if err != nil {
		return err
	}

	defer memguard.WipeBytes(pwd)

	sk, err := hush.NewPrivateKey()
	if err != nil {
		return err
	}

	record, err := hush.ProtectPrivateKey(sk, pwd)
	if err != nil {
		return err
	}

	if err := writeJSON(cmd.Identity, record); err != nil {
		return err
	}

	if err := writeOutput(cmd.PublicKey, []byte(sk.PublicKey().String()+"\n")); err != nil {
		return err
	}

	log.Info("generated identity", "fingerprint", sk.PublicKey().Fingerprint())

	return nil
}
