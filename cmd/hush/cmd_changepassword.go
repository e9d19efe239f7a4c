package main

import (
	"log/slog"

	"github.com/awnumar/memguard"
	"github.com/codahale/hush"
)

type changePasswordCmd struct {
	Identity string `arg:"" type:"existingfile" help:"The path to the identity."`
}

func (cmd *changePasswordCmd) Run(_ *Globals, log *slog.Logger) error {
	sk, err := unlock(cmd.Identity, log)
	if err != nil {
		return err
	}

	pwd, err := askNewPassword()
	if err != nil {
		return err
	}

	defer memguard.WipeBytes(pwd)

	record, err := hush.ProtectPrivateKey(sk, pwd)
	if err != nil {
		return err
	}

	if err := writeJSON(cmd.Identity, record); err != nil {
		return err
	}

	log.Info("changed password", "fingerprint", sk.PublicKey().Fingerprint())

	return nil
}
