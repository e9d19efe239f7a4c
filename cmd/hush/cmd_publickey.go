package main

import (
	"log/slog"
)

type publicKeyCmd struct {
	Identity string `arg:"" type:"existingfile" help:"The path to the identity."`
	Output   string `arg:"" type:"path" default:"-" help:"The output path for the public key."`
}

func (cmd *publicKeyCmd) Run(_ *Globals, log *slog.Logger) error {
	sk, err := unlock(cmd.Identity, log)
	if err != nil {
		return err
	}

	return writeOutput(cmd.Output, []byte(sk.PublicKey().String()+"\n"))
}

type fingerprintCmd struct {
	PublicKey string `arg:"" help:"The public key, or the path to it."`
}

func (cmd *fingerprintCmd) Run(_ *Globals, _ *slog.Logger) error {
	pk, err := decodePublicKey(cmd.PublicKey)
	if err != nil {
		return err
	}

	return writeOutput("-", []byte(pk.Fingerprint()+"\n"))
}
