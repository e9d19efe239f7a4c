package main

import (
	"log/slog"

	"github.com/codahale/hush"
)

type encryptCmd struct {
	Identity  string `arg:"" type:"existingfile" help:"The path to the sender's identity."`
	Recipient string `arg:"" help:"The recipient's public key, or the path to it."`
	Plaintext string `arg:"" default:"-" help:"The path to the plaintext."`
	Message   string `arg:"" type:"path" default:"-" help:"The output path for the encrypted message."`
}

func (cmd *encryptCmd) Run(_ *Globals, log *slog.Logger) error {
	sk, err := unlock(cmd.Identity, log)
	if err != nil {
		return err
	}

	recipient, err := decodePublicKey(cmd.Recipient)
	if err != nil {
		return err
	}

	plaintext, err := readInput(cmd.Plaintext)
	if err != nil {
		return err
	}

	msg, err := hush.EncryptDirect(plaintext, recipient, sk.PublicKey())
	if err != nil {
		return err
	}

	log.Debug("encrypted message", "recipient", recipient.Fingerprint(), "size", len(plaintext))

	return writeJSON(cmd.Message, msg)
}
