package main

import (
	"log/slog"

	"github.com/codahale/hush"
)

type decryptCmd struct {
	Identity  string `arg:"" type:"existingfile" help:"The path to the identity."`
	Message   string `arg:"" default:"-" help:"The path to the encrypted message."`
	Plaintext string `arg:"" type:"path" default:"-" help:"The output path for the plaintext."`

	Sent bool `help:"Decrypt the sender's copy of a message you sent."`
}

func (cmd *decryptCmd) Run(_ *Globals, log *slog.Logger) error {
	sk, err := unlock(cmd.Identity, log)
	if err != nil {
		return err
	}

	var msg hush.DirectMessage
	if err := readJSON(cmd.Message, &msg); err != nil {
		return err
	}

	decrypt := hush.DecryptDirect
	if cmd.Sent {
		decrypt = hush.DecryptSent
	}

	plaintext, err := decrypt(&msg, sk)
	if err != nil {
		return err
	}

	return writeOutput(cmd.Plaintext, plaintext)
}
