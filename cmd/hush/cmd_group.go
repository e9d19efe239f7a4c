package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/codahale/hush"
	"github.com/codahale/hush/store"
)

// groupKeys is the file written by group-create: one wrapped copy of the group key per member,
// keyed by the fingerprint of the member's public key.
type groupKeys struct {
	GroupID   string                            `json:"groupId"`
	Envelopes map[string]*hush.GroupKeyEnvelope `json:"envelopes"`
}

type groupCreateCmd struct {
	GroupID string   `arg:"" help:"The group's ID."`
	Output  string   `arg:"" type:"path" help:"The output path for the wrapped group keys."`
	Members []string `arg:"" help:"The members' public keys, or the paths to them."`
}

func (cmd *groupCreateCmd) Run(_ *Globals, log *slog.Logger) error {
	members, err := decodePublicKeys(cmd.Members)
	if err != nil {
		return err
	}

	byFingerprint := make(map[string]*hush.PublicKey, len(members))
	for _, pk := range members {
		byFingerprint[pk.Fingerprint()] = pk
	}

	gk, err := hush.NewGroupKey()
	if err != nil {
		return err
	}

	envelopes, err := gk.WrapForMembers(byFingerprint)
	if err != nil {
		return err
	}

	log.Info("created group key", "group", cmd.GroupID, "members", len(envelopes))

	return writeJSON(cmd.Output, &groupKeys{GroupID: cmd.GroupID, Envelopes: envelopes})
}

type groupUnwrapCmd struct {
	Identity string `arg:"" type:"existingfile" help:"The path to the identity."`
	Keys     string `arg:"" default:"-" help:"The path to the wrapped group keys."`
}

func (cmd *groupUnwrapCmd) Run(g *Globals, log *slog.Logger) error {
	sk, err := unlock(cmd.Identity, log)
	if err != nil {
		return err
	}

	var keys groupKeys
	if err := readJSON(cmd.Keys, &keys); err != nil {
		return err
	}

	env, ok := keys.Envelopes[sk.PublicKey().Fingerprint()]
	if !ok {
		return fmt.Errorf("%s is not a member of %q", sk.PublicKey().Fingerprint(), keys.GroupID)
	}

	gk, err := hush.UnwrapGroupKey(env, sk)
	if err != nil {
		return err
	}

	cache, closer, err := openStore(g, log)
	if err != nil {
		return err
	}

	defer func() { _ = closer.Close() }()

	if err := cache.Put(keys.GroupID, gk); err != nil {
		return err
	}

	log.Info("cached group key", "group", keys.GroupID)

	return nil
}

type groupEncryptCmd struct {
	GroupID   string `arg:"" help:"The group's ID."`
	Plaintext string `arg:"" default:"-" help:"The path to the plaintext."`
	Message   string `arg:"" type:"path" default:"-" help:"The output path for the encrypted message."`
}

func (cmd *groupEncryptCmd) Run(g *Globals, log *slog.Logger) error {
	gk, err := cachedGroupKey(g, log, cmd.GroupID)
	if err != nil {
		return err
	}

	plaintext, err := readInput(cmd.Plaintext)
	if err != nil {
		return err
	}

	env, err := gk.Encrypt(plaintext)
	if err != nil {
		return err
	}

	return writeJSON(cmd.Message, env)
}

type groupDecryptCmd struct {
	GroupID   string `arg:"" help:"The group's ID."`
	Message   string `arg:"" default:"-" help:"The path to the encrypted message."`
	Plaintext string `arg:"" type:"path" default:"-" help:"The output path for the plaintext."`
}

func (cmd *groupDecryptCmd) Run(g *Globals, log *slog.Logger) error {
	gk, err := cachedGroupKey(g, log, cmd.GroupID)
	if err != nil {
		return err
	}

	var env hush.Envelope
	if err := readJSON(cmd.Message, &env); err != nil {
		return err
	}

	plaintext, err := gk.Decrypt(&env)
	if err != nil {
		return err
	}

	return writeOutput(cmd.Plaintext, plaintext)
}

func cachedGroupKey(g *Globals, log *slog.Logger, groupID string) (*hush.GroupKey, error) {
	cache, closer, err := openStore(g, log)
	if err != nil {
		return nil, err
	}

	defer func() { _ = closer.Close() }()

	gk, err := cache.Get(groupID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("no key for group %q; run group-unwrap first", groupID)
	}

	return gk, err
}
