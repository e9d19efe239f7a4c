package main

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/codahale/gubbins/assert"
)

func TestYAMLConfig(t *testing.T) {
	t.Parallel()

	var cli struct {
		Store   string
		Verbose bool
		Group   string `name:"group-id"`
	}

	r, err := yamlConfig(strings.NewReader("store: /tmp/groups.db\nverbose: true\ngroup_id: friends\n"))
	if err != nil {
		t.Fatal(err)
	}

	parser, err := kong.New(&cli, kong.Resolvers(r))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := parser.Parse(nil); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "store", "/tmp/groups.db", cli.Store)
	assert.Equal(t, "verbose", true, cli.Verbose)
	assert.Equal(t, "group", "friends", cli.Group)
}

func TestYAMLConfigEmpty(t *testing.T) {
	t.Parallel()

	if _, err := yamlConfig(strings.NewReader("")); err != nil {
		t.Fatal(err)
	}
}
