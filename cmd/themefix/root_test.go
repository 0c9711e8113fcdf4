package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "themefix", cmd.Use)

	// Shared flags registered on the root
	for _, name := range []string{"config", "root", "debug", "dry-run"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "missing flag %s", name)
	}

	// Subcommands present
	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "fix")
	assert.Contains(t, names, "status")
}
