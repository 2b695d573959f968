package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "migrate", cmd.Use)

	up, _, err := cmd.Find([]string{"up"})
	assert.NoError(t, err)
	assert.Equal(t, "up", up.Use)
	assert.NotNil(t, up.Flags().Lookup("dsn"))
}

func TestUpCmd_RequiresConnectionString(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_NAME", "")
	t.Chdir(t.TempDir()) // keep a developer .env out of the test

	cmd := newRootCmd()
	cmd.SetArgs([]string{"up"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	assert.Error(t, cmd.Execute())
}
