package cmd

import (
	"testing"

	"github.com/gnames/ncbitax/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagOptions(t *testing.T) {
	cmd := getImportCmd()
	err := cmd.ParseFlags([]string{
		"-t", "Bos[Subtree]",
		"-p", "500",
		"-c",
		"-s", "postgres",
		"--namespace", "axeloide",
		"-m", "/tmp/ncbitax.prom",
	})
	require.NoError(t, err)

	c := config.New()
	c.Update(flagOptions(cmd))
	assert.Equal(t, "Bos[Subtree]", c.Import.Term)
	assert.Equal(t, 500, c.Import.PageSize)
	assert.True(t, c.Import.WithCanonical)
	assert.Equal(t, "postgres", c.Store.Type)
	assert.Equal(t, "axeloide", c.NamespacePrefix())
	assert.Equal(t, "/tmp/ncbitax.prom", c.MetricsFile)
	assert.True(t, showProgress(cmd))
}

func TestFlagOptionsUnchanged(t *testing.T) {
	cmd := getLinkOutCmd()
	require.NoError(t, cmd.ParseFlags([]string{"-q"}))

	assert.Empty(t, flagOptions(cmd), "unset flags do not override config")
	assert.False(t, showProgress(cmd))
}
