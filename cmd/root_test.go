package cmd

import (
	"bytes"
	"testing"

	"github.com/gnames/ncbitax/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestGetRootCmd(t *testing.T) {
	cmd := getRootCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "ncbitax", cmd.Use)

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"create", "import", "linkout"})
}

func TestRootVersion(t *testing.T) {
	for _, flag := range []string{"--version", "-V"} {
		cmd := getRootCmd()
		cmd.Version = "version: v1.2.3\nbuild:   abc123"

		buf := new(bytes.Buffer)
		cmd.SetOut(buf)
		cmd.SetArgs([]string{flag})

		require.NoError(t, cmd.Execute(), flag)
		assert.Contains(t, buf.String(), "v1.2.3", flag)
		assert.Contains(t, buf.String(), "abc123", flag)
	}
}

func TestRootHelp(t *testing.T) {
	cmd := getRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())
	help := buf.String()
	assert.Contains(t, help, "NCBI Taxonomy")
	assert.Contains(t, help, "tag store")
	assert.Contains(t, help, "import")
}

func TestConfigYAML(t *testing.T) {
	c := config.New()
	c.Update([]config.Option{
		config.OptStorePassword("secret"),
		config.OptEutilsAPIKey("key"),
		config.OptStoreNamespace("axeloide"),
	})

	out, err := configYAML(c)
	require.NoError(t, err)
	assert.NotContains(t, out, "secret")
	assert.NotContains(t, out, "key\n")
	assert.Equal(t, "secret", c.Store.Password, "original is not changed")

	var back config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &back))
	assert.Equal(t, "axeloide", back.Store.Namespace)
	assert.Equal(t, "*****", back.Store.Password)
}
