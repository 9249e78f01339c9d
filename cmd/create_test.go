package cmd

import (
	"context"
	"strings"
	"testing"

	"github.com/gnames/ncbitax/internal/iostore"
	"github.com/gnames/ncbitax/internal/iotesting"
	"github.com/gnames/ncbitax/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCreateCmd(t *testing.T) {
	cmd := getCreateCmd()
	assert.Equal(t, "create", cmd.Use)
	assert.Contains(t, cmd.Short, "schema")
	assert.Contains(t, cmd.Long, "GORM AutoMigrate")
	assert.NotNil(t, cmd.RunE)

	force := cmd.Flags().Lookup("force")
	require.NotNil(t, force)
	assert.Equal(t, "f", force.Shorthand)
	assert.Equal(t, "false", force.DefValue)
	assert.NotNil(t, cmd.Flags().Lookup("store"))
}

func sqliteStore(t *testing.T) store.Store {
	t.Helper()
	ctx := context.Background()
	st, err := iostore.New(ctx, iotesting.GetSQLiteConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestResetStore(t *testing.T) {
	tests := []struct {
		msg     string
		input   string
		force   bool
		proceed bool
		tables  bool
	}{
		{"force", "", true, true, false},
		{"yes", "yes\n", false, true, false},
		{"y without newline", "Y", false, true, false},
		{"no", "no\n", false, false, true},
		{"empty input", "", false, false, true},
	}

	ctx := context.Background()
	for _, v := range tests {
		st := sqliteStore(t)
		require.NoError(t, st.CreateTables(ctx), v.msg)

		proceed, err := resetStore(ctx, st, strings.NewReader(v.input), v.force)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.proceed, proceed, v.msg)

		has, err := st.HasTables(ctx)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.tables, has, v.msg)
	}
}

func TestResetEmptyStore(t *testing.T) {
	st := sqliteStore(t)
	proceed, err := resetStore(context.Background(), st,
		strings.NewReader("no\n"), false)
	require.NoError(t, err)
	assert.True(t, proceed, "nothing to confirm")
}

func TestRunCreate(t *testing.T) {
	cfg = iotesting.GetSQLiteConfig(t)
	ctx := context.Background()

	require.NoError(t, runCreate(ctx, strings.NewReader(""), false))
	require.NoError(t, runCreate(ctx, strings.NewReader(""), true))

	st, err := iostore.New(ctx, cfg)
	require.NoError(t, err)
	defer st.Close()
	has, err := st.HasTables(ctx)
	require.NoError(t, err)
	assert.True(t, has)
}
