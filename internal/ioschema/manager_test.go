package ioschema

import (
	"context"
	"testing"

	"github.com/gnames/ncbitax/internal/iodb"
	"github.com/gnames/ncbitax/internal/iotesting"
	"github.com/gnames/ncbitax/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollationSQL(t *testing.T) {
	assert.Equal(t,
		`ALTER TABLE tags ALTER COLUMN path TYPE TEXT COLLATE "C"`,
		collationSQL("tags", "path"))
}

func TestManagerNotConnected(t *testing.T) {
	mgr := NewManager(iodb.NewPgxOperator())
	ctx := context.Background()

	for _, err := range []error{mgr.Create(ctx), mgr.Migrate(ctx)} {
		require.Error(t, err)
		assert.Equal(t, NotConnectedError().Error(), err.Error())
	}
}

func TestManagerCreate(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	op := iodb.NewPgxOperator()
	require.NoError(t, op.Connect(ctx, iotesting.GetTestStoreConfig()))
	defer op.Close()
	require.NoError(t, op.DropTables(ctx, schema.TableNames()...))

	mgr := NewManager(op)
	require.NoError(t, mgr.Create(ctx))
	require.NoError(t, mgr.Migrate(ctx), "migrate is idempotent")

	found, err := op.ExistingTables(ctx, schema.TableNames()...)
	require.NoError(t, err)
	assert.Equal(t, schema.TableNames(), found)

	var collation string
	err = op.Pool().QueryRow(ctx, `
		SELECT collation_name FROM information_schema.columns
		WHERE table_name = 'tags' AND column_name = 'path'`).Scan(&collation)
	require.NoError(t, err)
	assert.Equal(t, "C", collation)
}
