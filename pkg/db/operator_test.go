package db_test

import (
	"testing"

	"github.com/gnames/ncbitax/internal/iodb"
	"github.com/gnames/ncbitax/pkg/db"
	"github.com/stretchr/testify/assert"
)

// TestNewPgxOperator verifies a new operator is not connected.
func TestNewPgxOperator(t *testing.T) {
	var op db.Operator = iodb.NewPgxOperator()
	assert.Nil(t, op.Pool())
	assert.NoError(t, op.Close())
}
