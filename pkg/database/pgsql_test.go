package database_test

import (
	"context"
	"testing"

	"github.com/nitelabs/venue_crm_app/pkg/database"
	"github.com/stretchr/testify/assert"
)

func TestConnect_EmptyURL(t *testing.T) {
	pool, err := database.Connect(context.Background(), database.PoolConfig{})

	assert.Nil(t, pool)
	assert.ErrorContains(t, err, "database URL cannot be empty")
}

func TestConnect_MalformedURL(t *testing.T) {
	pool, err := database.Connect(context.Background(), database.PoolConfig{URL: "postgres://u:p@host:notaport/db"})

	assert.Nil(t, pool)
	assert.ErrorContains(t, err, "failed to parse database URL")
}
