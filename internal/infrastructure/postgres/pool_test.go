package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/notaria-textos/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Configuración del pool
// ──────────────────────────────────────────────────────────────────────────────

func TestNewPoolConfig(t *testing.T) {
	cfg := config.DBConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "notaria", SSLMode: "disable", MaxConns: 6}

	pc, err := newPoolConfig(cfg)

	require.NoError(t, err)
	assert.Equal(t, int32(6), pc.MaxConns)
	assert.Equal(t, int32(0), pc.MinConns)
	assert.Equal(t, "db", pc.ConnConfig.Host)
	assert.Equal(t, "notaria", pc.ConnConfig.Database)
	assert.Equal(t, "on", pc.ConnConfig.RuntimeParams["default_transaction_read_only"])
	assert.NotNil(t, pc.AfterConnect)
}

func TestNewPoolConfig_DatabaseURL(t *testing.T) {
	pc, err := newPoolConfig(config.DBConfig{DatabaseURL: "postgres://u:p@10.0.0.5:6543/otra?sslmode=disable"})

	require.NoError(t, err)
	assert.Equal(t, "10.0.0.5", pc.ConnConfig.Host)
	assert.Equal(t, uint16(6543), pc.ConnConfig.Port)
	assert.Greater(t, pc.MaxConns, int32(0), "sin MaxConns queda el valor de pgx")
}

func TestNewPoolConfig_DSNInvalido(t *testing.T) {
	_, err := newPoolConfig(config.DBConfig{DatabaseURL: "postgres://u:p@host:noesnumero/db"})

	assert.ErrorContains(t, err, "parse DSN")
}
