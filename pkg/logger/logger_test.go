package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/notaria-textos/pkg/logger"
)

func TestNew_ProduccionEscribeJSON(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "info", Out: &buf})

	l.Debug().Msg("oculto")
	l.Info().Str("protocolo_id", "p-1").Msg("comparecencia generada")

	var entrada map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entrada), "una sola línea JSON: el debug queda filtrado")
	assert.Equal(t, "info", entrada["level"])
	assert.Equal(t, "p-1", entrada["protocolo_id"])
	assert.Equal(t, "comparecencia generada", entrada["message"])
}

func TestNop_NoEscribe(t *testing.T) {
	l := logger.Nop()
	assert.NotPanics(t, func() { l.Error().Msg("nada") })
}
