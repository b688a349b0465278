package documento_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/notaria-textos/internal/application/documento"
	"github.com/jhoicas/notaria-textos/internal/domain"
	"github.com/jhoicas/notaria-textos/internal/domain/entity"
	"github.com/jhoicas/notaria-textos/internal/domain/notarial"
	"github.com/jhoicas/notaria-textos/internal/infrastructure/fixture"
	"github.com/jhoicas/notaria-textos/internal/infrastructure/metrics"
	"github.com/jhoicas/notaria-textos/pkg/logger"
)

const fixturePath = "../../infrastructure/fixture/testdata/protocolos.yaml"

func nuevoUseCase(t *testing.T) (*documento.UseCase, *metrics.Metrics, *bytes.Buffer) {
	t.Helper()
	repo, err := fixture.Load(fixturePath)
	require.NoError(t, err)
	m := metrics.New(prometheus.NewRegistry())
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Out: &buf})
	return documento.NewUseCase(repo, notarial.NewGenerator(notarial.DefaultOptions()), log, m), m, &buf
}

// ──────────────────────────────────────────────────────────────────────────────
// Desde el repositorio
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerarComparecencia_Exito(t *testing.T) {
	uc, m, buf := nuevoUseCase(t)

	out, err := uc.GenerarComparecencia(context.Background(), "2026-0114-001", true)

	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, "2026-0114-001", out.ProtocoloID)
	assert.NotEmpty(t, out.RequestID)
	require.NotNil(t, out.Comparecencia)
	require.NotNil(t, out.ComparecenciaHTML)
	assert.Nil(t, out.Error)
	assert.True(t, strings.HasPrefix(*out.Comparecencia, "En la ciudad de San Francisco de Quito"))
	assert.Contains(t, *out.ComparecenciaHTML, "<strong>")
	assert.NotContains(t, *out.Comparecencia, "<strong>")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Generated.WithLabelValues("comparecencia", "ok")))
	assert.Contains(t, buf.String(), `"request_id":"`+out.RequestID+`"`)
	assert.Contains(t, buf.String(), `"documento":"comparecencia"`)
}

func TestGenerarComparecencia_SinHTML(t *testing.T) {
	uc, _, _ := nuevoUseCase(t)

	out, err := uc.GenerarComparecencia(context.Background(), "2026-0114-001", false)

	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Nil(t, out.ComparecenciaHTML)
}

func TestGenerarComparecencia_ActoExcluido(t *testing.T) {
	uc, m, buf := nuevoUseCase(t)

	out, err := uc.GenerarComparecencia(context.Background(), "2026-0115-002", false)

	require.NoError(t, err, "un fallo de generación no es error del caso de uso")
	assert.False(t, out.Success)
	assert.Nil(t, out.Comparecencia)
	require.NotNil(t, out.Error)
	assert.Contains(t, *out.Error, "no requiere comparecencia")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Generated.WithLabelValues("comparecencia", "fallo")))
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestGenerarEncabezado_Exito(t *testing.T) {
	uc, m, _ := nuevoUseCase(t)

	out, err := uc.GenerarEncabezado(context.Background(), "2026-0114-001")

	require.NoError(t, err)
	assert.True(t, out.Success)
	require.NotNil(t, out.Encabezado)
	assert.Contains(t, *out.Encabezado, "OTORGANTES:")
	assert.Contains(t, *out.Encabezado, "CUANTÍA: USD $ 85,000.00")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Generated.WithLabelValues("encabezado", "ok")))
}

func TestGenerarEncabezado_NoExiste(t *testing.T) {
	uc, m, _ := nuevoUseCase(t)

	out, err := uc.GenerarEncabezado(context.Background(), "no-existe")

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Generated.WithLabelValues("encabezado", "fallo")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Errores del repositorio
// ──────────────────────────────────────────────────────────────────────────────

type repoRoto struct{ err error }

func (r repoRoto) GetByID(context.Context, string) (*entity.Protocolo, error) {
	return &entity.Protocolo{ID: "x"}, nil
}

func (r repoRoto) ListParticipantes(context.Context, string) ([]*entity.Participante, error) {
	return nil, r.err
}

func TestGenerarComparecencia_ErrorListandoParticipantes(t *testing.T) {
	boom := errors.New("conexión perdida")
	uc := documento.NewUseCase(repoRoto{err: boom}, nil, nil, nil)

	_, err := uc.GenerarComparecencia(context.Background(), "x", false)

	assert.ErrorIs(t, err, boom)
}

// ──────────────────────────────────────────────────────────────────────────────
// Desde datos en memoria
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerarDesdeDatos(t *testing.T) {
	uc := documento.NewUseCase(nil, nil, nil, metrics.New(prometheus.NewRegistry()))
	protocolo := &entity.Protocolo{
		ID:            "mem-1",
		TipoActo:      "DONACION",
		Fecha:         time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local),
		ValorContrato: decimal.NewFromInt(1000),
	}
	participantes := []*entity.Participante{{
		Orden:          1,
		Calidad:        "DONANTE",
		Cedula:         "1712345678",
		NombreTemporal: "Marta Gil",
	}}

	out := uc.GenerarDesdeDatos(protocolo, participantes, false)

	assert.Equal(t, out.Encabezado.RequestID, out.Comparecencia.RequestID)
	assert.Equal(t, "mem-1", out.Encabezado.ProtocoloID)
	assert.True(t, out.Encabezado.Success)
	assert.True(t, out.Comparecencia.Success)
	require.NotNil(t, out.Comparecencia.Comparecencia)
	assert.Contains(t, *out.Comparecencia.Comparecencia, "MARTA GIL")
	assert.NotEmpty(t, out.Comparecencia.Warnings, "persona no registrada")
}

func TestGenerarDesdeDatos_ProtocoloNulo(t *testing.T) {
	uc := documento.NewUseCase(nil, nil, nil, nil)

	out := uc.GenerarDesdeDatos(nil, nil, false)

	assert.False(t, out.Encabezado.Success)
	assert.False(t, out.Comparecencia.Success)
	require.NotNil(t, out.Encabezado.Error)
	assert.Empty(t, out.Encabezado.ProtocoloID)
}
