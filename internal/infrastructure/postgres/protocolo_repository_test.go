package postgres

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/notaria-textos/internal/domain"
	"github.com/jhoicas/notaria-textos/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Querier en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeQuerier struct {
	fila     []any
	filas    [][]any
	err      error
	lastArgs []any
}

func (f *fakeQuerier) Query(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
	f.lastArgs = args
	if f.err != nil {
		return nil, f.err
	}
	return &fakeRows{filas: f.filas, i: -1}, nil
}

func (f *fakeQuerier) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	f.lastArgs = args
	return fakeRow{valores: f.fila, err: f.err}
}

type fakeRow struct {
	valores []any
	err     error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return asignar(r.valores, dest)
}

type fakeRows struct {
	pgx.Rows
	filas [][]any
	i     int
}

func (r *fakeRows) Next() bool             { r.i++; return r.i < len(r.filas) }
func (r *fakeRows) Scan(dest ...any) error { return asignar(r.filas[r.i], dest) }
func (r *fakeRows) Err() error             { return nil }
func (r *fakeRows) Close()                 {}

func asignar(valores []any, dest []any) error {
	if len(valores) != len(dest) {
		return errors.New("cantidad de columnas distinta")
	}
	for i, v := range valores {
		d := reflect.ValueOf(dest[i]).Elem()
		if v == nil {
			d.Set(reflect.Zero(d.Type()))
			continue
		}
		d.Set(reflect.ValueOf(v))
	}
	return nil
}

func ptr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// GetByID
// ──────────────────────────────────────────────────────────────────────────────

func TestProtocoloRepo_GetByID(t *testing.T) {
	fecha := time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC)
	q := &fakeQuerier{fila: []any{
		"p-1", ptr("COMPRAVENTA"), nil, &fecha, ptr("2026-1701-018-P00045"),
		decimal.NullDecimal{Decimal: decimal.RequireFromString("85000"), Valid: true},
		decimal.NullDecimal{}, decimal.NullDecimal{},
		ptr("LOTE 5"), nil, nil,
		ptr("CONOCOTO"), ptr("QUITO"), ptr("PICHINCHA"),
	}}

	p, err := NewProtocoloRepository(q).GetByID(context.Background(), "p-1")

	require.NoError(t, err)
	assert.Equal(t, []any{"p-1"}, q.lastArgs)
	assert.Equal(t, "COMPRAVENTA", p.TipoActo)
	assert.Equal(t, fecha, p.Fecha)
	assert.True(t, p.ValorContrato.Equal(decimal.RequireFromString("85000")))
	assert.True(t, p.AvaluoMunicipal.IsZero(), "NULL se lee como cero")
	assert.Equal(t, "CONOCOTO", p.UbicacionParroquia)
	assert.Empty(t, p.BienInmuebleDescripcion)
}

func TestProtocoloRepo_GetByID_NoExiste(t *testing.T) {
	q := &fakeQuerier{err: pgx.ErrNoRows}

	_, err := NewProtocoloRepository(q).GetByID(context.Background(), "nada")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListParticipantes
// ──────────────────────────────────────────────────────────────────────────────

func TestProtocoloRepo_ListParticipantes(t *testing.T) {
	natural := []byte(`{
		"datosPersonales": {"nombres": "Rosa", "apellidos": "Vega", "genero": "F", "estadoCivil": "CASADO"},
		"contacto": {"celular": "0991234567", "email": "rosa@example.com"},
		"direccion": {"callePrincipal": "av. Amazonas", "numero": "N70-294"},
		"informacionLaboral": {"profesionOcupacion": "Abogada"},
		"conyuge": {"nombres": "Luis", "apellidos": "Mora", "numeroIdentificacion": "1722222222"}
	}`)
	q := &fakeQuerier{filas: [][]any{
		{"pp-1", 1, "VENDEDOR", ptr("1733333333"), nil, true, false, ptr("PROPIOS_DERECHOS"), nil, nil, nil, ptr("NATURAL"), natural, nil},
		{"pp-2", 2, "COMPRADOR", ptr("1799999999"), ptr("Ana Torres"), false, true, ptr("REPRESENTANDO_A"),
			ptr("Jorge Salas"), ptr("1766666666"), ptr("M"), nil, nil, nil},
	}}

	list, err := NewProtocoloRepository(q).ListParticipantes(context.Background(), "p-1")

	require.NoError(t, err)
	require.Len(t, list, 2)

	rosa := list[0]
	assert.True(t, rosa.CompareceConyugeJunto)
	pn, ok := rosa.Persona.(*entity.PersonaNatural)
	require.True(t, ok, "persona natural esperada")
	assert.Equal(t, "1733333333", pn.NumeroIdentificacion)
	assert.Equal(t, "Abogada", pn.Profesion)
	assert.Equal(t, "av. Amazonas", pn.Domicilio.CallePrincipal)
	require.NotNil(t, pn.Conyuge)
	assert.Equal(t, "Luis", pn.Conyuge.Nombres)

	ana := list[1]
	assert.Nil(t, ana.Persona, "sin registro la persona queda nil")
	assert.Equal(t, "Ana Torres", ana.NombreTemporal)
	assert.True(t, ana.IsAttorney())
	require.NotNil(t, ana.Mandante)
	assert.Equal(t, "Jorge Salas", ana.Mandante.Nombre)
}

func TestProtocoloRepo_ListParticipantes_ErrorDeConsulta(t *testing.T) {
	q := &fakeQuerier{err: errors.New("conexión cerrada")}

	_, err := NewProtocoloRepository(q).ListParticipantes(context.Background(), "p-1")

	assert.ErrorContains(t, err, "conexión cerrada")
}

// ──────────────────────────────────────────────────────────────────────────────
// JSONB de personas
// ──────────────────────────────────────────────────────────────────────────────

func TestDecodePersona_Juridica(t *testing.T) {
	raw := []byte(`{
		"compania": {"razonSocial": "Inmobiliaria Andina S.A.", "direccion": "av. Shyris", "telefonoCompania": "022345678"},
		"representanteLegal": {"nombres": "Diego", "apellidos": "León", "genero": "M", "numeroIdentificacion": "1700000001"}
	}`)

	p, err := decodePersona(entity.TipoPersonaJuridica, "1790012345001", nil, raw)

	require.NoError(t, err)
	pj, ok := p.(*entity.PersonaJuridica)
	require.True(t, ok)
	assert.Equal(t, "1790012345001", pj.NumeroIdentificacion)
	assert.Equal(t, "Inmobiliaria Andina S.A.", pj.RazonSocial)
	assert.Equal(t, "022345678", pj.Telefono)
	assert.Equal(t, "Diego", pj.RepresentanteLegal.Nombres)
	assert.Equal(t, "1700000001", pj.RepresentanteLegal.NumeroIdentificacion)
}

func TestDecodePersona_Errores(t *testing.T) {
	_, err := decodePersona("EXTRANJERA", "1", nil, nil)
	assert.Error(t, err)

	_, err = decodePersona(entity.TipoPersonaNatural, "1", []byte(`{no es json`), nil)
	assert.Error(t, err)

	p, err := decodePersona(entity.TipoPersonaNatural, "1", nil, nil)
	require.NoError(t, err, "registro sin datos: persona vacía, no error")
	assert.Equal(t, "1", p.Identificacion())
}
