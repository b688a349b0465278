package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/notaria-textos/internal/domain"
	"github.com/jhoicas/notaria-textos/internal/domain/entity"
	"github.com/jhoicas/notaria-textos/internal/domain/repository"
)

var _ repository.ProtocoloRepository = (*ProtocoloRepo)(nil)

// ProtocoloRepo implementación de ProtocoloRepository sobre las tablas del formulario UAFE.
type ProtocoloRepo struct {
	q Querier
}

// NewProtocoloRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProtocoloRepository(q Querier) *ProtocoloRepo {
	return &ProtocoloRepo{q: q}
}

// GetByID obtiene el protocolo con sus datos de cuantía y ubicación.
func (r *ProtocoloRepo) GetByID(ctx context.Context, id string) (*entity.Protocolo, error) {
	query := `
		SELECT id, tipo_acto, acto_contrato, fecha, numero_protocolo,
		       valor_contrato, avaluo_municipal, multa,
		       ubicacion_descripcion, bien_inmueble_descripcion, bien_inmueble_ubicacion,
		       ubicacion_parroquia, ubicacion_canton, ubicacion_provincia
		FROM protocolos_uafe WHERE id = $1`
	var (
		p                              entity.Protocolo
		tipoActo, actoContrato, numero *string
		fecha                          *time.Time
		valor, avaluo, multa           decimal.NullDecimal
		ubDesc, bienDesc, bienUbic     *string
		parroquia, canton, provincia   *string
	)
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &tipoActo, &actoContrato, &fecha, &numero,
		&valor, &avaluo, &multa,
		&ubDesc, &bienDesc, &bienUbic,
		&parroquia, &canton, &provincia,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("protocolo %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get protocolo: %w", err)
	}

	p.TipoActo = deref(tipoActo)
	p.ActoContrato = deref(actoContrato)
	p.NumeroProtocolo = deref(numero)
	if fecha != nil {
		p.Fecha = *fecha
	}
	p.ValorContrato = valor.Decimal
	p.AvaluoMunicipal = avaluo.Decimal
	p.Multa = multa.Decimal
	p.UbicacionDescripcion = deref(ubDesc)
	p.BienInmuebleDescripcion = deref(bienDesc)
	p.BienInmuebleUbicacion = deref(bienUbic)
	p.UbicacionParroquia = deref(parroquia)
	p.UbicacionCanton = deref(canton)
	p.UbicacionProvincia = deref(provincia)
	return &p, nil
}

// ListParticipantes lista los participantes del protocolo en su orden, con la persona
// registrada si existe (LEFT JOIN por cédula).
func (r *ProtocoloRepo) ListParticipantes(ctx context.Context, protocoloID string) ([]*entity.Participante, error) {
	query := `
		SELECT pp.id, pp.orden, pp.calidad, pp.persona_cedula, pp.nombre_temporal,
		       pp.comparece_conyuge_junto, pp.es_apoderado, pp.actua_por,
		       pp.mandante_nombre, pp.mandante_cedula, pp.mandante_genero,
		       pr.tipo_persona, pr.datos_persona_natural, pr.datos_persona_juridica
		FROM personas_protocolo pp
		LEFT JOIN personas_registradas pr ON pr.numero_identificacion = pp.persona_cedula
		WHERE pp.protocolo_id = $1
		ORDER BY pp.orden, pp.created_at`
	rows, err := r.q.Query(ctx, query, protocoloID)
	if err != nil {
		return nil, fmt.Errorf("list participantes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Participante
	for rows.Next() {
		var (
			p                                entity.Participante
			cedula, nombreTemporal, actuaPor *string
			mNombre, mCedula, mGenero        *string
			tipoPersona                      *string
			datosNatural, datosJuridica      []byte
		)
		if err := rows.Scan(
			&p.ID, &p.Orden, &p.Calidad, &cedula, &nombreTemporal,
			&p.CompareceConyugeJunto, &p.EsApoderado, &actuaPor,
			&mNombre, &mCedula, &mGenero,
			&tipoPersona, &datosNatural, &datosJuridica,
		); err != nil {
			return nil, fmt.Errorf("scan participante: %w", err)
		}
		p.Cedula = deref(cedula)
		p.NombreTemporal = deref(nombreTemporal)
		p.ActuaPor = entity.ActuaPor(deref(actuaPor))
		if deref(mNombre) != "" || deref(mCedula) != "" {
			p.Mandante = &entity.Mandante{Nombre: deref(mNombre), Cedula: deref(mCedula), Genero: deref(mGenero)}
		}

		persona, err := decodePersona(deref(tipoPersona), p.Cedula, datosNatural, datosJuridica)
		if err != nil {
			return nil, fmt.Errorf("participante %s: %w", p.ID, err)
		}
		p.Persona = persona
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows participantes: %w", err)
	}
	return list, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
