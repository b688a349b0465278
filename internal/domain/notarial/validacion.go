package notarial

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jhoicas/notaria-textos/internal/domain/entity"
)

// advertencias datos faltantes o inconsistentes. No impiden generar el texto:
// lo que falta aparece como marcador pendiente.
func (g *Generator) advertencias(protocolo *entity.Protocolo, participantes []*entity.Participante) []string {
	var out []string
	for i, p := range participantes {
		out = append(out, advertenciasParticipante(i+1, p)...)
	}
	for _, gr := range GroupParties(participantes) {
		if gr.Tipo != GrupoPareja {
			continue
		}
		e1 := estadoCivilDe(gr.Miembros[0])
		e2 := estadoCivilDe(gr.Miembros[1])
		if e1 != "" && e2 != "" && e1 != e2 {
			out = append(out, fmt.Sprintf("cónyuges con estado civil distinto (%s / %s); se usa %s", e1, e2, e1))
		}
	}

	montos := []struct {
		nombre   string
		negativo bool
	}{
		{"valor del contrato", protocolo.ValorContrato.IsNegative()},
		{"avalúo municipal", protocolo.AvaluoMunicipal.IsNegative()},
		{"multa", protocolo.Multa.IsNegative()},
	}
	for _, m := range montos {
		if m.negativo {
			out = append(out, m.nombre+" negativo")
		}
	}
	return out
}

func advertenciasParticipante(n int, p *entity.Participante) []string {
	var faltantes []string
	switch per := p.Persona.(type) {
	case *entity.PersonaNatural:
		if per == nil {
			return []string{fmt.Sprintf("participante %d: persona no registrada", n)}
		}
		dp := per.DatosPersonales
		faltantes = camposVacios(map[string]string{
			"nombres":         dp.Nombres,
			"apellidos":       dp.Apellidos,
			"genero":          dp.Genero,
			"estadoCivil":     dp.EstadoCivil,
			"profesion":       per.Profesion,
			"callePrincipal":  per.Domicilio.CallePrincipal,
			"telefono":        per.Contacto.Celular + per.Contacto.Telefono,
			"numeroIdentidad": per.NumeroIdentificacion + p.Cedula,
		})
		// quien comparece junto a su cónyuge no necesita los datos del cónyuge en su ficha
		if !p.CompareceConyugeJunto && (dp.EstadoCivil == entity.EstadoCivilCasado || dp.EstadoCivil == entity.EstadoCivilUnionLibre) {
			if per.Conyuge == nil || strings.TrimSpace(per.Conyuge.Nombres) == "" {
				faltantes = append(faltantes, "conyuge")
			}
		}
	case *entity.PersonaJuridica:
		if per == nil {
			return []string{fmt.Sprintf("participante %d: persona no registrada", n)}
		}
		faltantes = camposVacios(map[string]string{
			"razonSocial":        per.RazonSocial,
			"ruc":                per.NumeroIdentificacion + p.Cedula,
			"representanteLegal": per.RepresentanteLegal.Nombres,
			"direccion":          per.Direccion,
			"telefono":           per.Celular + per.Telefono,
		})
	default:
		return []string{fmt.Sprintf("participante %d: persona no registrada", n)}
	}

	if p.IsAttorney() && (p.Mandante == nil || strings.TrimSpace(p.Mandante.Nombre) == "") {
		faltantes = append(faltantes, "mandante")
	}
	if len(faltantes) == 0 {
		return nil
	}
	return []string{fmt.Sprintf("participante %d: faltan %s", n, strings.Join(faltantes, ", "))}
}

// camposVacios nombres de los campos vacíos, en orden alfabético para una salida estable.
func camposVacios(campos map[string]string) []string {
	var vacios []string
	for nombre, valor := range campos {
		if strings.TrimSpace(valor) == "" {
			vacios = append(vacios, nombre)
		}
	}
	slices.Sort(vacios)
	return vacios
}

func estadoCivilDe(p *entity.Participante) string {
	if per, ok := p.Persona.(*entity.PersonaNatural); ok && per != nil {
		return strings.TrimSpace(per.DatosPersonales.EstadoCivil)
	}
	return ""
}
