package notarial

import (
	"cmp"
	"slices"
	"strings"

	"github.com/jhoicas/notaria-textos/internal/domain/entity"
)

// TipoGrupo forma en que comparece un grupo.
type TipoGrupo string

const (
	GrupoIndividual TipoGrupo = "INDIVIDUAL"
	GrupoPareja     TipoGrupo = "PAREJA_CONYUGE"
	GrupoApoderado  TipoGrupo = "APODERADO"
)

// Grupo comparecientes que se redactan juntos.
type Grupo struct {
	Tipo     TipoGrupo
	Miembros []*entity.Participante
	Calidad  string
}

// GroupParties arma los grupos de comparecencia:
//   - dos participantes con la misma calidad y CompareceConyugeJunto forman una pareja (1:1);
//   - un apoderado forma su propio grupo;
//   - el resto, incluido un cónyuge marcado sin pareja disponible, comparece individualmente.
//
// Los grupos salen ordenados por prioridad de calidad (quien transfiere primero),
// luego por Orden y por código de calidad; el orden de entrada se conserva en empates.
// Un participante repetido (mismo ID) se toma una sola vez.
func GroupParties(participantes []*entity.Participante) []Grupo {
	ordenados := sinNulos(participantes)
	slices.SortStableFunc(ordenados, func(a, b *entity.Participante) int {
		return cmp.Or(
			cmp.Compare(prioridad(a.Calidad), prioridad(b.Calidad)),
			cmp.Compare(a.Orden, b.Orden),
			strings.Compare(a.Calidad, b.Calidad),
		)
	})

	procesados := make([]bool, len(ordenados))
	grupos := make([]Grupo, 0, len(ordenados))
	for i, p := range ordenados {
		if procesados[i] {
			continue
		}
		procesados[i] = true

		if p.CompareceConyugeJunto {
			if j := buscarConyuge(ordenados, procesados, p); j >= 0 {
				procesados[j] = true
				grupos = append(grupos, Grupo{Tipo: GrupoPareja, Miembros: []*entity.Participante{p, ordenados[j]}, Calidad: p.Calidad})
				continue
			}
		}
		if p.IsAttorney() {
			grupos = append(grupos, Grupo{Tipo: GrupoApoderado, Miembros: []*entity.Participante{p}, Calidad: p.Calidad})
			continue
		}
		grupos = append(grupos, Grupo{Tipo: GrupoIndividual, Miembros: []*entity.Participante{p}, Calidad: p.Calidad})
	}
	return grupos
}

// buscarConyuge recorre la lista buscando otro participante libre con la misma calidad y la marca de cónyuge.
func buscarConyuge(lista []*entity.Participante, procesados []bool, p *entity.Participante) int {
	for j, c := range lista {
		if procesados[j] || mismoParticipante(c, p) {
			continue
		}
		if c.Calidad == p.Calidad && c.CompareceConyugeJunto {
			return j
		}
	}
	return -1
}

func mismoParticipante(a, b *entity.Participante) bool {
	if a.ID != "" || b.ID != "" {
		return a.ID == b.ID
	}
	return a == b
}
