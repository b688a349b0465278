// Package notarial redacta la comparecencia y el encabezado de una escritura a partir
// del protocolo y sus participantes. Usa las conversiones de pkg/notarial y las tablas
// de tratamiento, estado civil y calidad definidas aquí.
package notarial

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/notaria-textos/internal/domain/entity"
)

// etiquetaCalidad formas de una calidad según género y número.
type etiquetaCalidad struct {
	masculino, femenino             string
	pluralMasculino, pluralFemenino string
}

var calidades = map[string]etiquetaCalidad{
	entity.CalidadVendedor:            {"vendedor", "vendedora", "vendedores", "vendedoras"},
	entity.CalidadComprador:           {"comprador", "compradora", "compradores", "compradoras"},
	entity.CalidadPromitenteVendedor:  {"promitente vendedor", "promitente vendedora", "promitentes vendedores", "promitentes vendedoras"},
	entity.CalidadPromitenteComprador: {"promitente comprador", "promitente compradora", "promitentes compradores", "promitentes compradoras"},
	entity.CalidadDonante:             {"donante", "donante", "donantes", "donantes"},
	entity.CalidadDonatario:           {"donatario", "donataria", "donatarios", "donatarias"},
	entity.CalidadDeudor:              {"deudor", "deudora", "deudores", "deudoras"},
	entity.CalidadAcreedor:            {"acreedor", "acreedora", "acreedores", "acreedoras"},
	entity.CalidadDeudorHipotecario:   {"deudor hipotecario", "deudora hipotecaria", "deudores hipotecarios", "deudoras hipotecarias"},
	entity.CalidadAcreedorHipotecario: {"acreedor hipotecario", "acreedora hipotecaria", "acreedores hipotecarios", "acreedoras hipotecarias"},
	entity.CalidadPermutante:          {"permutante", "permutante", "permutantes", "permutantes"},
	entity.CalidadPoderdante:          {"poderdante", "poderdante", "poderdantes", "poderdantes"},
	entity.CalidadApoderado:           {"apoderado", "apoderada", "apoderados", "apoderadas"},
	entity.CalidadGarante:             {"garante", "garante", "garantes", "garantes"},
	entity.CalidadFiador:              {"fiador", "fiadora", "fiadores", "fiadoras"},
	entity.CalidadCedente:             {"cedente", "cedente", "cedentes", "cedentes"},
	entity.CalidadCesionario:          {"cesionario", "cesionaria", "cesionarios", "cesionarias"},
	entity.CalidadCompareciente:       {"compareciente", "compareciente", "comparecientes", "comparecientes"},
}

// prioridadCalidad: la parte que transfiere (1) va antes que la que adquiere (2); el resto después.
var prioridadCalidad = map[string]int{
	entity.CalidadVendedor:           1,
	entity.CalidadPromitenteVendedor: 1,
	entity.CalidadDonante:            1,
	entity.CalidadCedente:            1,
	entity.CalidadPoderdante:         1,

	entity.CalidadComprador:           2,
	entity.CalidadPromitenteComprador: 2,
	entity.CalidadDonatario:           2,
	entity.CalidadCesionario:          2,
	entity.CalidadApoderado:           2,
}

const prioridadPorDefecto = 3

func prioridad(calidad string) int {
	if p, ok := prioridadCalidad[calidad]; ok {
		return p
	}
	return prioridadPorDefecto
}

// estadosCiviles forma masculina y femenina del estado civil.
var estadosCiviles = map[string][2]string{
	entity.EstadoCivilSoltero:             {"soltero", "soltera"},
	entity.EstadoCivilCasado:              {"casado", "casada"},
	entity.EstadoCivilCasadoConDisolucion: {"casado con disolución de la sociedad conyugal", "casada con disolución de la sociedad conyugal"},
	entity.EstadoCivilDivorciado:          {"divorciado", "divorciada"},
	entity.EstadoCivilViudo:               {"viudo", "viuda"},
	entity.EstadoCivilUnionLibre:          {"en unión de hecho", "en unión de hecho"},
}

// RoleLabel devuelve la calidad en mayúsculas según el género (VENDEDOR / VENDEDORA).
// Una calidad desconocida se devuelve con los guiones bajos cambiados por espacios.
func RoleLabel(calidad, genero string) string {
	if calidad == "" {
		calidad = entity.CalidadCompareciente
	}
	e, ok := calidades[calidad]
	if !ok {
		return upper(strings.ReplaceAll(calidad, "_", " "))
	}
	if genero == entity.GeneroFemenino {
		return upper(e.femenino)
	}
	return upper(e.masculino)
}

// etiquetaParte calidad en minúsculas para cerrar una parte de la comparecencia.
func etiquetaParte(calidad, genero string, plural, todasFemeninas bool) string {
	if calidad == "" {
		calidad = entity.CalidadCompareciente
	}
	e, ok := calidades[calidad]
	if !ok {
		legible := lower(strings.ReplaceAll(calidad, "_", " "))
		if plural {
			return legible + "s"
		}
		return legible
	}
	switch {
	case plural && todasFemeninas:
		return e.pluralFemenino
	case plural:
		return e.pluralMasculino
	case genero == entity.GeneroFemenino:
		return e.femenino
	default:
		return e.masculino
	}
}

func estadoCivilTexto(estadoCivil, genero string) string {
	i := 0
	if genero == entity.GeneroFemenino {
		i = 1
	}
	if estadoCivil == "" {
		return estadosCiviles[entity.EstadoCivilSoltero][i]
	}
	if formas, ok := estadosCiviles[estadoCivil]; ok {
		return formas[i]
	}
	return lower(strings.ReplaceAll(estadoCivil, "_", " "))
}

func tratamiento(genero string) string {
	if genero == entity.GeneroFemenino {
		return "la señora"
	}
	return "el señor"
}

const tratamientoPlural = "los señores"

// cases.Caser no es seguro entre goroutines; se crea uno por llamada.
func upper(s string) string { return cases.Upper(language.Spanish).String(s) }
func lower(s string) string { return cases.Lower(language.Spanish).String(s) }
