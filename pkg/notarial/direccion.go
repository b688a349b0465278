package notarial

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

// abreviatura de dirección y su forma expandida para el texto notarial.
type abreviatura struct {
	clave     string
	expansion string
}

// abreviaturas en orden de declaración; a igual longitud se respeta este orden.
var abreviaturas = []abreviatura{
	{"av.", "Avenida"},
	{"av", "Avenida"},
	{"calle", "calle"},
	{"c.", "calle"},
	{"nro.", "número"},
	{"nro", "número"},
	{"no.", "número"},
	{"n°", "número"},
	{"#", "número"},
	{"n.", "número"},
	{"urb.", "Urbanización"},
	{"conj.", "Conjunto"},
	{"edif.", "Edificio"},
	{"dept.", "Departamento"},
	{"dpto.", "Departamento"},
	{"km.", "kilómetro"},
	{"km", "kilómetro"},
	{"oe", "OE"},
	{"s/n", "sin número"},
	{"esq.", "esquina"},
	{"int.", "interior"},
	{"loc.", "local"},
	{"piso", "piso"},
	{"mz.", "Manzana"},
	{"mz", "Manzana"},
	{"lt.", "Lote"},
	{"lt", "Lote"},
	{"villa", "Villa"},
	{"sector", "sector"},
	{"barrio", "Barrio"},
	{"cdla.", "Ciudadela"},
	{"cdla", "Ciudadela"},
}

type reglaAbreviatura struct {
	re        *regexp.Regexp
	reemplazo string
}

// reglas ordenadas por longitud descendente de la clave: "av." se aplica antes que "av".
var reglasAbreviatura = compilarAbreviaturas(abreviaturas)

func compilarAbreviaturas(lista []abreviatura) []reglaAbreviatura {
	ordenadas := slices.Clone(lista)
	slices.SortStableFunc(ordenadas, func(a, b abreviatura) int {
		return utf8.RuneCountInString(b.clave) - utf8.RuneCountInString(a.clave)
	})
	reglas := make([]reglaAbreviatura, 0, len(ordenadas))
	for _, a := range ordenadas {
		// La clave debe ir seguida de espacio o fin de texto; el espacio se captura y se repone.
		reglas = append(reglas, reglaAbreviatura{
			re:        regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(a.clave) + `(\s|$)`),
			reemplazo: strings.ReplaceAll(a.expansion, "$", "$$") + "${1}",
		})
	}
	return reglas
}

// ExpandAbbreviations reemplaza las abreviaturas de dirección por su forma completa
// ("av. González Suárez" -> "Avenida González Suárez"). Aplicarla dos veces no cambia el resultado.
func ExpandAbbreviations(texto string) string {
	if texto == "" {
		return ""
	}
	resultado := texto
	for _, r := range reglasAbreviatura {
		resultado = r.re.ReplaceAllString(resultado, r.reemplazo)
	}
	return resultado
}

// Direccion campos de domicilio tal como se registran para una persona.
type Direccion struct {
	CallePrincipal  string
	Numero          string
	CalleSecundaria string
	Parroquia       string
	Canton          string
	Provincia       string
}

// FormatAddress compone el domicilio notarial:
// "en la Avenida Amazonas, número N setenta (N70), y Pereira, Parroquia Iñaquito, Cantón Quito, Provincia de Pichincha".
// Los campos vacíos se omiten.
func FormatAddress(d Direccion) string {
	partes := make([]string, 0, 4)
	if d.CallePrincipal != "" {
		partes = append(partes, "en la "+ExpandAbbreviations(d.CallePrincipal))
	}
	if d.Numero != "" {
		partes = append(partes, "número "+SpellForKind(d.Numero, KindDireccion))
	}
	if d.CalleSecundaria != "" {
		partes = append(partes, "y "+ExpandAbbreviations(d.CalleSecundaria))
	}

	ubicacion := make([]string, 0, 3)
	if d.Parroquia != "" {
		ubicacion = append(ubicacion, "Parroquia "+d.Parroquia)
	}
	if d.Canton != "" {
		ubicacion = append(ubicacion, "Cantón "+d.Canton)
	}
	if d.Provincia != "" {
		ubicacion = append(ubicacion, "Provincia de "+d.Provincia)
	}
	if len(ubicacion) > 0 {
		partes = append(partes, strings.Join(ubicacion, ", "))
	}
	return strings.Join(partes, ", ")
}
