// Package notarial contiene las tablas y conversiones de texto notarial ecuatoriano:
// números en letras (cédulas, teléfonos, direcciones, dinero), fechas en formato
// notarial y expansión de abreviaturas de direcciones.
package notarial

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind indica cómo debe leerse un número dentro del texto notarial.
type Kind string

const (
	KindCedula    Kind = "cedula"    // dígito por dígito
	KindTelefono  Kind = "telefono"  // dígito por dígito
	KindDireccion Kind = "direccion" // N70-294, 64-204, 15
	KindDinero    Kind = "dinero"    // entero + centavos
)

var (
	unidades = [10]string{"", "uno", "dos", "tres", "cuatro", "cinco", "seis", "siete", "ocho", "nueve"}
	decenas  = [10]string{"", "", "veinte", "treinta", "cuarenta", "cincuenta", "sesenta", "setenta", "ochenta", "noventa"}
	// 10..19
	especiales = [10]string{"diez", "once", "doce", "trece", "catorce", "quince", "dieciséis", "diecisiete", "dieciocho", "diecinueve"}
)

var (
	reLetterNumber = regexp.MustCompile(`^([A-Z]+)(\d+)(?:-(\d+))?$`)
	reNumberPair   = regexp.MustCompile(`^(\d+)-(\d+)$`)
	rePlainNumber  = regexp.MustCompile(`^\d+$`)
	reNotAmount    = regexp.MustCompile(`[^\d.]`)
)

// MaxSpellable primer entero que ya no se escribe en letras (un billón).
const MaxSpellable int64 = 1_000_000_000_000

// SpellInteger convierte un entero en [0, MaxSpellable) a letras ("dos mil veinticinco").
// Fuera de ese rango devuelve cadena vacía.
func SpellInteger(n int64) string {
	if n < 0 || n >= MaxSpellable {
		return ""
	}
	if n == 0 {
		return "cero"
	}
	return spellPositive(n)
}

func spellPositive(n int64) string {
	switch {
	case n < 1000:
		return spellBelowThousand(n)
	case n < 1_000_000:
		miles, resto := n/1000, n%1000
		texto := "mil"
		if miles > 1 {
			texto = apocope(spellBelowThousand(miles)) + " mil"
		}
		if resto > 0 {
			texto += " " + spellBelowThousand(resto)
		}
		return texto
	default:
		millones, resto := n/1_000_000, n%1_000_000
		texto := "un millón"
		if millones > 1 {
			texto = apocope(spellPositive(millones)) + " millones"
		}
		if resto > 0 {
			texto += " " + spellPositive(resto)
		}
		return texto
	}
}

func spellBelowHundred(n int64) string {
	if n < 10 {
		return unidades[n]
	}
	if n < 20 {
		return especiales[n-10]
	}
	decena, unidad := n/10, n%10
	if unidad == 0 {
		return decenas[decena]
	}
	if decena == 2 {
		return "veinti" + unidades[unidad]
	}
	return decenas[decena] + " y " + unidades[unidad]
}

func spellBelowThousand(n int64) string {
	if n < 100 {
		return spellBelowHundred(n)
	}
	centena, resto := n/100, n%100

	var texto string
	switch centena {
	case 1:
		texto = "ciento"
		if resto == 0 {
			texto = "cien"
		}
	case 5:
		texto = "quinientos"
	case 7:
		texto = "setecientos"
	case 9:
		texto = "novecientos"
	default:
		texto = unidades[centena] + "cientos"
	}
	if resto > 0 {
		texto += " " + spellBelowHundred(resto)
	}
	return texto
}

// apocope aplica la forma corta de "uno" delante de "mil" y "millones"
// (veintiún mil, ciento un mil, un millón).
func apocope(s string) string {
	switch {
	case strings.HasSuffix(s, "veintiuno"):
		return strings.TrimSuffix(s, "veintiuno") + "veintiún"
	case s == "uno":
		return "un"
	case strings.HasSuffix(s, " uno"):
		return strings.TrimSuffix(s, " uno") + " un"
	}
	return s
}

// SpellForKind convierte un número a formato notarial según su tipo.
// Nunca falla: lo que no reconoce se devuelve sin cambios y la entrada vacía produce "".
func SpellForKind(value string, kind Kind) string {
	s := strings.TrimSpace(value)
	if s == "" {
		return ""
	}
	switch kind {
	case KindCedula, KindTelefono:
		return spellDigits(s)
	case KindDireccion:
		return spellAddressNumber(s)
	case KindDinero:
		monto, err := decimal.NewFromString(reNotAmount.ReplaceAllString(s, ""))
		if err != nil {
			return s
		}
		if texto := SpellMoney(monto); texto != "" {
			return texto
		}
		return s
	default:
		return s
	}
}

// SpellMoney devuelve el monto en letras con centavos y la cifra a dos decimales:
// "mil quinientos con cincuenta centavos (1500.50)". Montos negativos o desde
// MaxSpellable producen "".
func SpellMoney(monto decimal.Decimal) string {
	r := monto.Round(2)
	if r.IsNegative() || r.GreaterThanOrEqual(decimal.NewFromInt(MaxSpellable)) {
		return ""
	}
	entero := r.IntPart()
	centavos := r.Sub(decimal.NewFromInt(entero)).Mul(decimal.NewFromInt(100)).IntPart()

	texto := SpellInteger(entero)
	if centavos > 0 {
		texto += " con " + SpellInteger(centavos) + " centavos"
	}
	return texto + " (" + r.StringFixed(2) + ")"
}

func spellDigits(s string) string {
	palabras := make([]string, 0, len(s))
	for _, r := range s {
		switch {
		case r == '0':
			palabras = append(palabras, "cero")
		case r >= '1' && r <= '9':
			palabras = append(palabras, unidades[r-'0'])
		default:
			palabras = append(palabras, string(r))
		}
	}
	return strings.Join(palabras, " ") + " (" + s + ")"
}

func spellAddressNumber(s string) string {
	if m := reLetterNumber.FindStringSubmatch(s); m != nil {
		n1, err := parseSpellable(m[2])
		if err != nil {
			return s
		}
		texto := m[1] + " " + SpellInteger(n1)
		if m[3] != "" {
			n2, err := parseSpellable(m[3])
			if err != nil {
				return s
			}
			texto += " guion " + SpellInteger(n2)
		}
		return texto + " (" + s + ")"
	}
	if m := reNumberPair.FindStringSubmatch(s); m != nil {
		n1, err1 := parseSpellable(m[1])
		n2, err2 := parseSpellable(m[2])
		if err1 != nil || err2 != nil {
			return s
		}
		return SpellInteger(n1) + " guion " + SpellInteger(n2) + " (" + s + ")"
	}
	if rePlainNumber.MatchString(s) {
		n, err := parseSpellable(s)
		if err != nil {
			return s
		}
		return SpellInteger(n) + " (" + s + ")"
	}
	return s
}

func parseSpellable(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if n >= MaxSpellable {
		return 0, strconv.ErrRange
	}
	return n, nil
}
