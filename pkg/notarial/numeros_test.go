package notarial_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/notaria-textos/pkg/notarial"
)

func TestSpellInteger_ValoresRepresentativos(t *testing.T) {
	casos := map[int64]string{
		0:    "cero",
		10:   "diez",
		15:   "quince",
		16:   "dieciséis",
		20:   "veinte",
		21:   "veintiuno",
		26:   "veintiseis",
		29:   "veintinueve",
		30:   "treinta",
		45:   "cuarenta y cinco",
		100:  "cien",
		101:  "ciento uno",
		200:  "doscientos",
		500:  "quinientos",
		716:  "setecientos dieciséis",
		999:  "novecientos noventa y nueve",
		1000: "mil",
		1500: "mil quinientos",
		2025: "dos mil veinticinco",
	}
	for n, esperado := range casos {
		assert.Equal(t, esperado, notarial.SpellInteger(n), "n=%d", n)
	}
}

func TestSpellInteger_MilesYMillones(t *testing.T) {
	assert.Equal(t, "veintiún mil", notarial.SpellInteger(21_000))
	assert.Equal(t, "treinta y un mil", notarial.SpellInteger(31_000))
	assert.Equal(t, "ciento un mil", notarial.SpellInteger(101_000))
	assert.Equal(t, "novecientos noventa y nueve mil novecientos noventa y nueve", notarial.SpellInteger(999_999))
	assert.Equal(t, "un millón", notarial.SpellInteger(1_000_000))
	assert.Equal(t, "dos millones quinientos mil", notarial.SpellInteger(2_500_000))
	assert.Equal(t, "un millón doscientos cincuenta mil trescientos", notarial.SpellInteger(1_250_300))
}

func TestSpellInteger_NegativoDevuelveVacio(t *testing.T) {
	assert.Empty(t, notarial.SpellInteger(-5))
}

func TestSpellInteger_LimiteSuperior(t *testing.T) {
	assert.Equal(t,
		"novecientos noventa y nueve mil novecientos noventa y nueve millones novecientos noventa y nueve mil novecientos noventa y nueve",
		notarial.SpellInteger(notarial.MaxSpellable-1))
	assert.Empty(t, notarial.SpellInteger(notarial.MaxSpellable), "un billón queda fuera de rango")
}

// ── SpellForKind ──────────────────────────────────────────────────────────────

func TestSpellForKind_CedulaDigitoPorDigito(t *testing.T) {
	got := notarial.SpellForKind("1700936170", notarial.KindCedula)
	assert.Equal(t, "uno siete cero cero nueve tres seis uno siete cero (1700936170)", got)
}

func TestSpellForKind_Telefono(t *testing.T) {
	got := notarial.SpellForKind(" 0991234567 ", notarial.KindTelefono)
	assert.Equal(t, "cero nueve nueve uno dos tres cuatro cinco seis siete (0991234567)", got)
}

func TestSpellForKind_Direccion(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"N70-294", "N setenta guion doscientos noventa y cuatro (N70-294)"},
		{"OE3-45", "OE tres guion cuarenta y cinco (OE3-45)"},
		{"E12", "E doce (E12)"},
		{"64-204", "sesenta y cuatro guion doscientos cuatro (64-204)"},
		{"15", "quince (15)"},
		{"S/N", "S/N"},
		{"12A", "12A"},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, notarial.SpellForKind(c.entrada, notarial.KindDireccion), c.entrada)
	}
}

func TestSpellForKind_Dinero(t *testing.T) {
	assert.Equal(t, "mil quinientos con cincuenta centavos (1500.50)", notarial.SpellForKind("1500.5", notarial.KindDinero))
	assert.Equal(t, "ochenta y cinco mil (85000.00)", notarial.SpellForKind("$ 85,000.00", notarial.KindDinero))
	assert.Equal(t, "cero con cinco centavos (0.05)", notarial.SpellForKind("0.05", notarial.KindDinero))
	assert.Equal(t, "abc", notarial.SpellForKind("abc", notarial.KindDinero), "monto ilegible se devuelve igual")
}

func TestSpellForKind_VacioYTipoDesconocido(t *testing.T) {
	assert.Empty(t, notarial.SpellForKind("", notarial.KindCedula))
	assert.Empty(t, notarial.SpellForKind("   ", notarial.KindDinero))
	assert.Equal(t, "12", notarial.SpellForKind(" 12 ", notarial.Kind("otro")))
}

func TestSpellMoney_RedondeaCentavos(t *testing.T) {
	assert.Equal(t, "cien con uno centavos (100.01)", notarial.SpellMoney(decimal.RequireFromString("100.005")))
	assert.Equal(t, "un millón (1000000.00)", notarial.SpellMoney(decimal.NewFromInt(1_000_000)))
	assert.Empty(t, notarial.SpellMoney(decimal.NewFromInt(-1)))
}

func TestSpellMoney_FueraDeRango(t *testing.T) {
	assert.Empty(t, notarial.SpellMoney(decimal.NewFromInt(notarial.MaxSpellable)))
	assert.Empty(t, notarial.SpellMoney(decimal.RequireFromString("99999999999999999999.50")), "no debe desbordar int64")
	assert.Equal(t, "99999999999999999999.50", notarial.SpellForKind("99999999999999999999.50", notarial.KindDinero))
	assert.Equal(t, "N1000000000000", notarial.SpellForKind("N1000000000000", notarial.KindDireccion))
}
