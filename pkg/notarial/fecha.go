package notarial

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrInvalidDate la fecha no corresponde a un día válido del calendario.
var ErrInvalidDate = errors.New("fecha inválida")

var (
	diasSemana = [7]string{"DOMINGO", "LUNES", "MARTES", "MIÉRCOLES", "JUEVES", "VIERNES", "SÁBADO"}
	meses      = [12]string{
		"ENERO", "FEBRERO", "MARZO", "ABRIL", "MAYO", "JUNIO",
		"JULIO", "AGOSTO", "SEPTIEMBRE", "OCTUBRE", "NOVIEMBRE", "DICIEMBRE",
	}
)

// ParseDate interpreta "YYYY-MM-DD" (o "YYYY-MM-DDTHH:MM...", "YYYY-MM-DD HH:MM:SS")
// como fecha local. Del día se toman solo los dígitos iniciales; lo que sigue se ignora.
// No usa un parser con zona horaria: el día escrito es el día que se conserva.
func ParseDate(s string) (time.Time, error) {
	invalida := fmt.Errorf("%w: %q", ErrInvalidDate, s)
	partes := strings.Split(strings.ReplaceAll(strings.TrimSpace(s), "T", "-"), "-")
	if len(partes) < 3 {
		return time.Time{}, invalida
	}
	anio, err1 := strconv.Atoi(partes[0])
	mes, err2 := strconv.Atoi(partes[1])
	dia, err3 := strconv.Atoi(digitosIniciales(partes[2]))
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, invalida
	}
	t := time.Date(anio, time.Month(mes), dia, 0, 0, 0, 0, time.Local)
	// time.Date normaliza 2026-02-30 a 2026-03-02; eso no es una fecha válida.
	if anio <= 0 || t.Year() != anio || int(t.Month()) != mes || t.Day() != dia {
		return time.Time{}, invalida
	}
	return t, nil
}

func digitosIniciales(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i]
}

// NotarialDate devuelve la fecha en formato notarial:
// "MIÉRCOLES CATORCE (14) DE ENERO DEL DOS MIL VEINTISEIS (2026)".
// Se usan el año, mes y día tal como están en t, sin convertir de zona horaria.
func NotarialDate(t time.Time) (string, error) {
	if t.IsZero() {
		return "", fmt.Errorf("%w: fecha vacía", ErrInvalidDate)
	}
	upper := cases.Upper(language.Spanish)
	return fmt.Sprintf("%s %s (%02d) DE %s DEL %s (%d)",
		diasSemana[t.Weekday()],
		upper.String(SpellInteger(int64(t.Day()))),
		t.Day(),
		meses[t.Month()-1],
		upper.String(spellYear(t.Year())),
		t.Year(),
	), nil
}

// NotarialPhrase combina ParseDate y NotarialDate para fechas en texto.
func NotarialPhrase(s string) (string, error) {
	t, err := ParseDate(s)
	if err != nil {
		return "", err
	}
	return NotarialDate(t)
}

func spellYear(anio int) string {
	if anio >= 2000 && anio < 3000 {
		texto := "dos mil"
		if resto := anio % 1000; resto > 0 {
			texto += " " + SpellInteger(int64(resto))
		}
		return texto
	}
	return SpellInteger(int64(anio))
}
