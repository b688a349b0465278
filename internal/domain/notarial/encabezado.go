package notarial

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/notaria-textos/internal/domain"
	"github.com/jhoicas/notaria-textos/internal/domain/entity"
)

// GenerateEncabezado arma el encabezado con el generador por defecto.
func GenerateEncabezado(protocolo *entity.Protocolo, participantes []*entity.Participante) EncabezadoResult {
	return generadorPorDefecto.GenerateEncabezado(protocolo, participantes)
}

// GenerateEncabezado arma el resumen tabular de la escritura: título, otorgantes,
// ubicación del inmueble y cuantía. Los participantes se listan en el orden recibido.
func (g *Generator) GenerateEncabezado(protocolo *entity.Protocolo, participantes []*entity.Participante) (res EncabezadoResult) {
	defer func() {
		if r := recover(); r != nil {
			res = encabezadoFallido(recuperar(r, "encabezado"))
		}
	}()

	if protocolo == nil {
		return encabezadoFallido(fmt.Errorf("%w: protocolo nulo", domain.ErrInvalidInput))
	}
	if g.excluido(protocolo.TipoActo) {
		return encabezadoFallido(fmt.Errorf("%w: El tipo de acto %s no requiere encabezado (es un acta de reconocimiento)",
			domain.ErrUnsupportedActType, protocolo.TipoActo))
	}
	lista := sinNulos(participantes)
	if len(lista) == 0 {
		return encabezadoFallido(domain.ErrEmptyPartyList)
	}

	var b strings.Builder
	b.WriteString(g.titulo(protocolo))
	b.WriteString("\n\n")
	b.WriteString(g.otorgantes(lista))
	b.WriteString(g.ubicacion(protocolo))
	b.WriteString(g.cuantia(protocolo))

	return EncabezadoResult{
		Success:    true,
		Encabezado: strings.TrimRight(b.String(), " \t\r\n"),
		Warnings:   g.advertencias(protocolo, lista),
	}
}

func encabezadoFallido(err error) EncabezadoResult {
	return EncabezadoResult{Success: false, Error: err.Error(), Err: err}
}

func (g *Generator) anchoTotal() int {
	return g.opts.AnchoNombre + g.opts.AnchoCedula + g.opts.AnchoCalidad
}

func (g *Generator) centrar(texto string) string {
	return espacios((g.anchoTotal()-utf8.RuneCountInString(texto))/2) + texto
}

func (g *Generator) titulo(p *entity.Protocolo) string {
	acto := p.TipoActo
	if acto == "" {
		acto = p.ActoContrato
	}
	if acto == "" {
		acto = entity.TipoActoCompraventa
	}
	return g.centrar(strings.ReplaceAll(acto, "_", " "))
}

func (g *Generator) otorgantes(participantes []*entity.Participante) string {
	var b strings.Builder
	b.WriteString(g.centrar("OTORGANTES:") + "\n")
	b.WriteString(columna("APELLIDOS Y NOMBRES", g.opts.AnchoNombre))
	b.WriteString(columna("CEDULA", g.opts.AnchoCedula))
	b.WriteString("CALIDAD\n\n")

	for _, p := range participantes {
		v := vistaDe(p, g.opts)
		b.WriteString(columna(truncar(v.nombreApellido, g.opts.AnchoNombre), g.opts.AnchoNombre))
		b.WriteString(columna(v.cedula, g.opts.AnchoCedula))
		b.WriteString(RoleLabel(p.Calidad, v.genero) + "\n")
	}
	return b.String()
}

func (g *Generator) ubicacion(p *entity.Protocolo) string {
	texto := valorOr(p.UbicacionDescripcion, p.BienInmuebleDescripcion)

	partes := make([]string, 0, 3)
	if s := strings.TrimSpace(p.UbicacionParroquia); s != "" {
		partes = append(partes, "PARROQUIA "+s)
	}
	if s := strings.TrimSpace(p.UbicacionCanton); s != "" {
		partes = append(partes, "CANTÓN "+s)
	}
	if s := strings.TrimSpace(p.UbicacionProvincia); s != "" {
		partes = append(partes, "PROVINCIA DE "+s)
	}
	if len(partes) > 0 {
		if texto != "" {
			texto += ", "
		}
		texto += strings.Join(partes, ", ")
	}
	if texto == "" {
		texto = valorOr(p.BienInmuebleUbicacion, "A DEFINIR")
	}
	return "\n" + g.centrar("UBICACIÓN DEL INMUEBLE:") + "\n\n" + texto
}

func (g *Generator) cuantia(p *entity.Protocolo) string {
	texto := "\n\n" + g.centrar("CUANTÍA: USD $ "+FormatCurrency(p.ValorContrato)) + "\n"
	switch {
	case p.TipoActo == entity.TipoActoPromesaCompraventa && !p.Multa.IsZero():
		texto += g.centrar("MULTA: USD $ "+FormatCurrency(p.Multa)) + "\n"
	case !p.AvaluoMunicipal.IsZero():
		texto += g.centrar("AVALÚO: USD $ "+FormatCurrency(p.AvaluoMunicipal)) + "\n"
	}
	return texto
}

// FormatCurrency monto con separador de miles y dos decimales: 85000 → "85,000.00".
// Trabaja sobre los dígitos decimales exactos; no pasa por float64.
func FormatCurrency(monto decimal.Decimal) string {
	fijo := monto.StringFixed(2)
	signo := ""
	if strings.HasPrefix(fijo, "-") {
		signo, fijo = "-", fijo[1:]
	}
	entero, centavos, _ := strings.Cut(fijo, ".")

	var b strings.Builder
	b.WriteString(signo)
	for i, d := range entero {
		if i > 0 && (len(entero)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	b.WriteByte('.')
	b.WriteString(centavos)
	return b.String()
}

// truncar corta nombres que no caben en la columna y agrega "...".
func truncar(s string, ancho int) string {
	if utf8.RuneCountInString(s) <= ancho-2 {
		return s
	}
	r := []rune(s)
	return string(r[:max(0, ancho-5)]) + "..."
}

func columna(s string, ancho int) string {
	return s + espacios(ancho-utf8.RuneCountInString(s))
}

func espacios(n int) string {
	return strings.Repeat(" ", max(0, n))
}
