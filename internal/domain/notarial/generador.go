package notarial

import (
	"fmt"
	"slices"
	"strings"
)

// Options parámetros de redacción de la notaría.
type Options struct {
	NotariaTexto        string   // identidad de la notaria, va en negrita en la apertura
	Ciudad              string   // ciudad de otorgamiento en la apertura
	CiudadDomicilio     string   // ciudad de la declaración de domicilios
	CantonPorDefecto    string   // para direcciones sin cantón
	ProvinciaPorDefecto string   // para direcciones sin provincia
	ActosExcluidos      []string // actos sin comparecencia ni encabezado (actas de reconocimiento)
	AnchoNombre         int
	AnchoCedula         int
	AnchoCalidad        int
}

// DefaultOptions valores de la Notaría Décima Octava del cantón Quito.
func DefaultOptions() Options {
	return Options{
		NotariaTexto:        "DOCTORA GLENDA ZAPATA SILVA, NOTARIA DÉCIMA OCTAVA DEL CANTÓN QUITO",
		Ciudad:              "San Francisco de Quito, Capital de la República del Ecuador",
		CiudadDomicilio:     "Quito",
		CantonPorDefecto:    "QUITO",
		ProvinciaPorDefecto: "PICHINCHA",
		ActosExcluidos:      []string{"VENTA_VEHICULO", "RECONOCIMIENTO_VEHICULO"},
		AnchoNombre:         50,
		AnchoCedula:         20,
		AnchoCalidad:        25,
	}
}

// Generator redacta comparecencias y encabezados. Es inmutable y puede usarse
// desde varias goroutines.
type Generator struct {
	opts      Options
	excluidos map[string]struct{}
}

// NewGenerator construye el generador; los campos vacíos de opts toman el valor por defecto.
func NewGenerator(opts Options) *Generator {
	def := DefaultOptions()
	if opts.NotariaTexto == "" {
		opts.NotariaTexto = def.NotariaTexto
	}
	if opts.Ciudad == "" {
		opts.Ciudad = def.Ciudad
	}
	if opts.CiudadDomicilio == "" {
		opts.CiudadDomicilio = def.CiudadDomicilio
	}
	if opts.CantonPorDefecto == "" {
		opts.CantonPorDefecto = def.CantonPorDefecto
	}
	if opts.ProvinciaPorDefecto == "" {
		opts.ProvinciaPorDefecto = def.ProvinciaPorDefecto
	}
	if opts.ActosExcluidos == nil {
		opts.ActosExcluidos = def.ActosExcluidos
	}
	if opts.AnchoNombre <= 0 {
		opts.AnchoNombre = def.AnchoNombre
	}
	if opts.AnchoCedula <= 0 {
		opts.AnchoCedula = def.AnchoCedula
	}
	if opts.AnchoCalidad <= 0 {
		opts.AnchoCalidad = def.AnchoCalidad
	}

	excluidos := make(map[string]struct{}, len(opts.ActosExcluidos))
	for _, a := range opts.ActosExcluidos {
		if a = strings.TrimSpace(a); a != "" {
			excluidos[a] = struct{}{}
		}
	}
	opts.ActosExcluidos = slices.Clone(opts.ActosExcluidos)
	return &Generator{opts: opts, excluidos: excluidos}
}

// Options devuelve una copia de la configuración efectiva.
func (g *Generator) Options() Options {
	o := g.opts
	o.ActosExcluidos = slices.Clone(g.opts.ActosExcluidos)
	return o
}

func (g *Generator) excluido(tipoActo string) bool {
	_, ok := g.excluidos[tipoActo]
	return ok
}

var generadorPorDefecto = NewGenerator(DefaultOptions())

// ComparecenciaOptions opciones por llamada.
type ComparecenciaOptions struct {
	HTMLFormat bool // devolver también la versión con <strong>
}

// ComparecenciaResult resultado estructurado; Success indica si hay texto.
type ComparecenciaResult struct {
	Success           bool
	Comparecencia     string // texto plano
	ComparecenciaHTML string // con <strong>…</strong>; vacío si no se pidió HTML
	Error             string
	Err               error
	Warnings          []string
}

// EncabezadoResult resultado estructurado del encabezado.
type EncabezadoResult struct {
	Success    bool
	Encabezado string
	Error      string
	Err        error
	Warnings   []string
}

// recuperar convierte un panic interno en un error, para que nada cruce la frontera pública.
func recuperar(r any, documento string) error {
	return fmt.Errorf("error generando %s: %v", documento, r)
}
