package notarial

import (
	"fmt"
	"strings"

	"github.com/jhoicas/notaria-textos/internal/domain"
	"github.com/jhoicas/notaria-textos/internal/domain/entity"
	pkgnotarial "github.com/jhoicas/notaria-textos/pkg/notarial"
)

const (
	pendienteNombre    = "[NOMBRE PENDIENTE]"
	pendienteOcupacion = "[PENDIENTE]"
	pendienteCedula    = "[CÉDULA PENDIENTE]"
	pendienteDireccion = "[DIRECCIÓN PENDIENTE]"
	pendienteTelefono  = "[TELÉFONO PENDIENTE]"
	pendienteMandante  = "[MANDANTE PENDIENTE]"
	pendienteRUC       = "[RUC PENDIENTE]"
)

const cierre = "hábiles en derecho para contratar y contraer obligaciones; " +
	"a quienes de conocer doy fe, en virtud de haberme exhibido sus documentos de identidad " +
	"cuyas copias fotostáticas debidamente certificadas por mí agrego a esta escritura " +
	"como documentos habilitantes, autorizando además, la consulta e impresión de sus " +
	"certificados electrónicos de datos de identidad del Sistema Nacional de Identificación " +
	"Ciudadana de la Dirección General del Registro Civil, Identificación y Cedulación, " +
	"que también se agregan como habilitantes. Advertidos los comparecientes por mí, " +
	"la Notaria, de los efectos y resultados de esta escritura, así como examinados " +
	"que fueron en forma aislada y separada de que comparecen al otorgamiento de esta " +
	"escritura sin coacción, amenazas, temor reverencial, ni promesa o seducción, " +
	"me piden que eleve a escritura pública la siguiente minuta:"

var quitarNegrita = strings.NewReplacer("<strong>", "", "</strong>", "")

func negrita(s string) string { return "<strong>" + s + "</strong>" }

// GenerateComparecencia redacta la comparecencia con el generador por defecto.
func GenerateComparecencia(protocolo *entity.Protocolo, participantes []*entity.Participante, opts ComparecenciaOptions) ComparecenciaResult {
	return generadorPorDefecto.GenerateComparecencia(protocolo, participantes, opts)
}

// GenerateComparecencia redacta apertura, comparecientes, domicilios y cierre.
// El texto plano se obtiene siempre quitando las marcas <strong> de la versión HTML.
func (g *Generator) GenerateComparecencia(protocolo *entity.Protocolo, participantes []*entity.Participante, opts ComparecenciaOptions) (res ComparecenciaResult) {
	defer func() {
		if r := recover(); r != nil {
			res = comparecenciaFallida(recuperar(r, "comparecencia"))
		}
	}()

	if protocolo == nil {
		return comparecenciaFallida(fmt.Errorf("%w: protocolo nulo", domain.ErrInvalidInput))
	}
	if g.excluido(protocolo.TipoActo) {
		return comparecenciaFallida(fmt.Errorf("%w: El tipo de acto %s no requiere comparecencia (es un acta de reconocimiento)",
			domain.ErrUnsupportedActType, protocolo.TipoActo))
	}
	lista := sinNulos(participantes)
	if len(lista) == 0 {
		return comparecenciaFallida(domain.ErrEmptyPartyList)
	}

	fecha, err := pkgnotarial.NotarialDate(protocolo.Fecha)
	if err != nil {
		return comparecenciaFallida(fmt.Errorf("%w: %w", domain.ErrInvalidDate, err))
	}

	var b strings.Builder
	b.WriteString(g.apertura(fecha))
	b.WriteString(g.seccionComparecientes(GroupParties(lista)))
	b.WriteString(g.seccionDomicilios(lista))
	b.WriteString(cierre)

	html := b.String()
	res = ComparecenciaResult{
		Success:       true,
		Comparecencia: quitarNegrita.Replace(html),
		Warnings:      g.advertencias(protocolo, lista),
	}
	if opts.HTMLFormat {
		res.ComparecenciaHTML = html
	}
	return res
}

func comparecenciaFallida(err error) ComparecenciaResult {
	return ComparecenciaResult{Success: false, Error: err.Error(), Err: err}
}

func (g *Generator) apertura(fecha string) string {
	return "En la ciudad de " + g.opts.Ciudad + ", " +
		"hoy día " + negrita(fecha) + ", " +
		"ante mí, " + negrita(g.opts.NotariaTexto) + ", " +
		"comparecen con plena capacidad, libertad y conocimiento, " +
		"a la celebración de la presente escritura pública, "
}

// parte grupos con la misma calidad; se redactan bajo un solo conector y una sola calidad.
type parte struct {
	calidad  string
	grupos   []Grupo
	personas int
	genero   string
	femenino bool // todas las personas son mujeres
}

func (g *Generator) seccionComparecientes(grupos []Grupo) string {
	partes := make([]*parte, 0, len(grupos))
	indice := make(map[string]*parte, len(grupos))
	for _, gr := range grupos {
		p, ok := indice[gr.Calidad]
		if !ok {
			p = &parte{calidad: gr.Calidad, femenino: true}
			indice[gr.Calidad] = p
			partes = append(partes, p)
		}
		p.grupos = append(p.grupos, gr)
		for _, genero := range g.generosDe(gr) {
			p.personas++
			if p.genero == "" {
				p.genero = genero
			}
			if genero != entity.GeneroFemenino {
				p.femenino = false
			}
		}
	}

	bloques := make([]string, 0, len(partes))
	for i, p := range partes {
		conector := "y por otra parte, "
		if i == 0 {
			conector = "por una parte, "
		}
		textos := make([]string, 0, len(p.grupos))
		for _, gr := range p.grupos {
			textos = append(textos, g.redactarGrupo(gr))
		}
		etiqueta := etiquetaParte(p.calidad, p.genero, p.personas > 1, p.femenino)
		bloques = append(bloques, conector+strings.Join(textos, "; ")+", en calidad de "+etiqueta)
	}
	return strings.Join(bloques, "; ") + ".- "
}

// generosDe un género por persona que comparece en el grupo; el apoderado cuenta por su mandante.
func (g *Generator) generosDe(gr Grupo) []string {
	if gr.Tipo == GrupoApoderado {
		return []string{generoMandante(gr.Miembros[0])}
	}
	generos := make([]string, 0, len(gr.Miembros))
	for _, m := range gr.Miembros {
		generos = append(generos, vistaDe(m, g.opts).genero)
	}
	return generos
}

func (g *Generator) redactarGrupo(gr Grupo) string {
	switch gr.Tipo {
	case GrupoPareja:
		return g.redactarPareja(gr.Miembros[0], gr.Miembros[1])
	case GrupoApoderado:
		return g.redactarApoderado(gr.Miembros[0])
	default:
		return g.redactarIndividual(gr.Miembros[0])
	}
}

func (g *Generator) redactarIndividual(p *entity.Participante) string {
	v := vistaDe(p, g.opts)
	if v.juridica {
		return redactarJuridica(v)
	}

	var b strings.Builder
	b.WriteString(tratamiento(v.genero) + " " + negrita(valorOr(v.nombre, pendienteNombre)))
	b.WriteString(", de estado civil " + estadoCivilTexto(v.estadoCivil, v.genero))
	if v.conyuge != nil && (v.estadoCivil == entity.EstadoCivilCasado || v.estadoCivil == entity.EstadoCivilUnionLibre) {
		b.WriteString(" con " + v.conyuge.nombre)
	}
	b.WriteString(", de ocupación " + ocupacion(v.profesion))
	b.WriteString(", con cédula de ciudadanía número " + cedulaEnLetras(v.cedula))

	switch p.ActuaPor {
	case entity.ActuaRepresentandoSociedadConyugal:
		b.WriteString(", por sus propios y personales derechos y por los que representa de la sociedad conyugal que tienen formada")
	case entity.ActuaRepresentandoSociedadBienes:
		b.WriteString(", por sus propios y personales derechos y por los que representa de la sociedad de bienes que tienen formada")
	default:
		b.WriteString(", por sus propios y personales derechos")
	}
	return b.String()
}

func redactarJuridica(v vista) string {
	ruc := v.cedula
	if ruc == "" {
		ruc = pendienteRUC
	}
	representante := pendienteNombre
	if v.representante != nil && v.representante.nombre != "" {
		representante = v.representante.nombre
	}
	return "la compañía " + negrita(valorOr(v.nombre, pendienteNombre)) +
		", legalmente representada por " + tratamiento(v.genero) + " " + negrita(representante) +
		", con RUC número " + ruc
}

// redactarPareja usa el estado civil del primer cónyuge; si no coinciden se advierte en la validación.
func (g *Generator) redactarPareja(p1, p2 *entity.Participante) string {
	v1, v2 := vistaDe(p1, g.opts), vistaDe(p2, g.opts)
	n1 := negrita(valorOr(v1.nombre, pendienteNombre))
	n2 := negrita(valorOr(v2.nombre, pendienteNombre))
	cedulas := "con cédulas de ciudadanía números " + cedulaEnLetras(v1.cedula) +
		" y " + cedulaEnLetras(v2.cedula) + ", respectivamente, "
	ocupaciones := "de ocupación " + ocupacion(v1.profesion) + " y " + ocupacion(v2.profesion) + " respectivamente, "

	switch v1.estadoCivil {
	case entity.EstadoCivilUnionLibre:
		return tratamientoPlural + " " + n1 + " y " + n2 + ", de estado civil en unión de hecho, " +
			ocupaciones + cedulas +
			"por sus propios y personales derechos y por los que representan de la sociedad de bienes que tienen formada"
	case entity.EstadoCivilCasadoConDisolucion:
		return tratamientoPlural + " " + n1 + " y " + n2 + ", casados entre sí, con disolución de la sociedad conyugal, " +
			ocupaciones + cedulas +
			"por sus propios y personales derechos"
	default:
		texto := tratamientoPlural + " cónyuges " + n1
		if v1.profesion != "" {
			texto += ", de ocupación " + lower(v1.profesion)
		}
		texto += " y " + n2
		if v2.profesion != "" {
			texto += ", de ocupación " + lower(v2.profesion)
		}
		return texto + ", " + cedulas +
			"por sus propios y personales derechos y por los que representan de la sociedad conyugal que tienen formada"
	}
}

// redactarApoderado nombra primero al mandante y luego a quien lo representa.
func (g *Generator) redactarApoderado(p *entity.Participante) string {
	apoderado := vistaDe(p, g.opts)

	mandante, cedulaMandante := pendienteMandante, ""
	if p.Mandante != nil {
		mandante = valorOr(upper(p.Mandante.Nombre), pendienteMandante)
		cedulaMandante = strings.TrimSpace(p.Mandante.Cedula)
	}

	var b strings.Builder
	b.WriteString(negrita(mandante))
	if cedulaMandante != "" {
		b.WriteString(", con cédula de ciudadanía número " + cedulaEnLetras(cedulaMandante))
	}
	representado := "debidamente representado por "
	if generoMandante(p) == entity.GeneroFemenino {
		representado = "debidamente representada por "
	}
	b.WriteString(", " + representado + tratamiento(apoderado.genero) + " " + negrita(valorOr(apoderado.nombre, pendienteNombre)))
	b.WriteString(", de estado civil " + estadoCivilTexto(apoderado.estadoCivil, apoderado.genero))
	b.WriteString(", de ocupación " + ocupacion(apoderado.profesion))
	b.WriteString(", con cédula de ciudadanía número " + cedulaEnLetras(apoderado.cedula))
	b.WriteString(", según poder que se agrega como habilitante")
	return b.String()
}

// seccionDomicilios un fragmento por participante, en el orden recibido.
func (g *Generator) seccionDomicilios(participantes []*entity.Participante) string {
	fragmentos := make([]string, 0, len(participantes))
	for _, p := range participantes {
		v := vistaDe(p, g.opts)
		frag := tratamiento(v.genero) + " " + negrita(valorOr(v.nombre, pendienteNombre))
		if v.juridica {
			frag = "la compañía " + negrita(valorOr(v.nombre, pendienteNombre))
		}

		if v.direccion.CallePrincipal != "" {
			frag += ", " + pkgnotarial.FormatAddress(v.direccion)
		} else {
			frag += ", " + pendienteDireccion
		}
		if v.telefono != "" {
			frag += ", teléfono " + pkgnotarial.SpellForKind(v.telefono, pkgnotarial.KindTelefono)
		} else {
			frag += ", teléfono " + pendienteTelefono
		}
		if v.email != "" {
			frag += ", correo electrónico " + v.email
		}
		fragmentos = append(fragmentos, frag)
	}
	return "Los comparecientes declaran ser de nacionalidad ecuatoriana, mayores de edad, " +
		"domiciliados en esta ciudad de " + g.opts.CiudadDomicilio + " de la siguiente manera: " +
		strings.Join(fragmentos, "; ") + "; "
}

func ocupacion(profesion string) string {
	if profesion == "" {
		return pendienteOcupacion
	}
	return lower(profesion)
}

func cedulaEnLetras(cedula string) string {
	if texto := pkgnotarial.SpellForKind(cedula, pkgnotarial.KindCedula); texto != "" {
		return texto
	}
	return pendienteCedula
}

// sinNulos descarta entradas nil y repeticiones de un mismo participante (mismo ID).
func sinNulos(participantes []*entity.Participante) []*entity.Participante {
	lista := make([]*entity.Participante, 0, len(participantes))
	vistos := make(map[string]bool, len(participantes))
	for _, p := range participantes {
		if p == nil {
			continue
		}
		if p.ID != "" {
			if vistos[p.ID] {
				continue
			}
			vistos[p.ID] = true
		}
		lista = append(lista, p)
	}
	return lista
}
