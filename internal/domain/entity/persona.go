package entity

// Tipos de persona.
const (
	TipoPersonaNatural  = "NATURAL"
	TipoPersonaJuridica = "JURIDICA"
)

// Géneros.
const (
	GeneroMasculino = "M"
	GeneroFemenino  = "F"
)

// Estados civiles.
const (
	EstadoCivilSoltero             = "SOLTERO"
	EstadoCivilCasado              = "CASADO"
	EstadoCivilCasadoConDisolucion = "CASADO_CON_DISOLUCION"
	EstadoCivilDivorciado          = "DIVORCIADO"
	EstadoCivilViudo               = "VIUDO"
	EstadoCivilUnionLibre          = "UNION_LIBRE"
)

// Persona es una persona natural o jurídica. Solo *PersonaNatural y *PersonaJuridica
// la implementan; quien la consuma debe cubrir ambos casos con un type switch.
type Persona interface {
	TipoPersona() string
	Identificacion() string
	persona()
}

// DatosPersonales nombre, género y estado civil.
type DatosPersonales struct {
	Nombres     string
	Apellidos   string
	Genero      string
	EstadoCivil string
}

// Contacto medios de contacto.
type Contacto struct {
	Email    string
	Telefono string
	Celular  string
}

// Domicilio dirección registrada de la persona.
type Domicilio struct {
	CallePrincipal  string
	Numero          string
	CalleSecundaria string
	Parroquia       string
	Canton          string
	Provincia       string
}

// Conyuge datos del cónyuge registrados junto a la persona.
type Conyuge struct {
	Nombres              string
	Apellidos            string
	NumeroIdentificacion string
	Profesion            string
}

// PersonaNatural persona física.
type PersonaNatural struct {
	NumeroIdentificacion string
	DatosPersonales      DatosPersonales
	Contacto             Contacto
	Domicilio            Domicilio
	Profesion            string
	Conyuge              *Conyuge
}

func (*PersonaNatural) TipoPersona() string      { return TipoPersonaNatural }
func (p *PersonaNatural) Identificacion() string { return p.NumeroIdentificacion }
func (*PersonaNatural) persona()                 {}

// RepresentanteLegal persona natural que actúa por la compañía.
type RepresentanteLegal struct {
	DatosPersonales
	NumeroIdentificacion string
}

// PersonaJuridica compañía con su representante legal.
type PersonaJuridica struct {
	NumeroIdentificacion string // RUC
	RazonSocial          string
	Direccion            string
	Parroquia            string
	Telefono             string
	Celular              string
	Email                string
	RepresentanteLegal   RepresentanteLegal
}

func (*PersonaJuridica) TipoPersona() string      { return TipoPersonaJuridica }
func (p *PersonaJuridica) Identificacion() string { return p.NumeroIdentificacion }
func (*PersonaJuridica) persona()                 {}
