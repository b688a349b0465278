package entity

// Calidades (rol del compareciente en la escritura).
const (
	CalidadVendedor            = "VENDEDOR"
	CalidadComprador           = "COMPRADOR"
	CalidadPromitenteVendedor  = "PROMITENTE_VENDEDOR"
	CalidadPromitenteComprador = "PROMITENTE_COMPRADOR"
	CalidadDonante             = "DONANTE"
	CalidadDonatario           = "DONATARIO"
	CalidadDeudor              = "DEUDOR"
	CalidadAcreedor            = "ACREEDOR"
	CalidadDeudorHipotecario   = "DEUDOR_HIPOTECARIO"
	CalidadAcreedorHipotecario = "ACREEDOR_HIPOTECARIO"
	CalidadPermutante          = "PERMUTANTE"
	CalidadPoderdante          = "PODERDANTE"
	CalidadApoderado           = "APODERADO"
	CalidadGarante             = "GARANTE"
	CalidadFiador              = "FIADOR"
	CalidadCedente             = "CEDENTE"
	CalidadCesionario          = "CESIONARIO"
	CalidadCompareciente       = "COMPARECIENTE"
)

// ActuaPor modo en que comparece la persona.
type ActuaPor string

const (
	ActuaPropiosDerechos               ActuaPor = "PROPIOS_DERECHOS"
	ActuaRepresentandoSociedadConyugal ActuaPor = "REPRESENTANDO_SOCIEDAD_CONYUGAL"
	ActuaRepresentandoSociedadBienes   ActuaPor = "REPRESENTANDO_SOCIEDAD_BIENES"
	ActuaRepresentandoA                ActuaPor = "REPRESENTANDO_A" // apoderado de un mandante
)

// Mandante persona representada por un apoderado.
type Mandante struct {
	Nombre string
	Cedula string
	Genero string // M o F; vacío se trata como M
}

// Participante persona vinculada a un protocolo con una calidad.
type Participante struct {
	ID                    string
	Orden                 int
	Calidad               string
	Cedula                string // cédula/RUC registrada en el protocolo
	NombreTemporal        string // nombre provisional cuando aún no hay Persona
	CompareceConyugeJunto bool
	EsApoderado           bool
	ActuaPor              ActuaPor
	Mandante              *Mandante
	Persona               Persona // nil si la persona aún no está registrada
}

// IsAttorney indica si el participante comparece como apoderado de otra persona.
func (p *Participante) IsAttorney() bool {
	return p.EsApoderado || p.ActuaPor == ActuaRepresentandoA
}
