// Package fixture implementa ProtocoloRepository sobre un archivo YAML con uno o más
// protocolos. Lo usan la CLI sin base de datos y los tests de la aplicación.
package fixture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/notaria-textos/internal/domain"
	"github.com/jhoicas/notaria-textos/internal/domain/entity"
	"github.com/jhoicas/notaria-textos/internal/domain/repository"
	pkgnotarial "github.com/jhoicas/notaria-textos/pkg/notarial"
)

var _ repository.ProtocoloRepository = (*Repository)(nil)

type archivo struct {
	Protocolos []protocoloYAML `yaml:"protocolos"`
}

type protocoloYAML struct {
	ID                      string             `yaml:"id"`
	TipoActo                string             `yaml:"tipo_acto"`
	ActoContrato            string             `yaml:"acto_contrato,omitempty"`
	Fecha                   string             `yaml:"fecha"` // AAAA-MM-DD
	NumeroProtocolo         string             `yaml:"numero_protocolo,omitempty"`
	ValorContrato           decimal.Decimal    `yaml:"valor_contrato"`
	AvaluoMunicipal         decimal.Decimal    `yaml:"avaluo_municipal,omitempty"`
	Multa                   decimal.Decimal    `yaml:"multa,omitempty"`
	UbicacionDescripcion    string             `yaml:"ubicacion_descripcion,omitempty"`
	BienInmuebleDescripcion string             `yaml:"bien_inmueble_descripcion,omitempty"`
	BienInmuebleUbicacion   string             `yaml:"bien_inmueble_ubicacion,omitempty"`
	UbicacionParroquia      string             `yaml:"ubicacion_parroquia,omitempty"`
	UbicacionCanton         string             `yaml:"ubicacion_canton,omitempty"`
	UbicacionProvincia      string             `yaml:"ubicacion_provincia,omitempty"`
	Participantes           []participanteYAML `yaml:"participantes"`
}

type participanteYAML struct {
	Orden                 int           `yaml:"orden"`
	Calidad               string        `yaml:"calidad"`
	Cedula                string        `yaml:"cedula"`
	NombreTemporal        string        `yaml:"nombre_temporal,omitempty"`
	CompareceConyugeJunto bool          `yaml:"comparece_conyuge_junto,omitempty"`
	EsApoderado           bool          `yaml:"es_apoderado,omitempty"`
	ActuaPor              string        `yaml:"actua_por,omitempty"`
	Mandante              *mandanteYAML `yaml:"mandante,omitempty"`
	Natural               *naturalYAML  `yaml:"persona_natural,omitempty"`
	Juridica              *juridicaYAML `yaml:"persona_juridica,omitempty"`
}

type mandanteYAML struct {
	Nombre string `yaml:"nombre"`
	Cedula string `yaml:"cedula,omitempty"`
	Genero string `yaml:"genero,omitempty"`
}

type naturalYAML struct {
	Nombres     string `yaml:"nombres"`
	Apellidos   string `yaml:"apellidos"`
	Genero      string `yaml:"genero"`
	EstadoCivil string `yaml:"estado_civil"`
	Profesion   string `yaml:"profesion,omitempty"`
	Email       string `yaml:"email,omitempty"`
	Telefono    string `yaml:"telefono,omitempty"`
	Celular     string `yaml:"celular,omitempty"`
	Domicilio   struct {
		CallePrincipal  string `yaml:"calle_principal"`
		Numero          string `yaml:"numero,omitempty"`
		CalleSecundaria string `yaml:"calle_secundaria,omitempty"`
		Parroquia       string `yaml:"parroquia,omitempty"`
		Canton          string `yaml:"canton,omitempty"`
		Provincia       string `yaml:"provincia,omitempty"`
	} `yaml:"domicilio"`
	Conyuge *struct {
		Nombres              string `yaml:"nombres"`
		Apellidos            string `yaml:"apellidos"`
		NumeroIdentificacion string `yaml:"cedula,omitempty"`
		Profesion            string `yaml:"profesion,omitempty"`
	} `yaml:"conyuge,omitempty"`
}

type juridicaYAML struct {
	RazonSocial        string `yaml:"razon_social"`
	Direccion          string `yaml:"direccion,omitempty"`
	Parroquia          string `yaml:"parroquia,omitempty"`
	Telefono           string `yaml:"telefono,omitempty"`
	Celular            string `yaml:"celular,omitempty"`
	Email              string `yaml:"email,omitempty"`
	RepresentanteLegal struct {
		Nombres     string `yaml:"nombres"`
		Apellidos   string `yaml:"apellidos"`
		Genero      string `yaml:"genero"`
		EstadoCivil string `yaml:"estado_civil,omitempty"`
		Cedula      string `yaml:"cedula,omitempty"`
	} `yaml:"representante_legal"`
}

// Repository protocolos cargados en memoria; solo lectura tras la carga.
type Repository struct {
	ids           []string
	protocolos    map[string]*entity.Protocolo
	participantes map[string][]*entity.Participante
}

// Load abre y lee el archivo YAML.
func Load(path string) (*Repository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abrir fixture: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse lee protocolos desde YAML. Ids duplicados o fechas inválidas son error.
func Parse(r io.Reader) (*Repository, error) {
	var a archivo
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&a); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decodificar fixture: %w", err)
	}

	repo := &Repository{
		protocolos:    make(map[string]*entity.Protocolo, len(a.Protocolos)),
		participantes: make(map[string][]*entity.Participante, len(a.Protocolos)),
	}
	for i, py := range a.Protocolos {
		if py.ID == "" {
			return nil, fmt.Errorf("protocolo #%d sin id: %w", i+1, domain.ErrInvalidInput)
		}
		if _, dup := repo.protocolos[py.ID]; dup {
			return nil, fmt.Errorf("protocolo %s duplicado: %w", py.ID, domain.ErrInvalidInput)
		}
		p, err := py.entidad()
		if err != nil {
			return nil, err
		}
		repo.ids = append(repo.ids, py.ID)
		repo.protocolos[py.ID] = p
		for j := range py.Participantes {
			repo.participantes[py.ID] = append(repo.participantes[py.ID], py.Participantes[j].entidad(py.ID, j))
		}
	}
	return repo, nil
}

// IDs protocolos en el orden del archivo.
func (r *Repository) IDs() []string {
	return append([]string(nil), r.ids...)
}

// GetByID devuelve una copia del protocolo.
func (r *Repository) GetByID(_ context.Context, id string) (*entity.Protocolo, error) {
	p, ok := r.protocolos[id]
	if !ok {
		return nil, fmt.Errorf("protocolo %s: %w", id, domain.ErrNotFound)
	}
	c := *p
	return &c, nil
}

// ListParticipantes devuelve los participantes del protocolo (copias superficiales).
func (r *Repository) ListParticipantes(_ context.Context, protocoloID string) ([]*entity.Participante, error) {
	if _, ok := r.protocolos[protocoloID]; !ok {
		return nil, fmt.Errorf("protocolo %s: %w", protocoloID, domain.ErrNotFound)
	}
	src := r.participantes[protocoloID]
	out := make([]*entity.Participante, len(src))
	for i, p := range src {
		c := *p
		out[i] = &c
	}
	return out, nil
}

func (py protocoloYAML) entidad() (*entity.Protocolo, error) {
	var fecha time.Time
	if py.Fecha != "" {
		t, err := pkgnotarial.ParseDate(py.Fecha)
		if err != nil {
			return nil, fmt.Errorf("protocolo %s: %w: %w", py.ID, domain.ErrInvalidDate, err)
		}
		fecha = t
	}
	return &entity.Protocolo{
		ID:                      py.ID,
		TipoActo:                py.TipoActo,
		ActoContrato:            py.ActoContrato,
		Fecha:                   fecha,
		NumeroProtocolo:         py.NumeroProtocolo,
		ValorContrato:           py.ValorContrato,
		AvaluoMunicipal:         py.AvaluoMunicipal,
		Multa:                   py.Multa,
		UbicacionDescripcion:    py.UbicacionDescripcion,
		BienInmuebleDescripcion: py.BienInmuebleDescripcion,
		BienInmuebleUbicacion:   py.BienInmuebleUbicacion,
		UbicacionParroquia:      py.UbicacionParroquia,
		UbicacionCanton:         py.UbicacionCanton,
		UbicacionProvincia:      py.UbicacionProvincia,
	}, nil
}

func (y participanteYAML) entidad(protocoloID string, i int) *entity.Participante {
	p := &entity.Participante{
		ID:                    fmt.Sprintf("%s-%d", protocoloID, i+1),
		Orden:                 y.Orden,
		Calidad:               y.Calidad,
		Cedula:                y.Cedula,
		NombreTemporal:        y.NombreTemporal,
		CompareceConyugeJunto: y.CompareceConyugeJunto,
		EsApoderado:           y.EsApoderado,
		ActuaPor:              entity.ActuaPor(y.ActuaPor),
	}
	if m := y.Mandante; m != nil {
		p.Mandante = &entity.Mandante{Nombre: m.Nombre, Cedula: m.Cedula, Genero: m.Genero}
	}

	switch {
	case y.Natural != nil:
		n := y.Natural
		pn := &entity.PersonaNatural{
			NumeroIdentificacion: y.Cedula,
			DatosPersonales: entity.DatosPersonales{
				Nombres:     n.Nombres,
				Apellidos:   n.Apellidos,
				Genero:      n.Genero,
				EstadoCivil: n.EstadoCivil,
			},
			Contacto: entity.Contacto{Email: n.Email, Telefono: n.Telefono, Celular: n.Celular},
			Domicilio: entity.Domicilio{
				CallePrincipal:  n.Domicilio.CallePrincipal,
				Numero:          n.Domicilio.Numero,
				CalleSecundaria: n.Domicilio.CalleSecundaria,
				Parroquia:       n.Domicilio.Parroquia,
				Canton:          n.Domicilio.Canton,
				Provincia:       n.Domicilio.Provincia,
			},
			Profesion: n.Profesion,
		}
		if c := n.Conyuge; c != nil {
			pn.Conyuge = &entity.Conyuge{Nombres: c.Nombres, Apellidos: c.Apellidos, NumeroIdentificacion: c.NumeroIdentificacion, Profesion: c.Profesion}
		}
		p.Persona = pn
	case y.Juridica != nil:
		j := y.Juridica
		p.Persona = &entity.PersonaJuridica{
			NumeroIdentificacion: y.Cedula,
			RazonSocial:          j.RazonSocial,
			Direccion:            j.Direccion,
			Parroquia:            j.Parroquia,
			Telefono:             j.Telefono,
			Celular:              j.Celular,
			Email:                j.Email,
			RepresentanteLegal: entity.RepresentanteLegal{
				DatosPersonales: entity.DatosPersonales{
					Nombres:     j.RepresentanteLegal.Nombres,
					Apellidos:   j.RepresentanteLegal.Apellidos,
					Genero:      j.RepresentanteLegal.Genero,
					EstadoCivil: j.RepresentanteLegal.EstadoCivil,
				},
				NumeroIdentificacion: j.RepresentanteLegal.Cedula,
			},
		}
	}
	return p
}
