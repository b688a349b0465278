package postgres

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/notaria-textos/internal/domain/entity"
)

// Forma de los JSONB de personas_registradas (formulario UAFE).

type datosPersonaNatural struct {
	DatosPersonales struct {
		Nombres     string `json:"nombres"`
		Apellidos   string `json:"apellidos"`
		Genero      string `json:"genero"`
		EstadoCivil string `json:"estadoCivil"`
	} `json:"datosPersonales"`
	Contacto struct {
		Email    string `json:"email"`
		Telefono string `json:"telefono"`
		Celular  string `json:"celular"`
	} `json:"contacto"`
	Direccion struct {
		CallePrincipal  string `json:"callePrincipal"`
		Numero          string `json:"numero"`
		CalleSecundaria string `json:"calleSecundaria"`
		Parroquia       string `json:"parroquia"`
		Canton          string `json:"canton"`
		Provincia       string `json:"provincia"`
	} `json:"direccion"`
	InformacionLaboral struct {
		ProfesionOcupacion string `json:"profesionOcupacion"`
	} `json:"informacionLaboral"`
	Conyuge *struct {
		Nombres              string `json:"nombres"`
		Apellidos            string `json:"apellidos"`
		NumeroIdentificacion string `json:"numeroIdentificacion"`
		ProfesionOcupacion   string `json:"profesionOcupacion"`
	} `json:"conyuge"`
}

type datosPersonaJuridica struct {
	Compania struct {
		RazonSocial      string `json:"razonSocial"`
		Direccion        string `json:"direccion"`
		Parroquia        string `json:"parroquia"`
		TelefonoCompania string `json:"telefonoCompania"`
		CelularCompania  string `json:"celularCompania"`
		EmailCompania    string `json:"emailCompania"`
	} `json:"compania"`
	RepresentanteLegal struct {
		Nombres              string `json:"nombres"`
		Apellidos            string `json:"apellidos"`
		Genero               string `json:"genero"`
		EstadoCivil          string `json:"estadoCivil"`
		NumeroIdentificacion string `json:"numeroIdentificacion"`
	} `json:"representanteLegal"`
}

// decodePersona arma la persona a partir del tipo y el JSONB correspondiente.
// Sin tipo (persona no registrada) devuelve nil.
func decodePersona(tipo, cedula string, natural, juridica []byte) (entity.Persona, error) {
	switch tipo {
	case "":
		return nil, nil
	case entity.TipoPersonaNatural:
		var d datosPersonaNatural
		if len(natural) > 0 {
			if err := json.Unmarshal(natural, &d); err != nil {
				return nil, fmt.Errorf("datos persona natural: %w", err)
			}
		}
		pn := &entity.PersonaNatural{
			NumeroIdentificacion: cedula,
			DatosPersonales: entity.DatosPersonales{
				Nombres:     d.DatosPersonales.Nombres,
				Apellidos:   d.DatosPersonales.Apellidos,
				Genero:      d.DatosPersonales.Genero,
				EstadoCivil: d.DatosPersonales.EstadoCivil,
			},
			Contacto: entity.Contacto{Email: d.Contacto.Email, Telefono: d.Contacto.Telefono, Celular: d.Contacto.Celular},
			Domicilio: entity.Domicilio{
				CallePrincipal:  d.Direccion.CallePrincipal,
				Numero:          d.Direccion.Numero,
				CalleSecundaria: d.Direccion.CalleSecundaria,
				Parroquia:       d.Direccion.Parroquia,
				Canton:          d.Direccion.Canton,
				Provincia:       d.Direccion.Provincia,
			},
			Profesion: d.InformacionLaboral.ProfesionOcupacion,
		}
		if c := d.Conyuge; c != nil {
			pn.Conyuge = &entity.Conyuge{
				Nombres:              c.Nombres,
				Apellidos:            c.Apellidos,
				NumeroIdentificacion: c.NumeroIdentificacion,
				Profesion:            c.ProfesionOcupacion,
			}
		}
		return pn, nil
	case entity.TipoPersonaJuridica:
		var d datosPersonaJuridica
		if len(juridica) > 0 {
			if err := json.Unmarshal(juridica, &d); err != nil {
				return nil, fmt.Errorf("datos persona jurídica: %w", err)
			}
		}
		rl := d.RepresentanteLegal
		return &entity.PersonaJuridica{
			NumeroIdentificacion: cedula,
			RazonSocial:          d.Compania.RazonSocial,
			Direccion:            d.Compania.Direccion,
			Parroquia:            d.Compania.Parroquia,
			Telefono:             d.Compania.TelefonoCompania,
			Celular:              d.Compania.CelularCompania,
			Email:                d.Compania.EmailCompania,
			RepresentanteLegal: entity.RepresentanteLegal{
				DatosPersonales: entity.DatosPersonales{
					Nombres:     rl.Nombres,
					Apellidos:   rl.Apellidos,
					Genero:      rl.Genero,
					EstadoCivil: rl.EstadoCivil,
				},
				NumeroIdentificacion: rl.NumeroIdentificacion,
			},
		}, nil
	default:
		return nil, fmt.Errorf("tipo de persona desconocido %q", tipo)
	}
}
