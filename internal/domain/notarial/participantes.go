package notarial

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/notaria-textos/internal/domain/entity"
	pkgnotarial "github.com/jhoicas/notaria-textos/pkg/notarial"
)

// vista datos de un participante ya normalizados para redactar.
type vista struct {
	juridica       bool
	nombre         string // NOMBRES APELLIDOS (o razón social)
	nombreApellido string // APELLIDOS NOMBRES, para el encabezado
	genero         string
	estadoCivil    string
	cedula         string
	profesion      string
	direccion      pkgnotarial.Direccion
	telefono       string
	email          string
	conyuge        *vistaConyuge
	representante  *vistaRepresentante
}

type vistaConyuge struct {
	nombre    string
	cedula    string
	profesion string
}

type vistaRepresentante struct {
	nombre string
	cedula string
	genero string
}

// vistaDe resuelve la persona del participante con los valores por defecto de la notaría.
func vistaDe(p *entity.Participante, opts Options) vista {
	switch per := p.Persona.(type) {
	case *entity.PersonaNatural:
		if per != nil {
			return vistaNatural(p, per, opts)
		}
	case *entity.PersonaJuridica:
		if per != nil {
			return vistaJuridica(p, per, opts)
		}
	}
	return vistaTemporal(p)
}

func vistaNatural(p *entity.Participante, per *entity.PersonaNatural, opts Options) vista {
	dp := per.DatosPersonales
	v := vista{
		nombre:         nombreCompleto(dp.Nombres, dp.Apellidos),
		nombreApellido: nombreCompleto(dp.Apellidos, dp.Nombres),
		genero:         valorOr(dp.Genero, entity.GeneroMasculino),
		estadoCivil:    valorOr(dp.EstadoCivil, entity.EstadoCivilSoltero),
		cedula:         valorOr(per.NumeroIdentificacion, p.Cedula),
		profesion:      strings.TrimSpace(per.Profesion),
		direccion: pkgnotarial.Direccion{
			CallePrincipal:  strings.TrimSpace(per.Domicilio.CallePrincipal),
			Numero:          strings.TrimSpace(per.Domicilio.Numero),
			CalleSecundaria: strings.TrimSpace(per.Domicilio.CalleSecundaria),
			Parroquia:       strings.TrimSpace(per.Domicilio.Parroquia),
			Canton:          valorOr(per.Domicilio.Canton, opts.CantonPorDefecto),
			Provincia:       valorOr(per.Domicilio.Provincia, opts.ProvinciaPorDefecto),
		},
		telefono: valorOr(per.Contacto.Celular, per.Contacto.Telefono),
		email:    strings.TrimSpace(per.Contacto.Email),
	}
	if c := per.Conyuge; c != nil && strings.TrimSpace(c.Nombres) != "" {
		v.conyuge = &vistaConyuge{
			nombre:    nombreCompleto(c.Nombres, c.Apellidos),
			cedula:    strings.TrimSpace(c.NumeroIdentificacion),
			profesion: strings.TrimSpace(c.Profesion),
		}
	}
	return v
}

func vistaJuridica(p *entity.Participante, per *entity.PersonaJuridica, opts Options) vista {
	rl := per.RepresentanteLegal
	razon := upper(norm.NFC.String(strings.TrimSpace(per.RazonSocial)))
	return vista{
		juridica:       true,
		nombre:         razon,
		nombreApellido: razon,
		genero:         valorOr(rl.Genero, entity.GeneroMasculino),
		estadoCivil:    valorOr(rl.EstadoCivil, entity.EstadoCivilSoltero),
		cedula:         valorOr(per.NumeroIdentificacion, p.Cedula),
		direccion: pkgnotarial.Direccion{
			CallePrincipal: strings.TrimSpace(per.Direccion),
			Parroquia:      strings.TrimSpace(per.Parroquia),
			Canton:         opts.CantonPorDefecto,
			Provincia:      opts.ProvinciaPorDefecto,
		},
		telefono: valorOr(per.Celular, per.Telefono),
		email:    strings.TrimSpace(per.Email),
		representante: &vistaRepresentante{
			nombre: nombreCompleto(rl.Nombres, rl.Apellidos),
			cedula: strings.TrimSpace(rl.NumeroIdentificacion),
			genero: valorOr(rl.Genero, entity.GeneroMasculino),
		},
	}
}

// vistaTemporal persona aún no registrada: solo se conoce lo cargado en el protocolo.
func vistaTemporal(p *entity.Participante) vista {
	nombre := upper(strings.TrimSpace(p.NombreTemporal))
	if nombre == "" && p.Cedula != "" {
		nombre = "CÉDULA: " + p.Cedula
	}
	return vista{
		nombre:         nombre,
		nombreApellido: nombre,
		genero:         entity.GeneroMasculino,
		estadoCivil:    entity.EstadoCivilSoltero,
		cedula:         p.Cedula,
	}
}

// generoMandante género de la persona representada por un apoderado.
func generoMandante(p *entity.Participante) string {
	if p.Mandante != nil && p.Mandante.Genero == entity.GeneroFemenino {
		return entity.GeneroFemenino
	}
	return entity.GeneroMasculino
}

func nombreCompleto(a, b string) string {
	return upper(norm.NFC.String(strings.TrimSpace(strings.TrimSpace(a) + " " + strings.TrimSpace(b))))
}

func valorOr(v, def string) string {
	if s := strings.TrimSpace(v); s != "" {
		return s
	}
	return def
}
