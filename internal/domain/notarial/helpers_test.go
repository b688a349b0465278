package notarial_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/notaria-textos/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func protocoloCompraventa() *entity.Protocolo {
	return &entity.Protocolo{
		ID:                   "p-1",
		TipoActo:             entity.TipoActoCompraventa,
		Fecha:                time.Date(2026, time.January, 14, 0, 0, 0, 0, time.Local),
		ValorContrato:        decimal.RequireFromString("85000"),
		AvaluoMunicipal:      decimal.RequireFromString("72500.5"),
		UbicacionDescripcion: "LOTE 5 URBANIZACIÓN LOS PINOS",
		UbicacionParroquia:   "CONOCOTO",
		UbicacionCanton:      "QUITO",
		UbicacionProvincia:   "PICHINCHA",
	}
}

// natural participante con persona natural registrada y datos completos.
func natural(orden int, calidad, nombres, apellidos, genero, estadoCivil, cedula string) *entity.Participante {
	return &entity.Participante{
		ID:      cedula,
		Orden:   orden,
		Calidad: calidad,
		Cedula:  cedula,
		Persona: &entity.PersonaNatural{
			NumeroIdentificacion: cedula,
			DatosPersonales: entity.DatosPersonales{
				Nombres:     nombres,
				Apellidos:   apellidos,
				Genero:      genero,
				EstadoCivil: estadoCivil,
			},
			Contacto:  entity.Contacto{Celular: "0991234567"},
			Domicilio: entity.Domicilio{CallePrincipal: "av. Amazonas", Numero: "N70-294", CalleSecundaria: "Pereira", Parroquia: "Iñaquito"},
			Profesion: "Ingeniero",
		},
	}
}

func conyugeJunto(p *entity.Participante) *entity.Participante {
	p.CompareceConyugeJunto = true
	return p
}

// escenarioCuatro comprador, pareja de vendedores y vendedor divorciado.
func escenarioCuatro() []*entity.Participante {
	return []*entity.Participante{
		natural(1, entity.CalidadComprador, "Ana", "Torres", entity.GeneroFemenino, entity.EstadoCivilSoltero, "1711111111"),
		conyugeJunto(natural(2, entity.CalidadVendedor, "Luis", "Mora", entity.GeneroMasculino, entity.EstadoCivilCasado, "1722222222")),
		conyugeJunto(natural(3, entity.CalidadVendedor, "Rosa", "Vega", entity.GeneroFemenino, entity.EstadoCivilCasado, "1733333333")),
		natural(4, entity.CalidadVendedor, "Pedro", "Ruiz", entity.GeneroMasculino, entity.EstadoCivilDivorciado, "1744444444"),
	}
}
