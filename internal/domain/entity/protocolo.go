package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de acto usados por las reglas de redacción.
const (
	TipoActoCompraventa            = "COMPRAVENTA"
	TipoActoPromesaCompraventa     = "PROMESA_COMPRAVENTA"
	TipoActoDonacion               = "DONACION"
	TipoActoHipoteca               = "HIPOTECA"
	TipoActoVentaVehiculo          = "VENTA_VEHICULO"          // acta de reconocimiento
	TipoActoReconocimientoVehiculo = "RECONOCIMIENTO_VEHICULO" // acta de reconocimiento
)

// Protocolo representa la escritura (protocolo UAFE) sobre la que se redacta el texto.
// Es una copia de solo lectura para una única generación.
type Protocolo struct {
	ID              string
	TipoActo        string
	ActoContrato    string // descripción libre del acto, se usa si TipoActo está vacío
	Fecha           time.Time
	NumeroProtocolo string
	ValorContrato   decimal.Decimal
	AvaluoMunicipal decimal.Decimal
	Multa           decimal.Decimal

	// Ubicación del inmueble
	UbicacionDescripcion    string
	BienInmuebleDescripcion string
	BienInmuebleUbicacion   string // campo heredado, texto completo
	UbicacionParroquia      string
	UbicacionCanton         string
	UbicacionProvincia      string
}
