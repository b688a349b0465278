package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics observabilidad de la generación de documentos notariales.
type Metrics struct {
	// Documentos generados por tipo (comparecencia, encabezado) y resultado (ok, fallo)
	Generated *prometheus.CounterVec

	// Advertencias de datos incompletos por tipo de documento
	Warnings *prometheus.CounterVec

	// Duración de la generación, incluida la lectura del protocolo
	Duration *prometheus.HistogramVec
}

// New registra las métricas en reg. Con nil usa el registro por defecto de Prometheus.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		Generated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "notaria_documentos_generados_total",
			Help: "Documentos notariales generados por tipo y resultado",
		}, []string{"documento", "resultado"}),

		Warnings: f.NewCounterVec(prometheus.CounterOpts{
			Name: "notaria_documentos_advertencias_total",
			Help: "Advertencias de datos incompletos emitidas al generar",
		}, []string{"documento"}),

		Duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "notaria_documentos_duracion_segundos",
			Help:    "Duración de la generación de documentos notariales",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"documento"}),
	}
}

// ObserveGeneration registra una generación: resultado, advertencias y duración.
func (m *Metrics) ObserveGeneration(documento string, ok bool, warnings int, d time.Duration) {
	if m == nil {
		return
	}
	resultado := "ok"
	if !ok {
		resultado = "fallo"
	}
	m.Generated.WithLabelValues(documento, resultado).Inc()
	if warnings > 0 {
		m.Warnings.WithLabelValues(documento).Add(float64(warnings))
	}
	m.Duration.WithLabelValues(documento).Observe(d.Seconds())
}
