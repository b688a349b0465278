// Package documento orquesta la generación de textos notariales: lee el protocolo,
// llama al generador, registra logs y métricas y devuelve DTOs.
package documento

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/notaria-textos/internal/application/dto"
	"github.com/jhoicas/notaria-textos/internal/domain/entity"
	"github.com/jhoicas/notaria-textos/internal/domain/notarial"
	"github.com/jhoicas/notaria-textos/internal/domain/repository"
	"github.com/jhoicas/notaria-textos/pkg/logger"
)

const (
	docComparecencia = "comparecencia"
	docEncabezado    = "encabezado"
)

// MetricsRecorder puerto de métricas de generación.
type MetricsRecorder interface {
	ObserveGeneration(documento string, ok bool, warnings int, d time.Duration)
}

// UseCase genera encabezados y comparecencias de protocolos almacenados.
type UseCase struct {
	repo    repository.ProtocoloRepository
	gen     *notarial.Generator
	log     *logger.Logger
	metrics MetricsRecorder
}

// NewUseCase construye el caso de uso. gen, log y metrics pueden ser nil.
func NewUseCase(repo repository.ProtocoloRepository, gen *notarial.Generator, log *logger.Logger, metrics MetricsRecorder) *UseCase {
	if gen == nil {
		gen = notarial.NewGenerator(notarial.DefaultOptions())
	}
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{repo: repo, gen: gen, log: log, metrics: metrics}
}

// GenerarComparecencia genera la comparecencia del protocolo. Los errores de lectura
// (domain.ErrNotFound incluido) se devuelven como error; los de generación van en la respuesta.
func (uc *UseCase) GenerarComparecencia(ctx context.Context, protocoloID string, html bool) (*dto.ComparecenciaResponse, error) {
	inicio := time.Now()
	protocolo, participantes, err := uc.cargar(ctx, protocoloID)
	if err != nil {
		uc.log.Warn().Err(err).Str("protocolo_id", protocoloID).Str("documento", docComparecencia).Msg("no se pudo leer el protocolo")
		return nil, err
	}
	res := uc.gen.GenerateComparecencia(protocolo, participantes, notarial.ComparecenciaOptions{HTMLFormat: html})
	out := comparecenciaResponse(uuid.New().String(), protocoloID, res)
	uc.registrar(docComparecencia, out.RequestID, protocoloID, res.Success, res.Err, res.Warnings, inicio)
	return out, nil
}

// GenerarEncabezado genera el encabezado tabular del protocolo.
func (uc *UseCase) GenerarEncabezado(ctx context.Context, protocoloID string) (*dto.EncabezadoResponse, error) {
	inicio := time.Now()
	protocolo, participantes, err := uc.cargar(ctx, protocoloID)
	if err != nil {
		uc.log.Warn().Err(err).Str("protocolo_id", protocoloID).Str("documento", docEncabezado).Msg("no se pudo leer el protocolo")
		return nil, err
	}
	res := uc.gen.GenerateEncabezado(protocolo, participantes)
	out := encabezadoResponse(uuid.New().String(), protocoloID, res)
	uc.registrar(docEncabezado, out.RequestID, protocoloID, res.Success, res.Err, res.Warnings, inicio)
	return out, nil
}

// GenerarDesdeDatos genera ambos documentos sin pasar por el repositorio.
func (uc *UseCase) GenerarDesdeDatos(protocolo *entity.Protocolo, participantes []*entity.Participante, html bool) *dto.DocumentosResponse {
	var id string
	if protocolo != nil {
		id = protocolo.ID
	}
	requestID := uuid.New().String()

	inicio := time.Now()
	enc := uc.gen.GenerateEncabezado(protocolo, participantes)
	uc.registrar(docEncabezado, requestID, id, enc.Success, enc.Err, enc.Warnings, inicio)

	inicio = time.Now()
	comp := uc.gen.GenerateComparecencia(protocolo, participantes, notarial.ComparecenciaOptions{HTMLFormat: html})
	uc.registrar(docComparecencia, requestID, id, comp.Success, comp.Err, comp.Warnings, inicio)

	return &dto.DocumentosResponse{
		Encabezado:    *encabezadoResponse(requestID, id, enc),
		Comparecencia: *comparecenciaResponse(requestID, id, comp),
	}
}

func (uc *UseCase) cargar(ctx context.Context, id string) (*entity.Protocolo, []*entity.Participante, error) {
	protocolo, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	participantes, err := uc.repo.ListParticipantes(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return protocolo, participantes, nil
}

func (uc *UseCase) registrar(documento, requestID, protocoloID string, ok bool, err error, warnings []string, inicio time.Time) {
	d := time.Since(inicio)
	if uc.metrics != nil {
		uc.metrics.ObserveGeneration(documento, ok, len(warnings), d)
	}
	ev := uc.log.Info()
	if !ok {
		ev = uc.log.Warn().Err(err)
	}
	ev.Str("request_id", requestID).
		Str("protocolo_id", protocoloID).
		Str("documento", documento).
		Bool("success", ok).
		Int("warnings", len(warnings)).
		Dur("duracion", d).
		Msg("documento generado")
}

func comparecenciaResponse(requestID, protocoloID string, r notarial.ComparecenciaResult) *dto.ComparecenciaResponse {
	out := &dto.ComparecenciaResponse{
		RequestID:   requestID,
		ProtocoloID: protocoloID,
		Success:     r.Success,
		Warnings:    r.Warnings,
	}
	if r.Success {
		out.Comparecencia = &r.Comparecencia
		if r.ComparecenciaHTML != "" {
			out.ComparecenciaHTML = &r.ComparecenciaHTML
		}
	} else {
		out.Error = &r.Error
	}
	return out
}

func encabezadoResponse(requestID, protocoloID string, r notarial.EncabezadoResult) *dto.EncabezadoResponse {
	out := &dto.EncabezadoResponse{
		RequestID:   requestID,
		ProtocoloID: protocoloID,
		Success:     r.Success,
		Warnings:    r.Warnings,
	}
	if r.Success {
		out.Encabezado = &r.Encabezado
	} else {
		out.Error = &r.Error
	}
	return out
}
