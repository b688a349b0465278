package repository

import (
	"context"

	"github.com/jhoicas/notaria-textos/internal/domain/entity"
)

// ProtocoloRepository define el puerto de lectura de protocolos y sus participantes.
// GetByID devuelve domain.ErrNotFound si el protocolo no existe.
type ProtocoloRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Protocolo, error)
	ListParticipantes(ctx context.Context, protocoloID string) ([]*entity.Participante, error)
}
