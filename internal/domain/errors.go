package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")

	// Generación de textos notariales.
	ErrUnsupportedActType = errors.New("el tipo de acto no admite este documento")
	ErrEmptyPartyList     = errors.New("no hay participantes en el protocolo")
	ErrInvalidDate        = errors.New("fecha del protocolo inválida")
)
