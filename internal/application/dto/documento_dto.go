package dto

// ComparecenciaResponse resultado de la comparecencia; los textos son null cuando fallan.
type ComparecenciaResponse struct {
	RequestID         string   `json:"request_id"`
	ProtocoloID       string   `json:"protocolo_id"`
	Success           bool     `json:"success"`
	Comparecencia     *string  `json:"comparecencia"`
	ComparecenciaHTML *string  `json:"comparecencia_html"`
	Error             *string  `json:"error"`
	Warnings          []string `json:"warnings,omitempty"`
}

// EncabezadoResponse resultado del encabezado.
type EncabezadoResponse struct {
	RequestID   string   `json:"request_id"`
	ProtocoloID string   `json:"protocolo_id"`
	Success     bool     `json:"success"`
	Encabezado  *string  `json:"encabezado"`
	Error       *string  `json:"error"`
	Warnings    []string `json:"warnings,omitempty"`
}

// DocumentosResponse ambos documentos generados a partir de datos en memoria.
type DocumentosResponse struct {
	Encabezado    EncabezadoResponse    `json:"encabezado"`
	Comparecencia ComparecenciaResponse `json:"comparecencia"`
}
