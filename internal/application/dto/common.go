package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DeleteBatchRequest body para eliminaciones por lote.
// Toda eliminación exige confirmación explícita del usuario.
type DeleteBatchRequest struct {
	IDs     []string `json:"ids"`
	Confirm bool     `json:"confirm"`
}

// DeleteBatchResponse resultado de una eliminación por lote.
type DeleteBatchResponse struct {
	Deleted int `json:"deleted"`
}
