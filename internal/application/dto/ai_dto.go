package dto

// DescribeItemRequest body para POST /api/ai/describe-item.
type DescribeItemRequest struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// DescribeItemResponse descripción comercial generada para la línea.
type DescribeItemResponse struct {
	Description string `json:"description"`
}
