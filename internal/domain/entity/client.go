package entity

import (
	"strings"
	"time"
)

// Client representa un cliente del catálogo. La identidad para detección de
// duplicados es el par (nombre, email) normalizado, no el ID.
type Client struct {
	ID        string    `json:"id"`
	Details   Details   `json:"details"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IdentityKey devuelve la llave de duplicado (nombre+email, minúsculas, sin espacios laterales).
func (c *Client) IdentityKey() string {
	return ClientIdentityKey(c.Details.Name, c.Details.Email)
}

// ClientIdentityKey normaliza un par (nombre, email) a llave de duplicado.
func ClientIdentityKey(name, email string) string {
	return strings.ToLower(strings.TrimSpace(name)) + "|" + strings.ToLower(strings.TrimSpace(email))
}
