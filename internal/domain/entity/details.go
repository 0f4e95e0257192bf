package entity

// Details datos postales y de contacto. Se embebe POR VALOR dentro de Company,
// Client y de cada documento guardado: editar un cliente después de guardar un
// documento no altera el snapshot del documento.
type Details struct {
	Name          string `json:"name"`
	Address       string `json:"address,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	BankName      string `json:"bank_name,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	Website       string `json:"website,omitempty"`
	TaxID         string `json:"tax_id,omitempty"`
}
