package dto

import "encoding/json"

// BackupPayload respaldo completo o parcial: la unión de las cinco llaves del
// almacén como un solo objeto JSON. En un import solo las llaves presentes
// sobrescriben su colección; las ausentes no se tocan.
type BackupPayload struct {
	Companies       json.RawMessage `json:"companies,omitempty"`
	Clients         json.RawMessage `json:"clients,omitempty"`
	Items           json.RawMessage `json:"items,omitempty"`
	SavedInvoices   json.RawMessage `json:"savedInvoices,omitempty"`
	SavedQuotations json.RawMessage `json:"savedQuotations,omitempty"`
}

// SetKey asigna el arreglo crudo de una llave reconocida del almacén.
// Llaves desconocidas se ignoran (el import valida antes de llegar aquí).
func (p *BackupPayload) SetKey(key string, raw json.RawMessage) {
	switch key {
	case "companies":
		p.Companies = raw
	case "clients":
		p.Clients = raw
	case "items":
		p.Items = raw
	case "savedInvoices":
		p.SavedInvoices = raw
	case "savedQuotations":
		p.SavedQuotations = raw
	}
}

// AsMap proyecta el payload a mapa llave → arreglo crudo, omitiendo ausentes.
func (p *BackupPayload) AsMap() map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, 5)
	put := func(key string, raw json.RawMessage) {
		if len(raw) > 0 {
			out[key] = raw
		}
	}
	put("companies", p.Companies)
	put("clients", p.Clients)
	put("items", p.Items)
	put("savedInvoices", p.SavedInvoices)
	put("savedQuotations", p.SavedQuotations)
	return out
}

// ImportResult llaves aplicadas por un import.
type ImportResult struct {
	ImportedKeys []string `json:"imported_keys"`
}
