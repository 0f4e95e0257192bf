package repository

import "github.com/jhoicas/Facturador-api/internal/domain/entity"

// DocumentRepository define el puerto de persistencia para los dos registros
// de documentos (facturas y cotizaciones). Cada mutación se refleja de forma
// síncrona en el almacén durable; no hay escrituras diferidas.
type DocumentRepository interface {
	// List devuelve el registro completo en su orden almacenado
	// (los documentos nuevos se insertan al inicio).
	List(docType entity.DocumentType) ([]*entity.SavedDocument, error)
	GetByID(docType entity.DocumentType, id string) (*entity.SavedDocument, error)
	// GetByNumber compara case-insensitive y sin espacios laterales,
	// solo dentro del registro del tipo dado.
	GetByNumber(docType entity.DocumentType, number string) (*entity.SavedDocument, error)
	// Create antepone el documento a su registro.
	Create(doc *entity.SavedDocument) error
	// Update reemplaza el documento con el mismo ID, preservando su posición.
	Update(doc *entity.SavedDocument) error
	Delete(docType entity.DocumentType, id string) error
}
