package localstore

import (
	"fmt"

	"github.com/jhoicas/Facturador-api/internal/domain"
	"github.com/jhoicas/Facturador-api/internal/domain/billing"
	"github.com/jhoicas/Facturador-api/internal/domain/entity"
)

// DocumentRepository implementa repository.DocumentRepository sobre el Store.
// Cada registro (facturas, cotizaciones) es un arreglo JSON bajo su llave;
// toda mutación reescribe el arreglo completo (reemplazo por valor entero).
type DocumentRepository struct {
	store *Store
}

// NewDocumentRepository construye el repositorio.
func NewDocumentRepository(store *Store) *DocumentRepository {
	return &DocumentRepository{store: store}
}

func documentKey(t entity.DocumentType) (string, error) {
	switch t {
	case entity.DocumentTypeInvoice:
		return KeyInvoices, nil
	case entity.DocumentTypeQuotation:
		return KeyQuotations, nil
	}
	return "", fmt.Errorf("localstore: tipo de documento desconocido %q: %w", t, domain.ErrInvalidInput)
}

// List devuelve el registro completo en su orden almacenado.
func (r *DocumentRepository) List(docType entity.DocumentType) ([]*entity.SavedDocument, error) {
	key, err := documentKey(docType)
	if err != nil {
		return nil, err
	}
	var docs []*entity.SavedDocument
	if err := r.store.Get(key, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// GetByID busca por identificador dentro del registro del tipo.
func (r *DocumentRepository) GetByID(docType entity.DocumentType, id string) (*entity.SavedDocument, error) {
	docs, err := r.List(docType)
	if err != nil {
		return nil, err
	}
	for _, d := range docs {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, nil
}

// GetByNumber busca por número (case-insensitive, sin espacios laterales).
func (r *DocumentRepository) GetByNumber(docType entity.DocumentType, number string) (*entity.SavedDocument, error) {
	docs, err := r.List(docType)
	if err != nil {
		return nil, err
	}
	for _, d := range docs {
		if billing.SameNumber(d.DocumentNumber, number) {
			return d, nil
		}
	}
	return nil, nil
}

// Create antepone el documento a su registro.
func (r *DocumentRepository) Create(doc *entity.SavedDocument) error {
	key, err := documentKey(doc.DocumentType)
	if err != nil {
		return err
	}
	return r.store.Update(func(tx *Tx) error {
		var docs []*entity.SavedDocument
		if err := tx.Get(key, &docs); err != nil {
			return err
		}
		docs = append([]*entity.SavedDocument{doc}, docs...)
		return tx.Set(key, docs)
	})
}

// Update reemplaza el documento con el mismo ID preservando su posición.
func (r *DocumentRepository) Update(doc *entity.SavedDocument) error {
	key, err := documentKey(doc.DocumentType)
	if err != nil {
		return err
	}
	return r.store.Update(func(tx *Tx) error {
		var docs []*entity.SavedDocument
		if err := tx.Get(key, &docs); err != nil {
			return err
		}
		for i, d := range docs {
			if d.ID == doc.ID {
				docs[i] = doc
				return tx.Set(key, docs)
			}
		}
		return domain.ErrNotFound
	})
}

// Delete elimina por ID dentro del registro del tipo.
func (r *DocumentRepository) Delete(docType entity.DocumentType, id string) error {
	key, err := documentKey(docType)
	if err != nil {
		return err
	}
	return r.store.Update(func(tx *Tx) error {
		var docs []*entity.SavedDocument
		if err := tx.Get(key, &docs); err != nil {
			return err
		}
		for i, d := range docs {
			if d.ID == id {
				docs = append(docs[:i], docs[i+1:]...)
				return tx.Set(key, docs)
			}
		}
		return domain.ErrNotFound
	})
}
