package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturador-api/internal/application/billing"
	"github.com/jhoicas/Facturador-api/internal/application/dto"
)

// DocumentHandler maneja las peticiones HTTP de facturas y cotizaciones.
// Las rutas por tipo usan el plural del registro: invoices / quotations.
type DocumentHandler struct {
	save    *billing.SaveDocumentUseCase
	docs    *billing.DocumentUseCase
	convert *billing.ConvertQuotationUseCase
	payment *billing.PaymentUseCase
	pdf     *billing.PDFUseCase
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(
	save *billing.SaveDocumentUseCase,
	docs *billing.DocumentUseCase,
	convert *billing.ConvertQuotationUseCase,
	payment *billing.PaymentUseCase,
	pdf *billing.PDFUseCase,
) *DocumentHandler {
	return &DocumentHandler{save: save, docs: docs, convert: convert, payment: payment, pdf: pdf}
}

// Save POST /api/documents
// Crea (sin ID) o actualiza (con ID) un documento en un solo compromiso.
func (h *DocumentHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	result, err := h.save.Save(in)
	if err != nil {
		return respondError(c, err)
	}
	status := fiber.StatusOK
	if in.ID == "" {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(result)
}

// List GET /api/documents/:type
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	docType, ok := parseDocType(c)
	if !ok {
		return badDocType(c)
	}
	list, err := h.docs.List(docType)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/documents/:type/:id
func (h *DocumentHandler) GetByID(c *fiber.Ctx) error {
	docType, ok := parseDocType(c)
	if !ok {
		return badDocType(c)
	}
	doc, err := h.docs.Get(docType, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(doc)
}

// LoadForEdit GET /api/documents/:type/:id/edit
func (h *DocumentHandler) LoadForEdit(c *fiber.Ctx) error {
	docType, ok := parseDocType(c)
	if !ok {
		return badDocType(c)
	}
	snapshot, err := h.docs.LoadForEdit(docType, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(snapshot)
}

// Delete DELETE /api/documents/:type/:id?confirm=true
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	docType, ok := parseDocType(c)
	if !ok {
		return badDocType(c)
	}
	if err := h.docs.Delete(docType, c.Params("id"), confirmQuery(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// NextNumber GET /api/documents/:type/next-number
func (h *DocumentHandler) NextNumber(c *fiber.Ctx) error {
	docType, ok := parseDocType(c)
	if !ok {
		return badDocType(c)
	}
	next, err := h.docs.NextNumber(docType)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(next)
}

// ShareText GET /api/documents/:type/:id/share-text
func (h *DocumentHandler) ShareText(c *fiber.Ctx) error {
	docType, ok := parseDocType(c)
	if !ok {
		return badDocType(c)
	}
	text, err := h.docs.ShareText(docType, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(text)
}

// PDF GET /api/documents/:type/:id/pdf
func (h *DocumentHandler) PDF(c *fiber.Ctx) error {
	docType, ok := parseDocType(c)
	if !ok {
		return badDocType(c)
	}
	data, filename, err := h.pdf.Generate(c.Context(), docType, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// Convert POST /api/documents/quotations/:id/convert
func (h *DocumentHandler) Convert(c *fiber.Ctx) error {
	var in dto.ConvertQuotationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	invoice, err := h.convert.Convert(c.Params("id"), in.Confirm)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// RecordPayment POST /api/documents/invoices/:id/payments
func (h *DocumentHandler) RecordPayment(c *fiber.Ctx) error {
	var in dto.RecordPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	result, err := h.payment.Record(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}
