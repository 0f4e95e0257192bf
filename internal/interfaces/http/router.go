package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturador-api/internal/application/backup"
	"github.com/jhoicas/Facturador-api/internal/application/billing"
	"github.com/jhoicas/Facturador-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC *usecase.CompanyUseCase
	ClientUC  *usecase.ClientUseCase
	ItemUC    *usecase.ItemUseCase
	AIUC      *usecase.AIUseCase
	SaveUC    *billing.SaveDocumentUseCase
	DocsUC    *billing.DocumentUseCase
	ConvertUC *billing.ConvertQuotationUseCase
	PaymentUC *billing.PaymentUseCase
	PDFUC     *billing.PDFUseCase
	BackupUC  *backup.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Companies. Las rutas fijas (/active) van antes de /:id.
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/active", companyHandler.GetActive)
	companies.Put("/active", companyHandler.SetActive)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)

	// Clients
	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/delete-batch", clientHandler.DeleteBatch)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Items
	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/delete-batch", itemHandler.DeleteBatch)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Documents. Guardar no lleva tipo en la ruta (va en el body);
	// el resto opera sobre un registro concreto (invoices | quotations).
	documents := api.Group("/documents")
	documentHandler := NewDocumentHandler(deps.SaveUC, deps.DocsUC, deps.ConvertUC, deps.PaymentUC, deps.PDFUC)
	documents.Post("/", documentHandler.Save)
	documents.Get("/:type/next-number", documentHandler.NextNumber)
	documents.Post("/quotations/:id/convert", documentHandler.Convert)
	documents.Post("/invoices/:id/payments", documentHandler.RecordPayment)
	documents.Get("/:type", documentHandler.List)
	documents.Get("/:type/:id", documentHandler.GetByID)
	documents.Get("/:type/:id/edit", documentHandler.LoadForEdit)
	documents.Get("/:type/:id/share-text", documentHandler.ShareText)
	documents.Get("/:type/:id/pdf", documentHandler.PDF)
	documents.Delete("/:type/:id", documentHandler.Delete)

	// Backup y sincronización
	backupGroup := api.Group("/backup")
	backupHandler := NewBackupHandler(deps.BackupUC)
	backupGroup.Get("/export", backupHandler.Export)
	backupGroup.Post("/import", backupHandler.Import)
	backupGroup.Post("/sync/:userId/push", backupHandler.Push)
	backupGroup.Get("/sync/:userId/pull", backupHandler.Pull)

	// AI
	ai := api.Group("/ai")
	aiHandler := NewAIHandler(deps.AIUC)
	ai.Post("/describe-item", aiHandler.DescribeItem)
}
