package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Facturador-api/internal/application/backup"
	"github.com/jhoicas/Facturador-api/internal/application/billing"
	"github.com/jhoicas/Facturador-api/internal/application/ports"
	"github.com/jhoicas/Facturador-api/internal/application/usecase"
	infraai "github.com/jhoicas/Facturador-api/internal/infrastructure/ai"
	"github.com/jhoicas/Facturador-api/internal/infrastructure/localstore"
	infrapdf "github.com/jhoicas/Facturador-api/internal/infrastructure/pdf"
	infrasync "github.com/jhoicas/Facturador-api/internal/infrastructure/sync"
	httpRouter "github.com/jhoicas/Facturador-api/internal/interfaces/http"
	"github.com/jhoicas/Facturador-api/pkg/config"
	"github.com/jhoicas/Facturador-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Path).
		Msg("iniciando aplicación")

	store, err := localstore.Open(cfg.Store.Path, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén local")
	}

	companyRepo := localstore.NewCompanyRepository(store)
	clientRepo := localstore.NewClientRepository(store)
	itemRepo := localstore.NewItemRepository(store)
	documentRepo := localstore.NewDocumentRepository(store)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	itemUC := usecase.NewItemUseCase(itemRepo)

	saveUC := billing.NewSaveDocumentUseCase(documentRepo, clientRepo, log)
	docsUC := billing.NewDocumentUseCase(documentRepo)
	convertUC := billing.NewConvertQuotationUseCase(documentRepo)
	paymentUC := billing.NewPaymentUseCase(documentRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := billing.NewPDFUseCase(documentRepo, pdfGenerator)

	anthropicSvc := infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	aiUC := usecase.NewAIUseCase(anthropicSvc)

	// Sincronización remota: opcional, solo si hay base URL configurada.
	var syncSvc ports.SyncService
	if cfg.Sync.BaseURL != "" {
		syncSvc = infrasync.NewHTTPSyncService(cfg.Sync.BaseURL)
		log.Info().Str("base_url", cfg.Sync.BaseURL).Msg("sincronización remota habilitada")
	}
	backupUC := backup.NewUseCase(store, syncSvc)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Facturador API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC: companyUC,
		ClientUC:  clientUC,
		ItemUC:    itemUC,
		AIUC:      aiUC,
		SaveUC:    saveUC,
		DocsUC:    docsUC,
		ConvertUC: convertUC,
		PaymentUC: paymentUC,
		PDFUC:     pdfUC,
		BackupUC:  backupUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
