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

	"github.com/corttex/estoque-api/internal/application/bulkimport"
	"github.com/corttex/estoque-api/internal/application/estoque"
	"github.com/corttex/estoque-api/internal/application/usecase"
	"github.com/corttex/estoque-api/internal/infrastructure/postgres"
	httpRouter "github.com/corttex/estoque-api/internal/interfaces/http"
	"github.com/corttex/estoque-api/pkg/config"
	"github.com/corttex/estoque-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	skuRepo := postgres.NewSKURepository(pool)
	locRepo := postgres.NewLocalizacaoRepository(pool)
	arquivoRepo := postgres.NewArquivoRepository(pool)
	refRepo := postgres.NewReferenciaRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	carregarBaseUC := estoque.NewCarregarBaseUseCase(txRunner, arquivoRepo, locRepo, estoque.Config{
		ArquivosAceitos:     cfg.Ingest.ArquivosAceitos,
		MaxErrosPersistidos: cfg.Ingest.MaxErrosPersistidos,
	}, log)
	importarSKUsUC := bulkimport.NewImportarSKUsUseCase(skuRepo, refRepo, bulkimport.Config{
		TamanhoLote:     cfg.Ingest.TamanhoLote,
		PausaEntreLotes: cfg.Ingest.PausaEntreLotes,
		Timeout:         cfg.Ingest.TimeoutBulk,
	}, log)
	arquivoUC := usecase.NewArquivoUseCase(arquivoRepo)
	revisaoUC := usecase.NewRevisaoUseCase(skuRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    32 * 1024 * 1024,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Estoque API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CarregarBase:     carregarBaseUC,
		ArquivoUC:        arquivoUC,
		ImportarSKUs:     importarSKUsUC,
		RevisaoUC:        revisaoUC,
		MaxErrosResposta: cfg.Ingest.MaxErrosResposta,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}
}
