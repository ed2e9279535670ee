// Package bootstrap assembles the application: configuration, storage,
// provider clients, services and the HTTP router.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"careerdraft-backend/internal/account"
	googleauth "careerdraft-backend/internal/auth"
	"careerdraft-backend/internal/generation"
	"careerdraft-backend/internal/llm"
	"careerdraft-backend/internal/llm/groq"
	"careerdraft-backend/internal/mail"
	"careerdraft-backend/internal/profile"
	"careerdraft-backend/internal/render"
	"careerdraft-backend/internal/saveddocs"
	"careerdraft-backend/internal/services/health"
	"careerdraft-backend/internal/shared/config"
	"careerdraft-backend/internal/shared/server"
	"careerdraft-backend/internal/shared/storage/db"
	"careerdraft-backend/internal/usage"
)

// App holds shared dependencies and the assembled router.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	ProfileRepo   profile.Repo
	SavedDocsRepo saveddocs.Repo

	ProfileService    *profile.Service
	UsageService      *usage.Service
	SavedDocsService  *saveddocs.Service
	GenerationService *generation.Service
	AccountService    *account.Service
	MailService       *mail.Service
	PDFService        *render.PDFService
	HealthService     *health.Service

	GenerationHandler *generation.Handler
	ProfileHandler    *profile.Handler
	UsageHandler      *usage.Handler
	SavedDocsHandler  *saveddocs.Handler
	MailHandler       *mail.Handler
	AccountHandler    *account.Handler
	GoogleAuth        *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, DB: sqlDB}
	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            app.Config,
		Health:            app.HealthService,
		GenerationHandler: app.GenerationHandler,
		ProfileHandler:    app.ProfileHandler,
		UsageHandler:      app.UsageHandler,
		SavedDocsHandler:  app.SavedDocsHandler,
		MailHandler:       app.MailHandler,
		AccountHandler:    app.AccountHandler,
		GoogleAuth:        app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildServices(app *App) error {
	cfg := app.Config

	var profileRepo profile.Repo
	var docsRepo saveddocs.Repo
	var usageSvc *usage.Service
	if app.DB != nil {
		profileRepo = &profile.PGRepo{DB: app.DB}
		docsRepo = &saveddocs.PGRepo{DB: app.DB}
		usageSvc = usage.NewPostgresService(usage.NewPGStore(app.DB))
	} else {
		profileRepo = profile.NewMemoryRepo()
		docsRepo = saveddocs.NewMemoryRepo()
		usageSvc = usage.NewService()
	}

	profileSvc := profile.NewService(profileRepo)
	docsSvc := saveddocs.NewService(docsRepo)

	llmClient := llm.Client(llm.PlaceholderClient{})
	if cfg.GroqAPIKey != "" {
		groqClient, err := groq.NewClient(groq.Config{
			APIKey:      cfg.GroqAPIKey,
			BaseURL:     cfg.GroqBaseURL,
			Model:       cfg.LLMModel,
			Temperature: cfg.LLMTemperature,
			MaxTokens:   cfg.LLMMaxTokens,
			TopP:        cfg.LLMTopP,
			Timeout:     cfg.LLMTimeout,
		})
		if err != nil {
			return err
		}
		llmClient = groqClient
	} else {
		log.Printf("bootstrap: GROQ_API_KEY empty; generation endpoint will refuse requests")
	}

	generationSvc := generation.NewService(llmClient, profileSvc, usageSvc)

	mailSvc := mail.NewService(mail.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.EmailFrom,
	})
	pdfSvc := render.NewPDFService(cfg.ChromePath)

	accountSvc := account.NewService(docsRepo, usageSvc)

	app.ProfileRepo = profileRepo
	app.SavedDocsRepo = docsRepo
	app.ProfileService = profileSvc
	app.UsageService = usageSvc
	app.SavedDocsService = docsSvc
	app.GenerationService = generationSvc
	app.AccountService = accountSvc
	app.MailService = mailSvc
	app.PDFService = pdfSvc
	app.HealthService = health.NewService(app.DB)

	app.GenerationHandler = generation.NewHandler(generationSvc)
	app.ProfileHandler = profile.NewHandler(profileSvc)
	app.UsageHandler = usage.NewHandler(usageSvc)
	app.SavedDocsHandler = saveddocs.NewHandler(docsSvc, pdfSvc, mailSvc)
	app.MailHandler = mail.NewHandler(mailSvc)
	app.AccountHandler = account.NewHandler(accountSvc)
	app.GoogleAuth = googleauth.NewGoogleService(
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleRedirectURL,
		cfg.UIRedirectURL,
	)

	return nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
