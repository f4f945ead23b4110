package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "mtr_backend/docs" // This will be auto-generated
	"mtr_backend/internal/adapter/http/handlers"
	repository2 "mtr_backend/internal/adapter/persistence/repository"
	"mtr_backend/internal/infrastructure/config"
	"mtr_backend/internal/infrastructure/database"
	"mtr_backend/internal/infrastructure/mail"
	"mtr_backend/internal/infrastructure/pdf"
	"mtr_backend/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.New()

// Run will start the server
func Run() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to build logger: %v", err))
	}
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration", zap.Error(err))
	}

	setMiddlewares(log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	waiters, err := getRoutes(cfg, log)
	if err != nil {
		log.Fatal("failed to wire application", zap.Error(err))
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server listening", zap.Int("port", cfg.HTTP.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to startup the application", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("server shutdown", zap.Error(err))
	}

	// Let in-flight finalize goroutines (PDF render + email) drain before
	// the process exits.
	for _, wait := range waiters {
		wait()
	}
	log.Info("shutdown complete")
}

func getRoutes(cfg *config.Config, log *zap.Logger) ([]func(), error) {
	ddb, err := database.NewDynamoDBClient(context.Background(), cfg.AWS)
	if err != nil {
		return nil, fmt.Errorf("dynamodb client: %w", err)
	}

	requestRepo := repository2.NewQuoteRequestDynamoRepository(ddb)
	quoteRepo := repository2.NewIssuedQuoteDynamoRepository(ddb)
	complaintRepo := repository2.NewComplaintDynamoRepository(ddb)
	counterRepo := repository2.NewCounterDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)
	articleRepo := repository2.NewArticleDynamoRepository(ddb)

	renderer := pdf.NewRenderer()
	notifier, err := mail.NewNotifier(cfg.Mail, log)
	if err != nil {
		return nil, fmt.Errorf("mail notifier: %w", err)
	}

	settings := usecase.IssuanceSettings{
		AdminEmail:       cfg.Mail.AdminEmail,
		FromAddress:      cfg.Mail.From,
		AttachmentBudget: cfg.Issuance.AttachmentBudget,
		CommitTimeout:    cfg.Issuance.CommitTimeout,
		FinalizeTimeout:  cfg.Issuance.FinalizeTimeout,
	}

	requestUseCase := usecase.NewQuoteRequestUseCase(requestRepo, counterRepo, userRepo, renderer, notifier, settings, log)
	complaintUseCase := usecase.NewComplaintUseCase(complaintRepo, userRepo, renderer, notifier, settings, log)
	quoteUseCase := usecase.NewIssuedQuoteUseCase(quoteRepo, requestRepo, articleRepo, userRepo, counterRepo, renderer, notifier, settings, log)
	reconciliationUseCase := usecase.NewReconciliationUseCase(requestRepo, quoteRepo)

	requestHandler := handlers.NewQuoteRequestHandler(requestUseCase, reconciliationUseCase)
	complaintHandler := handlers.NewComplaintHandler(complaintUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuotingRoutes(v1, requestHandler, complaintHandler, quoteHandler)

	return []func(){requestUseCase.Wait, complaintUseCase.Wait}, nil
}

func setMiddlewares(log *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
