// Package server implements the serve command: the composition root.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	billingusecases "studyhall/internal/application/billing/usecases"
	entitlementusecases "studyhall/internal/application/entitlement/usecases"
	studyusecases "studyhall/internal/application/study/usecases"
	ticketusecases "studyhall/internal/application/ticket/usecases"
	userusecases "studyhall/internal/application/user/usecases"
	verificationusecases "studyhall/internal/application/verification/usecases"
	"studyhall/internal/infrastructure/auth"
	"studyhall/internal/infrastructure/cache"
	"studyhall/internal/infrastructure/config"
	"studyhall/internal/infrastructure/database"
	"studyhall/internal/infrastructure/email"
	"studyhall/internal/infrastructure/extraction"
	"studyhall/internal/infrastructure/llm"
	"studyhall/internal/infrastructure/persistence/repository"
	"studyhall/internal/infrastructure/pubsub"
	"studyhall/internal/infrastructure/ratelimit"
	"studyhall/internal/infrastructure/scheduler"
	"studyhall/internal/infrastructure/storage"
	httpiface "studyhall/internal/interfaces/http"
	"studyhall/internal/interfaces/http/handlers"
	"studyhall/internal/shared/logger"
	"studyhall/internal/shared/services/markdown"
)

// NewCommand returns the serve command.
func NewCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")

	return cmd
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Errorw("failed to close database", "error", err)
		}
	}()

	redisClient, err := cache.NewClient(&cfg.Redis)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Infrastructure services.
	jwtService := auth.NewJWTService(&cfg.Auth.JWT)
	hasher := auth.NewBcryptHasher(cfg.Auth.Password.BcryptCost)
	mailer := email.NewSMTPService(&cfg.Email)
	llmClient := llm.NewClient(&cfg.LLM)
	extractor := extraction.NewClient(&cfg.Extraction)
	markdownRenderer := markdown.NewRenderer()
	issueLimiter := ratelimit.NewRedisIssueLimiter(
		redisClient,
		time.Duration(cfg.Verification.IssueWindowMinutes)*time.Minute,
		cfg.Verification.IssueMaxPerWindow,
	)
	ticketPublisher := pubsub.NewRedisTicketPublisher(redisClient)
	ticketSubscriber := pubsub.NewTicketEventSubscriber(redisClient, log.Named("pubsub"))

	objectStorage, err := storage.NewS3Storage(ctx, &cfg.Storage)
	if err != nil {
		return err
	}

	// Repositories.
	userRepo := repository.NewUserRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	usageRepo := repository.NewUsageRepository(db)
	codeRepo := repository.NewVerificationCodeRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	artifactRepo := repository.NewArtifactRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// Entitlement.
	adminChecker := auth.NewRoleAdminChecker(userRepo)
	resolvePlan := entitlementusecases.NewResolvePlanUseCase(subscriptionRepo, adminChecker, log.Named("entitlement"))
	checkLimit := entitlementusecases.NewCheckLimitUseCase(resolvePlan, usageRepo, log.Named("entitlement"))
	recordUsage := entitlementusecases.NewRecordUsageUseCase(usageRepo, log.Named("entitlement"))

	// Verification and accounts.
	issueCode := verificationusecases.NewIssueCodeUseCase(codeRepo, issueLimiter, mailer, log.Named("verification"))
	verifyCode := verificationusecases.NewVerifyCodeUseCase(codeRepo, log.Named("verification"))
	register := userusecases.NewRegisterWithPasswordUseCase(userRepo, emailVerifierAdapter{verifyCode}, hasher, log.Named("user"))
	login := userusecases.NewLoginWithPasswordUseCase(userRepo, hasher, jwtService, log.Named("user"))

	// Study tools.
	studyLog := log.Named("study")
	upload := studyusecases.NewUploadDocumentUseCase(documentRepo, objectStorage, extractor, checkLimit, recordUsage, studyLog)
	listDocuments := studyusecases.NewListDocumentsUseCase(documentRepo, studyLog)
	quiz := studyusecases.NewGenerateQuizUseCase(documentRepo, artifactRepo, llmClient, checkLimit, recordUsage, studyLog)
	flashcards := studyusecases.NewGenerateFlashcardsUseCase(documentRepo, artifactRepo, llmClient, checkLimit, recordUsage, studyLog)
	summary := studyusecases.NewGenerateSummaryUseCase(documentRepo, artifactRepo, llmClient, markdownRenderer, checkLimit, recordUsage, studyLog)
	mindMap := studyusecases.NewGenerateMindMapUseCase(documentRepo, artifactRepo, llmClient, checkLimit, recordUsage, studyLog)
	listArtifacts := studyusecases.NewListArtifactsUseCase(artifactRepo, studyLog)
	getArtifact := studyusecases.NewGetArtifactUseCase(artifactRepo, studyLog)

	// Tickets.
	ticketLog := log.Named("ticket")
	createTicket := ticketusecases.NewCreateTicketUseCase(ticketRepo, ticketPublisher, mailer, ticketLog)
	listTickets := ticketusecases.NewListTicketsUseCase(ticketRepo, ticketLog)
	getTicket := ticketusecases.NewGetTicketUseCase(ticketRepo, commentRepo, ticketLog)
	addComment := ticketusecases.NewAddCommentUseCase(ticketRepo, commentRepo, markdownRenderer, ticketLog)
	closeTicket := ticketusecases.NewCloseTicketUseCase(ticketRepo, ticketLog)

	// Billing.
	billingLog := log.Named("billing")
	activateSub := billingusecases.NewActivateSubscriptionUseCase(subscriptionRepo, billingLog)
	cancelSub := billingusecases.NewCancelSubscriptionUseCase(subscriptionRepo, billingLog)
	getMySub := billingusecases.NewGetMySubscriptionUseCase(resolvePlan, subscriptionRepo, usageRepo, billingLog)
	expireLapsed := billingusecases.NewExpireLapsedUseCase(subscriptionRepo, billingLog)

	scheduler.New(expireLapsed, log.Named("scheduler")).Start(ctx)

	router := httpiface.NewRouter(httpiface.RouterConfig{
		Mode:       cfg.Server.Mode,
		JWTService: jwtService,
		Redis:      redisClient,
		Logger:     log.Named("http"),
		Auth:       handlers.NewAuthHandler(issueCode, verifyCode, register, login),
		Study: handlers.NewStudyHandler(
			upload, listDocuments, quiz, flashcards, summary, mindMap, listArtifacts, getArtifact,
		),
		Ticket: handlers.NewTicketHandler(
			createTicket, listTickets, getTicket, addComment, closeTicket, ticketSubscriber,
		),
		Subscription: handlers.NewSubscriptionHandler(getMySub),
		Webhook:      handlers.NewWebhookHandler(activateSub, cancelSub, &cfg.Payment, log.Named("webhook")),
	})

	srv := &http.Server{
		Addr:              cfg.Server.GetAddr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

// emailVerifierAdapter adapts the verify use case to the narrow interface
// the registration use case depends on.
type emailVerifierAdapter struct {
	uc *verificationusecases.VerifyCodeUseCase
}

func (v emailVerifierAdapter) VerifyCode(ctx context.Context, email, code string) error {
	return v.uc.Execute(ctx, verificationusecases.VerifyCodeCommand{Email: email, Code: code})
}
