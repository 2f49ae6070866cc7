package bootstrap

import (
	"context"
	"fmt"
	"time"

	"isogen/internal/config"
	"isogen/internal/core/ports"
	"isogen/internal/core/usecase"
	"isogen/internal/infrastructure/assistant/canned"
	"isogen/internal/infrastructure/assistant/remote"
	"isogen/internal/infrastructure/export/htmldoc"
	"isogen/internal/infrastructure/export/xlsx"
	"isogen/internal/infrastructure/identity"
	"isogen/internal/infrastructure/queue/nats"
	"isogen/internal/infrastructure/repository/postgres"
	"isogen/internal/infrastructure/resilience"
)

type App struct {
	Config config.Config

	Queue    ports.MessageQueue
	Repo     ports.DocumentRepository
	Verifier ports.IdentityVerifier

	DocumentUC ports.DocumentService
	IntakeUC   ports.IntakeService
	ChatUC     ports.ChatService
	ExportUC   ports.ExportService
	ReplyUC    ports.ReplyProcessor

	closeFn func()
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	db, err := postgres.OpenDB(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	repo := postgres.NewDocumentRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	chatStore := postgres.NewChatRepository(db)

	executor := resilience.NewExecutor(resilience.DefaultConfig())
	queue, err := nats.NewWithOptions(cfg.NATSURL, cfg.NATSSubject, nats.Options{
		ResilienceExecutor: executor,
	})
	if err != nil {
		return nil, fmt.Errorf("init message queue: %w", err)
	}

	verifier := identity.NewVerifier(
		cfg.AuthEndpoint,
		time.Duration(cfg.AuthTimeoutMS)*time.Millisecond,
		cfg.AuthLocalFallback,
	)

	responder := canned.New()
	if cfg.ImproverEnabled && cfg.ImproverURL != "" {
		responder = canned.NewWithImprover(remote.NewImprover(cfg.ImproverURL, executor))
	}

	documentUC := usecase.NewDocumentUseCase(repo)
	intakeUC := usecase.NewIntakeUseCase(repo)
	chatUC := usecase.NewChatUseCase(repo, chatStore, queue)
	exportUC := usecase.NewExportUseCase(repo, htmldoc.New(), xlsx.New())
	replyUC := usecase.NewReplyUseCase(chatStore, responder, time.Duration(cfg.TypingDelayMS)*time.Millisecond)

	return &App{
		Config:   cfg,
		Queue:    queue,
		Repo:     repo,
		Verifier: verifier,

		DocumentUC: documentUC,
		IntakeUC:   intakeUC,
		ChatUC:     chatUC,
		ExportUC:   exportUC,
		ReplyUC:    replyUC,

		closeFn: func() {
			queue.Close()
			_ = db.Close()
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
