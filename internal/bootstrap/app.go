package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"legalassist/internal/ai"
	"legalassist/internal/app"
	"legalassist/internal/cache"
	"legalassist/internal/config"
	"legalassist/internal/legal"
	"legalassist/internal/model"
	"legalassist/internal/ocr"
	mysqlClient "legalassist/internal/platform/mysql"
	rabbitmqClient "legalassist/internal/platform/rabbitmq"
	redisClient "legalassist/internal/platform/redis"
	"legalassist/internal/repository"
	"legalassist/internal/repository/memory"
	"legalassist/internal/worker"
)

// HealthCheck probes one enabled backend.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type App struct {
	Config *config.Config
	Logger *zap.Logger

	MySQL         *gorm.DB
	Redis         *redis.Client
	MQConn        *amqp.Connection
	Publisher     *rabbitmqClient.MessagePublisher
	MessageWorker *worker.MessagePersistWorker

	ChatService      *app.ChatService
	DocumentService  *app.DocumentService
	KnowledgeService *app.KnowledgeService
	AuthService      *app.AuthService

	HealthChecks []HealthCheck
	StartedAt    time.Time
}

type stores struct {
	messages  repository.MessageStore
	documents repository.DocumentStore
	knowledge repository.KnowledgeStore
	users     repository.UserStore
}

// New opens every configured backend and wires the services. Redis, RabbitMQ
// and the LLM are optional; with the default config nothing outside the
// process is contacted.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	a := &App{
		Config:    cfg,
		Logger:    logger,
		StartedAt: time.Now(),
	}
	if err := a.init(ctx); err != nil {
		if closeErr := a.Close(); closeErr != nil {
			logger.Warn("release partially initialized resources failed", zap.Error(closeErr))
		}
		return nil, err
	}
	return a, nil
}

func (a *App) init(ctx context.Context) error {
	cfg := a.Config

	st, err := a.openStores(ctx)
	if err != nil {
		return err
	}

	knowledgeService := app.NewKnowledgeService(st.knowledge)
	seeded, err := knowledgeService.EnsureSeed()
	if err != nil {
		return fmt.Errorf("seed legal knowledge failed: %w", err)
	}
	if seeded > 0 {
		a.Logger.Info("legal knowledge seeded", zap.Int("records", seeded))
	}

	authService := app.NewAuthService(
		st.users,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.JWTExpireMinute)*time.Minute,
	)
	if cfg.Auth.AdminPassword != "" {
		created, err := authService.EnsureUser(cfg.Auth.AdminUsername, cfg.Auth.AdminPassword)
		if err != nil {
			return fmt.Errorf("ensure admin user failed: %w", err)
		}
		if created {
			a.Logger.Info("admin user created", zap.String("username", cfg.Auth.AdminUsername))
		}
	}

	chatOpts := app.ChatOptions{}
	if cfg.Redis.Addr != "" {
		client, err := redisClient.New(ctx, a.Logger, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return err
		}
		a.Redis = client
		chatOpts.HistoryCache = cache.NewHistoryCache(
			client,
			time.Duration(cfg.Redis.HistoryTTLSeconds)*time.Second,
			time.Duration(cfg.Redis.HistoryDirtyTTLSeconds)*time.Second,
		)
		a.HealthChecks = append(a.HealthChecks, HealthCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return client.Ping(ctx).Err() },
		})
	}

	if cfg.RabbitMQ.URL != "" {
		conn, err := rabbitmqClient.New(ctx, a.Logger, cfg.RabbitMQ.URL, cfg.RabbitMQ.MessagePersistQueue)
		if err != nil {
			return err
		}
		a.MQConn = conn
		a.Publisher = rabbitmqClient.NewMessagePublisher(conn, cfg.RabbitMQ.MessagePersistQueue)
		chatOpts.Publisher = a.Publisher

		a.MessageWorker = worker.NewMessagePersistWorker(conn, st.messages, cfg.RabbitMQ.MessagePersistQueue, a.Logger)
		if err := a.MessageWorker.Start(ctx); err != nil {
			return fmt.Errorf("start message worker failed: %w", err)
		}
		a.HealthChecks = append(a.HealthChecks, HealthCheck{
			Name: "rabbitmq",
			Check: func(context.Context) error {
				if conn.IsClosed() {
					return errors.New("connection closed")
				}
				return nil
			},
		})
	}

	var extractor ocr.Extractor = ocr.Disabled{}
	var summarizer app.DocumentSummarizer
	if cfg.LLM.Enabled() || cfg.LLM.VisionEnabled() {
		client := ai.NewOpenAICompatibleClient(cfg.LLM.Timeout())
		if cfg.LLM.Enabled() {
			assistant := ai.NewLegalAssistant(client, ai.ChatConfig{
				BaseURL: cfg.LLM.BaseURL,
				APIKey:  cfg.LLM.APIKey,
				Model:   cfg.LLM.Model,
			})
			if cfg.LLM.EnhanceResponses {
				chatOpts.Enhancer = assistant
			}
			if cfg.LLM.SummarizeDocuments {
				summarizer = assistant
			}
		}
		if cfg.LLM.VisionEnabled() {
			extractor = ocr.NewVisionExtractor(client, ai.ChatConfig{
				BaseURL: cfg.LLM.BaseURL,
				APIKey:  cfg.LLM.APIKey,
				Model:   cfg.LLM.VisionModel,
			}, cfg.Upload.OCRMaxDimension)
		}
	}
	a.Logger.Info("optional features",
		zap.String("storage", cfg.Storage.Driver),
		zap.Bool("history_cache", chatOpts.HistoryCache != nil),
		zap.Bool("async_persist", chatOpts.Publisher != nil),
		zap.Bool("enhance_responses", chatOpts.Enhancer != nil),
		zap.Bool("summarize_documents", summarizer != nil),
		zap.Bool("vision_ocr", cfg.LLM.VisionEnabled()),
	)

	a.KnowledgeService = knowledgeService
	a.AuthService = authService
	a.ChatService = app.NewChatService(st.messages, legal.NewResponder(st.knowledge), a.Logger, chatOpts)
	a.DocumentService = app.NewDocumentService(st.documents, extractor, summarizer, cfg.Upload.MaxBytes, a.Logger)
	return nil
}

func (a *App) openStores(ctx context.Context) (stores, error) {
	if a.Config.Storage.Driver != config.StorageMySQL {
		mem := memory.NewStore()
		return stores{
			messages:  mem.Messages(),
			documents: mem.Documents(),
			knowledge: mem.Knowledge(),
			users:     mem.Users(),
		}, nil
	}

	db, err := mysqlClient.New(ctx, a.Logger, a.Config.MySQLDSN())
	if err != nil {
		return stores{}, err
	}
	a.MySQL = db
	if err := db.AutoMigrate(&model.User{}, &model.ChatMessage{}, &model.LegalDocument{}, &model.LegalKnowledge{}); err != nil {
		return stores{}, fmt.Errorf("auto migrate tables failed: %w", err)
	}
	a.HealthChecks = append(a.HealthChecks, HealthCheck{
		Name: "mysql",
		Check: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	})
	return stores{
		messages:  repository.NewMessageRepository(db),
		documents: repository.NewDocumentRepository(db),
		knowledge: repository.NewKnowledgeRepository(db),
		users:     repository.NewUserRepository(db),
	}, nil
}

// Close releases every opened backend. The worker stops before the
// connection it consumes from.
func (a *App) Close() error {
	var result *multierror.Error
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			result = multierror.Append(result, fmt.Errorf("close redis failed: %w", err))
		}
	}
	if a.MessageWorker != nil {
		a.MessageWorker.Close()
	}
	if a.Publisher != nil {
		if err := a.Publisher.Close(); err != nil {
			result = multierror.Append(result, fmt.Errorf("close publisher failed: %w", err))
		}
	}
	if a.MQConn != nil && !a.MQConn.IsClosed() {
		if err := a.MQConn.Close(); err != nil {
			result = multierror.Append(result, fmt.Errorf("close rabbitmq failed: %w", err))
		}
	}
	if a.MySQL != nil {
		sqlDB, err := a.MySQL.DB()
		if err == nil {
			err = sqlDB.Close()
		}
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("close mysql failed: %w", err))
		}
	}
	return result.ErrorOrNil()
}
