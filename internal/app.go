package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	logger_adapter "catalog-service/internal/adapters/logger"
	mongodb_adapter "catalog-service/internal/adapters/mongodb"
	rabbitmq_adapter "catalog-service/internal/adapters/rabbitmq"
	"catalog-service/internal/adapters/rest"
	"catalog-service/internal/configs"
	"catalog-service/internal/core/port"
	"catalog-service/internal/core/usecase"
	fluentlogger "catalog-service/pkg/fluent_logger"
	"catalog-service/pkg/mongodb"

	"github.com/fluent/fluent-logger-golang/fluent"
	"go.mongodb.org/mongo-driver/mongo"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config    *configs.AppConfig
	apiServer *rest.Server

	mongoClient    *mongo.Client
	eventPublisher *rabbitmq_adapter.CatalogEventsPublisher
	logger         port.LoggerPort
	fluentClient   *fluent.Fluent
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false, // текстовый формат
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	// Добавляем Fluent Bit логгер, если он включен в конфигурации
	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter := logger_adapter.NewFluentAdapter(fluentClient, "app", parseLogLevel(appConfig.FluentBit.Level))
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger := logger_adapter.NewMultiLogger(activeLoggers...)

	// --- 2. СОЗДАЕМ БАЗОВЫЙ ЛОГГЕР ПРИЛОЖЕНИЯ С КОНТЕКСТОМ ---
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 3. ПОДКЛЮЧЕНИЕ К MONGODB ---
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelConnect()

	mongoClient, err := mongodb.NewClient(connectCtx, mongodb.Config{URL: appConfig.Mongo.URL})
	if err != nil {
		appLogger.Error("Failed to connect to MongoDB", err, nil)
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	appLogger.Info("MongoDB connection established", nil)

	db := mongoClient.Database(appConfig.Mongo.Database)
	if err := mongodb_adapter.EnsureIndexes(connectCtx, db); err != nil {
		appLogger.Error("Failed to ensure MongoDB indexes", err, nil)
		return nil, fmt.Errorf("failed to ensure MongoDB indexes: %w", err)
	}

	// --- 4. РЕПОЗИТОРИИ ---
	propertyRepo, err := mongodb_adapter.NewPropertyRepository(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create property repository: %w", err)
	}
	ownerRepo, err := mongodb_adapter.NewOwnerRepository(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create owner repository: %w", err)
	}
	imageRepo, err := mongodb_adapter.NewPropertyImageRepository(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create property image repository: %w", err)
	}
	traceRepo, err := mongodb_adapter.NewPropertyTraceRepository(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create property trace repository: %w", err)
	}

	// --- 5. ПУБЛИКАЦИЯ СОБЫТИЙ (опционально) ---
	var eventPublisher *rabbitmq_adapter.CatalogEventsPublisher
	var events port.CatalogEventPublisherPort
	if appConfig.RabbitMQ.Enabled {
		publisherLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_publisher"})
		eventPublisher, err = rabbitmq_adapter.NewCatalogEventsPublisher(appConfig.RabbitMQ.URL, publisherLogger)
		if err != nil {
			appLogger.Error("Failed to create RabbitMQ event publisher", err, nil)
			return nil, fmt.Errorf("failed to create event publisher: %w", err)
		}
		events = eventPublisher
		appLogger.Info("RabbitMQ event publisher initialized", nil)
	}

	// --- 6. USE CASES (ядро бизнес-логики) ---
	searchPropertiesUseCase := usecase.NewSearchPropertiesUseCase(propertyRepo, imageRepo)
	getPropertyDetailsUseCase := usecase.NewGetPropertyDetailsUseCase(propertyRepo, imageRepo)
	createPropertyUseCase := usecase.NewCreatePropertyUseCase(propertyRepo, events)
	updatePropertyUseCase := usecase.NewUpdatePropertyUseCase(propertyRepo, events)
	deletePropertyUseCase := usecase.NewDeletePropertyUseCase(propertyRepo, events)

	getOwnerUseCase := usecase.NewGetOwnerUseCase(ownerRepo)
	createOwnerUseCase := usecase.NewCreateOwnerUseCase(ownerRepo)
	updateOwnerUseCase := usecase.NewUpdateOwnerUseCase(ownerRepo)
	deleteOwnerUseCase := usecase.NewDeleteOwnerUseCase(ownerRepo)

	listPropertyImagesUseCase := usecase.NewListPropertyImagesUseCase(imageRepo)
	addPropertyImageUseCase := usecase.NewAddPropertyImageUseCase(imageRepo)
	setImageEnabledUseCase := usecase.NewSetImageEnabledUseCase(imageRepo)
	deletePropertyImageUseCase := usecase.NewDeletePropertyImageUseCase(imageRepo)

	listPropertyTracesUseCase := usecase.NewListPropertyTracesUseCase(traceRepo)
	addPropertyTraceUseCase := usecase.NewAddPropertyTraceUseCase(traceRepo)
	deletePropertyTraceUseCase := usecase.NewDeletePropertyTraceUseCase(traceRepo)

	appLogger.Info("All use cases initialized", nil)

	// --- 7. REST API ---
	propertyHandlers := rest.NewPropertyHandlers(searchPropertiesUseCase, getPropertyDetailsUseCase,
		createPropertyUseCase, updatePropertyUseCase, deletePropertyUseCase)
	ownerHandlers := rest.NewOwnerHandlers(getOwnerUseCase, createOwnerUseCase, updateOwnerUseCase, deleteOwnerUseCase)
	imageHandlers := rest.NewPropertyImageHandlers(listPropertyImagesUseCase, addPropertyImageUseCase,
		setImageEnabledUseCase, deletePropertyImageUseCase)
	traceHandlers := rest.NewPropertyTraceHandlers(listPropertyTracesUseCase, addPropertyTraceUseCase,
		deletePropertyTraceUseCase)

	apiServer := rest.NewServer(appConfig.Rest.PORT, appConfig.Rest.AllowedOrigin,
		propertyHandlers, ownerHandlers, imageHandlers, traceHandlers, baseLogger)

	return &App{
		config:         appConfig,
		apiServer:      apiServer,
		mongoClient:    mongoClient,
		eventPublisher: eventPublisher,
		logger:         appLogger,
		fluentClient:   fluentClient,
	}, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if a.apiServer != nil {
			if err := a.apiServer.Stop(shutdownCtx); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.eventPublisher != nil {
			if err := a.eventPublisher.Close(); err != nil {
				a.logger.Error("Error closing event publisher", err, nil)
			}
		}

		if a.mongoClient != nil {
			if err := a.mongoClient.Disconnect(shutdownCtx); err != nil {
				a.logger.Error("Error disconnecting from MongoDB", err, nil)
			}
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Логируем в stdout, так как fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	// Ожидание сигнала на завершение или ошибки сервера
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-serverErrors:
		a.logger.Error("HTTP server failed to start, shutting down", err, nil)
		return err
	}

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		// Возвращаем безопасное значение по умолчанию и логируем предупреждение
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
