package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/mood-diary/internal/database"
	"github.com/sbilibin2017/mood-diary/internal/handlers"
	"github.com/sbilibin2017/mood-diary/internal/logger"
	"github.com/sbilibin2017/mood-diary/internal/middlewares"
	"github.com/sbilibin2017/mood-diary/internal/models"
	"github.com/sbilibin2017/mood-diary/internal/repositories"
	"github.com/sbilibin2017/mood-diary/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title mood-diary API
// @version 1.0.0
// @description Backend for a personal mood diary: list recent entries and record new ones
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath, eventPath := parseFlags()

	appHost, appPort, logLevel, databaseURL,
		kafkaBrokers, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel, databaseURL,
		kafkaBrokers, kafkaTopic,
		eventPath,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path
// and the optional request descriptor file for a one-shot invocation.
func parseFlags() (configPath, eventPath string) {
	c := flag.String("c", "config.env", "Path to configuration file")
	e := flag.String("event", "", "Path to a request descriptor JSON file; handles it once and exits")
	flag.Parse()
	return *c, *e
}

// parseConfig loads environment variables from a file and returns
// application, database, logging, and Kafka configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	databaseURL string,
	kafkaBrokers []string, kafkaTopic string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	databaseURL = getEnv("DATABASE_URL", "")
	if databaseURL == "" {
		var pgPort int
		if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
			return
		}
		databaseURL = buildDSN(
			getEnv("POSTGRES_HOST", "localhost"), pgPort,
			getEnv("POSTGRES_USER", "user"),
			getEnv("POSTGRES_PASSWORD", "password"),
			getEnv("POSTGRES_DB", "database"),
		)
	}

	// Kafka config
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			kafkaBrokers = append(kafkaBrokers, b)
		}
	}
	kafkaTopic = getEnv("KAFKA_TOPIC", "mood-entries")

	return
}

// buildDSN assembles a PostgreSQL connection string.
func buildDSN(host string, port int, user, password, db string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, password),
		Host:     fmt.Sprintf("%s:%d", host, port),
		Path:     db,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// run initializes the logger, datastore connector, Kafka writer and mood handler.
// With eventPath set it handles a single request descriptor; otherwise it
// serves HTTP until a shutdown signal arrives.
func run(ctx context.Context,
	appHost, appPort, logLevel, databaseURL string,
	kafkaBrokers []string, kafkaTopic string,
	eventPath string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Per-invocation PostgreSQL connections
	connector := database.NewDSNConnector("pgx", databaseURL)

	// Optional Kafka writer for entry notifications
	var kafkaWriter services.KafkaWriter
	if len(kafkaBrokers) > 0 {
		kw := newKafkaWriter(kafkaBrokers, kafkaTopic)
		defer kw.Close()
		kafkaWriter = kw
		logger.Log.Infow("Kafka notifications enabled", "brokers", kafkaBrokers, "topic", kafkaTopic)
	}

	// Initialize repositories
	moodReadRepo := repositories.NewMoodEntryReadRepository(connector)
	moodWriteRepo := repositories.NewMoodEntryWriteRepository(connector)

	// Initialize services
	moodService := services.NewMoodService(moodWriteRepo, moodReadRepo, kafkaWriter)

	// Initialize handlers
	moodHandler := handlers.NewMoodHandler(moodService)

	if eventPath != "" {
		f, err := os.Open(eventPath)
		if err != nil {
			return err
		}
		defer f.Close()
		return invoke(ctx, moodHandler, f, os.Stdout)
	}

	// Check the datastore is reachable before accepting traffic
	db, err := connector.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	db.Close()

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	moodHTTP := handlers.NewHTTPHandler(moodHandler)
	r.HandleFunc("/", moodHTTP)
	r.HandleFunc("/mood", moodHTTP)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newKafkaWriter creates a writer for entry notifications. Retries and
// write timeout are bounded so an unreachable broker cannot stall a create.
func newKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		MaxAttempts:  3,
		WriteTimeout: 5 * time.Second,
		BatchTimeout: 10 * time.Millisecond,
	}
}

// invoke reads one request descriptor, runs the handler and writes the
// response descriptor as JSON.
func invoke(ctx context.Context, h handlers.MoodHandlerFunc, in io.Reader, out io.Writer) error {
	var req models.Request
	if err := json.NewDecoder(in).Decode(&req); err != nil {
		return fmt.Errorf("failed to decode request descriptor: %w", err)
	}

	resp := h(ctx, req)

	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
