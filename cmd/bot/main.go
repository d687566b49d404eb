package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zydazln93/gymbros-discord/internal/bot"
	"github.com/zydazln93/gymbros-discord/internal/config"
	"github.com/zydazln93/gymbros-discord/internal/db"
	"github.com/zydazln93/gymbros-discord/internal/fitness/bodyweight"
	"github.com/zydazln93/gymbros-discord/internal/fitness/sessions"
	"github.com/zydazln93/gymbros-discord/internal/fitness/workouts"
	"github.com/zydazln93/gymbros-discord/internal/logging"
	"github.com/zydazln93/gymbros-discord/internal/telemetry/metrics"
	"github.com/zydazln93/gymbros-discord/internal/telemetry/tracing"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting bot ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	sentryDSN := os.Getenv("SENTRY_DSN")
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    false,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        sentryDSN,
		SentryServerName: "gymbros-bot",
	})

	botToken := os.Getenv("GYMBROS_DISCORD_BOT_TOKEN")
	if botToken == "" {
		log.Fatalf("discord bot token not set. use GYMBROS_DISCORD_BOT_TOKEN")
	}

	honeycombEnabled := os.Getenv("HONEYCOMB_ENABLED") == "true"
	otelShutdown, err := tracing.HoneycombSetup(honeycombEnabled, "gymbros-bot")
	if err != nil {
		log.Fatalf("honeycomb setup: %s", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     os.Getenv("GYMBROS_POSTGRES_PASS"),
		TracingEnabled: honeycombEnabled,
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("gymbros", "bot", promRegistry)

	sessionsService := sessions.NewService(sessions.NewRepo(dbPool))
	workoutsRepo := workouts.NewRepo(dbPool)

	processor := bot.NewProcessor(bot.NewProcessorParams{
		CommandPrefix:  cfg.BotCommandPrefix,
		Sessions:       sessionsService,
		Workouts:       workoutsRepo,
		Analyzer:       workouts.NewAnalyzer(workoutsRepo),
		Bodyweight:     bodyweight.NewRepo(dbPool),
		MetricsManager: metricsManager,
	})

	discord, err := bot.NewDiscord(botToken, processor)
	if err != nil {
		log.Fatalf("new discord bot: %s", err)
	}
	if err := discord.Start(); err != nil {
		log.Fatalf("start discord bot: %s", err)
	}

	metricsServer := &http.Server{
		Addr: net.JoinHostPort(cfg.PrometheusMetricsHost, cfg.PrometheusMetricsPort),
		Handler: promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{
			Registry: promRegistry,
		}),
	}
	go func() {
		log.Infof("prometheus metrics server listening on %s", metricsServer.Addr)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorf("metrics server: %s", err)
		}
	}()

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)
	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, stopping everything ...", receivedSig)

	discord.Stop()
	otelShutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("metrics server shutdown: %s", err)
	}

	dbPool.Close()
	log.Warnln("bot stopped")
}
