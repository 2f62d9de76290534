package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"btsh-ics-generator/internal/app/calendars"
	"btsh-ics-generator/internal/calfile"
	"btsh-ics-generator/internal/config"
	"btsh-ics-generator/internal/logging"
	"btsh-ics-generator/internal/metrics"
	"btsh-ics-generator/internal/providers"
	"btsh-ics-generator/internal/providers/btsh"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_GENERATOR_RUN") == "1" {
		return
	}

	// Local runs keep credentials and overrides in a .env file; absence is
	// not an error.
	_ = godotenv.Load()

	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "btsh-ics-generator",
		Version: appVersion,
	})

	cfg, err := config.Load()
	if err != nil {
		logging.Error(logger, "invalid configuration", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recorder := metrics.NewRecorder()
	client := btsh.NewClient(btsh.Config{
		BaseURL:              cfg.BaseURL,
		HTTPClient:           &http.Client{Timeout: cfg.HTTPTimeout},
		Timezone:             cfg.DefaultTimezone,
		MaxPages:             cfg.MaxPages,
		PlaceholderSentinels: cfg.PlaceholderNames,
		Logger:               logger,
		Recorder:             recorder,
	})

	svc := calendars.NewService(calendars.Deps{
		Config:   cfg,
		Provider: providers.NewInstrumentedProvider(client, logger, recorder),
		Store:    calfile.NewStore(cfg.OutputDir),
		Recorder: recorder,
		Logger:   logger,
	})

	if err := svc.Run(ctx); err != nil {
		logging.Error(logger, "generation failed", err)
		stop()
		os.Exit(1)
	}
}
