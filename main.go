package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"swipe_server/config"
	"swipe_server/routes"
	"swipe_server/services"
	"swipe_server/utils"
)

const serviceName = "swipe_server"

func main() {
	utils.InitLogger(serviceName, os.Getenv("LOG_LEVEL"))

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, using system environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var params config.ParamGetter
	if os.Getenv("PARAM_PREFIX") != "" {
		ps, err := config.NewDefaultParamStore(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create parameter store client")
		}
		params = ps
	}

	cfg, err := config.Load(ctx, params)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	utils.InitLogger(serviceName, cfg.LogLevel)

	// Initialize upstream clients
	openAIService, err := services.NewOpenAIService(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.UpstreamTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create OpenAI client")
	}
	airtableService, err := services.NewAirtableService(cfg.AirtableAPIKey, cfg.AirtableBaseURL, cfg.AirtableBaseID, cfg.AirtableSwipeTable, cfg.UpstreamTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Airtable client")
	}

	// Initialize Services
	preferenceService, err := services.NewPreferenceService(airtableService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create preference service")
	}
	chatService, err := services.NewChatService(openAIService, preferenceService, cfg.OpenAIAssistantID, services.PollConfig{
		Interval: cfg.RunPollInterval,
		MaxWait:  cfg.RunMaxWait,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create chat service")
	}

	// Register routes
	r := mux.NewRouter()
	routes.RegisterRoutes(r)
	routes.RegisterChatRoutes(r, chatService)
	routes.RegisterOpenAIRoutes(r, openAIService)
	routes.RegisterAirtableRoutes(r, airtableService, cfg.AirtableListingsTable)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.NewHandler(r, cfg.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Strs("allowed_origins", cfg.AllowedOrigins).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
