package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/telos-labs/recommend/internal/api"
	"github.com/telos-labs/recommend/internal/config"
	"github.com/telos-labs/recommend/internal/llm"
	"github.com/telos-labs/recommend/internal/recommend"
	"github.com/telos-labs/recommend/internal/store/postgres"
)

type server interface {
	Start(ctx context.Context, addr string) error
}

var (
	loadConfig = func() (config.Config, error) {
		return config.Load(), nil
	}
	newStore = func(conn string) (*postgres.PostgresStore, error) {
		return postgres.New(conn)
	}
	newProvider = llm.NewProvider
	newServer   = func(st *postgres.PostgresStore, synthesizer *recommend.Service, cfg config.Config) server {
		return api.NewServer(st, synthesizer, cfg)
	}
	notifyContext = signal.NotifyContext
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx, cancel := notifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	st, err := newStore(cfg.PostgresURL)
	if err != nil {
		return err
	}

	provider, err := newProvider(llm.Config{
		Provider:    cfg.LLMProvider,
		APIKey:      cfg.LLMAPIKey,
		Model:       cfg.LLMModel,
		BaseURL:     cfg.LLMBaseURL,
		Temperature: cfg.LLMTemperature,
		MaxTokens:   cfg.LLMMaxTokens,
		Timeout:     cfg.LLMTimeout,
	})
	if err != nil {
		return err
	}
	if cfg.LLMAPIKey == "" {
		log.Print("warning: no LLM API key configured; recommendation requests will fail")
	}

	synthesizer := recommend.NewService(st, provider)
	server := newServer(st, synthesizer, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("recommendation service listening on %s", addr)
	if err := server.Start(ctx, addr); err != nil {
		return err
	}

	return nil
}
