// ABOUTME: Main entry point for the AI Search Engine API
// ABOUTME: Provides the serve, search and classify commands and handles graceful shutdown

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"ai-search-api/api/dto/mappers"
	"ai-search-api/core/relevance"
	"ai-search-api/infrastructure/logger/logrus"
	"ai-search-api/pkg/config"
	"ai-search-api/pkg/featureflags"
	"github.com/joho/godotenv"
	sirupsen "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const banner = `
    ___    ____   _____                      __
   /   |  /  _/  / ___/___  ____ ___________/ /_
  / /| |  / /    \__ \/ _ \/ __ '/ ___/ ___/ __ \
 / ___ |_/ /    ___/ /  __/ /_/ / /  / /__/ / / /
/_/  |_/___/   /____/\___/\__,_/_/   \___/_/ /_/
`

func main() {
	if err := newCLI().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newCLI() *cli.App {
	return &cli.App{
		Name:  "ai-search-api",
		Usage: "Web search filtered to artificial intelligence topics",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env-file",
				Aliases: []string{"e"},
				Usage:   "Load environment variables from this file if it exists",
				Value:   ".env",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Override LOG_LEVEL (debug, info, warn, error)",
			},
		},
		Before: loadEnvFile,
		Action: serveCommand,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP API",
				Action: serveCommand,
			},
			{
				Name:      "search",
				Usage:     "Run one search and print the JSON response",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "page",
						Aliases: []string{"p"},
						Usage:   "Page number (1-based)",
						Value:   1,
					},
				},
			},
			{
				Name:   "classify",
				Usage:  "Print the relevance verdict for a single result",
				Action: classifyCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Usage: "Result title", Required: true},
					&cli.StringFlag{Name: "snippet", Usage: "Result snippet"},
					&cli.StringFlag{Name: "link", Usage: "Result URL"},
				},
			},
		},
	}
}

// loadEnvFile reads the env file without overriding variables already set
func loadEnvFile(c *cli.Context) error {
	path := c.String("env-file")
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// loadConfig reads and validates configuration, applying CLI overrides
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if level := c.String("log-level"); level != "" {
		cfg.Log.Level = level
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// stderrLogger keeps stdout clean for command output
func stderrLogger(cfg *config.Config) (*logrus.Logger, error) {
	level, err := sirupsen.ParseLevel(strings.ToLower(cfg.Log.Level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	return logrus.NewWithWriter(os.Stderr, level, cfg.Log.Format), nil
}

func serveCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	logger, err := logrus.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Close()

	fmt.Fprint(c.App.Writer, banner+"\n")

	flags := featureflags.NewEnvManager("")
	logger.Info("Starting AI Search Engine API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"engine":     cfg.Provider.Engine,
		"flags":      flags.GetAllFlags(),
	})

	app, err := newApplication(cfg, logger, flags)
	if err != nil {
		return err
	}
	defer app.close()

	srv := app.httpServer()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-serverErr:
		if ok {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			return fmt.Errorf("server failed to start: %w", err)
		}
		return nil
	case <-quit:
	}

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("Server stopped", nil)
	return nil
}

func searchCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return cli.Exit("search requires a query argument", 2)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger, err := stderrLogger(cfg)
	if err != nil {
		return err
	}

	// A one-shot run gains nothing from the shared cache
	flags := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{
		featureflags.ProviderCache: false,
	})

	app, err := newApplication(cfg, logger, flags)
	if err != nil {
		return err
	}
	defer app.close()

	page, err := app.search.Search(c.Context, query, c.Int("page"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("search failed: %v", err), 1)
	}

	return writeJSON(c.App.Writer, mappers.ToSearchResponse(page))
}

// classifyOutput is the JSON printed by the classify command
type classifyOutput struct {
	Relevant bool     `json:"relevant"`
	Reason   string   `json:"reason"`
	Domain   string   `json:"domain,omitempty"`
	Keywords []string `json:"keywords"`
	CoreTerm bool     `json:"core_term"`
}

func classifyCommand(c *cli.Context) error {
	classifier := relevance.NewClassifier(relevance.DefaultTaxonomy())

	verdict := classifier.Evaluate(c.String("title"), c.String("snippet"), c.String("link"))
	keywords := verdict.Keywords
	if keywords == nil {
		keywords = []string{}
	}

	return writeJSON(c.App.Writer, classifyOutput{
		Relevant: verdict.Relevant,
		Reason:   verdict.Reason,
		Domain:   verdict.Domain,
		Keywords: keywords,
		CoreTerm: verdict.CoreTerm,
	})
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
