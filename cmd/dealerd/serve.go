package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"dealerd/internal/catalog"
	"dealerd/internal/compare"
	"dealerd/internal/config"
	"dealerd/internal/httpapi"
	"dealerd/internal/lead"
)

const defaultCatalogPath = "~/.dealerd/catalog.json"

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP daemon",
		RunE:  runServe,
	}
	cmd.Flags().String("addr", envOr("DEALERD_ADDR", ""), "HTTP listen address, e.g. :8080")
	cmd.Flags().String("catalog", envOr("DEALERD_CATALOG", ""), "Path to the catalog snapshot file")
	cmd.Flags().String("admin-token", envOr("DEALERD_ADMIN_TOKEN", ""), "Capability token for the catalog editing routes (empty disables them)")
	cmd.Flags().StringSlice("cors-origin", nil, "Allowed CORS origin (repeatable); none disables CORS")
	return cmd
}

// loadConfig merges the optional config file with flag/env overrides and
// fills remaining defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if v, _ := cmd.Flags().GetString("addr"); v != "" {
		cfg.Addr = v
	}
	if v, _ := cmd.Flags().GetString("catalog"); v != "" {
		cfg.CatalogPath = v
	}
	if v, _ := cmd.Flags().GetString("admin-token"); v != "" {
		cfg.AdminToken = v
	}
	if v, _ := cmd.Flags().GetStringSlice("cors-origin"); len(v) > 0 {
		cfg.CORSOrigins = v
	}
	if cfg.CatalogPath == "" {
		cfg.CatalogPath = defaultCatalogPath
	}
	return config.ApplyDefaults(cfg), nil
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store := catalog.NewStore(cfg.CatalogPath, catalog.Default())
	if err := store.Load(); err != nil {
		// A broken snapshot falls back to the seed; persistence errors are
		// worth knowing about but do not stop the daemon.
		logger.Warn().Err(err).Str("path", cfg.CatalogPath).Msg("catalog snapshot not loaded, serving seed lineup")
	}

	composer := lead.NewComposer(lead.Contact{
		Brand:       cfg.Contact.Brand,
		Address:     cfg.Contact.Address,
		Phone:       cfg.Contact.Phone,
		WhatsApp:    cfg.Contact.WhatsApp,
		LeadEmail:   cfg.Contact.LeadEmail,
		MailSubject: cfg.Contact.MailSubject,
		Greeting:    cfg.Contact.Greeting,
	})

	httpapi.SetLogger(logger)
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetCORSOptions(len(cfg.CORSOrigins) > 0, cfg.CORSOrigins,
		[]string{"GET", "POST", "PUT", "OPTIONS"},
		[]string{"Accept", "Authorization", "Content-Type"})

	mux := httpapi.NewMux(httpapi.Deps{
		Catalog:    store,
		Compare:    compare.NewRegistry(),
		Composer:   composer,
		AdminToken: cfg.AdminToken,
	})
	srv := &http.Server{Addr: cfg.Addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Addr).Str("catalog", cfg.CatalogPath).Msg("dealerd listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-stop:
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
	}
	return nil
}
