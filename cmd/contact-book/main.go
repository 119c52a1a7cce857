// main is the entry point of the contact book.
//
// STARTUP SEQUENCE:
//  1. Load configuration (optional YAML file, env vars, defaults)
//  2. Initialise the logger
//  3. Open the snapshot storage and load the address book
//  4. Register all commands
//  5. Run the shell until close / exit, which saves the book
//
// RUNNING:
//
//	go run ./cmd/contact-book
//	go run ./cmd/contact-book --config=config/local.yaml
//
// or (with the environment variable):
//
//	CONTACT_BOOK_CONFIG=config/local.yaml go run ./cmd/contact-book
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aanand-mishra/contact-book/internal/cli/handlers/contact"
	"github.com/aanand-mishra/contact-book/internal/cli/router"
	"github.com/aanand-mishra/contact-book/internal/cli/shell"
	"github.com/aanand-mishra/contact-book/internal/config"
	"github.com/aanand-mishra/contact-book/internal/storage"
	"github.com/aanand-mishra/contact-book/internal/storage/sqlite"
	"github.com/aanand-mishra/contact-book/internal/storage/yamlfile"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// cobra has already printed the error to stderr.
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "contact-book",
		Short:        "Keep names, phone numbers and birthdays in a terminal address book",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(configPath, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to the configuration YAML file")
	return cmd
}

func run(configPath string, in io.Reader, out io.Writer) error {
	// ── 1. Load Config ────────────────────────────────────────────────────
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	// Logs never go to stdout: that stream belongs to the conversation.
	logOut, closeLog, err := openLogOutput(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	log := setupLogger(cfg.Env, logOut)
	slog.SetDefault(log)

	log.Debug("starting contact-book",
		slog.String("env", cfg.Env),
		slog.String("driver", cfg.Storage.Driver))

	// ── 3. Initialise Storage ─────────────────────────────────────────────
	// We keep the result as the storage.Storage INTERFACE; the driver is
	// picked by config and nothing below this block knows which one it is.
	store, err := openStorage(cfg)
	if err != nil {
		log.Error("failed to initialise storage", slog.String("error", err.Error()))
		return err
	}
	defer store.Close()

	book, err := store.Load()
	if err != nil {
		log.Error("failed to load address book",
			slog.String("path", cfg.Storage.Path),
			slog.String("error", err.Error()))
		return err
	}

	log.Debug("address book loaded",
		slog.String("path", cfg.Storage.Path),
		slog.Int("contacts", book.Len()))

	// ── 4. Register Commands ──────────────────────────────────────────────
	//   hello, add, change, phone, all, birthdays, add-birthday, show-birthday
	// close / exit are handled by the shell itself.
	r := router.New()
	contact.Register(r, book, time.Now)

	// ── 5. Run ────────────────────────────────────────────────────────────
	return shell.New(book, store, r, in, out, log).Run()
}

// openStorage returns the snapshot driver named by cfg.Storage.Driver.
func openStorage(cfg *config.Config) (storage.Storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverYAML:
		return yamlfile.New(cfg), nil
	case config.DriverSQLite:
		db, err := sqlite.New(cfg)
		if err != nil {
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// openLogOutput opens path for appending, or returns stderr when path is
// empty. The returned func closes whatever was opened.
func openLogOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stderr, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
func setupLogger(env string, w io.Writer) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(w, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
