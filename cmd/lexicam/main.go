package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"lexicam/internal/backend"
	"lexicam/internal/config"
	"lexicam/internal/logging"
	"lexicam/internal/observe"
	"lexicam/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// flags holds the parsed command line. Empty values leave config untouched.
type flags struct {
	configPath string
	envFile    string
	backendURL string
	timeout    time.Duration
	logFile    string
	logLevel   string
}

func parseFlags(args []string) (flags, *flag.FlagSet, error) {
	var f flags

	fs := flag.NewFlagSet("lexicam", flag.ContinueOnError)
	fs.StringVar(&f.configPath, "config", "", "path to a YAML config file")
	fs.StringVar(&f.envFile, "env-file", ".env", "dotenv file to load if present")
	fs.StringVar(&f.backendURL, "backend", "", "backend origin (default "+config.DefaultBackendURL+")")
	fs.DurationVar(&f.timeout, "timeout", 0, "per-request timeout, 0 for none")
	fs.StringVar(&f.logFile, "log-file", "", "log file (default "+config.DefaultLogFile+")")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")

	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: lexicam [flags]\n\n")
		fmt.Fprintf(out, "lexicam names the object in front of the camera, says it aloud,\n")
		fmt.Fprintf(out, "and checks how you pronounce it.\n\n")
		fmt.Fprintf(out, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return f, nil, err
	}
	return f, fs, nil
}

// flagOverrides applies only the flags given on the command line, so an
// unset flag never masks a value from the file or the environment.
func flagOverrides(fs *flag.FlagSet, f flags) func(*config.Config) {
	return func(cfg *config.Config) {
		fs.Visit(func(fl *flag.Flag) {
			switch fl.Name {
			case "backend":
				cfg.Backend.URL = f.backendURL
			case "timeout":
				cfg.Backend.Timeout = f.timeout
			case "log-file":
				cfg.Log.File = f.logFile
			case "log-level":
				cfg.Log.Level = config.LogLevel(f.logLevel)
			}
		})
	}
}

// loadConfig layers file, .env, environment and flags, then validates.
func loadConfig(fs *flag.FlagSet, f flags, lookup func(string) (string, bool)) (*config.Config, error) {
	return config.Resolve(config.Sources{
		File:      f.configPath,
		EnvFile:   f.envFile,
		Lookup:    lookup,
		Overrides: flagOverrides(fs, f),
	})
}

func run(ctx context.Context, cfg *config.Config) error {
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	providers, err := observe.InitProvider(ctx, observe.ProviderConfig{
		ServiceName:    cfg.Telemetry.ServiceName,
		ServiceVersion: version,
	})
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			logger.Warn("telemetry shutdown", zap.Error(err))
		}
	}()

	metrics, err := observe.NewMetrics(providers.Meter)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}

	client, err := backend.New(cfg.Backend.URL,
		backend.WithTimeout(cfg.Backend.Timeout),
		backend.WithMetrics(metrics),
	)
	if err != nil {
		return err
	}

	logger.Info("lexicam starting",
		zap.String("version", version),
		zap.String("backend", client.BaseURL()),
		zap.Duration("timeout", cfg.Backend.Timeout),
		zap.Bool("trace_export", providers.Exporting()),
	)

	model := ui.NewAppModel(client, ui.WithLogger(logger), ui.WithContext(ctx)).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return err
	}

	if summary, err := observe.Summarize(ctx, providers.Reader); err == nil {
		for _, s := range summary {
			logger.Info("backend usage",
				zap.String("operation", s.Operation),
				zap.Int64("ok", s.OK),
				zap.Int64("errors", s.Errors),
			)
		}
	}
	logger.Info("goodbye")
	return nil
}

func main() {
	f, fs, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}
	cfg, err := loadConfig(fs, f, os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lexicam: %v\n", err)
		os.Exit(1)
	}
	if err := run(context.Background(), cfg); err != nil {
		fmt.Fprintf(os.Stderr, "lexicam: %v\n", err)
		os.Exit(1)
	}
}
