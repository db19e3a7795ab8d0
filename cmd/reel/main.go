package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/PizzaHomicide/reel/internal/command"
	"github.com/PizzaHomicide/reel/internal/config"
	"github.com/PizzaHomicide/reel/internal/domain"
	"github.com/PizzaHomicide/reel/internal/log"
	"github.com/PizzaHomicide/reel/internal/repository/library"
	"github.com/PizzaHomicide/reel/internal/repository/remote"
	"github.com/PizzaHomicide/reel/internal/service"
	"github.com/PizzaHomicide/reel/internal/ui/shell"
	"github.com/PizzaHomicide/reel/internal/ui/tui"
	"github.com/PizzaHomicide/reel/internal/version"
)

// catalogLoadTimeout bounds how long startup waits for a remote catalog
const catalogLoadTimeout = 30 * time.Second

func main() {
	var showVersion, showEnv bool
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&showEnv, "env", false, "list the environment variables that override configuration")
	flag.Parse()

	if showVersion {
		fmt.Println(version.GetVersionInfo())
		return
	}
	if showEnv {
		config.PrintEnvVars(os.Stdout)
		return
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// It is unrecoverable if we cannot produce an application config
		_, _ = fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	// Initialise logger
	logger, err := log.New(log.Config{
		Level:    cfg.Logging.Level,
		FilePath: cfg.Logging.FilePath,
	})
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	// Set the default global logger
	log.SetDefaultLogger(logger)

	if err := run(cfg, logger); err != nil {
		log.Error("Unhandled error", "error", err)
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		logger.Close()
		os.Exit(1)
	}

	log.Info("Reel shutting down.  Goodbye!")
}

func run(cfg *config.Config, logger *log.Logger) error {
	source, err := catalogSource(cfg.Catalog)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), catalogLoadTimeout)
	defer cancel()
	catalog, err := library.Load(ctx, source)
	if err != nil {
		return fmt.Errorf("failed to load video catalog: %w", err)
	}

	switch cfg.UI.Mode {
	case config.ModeTUI:
		bridge := tui.NewBridge()
		session := service.NewSession(catalog, bridge, bridge)
		startSession(logger, session)
		return tui.Run(bridge, command.NewDispatcher(session, bridge), session.Playback, cfg.UI.Prompt)
	default:
		sh := shell.New(os.Stdin, os.Stdout, cfg.UI.Prompt)
		session := service.NewSession(catalog, os.Stdout, sh)
		startSession(logger, session)
		return sh.Run(command.NewDispatcher(session, os.Stdout))
	}
}

// startSession tags every following log line with the session id
func startSession(logger *log.Logger, session *service.Session) {
	log.SetDefaultLogger(logger.With("session_id", session.ID))
	log.Info("Starting up Reel", "version", version.GetVersion(), "commit", version.Commit, "build_time", version.GetBuildTime())
}

func catalogSource(cfg config.CatalogConfig) (domain.VideoSource, error) {
	switch cfg.Source {
	case config.SourceFile:
		return library.NewFileSource(cfg.Path), nil
	case config.SourceGraphQL:
		return remote.NewSource(cfg.Endpoint, cfg.Token)
	default:
		return library.BuiltinSource{}, nil
	}
}
