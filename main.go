package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	"mazeescape/pkg/game/catalog"
	"mazeescape/pkg/game/config"
	"mazeescape/pkg/game/devtools"
	"mazeescape/pkg/game/gameplay"
	"mazeescape/pkg/game/locale"
	ebitenrenderer "mazeescape/pkg/game/renderer/ebiten"
	"mazeescape/pkg/game/renderer/tui"
	"mazeescape/pkg/game/web"
)

var (
	dumpCatalog = flag.Bool("dump-catalog", false, "print every maze in the catalog with its start and goal, then exit")
	listKeys    = flag.Bool("keys", false, "print the key bindings, then exit")
)

// loadConfig reads .env and the environment, then applies command line flags
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}

	rendererName := flag.String("renderer", cfg.Renderer, "frontend to use: ebiten, tui or web")
	catalogPath := flag.String("catalog", cfg.CatalogPath, "maze catalog file (default: bundled mazes)")
	addr := flag.String("addr", cfg.Addr, "listen address for the web frontend")
	flag.Parse()

	cfg.Renderer = *rendererName
	cfg.CatalogPath = *catalogPath
	cfg.Addr = *addr
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// setupLogging configures the standard logger. The returned closer flushes
// the log file, if any.
func setupLogging(cfg config.Config) (io.Closer, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		log.SetOutput(f)
		return f, nil
	}

	// Log lines would tear the terminal frame
	if cfg.Renderer == config.RendererTUI && level > log.WarnLevel {
		log.SetLevel(log.WarnLevel)
	}
	return io.NopCloser(nil), nil
}

// loadCatalog returns the bundled catalog or the one at path
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logFile, err := setupLogging(cfg)
	if err != nil {
		log.Fatalf("Invalid logging configuration: %v", err)
	}
	defer logFile.Close()

	lang, err := locale.Init(cfg.Language)
	if err != nil {
		log.Fatalf("Loading translations: %v", err)
	}

	mazes, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("Loading maze catalog: %v", err)
	}

	if *dumpCatalog {
		devtools.DumpCatalog(os.Stdout, mazes)
		return
	}
	if *listKeys {
		devtools.DumpBindings(os.Stdout)
		return
	}

	log.WithFields(log.Fields{
		"mazes":     mazes.Names(),
		"language":  lang,
		"languages": locale.Languages(),
		"renderer":  cfg.Renderer,
	}).Info("Starting Maze Escape")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Renderer {
	case config.RendererEbiten:
		err = runEbiten(ctx, cfg, mazes)
	case config.RendererTUI:
		err = runTUI(ctx, cfg, mazes)
	case config.RendererWeb:
		err = web.NewServer(mazes, cfg.FrameInterval, nil).ListenAndServe(ctx, cfg.Addr)
	}
	if err != nil && err != context.Canceled {
		log.Errorf("Exited with error: %v", err)
		logFile.Close()
		os.Exit(1)
	}

	fmt.Println(gotext.Get("GOODBYE"))
}

// runEbiten opens the game window. Ebiten must own the main goroutine, so
// the game loop runs beside it; whichever ends first stops the other.
func runEbiten(ctx context.Context, cfg config.Config, mazes *catalog.Catalog) error {
	r := ebitenrenderer.New(nil)
	if err := r.Init(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ctrl := gameplay.NewController(mazes, nil)
	loopErr := make(chan error, 1)
	go func() {
		loopErr <- gameplay.Run(ctx, ctrl, r, cfg.FrameInterval)
		r.Close()
	}()

	if err := r.Run(); err != nil {
		return err
	}
	cancel()
	return <-loopErr
}

// runTUI plays in the terminal on the main goroutine
func runTUI(ctx context.Context, cfg config.Config, mazes *catalog.Catalog) error {
	r := tui.New(os.Stdin, os.Stdout, nil)
	if err := r.Init(); err != nil {
		return err
	}
	r.Clear()

	ctrl := gameplay.NewController(mazes, nil)
	err := gameplay.Run(ctx, ctrl, r, cfg.FrameInterval)

	r.Close()
	r.Clear()
	return err
}
