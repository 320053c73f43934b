package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"listgrip/internal/config"
	"listgrip/internal/domain"
	"listgrip/internal/eventbus"
	"listgrip/internal/logic"
	"listgrip/internal/ui"
)

func main() {
	// Parse command line arguments
	var (
		itemsFile  string
		configPath string
		printIDs   bool
	)
	flag.StringVar(&itemsFile, "file", "", "Read items from a file, one per line (id<TAB>label)")
	flag.StringVar(&itemsFile, "f", "", "Read items from a file (shorthand)")
	flag.StringVar(&configPath, "config", "", "Config file path")
	flag.StringVar(&configPath, "c", "", "Config file path (shorthand)")
	flag.BoolVar(&printIDs, "ids", false, "Print ids instead of labels")
	flag.Parse()

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(2)
	}
	printIDs = printIDs || cfg.UI.PrintIDs

	// Set up logging
	if cfg.LogFile != "" {
		logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.SetOutput(io.Discard)
		} else {
			defer logFile.Close()
			log.SetOutput(logFile)
		}
	} else {
		log.SetOutput(io.Discard)
	}
	log.Printf("Loaded config from %s", configSvc.Path())

	stdinIsTTY := term.IsTerminal(int(os.Stdin.Fd()))
	items, err := loadItems(itemsFile, flag.Args(), stdinIsTTY, cfg.Items)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	log.Printf("Loaded %d items", len(items))

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	store := logic.NewMemoryItemStore(items...)
	model, err := ui.NewModel(bus, cfg, configSvc, store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	}
	// Items piped in: read keys from the terminal instead
	if !stdinIsTTY {
		opts = append(opts, tea.WithInputTTY())
	}
	// Result captured by a pipe: draw on stderr
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		opts = append(opts, tea.WithOutput(os.Stderr))
	}

	p := tea.NewProgram(model, opts...)
	model.SetProgram(p)

	// Run the UI
	log.Printf("Starting UI...")
	_, err = p.Run()
	model.Close()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	selected, accepted := model.Result()
	if !accepted {
		os.Exit(1)
	}
	printSelection(os.Stdout, selected, printIDs)
}

// loadItems collects the items from a file, the arguments, piped stdin or
// the config, in that order of preference
func loadItems(path string, args []string, stdinIsTTY bool, fromConfig []string) ([]*domain.Item, error) {
	switch {
	case path != "":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open items file: %w", err)
		}
		defer f.Close()
		return logic.ReadItems(f)

	case len(args) > 0:
		items := make([]*domain.Item, 0, len(args))
		for _, arg := range args {
			items = append(items, logic.ParseItem(arg))
		}
		return items, nil

	case !stdinIsTTY:
		return logic.ReadItems(os.Stdin)
	}

	items := make([]*domain.Item, 0, len(fromConfig))
	for _, line := range fromConfig {
		items = append(items, logic.ParseItem(line))
	}
	return items, nil
}

func printSelection(w io.Writer, items []*domain.Item, ids bool) {
	for _, it := range items {
		if ids && it.ID != "" {
			fmt.Fprintln(w, it.ID)
			continue
		}
		fmt.Fprintln(w, it.Label)
	}
}
