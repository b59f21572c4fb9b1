package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"taskpad/pkg/cli"
	"taskpad/pkg/config"
	"taskpad/pkg/logging"
	"taskpad/pkg/signal"
	"taskpad/pkg/storage"
	"taskpad/pkg/tasks"
	"taskpad/pkg/ui"
)

func main() {
	// Parse command line flags
	args := cli.ParseArgs()

	// Load configuration
	cfg, err := config.Load(args.ConfigPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Open the durable key-value store
	kv, err := storage.Open(cfg.StorageDriver, cfg.StoragePath)
	if err != nil {
		fmt.Printf("Error opening storage: %v\n", err)
		os.Exit(1)
	}
	defer storage.Close(kv)

	// One-shot CLI commands run without the TUI
	logger := logging.NewConsole(args.Verbose)
	store := tasks.NewStore(kv, func(s signal.Signal) {
		fmt.Printf("Warning: %s\n", s.Message())
	}, logger)
	store.Load()

	if cli.HandleCommands(store, kv, logger, args) {
		return
	}

	// While the TUI owns the terminal, logs go to a file
	fileLogger, closeLog := logging.NewFile(cfg.LogFile, args.Verbose)
	defer closeLog()

	p := tea.NewProgram(ui.NewModel(kv, cfg, fileLogger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
