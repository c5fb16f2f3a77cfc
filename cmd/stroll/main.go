package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lowfold/stroll/internal/engine"
	"github.com/lowfold/stroll/internal/ui"
)

func main() {
	mapsDir := flag.String("maps", "./maps", "directory holding .map files")
	logPath := flag.String("log", "stroll.log", "diagnostics log file")
	flag.Parse()

	// The terminal belongs to bubbletea while the program runs, so
	// diagnostics go to a file instead.
	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Printf("could not open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger := log.New(logFile)
	logger.SetLevel(log.DebugLevel)

	cfg := engine.DefaultConfig()
	cfg.MapsDir = *mapsDir

	p := tea.NewProgram(ui.NewControllerModel(cfg, logger, 0, 0), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error %v", err)
		os.Exit(1)
	}
}
