package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"chanpick/internal/config"
	"chanpick/internal/domain"
	"chanpick/internal/eventbus"
	"chanpick/internal/roster"
	"chanpick/internal/ui"
)

func main() {
	var rosterPath string
	var configPath string
	var selectIDs string
	flag.StringVar(&rosterPath, "roster", "", "Path to the team roster file")
	flag.StringVar(&rosterPath, "r", "", "Path to the team roster file (shorthand)")
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.StringVar(&selectIDs, "select", "", "Comma-separated channel ids to select on startup")
	flag.Parse()

	// Set up logging; the TUI owns stdout
	logFile, err := os.OpenFile("chanpick.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	bus := eventbus.New()
	defer bus.Stop()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	var cfg *config.Config
	if configPath != "" {
		cfg, err = configSvc.LoadFromPath(configPath)
	} else {
		cfg, err = configSvc.Load()
	}
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if rosterPath == "" {
		rosterPath = cfg.RosterPath
	}
	if rosterPath == "" {
		fmt.Println("No roster file given; use -roster or set roster_path in the config")
		os.Exit(1)
	}

	// The session token gates roster access. Without one the picker runs
	// with an empty roster and no error, as an unauthenticated client.
	token := os.Getenv("CHANPICK_TOKEN")
	source := roster.NewFileService(bus, rosterPath, token)

	uiModel := ui.NewModel(bus, cfg, source)
	if selectIDs != "" {
		uiModel.SetPendingSelection(strings.Split(selectIDs, ","))
	}

	p := tea.NewProgram(uiModel,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)

	// Forward bus events into the program
	var unsubscribes []func()
	unsubscribes = append(unsubscribes, bus.Subscribe(eventbus.EventRosterChanged, func(e eventbus.DomainEvent) {
		p.Send(ui.RosterChangedMsg())
	}))

	var lastSelection domain.Selection
	unsubscribes = append(unsubscribes, bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SelectionChangedEvent); ok {
			lastSelection = domain.Selection{Team: event.Team, Channel: event.Channel}
			if lastSelection.IsEmpty() {
				log.Printf("selection cleared")
			} else {
				log.Printf("selection changed: %s/%s", event.Team.ID, event.Channel.ID)
			}
		}
	}))
	defer func() {
		for _, unsub := range unsubscribes {
			unsub()
		}
	}()

	// Watch the roster file so edits reload teams wholesale
	watcher, err := roster.NewWatcher(bus, rosterPath)
	if err != nil {
		log.Printf("roster watch unavailable: %v", err)
	} else {
		watcher.Start(ctx)
		defer watcher.Close()
	}

	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Print the committed pair for scripting
	if !lastSelection.IsEmpty() {
		fmt.Printf("%s\t%s\n", lastSelection.Team.ID, lastSelection.Channel.ID)
	}
}
