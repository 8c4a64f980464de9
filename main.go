package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"spinslider/internal/config"
	"spinslider/internal/domain"
	"spinslider/internal/eventbus"
	"spinslider/internal/ui"
)

func main() {
	// Parse command line arguments
	var (
		configPath string
		logPath    string
		visible    int
		infinite   bool
		autoPlay   bool
	)
	flag.StringVar(&configPath, "config", "", "Path to the config file (default ./"+config.FileName+")")
	flag.StringVar(&logPath, "log", "spinslider.log", "Path to the log file")
	flag.IntVar(&visible, "visible", 0, "Number of items visible at once")
	flag.BoolVar(&infinite, "infinite", false, "Wrap around at either end")
	flag.BoolVar(&autoPlay, "autoplay", false, "Advance automatically")
	flag.Parse()

	explicitConfig := configPath != ""
	if !explicitConfig {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Printf("Error getting current directory: %v\n", err)
			os.Exit(1)
		}
		configPath = filepath.Join(cwd, config.FileName)
	}

	// Set up logging
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()
	subscribeLogging(bus)

	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, err := loadOrCreateConfig(configSvc, configPath, explicitConfig)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags that were given override the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "visible":
			cfg.Slider.VisibleCount = visible
		case "infinite":
			cfg.Slider.Infinite = infinite
		case "autoplay":
			cfg.Slider.AutoPlay = autoPlay
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Invalid settings: %v\n", err)
		os.Exit(1)
	}

	// Create UI model
	model := ui.NewModel(bus, cfg)
	defer model.Close()

	// Create Bubble Tea program
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	)
	model.SetProgram(p)
	model.AttachAutoPlay(ctx, p.Send)

	// Errors reach the status line
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			p.Quit()
		case <-ctx.Done():
		}
	}()

	if os.Getenv("SPINSLIDER_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	// Run the UI
	log.Printf("Starting UI with %d items...", len(cfg.Items))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}

// loadOrCreateConfig loads the config at path. Without an explicit path a
// missing local file falls back to the user config; failing both, a default
// one with the demo deck is written to path.
func loadOrCreateConfig(configSvc config.ConfigService, path string, explicit bool) (*config.Config, error) {
	if _, err := os.Stat(path); err == nil {
		cfg, err := configSvc.LoadFromPath(path)
		if err != nil {
			return nil, err
		}
		log.Printf("Loaded config from %s", path)
		return cfg, nil
	}

	if !explicit {
		if _, err := os.Stat(configSvc.Path()); err == nil {
			cfg, err := configSvc.Load()
			if err != nil {
				return nil, err
			}
			log.Printf("Loaded user config from %s", configSvc.Path())
			return cfg, nil
		}
	}

	log.Printf("Creating new config at %s", path)
	cfg := config.DefaultConfig()
	cfg.Items = domain.DemoItems()

	if err := configSvc.SaveToPath(cfg, path); err != nil {
		log.Printf("Failed to save config: %v", err)
	}
	return cfg, nil
}

// subscribeLogging writes slider activity to the log file
func subscribeLogging(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventSlideChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SlideChangedEvent); ok {
			log.Printf("Slide changed to index %d (page %d)", event.Index, event.Page+1)
		}
	})
	bus.Subscribe(eventbus.EventItemClicked, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ItemClickedEvent); ok {
			log.Printf("Item clicked: %s (index %d)", event.Item.Title, event.Index)
		}
	})
	bus.Subscribe(eventbus.EventAutoPlayStarted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.AutoPlayStartedEvent); ok {
			log.Printf("Auto-play started, every %dms", event.IntervalMS)
		}
	})
	bus.Subscribe(eventbus.EventAutoPlayStopped, func(e eventbus.DomainEvent) {
		log.Printf("Auto-play stopped")
	})
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigSavedEvent); ok {
			log.Printf("Config saved to %s", event.Path)
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			log.Printf("Error: %s: %v", event.Message, event.Err)
		}
	})
}
