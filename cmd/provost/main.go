package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/provost/internal/biblio"
	"github.com/alexanderramin/provost/internal/cli"
	"github.com/alexanderramin/provost/internal/config"
	"github.com/alexanderramin/provost/internal/service"
	"github.com/alexanderramin/provost/internal/standards"
	"github.com/alexanderramin/provost/internal/store"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	st, err := store.Open(cfg.StorePath)
	if err != nil {
		return fmt.Errorf("opening document store: %w", err)
	}
	defer st.Close()

	saver := store.NewSaver(st, time.Duration(cfg.AutosaveDelayMs)*time.Millisecond)
	defer saver.Flush(context.Background())

	// A broken catalog file must not take the whole CLI down; trace and
	// the standards commands degrade to a nil catalog.
	catalog, err := standards.Load(cfg.StandardsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: standards catalog unavailable: %v\n", err)
		catalog = nil
	}

	app := &cli.App{
		Documents: service.NewDocumentService(st, saver),
		Programme: service.NewProgrammeService(saver),
		Standards: catalog,
	}

	// ISBN lookup is optional; when disabled the fill commands report
	// the client error instead of silently doing nothing.
	lookupCfg := biblio.LoadConfig()
	if lookupCfg.Enabled {
		var observer biblio.Observer = biblio.NoopObserver{}
		if lookupCfg.LogCalls {
			observer = biblio.NewLogObserver(os.Stderr)
		}
		client := biblio.NewClient(lookupCfg, observer)
		app.Lookup = service.NewLookupService(biblio.NewFiller(client), saver)
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
