package main

import (
	"fmt"
	"os"
	"path/filepath"

	"wristlist/internal/checklist"
	"wristlist/internal/config"
	"wristlist/internal/dictation"
	"wristlist/internal/errors"
	"wristlist/internal/log"
	"wristlist/internal/resources"
	"wristlist/internal/tui"
	"wristlist/internal/tui/checklistview"
	"wristlist/internal/tui/messages"
	"wristlist/internal/tui/styles"
	"wristlist/internal/watch"
	"wristlist/pkg/types"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// app carries the flags and the loaded configuration shared by every
// command.
type app struct {
	cfgFile string
	dbPath  string
	shape   string
	debug   bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "wristlist",
		Short:   "A checklist for your wrist, in your terminal",
		Long:    `wristlist shows a watch-sized checklist: add items by dictation, tick them off, and clear the completed ones.`,
		Version: version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI()
		},
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.config/wristlist/config.yaml)")
	flags.StringVar(&a.dbPath, "db", "", "sqlite database file; selects the sqlite backend")
	flags.StringVar(&a.shape, "shape", "", "display shape: rect or round")
	flags.BoolVar(&a.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(addCmd(a))
	rootCmd.AddCommand(listCmd(a))
	rootCmd.AddCommand(clearCmd(a))
	rootCmd.AddCommand(configCmd(a))

	return rootCmd
}

// load reads the configuration and applies the command line overrides.
func (a *app) load(cmd *cobra.Command) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.LoadConfigFile(a.cfgFile)
	} else {
		a.cfg, err = config.LoadConfig()
	}
	if err != nil {
		return err
	}

	if a.dbPath != "" {
		a.cfg.Storage.Backend = config.BackendSQLite
		a.cfg.Storage.Path = a.dbPath
	}
	if a.shape != "" {
		a.cfg.Display.Shape = a.shape
	}
	if a.debug {
		a.cfg.Logging.Debug = true
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	log.Configure(append([]log.Option{log.WithOutput(cmd.ErrOrStderr())}, a.formatOptions()...)...)
	log.SetDebug(a.cfg.Logging.Debug)
	return nil
}

func (a *app) formatOptions() []log.Option {
	if a.cfg.Logging.JSON {
		return []log.Option{log.WithJSON()}
	}
	return nil
}

func (a *app) limits() checklist.Limits {
	return checklist.Limits{
		MaxItems:      a.cfg.Checklist.MaxItems,
		MaxNameLength: a.cfg.Checklist.MaxNameLength,
	}
}

// openStore returns the store the configuration selects.
func (a *app) openStore() checklist.Store {
	if a.cfg.Storage.Backend == config.BackendSQLite {
		return checklist.NewSQLiteStore(a.cfg.Storage.Path, a.limits())
	}
	return checklist.NewMemoryStore(a.limits())
}

// openSQLite returns an initialised sqlite store for the one-shot
// commands; an in-memory list would not outlive them.
func (a *app) openSQLite() (*checklist.SQLiteStore, error) {
	if a.cfg.Storage.Backend != config.BackendSQLite {
		return nil, errors.NewConfigError(
			fmt.Sprintf("item commands need the %s backend, the configured %s backend lives only inside the watch face",
				config.BackendSQLite, a.cfg.Storage.Backend),
			"storage.backend", errors.InvalidConfig, nil)
	}
	store := checklist.NewSQLiteStore(a.cfg.Storage.Path, a.limits())
	if err := store.Init(); err != nil {
		return nil, err
	}
	return store, nil
}

func (a *app) runTUI() error {
	// The screen belongs to the TUI, so logs go to a file
	closer, err := log.ToFile(a.cfg.Logging.File, a.formatOptions()...)
	if err != nil {
		return err
	}
	defer closer.Close()

	keys := types.DefaultKeyMap()
	theme := styles.ThemeFromConfig(a.cfg)
	session := dictation.NewSession(theme, a.cfg.Checklist.MaxNameLength)

	store := a.openStore()
	view := checklistview.New(a.cfg, store, resources.NewBundle(),
		func() dictation.Service { return session }, keys)

	m := tui.New(a.cfg, view, keys)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if sqliteStore, ok := store.(*checklist.SQLiteStore); ok {
		w, err := watchStore(sqliteStore.Path(), p)
		if err != nil {
			log.LogWithError(err).Warn("External changes will not be picked up")
		} else {
			defer w.Stop()
		}
	}

	log.LogWithFields(
		log.F("backend", a.cfg.Storage.Backend),
		log.F("shape", a.cfg.Display.Shape),
	).Info("Starting wristlist")

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return m.Err()
}

// watchStore reports changes to the database file and its WAL to p.
func watchStore(path string, p *tea.Program) (*watch.Watcher, error) {
	// The store creates the directory on load, after the watch starts
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	w, err := watch.New()
	if err != nil {
		return nil, err
	}
	for _, f := range []string{path, path + "-wal"} {
		if err := w.AddFile(f); err != nil {
			return nil, err
		}
	}
	if err := w.Start(); err != nil {
		return nil, err
	}
	go watch.Notify(w.Changes(), watch.DefaultQuietPeriod, func(c watch.Change) {
		p.Send(messages.StoreChangedMsg{Path: c.Path})
	})
	return w, nil
}
