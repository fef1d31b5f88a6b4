package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/countdown"
	"github.com/akyairhashvil/countdown/internal/speech"
	"github.com/akyairhashvil/countdown/internal/storage"
	"github.com/akyairhashvil/countdown/internal/tui"
	"github.com/akyairhashvil/countdown/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type options struct {
	configPath string
	theme      string
	reportFont string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:     config.AppName,
		Short:   "A small always-on countdown to your next exam",
		Version: tui.AppVersion,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeLog, err := setup(opts)
			if err != nil {
				return err
			}
			defer closeLog()
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return runPrint(cmd.OutOrStdout(), store, time.Now())
			}
			return runWidget(store, opts)
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (default: user config dir)")
	root.PersistentFlags().StringVar(&opts.theme, "theme", "default", "Color theme: default or dracula")

	root.AddCommand(&cobra.Command{
		Use:   "print",
		Short: "Print the start countdown once and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeLog, err := setup(opts)
			if err != nil {
				return err
			}
			defer closeLog()
			return runPrint(cmd.OutOrStdout(), store, time.Now())
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "report [file]",
		Short: "Write a PDF sheet of every countdown",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeLog, err := setup(opts)
			if err != nil {
				return err
			}
			defer closeLog()
			now := time.Now()
			path := defaultReportPath(now)
			if len(args) == 1 {
				path = args[0]
			}
			return runReport(cmd.OutOrStdout(), store, now, path, opts.reportFont)
		},
	})
	return root
}

// setup resolves the config path and starts file logging.
func setup(opts *options) (*storage.Store, func(), error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, nil, err
	}
	closer, err := util.SetupLogging(filepath.Join(util.DataDir(config.AppName), config.LogFileName), settings.LogLevel)
	closeLog := func() {}
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
	} else {
		closeLog = func() { _ = closer.Close() }
	}
	opts.reportFont = settings.ReportFont
	path := resolveConfigPath(opts.configPath, settings.ConfigPath)
	util.Log.WithField("path", path).Info("using configuration")
	return storage.New(path), closeLog, nil
}

// resolveConfigPath prefers the flag, then the environment, then the user
// config directory.
func resolveConfigPath(flag, env string) string {
	switch {
	case flag != "":
		return flag
	case env != "":
		return env
	default:
		return filepath.Join(util.ConfigDir(config.AppName), config.ConfigFileName)
	}
}

func loadConfig(store *storage.Store) storage.LoadResult {
	res := store.Load()
	if res.UsedDefault() {
		util.Log.WithField("check", res.Fallback.Check.String()).Warnf("config rejected, using defaults: %v", res.Fallback)
	}
	return res
}

func runPrint(w io.Writer, store *storage.Store, now time.Time) error {
	res := loadConfig(store)
	picker := countdown.NewPicker(res.Config)
	label := picker.Label(res.Config, now)
	_, err := fmt.Fprintln(w, label)
	return err
}

func runReport(w io.Writer, store *storage.Store, now time.Time, path, font string) error {
	res := loadConfig(store)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := tui.GenerateCountdownReport(res.Config, now, path, font); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	_, err := fmt.Fprintf(w, "PDF written: %s\n", path)
	return err
}

func defaultReportPath(now time.Time) string {
	return filepath.Join(util.ReportsDir(config.AppName), fmt.Sprintf("countdown_%s.pdf", now.Format("2006-01-02")))
}

func runWidget(store *storage.Store, o *options) error {
	res := loadConfig(store)
	opts := tui.Options{
		Store:      store,
		Config:     res.Config,
		Speaker:    speech.NewSystemSpeaker(),
		Theme:      o.theme,
		ReportDir:  util.ReportsDir(config.AppName),
		ReportFont: o.reportFont,
	}
	if res.Fallback != nil {
		opts.Fallback = res.Fallback
	}
	p := tea.NewProgram(tui.NewMainModel(opts), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
