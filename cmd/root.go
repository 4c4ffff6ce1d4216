package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"deskclock/internal/core/model"
	"deskclock/internal/core/theme"
	"deskclock/internal/logger"
	"deskclock/internal/platform"
	"deskclock/internal/storage"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const appName = "deskclock"

// errUsage marks argument errors that should be followed by usage output.
var errUsage = errors.New("invalid arguments")

type options struct {
	size        int
	opacity     float64
	position    string
	layer       string
	hideSeconds bool
	mode        string
	theme       string
	font        string
	configPath  string
	logLevel    string

	installMenu        bool
	uninstallMenu      bool
	installAutostart   bool
	uninstallAutostart bool
	installKWinRule    bool
	uninstallKWinRule  bool
	listThemes         bool
	listFonts          bool
}

// dependencies are the side effects the root command reaches for.
type dependencies struct {
	service      platform.Service
	executable   func() (string, error)
	listFonts    func() ([]string, error)
	checkDisplay func() error
	openStore    func(path string) (*storage.Store, error)
	run          func(store *storage.Store, prefs model.Preferences, launch launchOptions) error
}

// launchOptions carry command line choices that are not preferences.
type launchOptions struct {
	// explicitPosition skips the off-screen check at startup.
	explicitPosition bool
}

func defaultDependencies() dependencies {
	return dependencies{
		service:      platform.NewService(),
		executable:   os.Executable,
		listFonts:    platform.ListFonts,
		checkDisplay: platform.CheckDisplay,
		openStore:    openStore,
		run:          runWidget,
	}
}

func execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return newCommand(defaultDependencies())
}

func newCommand(deps dependencies) *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:   appName + " [flags]",
		Short: "Analog desktop clock and stopwatch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(cmd, &opts, deps)
			// Usage is printed for flag parsing and argument errors only.
			cmd.SilenceUsage = err == nil || !errors.Is(err, errUsage)
			return err
		},
	}

	addFlags(cmd.Flags(), &opts)
	return cmd
}

func addFlags(flags *pflag.FlagSet, opts *options) {
	flags.SortFlags = false
	flags.IntVar(&opts.size, "size", model.DefaultSize, fmt.Sprintf("face diameter in pixels (%d-%d)", model.MinSize, model.MaxSize))
	flags.Float64Var(&opts.opacity, "opacity", model.DefaultOpacity, fmt.Sprintf("window opacity (%.1f-%.1f)", model.MinOpacity, model.MaxOpacity))
	flags.StringVar(&opts.position, "position", "", "window position as x,y")
	flags.StringVar(&opts.layer, "layer", string(model.LayerAboveAll), "stacking layer: on-top, normal or on-bottom")
	flags.BoolVar(&opts.hideSeconds, "hide-seconds", false, "hide the second hand")
	flags.StringVar(&opts.mode, "mode", string(model.ModeClock), "display mode: clock or stopwatch")
	flags.StringVar(&opts.theme, "theme", theme.Default, "colour theme (see --list-themes)")
	flags.StringVar(&opts.font, "font", "", "stopwatch readout font family (see --list-fonts)")
	flags.StringVar(&opts.configPath, "config", "", "preferences file path")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn or error")

	flags.BoolVar(&opts.installMenu, "install-menu", false, "install the applications menu entry and exit")
	flags.BoolVar(&opts.uninstallMenu, "uninstall-menu", false, "remove the applications menu entry and exit")
	flags.BoolVar(&opts.installAutostart, "install-autostart", false, "start at login and exit")
	flags.BoolVar(&opts.uninstallAutostart, "uninstall-autostart", false, "stop starting at login and exit")
	flags.BoolVar(&opts.installKWinRule, "install-kwin-rule", false, "install a KWin keep-above rule and exit")
	flags.BoolVar(&opts.uninstallKWinRule, "uninstall-kwin-rule", false, "remove the KWin keep-above rule and exit")
	flags.BoolVar(&opts.listThemes, "list-themes", false, "print available themes and exit")
	flags.BoolVar(&opts.listFonts, "list-fonts", false, "print available readout fonts and exit")
}

func run(cmd *cobra.Command, opts *options, deps dependencies) error {
	level, err := logger.ParseLevel(opts.logLevel)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	logger.Init(level)

	if opts.listThemes || opts.listFonts {
		return list(cmd, opts, deps)
	}

	handled, err := runOneShot(cmd, opts, deps)
	if handled || err != nil {
		return err
	}

	store, err := deps.openStore(opts.configPath)
	if err != nil {
		return err
	}
	prefs, err := store.Load()
	if err != nil {
		slog.Warn("preferences unreadable, using defaults", "path", store.Path(), "error", err)
	}

	changed, err := applyOverrides(cmd.Flags(), opts, &prefs)
	if err != nil {
		return err
	}
	if changed {
		if err := store.Save(prefs); err != nil {
			slog.Warn("save preferences", "path", store.Path(), "error", err)
		}
	}

	if err := deps.checkDisplay(); err != nil {
		return err
	}
	return deps.run(store, prefs, launchOptions{explicitPosition: cmd.Flags().Changed("position")})
}

func list(cmd *cobra.Command, opts *options, deps dependencies) error {
	out := cmd.OutOrStdout()
	if opts.listThemes {
		for _, name := range theme.Names() {
			fmt.Fprintln(out, name)
		}
	}
	if opts.listFonts {
		fonts, err := deps.listFonts()
		if err != nil {
			return err
		}
		for _, family := range fonts {
			fmt.Fprintln(out, family)
		}
	}
	return nil
}

type oneShot struct {
	enabled bool
	done    string
	action  func(execPath string) error
}

// runOneShot performs the requested integration actions. It reports whether
// any were requested so the caller can exit without opening a window.
func runOneShot(cmd *cobra.Command, opts *options, deps dependencies) (bool, error) {
	service := deps.service
	actions := []oneShot{
		{opts.installMenu, "applications menu entry installed", func(execPath string) error {
			return service.InstallLauncher(appName, execPath)
		}},
		{opts.uninstallMenu, "applications menu entry removed", func(string) error {
			return service.RemoveLauncher(appName)
		}},
		{opts.installAutostart, "autostart entry installed", func(execPath string) error {
			return service.EnableAutostart(appName, execPath)
		}},
		{opts.uninstallAutostart, "autostart entry removed", func(string) error {
			return service.DisableAutostart(appName)
		}},
		{opts.installKWinRule, "KWin keep-above rule installed", func(string) error {
			return service.InstallKWinRule(appName)
		}},
		{opts.uninstallKWinRule, "KWin keep-above rule removed", func(string) error {
			return service.RemoveKWinRule(appName)
		}},
	}

	requested := false
	for _, action := range actions {
		requested = requested || action.enabled
	}
	if !requested {
		return false, nil
	}

	execPath, err := deps.executable()
	if err != nil {
		return true, fmt.Errorf("resolve executable: %w", err)
	}

	var failures []error
	for _, action := range actions {
		if !action.enabled {
			continue
		}
		if err := action.action(execPath); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
			failures = append(failures, err)
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), action.done)
	}
	return true, errors.Join(failures...)
}

func openStore(path string) (*storage.Store, error) {
	if path != "" {
		return storage.NewStoreAt(path), nil
	}
	return storage.NewStore(appName)
}

// applyOverrides copies explicitly set flags into prefs. Defaults never
// override stored values.
func applyOverrides(flags *pflag.FlagSet, opts *options, prefs *model.Preferences) (bool, error) {
	var errs []error
	changed := false

	flags.Visit(func(flag *pflag.Flag) {
		switch flag.Name {
		case "size":
			prefs.Size = opts.size
		case "opacity":
			prefs.Opacity = opts.opacity
		case "position":
			position, err := parsePosition(opts.position)
			if err != nil {
				errs = append(errs, err)
				return
			}
			prefs.Position = position
		case "layer":
			layer, err := model.ParseLayer(opts.layer)
			if err != nil {
				errs = append(errs, err)
				return
			}
			prefs.Layer = layer
		case "hide-seconds":
			prefs.ShowSeconds = !opts.hideSeconds
		case "mode":
			mode, err := model.ParseMode(opts.mode)
			if err != nil {
				errs = append(errs, err)
				return
			}
			prefs.Mode = mode
		case "theme":
			palette, ok := theme.Lookup(opts.theme)
			if !ok {
				errs = append(errs, fmt.Errorf("unknown theme %q", opts.theme))
				return
			}
			prefs.Theme = palette.Name
		case "font":
			prefs.ReadoutFont = strings.TrimSpace(opts.font)
		default:
			return
		}
		changed = true
	})

	if err := errors.Join(errs...); err != nil {
		return false, fmt.Errorf("%w: %v", errUsage, err)
	}
	*prefs = prefs.Normalize()
	return changed, nil
}

func parsePosition(value string) (model.Position, error) {
	xText, yText, ok := strings.Cut(value, ",")
	if !ok {
		return model.Position{}, fmt.Errorf("position %q: expected x,y", value)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xText))
	if err != nil {
		return model.Position{}, fmt.Errorf("position %q: %w", value, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(yText))
	if err != nil {
		return model.Position{}, fmt.Errorf("position %q: %w", value, err)
	}
	return model.Position{X: x, Y: y}, nil
}
