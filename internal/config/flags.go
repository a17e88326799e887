package config

import (
	"flag"
	"fmt"
	"strings"
	"time"
)

// Flags holds values parsed from command-line flags.
// Only flags the user actually set override the config file.
type Flags struct {
	fs *flag.FlagSet

	ConfigFilePath *string
	Version        *bool
	LogLevel       *string
	LogFilePath    *string
	TabWidth       *int
	ScrollOff      *int
	EnableTags     *string
	DisableTags    *string
	EnablePkgs     *string
	DisablePkgs    *string
	PreviewWidth   *int
	NoConfirm      *bool
	Autocommit     *time.Duration
	Theme          *string
}

// NewFlags defines jot's flags on a fresh FlagSet.
func NewFlags(name string) *Flags {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	f := &Flags{fs: fs}
	f.ConfigFilePath = fs.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", AppName, DefaultConfigFileName))
	f.Version = fs.Bool("version", false, "Show version information and exit")
	f.LogLevel = fs.String("loglevel", "", "Log level (debug, info, warn, error)")
	f.LogFilePath = fs.String("logfile", "", "Path to write log file (use '-' for stderr)")
	f.TabWidth = fs.Int("tabwidth", 0, "Number of spaces per tab")
	f.ScrollOff = fs.Int("scrolloff", -1, "Lines of context above/below cursor")
	f.EnableTags = fs.String("log-tags", "", "Comma-separated list of log tags to enable")
	f.DisableTags = fs.String("log-disable-tags", "", "Comma-separated list of log tags to disable")
	f.EnablePkgs = fs.String("log-packages", "", "Comma-separated list of packages to enable")
	f.DisablePkgs = fs.String("log-disable-packages", "", "Comma-separated list of packages to disable")
	f.PreviewWidth = fs.Int("preview", 0, "Characters shown per log entry preview")
	f.NoConfirm = fs.Bool("no-confirm", false, "Reset without asking for confirmation")
	f.Autocommit = fs.Duration("autocommit", 0, "Commit automatically at this interval (e.g. 30s)")
	f.Theme = fs.String("theme", "", "Name of the color theme")
	return f
}

// Parse parses args and returns the remaining non-flag arguments.
func (f *Flags) Parse(args []string) ([]string, error) {
	if err := f.fs.Parse(args); err != nil {
		return nil, err
	}
	return f.fs.Args(), nil
}

// ApplyOverrides copies every flag that was set onto cfg.
func (f *Flags) ApplyOverrides(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "loglevel":
			if *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath
		case "tabwidth":
			if *f.TabWidth > 0 {
				cfg.Editor.TabWidth = *f.TabWidth
			}
		case "scrolloff":
			if *f.ScrollOff >= 0 {
				cfg.Editor.ScrollOff = *f.ScrollOff
			}
		case "log-tags":
			cfg.Logger.EnabledTags = splitCommaList(*f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = splitCommaList(*f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = splitCommaList(*f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = splitCommaList(*f.DisablePkgs)
		case "preview":
			if *f.PreviewWidth > 0 {
				cfg.History.PreviewWidth = *f.PreviewWidth
			}
		case "no-confirm":
			cfg.History.ConfirmReset = !*f.NoConfirm
		case "theme":
			cfg.Editor.Theme = *f.Theme
		case "autocommit":
			if *f.Autocommit > 0 {
				cfg.Plugins.Autocommit.Enabled = true
				cfg.Plugins.Autocommit.Interval = Duration{*f.Autocommit}
			} else {
				cfg.Plugins.Autocommit.Enabled = false
			}
		}
	})
}

func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
