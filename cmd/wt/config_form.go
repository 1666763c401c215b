package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/wtmanager/wt/logging"
)

const (
	configLanguageKey  = "config_language"
	configShellKey     = "config_shell"
	configProvisionKey = "config_provision"
	configLogLevelKey  = "config_log_level"
)

func wtHuhTheme() *huh.Theme {
	t := *huh.ThemeCharm()
	t.Focused.FocusedButton = t.Focused.FocusedButton.Background(lipgloss.Color("#7D56F4"))
	t.Focused.Next = t.Focused.FocusedButton
	return &t
}

// configFormValues is what the form edits; Config keeps Provision as a
// pointer so "unset" survives a round trip, which huh cannot bind to.
type configFormValues struct {
	Language  string
	Shell     string
	Provision bool
	LogLevel  string
}

func newConfigFormValues(cfg Config) *configFormValues {
	cfg = cfg.normalize()
	return &configFormValues{
		Language:  cfg.Language,
		Shell:     cfg.Shell,
		Provision: cfg.ProvisionEnabled(),
		LogLevel:  cfg.LogLevel,
	}
}

func (v *configFormValues) config() Config {
	provision := v.Provision
	return Config{
		Language:  v.Language,
		Shell:     v.Shell,
		Provision: &provision,
		LogLevel:  v.LogLevel,
	}.normalize()
}

func newConfigForm(v *configFormValues) *huh.Form {
	language := huh.NewSelect[string]().
		Key(configLanguageKey).
		Title("Language").
		Options(
			huh.NewOption("Detect from LANG", ""),
			huh.NewOption("English", "en"),
			huh.NewOption("한국어", "ko"),
		).
		Value(&v.Language)

	shell := huh.NewInput().
		Key(configShellKey).
		Title("Setup shell").
		Description("Empty uses $SHELL").
		Inline(true).
		Value(&v.Shell)

	provision := huh.NewConfirm().
		Key(configProvisionKey).
		Title("Run automatic setup after switching?").
		Affirmative("Yes").
		Negative("No").
		Value(&v.Provision)

	logLevel := huh.NewSelect[string]().
		Key(configLogLevelKey).
		Title("Log level").
		Options(huh.NewOptions("debug", "info", "warn", "error")...).
		Validate(func(value string) error {
			if logging.ParseLevel(value).String() != value {
				return fmt.Errorf("unknown log level %q", value)
			}
			return nil
		}).
		Value(&v.LogLevel)

	return huh.NewForm(huh.NewGroup(language, shell, provision, logLevel)).
		WithTheme(wtHuhTheme()).
		WithShowHelp(false)
}

func runConfigForm() error {
	if testModeEnabled() {
		return SaveConfig(defaultConfig())
	}
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	values := newConfigFormValues(cfg)
	if err := newConfigForm(values).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}
	return SaveConfig(values.config())
}
