package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/germanamz/sugoi/pkg/router"
	"github.com/germanamz/sugoi/pkg/config"
	"github.com/germanamz/sugoi/pkg/texttools/baseconv"
	"github.com/germanamz/sugoi/pkg/texttools/digest"
)

// editorConfig is the editor working model. Numbers are kept as text so
// huh inputs can bind to them directly.
type editorConfig struct {
	StartRoute  string
	Language    string
	Theme       string
	LogFile     string
	LogLevel    string
	URLSafe     bool
	Padded      bool
	Algorithms  []string
	Chosen      string
	FromBase    string
	ToBase      string
	Samples     string
	DefaultText string
}

// runConfigEditor is the entry point: load → menu loop → validate → save.
func runConfigEditor(configPath string) error {
	resolved := config.ResolvePath(configPath)
	if resolved == "" {
		resolved = config.DefaultPath()
	}

	cfg, err := config.LoadRaw(existingOrEmpty(resolved))
	if err != nil {
		return err
	}

	ec := configToEditor(cfg)

	for {
		if err := configEditorMenu(&ec); err != nil {
			return err
		}

		finalCfg := editorToConfig(ec)
		if err := finalCfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Validation error: %v\nReturning to menu.\n", err)

			continue
		}

		if err := config.Save(finalCfg, resolved); err != nil {
			return err
		}

		break
	}

	fmt.Printf("Config saved to %s\n", resolved)

	return nil
}

// existingOrEmpty returns path when the file exists, so that a first run
// starts from the defaults.
func existingOrEmpty(path string) string {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return ""
	}
	return path
}

func configToEditor(cfg config.Config) editorConfig {
	start := cfg.StartRoute
	if r, ok := router.Lookup(start); ok {
		start = r.Path()
	}

	return editorConfig{
		StartRoute:  start,
		Language:    cfg.Language,
		Theme:       cfg.Theme,
		LogFile:     cfg.Log.File,
		LogLevel:    cfg.Log.Level,
		URLSafe:     cfg.Base64.URLSafe,
		Padded:      cfg.Base64.Padded,
		Algorithms:  append([]string(nil), cfg.Digest.Algorithms...),
		Chosen:      cfg.Digest.Chosen,
		FromBase:    strconv.Itoa(cfg.BaseConverter.From),
		ToBase:      strconv.Itoa(cfg.BaseConverter.To),
		Samples:     strconv.Itoa(cfg.Regex.Samples),
		DefaultText: cfg.SuddenDeath.DefaultText,
	}
}

// editorToConfig converts the editor working model back to a Config for
// validation and saving. Unparsable numbers become 0 and fail validation.
func editorToConfig(ec editorConfig) config.Config {
	from, _ := strconv.Atoi(ec.FromBase)
	to, _ := strconv.Atoi(ec.ToBase)
	samples, _ := strconv.Atoi(ec.Samples)

	return config.Config{
		StartRoute:    ec.StartRoute,
		Language:      ec.Language,
		Theme:         ec.Theme,
		Log:           config.LogConfig{File: ec.LogFile, Level: ec.LogLevel},
		Base64:        config.Base64Config{URLSafe: ec.URLSafe, Padded: ec.Padded},
		Digest:        config.DigestConfig{Algorithms: ec.Algorithms, Chosen: ec.Chosen},
		BaseConverter: config.BaseConverterConfig{From: from, To: to},
		Regex:         config.RegexConfig{Samples: samples},
		SuddenDeath:   config.SuddenDeathConfig{DefaultText: ec.DefaultText},
	}
}

func configEditorMenu(ec *editorConfig) error {
	for {
		var choice string

		err := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("Config Editor").
				Options(
					huh.NewOption("General", "general"),
					huh.NewOption("Base64", "base64"),
					huh.NewOption("Message digest", "digest"),
					huh.NewOption("Base converter", "base_converter"),
					huh.NewOption("Generators", "generators"),
					huh.NewOption("Logging", "logging"),
					huh.NewOption("Save & Exit", "done"),
				).
				Value(&choice),
		)).Run()
		if err != nil {
			return err
		}

		var form *huh.Form
		switch choice {
		case "general":
			form = generalForm(ec)
		case "base64":
			form = base64Form(ec)
		case "digest":
			form = digestForm(ec)
		case "base_converter":
			form = baseConverterForm(ec)
		case "generators":
			form = generatorsForm(ec)
		case "logging":
			form = loggingForm(ec)
		case "done":
			return nil
		}

		if form != nil {
			if err := form.Run(); err != nil {
				return err
			}
		}
	}
}

func stringOptions(values []string) []huh.Option[string] {
	opts := make([]huh.Option[string], len(values))
	for i, v := range values {
		opts[i] = huh.NewOption(v, v)
	}
	return opts
}

func generalForm(ec *editorConfig) *huh.Form {
	// Routes are saved by bare name, which needs no YAML quoting.
	routes := make([]huh.Option[string], 0, len(router.All()))
	for _, r := range router.All() {
		routes = append(routes, huh.NewOption(r.Fragment(), r.Path()))
	}

	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Language").
			Options(stringOptions(config.Languages)...).
			Value(&ec.Language),
		huh.NewSelect[string]().
			Title("Theme").
			Options(stringOptions(config.Themes)...).
			Value(&ec.Theme),
		huh.NewSelect[string]().
			Title("Start route").
			Options(routes...).
			Value(&ec.StartRoute),
	))
}

func base64Form(ec *editorConfig) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("URL-safe alphabet").
			Value(&ec.URLSafe),
		huh.NewConfirm().
			Title("Padding").
			Value(&ec.Padded),
	))
}

func digestForm(ec *editorConfig) *huh.Form {
	opts := make([]huh.Option[string], 0, len(digest.Algorithms()))
	for _, a := range digest.Algorithms() {
		opts = append(opts, huh.NewOption(a.DisplayName(), string(a)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Algorithms").
				Options(opts...).
				Value(&ec.Algorithms).
				Validate(func(v []string) error {
					if len(v) == 0 {
						return errors.New("select at least one algorithm")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Highlighted algorithm").
				OptionsFunc(func() []huh.Option[string] {
					chosen := make([]huh.Option[string], 0, len(ec.Algorithms))
					for _, name := range ec.Algorithms {
						if a, err := digest.Parse(name); err == nil {
							chosen = append(chosen, huh.NewOption(a.DisplayName(), string(a)))
						}
					}
					return chosen
				}, &ec.Algorithms).
				Value(&ec.Chosen),
		),
	)
}

// validateBase accepts a decimal base within the converter's range.
func validateBase(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.New("must be a number")
	}
	if n < baseconv.MinBase || n > baseconv.MaxBase {
		return fmt.Errorf("must be between %d and %d", baseconv.MinBase, baseconv.MaxBase)
	}
	return nil
}

func baseConverterForm(ec *editorConfig) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("From base").
			Value(&ec.FromBase).
			Validate(validateBase),
		huh.NewInput().
			Title("To base").
			Value(&ec.ToBase).
			Validate(validateBase),
	))
}

func generatorsForm(ec *editorConfig) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Regex samples").
			Description("Strings produced in generate mode (1-100)").
			Value(&ec.Samples).
			Validate(func(s string) error {
				n, err := strconv.Atoi(s)
				if err != nil || n < 1 || n > 100 {
					return errors.New("must be a number between 1 and 100")
				}
				return nil
			}),
		huh.NewInput().
			Title("Sudden death default text").
			Description("Shown for empty input; blank picks a random phrase").
			Value(&ec.DefaultText),
	))
}

func loggingForm(ec *editorConfig) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Log file").
			Description("Blank disables logging").
			Value(&ec.LogFile),
		huh.NewSelect[string]().
			Title("Log level").
			Options(stringOptions([]string{"debug", "info", "warn", "error"})...).
			Value(&ec.LogLevel),
	))
}
