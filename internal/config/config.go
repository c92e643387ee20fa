// Package config assembles the runtime configuration from flags and environment
package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"golang.org/x/text/language"

	"github.com/alvarorichard/cineflux/internal/util"
)

// Environment variables read at startup
const (
	EnvAPIKey   = "TMDB_API_KEY"
	EnvLanguage = "CINEFLUX_LANG"
)

// Defaults
const (
	DefaultLanguage = "pt-BR"
	DefaultBaseURL  = "https://api.themoviedb.org/3"
)

// Config holds everything the application needs to start
type Config struct {
	APIKey   string `validate:"required"`
	Language string `validate:"required,locale"`
	BaseURL  string `validate:"required,url"`
	LogFile  string
	Discord  bool
	Debug    bool

	ShowHelp    bool
	ShowVersion bool

	// SearchTerm is the initial search term taken from positional arguments
	SearchTerm string
}

// Parse reads flags from args (without the program name) and falls back to
// getenv for values not given on the command line. It does not validate.
func Parse(args []string, getenv func(string) string) (*Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	cfg := &Config{}
	fs := flag.NewFlagSet("cineflux", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var help, altHelp bool
	fs.BoolVar(&cfg.Debug, "debug", false, "enable debug mode")
	fs.BoolVar(&help, "help", false, "show help message")
	fs.BoolVar(&altHelp, "h", false, "show help message")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "show version information")
	fs.BoolVar(&cfg.Discord, "discord", false, "enable Discord Rich Presence")
	fs.StringVar(&cfg.Language, "lang", "", "result language (BCP 47)")
	fs.StringVar(&cfg.LogFile, "log", "", "log file path")
	fs.StringVar(&cfg.BaseURL, "base-url", DefaultBaseURL, "TMDB API base URL")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "invalid command line")
	}

	cfg.ShowHelp = help || altHelp
	cfg.SearchTerm = util.SearchTermFromArgs(fs.Args())
	cfg.APIKey = strings.TrimSpace(getenv(EnvAPIKey))

	if cfg.Language == "" {
		cfg.Language = strings.TrimSpace(getenv(EnvLanguage))
	}
	if cfg.Language == "" {
		cfg.Language = DefaultLanguage
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return cfg, nil
}

// Validate checks the configuration and canonicalizes the language tag
func (c *Config) Validate() error {
	if err := newValidator().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return describe(verrs[0])
		}
		return errors.Wrap(err, "invalid configuration")
	}

	tag, _ := language.Parse(c.Language)
	c.Language = tag.String()
	return nil
}

// DefaultLogFile returns the log path used when -log is not given
func DefaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "cineflux", "cineflux.log")
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("locale", func(fl validator.FieldLevel) bool {
		_, err := language.Parse(fl.Field().String())
		return err == nil
	})
	return v
}

func describe(fe validator.FieldError) error {
	switch fe.Field() {
	case "APIKey":
		return errors.Errorf("%s is not set; get a free key at https://www.themoviedb.org/settings/api", EnvAPIKey)
	case "Language":
		return errors.Errorf("invalid language %q: expected a BCP 47 tag such as pt-BR", fe.Value())
	case "BaseURL":
		return errors.Errorf("invalid TMDB base URL %q", fe.Value())
	default:
		return errors.Errorf("invalid %s (%s)", fe.Field(), fe.Tag())
	}
}
