package portfolio

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	urlkit "github.com/goliatone/go-urlkit"
)

// ErrContentDirRequired indicates no content directory was configured.
var ErrContentDirRequired = errors.New("portfolio config: content directory is required")

// ErrLoggingLevelInvalid flags an unrecognized logging level.
var ErrLoggingLevelInvalid = errors.New("portfolio config: logging level is invalid")

// ErrLoggingFormatInvalid flags an unrecognized logging format.
var ErrLoggingFormatInvalid = errors.New("portfolio config: logging format is invalid")

// ErrMailPortInvalid flags a non-numeric SMTP port.
var ErrMailPortInvalid = errors.New("portfolio config: mail port must be numeric")

// Config aggregates settings for the portfolio module. Fields use simple
// types so host applications can populate them from flags or environment.
type Config struct {
	Content ContentConfig
	Mail    MailConfig
	Logging LoggingConfig
	Links   LinksConfig
	Server  ServerConfig

	// Routes configures permalink generation; nil leaves link
	// resolution inert.
	Routes *urlkit.Config
}

// ContentConfig points the blog service at its markdown directory.
type ContentConfig struct {
	Dir       string
	Extension string
	HardWraps bool
	SafeMode  bool
}

// MailConfig captures SMTP settings for the contact relay. Empty
// credentials leave the relay unconfigured; submissions then fail at
// send time rather than at startup.
type MailConfig struct {
	Host string
	Port string
	User string
	Pass string
	To   string
}

// LoggingConfig captures options for the go-logger provider.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
}

// ServerConfig captures listen options for the bundled HTTP server.
type ServerConfig struct {
	Addr string
}

// LinksConfig selects the route group and names used for permalinks.
type LinksConfig struct {
	Group     string
	PostRoute string
	ListRoute string
	SlugParam string
}

// DefaultConfig returns a configuration suitable for local development.
func DefaultConfig() Config {
	return Config{
		Content: ContentConfig{
			Dir:       "content/posts",
			Extension: ".md",
		},
		Mail: MailConfig{
			Host: "smtp.gmail.com",
			Port: "587",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Links: LinksConfig{
			Group:     "site",
			PostRoute: "post",
			ListRoute: "blog",
			SlugParam: "slug",
		},
	}
}

// Validate performs consistency checks across all sections.
func (cfg Config) Validate() error {
	if err := cfg.Content.Validate(); err != nil {
		return err
	}
	if err := cfg.Mail.Validate(); err != nil {
		return err
	}
	return cfg.Logging.Validate()
}

// Validate ensures the content section can feed the blog service.
func (cfg ContentConfig) Validate() error {
	if strings.TrimSpace(cfg.Dir) == "" {
		return ErrContentDirRequired
	}
	return nil
}

// Validate checks the mail section. All fields are optional; only the
// port format is enforced when present.
func (cfg MailConfig) Validate() error {
	return validation.ValidateStruct(&cfg,
		validation.Field(&cfg.Port, validation.By(func(any) error {
			port := strings.TrimSpace(cfg.Port)
			if port == "" {
				return nil
			}
			for _, r := range port {
				if r < '0' || r > '9' {
					return fmt.Errorf("%w: %s", ErrMailPortInvalid, port)
				}
			}
			return nil
		})),
	)
}

// Validate checks level and format against the supported sets. Empty
// values fall back to provider defaults.
func (cfg LoggingConfig) Validate() error {
	return validation.ValidateStruct(&cfg,
		validation.Field(&cfg.Level, validation.By(func(any) error {
			level := strings.ToLower(strings.TrimSpace(cfg.Level))
			switch level {
			case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
				return nil
			default:
				return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
			}
		})),
		validation.Field(&cfg.Format, validation.By(func(any) error {
			format := strings.ToLower(strings.TrimSpace(cfg.Format))
			switch format {
			case "", "json", "console", "pretty":
				return nil
			default:
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		})),
	)
}
