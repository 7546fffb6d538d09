package portfolio

import (
	"errors"
	"strings"
	"testing"
)

func TestConfigValidate_DefaultsPass(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate_RequiresContentDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Content.Dir = "   "

	err := cfg.Validate()
	if !errors.Is(err, ErrContentDirRequired) {
		t.Fatalf("expected ErrContentDirRequired, got %v", err)
	}
}

func TestConfigValidate_RejectsNonNumericMailPort(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mail.Port = "smtp"

	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "mail port must be numeric") {
		t.Fatalf("expected mail port error, got %v", err)
	}
}

func TestConfigValidate_AllowsEmptyMailSection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mail = MailConfig{}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty mail section must validate: %v", err)
	}
}

func TestConfigValidate_RejectsUnknownLoggingLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "verbose"

	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "logging level is invalid") {
		t.Fatalf("expected logging level error, got %v", err)
	}
}

func TestConfigValidate_RejectsUnknownLoggingFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "logging format is invalid") {
		t.Fatalf("expected logging format error, got %v", err)
	}
}

func TestConfigValidate_EmptyLoggingFallsBackToDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging = LoggingConfig{}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty logging section must validate: %v", err)
	}
}
