// Package portfolio wires the blog content pipeline, the contact relay,
// and permalink resolution into a single embeddable module.
package portfolio

import (
	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-portfolio/blog"
	"github.com/goliatone/go-portfolio/contact"
	"github.com/goliatone/go-portfolio/internal/commands"
	"github.com/goliatone/go-portfolio/internal/links"
	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/internal/logging/gologger"
)

// Module exposes the assembled portfolio services.
type Module struct {
	cfg Config

	logs    logging.LoggerProvider
	blog    *blog.Service
	mailer  contact.Mailer
	contact *contact.SubmitHandler
	links   *links.Resolver
	routes  *urlkit.RouteManager
}

// Option overrides a default dependency during construction.
type Option func(*Module)

// WithLoggerProvider substitutes the logging backend. Useful for tests
// and for hosts that already carry a configured provider.
func WithLoggerProvider(provider logging.LoggerProvider) Option {
	return func(m *Module) {
		if provider != nil {
			m.logs = provider
		}
	}
}

// WithMailer substitutes the SMTP mailer behind the contact relay.
func WithMailer(mailer contact.Mailer) Option {
	return func(m *Module) {
		if mailer != nil {
			m.mailer = mailer
		}
	}
}

// New validates the configuration and assembles the module.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{cfg: cfg}
	for _, opt := range opts {
		opt(m)
	}

	if m.logs == nil {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
		})
		if err != nil {
			return nil, err
		}
		m.logs = provider
	}

	blogSvc, err := blog.New(blog.Config{
		ContentDir: cfg.Content.Dir,
		Extension:  cfg.Content.Extension,
		Render: blog.RenderOptions{
			HardWraps: cfg.Content.HardWraps,
			SafeMode:  cfg.Content.SafeMode,
		},
	}, blog.WithLogger(logging.BlogLogger(m.logs)))
	if err != nil {
		return nil, err
	}
	m.blog = blogSvc

	if m.mailer == nil {
		m.mailer = contact.NewSMTPMailer(contact.SMTPConfig{
			Host: cfg.Mail.Host,
			Port: cfg.Mail.Port,
			User: cfg.Mail.User,
			Pass: cfg.Mail.Pass,
			To:   cfg.Mail.To,
		})
	}
	m.contact = contact.NewSubmitHandler(m.mailer, commands.CommandLogger(m.logs, "contact"))

	if cfg.Routes != nil {
		m.routes = urlkit.NewRouteManager(cfg.Routes)
	}
	m.links = links.NewResolver(links.ResolverOptions{
		Manager:   m.routes,
		Group:     cfg.Links.Group,
		PostRoute: cfg.Links.PostRoute,
		ListRoute: cfg.Links.ListRoute,
		SlugParam: cfg.Links.SlugParam,
	})

	return m, nil
}

// Config returns the configuration the module was built with.
func (m *Module) Config() Config { return m.cfg }

// Blog returns the content query service.
func (m *Module) Blog() *blog.Service { return m.blog }

// Contact returns the contact submission handler.
func (m *Module) Contact() *contact.SubmitHandler { return m.contact }

// Links returns the permalink resolver.
func (m *Module) Links() *links.Resolver { return m.links }

// Logger returns a logger scoped to the given module name.
func (m *Module) Logger(module string) logging.Logger {
	return logging.ModuleLogger(m.logs, module)
}

// LoggerProvider exposes the underlying logging backend for host wiring.
func (m *Module) LoggerProvider() logging.LoggerProvider { return m.logs }
