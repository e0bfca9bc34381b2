package main

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/thehorseproject/website/modules/booking"
	"github.com/thehorseproject/website/modules/contact"
	"github.com/thehorseproject/website/modules/donate"
	"github.com/thehorseproject/website/modules/horses"
	"github.com/thehorseproject/website/modules/volunteer"
	"github.com/thehorseproject/website/pkg/config"
	"github.com/thehorseproject/website/pkg/email"
	"github.com/thehorseproject/website/pkg/httpserver"
	"github.com/thehorseproject/website/pkg/logger"
)

// siteConfig carries site-level settings: the runtime environment and the
// inboxes the form notifications go to.
type siteConfig struct {
	Environment     string `env:"APP_ENV" envDefault:"development"`
	OpsEmail        string `env:"OPS_EMAIL" envDefault:"thehorseprojectsb@gmail.com"`
	VolunteersEmail string `env:"VOLUNTEERS_EMAIL" envDefault:"volunteers@thehorseprojectsantabarbara.com"`
}

func main() {
	var (
		site     siteConfig
		emailCfg email.Config
		httpCfg  httpserver.Config
	)
	config.MustLoad(&site)
	config.MustLoad(&emailCfg)
	config.MustLoad(&httpCfg)

	log := logger.New(logger.WithEnvironment(site.Environment, "website"))
	logger.SetAsDefault(log)

	ctx := context.Background()

	sender, err := email.NewSender(ctx, emailCfg, log)
	if err != nil {
		log.Error("failed to set up email transport", logger.Error(err))
		os.Exit(1)
	}
	dispatcher := email.NewDispatcher(sender, emailCfg, log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", httpserver.HealthCheckHandler())

	r.Route("/api", func(r chi.Router) {
		r.Mount("/contact", contact.NewService(dispatcher, site.OpsEmail, log).Handle())
		r.Mount("/book", booking.NewService(dispatcher, site.OpsEmail, log).Handle())
		r.Mount("/join", volunteer.NewService(dispatcher, site.VolunteersEmail, log).Handle())
		r.Mount("/donate", donate.NewService(dispatcher, site.OpsEmail, log).Handle())
		r.Mount("/horses", horses.NewService().Handle())
	})

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	if err := srv.Run(ctx, r); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}
