package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio-dashboard/internal/activity"
	"github.com/Zachkp/portfolio-dashboard/internal/config"
	"github.com/Zachkp/portfolio-dashboard/internal/contact"
	"github.com/Zachkp/portfolio-dashboard/internal/dashboard"
	"github.com/Zachkp/portfolio-dashboard/internal/metrics"
	"github.com/Zachkp/portfolio-dashboard/internal/portfolio"
	"github.com/Zachkp/portfolio-dashboard/internal/preference"
	"github.com/Zachkp/portfolio-dashboard/internal/server"
	"github.com/Zachkp/portfolio-dashboard/internal/stats"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides PORT)")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if port != "" {
		cfg.Port = port
	}
	if currentMonth != "" {
		cfg.CurrentMonth = currentMonth
	}
	return cfg, cfg.Validate()
}

func newMailer(cfg *config.Config) contact.Mailer {
	if cfg.SMTPEnabled() {
		log.Printf("Contact form delivers through SMTP %s:%s", cfg.SMTPHost, cfg.SMTPPort)
		return contact.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.ContactEmail)
	}
	return contact.MailtoMailer{To: cfg.ContactEmail}
}

func newEnricher(cfg *config.Config, panel *stats.Panel, feed *metrics.Feed) *stats.Enricher {
	e := &stats.Enricher{
		GitHubUser:   cfg.GitHubUser,
		LeetCode:     stats.NewLeetCodeClient(cfg.LeetCodeAPI, nil),
		LeetCodeUser: cfg.LeetCodeUser,
		Panel:        panel,
	}
	if gh, err := stats.NewGitHubClient(cfg.GitHubToken, nil); err != nil {
		log.Printf("GitHub stats disabled: %v", err)
	} else {
		e.GitHub = gh
	}
	if cfg.LiveMetrics {
		e.Feed = feed
	}
	return e
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog := portfolio.DefaultCatalog()
	dataset, err := activity.NewDataset(portfolio.Activity, cfg.CurrentMonth)
	if err != nil {
		return fmt.Errorf("failed to load activity data: %w", err)
	}

	prefs, err := preference.Open(ctx, cfg.PreferenceDB)
	if err != nil {
		return err
	}
	defer prefs.Close()
	log.Printf("Theme preferences stored in %s", cfg.PreferenceDB)

	mailer := newMailer(cfg)
	sessions := dashboard.NewSessions(catalog, func() *contact.Machine {
		return contact.NewMachine(mailer, cfg.SubmitDelay, cfg.ResetDelay)
	}, cfg.SessionTTL)
	defer sessions.Close()

	feed := metrics.NewFeed(portfolio.DefaultTargets())
	panel := &stats.Panel{}
	newEnricher(cfg, panel, feed).Start(ctx)

	srv, err := server.New(server.Deps{
		Catalog:  catalog,
		Activity: dataset,
		Sessions: sessions,
		Theme:    prefs,
		Feed:     feed,
		Animator: metrics.NewAnimator(cfg.AnimationDuration, cfg.AnimationSteps),
		Panel:    panel,
	})
	if err != nil {
		return err
	}

	return srv.Run(ctx, ":"+cfg.Port)
}
