package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/wjs20/weight-tracker/internal/chart"
	"github.com/wjs20/weight-tracker/internal/config"
	"github.com/wjs20/weight-tracker/internal/logging"
	"github.com/wjs20/weight-tracker/internal/mail"
	"github.com/wjs20/weight-tracker/internal/metrics"
	"github.com/wjs20/weight-tracker/internal/report"
	"github.com/wjs20/weight-tracker/internal/spreadsheet"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

// the nightly weight report cmd: fetch the sheet, mail the progress
// summary, prepare the row for tomorrow's weigh-in

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	dryRun := flag.Bool("dry-run", false, "compose the report but send no mail and touch no rows")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	// secrets come from the environment, a local .env file is
	// just a convenience for development
	if err := godotenv.Load(); err != nil {
		log.Tracef("no .env file loaded: %s", err)
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	secrets, err := config.LoadSecrets()
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.SetupParams{
		LogFileName:   cfg.LogsPath,
		LogToStdout:   cfg.LogToStdout,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: false,
		Environment:   cfg.Environment,
		SentryEnabled: cfg.SentryEnabled,
		SentryDSN:     secrets.SentryDSN,
	})

	log.Debugf("using spreadsheet: [%s%s]", cfg.SpreadsheetName, cfg.SpreadsheetID)
	log.Debugf("using logs path: [%s]", cfg.LogsPath)
	if *dryRun {
		log.Warnln("!! attention: dry run, nothing will be sent or written")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)
	go func() {
		receivedSig := <-chOsInterrupt
		log.Warnf("signal [%s] received, aborting the run ...", receivedSig)
		cancel()
	}()

	sheetClient, err := spreadsheet.NewClient(ctx, spreadsheet.Params{
		CredentialsPath: cfg.CredentialsPath,
		SpreadsheetID:   cfg.SpreadsheetID,
		SpreadsheetName: cfg.SpreadsheetName,
		WorksheetName:   cfg.WorksheetName,
	})
	if err != nil {
		log.Fatalf("new spreadsheet client: %s", err)
	}

	mailer := mail.NewMailer(mail.Params{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: secrets.EmailUser,
		Password: secrets.EmailPass,
	})

	reg := prometheus.NewRegistry()
	metricsManager := metrics.NewManager("weighttracker", "daily", reg)

	orchestrator := report.NewOrchestrator(report.Params{
		Sheet:        sheetClient,
		Mailer:       mailer,
		RenderChart:  chart.Render,
		Metrics:      metricsManager,
		EntriesLimit: cfg.EntriesLimit,
		DryRun:       *dryRun,
	})

	runErr := orchestrator.Run(ctx)

	// push whatever happened, the failure counters matter the most
	if cfg.PushgatewayURL != "" {
		if err := metrics.Push(cfg.PushgatewayURL, "weight-tracker", reg); err != nil {
			log.Errorf("push metrics to [%s]: %s", cfg.PushgatewayURL, err)
		}
	}

	if runErr != nil {
		log.Fatalf("run failed: %s", runErr)
	}

	log.Println("all done")
}
