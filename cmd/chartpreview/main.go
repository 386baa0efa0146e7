package main

import (
	"context"
	"flag"
	"os"

	"github.com/wjs20/weight-tracker/internal/chart"
	"github.com/wjs20/weight-tracker/internal/config"
	"github.com/wjs20/weight-tracker/internal/logging"
	"github.com/wjs20/weight-tracker/internal/spreadsheet"
	"github.com/wjs20/weight-tracker/internal/weight"

	log "github.com/sirupsen/logrus"
)

// chart preview cmd: render the progress chart to a local file
// without mailing anyone or touching the sheet

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	outPath := flag.String("out", "./progress.png", "where to write the chart image")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	logging.Setup(logging.SetupParams{
		LogToStdout: true,
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})

	ctx := context.Background()

	sheetClient, err := spreadsheet.NewClient(ctx, spreadsheet.Params{
		CredentialsPath: cfg.CredentialsPath,
		SpreadsheetID:   cfg.SpreadsheetID,
		SpreadsheetName: cfg.SpreadsheetName,
		WorksheetName:   cfg.WorksheetName,
	})
	if err != nil {
		log.Fatalf("new spreadsheet client: %s", err)
	}

	records, err := sheetClient.Records(ctx)
	if err != nil {
		log.Fatalf("fetch records: %s", err)
	}

	series, err := weight.Extract(records, cfg.EntriesLimit)
	if err != nil {
		log.Fatalf("extract series: %s", err)
	}

	pngBytes, err := chart.Render(series)
	if err != nil {
		log.Fatalf("render chart: %s", err)
	}

	if err := os.WriteFile(*outPath, pngBytes, 0644); err != nil {
		log.Fatalf("write chart image: %s", err)
	}

	log.Printf("chart with %d entries written to %s", len(series), *outPath)
}
