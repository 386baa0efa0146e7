package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wjs20/weight-tracker/internal/mail"
	"github.com/wjs20/weight-tracker/internal/metrics"
	"github.com/wjs20/weight-tracker/internal/telemetry/tracing"
	"github.com/wjs20/weight-tracker/internal/weight"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=orchestrator_mocks_test.go -package=report_test

type entriesSheet interface {
	Records(ctx context.Context) ([]map[string]string, error)
	InsertEntryRow(ctx context.Context, dateCell string) error
}

type mailSender interface {
	Send(ctx context.Context, msg mail.Message) error
}

const (
	reportSubject     = "Check out your progress!"
	attachmentName    = "Progress"
	noDataBody        = "Get a streak going so you can see a trend."
	notEnoughDataBody = "Not enough data points to get a weekly diff."
)

type Params struct {
	Sheet       entriesSheet
	Mailer      mailSender
	RenderChart func(weight.Series) ([]byte, error)
	Metrics     *metrics.Manager
	// EntriesLimit caps how far back the trend looks
	EntriesLimit int
	// DryRun composes and renders but skips the mail and the row insert
	DryRun bool
	// Now defaults to time.Now
	Now func() time.Time
}

// Orchestrator drives one full report run: fetch the sheet, derive the
// trend, render the chart, mail the summary, then add the blank row the
// next weigh-in goes into.
type Orchestrator struct {
	sheet       entriesSheet
	mailer      mailSender
	renderChart func(weight.Series) ([]byte, error)
	metrics     *metrics.Manager
	limit       int
	dryRun      bool
	now         func() time.Time
}

func NewOrchestrator(params Params) *Orchestrator {
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &Orchestrator{
		sheet:       params.Sheet,
		mailer:      params.Mailer,
		renderChart: params.RenderChart,
		metrics:     params.Metrics,
		limit:       params.EntriesLimit,
		dryRun:      params.DryRun,
		now:         now,
	}
}

func (o *Orchestrator) Run(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "report.run")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	startedAt := time.Now()
	o.metrics.CounterRuns.Inc()
	defer func() {
		o.metrics.HistRunDuration.Observe(time.Since(startedAt).Seconds())
		if err != nil {
			o.metrics.CounterRunFailures.Inc()
		}
	}()

	records, err := o.sheet.Records(ctx)
	if err != nil {
		return fmt.Errorf("fetch records: %w", err)
	}
	log.Debugf("fetched %d records", len(records))

	msg := mail.Message{Subject: reportSubject}

	series, err := weight.Extract(records, o.limit)
	switch {
	case errors.Is(err, weight.ErrNoData):
		log.Warnln("the sheet has no weight entries yet")
		msg.Body = o.happy(noDataBody)
	case err != nil:
		return fmt.Errorf("extract series: %w", err)
	default:
		msg.Body = o.trendBody(series)
		msg.Attachment, err = o.chartAttachment(series)
		if err != nil {
			return err
		}
		o.observeSeries(series)
	}

	if o.dryRun {
		log.Warnf("dry run, skipping mail and row insert; composed body: %s", msg.Body)
		return nil
	}

	if err := o.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("send report mail: %w", err)
	}
	o.metrics.CounterEmailsSent.Inc()

	nextDate := weight.FollowingDate(o.now(), 1, "")
	if err := o.sheet.InsertEntryRow(ctx, nextDate); err != nil {
		return fmt.Errorf("insert next day row: %w", err)
	}
	o.metrics.CounterRowsAppended.Inc()

	log.Infof("report sent, row for %s ready", nextDate)
	return nil
}

// trendBody picks the message text: the weekly change when the series
// spans enough weeks, the fallback otherwise.
func (o *Orchestrator) trendBody(series weight.Series) string {
	change, err := weight.WeeklyChange(series)
	if errors.Is(err, weight.ErrNotEnoughData) {
		return o.happy(notEnoughDataBody)
	}

	o.metrics.GaugeWeeklyChange.Set(change)
	return o.happy(fmt.Sprintf("Your weekly average change is %v", change))
}

// chartAttachment renders the chart; a series with nothing drawable is
// not an error, the report just goes out without a picture.
func (o *Orchestrator) chartAttachment(series weight.Series) (*mail.Attachment, error) {
	pngBytes, err := o.renderChart(series)
	switch {
	case errors.Is(err, weight.ErrNoData):
		log.Warnln("no drawable data, sending the report without a chart")
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("render chart: %w", err)
	}

	return &mail.Attachment{
		Name:        attachmentName,
		ContentType: "image/png",
		Data:        pngBytes,
	}, nil
}

func (o *Orchestrator) observeSeries(series weight.Series) {
	o.metrics.GaugeEntries.Set(float64(len(series)))
	if last, ok := series.LastRecorded(); ok {
		o.metrics.GaugeLastWeight.Set(*last.Weight)
	}
}

func (o *Orchestrator) happy(body string) string {
	return fmt.Sprintf("Happy %s. %s", o.now().Weekday(), body)
}
