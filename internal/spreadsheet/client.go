package spreadsheet

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/wjs20/weight-tracker/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const spreadsheetMimeType = "application/vnd.google-apps.spreadsheet"

var ErrSpreadsheetNotFound = errors.New("spreadsheet not found")

type Params struct {
	CredentialsPath string
	// SpreadsheetID wins over SpreadsheetName; with only a name the
	// client resolves the id through a drive lookup
	SpreadsheetID   string
	SpreadsheetName string
	// WorksheetName empty means the first worksheet
	WorksheetName string
}

// Client reads and extends the measurements worksheet of one Google
// Sheets spreadsheet, authenticated as a service account.
type Client struct {
	sheetsService  *sheets.Service
	spreadsheetID  string
	worksheetTitle string
	worksheetID    int64
}

func NewClient(ctx context.Context, params Params) (*Client, error) {
	credentialsJSON, err := os.ReadFile(params.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("read credentials file: %w", err)
	}

	// https://github.com/googleapis/google-api-go-client/blob/master/sheets/v4/sheets-gen.go
	sheetsService, err := sheets.NewService(ctx, option.WithCredentialsJSON(credentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets client: %w", err)
	}

	spreadsheetID := params.SpreadsheetID
	if spreadsheetID == "" {
		driveService, err := drive.NewService(ctx, option.WithCredentialsJSON(credentialsJSON))
		if err != nil {
			return nil, fmt.Errorf("unable to create drive client: %w", err)
		}
		spreadsheetID, err = resolveSpreadsheetID(ctx, driveService, params.SpreadsheetName)
		if err != nil {
			return nil, err
		}
		log.Debugf("spreadsheet [%s] resolved to id: %s", params.SpreadsheetName, spreadsheetID)
	}

	spreadsheet, err := sheetsService.Spreadsheets.
		Get(spreadsheetID).
		Fields("sheets(properties(sheetId,title))").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("get spreadsheet metadata: %w", err)
	}

	worksheet, err := pickWorksheet(spreadsheet.Sheets, params.WorksheetName)
	if err != nil {
		return nil, err
	}
	log.Debugf("using worksheet [%s], sheet id %d", worksheet.Title, worksheet.SheetId)

	return &Client{
		sheetsService:  sheetsService,
		spreadsheetID:  spreadsheetID,
		worksheetTitle: worksheet.Title,
		worksheetID:    worksheet.SheetId,
	}, nil
}

func resolveSpreadsheetID(ctx context.Context, driveService *drive.Service, name string) (string, error) {
	query := fmt.Sprintf(
		"mimeType = '%s' and trashed = false and name = '%s'",
		spreadsheetMimeType, name,
	)
	found, err := driveService.
		Files.List().
		Q(query).
		Fields("files(id, name)").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("unable to list spreadsheets: %w", err)
	}

	if len(found.Files) == 0 {
		return "", fmt.Errorf("%w: %s", ErrSpreadsheetNotFound, name)
	}
	if len(found.Files) > 1 {
		log.Warnf("attention: found %d spreadsheets named %s, will take the first one", len(found.Files), name)
	}
	return found.Files[0].Id, nil
}

func pickWorksheet(all []*sheets.Sheet, title string) (*sheets.SheetProperties, error) {
	for _, ws := range all {
		if ws.Properties == nil {
			continue
		}
		if title == "" || ws.Properties.Title == title {
			return ws.Properties, nil
		}
	}
	if title == "" {
		return nil, errors.New("spreadsheet has no worksheets")
	}
	return nil, fmt.Errorf("worksheet %q not found", title)
}

// Records returns the worksheet rows as maps keyed by the header row.
// Short rows are padded with empty strings.
func (c *Client) Records(ctx context.Context) (_ []map[string]string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "spreadsheet.records")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	resp, err := c.sheetsService.Spreadsheets.Values.
		Get(c.spreadsheetID, a1SheetName(c.worksheetTitle)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("get worksheet values: %w", err)
	}

	if len(resp.Values) == 0 {
		return nil, nil
	}

	return rowsToRecords(resp.Values[0], resp.Values[1:]), nil
}

func rowsToRecords(headerRow []interface{}, rows [][]interface{}) []map[string]string {
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = fmt.Sprint(header)
	}

	records := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		record := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(row) {
				record[header] = fmt.Sprint(row[i])
			} else {
				record[header] = ""
			}
		}
		records = append(records, record)
	}

	return records
}

// InsertEntryRow adds a blank row directly below the header and writes
// the given date into its first cell. The sheet keeps the newest entry
// at the top, so the new row lands at physical row 2.
func (c *Client) InsertEntryRow(ctx context.Context, dateCell string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "spreadsheet.insertEntryRow")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	insertRequest := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			InsertDimension: &sheets.InsertDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    c.worksheetID,
					Dimension:  "ROWS",
					StartIndex: 1,
					EndIndex:   2,
				},
				InheritFromBefore: false,
			},
		}},
	}
	_, err = c.sheetsService.Spreadsheets.
		BatchUpdate(c.spreadsheetID, insertRequest).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("insert row: %w", err)
	}

	newRow := &sheets.ValueRange{
		Values: [][]interface{}{{dateCell, ""}},
	}
	// RAW keeps the date a literal string; letting the sheet coerce it
	// into a date cell would render it back in the sheet locale's format
	_, err = c.sheetsService.Spreadsheets.Values.
		Update(c.spreadsheetID, a1SheetName(c.worksheetTitle)+"!A2:B2", newRow).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("write new row values: %w", err)
	}

	log.Debugf("row for %s inserted into %s", dateCell, c.worksheetTitle)
	return nil
}

// a1SheetName quotes a worksheet title for use in an A1 range.
func a1SheetName(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}
