package spreadsheet

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

func TestRowsToRecords(t *testing.T) {
	header := []interface{}{"Date", "Weight"}
	rows := [][]interface{}{
		{"14/03/24", 82.4},
		{"15/03/24", ""},
		{"16/03/24"}, // short row, weight cell never touched
	}

	records := rowsToRecords(header, rows)
	require.Len(t, records, 3)

	assert.Equal(t, map[string]string{"Date": "14/03/24", "Weight": "82.4"}, records[0])
	assert.Equal(t, map[string]string{"Date": "15/03/24", "Weight": ""}, records[1])
	assert.Equal(t, map[string]string{"Date": "16/03/24", "Weight": ""}, records[2])
}

func TestRowsToRecords_NoDataRows(t *testing.T) {
	records := rowsToRecords([]interface{}{"Date", "Weight"}, nil)
	assert.Empty(t, records)
}

func TestRowsToRecords_ExtraCellsIgnored(t *testing.T) {
	header := []interface{}{"Date", "Weight"}
	rows := [][]interface{}{
		{"14/03/24", "82.4", "left over comment"},
	}

	records := rowsToRecords(header, rows)
	require.Len(t, records, 1)
	assert.Equal(t, map[string]string{"Date": "14/03/24", "Weight": "82.4"}, records[0])
}

func sheetWithTitle(title string, sheetID int64) *sheets.Sheet {
	return &sheets.Sheet{
		Properties: &sheets.SheetProperties{
			Title:   title,
			SheetId: sheetID,
		},
	}
}

func TestPickWorksheet(t *testing.T) {
	all := []*sheets.Sheet{
		sheetWithTitle("measurements", 0),
		sheetWithTitle("notes", 12),
	}

	// empty title means the first worksheet
	props, err := pickWorksheet(all, "")
	require.NoError(t, err)
	assert.Equal(t, "measurements", props.Title)

	props, err = pickWorksheet(all, "notes")
	require.NoError(t, err)
	assert.Equal(t, int64(12), props.SheetId)

	_, err = pickWorksheet(all, "nope")
	assert.ErrorContains(t, err, `worksheet "nope" not found`)

	_, err = pickWorksheet(nil, "")
	assert.ErrorContains(t, err, "no worksheets")
}

func TestA1SheetName(t *testing.T) {
	assert.Equal(t, "'Sheet1'", a1SheetName("Sheet1"))
	assert.Equal(t, "'my sheet'", a1SheetName("my sheet"))
	assert.Equal(t, "'it''s mine'", a1SheetName("it's mine"))
}

func TestInsertEntryRow(t *testing.T) {
	insertCallsCount := 0
	updateCallsCount := 0

	testServerHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, ":batchUpdate"):
			insertCallsCount++
			assert.Equal(t, http.MethodPost, r.Method)
			var batchReq sheets.BatchUpdateSpreadsheetRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&batchReq))
			require.Len(t, batchReq.Requests, 1)
			insertDim := batchReq.Requests[0].InsertDimension
			require.NotNil(t, insertDim)
			assert.Equal(t, "ROWS", insertDim.Range.Dimension)
			assert.Equal(t, int64(1), insertDim.Range.StartIndex)
			assert.Equal(t, int64(2), insertDim.Range.EndIndex)
		case strings.Contains(r.URL.Path, "/values/"):
			updateCallsCount++
			assert.Contains(t, r.URL.Path, "'measurements'!A2:B2")
			// the date has to land as a literal string so it reads back
			// parseable under any sheet locale
			assert.Equal(t, "RAW", r.URL.Query().Get("valueInputOption"))
			var valueRange sheets.ValueRange
			require.NoError(t, json.NewDecoder(r.Body).Decode(&valueRange))
			require.Len(t, valueRange.Values, 1)
			assert.Equal(t, []interface{}{"19/03/24", ""}, valueRange.Values[0])
		default:
			http.Error(w, "unexpected path/method", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte("{}"))
		require.NoError(t, err)
	})
	testServer := httptest.NewServer(testServerHandler)
	defer testServer.Close()

	ctx := context.Background()
	sheetsService, err := sheets.NewService(
		ctx,
		option.WithEndpoint(testServer.URL),
		option.WithHTTPClient(testServer.Client()),
	)
	require.NoError(t, err)

	client := &Client{
		sheetsService:  sheetsService,
		spreadsheetID:  "test-spreadsheet-id",
		worksheetTitle: "measurements",
	}

	require.NoError(t, client.InsertEntryRow(ctx, "19/03/24"))
	assert.Equal(t, 1, insertCallsCount)
	assert.Equal(t, 1, updateCallsCount)
}
