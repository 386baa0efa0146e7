package weight

import (
	"fmt"
	"time"
)

// SheetDateLayout is the dd/mm/yy format of the sheet's Date column.
const SheetDateLayout = "02/01/06"

var entryDateLayouts = []string{
	SheetDateLayout,
	"02/01/2006",
	"2006-01-02",
}

// FollowingDate renders ref shifted by the given number of days.
// A zero ref means now, an empty layout means SheetDateLayout.
func FollowingDate(ref time.Time, days int, layout string) string {
	if ref.IsZero() {
		ref = time.Now()
	}
	if layout == "" {
		layout = SheetDateLayout
	}
	return ref.AddDate(0, 0, days).Format(layout)
}

// ParseEntryDate parses a Date cell. Dates are expected as dd/mm/yy,
// with dd/mm/yyyy and ISO yyyy-mm-dd accepted for manually edited rows.
func ParseEntryDate(value string) (time.Time, error) {
	for _, layout := range entryDateLayouts {
		if date, err := time.Parse(layout, value); err == nil {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse date %q", value)
}
