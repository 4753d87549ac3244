package utils

import (
	"strings"
	"time"
)

// InvalidDate is what an unparseable date normalises to.
const InvalidDate = "Invalid Date"

// Layouts a client is known to send for an appointment date.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"Mon Jan 02 2006 15:04:05 GMT-0700",
	time.RFC1123,
	"Mon Jan 02 2006",
	"Mon Jan 2 2006",
	"1/2/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
}

// LocaleDateString renders a client-supplied date as a US short date ("M/D/YYYY"),
// the form appointments are stored with. Dates are read in UTC.
func LocaleDateString(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return InvalidDate
	}

	raw = trimZoneName(raw)

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Format("1/2/2006")
		}
	}
	return InvalidDate
}

// trimZoneName turns "Tue Oct 05 2021 14:23:11 GMT+0600 (Bangladesh Standard Time)"
// into something time.Parse accepts: the parenthesised zone name is dropped and an
// offset whose "+" was decoded to a space in a query string gets its sign back.
func trimZoneName(raw string) string {
	if i := strings.LastIndex(raw, " ("); i >= 0 && strings.HasSuffix(raw, ")") {
		raw = raw[:i]
	}
	if i := strings.Index(raw, "GMT "); i >= 0 && i+4 < len(raw) && raw[i+4] >= '0' && raw[i+4] <= '9' {
		raw = raw[:i+3] + "+" + raw[i+4:]
	}
	return raw
}
