// Package view turns catalog state and brand copy into template data.
package view

import (
	"github.com/dustin/go-humanize"
)

// RecordsUnit is appended by FormatRecords.
const RecordsUnit = "registros"

// FormatRecords formats a record count, e.g. "10,000 registros".
func FormatRecords(count int) string {
	return humanize.Comma(int64(count)) + " " + RecordsUnit
}
