package services

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Spreadsheet serial dates count days from 1899-12-30 (UTC).
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// Largest serial a spreadsheet can represent (9999-12-31).
const maxSerial = 2958465

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"1/2/2006",
	"1/2/2006 15:04",
	"1/2/2006 3:04 PM",
	"1/2/06",
	"2006/01/02",
	"20060102",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"02-Jan-2006",
	"Mon Jan 2 2006",
}

// SerialToDate converts a serial day count to its calendar day.
// Any fractional (time-of-day) part is discarded.
func SerialToDate(serial float64) time.Time {
	return serialEpoch.AddDate(0, 0, int(math.Floor(serial)))
}

// DateToSerial returns the whole-day serial of t's calendar day in UTC.
func DateToSerial(t time.Time) float64 {
	day := truncateDay(t)
	secs := day.Unix() - serialEpoch.Unix()
	return float64(secs / 86400)
}

// ParseDate accepts a serial day count or a textual date.
// Unparseable input returns nil.
func ParseDate(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if f >= 0 && f <= maxSerial {
			d := SerialToDate(f)
			return &d
		}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d := truncateDay(t)
			return &d
		}
	}
	return nil
}

// Commas are only accepted as thousands separators in well-formed groups.
var thousandsGrouped = regexp.MustCompile(`^[-+]?\d{1,3}(,\d{3})+(\.\d+)?$`)

// ParseNumber parses a numeric cell, tolerating thousands separators and a
// leading currency sign. Empty, non-numeric and non-finite input returns nil,
// as does a comma anywhere but between thousands groups ("2,5" is not 25).
func ParseNumber(raw string) *float64 {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	if strings.Contains(s, ",") {
		if !thousandsGrouped.MatchString(s) {
			return nil
		}
		s = strings.ReplaceAll(s, ",", "")
	}
	if s == "" {
		return nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// truncateDay keeps the calendar day as written, dropping time and zone.
func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// optionalString trims s and returns nil when nothing is left.
func optionalString(s string, ok bool) *string {
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func optionalNumber(s string, ok bool) *float64 {
	if !ok {
		return nil
	}
	return ParseNumber(s)
}
