// Package export writes address records as CSV or JSON.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"address-resolver/internal/models"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

const utf8BOM = "\ufeff"

// Header is the CSV column order.
var Header = []string{
	"original_address",
	"lot_address",
	"road_address",
	"zipcode",
	"lon",
	"lat",
	"city",
	"district",
	"address_code",
	"match_confidence",
}

// ParseFormat accepts "csv" or "json", case-insensitively. "" means CSV.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("export: unsupported format %q", s)
}

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	if f == FormatJSON {
		return "application/json"
	}
	return "text/csv; charset=utf-8"
}

// Filter keeps the records labelled c. An empty c keeps everything.
func Filter(records []models.AddressRecord, c models.Confidence) []models.AddressRecord {
	if c == "" {
		return records
	}
	out := make([]models.AddressRecord, 0, len(records))
	for _, r := range records {
		if r.MatchConfidence == c {
			out = append(out, r)
		}
	}
	return out
}

// Write encodes records to w in format f.
func Write(w io.Writer, f Format, records []models.AddressRecord) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, records)
	default:
		return WriteCSV(w, records)
	}
}

// WriteCSV writes a BOM-prefixed CSV with every field quoted so spreadsheet
// tools open Korean text and leading-zero postal codes correctly.
func WriteCSV(w io.Writer, records []models.AddressRecord) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("export: failed to write BOM: %w", err)
	}
	if err := writeQuotedRow(w, Header); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.OriginalAddress,
			r.LotAddress,
			r.RoadAddress,
			r.Zipcode,
			r.Lon,
			r.Lat,
			r.City,
			r.District,
			r.AddressCode,
			string(r.MatchConfidence),
		}
		if err := writeQuotedRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

func writeQuotedRow(w io.Writer, fields []string) error {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	if _, err := io.WriteString(w, strings.Join(quoted, ",")+"\n"); err != nil {
		return fmt.Errorf("export: failed to write row: %w", err)
	}
	return nil
}

// WriteJSON writes records as an indented JSON array.
func WriteJSON(w io.Writer, records []models.AddressRecord) error {
	if records == nil {
		records = []models.AddressRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("export: failed to encode json: %w", err)
	}
	return nil
}
