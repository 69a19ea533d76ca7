// internal/service/ingest/normalizer.go

package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"scrollmark/internal/domain/engagement"
)

// ErrInvalidCSV indicates the input is not valid tabular text. Individual
// bad field values never produce this error; they are recovered locally.
var ErrInvalidCSV = errors.New("invalid csv input")

// Recognized columns. All are optional; unknown columns are ignored.
const (
	columnTimestamp = "timestamp"
	columnPostID    = "media_id"
	columnComment   = "comment_text"
	columnCaption   = "media_caption"
)

// timestampLayouts are tried in order when coercing the timestamp column.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Normalizer parses raw CSV exports into ordered engagement records.
type Normalizer struct{}

// NewNormalizer creates a new normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Parse converts a CSV document into engagement records, preserving input
// row order. A header row is required. Rows with missing or unparsable
// timestamps are kept with a nil timestamp; rows without a post identifier
// get a synthetic one derived from their position.
func (n *Normalizer) Parse(data string) ([]engagement.Record, error) {
	reader := csv.NewReader(strings.NewReader(data))

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: missing header row", ErrInvalidCSV)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var records []engagement.Record
	for rowIndex := 0; ; rowIndex++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrInvalidCSV, rowIndex+1, err)
		}

		record := engagement.Record{
			PostID:    postID(row, columns, rowIndex),
			Comment:   optionalField(row, columns, columnComment),
			Caption:   optionalField(row, columns, columnCaption),
			Timestamp: parseTimestamp(row, columns),
		}
		records = append(records, record)
	}

	return records, nil
}

func postID(row []string, columns map[string]int, rowIndex int) string {
	if i, ok := columns[columnPostID]; ok && i < len(row) {
		if id := strings.TrimSpace(row[i]); id != "" {
			return id
		}
	}
	return fmt.Sprintf("post_%d", rowIndex)
}

// optionalField returns nil when the column is absent from the input, so
// downstream aggregation can distinguish a missing column from an empty
// value.
func optionalField(row []string, columns map[string]int, column string) *string {
	i, ok := columns[column]
	if !ok || i >= len(row) {
		return nil
	}
	value := row[i]
	return &value
}

// parseTimestamp coerces the timestamp field to a canonical UTC instant.
// Any parse failure yields nil rather than an error; the row still
// participates in aggregations that do not require a timestamp.
func parseTimestamp(row []string, columns map[string]int) *time.Time {
	i, ok := columns[columnTimestamp]
	if !ok || i >= len(row) {
		return nil
	}

	value := strings.TrimSpace(row[i])
	if value == "" {
		return nil
	}

	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			utc := ts.UTC()
			return &utc
		}
	}
	return nil
}
