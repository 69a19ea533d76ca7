package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePreservesRowOrderAndFields(t *testing.T) {
	csvData := "media_id,comment_text,media_caption,timestamp\n" +
		"p1,great product,Launch day,2024-01-01T10:00:00Z\n" +
		"p2,,Second post,2024-01-02 15:04:05\n"

	records, err := NewNormalizer().Parse(csvData)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "p1", records[0].PostID)
	require.NotNil(t, records[0].Comment)
	assert.Equal(t, "great product", *records[0].Comment)
	require.NotNil(t, records[0].Timestamp)
	assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), *records[0].Timestamp)

	assert.Equal(t, "p2", records[1].PostID)
	assert.False(t, records[1].HasComment())
	require.NotNil(t, records[1].Timestamp)
	assert.Equal(t, time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC), *records[1].Timestamp)
}

func TestParseNormalizesTimezoneOffsetsToUTC(t *testing.T) {
	csvData := "media_id,timestamp\np1,2024-06-01T12:00:00+02:00\n"

	records, err := NewNormalizer().Parse(csvData)
	require.NoError(t, err)
	require.NotNil(t, records[0].Timestamp)
	assert.Equal(t, time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC), *records[0].Timestamp)
}

func TestParseRecoversBadTimestampAsNil(t *testing.T) {
	csvData := "media_id,comment_text,timestamp\np1,hello,not-a-date\n"

	records, err := NewNormalizer().Parse(csvData)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Nil(t, records[0].Timestamp)
	assert.True(t, records[0].HasComment())
}

func TestParseSynthesizesPostIDs(t *testing.T) {
	csvData := "comment_text\nfirst\nsecond\n"

	records, err := NewNormalizer().Parse(csvData)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "post_0", records[0].PostID)
	assert.Equal(t, "post_1", records[1].PostID)
}

func TestParseAbsentColumnsYieldNilFields(t *testing.T) {
	csvData := "media_id\np1\n"

	records, err := NewNormalizer().Parse(csvData)
	require.NoError(t, err)
	assert.Nil(t, records[0].Comment)
	assert.Nil(t, records[0].Caption)
	assert.Nil(t, records[0].Timestamp)
}

func TestParseRejectsMalformedRows(t *testing.T) {
	csvData := "media_id,comment_text\np1,\"unterminated\n"

	_, err := NewNormalizer().Parse(csvData)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCSV)
}

func TestParseRejectsEmptyInput(t *testing.T) {
	_, err := NewNormalizer().Parse("")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCSV)
}

func TestParseHeaderOnlyYieldsNoRecords(t *testing.T) {
	records, err := NewNormalizer().Parse("media_id,comment_text\n")
	require.NoError(t, err)
	assert.Empty(t, records)
}
