package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrollmark/internal/metrics"
	"scrollmark/internal/service/analytics"
	"scrollmark/internal/service/assembler"
	"scrollmark/internal/service/ingest"
	intentservice "scrollmark/internal/service/intent"
)

func newTestHandler() *AnalyzeHandler {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	rng := rand.New(rand.NewSource(3))
	now := func() time.Time { return time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC) }

	pipeline := analytics.NewPipeline(
		analytics.NewSentimentAnalyzer(nil, 0),
		analytics.NewRecommender(nil, rng, 0),
		intentservice.NewScorer(rng, now),
		rng,
		0,
		logger,
	)

	return NewAnalyzeHandler(
		ingest.NewNormalizer(),
		pipeline,
		assembler.New(rng, now),
		metrics.NewCollector(),
		logger,
	)
}

func postAnalyze(t *testing.T, handler *AnalyzeHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	handler.Analyze(recorder, req)
	return recorder
}

func TestAnalyzeReturnsFullPayload(t *testing.T) {
	csv := "timestamp,media_id,comment_text,media_caption\n" +
		"2024-01-01T10:00:00Z,p1,great price!,Launch day\n" +
		"2024-01-01T11:00:00Z,p1,,Launch day\n"
	body, err := json.Marshal(AnalyzeRequest{CSVData: csv})
	require.NoError(t, err)

	recorder := postAnalyze(t, newTestHandler(), string(body))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))

	for _, section := range []string{
		"report_id",
		"generated_at",
		"engagement_metrics",
		"publishing_recommendations",
		"diagnostic_metrics",
		"sentiment_analysis",
		"virality_score",
		"buyer_intent_discovery",
		"advocate_identification",
	} {
		assert.Contains(t, payload, section)
	}

	var engagement struct {
		TotalPosts    int `json:"total_posts"`
		TotalComments int `json:"total_comments"`
	}
	require.NoError(t, json.Unmarshal(payload["engagement_metrics"], &engagement))
	assert.Equal(t, 1, engagement.TotalPosts)
	assert.Equal(t, 1, engagement.TotalComments)

	var buyerIntent struct {
		HighIntentUsersCount int `json:"high_intent_users_count"`
	}
	require.NoError(t, json.Unmarshal(payload["buyer_intent_discovery"], &buyerIntent))
	assert.Equal(t, 1, buyerIntent.HighIntentUsersCount)
}

func TestAnalyzeRejectsInvalidJSON(t *testing.T) {
	recorder := postAnalyze(t, newTestHandler(), "{not json")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Invalid JSON body")
}

func TestAnalyzeRejectsMissingCSVData(t *testing.T) {
	recorder := postAnalyze(t, newTestHandler(), `{"csv_data":"  "}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Missing csv_data")
}

func TestAnalyzeRejectsMalformedCSV(t *testing.T) {
	csv := "timestamp,media_id,comment_text\n\"unclosed,p1,hello\n"
	body, err := json.Marshal(AnalyzeRequest{CSVData: csv})
	require.NoError(t, err)

	recorder := postAnalyze(t, newTestHandler(), string(body))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Invalid CSV data")
}

func TestAnalyzeHeaderOnlyCSVStillSucceeds(t *testing.T) {
	body, err := json.Marshal(AnalyzeRequest{CSVData: "timestamp,media_id,comment_text\n"})
	require.NoError(t, err)

	recorder := postAnalyze(t, newTestHandler(), string(body))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, strings.Contains(recorder.Body.String(), "\"total_posts\":0"))
}
