package intent

// Level classifies the strength of a buyer-intent signal.
type Level string

// Intent levels, derived from the aggregated keyword score.
const (
	LevelHigh   Level = "High"
	LevelMedium Level = "Medium"
	LevelLow    Level = "Low"
)

// Signal is one scored indication of purchase interest, attributed to a
// post as a proxy for the engaging user.
type Signal struct {
	User           string   `json:"user"`
	Intent         Level    `json:"intent"`
	Score          int      `json:"score"`
	Signals        []string `json:"signals"`
	LastActivity   int      `json:"lastActivity"`
	PredictedValue string   `json:"predictedValue"`
}

// Category groups matched keywords into a named inquiry category with an
// estimated pipeline value.
type Category struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	Value    string `json:"value"`
}

// ConversionPrediction estimates conversions over a fixed time horizon.
type ConversionPrediction struct {
	Timeframe   string `json:"timeframe"`
	Probability int    `json:"probability"`
	Users       int    `json:"users"`
}

// NextBestAction is a suggested sales follow-up derived from the detected
// intent categories.
type NextBestAction struct {
	Action       string `json:"action"`
	Users        int    `json:"users"`
	Priority     string `json:"priority"`
	ExpectedLift string `json:"expectedLift"`
}

// TrendPoint is one point of the intent signal trend series.
type TrendPoint struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
}

// Report is the full buyer-intent discovery section of the analytics
// payload.
type Report struct {
	HighIntentUsersCount  int                    `json:"high_intent_users_count"`
	PredictedRevenue      string                 `json:"predicted_revenue"`
	ConversionRate        string                 `json:"conversion_rate"`
	ActiveProspects       int                    `json:"active_prospects"`
	IntentSignals         []Signal               `json:"intent_signals"`
	ConversionPredictions []ConversionPrediction `json:"conversion_predictions"`
	IntentCategories      []Category             `json:"intent_categories"`
	IntentSignalTrends    []TrendPoint           `json:"intent_signal_trends"`
	NextBestActions       []NextBestAction       `json:"next_best_actions"`
}
