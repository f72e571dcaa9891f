package entities

// TrendPoint is the mean overall score of all scored calls on one calendar date
type TrendPoint struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Score float64 `json:"score"`
}

// ObjectionCount is how often one objection type appeared across a call set
type ObjectionCount struct {
	Type  ObjectionType `json:"type"`
	Count int           `json:"count"`
}

// RepPerformance summarizes one rep's scored calls
type RepPerformance struct {
	RepID           string  `json:"repId"`
	RepName         string  `json:"repName"`
	AvgScore        float64 `json:"avgScore"`
	CallCount       int     `json:"callCount"`
	TopCoachingArea string  `json:"topCoachingArea"`
}

// InsightsOverview is the aggregate view over a user's full call history.
// It is derived on every request and never persisted.
type InsightsOverview struct {
	TotalCalls         int              `json:"totalCalls"`
	AvgScore           float64          `json:"avgScore"`
	ScoreTrend         []TrendPoint     `json:"scoreTrend"`
	ObjectionFrequency []ObjectionCount `json:"objectionFrequency"`
	RepPerformance     []RepPerformance `json:"repPerformance"`
}
