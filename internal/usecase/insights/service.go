package insights

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/callcoachhq/call-coach/errors"
	"github.com/callcoachhq/call-coach/internal/domain/entities"
	"github.com/callcoachhq/call-coach/internal/domain/repositories"
)

// trendWindowDays bounds the score trend to the trailing 30 days
const trendWindowDays = 30

// unscoredCeiling is the neutral per-category value assumed for a rep
// with no scored calls, so empty categories do not look like coaching
// gaps. For such a rep topCoachingArea is the first category in the
// fixed enumeration order, which is arbitrary.
const unscoredCeiling = 10.0

// scoreCategoryOrder is the fixed category enumeration; it doubles as
// the tie-break order for the weakest coaching area.
var scoreCategoryOrder = []string{"discovery", "objections", "clarity", "nextSteps"}

var categoryLabels = map[string]string{
	"discovery":  "Discovery",
	"objections": "Objections",
	"clarity":    "Clarity",
	"nextSteps":  "Next Steps",
}

// Service computes team-level insights over a user's call history
type Service interface {
	ComputeOverview(ctx context.Context, userID uuid.UUID) (*entities.InsightsOverview, error)
}

type insightsService struct {
	callRepo repositories.CallRepository
	logger   *zap.Logger
	now      func() time.Time
}

// NewService constructs the insights service
func NewService(callRepo repositories.CallRepository, logger *zap.Logger) Service {
	return &insightsService{
		callRepo: callRepo,
		logger:   logger,
		now:      time.Now,
	}
}

// ComputeOverview aggregates the user's full call history. The overview
// is recomputed from scratch on every invocation and never persisted.
func (s *insightsService) ComputeOverview(ctx context.Context, userID uuid.UUID) (*entities.InsightsOverview, error) {
	calls, err := s.callRepo.FindByUserID(ctx, userID, nil)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed("list calls", err)
	}

	overview := Aggregate(calls, s.now())

	if s.logger != nil {
		s.logger.Debug("computed insights overview",
			zap.String("user_id", userID.String()),
			zap.Int("total_calls", overview.TotalCalls),
		)
	}

	return overview, nil
}

// Aggregate computes the overview for a snapshot of calls. It is a pure
// function of its inputs; now anchors the trailing trend window.
func Aggregate(calls []*entities.Call, now time.Time) *entities.InsightsOverview {
	return &entities.InsightsOverview{
		TotalCalls:         len(calls),
		AvgScore:           averageScore(calls),
		ScoreTrend:         scoreTrend(calls, now),
		ObjectionFrequency: objectionFrequency(calls),
		RepPerformance:     repPerformance(calls),
	}
}

func averageScore(calls []*entities.Call) float64 {
	sum, count := 0, 0
	for _, c := range calls {
		if c.HasScore() {
			sum += c.Score.Overall
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return round1(float64(sum) / float64(count))
}

// scoreTrend groups scored calls from the trailing window by calendar
// date and emits the per-date mean in ascending date order. Dates with
// no qualifying calls are omitted, not zero-filled.
func scoreTrend(calls []*entities.Call, now time.Time) []entities.TrendPoint {
	cutoff := now.AddDate(0, 0, -trendWindowDays)

	byDate := make(map[string][]int)
	for _, c := range calls {
		if !c.HasScore() || c.OccurredAt.Before(cutoff) {
			continue
		}
		date := c.OccurredAt.Format("2006-01-02")
		byDate[date] = append(byDate[date], c.Score.Overall)
	}

	trend := make([]entities.TrendPoint, 0, len(byDate))
	for date, scores := range byDate {
		sum := 0
		for _, v := range scores {
			sum += v
		}
		trend = append(trend, entities.TrendPoint{
			Date:  date,
			Score: float64(sum) / float64(len(scores)),
		})
	}

	sort.Slice(trend, func(i, j int) bool {
		return trend[i].Date < trend[j].Date
	})
	return trend
}

// objectionFrequency counts objection types across all calls regardless
// of recency, most frequent first. Ties keep the fixed taxonomy order.
func objectionFrequency(calls []*entities.Call) []entities.ObjectionCount {
	counts := make(map[entities.ObjectionType]int)
	for _, c := range calls {
		for _, obj := range c.Objections {
			counts[obj.Type]++
		}
	}

	freq := make([]entities.ObjectionCount, 0, len(counts))
	for _, t := range entities.ObjectionTypes {
		if counts[t] > 0 {
			freq = append(freq, entities.ObjectionCount{Type: t, Count: counts[t]})
		}
	}

	sort.SliceStable(freq, func(i, j int) bool {
		return freq[i].Count > freq[j].Count
	})
	return freq
}

type repAccumulator struct {
	name       string
	scores     []int
	callCount  int
	categories map[string][]int
}

// repPerformance ranks reps by mean overall score and names the weakest
// scored category as the coaching focus
func repPerformance(calls []*entities.Call) []entities.RepPerformance {
	byRep := make(map[string]*repAccumulator)
	order := make([]string, 0)

	for _, c := range calls {
		repID := c.RepID.String()
		acc, ok := byRep[repID]
		if !ok {
			acc = &repAccumulator{
				name:       c.RepName(),
				categories: make(map[string][]int),
			}
			byRep[repID] = acc
			order = append(order, repID)
		}

		acc.callCount++

		if c.HasScore() {
			acc.scores = append(acc.scores, c.Score.Overall)
			acc.categories["discovery"] = append(acc.categories["discovery"], c.Score.Categories.Discovery)
			acc.categories["objections"] = append(acc.categories["objections"], c.Score.Categories.Objections)
			acc.categories["clarity"] = append(acc.categories["clarity"], c.Score.Categories.Clarity)
			acc.categories["nextSteps"] = append(acc.categories["nextSteps"], c.Score.Categories.NextSteps)
		}
	}

	performance := make([]entities.RepPerformance, 0, len(order))
	for _, repID := range order {
		acc := byRep[repID]

		avg := 0.0
		if len(acc.scores) > 0 {
			sum := 0
			for _, v := range acc.scores {
				sum += v
			}
			avg = round1(float64(sum) / float64(len(acc.scores)))
		}

		performance = append(performance, entities.RepPerformance{
			RepID:           repID,
			RepName:         acc.name,
			AvgScore:        avg,
			CallCount:       acc.callCount,
			TopCoachingArea: weakestCategory(acc.categories),
		})
	}

	sort.SliceStable(performance, func(i, j int) bool {
		return performance[i].AvgScore > performance[j].AvgScore
	})
	return performance
}

// weakestCategory returns the human label of the category with the
// lowest mean; categories with no data default to the neutral ceiling.
// On a tie the first category in the fixed order wins.
func weakestCategory(categories map[string][]int) string {
	best := scoreCategoryOrder[0]
	bestAvg := math.Inf(1)

	for _, key := range scoreCategoryOrder {
		values := categories[key]
		avg := unscoredCeiling
		if len(values) > 0 {
			sum := 0
			for _, v := range values {
				sum += v
			}
			avg = float64(sum) / float64(len(values))
		}
		if avg < bestAvg {
			best = key
			bestAvg = avg
		}
	}

	return categoryLabels[best]
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
