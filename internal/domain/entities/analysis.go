package entities

// Category values a conversation can be classified into
const (
	CategorySalesCall       = "sales_call"
	CategoryCustomerSupport = "customer_support"
	CategoryInternalMeeting = "internal_meeting"
	CategoryTraining        = "training"
	CategoryOther           = "other"
)

// ObjectionType identifies the kind of buyer pushback detected in a call
type ObjectionType string

const (
	ObjectionPricing    ObjectionType = "pricing"
	ObjectionTiming     ObjectionType = "timing"
	ObjectionCompetitor ObjectionType = "competitor"
	ObjectionAuthority  ObjectionType = "authority"
	ObjectionNeed       ObjectionType = "need"
	ObjectionTrust      ObjectionType = "trust"
)

// ObjectionTypes is the fixed taxonomy in enumeration order
var ObjectionTypes = []ObjectionType{
	ObjectionPricing,
	ObjectionTiming,
	ObjectionCompetitor,
	ObjectionAuthority,
	ObjectionNeed,
	ObjectionTrust,
}

// Summary is the structured summarize result for one call
type Summary struct {
	Summary       string   `json:"summary"`
	KeyMoments    []string `json:"keyMoments"`
	NextSteps     []string `json:"nextSteps"`
	CoachingNotes string   `json:"coachingNotes"`
	IsSalesCall   bool     `json:"isSalesCall"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
}

// ScoreCategories holds the four per-category scores, each 0-10
type ScoreCategories struct {
	Discovery  int `json:"discovery"`
	Objections int `json:"objections"`
	Clarity    int `json:"clarity"`
	NextSteps  int `json:"nextSteps"`
}

// Score is the structured scoring result for one call
type Score struct {
	Overall     int             `json:"overall"`
	Categories  ScoreCategories `json:"categories"`
	Rationale   string          `json:"rationale"`
	IsSalesCall bool            `json:"isSalesCall"`
}

// Objection is one detected buyer objection with a supporting excerpt
type Objection struct {
	Type       ObjectionType `json:"type"`
	Snippet    string        `json:"snippet"`
	Confidence float64       `json:"confidence"`
}

// InvalidTranscriptRationale explains a zero score caused by a rejected transcript
const InvalidTranscriptRationale = "Invalid or nonsensical transcript detected. Please provide a valid sales call transcript with meaningful dialogue between a sales representative and a prospect. The transcript should contain actual conversation content, not random characters or placeholder text."

// ZeroScore returns the score used for transcripts that are not scorable
func ZeroScore(rationale string) *Score {
	return &Score{
		Overall:     0,
		Categories:  ScoreCategories{},
		Rationale:   rationale,
		IsSalesCall: false,
	}
}
