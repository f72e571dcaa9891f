package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CallSource indicates how the transcript reached the system
const (
	CallSourcePaste  = "paste"
	CallSourceUpload = "upload"
)

// Call is a recorded sales conversation plus its analysis results.
// Summary, Score and Objections are attached independently after each
// pipeline run; re-running an operation overwrites only its own field.
type Call struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID         uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;index:idx_calls_user_occurred"`
	RepID          uuid.UUID      `json:"rep_id" gorm:"type:uuid;not null;index"`
	Rep            *Rep           `json:"rep,omitempty" gorm:"foreignKey:RepID"`
	Title          string         `json:"title" gorm:"type:varchar(500);not null"`
	OccurredAt     time.Time      `json:"occurred_at" gorm:"not null;index:idx_calls_user_occurred,sort:desc"`
	TranscriptText string         `json:"transcript_text" gorm:"type:text;not null"`
	Source         string         `json:"source" gorm:"type:varchar(20);not null;default:'paste'"`
	Category       string         `json:"category,omitempty" gorm:"type:varchar(50)"`
	Tags           datatypes.JSON `json:"tags,omitempty" gorm:"type:jsonb"`
	AISummary      string         `json:"ai_summary,omitempty" gorm:"type:text"`
	AICoaching     string         `json:"ai_coaching,omitempty" gorm:"type:text"`
	Score          *Score         `json:"score,omitempty" gorm:"type:jsonb;serializer:json"`
	Objections     []Objection    `json:"objections,omitempty" gorm:"type:jsonb;serializer:json"`
	CreatedAt      time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Call
func (Call) TableName() string {
	return "calls"
}

// NewCall creates a new Call entity
func NewCall(userID, repID uuid.UUID, title, transcriptText string, occurredAt time.Time, source string) *Call {
	return &Call{
		ID:             uuid.New(),
		UserID:         userID,
		RepID:          repID,
		Title:          title,
		OccurredAt:     occurredAt,
		TranscriptText: transcriptText,
		Source:         source,
	}
}

// TagsJSON encodes a tag list for the jsonb tags column
func TagsJSON(tags []string) datatypes.JSON {
	if len(tags) == 0 {
		return nil
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}

// RepName resolves the display name of the rep the call belongs to
func (c *Call) RepName() string {
	if c.Rep != nil && c.Rep.Name != "" {
		return c.Rep.Name
	}
	return "Unknown Rep"
}

// HasScore reports whether the call has been scored
func (c *Call) HasScore() bool {
	return c.Score != nil
}
