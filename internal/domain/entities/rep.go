package entities

import (
	"time"

	"github.com/google/uuid"
)

// Rep is a sales representative whose calls are analyzed
type Rep struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	RoleTitle string    `json:"role_title" gorm:"type:varchar(255);not null"`
	Region    string    `json:"region,omitempty" gorm:"type:varchar(100)"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Rep
func (Rep) TableName() string {
	return "reps"
}

// NewRep creates a new Rep entity
func NewRep(userID uuid.UUID, name, roleTitle, region string) *Rep {
	return &Rep{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		RoleTitle: roleTitle,
		Region:    region,
	}
}
