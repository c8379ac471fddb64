package models

import (
	"time"

	"github.com/uptrace/bun"
)

const DateLayout = "2006-01-02"

type Interaction struct {
	bun.BaseModel `bun:"table:interactions"`
	ID            string          `bun:"id,pk" json:"id"`
	PartnerID     string          `bun:"partner_id,notnull" json:"partnerId"`
	ManagerID     string          `bun:"manager_id,notnull" json:"managerId"`
	Type          InteractionType `bun:"type,notnull" json:"type"`
	Date          time.Time       `bun:"date,notnull" json:"date"`
	Duration      int             `bun:"duration,notnull" json:"duration"`
	Quality       int             `bun:"quality,notnull" json:"quality"`
	Notes         *string         `bun:"notes" json:"notes"`
	CreatedAt     time.Time       `bun:"created_at,notnull" json:"createdAt"`
}

type InteractionView struct {
	ID         string          `json:"id"`
	PartnerID  string          `json:"partnerId"`
	ManagerID  string          `json:"managerId"`
	Type       InteractionType `json:"type"`
	Date       string          `json:"date"`
	Duration   int             `json:"duration"`
	Quality    int             `json:"quality"`
	Notes      *string         `json:"notes"`
	CreatedAt  time.Time       `json:"createdAt"`
	ClientName string          `json:"clientName,omitempty"`
}

func NewInteractionView(i *Interaction) InteractionView {
	return InteractionView{
		ID:        i.ID,
		PartnerID: i.PartnerID,
		ManagerID: i.ManagerID,
		Type:      i.Type,
		Date:      i.Date.UTC().Format(DateLayout),
		Duration:  i.Duration,
		Quality:   i.Quality,
		Notes:     i.Notes,
		CreatedAt: i.CreatedAt,
	}
}

type InteractionCreateRequest struct {
	PartnerID string          `json:"partnerId" validate:"required"`
	ManagerID string          `json:"managerId" validate:"required"`
	Type      InteractionType `json:"type" validate:"required,enum"`
	Date      string          `json:"date" validate:"required,date"`
	Duration  int             `json:"duration" validate:"required,min=1"`
	Quality   int             `json:"quality" validate:"required,min=1,max=5"`
	Notes     *string         `json:"notes"`
}

// ParseDate accepts a calendar date or an RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(DateLayout)
	return &s
}
