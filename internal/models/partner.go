package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

type Partner struct {
	bun.BaseModel  `bun:"table:real_estate_partners"`
	ID             string         `bun:"id,pk" json:"id"`
	Name           string         `bun:"name,notnull" json:"name"`
	Type           PartnerType    `bun:"type,notnull" json:"type"`
	Classification Classification `bun:"classification,notnull" json:"classification"`
	Relationship   Relationship   `bun:"relationship,notnull" json:"relationship"`
	ManagerID      string         `bun:"manager_id,notnull" json:"managerId"`
	City           string         `bun:"city,notnull" json:"city"`
	ContactName    string         `bun:"contact_name,notnull" json:"contactName"`
	Status         PartnerStatus  `bun:"status,notnull" json:"status"`
	CreatedAt      time.Time      `bun:"created_at,notnull" json:"createdAt"`
	UpdatedAt      time.Time      `bun:"updated_at,notnull" json:"updatedAt"`
}

// PartnerMetrics is one-to-one with Partner.
type PartnerMetrics struct {
	bun.BaseModel `bun:"table:partner_metrics"`
	ID            string          `bun:"id,pk" json:"id"`
	PartnerID     string          `bun:"partner_id,notnull" json:"partnerId"`
	Sales         int             `bun:"sales,notnull" json:"sales"`
	Reservations  int             `bun:"reservations,notnull" json:"reservations"`
	ROI           decimal.Decimal `bun:"roi,type:decimal(10,2),notnull" json:"roi"`
	LastContact   *time.Time      `bun:"last_contact" json:"lastContact"`
	UpdatedAt     time.Time       `bun:"updated_at,notnull" json:"updatedAt"`
}

type MetricsView struct {
	Sales        int     `json:"sales"`
	Reservations int     `json:"reservations"`
	ROI          float64 `json:"roi"`
	LastContact  *string `json:"lastContact"`
}

// NewMetricsView renders m for the client; a nil m renders as all zeros.
func NewMetricsView(m *PartnerMetrics) MetricsView {
	if m == nil {
		return MetricsView{}
	}
	return MetricsView{
		Sales:        m.Sales,
		Reservations: m.Reservations,
		ROI:          m.ROI.InexactFloat64(),
		LastContact:  FormatDate(m.LastContact),
	}
}

type PartnerWithMetrics struct {
	Partner
	Metrics MetricsView `json:"metrics"`
}

type PartnerDetails struct {
	Partner
	Metrics      *MetricsView      `json:"metrics"`
	Interactions []InteractionView `json:"interactions"`
}

type PartnerCreateRequest struct {
	Name           string         `json:"name" validate:"required"`
	Type           PartnerType    `json:"type" validate:"required,enum"`
	Classification Classification `json:"classification" validate:"omitempty,enum"`
	Relationship   Relationship   `json:"relationship" validate:"omitempty,enum"`
	ManagerID      string         `json:"managerId" validate:"required"`
	City           string         `json:"city" validate:"required"`
	ContactName    string         `json:"contactName" validate:"required"`
	Status         PartnerStatus  `json:"status" validate:"omitempty,enum"`
}

type PartnerUpdateRequest struct {
	Name           *string         `json:"name,omitempty" validate:"omitempty,min=1"`
	Type           *PartnerType    `json:"type,omitempty" validate:"omitempty,enum"`
	Classification *Classification `json:"classification,omitempty" validate:"omitempty,enum"`
	Relationship   *Relationship   `json:"relationship,omitempty" validate:"omitempty,enum"`
	ManagerID      *string         `json:"managerId,omitempty" validate:"omitempty,min=1"`
	City           *string         `json:"city,omitempty" validate:"omitempty,min=1"`
	ContactName    *string         `json:"contactName,omitempty" validate:"omitempty,min=1"`
	Status         *PartnerStatus  `json:"status,omitempty" validate:"omitempty,enum"`
}

// MetricsUpdateRequest overwrites all three numbers; an omitted number is written as zero.
type MetricsUpdateRequest struct {
	Sales        *int             `json:"sales" validate:"omitempty,min=0"`
	Reservations *int             `json:"reservations" validate:"omitempty,min=0"`
	ROI          *decimal.Decimal `json:"roi"`
}
