package models

import (
	"time"

	"github.com/google/uuid"
)

// InvitationSettings is the design state saved with an invitation. For
// template-based designs the FieldValues map is keyed by the catalog's
// SvgField IDs, so a reload round-trips straight back into the injector.
type InvitationSettings struct {
	Bg             string   `json:"bg"`
	OverlayOpacity *float64 `json:"overlayOpacity,omitempty"`
	GlowIntensity  *float64 `json:"glowIntensity,omitempty"`

	TitleSize *int `json:"titleSize,omitempty"`
	NameSize  *int `json:"nameSize,omitempty"`
	DateSize  *int `json:"dateSize,omitempty"`
	TitleX    *int `json:"titleX,omitempty"`
	TitleY    *int `json:"titleY,omitempty"`
	NameX     *int `json:"nameX,omitempty"`
	NameY     *int `json:"nameY,omitempty"`
	DateX     *int `json:"dateX,omitempty"`
	DateY     *int `json:"dateY,omitempty"`

	TitleColor *string `json:"titleColor,omitempty"`
	NameColor  *string `json:"nameColor,omitempty"`
	DateColor  *string `json:"dateColor,omitempty"`
	TitleFont  *string `json:"titleFont,omitempty"`
	NameFont   *string `json:"nameFont,omitempty"`
	DateFont   *string `json:"dateFont,omitempty"`

	IsTemplate  bool              `json:"isTemplate,omitempty"`
	TemplateID  *string           `json:"templateId,omitempty"`
	TextSVG     *string           `json:"textSvg,omitempty"`
	FieldValues map[string]string `json:"fieldValues,omitempty"`
}

// Invitation represents a saved invitation row in the database. Rows are
// never updated in place; re-saving creates a new record.
type Invitation struct {
	ID         uuid.UUID          `json:"id,omitempty"`
	Name       string             `json:"name"`
	EventTitle string             `json:"event_title"`
	HostName   string             `json:"host_name"`
	DateTime   string             `json:"date_time"`
	Settings   InvitationSettings `json:"settings"`
	CreatedAt  time.Time          `json:"created_at"`
	UserID     string             `json:"user_id,omitempty"`
}
