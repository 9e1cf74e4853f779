package asset

import (
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

type Type string

const (
	TypeCash       Type = "cash"
	TypeInvestment Type = "investment"
	TypeProperty   Type = "property"
	TypeOther      Type = "other"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeCash, TypeInvestment, TypeProperty, TypeOther:
		return true
	}
	return false
}

func ParseType(s string) (Type, bool) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	return t, t.IsValid()
}

// Asset is strictly user-managed. No derived calculation may create, modify,
// or delete one; in particular remaining monthly cash is never converted into
// an asset.
type Asset struct {
	Id           ulid.ULID `json:"id"`
	UserId       ulid.ULID `json:"userId"`
	Type         Type      `json:"type"`
	Name         string    `json:"name"`
	CurrentValue float64   `json:"currentValue"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
