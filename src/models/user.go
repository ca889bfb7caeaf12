package models

import "styledecor/src/types"

type User struct {
	ID       uint       `gorm:"primarykey" json:"id"`
	UID      string     `gorm:"index" json:"uid,omitempty"`
	Name     string     `json:"name,omitempty"`
	Email    string     `gorm:"uniqueIndex;not null" json:"email"`
	PhotoURL string     `json:"photoURL,omitempty"`
	Role     types.Role `gorm:"default:user" json:"role"`

	types.Timestamps
}

type Decorator struct {
	ID          uint                  `gorm:"primarykey" json:"id"`
	UserEmail   string                `gorm:"uniqueIndex;not null" json:"userEmail"`
	Name        string                `json:"name"`
	Slug        string                `gorm:"index" json:"slug"`
	Specialties types.JSONBArray      `gorm:"type:jsonb" json:"specialties,omitempty"`
	Experience  uint                  `json:"experience,omitempty"`
	Phone       string                `json:"phone,omitempty"`
	Status      types.DecoratorStatus `gorm:"index" json:"status"`

	types.Timestamps
}
