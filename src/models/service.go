package models

import "styledecor/src/types"

type Service struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Category    string `gorm:"index" json:"category"`
	Price       int64  `gorm:"index" json:"price"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`

	types.Timestamps
}

// Package is a curated bundle of services shown on the landing page.
type Package struct {
	ID          uint             `gorm:"primarykey" json:"id"`
	Title       string           `gorm:"not null" json:"title"`
	Description string           `json:"description,omitempty"`
	Price       int64            `json:"price"`
	Image       string           `json:"image,omitempty"`
	Features    types.JSONBArray `gorm:"type:jsonb" json:"features,omitempty"`

	types.Timestamps
}
