package scopes

import (
	"strings"

	"gorm.io/gorm"
)

func WithID(id uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	}
}

func WithUnpaidStatus(db *gorm.DB) *gorm.DB {
	return db.Where("(status IS NULL OR status <> ?)", "Paid")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// WithTitleSearch matches services whose title contains term, ignoring case.
func WithTitleSearch(term string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" {
			return db
		}
		pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
		return db.Where(`LOWER(title) LIKE ? ESCAPE '\'`, pattern)
	}
}

// WithCategory filters on exact category; "All" and "" disable the filter.
func WithCategory(category string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if category == "" || category == "All" {
			return db
		}
		return db.Where("category = ?", category)
	}
}

// WithPriceRange applies inclusive bounds; nil means unbounded.
func WithPriceRange(min, max *int64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if min != nil {
			db = db.Where("price >= ?", *min)
		}
		if max != nil {
			db = db.Where("price <= ?", *max)
		}
		return db
	}
}

// OrderByPrice sorts by price with id as the tie-break so pages stay stable.
func OrderByPrice(desc bool) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if desc {
			return db.Order("price DESC").Order("id ASC")
		}
		return db.Order("price ASC").Order("id ASC")
	}
}

func Paginate(page, limit int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset((page - 1) * limit).Limit(limit)
	}
}
