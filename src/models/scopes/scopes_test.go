package scopes

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type service struct {
	ID       uint
	Title    string
	Category string
	Price    int64
}

func dryRun(t *testing.T) *gorm.DB {
	t.Helper()
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return gdb
}

func TestServiceScopesSQL(t *testing.T) {
	gdb := dryRun(t)
	min, max := int64(0), int64(500)

	stmt := gdb.
		Model(&service{}).
		Scopes(
			WithTitleSearch("50%_Off"),
			WithCategory("Wedding"),
			WithPriceRange(&min, &max),
			OrderByPrice(true),
			Paginate(2, 5),
		).
		Find(&[]service{}).
		Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, `LOWER(title) LIKE $1 ESCAPE '\'`)
	assert.Contains(t, sql, "category = $2")
	assert.Contains(t, sql, "price >= $3")
	assert.Contains(t, sql, "price <= $4")
	assert.Contains(t, sql, "ORDER BY price DESC,id ASC")
	assert.Contains(t, sql, "LIMIT 5 OFFSET 5")
	assert.Equal(t, []any{`%50\%\_off%`, "Wedding", int64(0), int64(500)}, stmt.Vars)
}

func TestNoOpScopes(t *testing.T) {
	gdb := dryRun(t)

	stmt := gdb.
		Model(&service{}).
		Scopes(
			WithTitleSearch(""),
			WithCategory("All"),
			WithPriceRange(nil, nil),
		).
		Find(&[]service{}).
		Statement

	assert.NotContains(t, stmt.SQL.String(), "WHERE")
	assert.Empty(t, stmt.Vars)
}

func TestWithUnpaidStatus(t *testing.T) {
	gdb := dryRun(t)

	stmt := gdb.
		Model(&service{}).
		Where("id = ?", 3).
		Scopes(WithUnpaidStatus).
		Find(&[]service{}).
		Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "WHERE id = $1 AND (")
	assert.Contains(t, sql, "status IS NULL OR status <> $2")
	assert.Equal(t, []any{3, "Paid"}, stmt.Vars)
}
