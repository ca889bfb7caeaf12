package common

import (
	"context"
	"fmt"
	"styledecor/src/db/dbtest"
	"styledecor/src/models"
	"styledecor/src/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// seedScenario inserts 21 services priced 100..500 in steps of 20 across two
// categories, plus two outside that band.
func seedScenario(t *testing.T, gdb *gorm.DB) {
	t.Helper()
	services := []models.Service{}
	for i := 0; i < 21; i++ {
		category := "Home"
		if i%2 == 1 {
			category = "Wedding"
		}
		services = append(services, models.Service{
			Title:    fmt.Sprintf("Decor %02d", i),
			Category: category,
			Price:    int64(100 + i*20),
		})
	}
	services = append(services,
		models.Service{Title: "Budget Balloons", Category: "Birthday", Price: 50},
		models.Service{Title: "Grand Gala", Category: "Corporate", Price: 900},
	)
	require.NoError(t, gdb.Create(&services).Error)
}

func TestQueryServicesScenario(t *testing.T) {
	gdb := dbtest.Open(t)
	seedScenario(t, gdb)

	page, err := QueryServices(context.Background(), &types.ServiceQueryFilters{
		Category: "All",
		MinPrice: "100",
		MaxPrice: "500",
		Sort:     "desc",
		Page:     2,
		Limit:    5,
	})
	require.NoError(t, err)

	// prices 100..500 step 20 -> 21 rows
	assert.Equal(t, int64(21), page.Total)
	assert.Equal(t, 5, page.TotalPages)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 5, page.Limit)
	require.Len(t, page.Data, 5)
	// ranks 6..10 in descending price order
	assert.Equal(t, []int64{400, 380, 360, 340, 320}, prices(page.Data))
}

func TestQueryServicesTwentyThreeMatches(t *testing.T) {
	gdb := dbtest.Open(t)
	for i := 0; i < 23; i++ {
		require.NoError(t, gdb.Create(&models.Service{
			Title:    fmt.Sprintf("Item %02d", i),
			Category: "Home",
			Price:    int64(100 + i*10),
		}).Error)
	}

	page, err := QueryServices(context.Background(), &types.ServiceQueryFilters{
		Category: "All",
		MinPrice: "100",
		MaxPrice: "500",
		Sort:     "desc",
		Page:     2,
		Limit:    5,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(23), page.Total)
	assert.Equal(t, 5, page.TotalPages)
	assert.Equal(t, []int64{270, 260, 250, 240, 230}, prices(page.Data))
}

func TestQueryServicesTotalIndependentOfPage(t *testing.T) {
	gdb := dbtest.Open(t)
	seedScenario(t, gdb)

	var totals []int64
	for _, p := range []struct{ page, limit int }{{1, 3}, {2, 7}, {10, 9}, {1, 100}} {
		page, err := QueryServices(context.Background(), &types.ServiceQueryFilters{
			Category: "Home",
			Page:     p.page,
			Limit:    p.limit,
		})
		require.NoError(t, err)
		totals = append(totals, page.Total)

		skip := (p.page - 1) * p.limit
		want := int(page.Total) - skip
		if want < 0 {
			want = 0
		}
		if want > p.limit {
			want = p.limit
		}
		assert.Len(t, page.Data, want, "page %d limit %d", p.page, p.limit)
	}
	for _, total := range totals {
		assert.Equal(t, int64(11), total)
	}
}

func TestQueryServicesOrdering(t *testing.T) {
	gdb := dbtest.Open(t)
	seedScenario(t, gdb)
	require.NoError(t, gdb.Create(&models.Service{Title: "Decor twin", Category: "Home", Price: 100}).Error)

	asc, err := QueryServices(context.Background(), &types.ServiceQueryFilters{Limit: 100})
	require.NoError(t, err)
	for i := 1; i < len(asc.Data); i++ {
		prev, cur := asc.Data[i-1], asc.Data[i]
		assert.LessOrEqual(t, prev.Price, cur.Price)
		if prev.Price == cur.Price {
			assert.Less(t, prev.ID, cur.ID)
		}
	}

	desc, err := QueryServices(context.Background(), &types.ServiceQueryFilters{Sort: "desc", Limit: 100})
	require.NoError(t, err)
	for i := 1; i < len(desc.Data); i++ {
		assert.GreaterOrEqual(t, desc.Data[i-1].Price, desc.Data[i].Price)
	}

	upper, err := QueryServices(context.Background(), &types.ServiceQueryFilters{Sort: "DESC", Limit: 1})
	require.NoError(t, err)
	require.Len(t, upper.Data, 1)
	assert.Equal(t, int64(900), upper.Data[0].Price)
}

func TestQueryServicesFilters(t *testing.T) {
	gdb := dbtest.Open(t)
	seedScenario(t, gdb)
	require.NoError(t, gdb.Create(&models.Service{Title: "50%_Off Lights", Category: "Home", Price: 10}).Error)

	t.Run("search is case-insensitive substring", func(t *testing.T) {
		page, err := QueryServices(context.Background(), &types.ServiceQueryFilters{Search: "gala"})
		require.NoError(t, err)
		require.Len(t, page.Data, 1)
		assert.Equal(t, "Grand Gala", page.Data[0].Title)
	})

	t.Run("search treats LIKE wildcards literally", func(t *testing.T) {
		page, err := QueryServices(context.Background(), &types.ServiceQueryFilters{Search: "%_"})
		require.NoError(t, err)
		require.Len(t, page.Data, 1)
		assert.Equal(t, "50%_Off Lights", page.Data[0].Title)
	})

	t.Run("category is exact", func(t *testing.T) {
		page, err := QueryServices(context.Background(), &types.ServiceQueryFilters{Category: "Birthday"})
		require.NoError(t, err)
		require.Len(t, page.Data, 1)
		assert.Equal(t, "Budget Balloons", page.Data[0].Title)
	})

	t.Run("zero is a bound", func(t *testing.T) {
		page, err := QueryServices(context.Background(), &types.ServiceQueryFilters{MinPrice: "0", MaxPrice: "0"})
		require.NoError(t, err)
		assert.Equal(t, int64(0), page.Total)
		assert.Equal(t, 0, page.TotalPages)
		assert.Empty(t, page.Data)
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		page, err := QueryServices(context.Background(), &types.ServiceQueryFilters{MinPrice: "900"})
		require.NoError(t, err)
		require.Len(t, page.Data, 1)
		assert.Equal(t, int64(900), page.Data[0].Price)
	})

	t.Run("malformed price", func(t *testing.T) {
		_, err := QueryServices(context.Background(), &types.ServiceQueryFilters{MinPrice: "cheap"})
		assert.ErrorIs(t, err, ErrInvalidFilter)
	})

	t.Run("defaults and cap", func(t *testing.T) {
		page, err := QueryServices(context.Background(), &types.ServiceQueryFilters{})
		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 9, page.Limit)
		assert.Len(t, page.Data, 9)

		page, err = QueryServices(context.Background(), &types.ServiceQueryFilters{Limit: 1000})
		require.NoError(t, err)
		assert.Equal(t, 100, page.Limit)
	})

	t.Run("page past the end", func(t *testing.T) {
		page, err := QueryServices(context.Background(), &types.ServiceQueryFilters{Page: 50})
		require.NoError(t, err)
		assert.Empty(t, page.Data)
		assert.Equal(t, int64(24), page.Total)
	})
}

func TestListCategories(t *testing.T) {
	gdb := dbtest.Open(t)
	seedScenario(t, gdb)
	require.NoError(t, gdb.Create(&models.Service{Title: "Untitled", Category: "", Price: 1}).Error)

	categories, err := ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Birthday", "Corporate", "Home", "Wedding"}, categories)
}

func TestGetService(t *testing.T) {
	gdb := dbtest.Open(t)
	price := int64(250)
	created, err := CreateService(context.Background(), &types.CreateServiceRequestBody{
		Title:    " Floral Arch ",
		Category: "Wedding",
		Price:    &price,
	})
	require.NoError(t, err)
	assert.Equal(t, "Floral Arch", created.Title)

	got, err := GetService(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(250), got.Price)

	var count int64
	gdb.Model(&models.Service{}).Count(&count)
	_, err = GetService(context.Background(), uint(count)+10)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func prices(services []models.Service) []int64 {
	out := make([]int64, 0, len(services))
	for _, s := range services {
		out = append(out, s.Price)
	}
	return out
}
