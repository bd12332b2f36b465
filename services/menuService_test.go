package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chakula-app/chakula-client/api"
	"github.com/chakula-app/chakula-client/config"
	"github.com/chakula-app/chakula-client/models"
	"github.com/chakula-app/chakula-client/stores"
)

func newMenuFixture(t *testing.T, engine *gin.Engine) *MenuService {
	t.Helper()
	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)

	client := api.New(config.Config{BaseURL: server.URL, RequestTimeout: 5 * time.Second}, stores.NewSession())
	return NewMenuService(client)
}

func TestMenuItemsFilterQuery(t *testing.T) {
	var query map[string][]string
	engine := gin.New()
	engine.GET("/api/v1/menu-items/", func(ctx *gin.Context) {
		query = ctx.Request.URL.Query()
		ctx.JSON(http.StatusOK, []models.MenuItem{{ID: 7, Name: "Nyama Choma", Price: 10.00}})
	})
	service := newMenuFixture(t, engine)

	items, err := service.Items(context.Background(), MenuFilter{Category: "grill", Featured: true, Search: "nyama"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Nyama Choma", items[0].Name)

	assert.Equal(t, []string{"grill"}, query["category"])
	assert.Equal(t, []string{"true"}, query["featured"])
	assert.Equal(t, []string{"nyama"}, query["search"])
	assert.NotContains(t, query, "available", "zero-value filters are omitted")
}

func TestMenuItemByID(t *testing.T) {
	engine := gin.New()
	engine.GET("/api/v1/menu-items/:itemId/", func(ctx *gin.Context) {
		assert.Equal(t, "7", ctx.Param("itemId"))
		ctx.JSON(http.StatusOK, models.MenuItem{ID: 7, Name: "Nyama Choma", Available: true})
	})
	service := newMenuFixture(t, engine)

	item, err := service.Item(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, item.ID)
	assert.True(t, item.Available)
}

func TestMenuCategories(t *testing.T) {
	engine := gin.New()
	engine.GET("/api/v1/categories/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, []models.Category{{ID: 1, Name: "Grill"}, {ID: 2, Name: "Drinks"}})
	})
	service := newMenuFixture(t, engine)

	categories, err := service.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Drinks", categories[1].Name)
}
