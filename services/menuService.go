package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/chakula-app/chakula-client/api"
	"github.com/chakula-app/chakula-client/models"
)

const (
	menuItemsPath  = "/api/v1/menu-items/"
	categoriesPath = "/api/v1/categories/"
)

// MenuFilter narrows the menu listing. Zero values mean no filtering.
type MenuFilter struct {
	Category  string
	Featured  bool
	Available bool
	Search    string
}

type MenuService struct {
	client *api.Client
}

func NewMenuService(client *api.Client) *MenuService {
	return &MenuService{client: client}
}

// Items lists menu items matching the filter.
func (s *MenuService) Items(ctx context.Context, filter MenuFilter) ([]models.MenuItem, error) {
	req := s.client.R(ctx)
	if filter.Category != "" {
		req.SetQueryParam("category", filter.Category)
	}
	if filter.Featured {
		req.SetQueryParam("featured", strconv.FormatBool(filter.Featured))
	}
	if filter.Available {
		req.SetQueryParam("available", strconv.FormatBool(filter.Available))
	}
	if filter.Search != "" {
		req.SetQueryParam("search", filter.Search)
	}

	var items []models.MenuItem
	err := s.client.Execute("menu.Items", req, resty.MethodGet, menuItemsPath, &items)
	return items, err
}

// Item fetches one menu item by id.
func (s *MenuService) Item(ctx context.Context, id int) (models.MenuItem, error) {
	var item models.MenuItem
	err := s.client.Execute("menu.Item", s.client.R(ctx), resty.MethodGet, fmt.Sprintf("%s%d/", menuItemsPath, id), &item)
	return item, err
}

// Categories lists the menu categories for the category navigation.
func (s *MenuService) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := s.client.Execute("menu.Categories", s.client.R(ctx), resty.MethodGet, categoriesPath, &categories)
	return categories, err
}
