package chakula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chakula-app/chakula-client/config"
	"github.com/chakula-app/chakula-client/models"
)

func TestNewWiresFullGraph(t *testing.T) {
	app := New(config.Config{
		BaseURL:     "https://api.chakula.example",
		TaxRate:     0.10,
		DeliveryFee: 5.00,
		Currency:    "KES",
	})

	require.NotNil(t, app.Client)
	require.NotNil(t, app.Session)
	require.NotNil(t, app.Cart)
	require.NotNil(t, app.Orders)
	require.NotNil(t, app.Auth)
	require.NotNil(t, app.Menu)
	require.NotNil(t, app.CartFlow)
	require.NotNil(t, app.Bookings)
	require.NotNil(t, app.Deliveries)
	require.NotNil(t, app.Payments)
	require.NotNil(t, app.Checkout)
}

func TestAppSharesOneCartStore(t *testing.T) {
	app := New(config.Config{BaseURL: "https://api.chakula.example", TaxRate: 0.10})

	require.NoError(t, app.Cart.AddItem(models.CartItem{ID: "ci-1", MenuItemID: 1, Name: "Chai", Price: 2.00, Quantity: 1}))
	assert.Len(t, app.Cart.Items(), 1)
	assert.Equal(t, 2.20, app.Cart.Cart().Total, "store computes with the configured tax rate")
}
