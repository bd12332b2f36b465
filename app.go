// Package chakula is a Go client for the Chakula restaurant ordering
// platform: menu browsing, cart sync, checkout with payment settlement,
// order tracking, table booking and the role-gated manager and delivery
// surfaces. An App wires configuration, the HTTP client, the state stores
// and the services together; embedders pass the App (or the pieces they
// need) into their view layer instead of reaching for globals.
package chakula

import (
	"github.com/chakula-app/chakula-client/api"
	"github.com/chakula-app/chakula-client/checkout"
	"github.com/chakula-app/chakula-client/config"
	"github.com/chakula-app/chakula-client/payment"
	"github.com/chakula-app/chakula-client/pricing"
	"github.com/chakula-app/chakula-client/services"
	"github.com/chakula-app/chakula-client/stores"
)

type App struct {
	Config  config.Config
	Client  *api.Client
	Session *stores.Session

	Cart   *stores.CartStore
	Orders *stores.OrderStore

	Auth       *services.AuthService
	Menu       *services.MenuService
	CartSync   *services.CartService
	CartFlow   *services.CartFlow
	OrderAPI   *services.OrderService
	Bookings   *services.BookingService
	Deliveries *services.DeliveryService
	Payments   *payment.Service
	Checkout   *checkout.Flow
}

// New builds the full dependency graph from cfg.
func New(cfg config.Config) *App {
	session := stores.NewSession()
	client := api.New(cfg, session)
	calc := pricing.NewCalculator(cfg.TaxRate)

	cartStore := stores.NewCartStore(calc)
	orderService := services.NewOrderService(client)
	orderStore := stores.NewOrderStore(orderService, session)

	cartService := services.NewCartService(client)
	payments := payment.NewService(client, cfg.PaystackPublicKey, cfg.Currency)

	return &App{
		Config:     cfg,
		Client:     client,
		Session:    session,
		Cart:       cartStore,
		Orders:     orderStore,
		Auth:       services.NewAuthService(client, session),
		Menu:       services.NewMenuService(client),
		CartSync:   cartService,
		CartFlow:   services.NewCartFlow(cartService, cartStore),
		OrderAPI:   orderService,
		Bookings:   services.NewBookingService(client),
		Deliveries: services.NewDeliveryService(client),
		Payments:   payments,
		Checkout:   checkout.NewFlow(cartStore, orderStore, session, payments, calc, cfg.DeliveryFee),
	}
}
