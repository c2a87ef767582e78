// Package web is the storefront's HTTP surface: the presentation layer's
// call-ins (cart mutations, catalog reads, newsletter capture) and the
// display model it renders from. It owns no cart or catalog state itself.
package web

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	cartapp "github.com/elventhreads/storefront/internal/cart/app"
	catalogapp "github.com/elventhreads/storefront/internal/catalog/app"
	newsletterapp "github.com/elventhreads/storefront/internal/newsletter/app"
	"github.com/elventhreads/storefront/internal/notify"
)

type Server struct {
	catalog       *catalogapp.Service
	cart          *cartapp.Service
	notifications *notify.Center
	newsletter    *newsletterapp.Service
	log           *slog.Logger
}

func NewServer(
	catalog *catalogapp.Service,
	cart *cartapp.Service,
	notifications *notify.Center,
	newsletter *newsletterapp.Service,
	log *slog.Logger,
) *Server {
	return &Server{
		catalog:       catalog,
		cart:          cart,
		notifications: notifications,
		newsletter:    newsletter,
		log:           log,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", handleListProducts(s.catalog))
		r.Get("/products/{id}", handleGetProduct(s.catalog))

		r.Get("/cart", handleGetCart(s.cart, s.log))
		r.Post("/cart/items", handleAddItem(s.cart, s.catalog, s.log))
		r.Put("/cart/items/{id}", handleSetQuantity(s.cart, s.log))
		r.Delete("/cart/items/{id}", handleRemoveItem(s.cart, s.log))
		r.Delete("/cart", handleClearCart(s.cart, s.log))

		r.Get("/notifications", handleListNotifications(s.notifications))
		r.Post("/newsletter", handleSubscribe(s.newsletter, s.log))
	})

	return r
}
