package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	cartapp "github.com/elventhreads/storefront/internal/cart/app"
	cartdomain "github.com/elventhreads/storefront/internal/cart/domain"
	catalogapp "github.com/elventhreads/storefront/internal/catalog/app"
	catalogdomain "github.com/elventhreads/storefront/internal/catalog/domain"
	newsletterapp "github.com/elventhreads/storefront/internal/newsletter/app"
	"github.com/elventhreads/storefront/internal/notify"
)

func handleListProducts(catalog *catalogapp.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products := catalog.Products(r.URL.Query().Get("category"))
		if products == nil {
			products = []catalogdomain.Product{}
		}
		render.JSON(w, r, products)
	}
}

func handleGetProduct(catalog *catalogapp.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := catalog.Product(chi.URLParam(r, "id"))
		if err != nil {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, map[string]string{"error": "product not found"})
			return
		}
		render.JSON(w, r, p)
	}
}

func handleGetCart(cart *cartapp.Service, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := cart.Cart(r.Context(), cartID(w, r))
		if err != nil {
			log.Error("cart read failed", slog.Any("err", err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"error": "cart unavailable"})
			return
		}
		render.JSON(w, r, m)
	}
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
}

func handleAddItem(cart *cartapp.Service, catalog *catalogapp.Service, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addItemRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil || strings.TrimSpace(req.ProductID) == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"error": "product_id is required"})
			return
		}

		p, err := catalog.Product(req.ProductID)
		if errors.Is(err, catalogapp.ErrNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, map[string]string{"error": "product not found"})
			return
		}

		m, err := cart.AddItem(r.Context(), cartID(w, r), toCartProduct(p))
		if err != nil {
			log.Error("add item failed", slog.String("product_id", p.ID), slog.Any("err", err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"error": "cart unavailable"})
			return
		}
		render.JSON(w, r, m)
	}
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func handleSetQuantity(cart *cartapp.Service, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req setQuantityRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"error": "quantity is required"})
			return
		}

		m, err := cart.SetItemQuantity(r.Context(), cartID(w, r), chi.URLParam(r, "id"), req.Quantity)
		if err != nil {
			log.Error("set quantity failed", slog.Any("err", err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"error": "cart unavailable"})
			return
		}
		render.JSON(w, r, m)
	}
}

func handleRemoveItem(cart *cartapp.Service, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := cart.RemoveItem(r.Context(), cartID(w, r), chi.URLParam(r, "id"))
		if err != nil {
			log.Error("remove item failed", slog.Any("err", err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"error": "cart unavailable"})
			return
		}
		render.JSON(w, r, m)
	}
}

func handleClearCart(cart *cartapp.Service, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := cart.ClearCart(r.Context(), cartID(w, r))
		if err != nil {
			log.Error("clear cart failed", slog.Any("err", err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"error": "cart unavailable"})
			return
		}
		render.JSON(w, r, m)
	}
}

func handleListNotifications(center *notify.Center) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, center.Active())
	}
}

type subscribeRequest struct {
	Email string `json:"email"`
}

func handleSubscribe(newsletter *newsletterapp.Service, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req subscribeRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"error": "email is required"})
			return
		}

		err := newsletter.Subscribe(r.Context(), req.Email)
		if errors.Is(err, newsletterapp.ErrInvalidEmail) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"error": "invalid email address"})
			return
		}
		if err != nil {
			log.Error("newsletter subscribe failed", slog.Any("err", err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"error": "subscription unavailable"})
			return
		}
		render.JSON(w, r, map[string]string{"message": "Thank you for subscribing to our newsletter!"})
	}
}

// toCartProduct copies a catalog product into the cart's input shape. The
// two contexts keep separate types so the cart never aliases catalog data.
func toCartProduct(p catalogdomain.Product) cartdomain.Product {
	return cartdomain.Product{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		Image:       p.Image,
		Description: p.Description,
		Sizes:       append([]string(nil), p.Sizes...),
		Colors:      append([]string(nil), p.Colors...),
	}
}
