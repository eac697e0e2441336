package handler

import (
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/harshita-store/internal/domain/cart"
	"github.com/xenking/harshita-store/internal/domain/locale"
	"github.com/xenking/harshita-store/internal/session"
)

func (h *Handler) writeCart(w http.ResponseWriter, s cart.State) {
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		h.encodeCart(e, s)
	})
}

// GetCart returns the session cart.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	h.writeCart(w, sess.Cart.State())
}

// AddItem adds one unit of the product named by {"productId"} to the cart.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	var productID string
	if err := decodeBody(r, func(d *jx.Decoder, key string) error {
		if key != "productId" {
			return d.Skip()
		}
		var err error
		productID, err = d.Str()
		return err
	}); err != nil || productID == "" {
		writeError(w, http.StatusBadRequest, "productId is required")
		return
	}

	p, err := h.catalog.ProductByID(ctx, productID)
	if err != nil {
		writeCatalogError(w, err, "product not found")
		return
	}

	state, err := sess.Cart.Add(ctx, p)
	var stockErr *cart.OutOfStockError
	if errors.As(err, &stockErr) {
		h.rejectedAdds.Add(ctx, 1)
		zctx.From(ctx).Debug("Add rejected", zap.Error(err))
		writeOutOfStock(w, sess, stockErr)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.countCommand(ctx, "add")
	h.writeCart(w, state)
}

// writeOutOfStock answers a rejected add with the localized notification text.
func writeOutOfStock(w http.ResponseWriter, sess *session.Session, err *cart.OutOfStockError) {
	writeJSON(w, http.StatusConflict, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("code")
		e.Int(http.StatusConflict)
		e.FieldStart("message")
		e.Str(sess.Locale.T(locale.KeyToastOutOfStockDesc))
		e.FieldStart("title")
		e.Str(sess.Locale.T(locale.KeyToastOutOfStockTitle))
		e.FieldStart("productId")
		e.Str(err.ProductID)
		e.FieldStart("stock")
		e.Int(err.Stock)
		e.ObjEnd()
	})
}

// SetItemQuantity replaces the quantity of a cart item. Zero or less removes
// it; more than the stock is rejected.
func (h *Handler) SetItemQuantity(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	id := r.PathValue("id")

	var (
		quantity int
		seen     bool
	)
	if err := decodeBody(r, func(d *jx.Decoder, key string) error {
		if key != "quantity" {
			return d.Skip()
		}
		seen = true
		var err error
		quantity, err = d.Int()
		return err
	}); err != nil || !seen {
		writeError(w, http.StatusBadRequest, "quantity is required")
		return
	}

	state, err := sess.Cart.SetQuantityInStock(ctx, id, quantity)
	var stockErr *cart.OutOfStockError
	if errors.As(err, &stockErr) {
		writeError(w, http.StatusUnprocessableEntity, stockErr.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.countCommand(ctx, "set_quantity")
	h.writeCart(w, state)
}

// RemoveItem deletes a cart item. Removing an absent item is not an error.
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	h.countCommand(r.Context(), "remove")
	h.writeCart(w, sess.Cart.Remove(r.Context(), r.PathValue("id")))
}

// ClearCart empties the cart.
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	h.countCommand(r.Context(), "clear")
	h.writeCart(w, sess.Cart.Clear(r.Context()))
}
