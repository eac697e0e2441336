package handler

import (
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/harshita-store/internal/domain/locale"
	"github.com/xenking/harshita-store/internal/domain/order"
)

// Checkout composes the order message for the session cart and returns the
// link that opens it in the messaging app. The cart is left as is.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	var customer order.CustomerInfo
	if err := decodeBody(r, func(d *jx.Decoder, key string) error {
		var dst *string
		switch key {
		case "name":
			dst = &customer.Name
		case "phone":
			dst = &customer.Phone
		case "address":
			dst = &customer.Address
		default:
			return d.Skip()
		}
		v, err := d.Str()
		*dst = v
		return err
	}); err != nil {
		writeError(w, http.StatusBadRequest, "invalid checkout form")
		return
	}

	o, err := h.orders.Compose(sess.Cart.State(), customer, sess.Locale, h.catalog.Settings(ctx))
	if err != nil {
		status, msg := mapOrderError(err)
		zctx.From(ctx).Debug("Checkout rejected", zap.Error(err))
		writeError(w, status, msg)
		return
	}
	h.checkouts.Add(ctx, 1)

	title := sess.Locale.T(locale.KeyToastOrderSent)
	desc := sess.Locale.T(locale.KeyToastOrderSentDesc)
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		encodeOrder(e, o, func(e *jx.Encoder) {
			e.FieldStart("notice")
			e.ObjStart()
			e.FieldStart("title")
			e.Str(title)
			e.FieldStart("description")
			e.Str(desc)
			e.ObjEnd()
		})
	})
}

// mapOrderError converts order errors to an HTTP status and message.
func mapOrderError(err error) (int, string) {
	if errors.Is(err, order.ErrEmptyCart) {
		return http.StatusConflict, err.Error()
	}
	var missing *order.MissingFieldError
	if errors.As(err, &missing) {
		return http.StatusUnprocessableEntity, missing.Error()
	}
	return http.StatusInternalServerError, "internal error"
}
