package handler

import (
	"io"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"

	"github.com/xenking/harshita-store/internal/domain/cart"
	"github.com/xenking/harshita-store/internal/domain/locale"
	"github.com/xenking/harshita-store/internal/domain/order"
	"github.com/xenking/harshita-store/internal/domain/product"
)

const maxBodySize = 64 << 10

func writeJSON(w http.ResponseWriter, status int, encode func(e *jx.Encoder)) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	encode(e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("code")
		e.Int(status)
		e.FieldStart("message")
		e.Str(msg)
		e.ObjEnd()
	})
}

// decodeBody reads a JSON object from r, calling field for every key.
func decodeBody(r *http.Request, field func(d *jx.Decoder, key string) error) error {
	d := jx.Decode(io.LimitReader(r.Body, maxBodySize), 512)
	if err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		return field(d, string(key))
	}); err != nil {
		return errors.Wrap(err, "decode body")
	}
	return nil
}

func encodeDecimal(e *jx.Encoder, d decimal.Decimal) {
	e.Raw([]byte(d.String()))
}

func encodeTime(e *jx.Encoder, name string, t time.Time) {
	if t.IsZero() {
		return
	}
	e.FieldStart(name)
	e.Str(t.UTC().Format(time.RFC3339))
}

func encodeStrings(e *jx.Encoder, ss []string) {
	e.ArrStart()
	for _, s := range ss {
		e.Str(s)
	}
	e.ArrEnd()
}

func optField(e *jx.Encoder, name, value string) {
	if value == "" {
		return
	}
	e.FieldStart(name)
	e.Str(value)
}

func (h *Handler) encodeProduct(e *jx.Encoder, p product.Product) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(p.ID)
	e.FieldStart("name")
	e.Str(p.Name)
	e.FieldStart("price")
	encodeDecimal(e, p.Price)
	e.FieldStart("category")
	e.Str(p.Category)
	optField(e, "subCategory", p.SubCategory)
	e.FieldStart("stock")
	e.Int(p.Stock)
	e.FieldStart("inStock")
	e.Bool(p.InStock())
	e.FieldStart("lowStock")
	e.Bool(p.LowStock())
	optField(e, "imageUrl", h.imageURL(p.ImageURL))
	e.FieldStart("tags")
	encodeStrings(e, p.Tags)
	encodeTime(e, "createdAt", p.CreatedAt)
	e.ObjEnd()
}

func (h *Handler) encodeProducts(e *jx.Encoder, products []product.Product) {
	e.ArrStart()
	for _, p := range products {
		h.encodeProduct(e, p)
	}
	e.ArrEnd()
}

func (h *Handler) encodeCategory(e *jx.Encoder, c product.Category) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(c.ID)
	e.FieldStart("name")
	e.Str(c.Name)
	optField(e, "description", c.Description)
	optField(e, "imageUrl", h.imageURL(c.ImageURL))
	e.FieldStart("subCategories")
	e.ArrStart()
	for _, sc := range c.SubCategories {
		e.ObjStart()
		e.FieldStart("id")
		e.Str(sc.ID)
		e.FieldStart("name")
		e.Str(sc.Name)
		optField(e, "description", sc.Description)
		e.ObjEnd()
	}
	e.ArrEnd()
	encodeTime(e, "createdAt", c.CreatedAt)
	e.ObjEnd()
}

func encodeSettings(e *jx.Encoder, s product.StoreSettings) {
	e.ObjStart()
	for _, f := range []struct{ name, value string }{
		{"storeName", s.StoreName},
		{"storeNameHindi", s.StoreNameHindi},
		{"tagline", s.Tagline},
		{"description", s.Description},
		{"primaryPhone", s.PrimaryPhone},
		{"secondaryPhone", s.SecondaryPhone},
		{"whatsappNumber", s.WhatsAppNumber},
		{"email", s.Email},
		{"website", s.Website},
		{"address", s.Address},
		{"city", s.City},
		{"state", s.State},
		{"pincode", s.Pincode},
		{"mondayToSaturday", s.MondayToSaturday},
		{"sunday", s.Sunday},
		{"facebook", s.Facebook},
		{"instagram", s.Instagram},
		{"twitter", s.Twitter},
		{"metaTitle", s.MetaTitle},
		{"metaDescription", s.MetaDescription},
	} {
		optField(e, f.name, f.value)
	}
	e.FieldStart("keywords")
	encodeStrings(e, s.Keywords)
	encodeTime(e, "updatedAt", s.UpdatedAt)
	e.ObjEnd()
}

func (h *Handler) encodeCart(e *jx.Encoder, s cart.State) {
	e.ObjStart()
	e.FieldStart("items")
	e.ArrStart()
	for _, it := range s.Items {
		e.ObjStart()
		e.FieldStart("product")
		h.encodeProduct(e, it.Product)
		e.FieldStart("quantity")
		e.Int(it.Quantity)
		e.FieldStart("subtotal")
		encodeDecimal(e, it.Subtotal())
		e.ObjEnd()
	}
	e.ArrEnd()
	e.FieldStart("totalItems")
	e.Int(s.TotalItems)
	e.FieldStart("totalAmount")
	encodeDecimal(e, s.TotalAmount)
	e.ObjEnd()
}

func encodeOrder(e *jx.Encoder, o *order.Order, extra func(e *jx.Encoder)) {
	e.ObjStart()
	e.FieldStart("text")
	e.Str(o.Text)
	e.FieldStart("url")
	e.Str(o.URL)
	e.FieldStart("totalItems")
	e.Int(o.TotalItems)
	e.FieldStart("totalAmount")
	encodeDecimal(e, o.TotalAmount)
	if extra != nil {
		extra(e)
	}
	e.ObjEnd()
}

func encodeLanguages(e *jx.Encoder, langs []locale.Language) {
	e.ArrStart()
	for _, l := range langs {
		e.Str(string(l))
	}
	e.ArrEnd()
}
