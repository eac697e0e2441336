package cart

import (
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"

	"github.com/xenking/harshita-store/internal/domain/product"
)

// EncodeItems serializes items as the JSON array stored under the cart key:
//
//	[{"product":{"id":"..","name":"..","mrp":450,...},"quantity":2}]
func EncodeItems(items []Item) []byte {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.ArrStart()
	for _, it := range items {
		e.ObjStart()
		e.FieldStart("product")
		EncodeProduct(e, it.Product)
		e.FieldStart("quantity")
		e.Int(it.Quantity)
		e.ObjEnd()
	}
	e.ArrEnd()

	return append([]byte(nil), e.Bytes()...)
}

// EncodeProduct writes p using the catalog document field names.
func EncodeProduct(e *jx.Encoder, p product.Product) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(p.ID)
	e.FieldStart("name")
	e.Str(p.Name)
	e.FieldStart("mrp")
	e.Raw([]byte(p.Price.String()))
	e.FieldStart("category")
	e.Str(p.Category)
	if p.SubCategory != "" {
		e.FieldStart("subCategory")
		e.Str(p.SubCategory)
	}
	e.FieldStart("stock")
	e.Int(p.Stock)
	if p.ImageURL != "" {
		e.FieldStart("imageUrl")
		e.Str(p.ImageURL)
	}
	e.FieldStart("tags")
	e.ArrStart()
	for _, t := range p.Tags {
		e.Str(t)
	}
	e.ArrEnd()
	e.FieldStart("isActive")
	e.Bool(p.IsActive)
	e.FieldStart("isAvailable")
	e.Bool(p.IsAvailable)
	if !p.CreatedAt.IsZero() {
		e.FieldStart("createdAt")
		e.ObjStart()
		e.FieldStart("seconds")
		e.Int64(p.CreatedAt.Unix())
		e.ObjEnd()
	}
	e.ObjEnd()
}

// DecodeItems parses a stored cart snapshot. It only checks the shape of the
// document; cart invariants are enforced by Load.
func DecodeItems(data []byte) ([]Item, error) {
	d := jx.DecodeBytes(data)
	items := []Item{}
	if err := d.Arr(func(d *jx.Decoder) error {
		it, err := decodeItem(d)
		if err != nil {
			return errors.Wrapf(err, "item %d", len(items))
		}
		items = append(items, it)
		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "decode cart items")
	}
	return items, nil
}

func decodeItem(d *jx.Decoder) (Item, error) {
	var (
		it         Item
		hasProduct bool
	)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "product":
			p, err := DecodeProduct(d)
			if err != nil {
				return errors.Wrap(err, "product")
			}
			it.Product = p
			hasProduct = true
			return nil
		case "quantity":
			q, err := d.Int()
			if err != nil {
				return errors.Wrap(err, "quantity")
			}
			it.Quantity = q
			return nil
		default:
			return d.Skip()
		}
	})
	if err != nil {
		return Item{}, err
	}
	if !hasProduct {
		return Item{}, errors.New("missing product")
	}
	return it, nil
}

// DecodeProduct reads a product document. Unknown fields are skipped.
func DecodeProduct(d *jx.Decoder) (product.Product, error) {
	var p product.Product
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "id":
			p.ID, err = d.Str()
		case "name":
			p.Name, err = d.Str()
		case "mrp", "price":
			p.Price, err = decodeDecimal(d)
		case "category":
			p.Category, err = d.Str()
		case "subCategory":
			p.SubCategory, err = optStr(d)
		case "stock":
			p.Stock, err = d.Int()
		case "imageUrl":
			p.ImageURL, err = optStr(d)
		case "tags":
			err = d.Arr(func(d *jx.Decoder) error {
				t, err := d.Str()
				if err != nil {
					return err
				}
				p.Tags = append(p.Tags, t)
				return nil
			})
		case "isActive":
			p.IsActive, err = d.Bool()
		case "isAvailable":
			p.IsAvailable, err = d.Bool()
		case "createdAt":
			p.CreatedAt, err = DecodeTimestamp(d)
		default:
			err = d.Skip()
		}
		if err != nil {
			return errors.Wrap(err, key)
		}
		return nil
	})
	return p, err
}

func decodeDecimal(d *jx.Decoder) (decimal.Decimal, error) {
	switch d.Next() {
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return decimal.Zero, err
		}
		return decimal.NewFromString(s)
	default:
		n, err := d.Num()
		if err != nil {
			return decimal.Zero, err
		}
		return decimal.NewFromString(n.String())
	}
}

func optStr(d *jx.Decoder) (string, error) {
	if d.Next() == jx.Null {
		return "", d.Null()
	}
	return d.Str()
}

// DecodeTimestamp accepts the document database timestamp object
// ({"seconds":n,"nanoseconds":n}), an RFC 3339 string, or null.
func DecodeTimestamp(d *jx.Decoder) (time.Time, error) {
	switch d.Next() {
	case jx.Null:
		return time.Time{}, d.Null()
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return time.Time{}, err
		}
		return time.Parse(time.RFC3339, s)
	default:
		var sec, nsec int64
		if err := d.Obj(func(d *jx.Decoder, key string) error {
			var err error
			switch key {
			case "seconds", "_seconds":
				sec, err = decodeInt64(d)
			case "nanoseconds", "_nanoseconds":
				nsec, err = decodeInt64(d)
			default:
				err = d.Skip()
			}
			return err
		}); err != nil {
			return time.Time{}, err
		}
		return time.Unix(sec, nsec).UTC(), nil
	}
}

// decodeInt64 truncates fractional values.
func decodeInt64(d *jx.Decoder) (int64, error) {
	n, err := d.Num()
	if err != nil {
		return 0, err
	}
	v, err := decimal.NewFromString(n.String())
	if err != nil {
		return 0, err
	}
	return v.IntPart(), nil
}
