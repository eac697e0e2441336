package postgres

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/xenking/harshita-store/internal/domain/product"
)

const settingsID = "store_settings"

const (
	listProductsSQL = `SELECT id, name, price, category, sub_category, stock, image_url, tags,
		is_active, is_available, created_at
		FROM products ORDER BY id`

	listCategoriesSQL = `SELECT id, name, description, image_url, sub_categories, created_at
		FROM categories ORDER BY name`

	getSettingsSQL = `SELECT store_name, store_name_hindi, tagline, description,
		primary_phone, secondary_phone, whatsapp_number, email, website,
		address, city, state, pincode, monday_to_saturday, sunday,
		facebook, instagram, twitter, meta_title, meta_description, keywords,
		created_at, updated_at, updated_by
		FROM store_settings WHERE id = $1`

	upsertProductSQL = `INSERT INTO products (id, name, price, category, sub_category, stock, image_url, tags,
		is_active, is_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			price = EXCLUDED.price,
			category = EXCLUDED.category,
			sub_category = EXCLUDED.sub_category,
			stock = EXCLUDED.stock,
			image_url = EXCLUDED.image_url,
			tags = EXCLUDED.tags,
			is_active = EXCLUDED.is_active,
			is_available = EXCLUDED.is_available,
			created_at = EXCLUDED.created_at,
			updated_at = now()`

	upsertCategorySQL = `INSERT INTO categories (id, name, description, image_url, sub_categories, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			image_url = EXCLUDED.image_url,
			sub_categories = EXCLUDED.sub_categories,
			created_at = EXCLUDED.created_at`

	upsertSettingsSQL = `INSERT INTO store_settings (id, store_name, store_name_hindi, tagline, description,
		primary_phone, secondary_phone, whatsapp_number, email, website,
		address, city, state, pincode, monday_to_saturday, sunday,
		facebook, instagram, twitter, meta_title, meta_description, keywords,
		updated_at, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, now(), $23)
		ON CONFLICT (id) DO UPDATE SET
			store_name = EXCLUDED.store_name,
			store_name_hindi = EXCLUDED.store_name_hindi,
			tagline = EXCLUDED.tagline,
			description = EXCLUDED.description,
			primary_phone = EXCLUDED.primary_phone,
			secondary_phone = EXCLUDED.secondary_phone,
			whatsapp_number = EXCLUDED.whatsapp_number,
			email = EXCLUDED.email,
			website = EXCLUDED.website,
			address = EXCLUDED.address,
			city = EXCLUDED.city,
			state = EXCLUDED.state,
			pincode = EXCLUDED.pincode,
			monday_to_saturday = EXCLUDED.monday_to_saturday,
			sunday = EXCLUDED.sunday,
			facebook = EXCLUDED.facebook,
			instagram = EXCLUDED.instagram,
			twitter = EXCLUDED.twitter,
			meta_title = EXCLUDED.meta_title,
			meta_description = EXCLUDED.meta_description,
			keywords = EXCLUDED.keywords,
			updated_at = now(),
			updated_by = EXCLUDED.updated_by`
)

var _ product.Repository = (*CatalogRepository)(nil)

// CatalogRepository implements product.Repository backed by PostgreSQL and
// provides the upserts used by the seeding and import tools.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository returns a CatalogRepository that uses the given pool.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// ListProducts returns every product, listed or not, ordered by ID.
func (r *CatalogRepository) ListProducts(ctx context.Context) ([]product.Product, error) {
	rows, err := r.pool.Query(ctx, listProductsSQL)
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	return pgx.CollectRows(rows, scanProduct)
}

// ListCategories returns every category ordered by name.
func (r *CatalogRepository) ListCategories(ctx context.Context) ([]product.Category, error) {
	rows, err := r.pool.Query(ctx, listCategoriesSQL)
	if err != nil {
		return nil, errors.Wrap(err, "list categories")
	}
	return pgx.CollectRows(rows, scanCategory)
}

// GetSettings returns the store settings record or product.ErrNotFound.
func (r *CatalogRepository) GetSettings(ctx context.Context) (*product.StoreSettings, error) {
	rows, err := r.pool.Query(ctx, getSettingsSQL, settingsID)
	if err != nil {
		return nil, errors.Wrap(err, "get store settings")
	}
	s, err := pgx.CollectExactlyOneRow(rows, scanSettings)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrNotFound
		}
		return nil, errors.Wrap(err, "get store settings")
	}
	return &s, nil
}

// UpsertProducts inserts or replaces products in a single batch.
func (r *CatalogRepository) UpsertProducts(ctx context.Context, products []product.Product) error {
	if len(products) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, p := range products {
		tags := p.Tags
		if tags == nil {
			tags = []string{}
		}
		batch.Queue(upsertProductSQL,
			p.ID, p.Name, p.Price, p.Category, p.SubCategory, p.Stock, p.ImageURL, tags,
			p.IsActive, p.IsAvailable, nullTime(p.CreatedAt),
		)
	}
	if err := r.pool.SendBatch(ctx, batch).Close(); err != nil {
		return errors.Wrapf(err, "upsert %d products", len(products))
	}
	return nil
}

// UpsertCategories inserts or replaces categories in a single batch.
func (r *CatalogRepository) UpsertCategories(ctx context.Context, categories []product.Category) error {
	if len(categories) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, c := range categories {
		batch.Queue(upsertCategorySQL,
			c.ID, c.Name, c.Description, c.ImageURL, encodeSubCategories(c.SubCategories), nullTime(c.CreatedAt),
		)
	}
	if err := r.pool.SendBatch(ctx, batch).Close(); err != nil {
		return errors.Wrapf(err, "upsert %d categories", len(categories))
	}
	return nil
}

// UpsertSettings stores the single store settings record.
func (r *CatalogRepository) UpsertSettings(ctx context.Context, s product.StoreSettings) error {
	keywords := s.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	_, err := r.pool.Exec(ctx, upsertSettingsSQL,
		settingsID, s.StoreName, s.StoreNameHindi, s.Tagline, s.Description,
		s.PrimaryPhone, s.SecondaryPhone, s.WhatsAppNumber, s.Email, s.Website,
		s.Address, s.City, s.State, s.Pincode, s.MondayToSaturday, s.Sunday,
		s.Facebook, s.Instagram, s.Twitter, s.MetaTitle, s.MetaDescription, keywords,
		s.UpdatedBy,
	)
	if err != nil {
		return errors.Wrap(err, "upsert store settings")
	}
	return nil
}

func scanProduct(row pgx.CollectableRow) (product.Product, error) {
	var (
		p       product.Product
		price   decimal.Decimal
		created *time.Time
	)
	err := row.Scan(
		&p.ID, &p.Name, &price, &p.Category, &p.SubCategory, &p.Stock, &p.ImageURL, &p.Tags,
		&p.IsActive, &p.IsAvailable, &created,
	)
	p.Price = price
	if created != nil {
		p.CreatedAt = created.UTC()
	}
	return p, err
}

func scanCategory(row pgx.CollectableRow) (product.Category, error) {
	var (
		c       product.Category
		subs    []byte
		created *time.Time
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.ImageURL, &subs, &created); err != nil {
		return c, err
	}
	if created != nil {
		c.CreatedAt = created.UTC()
	}
	var err error
	c.SubCategories, err = decodeSubCategories(subs)
	if err != nil {
		return c, errors.Wrapf(err, "category %s", c.ID)
	}
	return c, nil
}

func scanSettings(row pgx.CollectableRow) (product.StoreSettings, error) {
	var s product.StoreSettings
	err := row.Scan(
		&s.StoreName, &s.StoreNameHindi, &s.Tagline, &s.Description,
		&s.PrimaryPhone, &s.SecondaryPhone, &s.WhatsAppNumber, &s.Email, &s.Website,
		&s.Address, &s.City, &s.State, &s.Pincode, &s.MondayToSaturday, &s.Sunday,
		&s.Facebook, &s.Instagram, &s.Twitter, &s.MetaTitle, &s.MetaDescription, &s.Keywords,
		&s.CreatedAt, &s.UpdatedAt, &s.UpdatedBy,
	)
	return s, err
}

func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func encodeSubCategories(subs []product.SubCategory) []byte {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.ArrStart()
	for _, s := range subs {
		e.ObjStart()
		e.FieldStart("id")
		e.Str(s.ID)
		e.FieldStart("name")
		e.Str(s.Name)
		if s.Description != "" {
			e.FieldStart("description")
			e.Str(s.Description)
		}
		e.ObjEnd()
	}
	e.ArrEnd()
	return append([]byte(nil), e.Bytes()...)
}

func decodeSubCategories(data []byte) ([]product.SubCategory, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var subs []product.SubCategory
	err := jx.DecodeBytes(data).Arr(func(d *jx.Decoder) error {
		var s product.SubCategory
		if err := d.Obj(func(d *jx.Decoder, key string) error {
			var err error
			switch key {
			case "id":
				s.ID, err = d.Str()
			case "name":
				s.Name, err = d.Str()
			case "description":
				s.Description, err = d.Str()
			default:
				err = d.Skip()
			}
			return err
		}); err != nil {
			return err
		}
		subs = append(subs, s)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "decode subcategories")
	}
	return subs, nil
}
