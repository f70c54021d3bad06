package productrepo

import (
	"context"
	"errors"
	"time"

	"frosty/internal/adapters/out/postgres/paging"
	"frosty/internal/core/domain/model/kernel"
	"frosty/internal/core/domain/model/product"
	"frosty/internal/core/ports"
	"frosty/internal/pkg/errs"

	"gorm.io/gorm"
)

var sortable = paging.Columns{
	"id":             "id",
	"name":           "name",
	"price":          "price",
	"stock":          "stock",
	"expirationDate": "expiration_date",
	"createdAt":      "created_at",
	"updatedAt":      "updated_at",
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormProductRepository) Create(ctx context.Context, p *product.Product) error {
	if err := requireProduct(p); err != nil {
		return err
	}

	dto := fromDomain(p)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(p.ID().String(), p)
	return nil
}

func (r *GormProductRepository) Update(ctx context.Context, p *product.Product) error {
	if err := requireProduct(p); err != nil {
		return err
	}

	dto := fromDomain(p)
	result := r.db.WithContext(ctx).Model(&ProductDTO{ID: dto.ID}).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(product.AggregateName, dto.ID)
	}

	r.tracker.TrackAggregate(p.ID().String(), p)
	return nil
}

func (r *GormProductRepository) FindByID(ctx context.Context, id product.ID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(product.AggregateName, id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormProductRepository) DeleteByID(ctx context.Context, id product.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&ProductDTO{}).Error
}

// FindAll matches terms against the name and the description.
func (r *GormProductRepository) FindAll(
	ctx context.Context,
	query ports.SearchQuery,
) (ports.Pagination[*product.Product], error) {
	db := r.db.WithContext(ctx).Model(&ProductDTO{})
	if query.Terms() != "" {
		pattern := paging.Contains(query.Terms())
		db = db.Where(
			`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`,
			pattern, pattern,
		)
	}

	var total int64
	if err := db.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return ports.Pagination[*product.Product]{}, err
	}

	paged, err := paging.Apply(db, query, sortable, "name")
	if err != nil {
		return ports.Pagination[*product.Product]{}, err
	}

	var dtos []ProductDTO
	if err = paged.Find(&dtos).Error; err != nil {
		return ports.Pagination[*product.Product]{}, err
	}

	products, err := toDomainAll(dtos)
	if err != nil {
		return ports.Pagination[*product.Product]{}, err
	}

	return ports.NewPagination(query, total, products), nil
}

func (r *GormProductRepository) ExistsByIDs(ctx context.Context, ids []product.ID) ([]product.ID, error) {
	if len(ids) == 0 {
		return []product.ID{}, nil
	}

	var found []string
	if err := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id IN ?", kernel.Strings(ids)).
		Pluck("id", &found).Error; err != nil {
		return nil, err
	}

	return product.IDsFrom(found)
}

// FindActiveExpiredAt returns the earliest expired active products first.
func (r *GormProductRepository) FindActiveExpiredAt(ctx context.Context, at time.Time, limit int) ([]*product.Product, error) {
	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).
		Where("active = ? AND expiration_date IS NOT NULL AND expiration_date <= ?", true, at.UTC()).
		Order("expiration_date").
		Order("id").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []ProductDTO) ([]*product.Product, error) {
	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func requireProduct(p *product.Product) error {
	if p == nil {
		return errs.NewValueIsRequiredError("product")
	}
	return p.ID().Validate()
}
