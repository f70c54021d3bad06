package checkinrepo

import (
	"context"
	"errors"

	"frosty/internal/adapters/out/postgres/paging"
	"frosty/internal/core/domain/model/checkin"
	"frosty/internal/core/domain/model/kernel"
	"frosty/internal/core/ports"
	"frosty/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var sortable = paging.Columns{
	"id":        "id",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"canceled":  "canceled",
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// GormCheckinOrderRepository stores check-in orders in checkin_orders and their
// items in checkin_order_items.
type GormCheckinOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormCheckinOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormCheckinOrderRepository {
	return &GormCheckinOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormCheckinOrderRepository) Create(ctx context.Context, order *checkin.Order) error {
	if err := requireOrder(order); err != nil {
		return err
	}

	dto := fromDomain(order)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(order.ID().String(), order)
	return nil
}

// Update rewrites the order row and replaces all of its items.
func (r *GormCheckinOrderRepository) Update(ctx context.Context, order *checkin.Order) error {
	if err := requireOrder(order); err != nil {
		return err
	}

	dto := fromDomain(order)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&OrderDTO{ID: dto.ID}).
			Omit(clause.Associations).
			Select("*").
			Updates(&dto)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError(checkin.AggregateName, dto.ID)
		}

		if err := tx.Where("order_id = ?", dto.ID).Delete(&OrderItemDTO{}).Error; err != nil {
			return err
		}

		if len(dto.Items) == 0 {
			return nil
		}
		return tx.Create(&dto.Items).Error
	})
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(order.ID().String(), order)
	return nil
}

func (r *GormCheckinOrderRepository) FindByID(ctx context.Context, id checkin.OrderID) (*checkin.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", orderedItems).
		First(&dto, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(checkin.AggregateName, id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormCheckinOrderRepository) DeleteByID(ctx context.Context, id checkin.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id.String()).Delete(&OrderItemDTO{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id.String()).Delete(&OrderDTO{}).Error
	})
}

// FindAll matches terms against item names.
func (r *GormCheckinOrderRepository) FindAll(
	ctx context.Context,
	query ports.SearchQuery,
) (ports.Pagination[*checkin.Order], error) {
	db := r.db.WithContext(ctx).Model(&OrderDTO{})
	if query.Terms() != "" {
		db = db.Where(
			`EXISTS (SELECT 1 FROM checkin_order_items i WHERE i.order_id = checkin_orders.id AND LOWER(i.name) LIKE ? ESCAPE '\')`,
			paging.Contains(query.Terms()),
		)
	}

	var total int64
	if err := db.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return ports.Pagination[*checkin.Order]{}, err
	}

	paged, err := paging.Apply(db, query, sortable, "created_at")
	if err != nil {
		return ports.Pagination[*checkin.Order]{}, err
	}

	var dtos []OrderDTO
	if err = paged.Preload("Items", orderedItems).Find(&dtos).Error; err != nil {
		return ports.Pagination[*checkin.Order]{}, err
	}

	orders := make([]*checkin.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, domainErr := toDomain(dto)
		if domainErr != nil {
			return ports.Pagination[*checkin.Order]{}, domainErr
		}
		orders = append(orders, o)
	}

	return ports.NewPagination(query, total, orders), nil
}

func (r *GormCheckinOrderRepository) ExistsByIDs(ctx context.Context, ids []checkin.OrderID) ([]checkin.OrderID, error) {
	if len(ids) == 0 {
		return []checkin.OrderID{}, nil
	}

	var found []string
	if err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id IN ?", kernel.Strings(ids)).
		Pluck("id", &found).Error; err != nil {
		return nil, err
	}

	return checkin.OrderIDsFrom(found)
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

func requireOrder(order *checkin.Order) error {
	if order == nil {
		return errs.NewValueIsRequiredError("order")
	}
	return order.ID().Validate()
}
