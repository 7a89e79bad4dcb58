package services

import (
	"context"
	"errors"
	"fmt"

	"productorders/internal/dto"
	"productorders/internal/events"
	"productorders/internal/mapper"
	"productorders/internal/models"
	"productorders/internal/repositories"
	"productorders/internal/shared"

	"github.com/go-playground/validator/v10"
)

// SupplierService handles business logic related to suppliers.
type SupplierService struct {
	store    repositories.Store
	events   events.Publisher
	validate *validator.Validate
}

// NewSupplierService creates a new SupplierService. publisher may be nil.
func NewSupplierService(store repositories.Store, publisher events.Publisher) *SupplierService {
	return &SupplierService{
		store:    store,
		events:   publisher,
		validate: newValidator(),
	}
}

// ToView converts a supplier record to its external view.
func (s *SupplierService) ToView(supplier *models.Supplier) (*dto.SupplierView, error) {
	return mapper.SupplierToView(supplier)
}

// ToViews converts supplier records to views, preserving order.
func (s *SupplierService) ToViews(suppliers []models.Supplier) []dto.SupplierView {
	return mapper.SupplierToViews(suppliers)
}

// ToRecord translates a valid view into a record without writing it. A view
// carrying an ID is merged into the stored supplier with that ID, or into a
// fresh record when none exists. Persist the result with SaveRecord.
func (s *SupplierService) ToRecord(ctx context.Context, view *dto.SupplierView) (*models.Supplier, error) {
	if view == nil {
		return nil, fmt.Errorf("supplier view cannot be nil: %w", shared.ErrInvalidArgument)
	}
	if err := validateView(s.validate, view); err != nil {
		return nil, err
	}
	if view.ID == 0 {
		return mapper.NewSupplier(view), nil
	}
	existing, err := s.store.Repos().Suppliers.GetByID(ctx, view.ID)
	switch {
	case err == nil:
		mapper.MergeSupplier(existing, view)
		return existing, nil
	case errors.Is(err, shared.ErrNotFound):
		return mapper.NewSupplier(view), nil
	default:
		return nil, err
	}
}

// SaveRecord writes a record produced by ToRecord: a record without an ID
// or with an unknown ID is created, an existing one is updated.
func (s *SupplierService) SaveRecord(ctx context.Context, supplier *models.Supplier) error {
	if supplier == nil {
		return fmt.Errorf("supplier cannot be nil: %w", shared.ErrInvalidArgument)
	}
	eventType := events.SupplierCreated
	err := s.store.WithinTx(ctx, func(r repositories.Repos) error {
		if supplier.ID != 0 {
			exists, err := r.Suppliers.Exists(ctx, supplier.ID)
			if err != nil {
				return err
			}
			if exists {
				eventType = events.SupplierUpdated
				return r.Suppliers.Update(ctx, supplier)
			}
		}
		return r.Suppliers.Create(ctx, supplier)
	})
	if err != nil {
		return err
	}
	publish(s.events, eventType, supplier.ID)
	return nil
}

// GetByID retrieves a supplier by its ID.
func (s *SupplierService) GetByID(ctx context.Context, id int64) (*dto.SupplierView, error) {
	if id < 0 {
		return nil, fmt.Errorf("supplier id cannot be negative: %w", shared.ErrInvalidArgument)
	}
	supplier, err := s.store.Repos().Suppliers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cannot find supplier with id %d: %w", id, err)
	}
	return s.ToView(supplier)
}

// Save creates a new supplier from view. Any ID on the view is ignored.
// A nil view is reported as ErrNotFound.
func (s *SupplierService) Save(ctx context.Context, view *dto.SupplierView) (*dto.SupplierView, error) {
	if view == nil {
		return nil, fmt.Errorf("supplier view cannot be nil: %w", shared.ErrNotFound)
	}
	if err := validateView(s.validate, view); err != nil {
		return nil, err
	}

	supplier := mapper.NewSupplier(view)
	err := s.store.WithinTx(ctx, func(r repositories.Repos) error {
		return r.Suppliers.Create(ctx, supplier)
	})
	if err != nil {
		return nil, err
	}
	publish(s.events, events.SupplierCreated, supplier.ID)
	return s.ToView(supplier)
}

// Update overwrites the supplier stored under id with the view's fields.
func (s *SupplierService) Update(ctx context.Context, view *dto.SupplierView, id int64) (*dto.SupplierView, error) {
	var supplier *models.Supplier
	err := s.store.WithinTx(ctx, func(r repositories.Repos) error {
		existing, err := r.Suppliers.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("cannot find supplier with id %d: %w", id, err)
		}
		if view == nil {
			return fmt.Errorf("supplier view cannot be nil: %w", shared.ErrInvalidArgument)
		}
		if err := validateView(s.validate, view); err != nil {
			return err
		}
		mapper.MergeSupplier(existing, view)
		if err := r.Suppliers.Update(ctx, existing); err != nil {
			return err
		}
		supplier = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	publish(s.events, events.SupplierUpdated, supplier.ID)
	return s.ToView(supplier)
}

// Delete removes the supplier stored under id. Products referencing it are
// not touched.
func (s *SupplierService) Delete(ctx context.Context, id int64) error {
	err := s.store.WithinTx(ctx, func(r repositories.Repos) error {
		exists, err := r.Suppliers.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("supplier id %d does not exist: %w", id, shared.ErrNotFound)
		}
		return r.Suppliers.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	publish(s.events, events.SupplierDeleted, id)
	return nil
}

// ListAll returns every supplier in store order.
func (s *SupplierService) ListAll(ctx context.Context) ([]dto.SupplierView, error) {
	suppliers, err := s.store.Repos().Suppliers.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.ToViews(suppliers), nil
}
