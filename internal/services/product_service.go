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

// ProductService handles business logic related to products.
type ProductService struct {
	store    repositories.Store
	events   events.Publisher
	validate *validator.Validate
}

// NewProductService creates a new ProductService. publisher may be nil.
func NewProductService(store repositories.Store, publisher events.Publisher) *ProductService {
	return &ProductService{
		store:    store,
		events:   publisher,
		validate: newValidator(),
	}
}

// ToView converts a product record to its external view.
func (s *ProductService) ToView(product *models.Product) (*dto.ProductView, error) {
	return mapper.ProductToView(product)
}

// ToViews converts product records to views, preserving order.
func (s *ProductService) ToViews(products []models.Product) []dto.ProductView {
	return mapper.ProductToViews(products)
}

// ToRecord translates a view into a record without writing it. The view
// must be valid and its supplier reference must resolve. A view carrying an
// ID is merged into the stored product with that ID; when none exists a
// fresh record is built and the store assigns its ID on save.
func (s *ProductService) ToRecord(ctx context.Context, view *dto.ProductView) (*models.Product, error) {
	if view == nil {
		return nil, fmt.Errorf("product view cannot be nil: %w", shared.ErrInvalidArgument)
	}
	if err := validateView(s.validate, view); err != nil {
		return nil, err
	}
	repos := s.store.Repos()

	product := &models.Product{}
	if view.ID != 0 {
		existing, err := repos.Products.GetByID(ctx, view.ID)
		switch {
		case err == nil:
			product = existing
		case !errors.Is(err, shared.ErrNotFound):
			return nil, err
		}
	}

	supplier, err := resolveSupplier(ctx, repos.Suppliers, view.SupplierID)
	if err != nil {
		return nil, err
	}
	mapper.MergeProduct(product, view, supplier)
	return product, nil
}

// SaveRecord writes a record produced by ToRecord. The supplier reference
// is checked again inside the transaction.
func (s *ProductService) SaveRecord(ctx context.Context, product *models.Product) error {
	if product == nil {
		return fmt.Errorf("product cannot be nil: %w", shared.ErrInvalidArgument)
	}
	eventType := events.ProductCreated
	err := s.store.WithinTx(ctx, func(r repositories.Repos) error {
		supplier, err := resolveSupplier(ctx, r.Suppliers, product.SupplierID)
		if err != nil {
			return err
		}
		product.Supplier = supplier
		if product.ID != 0 {
			exists, err := r.Products.Exists(ctx, product.ID)
			if err != nil {
				return err
			}
			if exists {
				eventType = events.ProductUpdated
				return r.Products.Update(ctx, product)
			}
		}
		return r.Products.Create(ctx, product)
	})
	if err != nil {
		return err
	}
	publish(s.events, eventType, product.ID)
	return nil
}

// GetByID retrieves a product by its ID.
func (s *ProductService) GetByID(ctx context.Context, id int64) (*dto.ProductView, error) {
	product, err := s.store.Repos().Products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cannot find product with id %d: %w", id, err)
	}
	return s.ToView(product)
}

// Save creates a new product from view after resolving its supplier. Any
// ID on the view is ignored.
func (s *ProductService) Save(ctx context.Context, view *dto.ProductView) (*dto.ProductView, error) {
	if view == nil {
		return nil, fmt.Errorf("product view cannot be nil: %w", shared.ErrInvalidArgument)
	}

	var product *models.Product
	err := s.store.WithinTx(ctx, func(r repositories.Repos) error {
		supplier, err := resolveSupplier(ctx, r.Suppliers, view.SupplierID)
		if err != nil {
			return err
		}
		if err := validateView(s.validate, view); err != nil {
			return err
		}
		product = mapper.NewProduct(view, supplier)
		return r.Products.Create(ctx, product)
	})
	if err != nil {
		return nil, err
	}
	publish(s.events, events.ProductCreated, product.ID)
	return s.ToView(product)
}

// Update overwrites the product stored under id, rebinding it to the
// view's supplier. The product is looked up before the supplier.
func (s *ProductService) Update(ctx context.Context, view *dto.ProductView, id int64) (*dto.ProductView, error) {
	var product *models.Product
	err := s.store.WithinTx(ctx, func(r repositories.Repos) error {
		existing, err := r.Products.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("cannot find product with id %d: %w", id, err)
		}
		if view == nil {
			return fmt.Errorf("product view cannot be nil: %w", shared.ErrInvalidArgument)
		}
		supplier, err := resolveSupplier(ctx, r.Suppliers, view.SupplierID)
		if err != nil {
			return err
		}
		if err := validateView(s.validate, view); err != nil {
			return err
		}
		mapper.MergeProduct(existing, view, supplier)
		if err := r.Products.Update(ctx, existing); err != nil {
			return err
		}
		product = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	publish(s.events, events.ProductUpdated, product.ID)
	return s.ToView(product)
}

// Delete removes the product stored under id. Deleting a missing product
// succeeds.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	existed := false
	err := s.store.WithinTx(ctx, func(r repositories.Repos) error {
		var err error
		if existed, err = r.Products.Exists(ctx, id); err != nil {
			return err
		}
		return r.Products.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	if existed {
		publish(s.events, events.ProductDeleted, id)
	}
	return nil
}

// ListAll returns every product in store order.
func (s *ProductService) ListAll(ctx context.Context) ([]dto.ProductView, error) {
	products, err := s.store.Repos().Products.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.ToViews(products), nil
}

// GetProductSupplier returns the joined product and supplier view. It
// fails with ErrNotFound when the product is missing or its supplier has
// been deleted.
func (s *ProductService) GetProductSupplier(ctx context.Context, productID int64) (*dto.ProductSupplierView, error) {
	product, err := s.store.Repos().Products.GetWithSupplier(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("cannot find product with id %d: %w", productID, err)
	}
	return mapper.ProjectProductSupplier(product)
}

func resolveSupplier(ctx context.Context, suppliers repositories.SupplierRepository, id int64) (*models.Supplier, error) {
	supplier, err := suppliers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cannot find supplier with id %d: %w", id, err)
	}
	return supplier, nil
}
