package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"productorders/internal/dto"
	"productorders/internal/mapper"
	"productorders/internal/repositories"
	"productorders/internal/services"
	"productorders/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog() (*services.SupplierService, *services.ProductService, *repositories.MemoryStore) {
	store := repositories.NewMemoryStore()
	return services.NewSupplierService(store, nil), services.NewProductService(store, nil), store
}

func TestCatalogScenario(t *testing.T) {
	suppliers, products, _ := newCatalog()
	ctx := context.Background()

	acme, err := suppliers.Save(ctx, &dto.SupplierView{Name: "Acme", PhoneNum: "555-0100", Email: "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), acme.ID)

	widget, err := products.Save(ctx, &dto.ProductView{Name: "Widget", Price: 9.99, Stock: 100.0, SupplierID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), widget.SupplierID)

	joined, err := products.GetProductSupplier(ctx, widget.ID)
	require.NoError(t, err)
	assert.Equal(t, &dto.ProductSupplierView{
		ProductName:      "Widget",
		ProductPrice:     9.99,
		ProductStock:     100.0,
		SupplierName:     "Acme",
		SupplierPhoneNum: "555-0100",
		SupplierEmail:    "a@x.com",
	}, joined)

	_, err = products.Update(ctx, &dto.ProductView{Name: "Widget", Price: 9.99, Stock: 100.0, SupplierID: 999}, widget.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	// The failed update left the product untouched
	stored, err := products.GetByID(ctx, widget.ID)
	require.NoError(t, err)
	assert.Equal(t, widget, stored)

	// Supplier delete is unconditional; the product is left dangling and the
	// joined view reports it as not found.
	require.NoError(t, suppliers.Delete(ctx, acme.ID))
	_, err = products.GetProductSupplier(ctx, widget.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	dangling, err := products.GetByID(ctx, widget.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), dangling.SupplierID)
}

func TestSupplierSaveThenGet(t *testing.T) {
	suppliers, _, _ := newCatalog()
	ctx := context.Background()

	inputs := []dto.SupplierView{
		{Name: "Acme", PhoneNum: "555-0100", Email: "a@x.com"},
		{Name: "Globex"},
		{ID: 50, Name: "Initech", Email: "i@x.com"},
	}
	seen := map[int64]bool{}
	for _, in := range inputs {
		saved, err := suppliers.Save(ctx, &in)
		require.NoError(t, err)
		assert.NotZero(t, saved.ID)
		assert.False(t, seen[saved.ID], "id %d assigned twice", saved.ID)
		seen[saved.ID] = true

		got, err := suppliers.GetByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.Equal(t, in.Name, got.Name)
		assert.Equal(t, in.PhoneNum, got.PhoneNum)
		assert.Equal(t, in.Email, got.Email)
	}
	assert.False(t, seen[50], "supplied id must be ignored on create")
}

func TestProductSaveFailsIffSupplierMissing(t *testing.T) {
	suppliers, products, _ := newCatalog()
	ctx := context.Background()

	_, err := suppliers.Save(ctx, &dto.SupplierView{Name: "Acme"})
	require.NoError(t, err)

	for _, supplierID := range []int64{0, 1, 2, -3} {
		t.Run(fmt.Sprintf("supplier_%d", supplierID), func(t *testing.T) {
			_, err := products.Save(ctx, &dto.ProductView{Name: "Widget", Price: 1, Stock: 1, SupplierID: supplierID})
			if supplierID == 1 {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, shared.ErrNotFound)
			}
		})
	}
}

func TestProductRecordRoundTrip(t *testing.T) {
	suppliers, products, _ := newCatalog()
	ctx := context.Background()

	_, err := suppliers.Save(ctx, &dto.SupplierView{Name: "Acme"})
	require.NoError(t, err)

	in := &dto.ProductView{Name: "Widget", Price: 9.99, Stock: 100.0, SupplierID: 1}
	rec, err := products.ToRecord(ctx, in)
	require.NoError(t, err)
	require.NoError(t, products.SaveRecord(ctx, rec))

	out, err := products.ToView(rec)
	require.NoError(t, err)
	assert.NotZero(t, out.ID)
	assert.Equal(t, in.Name, out.Name)
	assert.Equal(t, in.Price, out.Price)
	assert.Equal(t, in.Stock, out.Stock)
	assert.Equal(t, in.SupplierID, out.SupplierID)

	// Merging through ToRecord with the assigned id updates in place
	rec, err = products.ToRecord(ctx, &dto.ProductView{ID: out.ID, Name: "Gadget", Price: 1, Stock: 2, SupplierID: 1})
	require.NoError(t, err)
	require.NoError(t, products.SaveRecord(ctx, rec))

	all, err := products.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Gadget", all[0].Name)
}

func TestRecordPathAssignsStoreIDs(t *testing.T) {
	suppliers, products, _ := newCatalog()
	ctx := context.Background()

	supplierRec, err := suppliers.ToRecord(ctx, &dto.SupplierView{ID: 555, Name: "Acme"})
	require.NoError(t, err)
	require.NoError(t, suppliers.SaveRecord(ctx, supplierRec))
	assert.Equal(t, int64(1), supplierRec.ID)

	productRec, err := products.ToRecord(ctx, &dto.ProductView{ID: 777, Name: "Widget", SupplierID: 1})
	require.NoError(t, err)
	require.NoError(t, products.SaveRecord(ctx, productRec))
	assert.Equal(t, int64(1), productRec.ID)

	_, err = products.GetByID(ctx, 777)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	// A later create gets the next id instead of colliding
	next, err := products.Save(ctx, &dto.ProductView{Name: "Gadget", SupplierID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.ID)
}

func TestRecordPathRejectsInvalidViews(t *testing.T) {
	suppliers, products, _ := newCatalog()
	ctx := context.Background()

	_, err := suppliers.ToRecord(ctx, &dto.SupplierView{Name: ""})
	assert.ErrorIs(t, err, shared.ErrInvalidArgument)

	_, err = suppliers.Save(ctx, &dto.SupplierView{Name: "Acme"})
	require.NoError(t, err)

	_, err = products.ToRecord(ctx, &dto.ProductView{Name: "", Price: -5, Stock: -1, SupplierID: 1})
	assert.ErrorIs(t, err, shared.ErrInvalidArgument)

	allSuppliers, err := suppliers.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, allSuppliers, 1)
	allProducts, err := products.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, allProducts)
}

func TestSupplierRecordRoundTrip(t *testing.T) {
	suppliers, _, _ := newCatalog()
	ctx := context.Background()

	rec, err := suppliers.ToRecord(ctx, &dto.SupplierView{Name: "Acme", PhoneNum: "555-0100"})
	require.NoError(t, err)
	require.NoError(t, suppliers.SaveRecord(ctx, rec))
	assert.NotZero(t, rec.ID)

	rec, err = suppliers.ToRecord(ctx, &dto.SupplierView{ID: rec.ID, Name: "Acme Corp"})
	require.NoError(t, err)
	require.NoError(t, suppliers.SaveRecord(ctx, rec))

	all, err := suppliers.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Acme Corp", all[0].Name)
	assert.Empty(t, all[0].PhoneNum)
}

func TestUpdateMissingProductAlwaysNotFound(t *testing.T) {
	suppliers, products, _ := newCatalog()
	ctx := context.Background()

	_, err := suppliers.Save(ctx, &dto.SupplierView{Name: "Acme"})
	require.NoError(t, err)

	for _, view := range []*dto.ProductView{
		nil,
		{},
		{Name: "Widget", Price: 1, Stock: 1, SupplierID: 1},
		{Name: "Widget", Price: -1, Stock: -1, SupplierID: 999},
	} {
		_, err := products.Update(ctx, view, 42)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	}
}

func TestSupplierDeleteSemantics(t *testing.T) {
	suppliers, _, _ := newCatalog()
	ctx := context.Background()

	err := suppliers.Delete(ctx, 1)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	saved, err := suppliers.Save(ctx, &dto.SupplierView{Name: "Acme"})
	require.NoError(t, err)
	require.NoError(t, suppliers.Delete(ctx, saved.ID))

	_, err = suppliers.GetByID(ctx, saved.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestListingPreservesStoreOrder(t *testing.T) {
	suppliers, products, _ := newCatalog()
	ctx := context.Background()

	emptySuppliers, err := suppliers.ListAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, emptySuppliers)
	assert.Empty(t, emptySuppliers)

	emptyProducts, err := products.ListAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, emptyProducts)
	assert.Empty(t, emptyProducts)

	const n = 12
	for i := 0; i < n; i++ {
		_, err := suppliers.Save(ctx, &dto.SupplierView{Name: fmt.Sprintf("Supplier %02d", i)})
		require.NoError(t, err)
		_, err = products.Save(ctx, &dto.ProductView{Name: fmt.Sprintf("Product %02d", i), SupplierID: int64(i + 1)})
		require.NoError(t, err)
	}

	allSuppliers, err := suppliers.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, allSuppliers, n)
	allProducts, err := products.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, allProducts, n)
	for i := 0; i < n; i++ {
		assert.Equal(t, fmt.Sprintf("Supplier %02d", i), allSuppliers[i].Name)
		assert.Equal(t, fmt.Sprintf("Product %02d", i), allProducts[i].Name)
		assert.Equal(t, int64(i+1), allProducts[i].SupplierID)
	}
}

func TestProductDeleteIsUnconditional(t *testing.T) {
	suppliers, products, _ := newCatalog()
	ctx := context.Background()

	assert.NoError(t, products.Delete(ctx, 404))

	_, err := suppliers.Save(ctx, &dto.SupplierView{Name: "Acme"})
	require.NoError(t, err)
	saved, err := products.Save(ctx, &dto.ProductView{Name: "Widget", SupplierID: 1})
	require.NoError(t, err)

	require.NoError(t, products.Delete(ctx, saved.ID))
	_, err = products.GetByID(ctx, saved.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestMemoryStoreRollsBackFailedTransaction(t *testing.T) {
	_, _, store := newCatalog()
	ctx := context.Background()
	boom := errors.New("boom")

	err := store.WithinTx(ctx, func(r repositories.Repos) error {
		supplier := mapper.NewSupplier(&dto.SupplierView{Name: "Acme"})
		if err := r.Suppliers.Create(ctx, supplier); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	all, err := store.Repos().Suppliers.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	// The id counter was rolled back as well
	supplier := mapper.NewSupplier(&dto.SupplierView{Name: "Acme"})
	require.NoError(t, store.Repos().Suppliers.Create(ctx, supplier))
	assert.Equal(t, int64(1), supplier.ID)
}
