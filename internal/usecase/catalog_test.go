package usecase

import (
	"context"
	"testing"

	domainErrors "github.com/vominhduc11/dealerhub/internal/domain/errors"
	testhelpers "github.com/vominhduc11/dealerhub/internal/test"
)

func TestCatalogListAndGet(t *testing.T) {
	repo := testhelpers.NewProductRepositoryStub(testhelpers.SampleProduct("a"), testhelpers.SampleProduct("b"))
	uc := NewCatalogUseCase(repo)
	ctx := context.Background()

	products, err := uc.List(ctx)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}

	p, err := uc.Get(ctx, "a")
	if err != nil {
		t.Fatalf("get returned error: %v", err)
	}
	if p.ID != "a" {
		t.Fatalf("expected product a, got %q", p.ID)
	}

	if _, err := uc.Get(ctx, "zzz"); err != domainErrors.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalogStoreProduct(t *testing.T) {
	repo := testhelpers.NewProductRepositoryStub()
	uc := NewCatalogUseCase(repo)
	ctx := context.Background()

	p := testhelpers.SampleProduct("new")
	if err := uc.StoreProduct(ctx, p); err != nil {
		t.Fatalf("store returned error: %v", err)
	}
	if len(repo.Upserts) != 1 || repo.Upserts[0].ID != "new" {
		t.Fatalf("expected recorded upsert, got %+v", repo.Upserts)
	}

	p.Stock = 1
	if err := uc.StoreProduct(ctx, p); err != nil {
		t.Fatalf("store returned error: %v", err)
	}
	stored, err := uc.Get(ctx, "new")
	if err != nil {
		t.Fatalf("get returned error: %v", err)
	}
	if stored.Stock != 1 {
		t.Fatalf("expected updated stock, got %d", stored.Stock)
	}
}
