package usecase

import (
	"context"
	"testing"
	"time"

	domainErrors "github.com/vominhduc11/dealerhub/internal/domain/errors"
	"github.com/vominhduc11/dealerhub/internal/domain/model"
	"github.com/vominhduc11/dealerhub/internal/pricing"
	"github.com/vominhduc11/dealerhub/internal/session"
	testhelpers "github.com/vominhduc11/dealerhub/internal/test"
)

func newCartUseCase(products ...model.Product) *CartUseCase {
	manager := session.NewManager(pricing.DefaultRules, time.Hour)
	return NewCartUseCase(manager, testhelpers.NewProductRepositoryStub(products...))
}

func TestCartAddResolvesProduct(t *testing.T) {
	p := testhelpers.SampleProduct("p-1")
	uc := newCartUseCase(p)

	view, err := uc.Add(context.Background(), 1, "p-1", 3)
	if err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	if len(view.Items) != 1 || view.Items[0].Quantity != 3 {
		t.Fatalf("unexpected cart %+v", view.Items)
	}
	if view.Subtotal != 3*p.UnitPrice {
		t.Fatalf("expected subtotal %d, got %d", 3*p.UnitPrice, view.Subtotal)
	}
}

func TestCartAddUnknownProduct(t *testing.T) {
	uc := newCartUseCase()

	view, err := uc.Add(context.Background(), 1, "missing", 1)
	if err != domainErrors.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("expected untouched cart, got %+v", view.Items)
	}
}

func TestCartAddDefaultsToMinOrderQuantity(t *testing.T) {
	p := testhelpers.SampleProduct("p-1")
	p.MinOrderQty = 5
	uc := newCartUseCase(p)

	view, err := uc.Add(context.Background(), 1, "p-1", 0)
	if err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	if view.Items[0].Quantity != 5 {
		t.Fatalf("expected min order quantity 5, got %d", view.Items[0].Quantity)
	}

	p2 := testhelpers.SampleProduct("p-2")
	p2.MinOrderQty = 0
	uc2 := newCartUseCase(p2)
	view, err = uc2.Add(context.Background(), 1, "p-2", -3)
	if err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	if view.Items[0].Quantity != 1 {
		t.Fatalf("expected fallback quantity 1, got %d", view.Items[0].Quantity)
	}
}

func TestCartUpdateRemoveClearNote(t *testing.T) {
	p := testhelpers.SampleProduct("p-1")
	uc := newCartUseCase(p)
	ctx := context.Background()

	if _, err := uc.Add(ctx, 1, "p-1", 2); err != nil {
		t.Fatalf("add returned error: %v", err)
	}

	view := uc.UpdateQuantity(1, "p-1", 9)
	if view.Items[0].Quantity != 9 {
		t.Fatalf("expected quantity 9, got %d", view.Items[0].Quantity)
	}

	view = uc.SetNote(1, "call before delivery")
	if view.Note != "call before delivery" {
		t.Fatalf("expected note to stick, got %q", view.Note)
	}

	view = uc.Remove(1, "p-1")
	if len(view.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", view.Items)
	}

	if _, err := uc.Add(ctx, 1, "p-1", 2); err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	view = uc.Clear(1)
	if len(view.Items) != 0 {
		t.Fatalf("expected cleared cart, got %+v", view.Items)
	}
}

func TestCartIsolatedPerDealer(t *testing.T) {
	p := testhelpers.SampleProduct("p-1")
	uc := newCartUseCase(p)
	ctx := context.Background()

	if _, err := uc.Add(ctx, 1, "p-1", 2); err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	if view := uc.View(2); len(view.Items) != 0 {
		t.Fatalf("expected dealer 2 to have an empty cart, got %+v", view.Items)
	}
}

func TestCartDiscountTiers(t *testing.T) {
	p := testhelpers.SampleProduct("p-1")
	p.UnitPrice = 10_000_000
	uc := newCartUseCase(p)

	if _, err := uc.Add(context.Background(), 1, "p-1", 1); err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	tiers := uc.DiscountTiers(1)
	if len(tiers) != len(pricing.DefaultRules) {
		t.Fatalf("expected %d tiers, got %d", len(pricing.DefaultRules), len(tiers))
	}
	if !tiers[0].Eligible {
		t.Fatal("expected the first tier to be eligible at 10,000,000")
	}
	if tiers[1].Eligible {
		t.Fatal("expected the second tier to stay ineligible")
	}
}
