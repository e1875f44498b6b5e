package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/vominhduc11/dealerhub/internal/domain/model"
	"github.com/vominhduc11/dealerhub/internal/pricing"
	"github.com/vominhduc11/dealerhub/internal/session"
	testhelpers "github.com/vominhduc11/dealerhub/internal/test"
)

func newCheckoutFixture(t *testing.T) (*CartUseCase, *CheckoutUseCase) {
	t.Helper()
	manager := session.NewManager(pricing.DefaultRules, time.Hour)
	p := testhelpers.SampleProduct("p-1")
	p.UnitPrice = 6_000_000
	cart := NewCartUseCase(manager, testhelpers.NewProductRepositoryStub(p))
	return cart, NewCheckoutUseCase(manager)
}

func TestCheckoutPlaceOrder(t *testing.T) {
	cart, checkout := newCheckoutFixture(t)
	if _, err := cart.Add(context.Background(), 1, "p-1", 2); err != nil {
		t.Fatalf("add returned error: %v", err)
	}

	order := checkout.PlaceOrder(1, "ship monday")
	if order == nil {
		t.Fatal("expected order")
	}
	if order.Subtotal != 12_000_000 || order.Discount.Amount != 240_000 || order.Total != 11_760_000 {
		t.Fatalf("unexpected order pricing %+v", order)
	}
	if order.Note != "ship monday" {
		t.Fatalf("expected frozen note, got %q", order.Note)
	}

	if view := cart.View(1); !view.Locked {
		t.Fatal("expected cart to be locked after placement")
	}
	if current := checkout.CurrentOrder(1); current == nil || current.ID != order.ID {
		t.Fatalf("expected current order %q, got %+v", order.ID, current)
	}
}

func TestCheckoutPlaceOrderKeepsCartNote(t *testing.T) {
	cart, checkout := newCheckoutFixture(t)
	if _, err := cart.Add(context.Background(), 1, "p-1", 1); err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	cart.SetNote(1, "call before delivery")

	order := checkout.PlaceOrder(1, "")
	if order == nil {
		t.Fatal("expected order")
	}
	if order.Note != "call before delivery" {
		t.Fatalf("expected cart note on order, got %q", order.Note)
	}
}

func TestCheckoutPlaceOrderEmptyCart(t *testing.T) {
	_, checkout := newCheckoutFixture(t)
	if order := checkout.PlaceOrder(1, ""); order != nil {
		t.Fatalf("expected nil order for empty cart, got %+v", order)
	}
	if current := checkout.CurrentOrder(1); current != nil {
		t.Fatalf("expected no current order, got %+v", current)
	}
}

func TestCheckoutPay(t *testing.T) {
	cart, checkout := newCheckoutFixture(t)

	// without an order nothing advances
	if status := checkout.Pay(1); status != model.PaymentStatusIdle {
		t.Fatalf("expected idle, got %s", status)
	}

	if _, err := cart.Add(context.Background(), 1, "p-1", 1); err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	checkout.PlaceOrder(1, "")

	if status := checkout.Pay(1); status != model.PaymentStatusSuccess {
		t.Fatalf("expected success, got %s", status)
	}
	if status := checkout.Pay(1); status != model.PaymentStatusSuccess {
		t.Fatalf("expected pay to be idempotent, got %s", status)
	}
}

func TestCheckoutStartNewOrder(t *testing.T) {
	cart, checkout := newCheckoutFixture(t)
	if _, err := cart.Add(context.Background(), 1, "p-1", 1); err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	checkout.PlaceOrder(1, "note")
	checkout.Pay(1)

	view := checkout.StartNewOrder(1)
	if view.Locked || view.Order != nil || len(view.Items) != 0 || view.Note != "" {
		t.Fatalf("expected a fully reset session, got %+v", view)
	}
	if view.PaymentStatus != model.PaymentStatusIdle {
		t.Fatalf("expected idle payment after reset, got %s", view.PaymentStatus)
	}
	if current := checkout.CurrentOrder(1); current != nil {
		t.Fatalf("expected no current order after reset, got %+v", current)
	}
}
