package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestStoreAddLineMergesByProduct(t *testing.T) {
	t.Parallel()

	store := NewStore()
	productID := uuid.New()

	first := store.AddLine("sess", productID, 1)
	second := store.AddLine("sess", productID, 2)

	if first.ID != second.ID {
		t.Fatalf("expected merge into the same line")
	}
	if second.Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", second.Quantity)
	}
	if got := store.Get("sess"); len(got.Lines) != 1 {
		t.Fatalf("expected a single line, got %d", len(got.Lines))
	}
}

func TestStoreAddLinePreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	store := NewStore()
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	store.AddLine("sess", a, 1)
	store.AddLine("sess", b, 1)
	store.AddLine("sess", c, 1)
	store.AddLine("sess", a, 1)

	got := store.Get("sess")
	if len(got.Lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(got.Lines))
	}
	order := []uuid.UUID{got.Lines[0].ProductID, got.Lines[1].ProductID, got.Lines[2].ProductID}
	want := []uuid.UUID{a, b, c}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order disturbed at %d: got %s want %s", i, order[i], want[i])
		}
	}
}

func TestStoreRemoveLine(t *testing.T) {
	t.Parallel()

	store := NewStore()
	a, b := uuid.New(), uuid.New()
	lineA := store.AddLine("sess", a, 1)
	store.AddLine("sess", b, 2)

	if !store.RemoveLine("sess", lineA.ID) {
		t.Fatal("expected removal to report true")
	}
	got := store.Get("sess")
	if len(got.Lines) != 1 || got.Lines[0].ProductID != b {
		t.Fatalf("unexpected remaining lines: %+v", got.Lines)
	}

	if store.RemoveLine("sess", lineA.ID) {
		t.Fatal("second removal should be a no-op")
	}
	if len(store.Get("sess").Lines) != 1 {
		t.Fatal("no-op removal must not change the cart")
	}
}

func TestStoreClearKeepsCoupon(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.AddLine("sess", uuid.New(), 2)
	store.SetCoupon("sess", "DISCOUNT10", decimal.RequireFromString("0.10"))

	store.Clear("sess")
	store.Clear("sess")

	got := store.Get("sess")
	if len(got.Lines) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(got.Lines))
	}
	if !got.Coupon.Applied || got.Coupon.Code != "DISCOUNT10" {
		t.Fatalf("coupon state should survive clear, got %+v", got.Coupon)
	}
}

func TestStoreSessionsAreIsolated(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.AddLine("alpha", uuid.New(), 1)

	if got := store.Get("beta"); len(got.Lines) != 0 {
		t.Fatalf("expected beta session to start empty, got %d lines", len(got.Lines))
	}
}

func TestStoreGetReturnsCopy(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.AddLine("sess", uuid.New(), 1)

	got := store.Get("sess")
	got.Lines[0].Quantity = 99

	if store.Get("sess").Lines[0].Quantity != 1 {
		t.Fatal("mutating a snapshot must not touch store state")
	}
}
