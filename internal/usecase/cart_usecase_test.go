package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"auto_accessories/internal/domain/entities"
	mock_interfaces "auto_accessories/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func installed(cost float64) entities.InstallationOption {
	return entities.InstallationOption{HasInstallation: true, InstallationCost: fptr(cost)}
}

func mustAdd(t *testing.T, s *testStore, sid, pid string, qty int, opt entities.InstallationOption) entities.Cart {
	t.Helper()
	c, err := s.cart.AddToCart(context.Background(), sid, pid, qty, opt)
	if err != nil {
		t.Fatalf("add %s: %v", pid, err)
	}
	return c
}

func TestCartUseCase_AddToCart(t *testing.T) {
	ctx := context.Background()

	t.Run("installation flag separates lines", func(t *testing.T) {
		s := newTestStore()
		mustAdd(t, s, "s1", "p-dashcam", 1, entities.InstallationOption{})
		c := mustAdd(t, s, "s1", "p-dashcam", 1, installed(499))

		if len(c.Items) != 2 || c.Items[0].Quantity != 1 || c.Items[1].Quantity != 1 {
			t.Fatalf("expected two single-unit lines, got %+v", c.Items)
		}
		if c.Items[0].LineID == c.Items[1].LineID {
			t.Fatalf("line ids must differ: %q", c.Items[0].LineID)
		}
	})

	t.Run("same flag merges quantity", func(t *testing.T) {
		s := newTestStore()
		mustAdd(t, s, "s1", "p-stereo", 1, installed(500))
		c := mustAdd(t, s, "s1", "p-stereo", 1, installed(500))

		if len(c.Items) != 1 || c.Items[0].Quantity != 2 {
			t.Fatalf("expected one merged line, got %+v", c.Items)
		}
	})

	t.Run("discount selection", func(t *testing.T) {
		s := newTestStore()
		c := mustAdd(t, s, "s1", "p-dashcam", 1, entities.InstallationOption{})
		if c.Items[0].Price != 800 || c.Items[0].OriginalPrice == nil || *c.Items[0].OriginalPrice != 1000 {
			t.Fatalf("expected discounted price, got %+v", c.Items[0])
		}

		// A discount above the list price is ignored.
		c = mustAdd(t, s, "s1", "p-covers", 1, entities.InstallationOption{})
		if line := c.Items[1]; line.Price != 1000 || line.OriginalPrice != nil {
			t.Fatalf("expected list price, got %+v", line)
		}
	})

	t.Run("rejections", func(t *testing.T) {
		s := newTestStore()
		cases := []struct {
			name    string
			session string
			product string
			qty     int
			opt     entities.InstallationOption
			want    error
		}{
			{name: "zero quantity", session: "s1", product: "p-dashcam", qty: 0, want: ErrInvalidQuantity},
			{name: "unknown product", session: "s1", product: "missing", qty: 1, want: ErrProductNotFound},
			{name: "out of stock", session: "s1", product: "p-soldout", qty: 1, want: ErrProductOutOfStock},
			{name: "installation without cost", session: "s1", product: "p-dashcam", qty: 1, opt: entities.InstallationOption{HasInstallation: true}, want: ErrInvalidInstallationCost},
			{name: "blank session", session: " ", product: "p-dashcam", qty: 1, want: ErrInvalidSessionID},
		}
		for _, tc := range cases {
			_, err := s.cart.AddToCart(ctx, tc.session, tc.product, tc.qty, tc.opt)
			if !errors.Is(err, tc.want) {
				t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
			}
		}

		c, _ := s.cart.GetCart(ctx, "s1")
		if len(c.Items) != 0 {
			t.Fatalf("rejected adds must not change the cart: %+v", c.Items)
		}
	})
}

func TestCartUseCase_Total(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	if _, err := s.products.Upsert(ctx, entities.Product{ID: "p-k", Name: "K", Price: 1000, Stock: 5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mustAdd(t, s, "s1", "p-k", 2, installed(300))
	c, err := s.cart.GetCart(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Total() != 2600 || c.ItemCount() != 2 {
		t.Fatalf("expected total 2600 over 2 items, got %v over %d", c.Total(), c.ItemCount())
	}
}

func TestCartUseCase_Remove(t *testing.T) {
	ctx := context.Background()
	seed := func(t *testing.T) *testStore {
		s := newTestStore()
		mustAdd(t, s, "s1", "p-dashcam", 1, entities.InstallationOption{})
		mustAdd(t, s, "s1", "p-dashcam", 1, installed(499))
		mustAdd(t, s, "s1", "p-stereo", 1, entities.InstallationOption{})
		return s
	}

	t.Run("by product removes every variant", func(t *testing.T) {
		s := seed(t)
		c, err := s.cart.RemoveFromCart(ctx, "s1", "p-dashcam")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(c.Items) != 1 || c.Items[0].ProductID != "p-stereo" {
			t.Fatalf("unexpected cart: %+v", c.Items)
		}
	})

	t.Run("by line removes one variant", func(t *testing.T) {
		s := seed(t)
		c, err := s.cart.RemoveLine(ctx, "s1", entities.LineIDFor("p-dashcam", true))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(c.Items) != 2 || c.Items[0].HasInstallation {
			t.Fatalf("unexpected cart: %+v", c.Items)
		}

		if _, err := s.cart.RemoveLine(ctx, "s1", "nope"); !errors.Is(err, ErrCartLineNotFound) {
			t.Fatalf("expected ErrCartLineNotFound, got %v", err)
		}
		if _, err := s.cart.RemoveLine(ctx, "s1", ""); !errors.Is(err, ErrInvalidLineID) {
			t.Fatalf("expected ErrInvalidLineID, got %v", err)
		}
	})

	t.Run("unknown product is a no-op", func(t *testing.T) {
		s := seed(t)
		c, err := s.cart.RemoveFromCart(ctx, "s1", "missing")
		if err != nil || len(c.Items) != 3 {
			t.Fatalf("unexpected result: %+v err=%v", c.Items, err)
		}
	})

	t.Run("clear", func(t *testing.T) {
		s := seed(t)
		c, err := s.cart.ClearCart(ctx, "s1")
		if err != nil || len(c.Items) != 0 || c.Total() != 0 {
			t.Fatalf("unexpected result: %+v err=%v", c, err)
		}
	})
}

func TestCartUseCase_UpdateQuantity(t *testing.T) {
	ctx := context.Background()

	for _, qty := range []int{0, -3} {
		s := newTestStore()
		mustAdd(t, s, "s1", "p-dashcam", 2, entities.InstallationOption{})

		c, err := s.cart.UpdateQuantity(ctx, "s1", "p-dashcam", qty)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(c.Items) != 0 {
			t.Fatalf("quantity %d must remove the line, got %+v", qty, c.Items)
		}
	}

	s := newTestStore()
	mustAdd(t, s, "s1", "p-dashcam", 2, entities.InstallationOption{})
	c, err := s.cart.UpdateQuantity(ctx, "s1", "p-dashcam", 5)
	if err != nil || c.Items[0].Quantity != 5 {
		t.Fatalf("unexpected result: %+v err=%v", c.Items, err)
	}
}

func TestCartUseCase_ReadsPersistedCartBeforeWriting(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	mustAdd(t, s, "s1", "p-dashcam", 1, entities.InstallationOption{})

	// A fresh instance over the same storage must not clobber the stored lines.
	restarted := NewCartUseCase(s.carts, s.products)
	c, err := restarted.AddToCart(ctx, "s1", "p-stereo", 1, entities.InstallationOption{})
	if err != nil || len(c.Items) != 2 {
		t.Fatalf("unexpected result: %+v err=%v", c.Items, err)
	}
}

func TestCartUseCase_ConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.cart.AddToCart(ctx, "s1", "p-dashcam", 1, entities.InstallationOption{})
		}()
	}
	wg.Wait()

	c, err := s.cart.GetCart(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Items) != 1 || c.Items[0].Quantity != 20 {
		t.Fatalf("expected one line of 20, got %+v", c.Items)
	}
}

func TestCartUseCase_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockICartRepository(ctrl)
	products := mock_interfaces.NewMockIProductRepository(ctrl)
	uc := NewCartUseCase(repo, products)

	products.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", Price: 10, Stock: 1}, nil)
	repo.EXPECT().Get(gomock.Any(), "s1").Return(entities.Cart{}, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db"))

	_, err := uc.AddToCart(context.Background(), "s1", "p1", 1, entities.InstallationOption{})
	if err == nil || err.Error() != "db" {
		t.Fatalf("expected db error, got %v", err)
	}
}

func TestCartUseCase_Checkout(t *testing.T) {
	ctx := context.Background()

	t.Run("empty cart never reaches place", func(t *testing.T) {
		s := newTestStore()
		_, err := s.cart.Checkout(ctx, "s1", func(entities.Cart) error {
			t.Fatalf("place must not run")
			return nil
		})
		if !errors.Is(err, ErrEmptyCart) {
			t.Fatalf("expected ErrEmptyCart, got %v", err)
		}
	})

	t.Run("place error keeps the cart", func(t *testing.T) {
		s := newTestStore()
		mustAdd(t, s, "s1", "p-dashcam", 1, entities.InstallationOption{})
		_, err := s.cart.Checkout(ctx, "s1", func(entities.Cart) error { return errors.New("db") })
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
		c, _ := s.cart.GetCart(ctx, "s1")
		if len(c.Items) != 1 {
			t.Fatalf("cart must be kept: %+v", c.Items)
		}
	})

	t.Run("success empties the cart", func(t *testing.T) {
		s := newTestStore()
		mustAdd(t, s, "s1", "p-dashcam", 2, entities.InstallationOption{})
		var seen entities.Cart
		c, err := s.cart.Checkout(ctx, "s1", func(c entities.Cart) error {
			seen = c
			return nil
		})
		if err != nil || len(c.Items) != 0 {
			t.Fatalf("unexpected result: %+v err=%v", c.Items, err)
		}
		if len(seen.Items) != 1 || seen.Items[0].Quantity != 2 {
			t.Fatalf("place must see the cart lines: %+v", seen.Items)
		}
	})
}

func TestCartUseCase_SyncAndDetach(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	c, err := s.cart.SyncInstallationCost(ctx, "s1", "p-dashcam", 700)
	if err != nil || len(c.Items) != 0 {
		t.Fatalf("sync on an empty cart must be a no-op: %+v err=%v", c.Items, err)
	}

	mustAdd(t, s, "s1", "p-dashcam", 1, entities.InstallationOption{})
	mustAdd(t, s, "s1", "p-dashcam", 2, installed(499))

	c, err = s.cart.SyncInstallationCost(ctx, "s1", "p-dashcam", 700)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line, ok := c.InstalledLine("p-dashcam"); !ok || *line.InstallationCost != 700 {
		t.Fatalf("expected cost 700, got %+v", line)
	}

	c, err = s.cart.DetachInstallation(ctx, "s1", "p-dashcam")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Items) != 1 || c.Items[0].Quantity != 3 || c.Items[0].HasInstallation || c.Items[0].InstallationCost != nil {
		t.Fatalf("expected one merged plain line, got %+v", c.Items)
	}
}
