package inventory_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vendkit/pkg/inventory"
	"github.com/dmitrymomot/vendkit/pkg/payment"
)

func TestService_Lookup(t *testing.T) {
	t.Parallel()
	svc := inventory.MustNew()

	t.Run("known item", func(t *testing.T) {
		t.Parallel()
		item, err := svc.Item("A1")
		require.NoError(t, err)
		assert.Equal(t, "Coca Cola", item.Name)
		assert.Equal(t, payment.Cents(150), item.Price)
		assert.Equal(t, 10, item.Stock)
	})

	t.Run("unknown item", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Item("Z9")
		assert.ErrorIs(t, err, inventory.ErrItemNotFound)
	})

	t.Run("items sorted by id", func(t *testing.T) {
		t.Parallel()
		items := svc.Items()
		require.Len(t, items, 9)
		assert.Equal(t, "A1", items[0].ID)
		assert.Equal(t, "C3", items[8].ID)
	})
}

func TestService_Stock(t *testing.T) {
	t.Parallel()

	newService := func(t *testing.T, stock int) *inventory.Service {
		t.Helper()
		svc, err := inventory.New(inventory.WithItems(
			inventory.Item{ID: "A1", Name: "Cola", Price: 150, Stock: stock},
		))
		require.NoError(t, err)
		return svc
	}

	t.Run("available", func(t *testing.T) {
		t.Parallel()
		assert.True(t, newService(t, 1).Available("A1"))
		assert.False(t, newService(t, 0).Available("A1"))
		assert.False(t, newService(t, 1).Available("Z9"))
	})

	t.Run("decrement", func(t *testing.T) {
		t.Parallel()
		svc := newService(t, 1)

		require.NoError(t, svc.DecrementStock("A1"))
		assert.False(t, svc.Available("A1"))

		// Fails without mutation at zero.
		err := svc.DecrementStock("A1")
		assert.ErrorIs(t, err, inventory.ErrOutOfStock)

		item, err := svc.Item("A1")
		require.NoError(t, err)
		assert.Equal(t, 0, item.Stock)
	})

	t.Run("increment and set price", func(t *testing.T) {
		t.Parallel()
		svc := newService(t, 0)

		require.NoError(t, svc.IncrementStock("A1", 5))
		assert.True(t, svc.Available("A1"))

		require.NoError(t, svc.SetPrice("A1", 175))
		item, err := svc.Item("A1")
		require.NoError(t, err)
		assert.Equal(t, payment.Cents(175), item.Price)

		assert.ErrorIs(t, svc.IncrementStock("Z9", 1), inventory.ErrItemNotFound)
		assert.ErrorIs(t, svc.SetPrice("Z9", 100), inventory.ErrItemNotFound)
	})
}

func TestService_DecrementAll(t *testing.T) {
	t.Parallel()

	t.Run("counts duplicates as units", func(t *testing.T) {
		t.Parallel()
		svc, err := inventory.New(inventory.WithItems(
			inventory.Item{ID: "A1", Name: "Cola", Price: 150, Stock: 2},
			inventory.Item{ID: "B1", Name: "Chips", Price: 200, Stock: 1},
		))
		require.NoError(t, err)

		require.NoError(t, svc.DecrementAll([]string{"A1", "B1", "A1"}))

		a1, _ := svc.Item("A1")
		b1, _ := svc.Item("B1")
		assert.Equal(t, 0, a1.Stock)
		assert.Equal(t, 0, b1.Stock)
	})

	t.Run("no mutation on shortfall", func(t *testing.T) {
		t.Parallel()
		svc, err := inventory.New(inventory.WithItems(
			inventory.Item{ID: "A1", Name: "Cola", Price: 150, Stock: 2},
			inventory.Item{ID: "B1", Name: "Chips", Price: 200, Stock: 1},
		))
		require.NoError(t, err)

		err = svc.DecrementAll([]string{"A1", "B1", "B1"})
		assert.ErrorIs(t, err, inventory.ErrOutOfStock)

		a1, _ := svc.Item("A1")
		b1, _ := svc.Item("B1")
		assert.Equal(t, 2, a1.Stock)
		assert.Equal(t, 1, b1.Stock)
	})

	t.Run("exactly one concurrent winner for the last unit", func(t *testing.T) {
		t.Parallel()
		svc, err := inventory.New(inventory.WithItems(
			inventory.Item{ID: "A1", Name: "Cola", Price: 150, Stock: 1},
		))
		require.NoError(t, err)

		const attempts = 16
		var wg sync.WaitGroup
		errs := make([]error, attempts)
		for i := 0; i < attempts; i++ {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs[i] = svc.DecrementAll([]string{"A1"})
			}()
		}
		wg.Wait()

		wins := 0
		for _, err := range errs {
			if err == nil {
				wins++
			} else {
				assert.ErrorIs(t, err, inventory.ErrOutOfStock)
			}
		}
		assert.Equal(t, 1, wins)

		item, err := svc.Item("A1")
		require.NoError(t, err)
		assert.Equal(t, 0, item.Stock)
	})
}

func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	writeFile := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	t.Run("valid catalog", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, `
items:
  - id: A1
    name: Cola
    price: 1.50
    stock: 10
  - id: B1
    name: Chips
    price: 2.00
    stock: 3
`)

		svc, err := inventory.New(inventory.WithCatalogFile(path))
		require.NoError(t, err)

		items := svc.Items()
		require.Len(t, items, 2)
		assert.Equal(t, payment.Cents(150), items[0].Price)
		assert.Equal(t, 3, items[1].Stock)
	})

	t.Run("rejects malformed entries", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, `
items:
  - id: A1
    price: 1.50
    stock: 10
`)

		_, err := inventory.LoadCatalog(path)
		assert.ErrorIs(t, err, inventory.ErrInvalidCatalog)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := inventory.LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, inventory.ErrInvalidCatalog)
	})
}
