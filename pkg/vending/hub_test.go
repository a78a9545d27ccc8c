package vending_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vendkit/pkg/inventory"
	"github.com/dmitrymomot/vendkit/pkg/vending"
)

func TestHub(t *testing.T) {
	t.Parallel()

	t.Run("one machine per key", func(t *testing.T) {
		t.Parallel()
		hub := vending.NewHub()

		first := hub.GetOrCreate("user-1")
		second := hub.GetOrCreate("user-2")
		assert.NotSame(t, first, second)
		assert.Same(t, first, hub.GetOrCreate("user-1"))
		assert.Equal(t, 2, hub.Len())
	})

	t.Run("machines share the configured catalog", func(t *testing.T) {
		t.Parallel()
		catalog, err := inventory.New(inventory.WithItems(
			inventory.Item{ID: "A1", Name: "Cola", Price: 150, Stock: 2},
		))
		require.NoError(t, err)

		hub := vending.NewHub(vending.WithInventory(catalog))

		for _, key := range []string{"user-1", "user-2"} {
			m := hub.GetOrCreate(key)
			_, err := m.InsertCoin(200)
			require.NoError(t, err)
			_, err = m.SelectItem("A1")
			require.NoError(t, err)
			_, err = m.CompletePurchase()
			require.NoError(t, err)
		}

		item, err := catalog.Item("A1")
		require.NoError(t, err)
		assert.Equal(t, 0, item.Stock)
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		t.Parallel()
		hub := vending.NewHub()

		first := hub.GetOrCreate("user-1")
		_, err := first.InsertCoin(100)
		require.NoError(t, err)

		second := hub.GetOrCreate("user-2")
		status := second.Status()
		assert.Equal(t, "idle", status.State)
		assert.Zero(t, status.Balance)
	})

	t.Run("delete removes the machine", func(t *testing.T) {
		t.Parallel()
		hub := vending.NewHub()

		hub.GetOrCreate("user-1")
		hub.Delete("user-1")

		_, ok := hub.Get("user-1")
		assert.False(t, ok)
		assert.Equal(t, 0, hub.Len())
	})

	t.Run("concurrent GetOrCreate returns one instance", func(t *testing.T) {
		t.Parallel()
		hub := vending.NewHub()

		const callers = 16
		machines := make([]*vending.Machine, callers)
		var wg sync.WaitGroup
		for i := 0; i < callers; i++ {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				machines[i] = hub.GetOrCreate("user-1")
			}()
		}
		wg.Wait()

		for _, m := range machines[1:] {
			assert.Same(t, machines[0], m)
		}
		assert.Equal(t, 1, hub.Len())
	})
}
