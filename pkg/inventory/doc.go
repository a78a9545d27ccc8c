// Package inventory manages the vending machine catalog: a fixed mapping of
// item id to item, where price and stock are the only mutable fields.
//
// # Usage
//
//	svc := inventory.MustNew() // default nine-item catalog
//
//	item, err := svc.Item("A1")
//	if svc.Available("A1") {
//	    _ = svc.DecrementStock("A1")
//	}
//
// Catalogs can also be seeded explicitly or from a YAML file:
//
//	svc, err := inventory.New(inventory.WithCatalogFile("catalog.yaml"))
//
//	# catalog.yaml
//	items:
//	  - id: A1
//	    name: Coca Cola
//	    price: 1.50
//	    stock: 10
//
// # Concurrency
//
// Service is guarded by a RWMutex so one catalog can back several vending
// sessions. DecrementAll is the commit-time gate for multi-item purchases: it
// checks the full cart and decrements under a single lock, failing without
// mutation on any shortfall, so stock never goes negative when concurrent
// commits race for the last unit.
package inventory
