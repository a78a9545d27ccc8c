package inventory

import "errors"

var (
	// ErrItemNotFound indicates the item id is not in the catalog
	ErrItemNotFound = errors.New("inventory.item_not_found")

	// ErrOutOfStock indicates the item has no remaining stock
	ErrOutOfStock = errors.New("inventory.out_of_stock")

	// ErrInvalidItem indicates a malformed catalog entry
	ErrInvalidItem = errors.New("inventory.invalid_item")

	// ErrInvalidCatalog indicates a catalog file that cannot be loaded
	ErrInvalidCatalog = errors.New("inventory.invalid_catalog")
)
