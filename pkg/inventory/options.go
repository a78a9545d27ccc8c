package inventory

import "fmt"

// Option configures a Service during construction.
type Option func(*Service) error

// WithItems seeds the catalog with the given items, replacing any items with
// the same id registered by earlier options.
func WithItems(items ...Item) Option {
	return func(s *Service) error {
		for _, item := range items {
			if item.ID == "" {
				return fmt.Errorf("%w: empty item id", ErrInvalidItem)
			}
			if item.Price < 0 || item.Stock < 0 {
				return fmt.Errorf("%w: %s has negative price or stock", ErrInvalidItem, item.ID)
			}
			entry := item
			s.items[item.ID] = &entry
		}
		return nil
	}
}

// WithCatalogFile seeds the catalog from a YAML file. See LoadCatalog for the
// expected format.
func WithCatalogFile(path string) Option {
	return func(s *Service) error {
		items, err := LoadCatalog(path)
		if err != nil {
			return err
		}
		return WithItems(items...)(s)
	}
}
