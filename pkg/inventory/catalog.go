package inventory

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/vendkit/pkg/payment"
)

// DefaultCatalog returns the stock catalog the machine ships with.
func DefaultCatalog() []Item {
	return []Item{
		{ID: "A1", Name: "Coca Cola", Price: 150, Stock: 10, ImageURL: "https://images.unsplash.com/photo-1554866585-cd94860890b7?w=200&h=200&fit=crop"},
		{ID: "A2", Name: "Pepsi", Price: 150, Stock: 8, ImageURL: "https://images.unsplash.com/photo-1629203851122-3726ecdf080e?w=200&h=200&fit=crop"},
		{ID: "A3", Name: "Water", Price: 100, Stock: 15, ImageURL: "https://images.unsplash.com/photo-1548839140-29a749e1cf4d?w=200&h=200&fit=crop"},
		{ID: "B1", Name: "Chips", Price: 200, Stock: 12, ImageURL: "https://images.unsplash.com/photo-1566478989037-eec170784d0b?w=200&h=200&fit=crop"},
		{ID: "B2", Name: "Chocolate", Price: 250, Stock: 7, ImageURL: "https://images.unsplash.com/photo-1511381939415-e44015466834?w=200&h=200&fit=crop"},
		{ID: "B3", Name: "Candy", Price: 175, Stock: 20, ImageURL: "https://images.unsplash.com/photo-1582058091505-f87a2e55a40f?w=200&h=200&fit=crop"},
		{ID: "C1", Name: "Cookie", Price: 225, Stock: 5, ImageURL: "https://images.unsplash.com/photo-1499636136210-6f4ee915583e?w=200&h=200&fit=crop"},
		{ID: "C2", Name: "Juice", Price: 200, Stock: 4, ImageURL: "https://images.unsplash.com/photo-1600271886742-f049cd451bba?w=200&h=200&fit=crop"},
		{ID: "C3", Name: "Energy Drink", Price: 300, Stock: 6, ImageURL: "https://images.unsplash.com/photo-1622543925917-763c34d1a86e?w=200&h=200&fit=crop"},
	}
}

// catalogFile is the on-disk YAML representation of a catalog. Prices are
// decimal amounts in major currency units, e.g. 1.50.
type catalogFile struct {
	Items []catalogEntry `yaml:"items"`
}

type catalogEntry struct {
	ID    string  `yaml:"id"`
	Name  string  `yaml:"name"`
	Price float64 `yaml:"price"`
	Stock int     `yaml:"stock"`
	Image string  `yaml:"image"`
}

// LoadCatalog reads a YAML catalog file into catalog items.
func LoadCatalog(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if len(file.Items) == 0 {
		return nil, fmt.Errorf("%w: no items in %s", ErrInvalidCatalog, path)
	}

	items := make([]Item, 0, len(file.Items))
	for i, entry := range file.Items {
		item, err := entry.toItem()
		if err != nil {
			return nil, errors.Join(fmt.Errorf("%w: item[%d]", ErrInvalidCatalog, i), err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (e catalogEntry) toItem() (Item, error) {
	if e.ID == "" || e.Name == "" {
		return Item{}, fmt.Errorf("%w: id and name are required", ErrInvalidItem)
	}
	if e.Stock < 0 {
		return Item{}, fmt.Errorf("%w: negative stock for %s", ErrInvalidItem, e.ID)
	}

	price, err := payment.ParseAmount(e.Price)
	if err != nil || price < 0 {
		return Item{}, fmt.Errorf("%w: bad price for %s", ErrInvalidItem, e.ID)
	}

	return Item{
		ID:       e.ID,
		Name:     e.Name,
		Price:    price,
		Stock:    e.Stock,
		ImageURL: e.Image,
	}, nil
}
