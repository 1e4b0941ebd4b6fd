// Package mvc demonstrates splitting a feature into a model holding the data,
// a view presenting it and a controller connecting the two.
package mvc

import (
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"patternshell/internal/data/embedded"
)

// ErrItemNotFound is returned by Model.Get for names not in the model.
var ErrItemNotFound = errors.New("item not found")

// Price prints with exactly two decimals.
type Price float64

func (p Price) String() string {
	return strconv.FormatFloat(float64(p), 'f', 2, 64)
}

// Item is one record of the model.
type Item struct {
	Name     string `yaml:"name"`
	Price    Price  `yaml:"price"`
	Quantity int    `yaml:"quantity"`
}

// Model is the data side of the pattern.
type Model interface {
	ItemType() string
	Items() []string
	Get(name string) (Item, error)
}

type catalogFile struct {
	ItemType string `yaml:"item_type"`
	Items    []Item `yaml:"items"`
}

// ProductModel is a Model backed by a YAML catalog. Items keep file order.
type ProductModel struct {
	itemType string
	items    []Item
	index    map[string]int
}

var _ Model = (*ProductModel)(nil)

// NewProductModel loads the built-in product catalog.
func NewProductModel() (*ProductModel, error) {
	return LoadModel(embedded.ProductCatalogData)
}

// LoadModel parses a catalog document.
func LoadModel(data []byte) (*ProductModel, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if file.ItemType == "" {
		return nil, errors.New("catalog has no item_type")
	}

	m := &ProductModel{
		itemType: file.ItemType,
		items:    file.Items,
		index:    make(map[string]int, len(file.Items)),
	}
	for i, item := range file.Items {
		if item.Name == "" {
			return nil, fmt.Errorf("catalog item %d has no name", i)
		}
		if _, dup := m.index[item.Name]; dup {
			return nil, fmt.Errorf("catalog item %q listed twice", item.Name)
		}
		if item.Quantity < 0 || item.Price < 0 {
			return nil, fmt.Errorf("catalog item %q has a negative price or quantity", item.Name)
		}
		m.index[item.Name] = i
	}
	return m, nil
}

// ItemType implements Model.
func (m *ProductModel) ItemType() string { return m.itemType }

// Items implements Model.
func (m *ProductModel) Items() []string {
	names := make([]string, len(m.items))
	for i, item := range m.items {
		names[i] = item.Name
	}
	return names
}

// Get implements Model.
func (m *ProductModel) Get(name string) (Item, error) {
	i, ok := m.index[name]
	if !ok {
		return Item{}, fmt.Errorf("%q not in the %s list: %w", name, m.itemType, ErrItemNotFound)
	}
	return m.items[i], nil
}
