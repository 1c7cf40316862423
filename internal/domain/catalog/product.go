package catalog

import (
	"time"

	"github.com/foodflow/backend/internal/domain/shared"
	"github.com/foodflow/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductStatus represents the status of a menu product
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// AddonOption is an extra a product can be ordered with,
// such as "extra cheese" or "double portion".
type AddonOption struct {
	ID    uuid.UUID
	Name  string
	Price decimal.Decimal
}

// Product represents an item on the venue's menu.
// It is the source of the name, price and category snapshots
// frozen onto order lines at ordering time.
type Product struct {
	shared.VenueAggregateRoot
	Name      string
	Category  string
	Price     decimal.Decimal
	Status    ProductStatus
	SortOrder int
	Addons    []AddonOption
}

// NewProduct creates a new product
func NewProduct(venueID uuid.UUID, name, category string, price decimal.Decimal) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}

	product := &Product{
		VenueAggregateRoot: shared.NewVenueAggregateRoot(venueID),
		Name:               name,
		Category:           category,
		Price:              price,
		Status:             ProductStatusActive,
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// Rename updates the product name
func (p *Product) Rename(name string) error {
	if err := validateProductName(name); err != nil {
		return err
	}

	p.Name = name
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// UpdatePrice updates the selling price
func (p *Product) UpdatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}

	oldPrice := p.Price
	p.Price = price
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductPriceChangedEvent(p, oldPrice))

	return nil
}

// SetCategory updates the menu category
func (p *Product) SetCategory(category string) {
	p.Category = category
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetSortOrder sets the display order within the menu
func (p *Product) SetSortOrder(order int) {
	p.SortOrder = order
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// AddAddonOption registers an extra this product can be ordered with
func (p *Product) AddAddonOption(name string, price decimal.Decimal) (AddonOption, error) {
	if name == "" {
		return AddonOption{}, shared.NewDomainError("INVALID_ADDON", "Addon name cannot be empty")
	}
	if price.IsNegative() {
		return AddonOption{}, shared.NewDomainError("INVALID_ADDON", "Addon price cannot be negative")
	}

	option := AddonOption{
		ID:    uuid.New(),
		Name:  name,
		Price: price,
	}
	p.Addons = append(p.Addons, option)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return option, nil
}

// FindAddonOption looks up an addon option by id
func (p *Product) FindAddonOption(id uuid.UUID) (AddonOption, bool) {
	for _, option := range p.Addons {
		if option.ID == id {
			return option, true
		}
	}
	return AddonOption{}, false
}

// Activate makes the product orderable
func (p *Product) Activate() error {
	if p.Status == ProductStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Product is already active")
	}

	p.Status = ProductStatusActive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// Deactivate takes the product off the menu
func (p *Product) Deactivate() error {
	if p.Status == ProductStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Product is already inactive")
	}

	p.Status = ProductStatusInactive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// IsActive returns true if the product can be ordered
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

// PriceMoney returns the selling price as a Money value object
func (p *Product) PriceMoney() valueobject.Money {
	return valueobject.NewMoneyARS(p.Price)
}

func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
