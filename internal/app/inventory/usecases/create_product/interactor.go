// Package create_product implements the create-product use case.
package create_product

import (
	"context"

	"github.com/google/uuid"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/pkg/validate"
)

// Request contains the data needed to create a product. Fields are
// pointers so absence can be told apart from zero values.
type Request struct {
	SKU         *string  `json:"sku"`
	ProductName *string  `json:"productName"`
	Description *string  `json:"description"`
	CategoryID  *string  `json:"categoryId"`
	Quantity    *int64   `json:"quantity"`
	UnitPrice   *float64 `json:"unitPrice"`
}

// Interactor handles the create product use case.
type Interactor struct {
	products   contracts.ProductRepository
	categories contracts.CategoryRepository
}

// NewInteractor creates a new create product interactor.
func NewInteractor(products contracts.ProductRepository, categories contracts.CategoryRepository) *Interactor {
	return &Interactor{
		products:   products,
		categories: categories,
	}
}

// Execute validates the request, verifies the referenced category
// exists, assigns a server-side id and persists the product.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*contracts.ProductModel, error) {
	if err := i.validate(req); err != nil {
		return nil, err
	}

	category, err := i.categories.GetByID(ctx, *req.CategoryID)
	if err != nil {
		return nil, err
	}

	product := &domain.Product{
		ID:          uuid.NewString(),
		SKU:         *req.SKU,
		ProductName: *req.ProductName,
		Description: *req.Description,
		CategoryID:  *req.CategoryID,
		Quantity:    *req.Quantity,
		UnitPrice:   *req.UnitPrice,
	}

	created, err := i.products.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, domain.ErrProductNotCreated
	}

	model := contracts.NewProductModel(created, category)
	return &model, nil
}

func (i *Interactor) validate(req *Request) error {
	return validate.Required(
		validate.Field{Name: "sku", Present: req.SKU != nil},
		validate.Field{Name: "productName", Present: req.ProductName != nil},
		validate.Field{Name: "description", Present: req.Description != nil},
		validate.Field{Name: "categoryId", Present: req.CategoryID != nil},
		validate.Field{Name: "quantity", Present: req.Quantity != nil},
		validate.Field{Name: "unitPrice", Present: req.UnitPrice != nil},
	)
}
