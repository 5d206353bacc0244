// Package services wires the application dependency graph.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/get_category"
	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/get_product"
	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/list_categories"
	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/list_products"
	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/search_products"
	"github.com/light-bringer/inventory-service/internal/app/inventory/repo"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/create_category"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/create_product"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/delete_category"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/delete_product"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/update_category"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/update_product"
	"github.com/light-bringer/inventory-service/internal/auth"
	"github.com/light-bringer/inventory-service/internal/config"
	"github.com/light-bringer/inventory-service/internal/pkg/docstore"
	transport "github.com/light-bringer/inventory-service/internal/transport/http"
)

// ServiceOptions holds the wired application.
type ServiceOptions struct {
	Router *gin.Engine

	firestoreClient *firestore.Client
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg *config.Manager, logger *slog.Logger) (*ServiceOptions, error) {
	current := cfg.Current()

	// 1. Document store
	var (
		store    docstore.Store
		fsClient *firestore.Client
	)
	switch current.StoreBackend {
	case config.BackendMemory:
		store = docstore.NewMemory()
	case config.BackendFirestore:
		client, err := firestore.NewClient(ctx, current.FirestoreProject)
		if err != nil {
			return nil, fmt.Errorf("failed to create Firestore client: %w", err)
		}
		fsClient = client
		store = docstore.NewFirestore(client)
	default:
		return nil, fmt.Errorf("unknown store backend %q", current.StoreBackend)
	}

	// 2. Repositories
	products := repo.NewProductRepo(store, logger)
	categories := repo.NewCategoryRepo(store, logger)

	// 3. Write use cases
	createProduct := create_product.NewInteractor(products, categories)
	updateProduct := update_product.NewInteractor(products, categories)
	deleteProduct := delete_product.NewInteractor(products)
	createCategory := create_category.NewInteractor(categories)
	updateCategory := update_category.NewInteractor(categories)
	deleteCategory := delete_category.NewInteractor(categories)

	// 4. Read queries
	getProduct := get_product.NewQuery(products, categories)
	listProducts := list_products.NewQuery(products, categories)
	searchProducts := search_products.NewQuery(products, categories)
	getCategory := get_category.NewQuery(categories)
	listCategories := list_categories.NewQuery(categories)

	// 5. Transport
	productHandler := transport.NewProductHandler(
		createProduct, updateProduct, deleteProduct,
		getProduct, listProducts, searchProducts,
	)
	categoryHandler := transport.NewCategoryHandler(
		createCategory, updateCategory, deleteCategory,
		getCategory, listCategories,
	)

	router := transport.NewRouter(transport.RouterOptions{
		Logger:          logger,
		Verifier:        auth.NewStaticVerifier(current.AuthTokens),
		AllowedOrigins:  cfg.AllowedOrigins,
		ProductHandler:  productHandler,
		CategoryHandler: categoryHandler,
	})

	return &ServiceOptions{
		Router:          router,
		firestoreClient: fsClient,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.firestoreClient != nil {
		s.firestoreClient.Close()
	}
}
