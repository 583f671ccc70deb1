package httpserver

import (
	"context"
	"errors"
	"log"
	"time"

	"easyshop/internal/domain"
	productrepo "easyshop/internal/repository/product"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id int) (*domain.Category, error)
	Create(ctx context.Context, c domain.Category) (*domain.Category, error)
	Update(ctx context.Context, id int, c domain.Category) error
	Delete(ctx context.Context, id int) error
}

type ProductService interface {
	ListByCategory(ctx context.Context, categoryID int) ([]domain.Product, error)
	Search(ctx context.Context, f productrepo.SearchFilter) ([]domain.Product, error)
	Get(ctx context.Context, id int) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id int, p domain.Product) error
	Delete(ctx context.Context, id int) error
}

type CartService interface {
	Get(ctx context.Context, userID int) (*domain.Cart, error)
	AddItem(ctx context.Context, userID, productID int) (*domain.Cart, error)
	SetQuantity(ctx context.Context, userID, productID, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, userID, productID int) (*domain.Cart, error)
	Clear(ctx context.Context, userID int) (*domain.Cart, error)
}

type ProfileService interface {
	Get(ctx context.Context, userID int) (*domain.Profile, error)
	Create(ctx context.Context, userID int, p domain.Profile) (*domain.Profile, error)
	Update(ctx context.Context, userID int, p domain.Profile) (*domain.Profile, error)
}

type IdentityResolver interface {
	Resolve(ctx context.Context, username string) (*domain.User, error)
}

// Deps groups the services the router dispatches to.
type Deps struct {
	CategorySvc CategoryService
	ProductSvc  ProductService
	CartSvc     CartService
	ProfileSvc  ProfileService
	Identity    IdentityResolver
}

func (d Deps) validate() error {
	switch {
	case d.CategorySvc == nil:
		return errors.New("category service required")
	case d.ProductSvc == nil:
		return errors.New("product service required")
	case d.CartSvc == nil:
		return errors.New("cart service required")
	case d.ProfileSvc == nil:
		return errors.New("profile service required")
	case d.Identity == nil:
		return errors.New("identity resolver required")
	}
	return nil
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, opts Options) (*gin.Engine, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if opts.IdentityHeader == "" {
		opts.IdentityHeader = "X-Username"
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestID(), gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(corsConfig(opts)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	h := &handlers{deps: deps}
	identify := identityMiddleware(deps.Identity, opts.IdentityHeader)
	admin := []gin.HandlerFunc{identify, requireAdmin()}

	categories := router.Group("/categories")
	categories.GET("", h.listCategories)
	categories.GET("/:id", h.getCategory)
	categories.GET("/:id/products", h.listCategoryProducts)
	categories.POST("", append(admin, h.createCategory)...)
	categories.PUT("/:id", append(admin, h.updateCategory)...)
	categories.DELETE("/:id", append(admin, h.deleteCategory)...)

	products := router.Group("/products")
	products.GET("", h.searchProducts)
	products.GET("/:id", h.getProduct)
	products.POST("", append(admin, h.createProduct)...)
	products.PUT("/:id", append(admin, h.updateProduct)...)
	products.DELETE("/:id", append(admin, h.deleteProduct)...)

	cart := router.Group("/cart", identify)
	cart.GET("", h.getCart)
	cart.DELETE("", h.clearCart)
	cart.POST("/products/:id", h.addCartItem)
	cart.PUT("/products/:id", h.updateCartItem)
	cart.DELETE("/products/:id", h.removeCartItem)

	profile := router.Group("/profile", identify)
	profile.GET("", h.getProfile)
	profile.POST("", h.createProfile)
	profile.PUT("", h.updateProfile)

	return router, nil
}

func corsConfig(opts Options) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", opts.IdentityHeader, requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(opts.CORSAllowOrigins) == 0 || (len(opts.CORSAllowOrigins) == 1 && opts.CORSAllowOrigins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = opts.CORSAllowOrigins
	}
	return cfg
}
