package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shop-backend/config"
	"shop-backend/internal/models"
	"shop-backend/internal/service"
	"shop-backend/internal/store"
	"shop-backend/internal/util"
)

// Handler contains HTTP handlers
type Handler struct {
	catalog  *service.CatalogService
	cart     *service.CartService
	checkout *service.CheckoutService
	store    *store.Store
	cfg      *config.Config
}

// NewHandler creates a new HTTP handler. store may be nil when the
// process runs without a configured database.
func NewHandler(
	catalog *service.CatalogService,
	cart *service.CartService,
	checkout *service.CheckoutService,
	st *store.Store,
	cfg *config.Config,
) *Handler {
	return &Handler{
		catalog:  catalog,
		cart:     cart,
		checkout: checkout,
		store:    st,
		cfg:      cfg,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(prometheusMiddleware())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "X-Request-ID"},
		MaxAge:          12 * time.Hour,
	}))

	router.GET("/", h.root)
	router.GET("/test", h.testStore)
	router.GET("/health", h.healthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	g := router.Group("/api")
	{
		g.GET("/categories", h.listCategories)
		g.GET("/products", h.listProducts)
		g.GET("/products/:id", h.getProduct)
		g.POST("/cart/add", h.addToCart)
		g.GET("/cart", h.getCart)
		g.POST("/cart/remove", h.removeFromCart)
		g.POST("/checkout", h.checkoutCart)
	}
}

// root confirms the backend is up
func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Shopping System Backend is running",
	})
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// testStore reports store connectivity for debugging deployments. Always
// responds 200; the body describes what is wrong.
func (h *Handler) testStore(c *gin.Context) {
	resp := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_url":      setStatus(h.cfg.Database.URL != ""),
		"database_name":     setStatus(h.cfg.Database.Name != ""),
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if h.store != nil {
		resp["database"] = "available"
		if err := h.store.Ping(c.Request.Context()); err != nil {
			resp["database"] = "error: " + err.Error()
		} else {
			resp["connection_status"] = "connected"
			if collections, err := h.store.ListCollections(c.Request.Context()); err == nil {
				if len(collections) > 10 {
					collections = collections[:10]
				}
				resp["collections"] = collections
				resp["database"] = "connected and working"
			} else {
				resp["database"] = "connected but error: " + err.Error()
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}

// listCategories handles GET /api/categories
func (h *Handler) listCategories(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// listProducts handles GET /api/products with optional category and q
// query filters
func (h *Handler) listProducts(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context(), c.Query("category"), c.Query("q"))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// getProduct handles GET /api/products/:id
func (h *Handler) getProduct(c *gin.Context) {
	product, err := h.catalog.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

type addToCartRequest struct {
	CartID    string `json:"cart_id" binding:"required"`
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// addToCart handles POST /api/cart/add
func (h *Handler) addToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	status, err := h.cart.AddToCart(c.Request.Context(), models.CartItem{
		CartID:    req.CartID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": status})
}

// getCart handles GET /api/cart?cart_id=
func (h *Handler) getCart(c *gin.Context) {
	cartID := c.Query("cart_id")
	if cartID == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "cart_id is required"})
		return
	}

	entries, err := h.cart.GetCart(c.Request.Context(), cartID)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

type removeFromCartRequest struct {
	ID string `json:"id" binding:"required"`
}

// removeFromCart handles POST /api/cart/remove
func (h *Handler) removeFromCart(c *gin.Context) {
	var req removeFromCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := h.cart.RemoveFromCart(c.Request.Context(), req.ID); err != nil {
		if errors.Is(err, store.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
			return
		}
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": service.StatusRemoved})
}

type checkoutRequest struct {
	CartID string `json:"cart_id" binding:"required"`
}

// checkoutCart handles POST /api/checkout
func (h *Handler) checkoutCart(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	quote, err := h.checkout.Checkout(c.Request.Context(), req.CartID)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// serviceError translates store sentinels the calling handler did not
// already map into status codes
func (h *Handler) serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Document store unavailable"})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, store.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal error",
			"details": err.Error(),
		})
	}
}

func setStatus(set bool) string {
	if set {
		return "set"
	}
	return "not set"
}

// requestIDMiddleware tags every request with an id for log correlation
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Set("request_id", id)
		c.Next()
	}
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
