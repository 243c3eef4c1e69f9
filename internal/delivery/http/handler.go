package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/tebramedicals/medtech-site/internal/domain"
	"github.com/tebramedicals/medtech-site/internal/usecase"
	"go.uber.org/zap"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalog *usecase.CatalogService
	contact *usecase.ContactService
	logger  *zap.Logger
	now     func() time.Time
}

// NewHandler creates a new HTTP handler
func NewHandler(catalog *usecase.CatalogService, contact *usecase.ContactService, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		catalog: catalog,
		contact: contact,
		logger:  logger,
		now:     time.Now,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "medtech-site",
		"version": Version,
	})
}

// ListProductsResponse is the body of GET /api/v1/products.
type ListProductsResponse struct {
	Products []domain.ProductRecord `json:"products"`
	Count    int                    `json:"count"`
	Query    string                 `json:"query"`
	Category string                 `json:"category"`
}

// ListProducts filters the catalog by the q and category query parameters.
func (h *Handler) ListProducts(c *gin.Context) {
	state := filterStateFromQuery(c)
	products := h.catalog.Filter(c.Request.Context(), state)

	c.JSON(http.StatusOK, ListProductsResponse{
		Products: products,
		Count:    len(products),
		Query:    state.SearchQuery,
		Category: state.SelectedCategory,
	})
}

// GetProduct returns a single catalog record.
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return
	}

	product, err := h.catalog.Product(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// ListCategories reports selector labels against the categories in the data.
func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Categories())
}

// SubmitContact accepts a JSON contact form.
func (h *Handler) SubmitContact(c *gin.Context) {
	var form domain.ContactForm
	if err := c.ShouldBindJSON(&form); err != nil {
		if fields, ok := missingFields(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields", "fields": fields})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inquiry, err := h.contact.Submit(c.Request.Context(), form)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields", "fields": verr.Fields})
			return
		}
		h.logger.Error("contact submission failed", zap.Error(err), zap.String("request_id", RequestID(c)))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit inquiry"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"id":     inquiry.ID.String(),
		"status": "received",
	})
}

// filterStateFromQuery reads q and category without trimming either.
func filterStateFromQuery(c *gin.Context) domain.FilterState {
	state := domain.NewFilterState()
	state.SetQuery(c.Query("q"))
	state.SetCategory(c.Query("category"))
	return state
}

// missingFields extracts the names of fields that failed the "required" rule.
func missingFields(err error) ([]string, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return fields, true
}
