package httpserver

import (
	"net/http"
	"strconv"
	"strings"

	"easyshop/internal/domain"
	productrepo "easyshop/internal/repository/product"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type handlers struct {
	deps Deps
}

func (h *handlers) listCategories(c *gin.Context) {
	list, err := h.deps.CategorySvc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *handlers) getCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	cat, err := h.deps.CategorySvc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *handlers) listCategoryProducts(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	list, err := h.deps.ProductSvc.ListByCategory(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *handlers) createCategory(c *gin.Context) {
	var in domain.Category
	if !bindJSON(c, &in) {
		return
	}
	created, err := h.deps.CategorySvc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *handlers) updateCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in domain.Category
	if !bindJSON(c, &in) {
		return
	}
	if err := h.deps.CategorySvc.Update(c.Request.Context(), id, in); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) deleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.deps.CategorySvc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) searchProducts(c *gin.Context) {
	filter, err := parseSearchFilter(c)
	if err != nil {
		writeError(c, err)
		return
	}
	list, err := h.deps.ProductSvc.Search(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *handlers) getProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	p, err := h.deps.ProductSvc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *handlers) createProduct(c *gin.Context) {
	var in domain.Product
	if !bindJSON(c, &in) {
		return
	}
	created, err := h.deps.ProductSvc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *handlers) updateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in domain.Product
	if !bindJSON(c, &in) {
		return
	}
	if err := h.deps.ProductSvc.Update(c.Request.Context(), id, in); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) deleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.deps.ProductSvc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseSearchFilter reads the optional cat, minPrice, maxPrice and color
// query parameters. Absent parameters leave the filter field nil.
func parseSearchFilter(c *gin.Context) (productrepo.SearchFilter, error) {
	var f productrepo.SearchFilter
	if v := strings.TrimSpace(c.Query("cat")); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return f, domain.Invalid("cat must be an integer")
		}
		f.CategoryID = &id
	}
	for _, p := range []struct {
		key string
		dst **decimal.Decimal
	}{{"minPrice", &f.MinPrice}, {"maxPrice", &f.MaxPrice}} {
		v := strings.TrimSpace(c.Query(p.key))
		if v == "" {
			continue
		}
		d, err := decimal.NewFromString(v)
		if err != nil {
			return f, domain.Invalid(p.key + " must be a number")
		}
		*p.dst = &d
	}
	if v, ok := c.GetQuery("color"); ok {
		f.Color = &v
	}
	return f, nil
}
