package httpserver

import (
	"net/http"

	"easyshop/internal/domain"
	"github.com/gin-gonic/gin"
)

type quantityRequest struct {
	Quantity *int `json:"quantity"`
}

func (h *handlers) getCart(c *gin.Context) {
	u := currentUser(c)
	h.respondCart(c)(h.deps.CartSvc.Get(c.Request.Context(), u.ID))
}

func (h *handlers) addCartItem(c *gin.Context) {
	productID, ok := pathID(c)
	if !ok {
		return
	}
	u := currentUser(c)
	h.respondCart(c)(h.deps.CartSvc.AddItem(c.Request.Context(), u.ID, productID))
}

func (h *handlers) updateCartItem(c *gin.Context) {
	productID, ok := pathID(c)
	if !ok {
		return
	}
	var in quantityRequest
	if !bindJSON(c, &in) {
		return
	}
	if in.Quantity == nil {
		writeError(c, domain.Invalid("quantity required"))
		return
	}
	u := currentUser(c)
	h.respondCart(c)(h.deps.CartSvc.SetQuantity(c.Request.Context(), u.ID, productID, *in.Quantity))
}

func (h *handlers) removeCartItem(c *gin.Context) {
	productID, ok := pathID(c)
	if !ok {
		return
	}
	u := currentUser(c)
	h.respondCart(c)(h.deps.CartSvc.RemoveItem(c.Request.Context(), u.ID, productID))
}

func (h *handlers) clearCart(c *gin.Context) {
	u := currentUser(c)
	h.respondCart(c)(h.deps.CartSvc.Clear(c.Request.Context(), u.ID))
}

func (h *handlers) respondCart(c *gin.Context) func(*domain.Cart, error) {
	return func(cart *domain.Cart, err error) {
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}
