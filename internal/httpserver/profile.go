package httpserver

import (
	"net/http"

	"easyshop/internal/domain"
	"github.com/gin-gonic/gin"
)

func (h *handlers) getProfile(c *gin.Context) {
	u := currentUser(c)
	p, err := h.deps.ProfileSvc.Get(c.Request.Context(), u.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *handlers) createProfile(c *gin.Context) {
	var in domain.Profile
	if !bindJSON(c, &in) {
		return
	}
	u := currentUser(c)
	p, err := h.deps.ProfileSvc.Create(c.Request.Context(), u.ID, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *handlers) updateProfile(c *gin.Context) {
	var in domain.Profile
	if !bindJSON(c, &in) {
		return
	}
	u := currentUser(c)
	p, err := h.deps.ProfileSvc.Update(c.Request.Context(), u.ID, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
