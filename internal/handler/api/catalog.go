package api

import (
	"errors"
	"net/http"

	resdto "clubvenue/internal/handler/dto/response"
	"clubvenue/internal/handler/httperr"
	"clubvenue/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	queries usecase.CatalogQueries
}

func NewCatalogHandler(queries usecase.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{queries: queries}
}

func (h *CatalogHandler) ListClubs(c *gin.Context) {
	clubs, err := h.queries.ListClubs(c.Request.Context())
	if err != nil {
		h.abortCatalogErr(c, err)
		return
	}

	resp, err := resdto.FromClubs(clubs)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) ListVenues(c *gin.Context) {
	venues, err := h.queries.ListVenues(c.Request.Context())
	if err != nil {
		h.abortCatalogErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVenues(venues))
}

func (h *CatalogHandler) abortCatalogErr(c *gin.Context, err error) {
	if errors.Is(err, usecase.ErrCatalogUnavailable) {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Catalog is unavailable, please try again later")
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
}
