package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jroosing/domaininfo/internal/api/models"
	"github.com/jroosing/domaininfo/internal/lookup"
)

// Lookup resolves WHOIS registration data and DNS records for a domain.
// Per-field failures are reported inside the result body; only invalid
// input is an HTTP-level error.
func (h *Handler) Lookup(c *gin.Context) {
	domain := c.Param("domain")

	result, err := h.service.Lookup(c.Request.Context(), domain)
	if err != nil {
		if errors.Is(err, lookup.ErrInvalidDomain) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "please enter a valid domain (e.g. example.com)",
			})
			return
		}
		h.logger.Error("lookup failed", "domain", domain, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, result)
}
