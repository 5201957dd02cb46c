package handlers

import (
	"net/http"

	"htcpcp/internal/models"

	"github.com/gin-gonic/gin"
)

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"protocol": protocolVersion,
	})
}

// @Summary      List all registered pots
// @Tags         pots
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       / [get]
func (h *Handler) registry(c *gin.Context) {
	snaps, err := h.services.Monitoring.Registry(c.Request.Context())
	if err != nil {
		h.errorJSON(c, err, "")
		return
	}
	pots := make(map[string]models.PotSnapshot, len(snaps))
	for _, p := range snaps {
		pots[p.URI()] = p
	}
	c.JSON(http.StatusOK, gin.H{
		"protocol":            protocolVersion,
		"rfc":                 []string{"RFC 2324", "RFC 7168"},
		"pots":                pots,
		"methods":             []string{methodBrew, http.MethodGet, methodPropfind, methodWhen},
		"supported_additions": h.services.Additions.Keys(),
	})
}

// @Summary      Get pot status
// @Tags         pots
// @Produce      json
// @Param        pot_id  path  string  true  "Pot id"  example(pot-1)
// @Success      200  {object}  models.PotSnapshot
// @Failure      404  {object}  map[string]string
// @Router       /coffee/{pot_id}/status [get]
func (h *Handler) getStatus(c *gin.Context) {
	potID := c.Param("pot_id")
	snap, err := h.services.Monitoring.Status(c.Request.Context(), potID)
	if err != nil {
		h.errorJSON(c, err, potID)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// @Summary      Get brew history
// @Description  Chronological audit of every brew attempt, refusals included.
// @Tags         pots
// @Produce      json
// @Param        pot_id  path  string  true  "Pot id"  example(pot-1)
// @Success      200  {object}  map[string]interface{}  "pot_id, total_brews, brews"
// @Failure      404  {object}  map[string]string
// @Router       /coffee/{pot_id}/history [get]
func (h *Handler) getHistory(c *gin.Context) {
	potID := c.Param("pot_id")
	records, err := h.services.History.ForPot(c.Request.Context(), potID)
	if err != nil {
		h.errorJSON(c, err, potID)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"pot_id":      potID,
		"total_brews": len(records),
		"brews":       records,
	})
}

// listAdditions answers PROPFIND: the addition vocabulary for a pot
// (RFC 2324 §2.1.1). Idempotent and independent of pot state.
func (h *Handler) listAdditions(c *gin.Context) {
	potID := c.Param("pot_id")
	vocab, err := h.services.Additions.Vocabulary(potID)
	if err != nil {
		h.errorJSON(c, err, potID)
		return
	}
	body := gin.H{
		"decaf": models.DecafResponse,
		"rfc":   "RFC 2324 §2.1.1",
	}
	for key, values := range vocab {
		body[key] = values
	}
	c.JSON(http.StatusOK, body)
}

// stopMilk answers WHEN (RFC 2324 §2.1.3) — the client decides when enough
// is enough.
func (h *Handler) stopMilk(c *gin.Context) {
	potID := c.Param("pot_id")
	stopped, state, err := h.services.Brewer.StopMilk(c.Request.Context(), potID)
	if err != nil {
		h.errorJSON(c, err, potID)
		return
	}
	if !stopped {
		c.JSON(http.StatusOK, gin.H{
			"message":       "WHEN acknowledged.",
			"note":          "No milk was being poured, but your enthusiasm is appreciated.",
			"current_state": state,
			"rfc":           "RFC 2324 §2.1.3",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":       "Milk pouring stopped.",
		"detail":        "The server has acknowledged WHEN and stopped the milk stream.",
		"current_state": state,
		"protocol":      protocolVersion,
		"rfc":           "RFC 2324 §2.1.3",
	})
}
