package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"htcpcp/internal/models"
	"htcpcp/internal/service"

	"github.com/gin-gonic/gin"
)

const acceptAdditionsHeader = "Accept-Additions"

// parseAcceptAdditions parses 'milk-type=Whole-milk; alcohol-type=Whisky'
// (RFC 2324 §2.1.1). A non-empty segment without '=' makes the whole header
// malformed; that is a request-shape problem, not a protocol refusal.
func parseAcceptAdditions(header string) (models.Additions, error) {
	additions := models.Additions{}
	if header == "" {
		return additions, nil
	}
	for _, part := range strings.Split(header, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, val, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("malformed Accept-Additions segment %q", part)
		}
		additions[strings.TrimSpace(key)] = strings.TrimSpace(val)
	}
	return additions, nil
}

// @Summary      Brew coffee
// @Description  BREW (or POST) triggers an infusion. Additions come from the Accept-Additions header.
// @Tags         pots
// @Produce      json
// @Param        pot_id            path    string  true   "Pot id"  example(pot-1)
// @Param        Accept-Additions  header  string  false  "e.g. milk-type=Whole-milk; alcohol-type=Whisky"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      406  {object}  map[string]interface{}
// @Failure      418  {object}  map[string]interface{}
// @Failure      503  {object}  map[string]interface{}
// @Router       /coffee/{pot_id} [post]
func (h *Handler) brewCoffee(c *gin.Context) {
	h.brew(c, models.CommandBrewCoffee)
}

// @Summary      Brew tea
// @Description  RFC 7168 — tea-capable pots answer BREW on tea:// resources.
// @Tags         pots
// @Produce      json
// @Param        pot_id  path  string  true  "Pot id"  example(kettle-1)
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Failure      406  {object}  map[string]interface{}
// @Router       /tea/{pot_id} [post]
func (h *Handler) brewTea(c *gin.Context) {
	h.brew(c, models.CommandBrewTea)
}

func (h *Handler) brew(c *gin.Context, cmd models.BrewCommand) {
	potID := c.Param("pot_id")

	additions, err := parseAcceptAdditions(c.GetHeader(acceptAdditionsHeader))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": err.Error(),
			"rfc":     "RFC 2324 §2.1.1",
		})
		return
	}

	out, err := h.services.Brewer.Brew(c.Request.Context(), potID, cmd, additions)
	if err != nil {
		h.errorJSON(c, err, potID)
		return
	}

	if h.log != nil {
		h.log.Infow("brew",
			"pot_id", potID,
			"command", cmd,
			"status_code", out.StatusCode,
			"resulting_state", out.ResultingState,
		)
	}
	c.JSON(out.StatusCode, brewBody(out, potID, additions))
}

// brewBody renders the outcome into the wire shapes the protocol's clients
// have come to love.
func brewBody(out models.Outcome, potID string, additions models.Additions) gin.H {
	switch out.Kind {
	case models.OutcomeWrongAppliance:
		return gin.H{
			"status":     http.StatusTeapot,
			"error":      "I'm a teapot",
			"body":       "The requested entity body is short and stout.",
			"hint":       "Tip me over and pour me out.",
			"pot_id":     potID,
			"rfc":        "RFC 2324 §2.3.2",
			"suggestion": "Try coffee://pot-1 instead.",
		}
	case models.OutcomeRefused:
		body := gin.H{
			"error":   "Not Acceptable",
			"message": out.Message,
			"rfc":     "RFC 2324 §2.1.1",
		}
		if out.Rejection != nil {
			body["reason"] = out.Rejection.Reason
		}
		return body
	case models.OutcomeDepleted:
		return gin.H{
			"error":   "Service Unavailable",
			"message": out.Message,
			"note":    "This is a 503, not a 418. The pot is a coffee pot — it's just empty.",
		}
	default:
		return gin.H{
			"record_id":        out.RecordID,
			"message":          out.Message,
			"pot":              potID,
			"accept-additions": additions,
			"resulting_state":  out.ResultingState,
			"milk_pouring":     out.MilkPouring,
			"when_required":    out.MilkPouring,
			"protocol":         protocolVersion,
		}
	}
}

// errorJSON renders request-level failures: unknown pot vs genuine server
// error.
func (h *Handler) errorJSON(c *gin.Context, err error, potID string) {
	code := service.StatusForError(err)
	if errors.Is(err, models.ErrPotNotFound) {
		c.JSON(code, gin.H{
			"error":   "Not Found",
			"message": fmt.Sprintf("No pot registered at coffee://%s or tea://%s", potID, potID),
		})
		return
	}
	if h.log != nil {
		h.log.Errorw("request_failed", "err", err, "pot_id", potID)
	}
	c.JSON(code, gin.H{"error": "internal error"})
}
