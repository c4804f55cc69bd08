package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "bloom-express/internal/handler/dto/request"
	"bloom-express/internal/handler/middleware"
	"bloom-express/internal/pkg/errs"
	"bloom-express/internal/usecase/commands"
	"bloom-express/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BlackoutHandler struct {
	blackoutCommands commands.BlackoutCommands
	blackoutQueries  queries.BlackoutQueries
}

func NewBlackoutHandler(blackoutCommands commands.BlackoutCommands, blackoutQueries queries.BlackoutQueries) *BlackoutHandler {
	return &BlackoutHandler{
		blackoutCommands: blackoutCommands,
		blackoutQueries:  blackoutQueries,
	}
}

// @Summary List blocked slots
// @Description List blocked time slots, optionally for a single date
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date (2006-01-02)"
// @Success 200 {array} queries.BlackoutView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/blocked-slots [get]
func (h *BlackoutHandler) List(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		views, err := h.blackoutQueries.ListAll(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			return
		}
		h.reply(c, views)
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format",
		})
		return
	}

	views, err := h.blackoutQueries.ListForDate(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	h.reply(c, views)
}

func (h *BlackoutHandler) reply(c *gin.Context, views []queries.BlackoutView) {
	if views == nil {
		views = []queries.BlackoutView{}
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Create blocked slot
// @Description Block a window of delivery time on a date
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBlockedSlotRequest true "Blocked slot request"
// @Success 201 {object} queries.BlackoutView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/blocked-slots [post]
func (h *BlackoutHandler) Create(c *gin.Context) {
	var req reqdto.CreateBlockedSlotRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format",
		})
		return
	}

	createdBy := "admin"
	if email, ok := middleware.GetAdminEmail(c); ok {
		createdBy = email
	}

	view, err := h.blackoutCommands.Create(c.Request.Context(), commands.CreateBlackoutParams{
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
		CreatedBy: createdBy,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidBlackoutWindow):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "End time must be after start time",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid time format",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary Delete blocked slot
// @Description Remove a blocked time slot by ID
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Blocked slot ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/blocked-slots/{id} [delete]
func (h *BlackoutHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid blocked slot ID format",
		})
		return
	}

	if err := h.blackoutCommands.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, errs.ErrBlackoutNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Blocked slot not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
