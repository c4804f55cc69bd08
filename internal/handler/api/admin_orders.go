package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"bloom-express/internal/domain/order"
	reqdto "bloom-express/internal/handler/dto/request"
	"bloom-express/internal/pkg/errs"
	"bloom-express/internal/usecase/commands"
	"bloom-express/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminOrderHandler struct {
	orderCommands commands.AdminOrderCommands
	orderQueries  queries.OrderQueries
	schedule      queries.ScheduleQueries
	stats         queries.StatsQueries
}

func NewAdminOrderHandler(
	orderCommands commands.AdminOrderCommands,
	orderQueries queries.OrderQueries,
	schedule queries.ScheduleQueries,
	stats queries.StatsQueries,
) *AdminOrderHandler {
	return &AdminOrderHandler{
		orderCommands: orderCommands,
		orderQueries:  orderQueries,
		schedule:      schedule,
		stats:         stats,
	}
}

// @Summary List orders
// @Description List recent orders, optionally filtered by status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter (all, pending, or a workflow status)"
// @Param limit query int false "Max rows (default 50)"
// @Success 200 {array} queries.OrderListItem
// @Failure 401 {object} map[string]string
// @Router /admin/orders [get]
func (h *AdminOrderHandler) List(c *gin.Context) {
	var limit int32
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit",
			})
			return
		}
		limit = int32(parsed)
	}

	items, err := h.orderQueries.List(c.Request.Context(), c.Query("status"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	if items == nil {
		items = []queries.OrderListItem{}
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Get order
// @Description Get full order detail by ID
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} queries.OrderView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/orders/{id} [get]
func (h *AdminOrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID format",
		})
		return
	}

	view, err := h.orderQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Update order status
// @Description Advance an order through the fulfillment workflow
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.UpdateOrderStatusRequest true "Status update"
// @Success 200 {object} queries.OrderView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/orders/{id}/status [patch]
func (h *AdminOrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID format",
		})
		return
	}

	var req reqdto.UpdateOrderStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.orderCommands.UpdateStatus(c.Request.Context(), id, order.Status(req.Status))
	if err != nil {
		h.replyCommandError(c, err)
		return
	}

	h.replyOrder(c, id)
}

// @Summary Update payment status
// @Description Manually correct an order's payment status (refunds, disputes)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.UpdatePaymentStatusRequest true "Payment status update"
// @Success 200 {object} queries.OrderView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/orders/{id}/payment-status [patch]
func (h *AdminOrderHandler) UpdatePaymentStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID format",
		})
		return
	}

	var req reqdto.UpdatePaymentStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.orderCommands.UpdatePaymentStatus(c.Request.Context(), id, order.PaymentStatus(req.PaymentStatus))
	if err != nil {
		h.replyCommandError(c, err)
		return
	}

	h.replyOrder(c, id)
}

// @Summary Orders for a delivery date
// @Description Paid orders scheduled for one delivery date, in slot order
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date (2006-01-02)"
// @Success 200 {array} queries.OrderListItem
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/orders-by-date [get]
func (h *AdminOrderHandler) ListByDate(c *gin.Context) {
	date, err := time.ParseInLocation("2006-01-02", c.Query("date"), time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing date",
		})
		return
	}

	items, err := h.orderQueries.ListByDeliveryDate(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	if items == nil {
		items = []queries.OrderListItem{}
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Day schedule
// @Description Hour-bucketed paid orders and blocked slots for one date
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date (2006-01-02)"
// @Success 200 {object} queries.DayScheduleView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/schedule [get]
func (h *AdminOrderHandler) GetSchedule(c *gin.Context) {
	date, err := time.ParseInLocation("2006-01-02", c.Query("date"), time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing date",
		})
		return
	}

	view, err := h.schedule.GetDaySchedule(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Dashboard stats
// @Description Order and revenue counters for the admin dashboard
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.StatsView
// @Failure 401 {object} map[string]string
// @Router /admin/stats [get]
func (h *AdminOrderHandler) GetStats(c *gin.Context) {
	view, err := h.stats.GetStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *AdminOrderHandler) replyOrder(c *gin.Context, id uuid.UUID) {
	view, err := h.orderQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *AdminOrderHandler) replyCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
	case errors.Is(err, errs.ErrInvalidOrderStatus):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid status",
		})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Delivered or cancelled orders cannot be edited",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
