package api

import (
	"errors"
	"net/http"

	"bloom-express/internal/domain/order"
	reqdto "bloom-express/internal/handler/dto/request"
	resdto "bloom-express/internal/handler/dto/response"
	"bloom-express/internal/pkg/errs"
	"bloom-express/internal/usecase/commands"
	"bloom-express/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	checkout    commands.CheckoutCommands
	reservation commands.ReservationCommands
	orders      queries.OrderQueries
}

func NewOrderHandler(
	checkout commands.CheckoutCommands,
	reservation commands.ReservationCommands,
	orders queries.OrderQueries,
) *OrderHandler {
	return &OrderHandler{
		checkout:    checkout,
		reservation: reservation,
		orders:      orders,
	}
}

// @Summary Create order
// @Description Create a pending order and a payment intent for it
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOrderRequest true "Order request"
// @Success 201 {object} resdto.CreateOrderResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req reqdto.CreateOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := commands.CreateOrderParams{
		PackageType:          order.PackageType(req.PackageType),
		HasChocolates:        req.HasChocolates,
		CardOccasion:         req.CardOccasion,
		CardMessage:          req.CardMessage,
		CardSignature:        req.CardSignature,
		RecipientName:        req.RecipientName,
		DeliveryAddress:      req.DeliveryAddress,
		DeliveryCity:         req.DeliveryCity,
		DeliveryState:        req.DeliveryState,
		DeliveryZipcode:      req.DeliveryZipcode,
		GateCode:             req.GateCode,
		DeliveryInstructions: req.DeliveryInstructions,
		DeliveryTimeSlot:     req.DeliveryTimeSlot,
		SenderName:           req.SenderName,
		SenderPhone:          req.SenderPhone,
		SenderEmail:          req.SenderEmail,
	}

	result, err := h.checkout.CreateOrder(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUnknownPackage):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown package type",
			})
		case errors.Is(err, errs.ErrInvalidTimeSlot):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid delivery time slot",
			})
		case errors.Is(err, errs.ErrZipcodeNotServed):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Delivery is not available for this zipcode",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Missing required order fields",
			})
		case errors.Is(err, errs.ErrUpstreamPayment):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Payment provider unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateOrderResponse{
		OrderNumber:  result.OrderNumber,
		ClientSecret: result.ClientSecret,
	})
}

// @Summary Get order by number
// @Description Look up an order by its business-visible order number
// @Tags orders
// @Produce json
// @Param number query string true "Order number"
// @Success 200 {object} queries.OrderView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/by-number [get]
func (h *OrderHandler) GetByNumber(c *gin.Context) {
	number := c.Query("number")
	if number == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "number query parameter required",
		})
		return
	}

	view, err := h.orders.GetByNumber(c.Request.Context(), number)
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

// @Summary Get order by payment intent
// @Description Poll-and-verify fallback for the payment confirmation page.
// @Description Reconciles the payment with the provider first, so a missed
// @Description webhook still converges before the order is returned.
// @Tags orders
// @Produce json
// @Param payment_intent query string true "Payment intent ID"
// @Success 200 {object} queries.OrderView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/by-payment-intent [get]
func (h *OrderHandler) GetByPaymentIntent(c *gin.Context) {
	intentID := c.Query("payment_intent")
	if intentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "payment_intent query parameter required",
		})
		return
	}

	if err := h.reservation.ReconcilePayment(c.Request.Context(), intentID); err != nil {
		if errors.Is(err, errs.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
			return
		}
		// Provider hiccups must not hide the order; return current state.
	}

	view, err := h.orders.GetByPaymentIntent(c.Request.Context(), intentID)
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
