package api

import (
	"errors"
	"net/http"

	resdto "bloom-express/internal/handler/dto/response"
	"bloom-express/internal/pkg/errs"
	"bloom-express/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SlotHandler struct {
	slots    queries.SlotQueries
	zipcodes queries.ZipcodeQueries
}

func NewSlotHandler(slots queries.SlotQueries, zipcodes queries.ZipcodeQueries) *SlotHandler {
	return &SlotHandler{
		slots:    slots,
		zipcodes: zipcodes,
	}
}

// @Summary Get available delivery slots
// @Description List today's and tomorrow's delivery slots with blackout state
// @Tags slots
// @Produce json
// @Success 200 {object} queries.AvailableSlotsView
// @Router /slots [get]
func (h *SlotHandler) GetAvailableSlots(c *gin.Context) {
	view, err := h.slots.GetAvailableSlots(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List delivery cities
// @Description Distinct cities covered by active delivery zipcodes
// @Tags slots
// @Produce json
// @Success 200 {array} string
// @Router /delivery-cities [get]
func (h *SlotHandler) GetDeliveryCities(c *gin.Context) {
	cities, err := h.zipcodes.ListCities(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	if cities == nil {
		cities = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"cities": cities})
}

// @Summary Validate delivery zipcode
// @Description Check whether a zipcode is inside the delivery area
// @Tags slots
// @Produce json
// @Param zipcode query string true "5-digit zipcode"
// @Success 200 {object} resdto.ValidateZipcodeResponse
// @Failure 400 {object} map[string]string
// @Router /validate-zipcode [get]
func (h *SlotHandler) ValidateZipcode(c *gin.Context) {
	zipcode := c.Query("zipcode")
	if zipcode == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "zipcode query parameter required",
		})
		return
	}

	view, err := h.zipcodes.Validate(c.Request.Context(), zipcode)
	if err != nil {
		if errors.Is(err, errs.ErrZipcodeNotServed) {
			c.JSON(http.StatusOK, resdto.ValidateZipcodeResponse{Valid: false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.ValidateZipcodeResponse{
		Valid: true,
		City:  view.City,
	})
}
