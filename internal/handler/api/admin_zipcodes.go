package api

import (
	"errors"
	"net/http"

	reqdto "bloom-express/internal/handler/dto/request"
	"bloom-express/internal/pkg/errs"
	"bloom-express/internal/usecase/commands"
	"bloom-express/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ZipcodeHandler struct {
	zipcodeCommands commands.ZipcodeCommands
	zipcodeQueries  queries.ZipcodeQueries
}

func NewZipcodeHandler(zipcodeCommands commands.ZipcodeCommands, zipcodeQueries queries.ZipcodeQueries) *ZipcodeHandler {
	return &ZipcodeHandler{
		zipcodeCommands: zipcodeCommands,
		zipcodeQueries:  zipcodeQueries,
	}
}

// @Summary List delivery zipcodes
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.ZipcodeView
// @Failure 401 {object} map[string]string
// @Router /admin/zipcodes [get]
func (h *ZipcodeHandler) List(c *gin.Context) {
	views, err := h.zipcodeQueries.ListZipcodes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	if views == nil {
		views = []queries.ZipcodeView{}
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Add delivery zipcode
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateZipcodeRequest true "Zipcode request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/zipcodes [post]
func (h *ZipcodeHandler) Create(c *gin.Context) {
	var req reqdto.CreateZipcodeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.zipcodeCommands.Create(c.Request.Context(), req.Zipcode, req.City)
	if err != nil {
		if errors.Is(err, errs.ErrDomainValidation) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid or duplicate zipcode",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Remove delivery zipcode
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Zipcode ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/zipcodes/{id} [delete]
func (h *ZipcodeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid zipcode ID format",
		})
		return
	}

	if err := h.zipcodeCommands.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, errs.ErrZipcodeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Zipcode not found",
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
