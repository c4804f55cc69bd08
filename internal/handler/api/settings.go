package api

import (
	"errors"
	"net/http"

	reqdto "bloom-express/internal/handler/dto/request"
	"bloom-express/internal/pkg/errs"
	"bloom-express/internal/usecase/commands"
	"bloom-express/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsCommands commands.SettingsCommands
	settingsQueries  queries.SettingsQueries
}

func NewSettingsHandler(settingsCommands commands.SettingsCommands, settingsQueries queries.SettingsQueries) *SettingsHandler {
	return &SettingsHandler{
		settingsCommands: settingsCommands,
		settingsQueries:  settingsQueries,
	}
}

// @Summary Store settings
// @Description Storefront operational settings: closed banner and contact phone
// @Tags public
// @Produce json
// @Success 200 {object} queries.StoreSettingsView
// @Router /store-settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	view, err := h.settingsQueries.GetStoreSettings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Get store settings
// @Description Current storefront settings for the admin console
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.StoreSettingsView
// @Failure 401 {object} map[string]string
// @Router /admin/settings [get]
func (h *SettingsHandler) GetAdmin(c *gin.Context) {
	h.Get(c)
}

// @Summary Update store settings
// @Description Partially update storefront settings; omitted fields are kept
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateStoreSettingsRequest true "Settings update"
// @Success 200 {object} queries.StoreSettingsView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/settings [patch]
func (h *SettingsHandler) Update(c *gin.Context) {
	var req reqdto.UpdateStoreSettingsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.settingsCommands.Update(c.Request.Context(), commands.UpdateSettingsParams{
		PhoneNumber:   req.PhoneNumber,
		IsClosed:      req.IsClosed,
		ClosedMessage: req.ClosedMessage,
		ClosedUntil:   req.ClosedUntil,
	})
	if err != nil {
		if errors.Is(err, errs.ErrDomainValidation) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid closed_until date",
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
