package api

import (
	"errors"
	"net/http"

	reqdto "atelier-store/internal/handler/dto/request"
	resdto "atelier-store/internal/handler/dto/response"
	"atelier-store/internal/handler/middleware"
	"atelier-store/internal/usecase/commands"
	"atelier-store/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	reservationCommands commands.ReservationCommands
	cartQueries         queries.CartQueries
}

func NewCartHandler(reservationCommands commands.ReservationCommands, cartQueries queries.CartQueries) *CartHandler {
	return &CartHandler{
		reservationCommands: reservationCommands,
		cartQueries:         cartQueries,
	}
}

// @Summary Add item to cart
// @Description Reserve a product for this browser session; the hold lapses automatically
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddCartItemRequest true "Product to reserve"
// @Success 201 {object} resdto.HoldResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.AddCartItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	hold, err := h.reservationCommands.Reserve(c.Request.Context(), sessionID, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
		case errors.Is(err, commands.ErrProductHeld):
			c.JSON(http.StatusConflict, gin.H{
				"error": "This item was just taken by another shopper",
			})
		case errors.Is(err, commands.ErrProductSold):
			c.JSON(http.StatusGone, gin.H{
				"error": "This item has been sold",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromHold(hold))
}

// @Summary Remove item from cart
// @Description Release this session's hold; removing an absent item is a no-op
// @Tags cart
// @Produce json
// @Param productID path string true "Product ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /cart/items/{productID} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID format",
		})
		return
	}

	if err := h.reservationCommands.Release(c.Request.Context(), sessionID, productID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get cart
// @Description List this session's active holds
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	holds, err := h.cartQueries.ListActive(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromHoldViews(holds))
}
