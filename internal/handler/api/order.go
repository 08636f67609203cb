package api

import (
	"errors"
	"net/http"

	"lunchmate/internal/domain/order"
	reqdto "lunchmate/internal/handler/dto/request"
	resdto "lunchmate/internal/handler/dto/response"
	"lunchmate/internal/handler/middleware"
	"lunchmate/internal/pkg/schedule"
	"lunchmate/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderCommands commands.OrderCommands
}

func NewOrderHandler(orderCommands commands.OrderCommands) *OrderHandler {
	return &OrderHandler{
		orderCommands: orderCommands,
	}
}

// PlaceOrder creates or replaces the customer's order for (cook, day). Placing
// again before the cutoff swaps the meal; the same call revives a cancelled
// order.
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	day, err := schedule.ParseDay(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	placed, err := h.orderCommands.PlaceOrder(c.Request.Context(), customerID, req.CookID, req.MealID, day, req.TimeZone)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrMenuDayNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No menu for that day",
			})
		case errors.Is(err, commands.ErrMealNotOnMenu):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Meal is not on the day's menu",
			})
		case errors.Is(err, commands.ErrMealNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Meal not found",
			})
		case errors.Is(err, commands.ErrCutoffExpired):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Order cutoff has passed",
			})
		case errors.Is(err, commands.ErrOrderDelivered):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Order has already been delivered",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOrder(placed))
}

// CancelOrder flips the customer's order to Cancelled before the cutoff.
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	day, err := schedule.ParseDay(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	if err := h.orderCommands.CancelOrder(c.Request.Context(), customerID, req.CookID, day); err != nil {
		switch {
		case errors.Is(err, commands.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errors.Is(err, commands.ErrCutoffExpired):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Order cutoff has passed",
			})
		case errors.Is(err, commands.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Order cannot be cancelled in its current status",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// AdvanceOrder is the cook-side progression through Ready and Delivered; it
// works after the cutoff.
func (h *OrderHandler) AdvanceOrder(c *gin.Context) {
	cookID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.AdvanceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	day, err := schedule.ParseDay(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	to, err := order.NewStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order status",
		})
		return
	}

	advanced, err := h.orderCommands.AdvanceOrder(c.Request.Context(), cookID, req.CustomerID, day, to)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errors.Is(err, commands.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Invalid order status transition",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrder(advanced))
}
