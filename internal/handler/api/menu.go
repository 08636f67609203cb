package api

import (
	"errors"
	"net/http"

	reqdto "lunchmate/internal/handler/dto/request"
	resdto "lunchmate/internal/handler/dto/response"
	"lunchmate/internal/handler/middleware"
	"lunchmate/internal/pkg/schedule"
	"lunchmate/internal/usecase/commands"
	"lunchmate/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	menuCommands commands.MenuCommands
	menuQueries  queries.MenuQueries
}

func NewMenuHandler(menuCommands commands.MenuCommands, menuQueries queries.MenuQueries) *MenuHandler {
	return &MenuHandler{
		menuCommands: menuCommands,
		menuQueries:  menuQueries,
	}
}

// UpsertMenuDay saves the authenticated cook's menu for one day, creating the
// record on first save.
func (h *MenuHandler) UpsertMenuDay(c *gin.Context) {
	cookID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	day, err := schedule.ParseDay(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	var req reqdto.UpsertMenuDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	dishes, status, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
		return
	}

	menuDay, err := h.menuCommands.UpsertMenuDay(c.Request.Context(), cookID, day, dishes, status, req.TimeZone)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCookIDRequired), errors.Is(err, commands.ErrMenuStatusInvalid):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromMenuDay(menuDay))
}

// GetMenuDay returns the cook's record for one day, lazily creating an empty
// Draft on first access so the editing UI always has a record to work on.
func (h *MenuHandler) GetMenuDay(c *gin.Context) {
	cookID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	day, err := schedule.ParseDay(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	menuDay, err := h.menuCommands.GetOrCreateMenuDay(c.Request.Context(), cookID, day, c.Query("time_zone"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromMenuDay(menuDay))
}

// GetWeek returns the cook's existing menu days in the seven days starting at
// week_start. Untouched days are absent from the response.
func (h *MenuHandler) GetWeek(c *gin.Context) {
	cookID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	weekStart, err := schedule.ParseDay(c.Query("week_start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid week_start format, expected YYYY-MM-DD",
		})
		return
	}

	days, err := h.menuQueries.GetWeek(c.Request.Context(), cookID, weekStart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.MenuDayResponse, len(days))
	for i, d := range days {
		response[i] = resdto.FromMenuDayView(d)
	}
	c.JSON(http.StatusOK, response)
}
