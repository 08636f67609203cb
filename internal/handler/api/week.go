package api

import (
	"net/http"

	resdto "lunchmate/internal/handler/dto/response"
	"lunchmate/internal/handler/middleware"
	"lunchmate/internal/pkg/schedule"
	"lunchmate/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WeekHandler struct {
	weekQueries queries.WeekQueries
}

func NewWeekHandler(weekQueries queries.WeekQueries) *WeekHandler {
	return &WeekHandler{
		weekQueries: weekQueries,
	}
}

// GetWeek returns the customer-facing week with one cook: seven days of menu,
// the customer's own orders, and a cancel hint per day.
func (h *WeekHandler) GetWeek(c *gin.Context) {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	cookID, err := uuid.Parse(c.Param("cookId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid cook ID format",
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

	week, err := h.weekQueries.ProjectWeek(c.Request.Context(), customerID, cookID, weekStart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.DayProjectionResponse, len(week))
	for i, day := range week {
		response[i] = resdto.FromDayProjection(day)
	}
	c.JSON(http.StatusOK, response)
}
