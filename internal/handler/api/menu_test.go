//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lunchmate/internal/domain/menuday"
	"lunchmate/internal/handler/api"
	"lunchmate/internal/pkg/schedule"
	"lunchmate/internal/usecase/commands"
	commandsmock "lunchmate/tests/mock/commands"
	queriesmock "lunchmate/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MenuHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockMenuCommands
	mockQueries  *queriesmock.MockMenuQueries
	cookID       uuid.UUID
}

func (s *MenuHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockMenuCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockMenuQueries(s.mockCtrl)
	s.cookID = uuid.New()
	handler := api.NewMenuHandler(s.mockCommands, s.mockQueries)

	// Stand-in for the auth middleware.
	withUser := func(c *gin.Context) {
		c.Set("user_id", s.cookID)
	}
	s.router.PUT("/cook/menu-days/:date", withUser, handler.UpsertMenuDay)
	s.router.GET("/cook/menu-days/:date", withUser, handler.GetMenuDay)
	s.router.GET("/cook/menu-days", withUser, handler.GetWeek)
}

func (s *MenuHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMenuHandlerSuite(t *testing.T) {
	suite.Run(t, new(MenuHandlerTestSuite))
}

func (s *MenuHandlerTestSuite) TestUpsertMenuDay() {
	day := schedule.NewDay(2025, time.June, 10)
	mealID := uuid.New()

	body := map[string]any{
		"status":    "published",
		"time_zone": "UTC",
		"dishes": []map[string]any{
			{"index": 1, "meal_id": mealID.String(), "name": "Casado"},
		},
	}

	s.Run("success", func() {
		returned := menuday.NewMenuDay(s.cookID, day, "UTC")
		s.mockCommands.EXPECT().
			UpsertMenuDay(gomock.Any(), s.cookID, day, gomock.Any(), menuday.StatusPublished, "UTC").
			Return(returned, nil)

		w := s.doRequest(http.MethodPut, "/cook/menu-days/2025-06-10", body)

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), `"date":"2025-06-10"`)
	})

	s.Run("invalid date", func() {
		w := s.doRequest(http.MethodPut, "/cook/menu-days/junk", body)
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("invalid status", func() {
		bad := map[string]any{"status": "archived"}
		w := s.doRequest(http.MethodPut, "/cook/menu-days/2025-06-10", bad)
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("usecase failure", func() {
		s.mockCommands.EXPECT().
			UpsertMenuDay(gomock.Any(), s.cookID, day, gomock.Any(), menuday.StatusPublished, "UTC").
			Return(nil, commands.ErrDatabaseOperationFailed)

		w := s.doRequest(http.MethodPut, "/cook/menu-days/2025-06-10", body)
		s.Equal(http.StatusInternalServerError, w.Code)
	})
}

func (s *MenuHandlerTestSuite) TestGetMenuDay() {
	day := schedule.NewDay(2025, time.June, 10)

	s.Run("lazily creates the draft", func() {
		returned := menuday.NewMenuDay(s.cookID, day, "UTC")
		s.mockCommands.EXPECT().
			GetOrCreateMenuDay(gomock.Any(), s.cookID, day, "").
			Return(returned, nil)

		w := s.doRequest(http.MethodGet, "/cook/menu-days/2025-06-10", nil)

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), `"status":"draft"`)
	})

	s.Run("invalid date", func() {
		w := s.doRequest(http.MethodGet, "/cook/menu-days/2025-13-40", nil)
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *MenuHandlerTestSuite) TestGetWeek() {
	weekStart := schedule.NewDay(2025, time.June, 9)

	s.Run("success", func() {
		s.mockQueries.EXPECT().
			GetWeek(gomock.Any(), s.cookID, weekStart).
			Return(nil, nil)

		w := s.doRequest(http.MethodGet, "/cook/menu-days?week_start=2025-06-09", nil)
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("missing week_start", func() {
		w := s.doRequest(http.MethodGet, "/cook/menu-days", nil)
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *MenuHandlerTestSuite) doRequest(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}
