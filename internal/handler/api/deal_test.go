//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"group-deal-engine/internal/domain/deal"
	"group-deal-engine/internal/domain/user"
	"group-deal-engine/internal/handler/api"
	resdto "group-deal-engine/internal/handler/dto/response"
	"group-deal-engine/internal/pkg/errs"
	"group-deal-engine/internal/usecase/commands"
	"group-deal-engine/internal/usecase/queries"
	"group-deal-engine/tests/common/builder"
	"group-deal-engine/tests/common/httptest"
	commandsmock "group-deal-engine/tests/mock/commands"
	queriesmock "group-deal-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type fakeSweeper struct {
	report commands.SweepReport
	err    error
	calls  int
}

func (f *fakeSweeper) Sweep(context.Context) (commands.SweepReport, error) {
	f.calls++
	return f.report, f.err
}

type DealHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockDealCommands
	mockQueries  *queriesmock.MockDealQueries
	sweeper      *fakeSweeper
	userID       uuid.UUID
	now          time.Time
}

func (s *DealHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockDealCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockDealQueries(s.mockCtrl)
	s.sweeper = &fakeSweeper{}
	s.userID = uuid.New()
	s.now = time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)
	handler := api.NewDealHandler(s.mockCommands, s.mockQueries, s.sweeper)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleMember)
		c.Next()
	}

	s.router.GET("/deals", handler.ListOpen)
	s.router.GET("/deals/my", authMiddleware, handler.ListMine)
	s.router.GET("/deals/by-product/:productId", handler.GetByProduct)
	s.router.GET("/deals/:id", handler.Get)
	s.router.POST("/deals/:id/join", authMiddleware, handler.Join)
	s.router.DELETE("/deals/:id/join", authMiddleware, handler.Leave)
	s.router.POST("/admin/deals/sweep", handler.Sweep)
}

func (s *DealHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDealHandlerSuite(t *testing.T) {
	suite.Run(t, new(DealHandlerTestSuite))
}

// ================================================================================
// Reads
// ================================================================================

func (s *DealHandlerTestSuite) TestListOpen() {
	b := builder.NewDealBuilder().WithParticipants(2)

	s.Run("success: returns open deals", func() {
		s.mockQueries.EXPECT().ListOpenDeals(gomock.Any()).
			Return([]*queries.DealView{b.BuildView(s.now)}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/deals", nil, "")

		var response resdto.DealListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Deals, 1)
		s.Equal(b.ID.String(), response.Deals[0].ID)
		s.Equal(2, response.Deals[0].CurrentParticipants)
		s.Equal(40, response.Deals[0].Progress)
		s.Equal(b.Deadline.Unix(), *response.Deals[0].Deadline)
	})

	s.Run("error: 500 when the read store fails", func() {
		s.mockQueries.EXPECT().ListOpenDeals(gomock.Any()).Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/deals", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to list deals")
	})
}

func (s *DealHandlerTestSuite) TestListMine() {
	s.Run("success: joined deals carry joined_at", func() {
		b := builder.NewDealBuilder()
		joinedAt := s.now.Add(-time.Hour)
		s.mockQueries.EXPECT().ListUserDeals(gomock.Any(), s.userID).
			Return([]*queries.UserDealView{{DealView: *b.BuildView(s.now), JoinedAt: joinedAt}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/deals/my", nil, "bearer-token")

		var response resdto.UserDealListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Deals, 1)
		s.Equal(joinedAt.Unix(), response.Deals[0].JoinedAt)
	})

	s.Run("error: 401 when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/deals/my", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *DealHandlerTestSuite) TestGet() {
	b := builder.NewDealBuilder()
	url := "/deals/" + b.ID.String()

	s.Run("success: returns the deal", func() {
		s.mockQueries.EXPECT().GetDeal(gomock.Any(), b.ID).Return(b.BuildView(s.now), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.DealResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(b.Name, response.Name)
		s.Equal(string(deal.StatusOpen), response.Status)
	})

	s.Run("error: 404 for an unknown deal", func() {
		s.mockQueries.EXPECT().GetDeal(gomock.Any(), b.ID).Return(nil, queries.ErrDealNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/deals/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *DealHandlerTestSuite) TestGetByProduct() {
	b := builder.NewDealBuilder()
	url := "/deals/by-product/" + b.ProductID.String()

	s.Run("success: active deal", func() {
		s.mockQueries.EXPECT().GetActiveDealByProduct(gomock.Any(), b.ProductID).Return(b.BuildView(s.now), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.ActiveDealResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().NotNil(response.Deal)
		s.Equal(b.ID.String(), response.Deal.ID)
	})

	s.Run("success: null deal when none is joinable", func() {
		s.mockQueries.EXPECT().GetActiveDealByProduct(gomock.Any(), b.ProductID).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.ActiveDealResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Nil(response.Deal)
	})
}

// ================================================================================
// Join
// ================================================================================

func (s *DealHandlerTestSuite) TestJoin() {
	dealID := uuid.New()
	url := "/deals/" + dealID.String() + "/join"

	s.Run("success: 201 Created for a new member", func() {
		s.mockCommands.EXPECT().Join(gomock.Any(), dealID, s.userID).Return(&commands.JoinResult{
			DealID:              dealID,
			Joined:              true,
			CurrentParticipants: 5,
			MinParticipants:     5,
			Progress:            100,
			Completed:           true,
			CompletionClaimed:   true,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.JoinResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(dealID.String(), response.DealID)
		s.True(response.Joined)
		s.True(response.Completed)
		s.True(response.CompletionClaimed)
		s.Empty(response.Warnings)
	})

	s.Run("success: 200 OK when already a member", func() {
		s.mockCommands.EXPECT().Join(gomock.Any(), dealID, s.userID).Return(&commands.JoinResult{
			DealID:              dealID,
			AlreadyMember:       true,
			CurrentParticipants: 2,
			MinParticipants:     5,
			Progress:            40,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.JoinResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.AlreadyMember)
		s.False(response.Joined)
	})

	s.Run("success: 201 with warnings when the reservation failed", func() {
		cause := errors.New("orders table locked")
		err := errs.Mark(errs.Mark(cause, commands.ErrReservationFailed), errs.ErrSideEffectFailure)
		s.mockCommands.EXPECT().Join(gomock.Any(), dealID, s.userID).Return(&commands.JoinResult{
			DealID:              dealID,
			Joined:              true,
			CurrentParticipants: 1,
			MinParticipants:     5,
			Progress:            20,
			SideEffectErrors:    []commands.SideEffectError{{Effect: commands.EffectReservation, Err: cause}},
		}, err).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.JoinResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Require().Len(response.Warnings, 1)
		s.Equal(commands.EffectReservation, response.Warnings[0].Effect)
		s.Equal("orders table locked", response.Warnings[0].Message)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "deal not found",
				commandsError:  commands.ErrDealNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Not found",
			},
			{
				name:           "user not found",
				commandsError:  commands.ErrUserNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Not found",
			},
			{
				name:           "deal completed",
				commandsError:  errs.Mark(deal.ErrDealCompleted, errs.ErrPreconditionFailed),
				expectedStatus: http.StatusConflict,
				expectedMsg:    deal.ErrDealCompleted.Error(),
			},
			{
				name:           "deadline passed",
				commandsError:  errs.Mark(deal.ErrDeadlineExpired, errs.ErrPreconditionFailed),
				expectedStatus: http.StatusConflict,
				expectedMsg:    deal.ErrDeadlineExpired.Error(),
			},
			{
				name:           "deal inactive",
				commandsError:  errs.Mark(deal.ErrDealInactive, errs.ErrPreconditionFailed),
				expectedStatus: http.StatusConflict,
				expectedMsg:    deal.ErrDealInactive.Error(),
			},
			{
				name:           "side effect failure without a result",
				commandsError:  errs.Mark(errors.New("boom"), errs.ErrSideEffectFailure),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Join failed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Join failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Join(gomock.Any(), dealID, s.userID).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 401 when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// Leave
// ================================================================================

func (s *DealHandlerTestSuite) TestLeave() {
	dealID := uuid.New()
	url := "/deals/" + dealID.String() + "/join"

	s.Run("success: returns the remaining participants", func() {
		s.mockCommands.EXPECT().Leave(gomock.Any(), dealID, s.userID).Return(&commands.LeaveResult{
			DealID:              dealID,
			CurrentParticipants: 2,
			MinParticipants:     5,
			Progress:            40,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")

		var response resdto.LeaveResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(dealID.String(), response.DealID)
		s.Equal(2, response.CurrentParticipants)
	})

	s.Run("error: 409 when not a member", func() {
		s.mockCommands.EXPECT().Leave(gomock.Any(), dealID, s.userID).Return(nil, deal.ErrNotMember).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, deal.ErrNotMember.Error())
	})

	s.Run("error: 409 after completion", func() {
		s.mockCommands.EXPECT().Leave(gomock.Any(), dealID, s.userID).
			Return(nil, errs.Mark(deal.ErrDealCompleted, errs.ErrPreconditionFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, deal.ErrDealCompleted.Error())
	})
}

// ================================================================================
// Sweep
// ================================================================================

func (s *DealHandlerTestSuite) TestSweep() {
	s.Run("success: returns the sweep report", func() {
		s.sweeper.report = commands.SweepReport{Candidates: 3, Claimed: 2, Failed: 1}
		s.sweeper.err = nil

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/deals/sweep", nil, "")

		var response resdto.SweepResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(resdto.SweepResponse{Candidates: 3, Claimed: 2, Failed: 1}, response)
	})

	s.Run("error: 500 when candidates cannot be listed", func() {
		s.sweeper.report = commands.SweepReport{}
		s.sweeper.err = errors.New("database error")

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/deals/sweep", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Sweep failed")
	})
}
