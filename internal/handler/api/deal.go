package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"group-deal-engine/internal/domain/deal"
	reqdto "group-deal-engine/internal/handler/dto/request"
	resdto "group-deal-engine/internal/handler/dto/response"
	"group-deal-engine/internal/handler/httperr"
	"group-deal-engine/internal/handler/middleware"
	"group-deal-engine/internal/pkg/errs"
	"group-deal-engine/internal/usecase/commands"
	"group-deal-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errUnauthenticated = errors.New("unauthenticated")

// Sweeper is the manual trigger for the completion sweep.
type Sweeper interface {
	Sweep(ctx context.Context) (commands.SweepReport, error)
}

type DealHandler struct {
	cmds    commands.DealCommands
	q       queries.DealQueries
	sweeper Sweeper
}

func NewDealHandler(cmds commands.DealCommands, q queries.DealQueries, sweeper Sweeper) *DealHandler {
	return &DealHandler{cmds: cmds, q: q, sweeper: sweeper}
}

// @Summary List open deals
// @Description Every deal not yet completed, expired and inactive ones included, newest first, with participant counts and status
// @Tags deals
// @Produce json
// @Success 200 {object} resdto.DealListResponse
// @Failure 500 {object} httperr.Response
// @Router /deals [get]
func (h *DealHandler) ListOpen(c *gin.Context) {
	views, err := h.q.ListOpenDeals(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list deals", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDealViews(views))
}

// @Summary List my deals
// @Description Deals the authenticated user has joined, newest first
// @Tags deals
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UserDealListResponse
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /deals/my [get]
func (h *DealHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	views, err := h.q.ListUserDeals(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list deals", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserDealViews(views))
}

// @Summary Get deal
// @Description Get a deal by ID
// @Tags deals
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} resdto.DealResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /deals/{id} [get]
func (h *DealHandler) Get(c *gin.Context) {
	var uri reqdto.DealURI
	if err := c.ShouldBindUri(&uri); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetDeal(c.Request.Context(), uri.DealID())
	if err != nil {
		abortWithDealError(c, err, "Failed to load deal")
		return
	}
	c.JSON(http.StatusOK, resdto.FromDealView(view))
}

// @Summary Get active deal for a product
// @Description The joinable deal for a product, or deal=null when there is none
// @Tags deals
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} resdto.ActiveDealResponse
// @Failure 400 {object} httperr.Response
// @Router /deals/by-product/{productId} [get]
func (h *DealHandler) GetByProduct(c *gin.Context) {
	var uri reqdto.ProductURI
	if err := c.ShouldBindUri(&uri); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product id", nil)
		return
	}
	view, err := h.q.GetActiveDealByProduct(c.Request.Context(), uri.ProductUUID())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load deal", nil)
		return
	}
	res := &resdto.ActiveDealResponse{}
	if view != nil {
		res.Deal = resdto.FromDealView(view)
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Join deal
// @Description Join a group deal. Side effects that failed after the join committed are listed in warnings.
// @Tags deals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Success 200 {object} resdto.JoinResponse "already a member"
// @Success 201 {object} resdto.JoinResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /deals/{id}/join [post]
func (h *DealHandler) Join(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var uri reqdto.DealURI
	if err := c.ShouldBindUri(&uri); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	result, err := h.cmds.Join(c.Request.Context(), uri.DealID(), userID)
	status := http.StatusCreated
	if err != nil {
		if result == nil || !errs.Is(err, errs.ErrSideEffectFailure) {
			abortWithDealError(c, err, "Join failed")
			return
		}
		slog.Warn("join committed with side effect failure",
			"deal_id", uri.ID,
			"user_id", userID.String(),
			"error", err.Error())
	}
	if result.AlreadyMember {
		status = http.StatusOK
	}

	res, err := resdto.FromJoinResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(status, res)
}

// @Summary Leave deal
// @Description Leave a group deal that has not completed yet
// @Tags deals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Success 200 {object} resdto.LeaveResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /deals/{id}/join [delete]
func (h *DealHandler) Leave(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var uri reqdto.DealURI
	if err := c.ShouldBindUri(&uri); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	result, err := h.cmds.Leave(c.Request.Context(), uri.DealID(), userID)
	if err != nil {
		abortWithDealError(c, err, "Leave failed")
		return
	}
	res, err := resdto.FromLeaveResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Run completion sweep
// @Description Retry completion for every deal at or above its threshold that is not completed yet
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SweepResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /admin/deals/sweep [post]
func (h *DealHandler) Sweep(c *gin.Context) {
	report, err := h.sweeper.Sweep(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Sweep failed", resdto.FromSweepReport(report))
		return
	}
	c.JSON(http.StatusOK, resdto.FromSweepReport(report))
}

func abortWithDealError(c *gin.Context, err error, fallback string) {
	switch {
	case errs.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errs.Is(err, errs.ErrPreconditionFailed):
		httperr.AbortWithError(c, http.StatusConflict, err, preconditionMessage(err), nil)
	case errors.Is(err, deal.ErrNotMember):
		httperr.AbortWithError(c, http.StatusConflict, err, deal.ErrNotMember.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
	}
}

func preconditionMessage(err error) string {
	for _, target := range []error{deal.ErrDealCompleted, deal.ErrDeadlineExpired, deal.ErrDealInactive} {
		if errs.Is(err, target) {
			return target.Error()
		}
	}
	return "Deal is not open"
}
