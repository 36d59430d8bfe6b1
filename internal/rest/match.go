package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"giveLocal/business/claim"
	"giveLocal/business/match"
	"giveLocal/domain"
	"giveLocal/pkg/logger"
	"giveLocal/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type (
	MatchService interface {
		FindMatches(ctx context.Context, query domain.MatchQuery) (domain.MatchResult, error)
	}

	ClaimService interface {
		Accept(ctx context.Context, userID, itemID uint64) (claim.AcceptResult, error)
		Pass(ctx context.Context, userID, itemID uint64) error
	}

	MatchHandler struct {
		matchService MatchService
		claimService ClaimService
		validator    *validator.Validate
		timeout      time.Duration
	}

	ClaimRequest struct {
		ItemID uint64 `json:"itemId" validate:"required"`
	}
)

func NewMatchHandler(matchService MatchService, claimService ClaimService) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
		claimService: claimService,
		validator:    validator.New(),
		timeout:      10 * time.Second,
	}
}

func (h *MatchHandler) FindMatches(c echo.Context) error {
	start := time.Now()

	var query domain.MatchQuery
	if err := c.Bind(&query); err != nil {
		logger.Error("Failed to bind match query", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	traceID := uuid.NewString()
	ctx = match.WithTraceID(ctx, traceID)

	result, err := h.matchService.FindMatches(ctx, query)
	if err != nil {
		if errors.Is(err, match.ErrLocationRequired) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "Location is required for matching"})
		}
		logger.Error("Match pipeline failed", "trace_id", traceID, err)
		return c.JSON(http.StatusInternalServerError, ResponseError{
			Message: "An internal server error occurred.",
			Error:   err.Error(),
		})
	}

	metrics.MatchRequests.Inc()
	metrics.MatchCandidates.Observe(float64(result.TotalCandidates))
	metrics.MatchLatency.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, result)
}

func (h *MatchHandler) AcceptMatch(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint64)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req ClaimRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "itemId is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.claimService.Accept(ctx, userID, req.ItemID)
	if err != nil {
		switch {
		case errors.Is(err, claim.ErrItemNotFound):
			return c.JSON(http.StatusNotFound, ResponseError{Message: "Item not found"})
		case errors.Is(err, claim.ErrAlreadyClaimed):
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "Item already claimed"})
		}
		logger.Error("Failed to accept match", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.ClaimAccepts.Inc()

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "Match accepted, donor rewarded",
		"donor":    result.Donor,
		"receiver": result.Receiver,
	})
}

func (h *MatchHandler) PassMatch(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint64)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req ClaimRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "itemId is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.claimService.Pass(ctx, userID, req.ItemID); err != nil {
		switch {
		case errors.Is(err, claim.ErrItemNotFound):
			return c.JSON(http.StatusNotFound, ResponseError{Message: "Item not found"})
		case errors.Is(err, claim.ErrOwnItem):
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "Cannot pass on your own item"})
		}
		logger.Error("Failed to pass match", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Item passed",
	})
}
