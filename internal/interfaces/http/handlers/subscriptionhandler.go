package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/subkeeper/internal/application/subscription/usecases"
	"github.com/orris-inc/subkeeper/internal/domain/subscription"
	"github.com/orris-inc/subkeeper/internal/shared/authorization"
	"github.com/orris-inc/subkeeper/internal/shared/errors"
	"github.com/orris-inc/subkeeper/internal/shared/logger"
	"github.com/orris-inc/subkeeper/internal/shared/utils"
)

// SubscriptionUseCases groups the use cases served by SubscriptionHandler.
type SubscriptionUseCases struct {
	Create         createSubscriptionUseCase
	Update         updateSubscriptionUseCase
	Cancel         cancelSubscriptionUseCase
	Get            getSubscriptionUseCase
	ListByUser     listUserSubscriptionsUseCase
	ListByStatus   listSubscriptionsByStatusUseCase
	GetHistory     getSubscriptionHistoryUseCase
	GetUserHistory getUserHistoryUseCase
}

// SubscriptionHandler handles the subscription lifecycle and its history ledger.
type SubscriptionHandler struct {
	createUseCase         createSubscriptionUseCase
	updateUseCase         updateSubscriptionUseCase
	cancelUseCase         cancelSubscriptionUseCase
	getUseCase            getSubscriptionUseCase
	listUserUseCase       listUserSubscriptionsUseCase
	listByStatusUseCase   listSubscriptionsByStatusUseCase
	getHistoryUseCase     getSubscriptionHistoryUseCase
	getUserHistoryUseCase getUserHistoryUseCase
	logger                logger.Interface
}

func NewSubscriptionHandler(ucs SubscriptionUseCases, logger logger.Interface) *SubscriptionHandler {
	return &SubscriptionHandler{
		createUseCase:         ucs.Create,
		updateUseCase:         ucs.Update,
		cancelUseCase:         ucs.Cancel,
		getUseCase:            ucs.Get,
		listUserUseCase:       ucs.ListByUser,
		listByStatusUseCase:   ucs.ListByStatus,
		getHistoryUseCase:     ucs.GetHistory,
		getUserHistoryUseCase: ucs.GetUserHistory,
		logger:                logger,
	}
}

type CreateSubscriptionRequest struct {
	PlanID uint `json:"plan_id" binding:"required,min=1"`
}

// UpdateSubscriptionRequest patches status and/or plan. Version enables an
// optimistic concurrency check against the stored row.
type UpdateSubscriptionRequest struct {
	Status  *string `json:"status" binding:"omitempty,subscription_status"`
	PlanID  *uint   `json:"plan_id" binding:"omitempty,min=1"`
	Version *int    `json:"version" binding:"omitempty,min=1"`
}

func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create subscription", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateSubscriptionCommand{
		UserID: userID,
		PlanID: req.PlanID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Subscription created successfully")
}

func (h *SubscriptionHandler) UpdateSubscription(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	subscriptionID, err := utils.ParseUintParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update subscription",
			"subscription_id", subscriptionID,
			"error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateSubscriptionCommand{
		SubscriptionID:  subscriptionID,
		UserID:          userID,
		Status:          req.Status,
		PlanID:          req.PlanID,
		ExpectedVersion: req.Version,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription updated successfully", result)
}

// CancelSubscription is the direct cancel path; it does not write history.
func (h *SubscriptionHandler) CancelSubscription(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	subscriptionID, err := utils.ParseUintParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.cancelUseCase.Execute(c.Request.Context(), usecases.CancelSubscriptionCommand{
		SubscriptionID: subscriptionID,
		UserID:         userID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// GetSubscription lets admins read any subscription; other callers only see their own.
func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	subscriptionID, err := utils.ParseUintParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), subscriptionID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if !authorization.CanAccessResourceByOwnerID(userID, utils.GetUserRole(c), result.UserID) {
		h.logger.Warnw("subscription access denied", "user_id", userID, "subscription_id", subscriptionID)
		utils.ErrorResponseWithError(c, errors.NewNotFoundError(subscription.ErrSubscriptionNotFound.Error()))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *SubscriptionHandler) ListUserSubscriptions(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	result, err := h.listUserUseCase.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *SubscriptionHandler) ListSubscriptionsByStatus(c *gin.Context) {
	result, err := h.listByStatusUseCase.Execute(c.Request.Context(), c.Param("status"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *SubscriptionHandler) GetSubscriptionHistory(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	subscriptionID, err := utils.ParseUintParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getHistoryUseCase.Execute(c.Request.Context(), usecases.GetSubscriptionHistoryQuery{
		SubscriptionID: subscriptionID,
		UserID:         userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if len(result) == 0 {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("no history found for this subscription"))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *SubscriptionHandler) GetUserHistory(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	result, err := h.getUserHistoryUseCase.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if len(result) == 0 {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("no subscription history found"))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
