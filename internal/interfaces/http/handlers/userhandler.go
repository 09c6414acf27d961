package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/subkeeper/internal/application/user/usecases"
	"github.com/orris-inc/subkeeper/internal/shared/logger"
	"github.com/orris-inc/subkeeper/internal/shared/utils"
)

// UserHandler serves the caller's own account and user lookups.
type UserHandler struct {
	getProfileUC     getProfileUseCase
	updateProfileUC  updateProfileUseCase
	getUserByEmailUC getUserByEmailUseCase
	logger           logger.Interface
}

func NewUserHandler(
	getProfileUC getProfileUseCase,
	updateProfileUC updateProfileUseCase,
	getUserByEmailUC getUserByEmailUseCase,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		getProfileUC:     getProfileUC,
		updateProfileUC:  updateProfileUC,
		getUserByEmailUC: getUserByEmailUC,
		logger:           logger,
	}
}

// UpdateProfileRequest patches the caller's account; omitted fields are unchanged.
type UpdateProfileRequest struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	result, err := h.getProfileUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update profile", "user_id", userID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateProfileUC.Execute(c.Request.Context(), usecases.UpdateProfileCommand{
		UserID:   userID,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", result)
}

// GetUserByEmail returns a user summary. Non-admins may only look up themselves.
func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	result, err := h.getUserByEmailUC.Execute(c.Request.Context(), usecases.GetUserByEmailQuery{
		Email:            c.Param("email"),
		RequesterID:      userID,
		RequesterIsAdmin: utils.GetUserRole(c).IsAdmin(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
