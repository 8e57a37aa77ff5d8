package handlers

import (
	"net/http"

	"phishing-simulator-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler handles authentication and user management
type UserHandler struct {
	service service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(service service.UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// Login handles POST /api/v1/auth/login
// @Summary Log in
// @Description Exchange email and password for an access/refresh token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body service.LoginRequest true "Credentials"
// @Success 200 {object} service.LoginResponse
// @Failure 400 {object} map[string]interface{} "Invalid credentials or disabled account"
// @Router /auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "log in")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Refresh handles POST /api/v1/auth/refresh
// @Summary Refresh access token
// @Tags auth
// @Accept json
// @Produce json
// @Param token body service.RefreshRequest true "Refresh token"
// @Success 200 {object} service.RefreshResponse
// @Failure 401 {object} map[string]interface{} "Invalid or revoked refresh token"
// @Router /auth/refresh [post]
func (h *UserHandler) Refresh(c *gin.Context) {
	var req service.RefreshRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Refresh(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "refresh token")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /api/v1/auth/logout
// @Summary Log out
// @Description Blacklist the refresh token until it expires
// @Tags auth
// @Accept json
// @Produce json
// @Param token body service.RefreshRequest true "Refresh token"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} map[string]interface{} "Invalid token"
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	var req service.RefreshRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.service.Logout(c.Request.Context(), &req); err != nil {
		respondError(c, err, "log out")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Logout successful"})
}

// ChangePassword handles PUT /api/v1/auth/change-password
// @Summary Change password
// @Tags auth
// @Accept json
// @Produce json
// @Param passwords body service.ChangePasswordRequest true "Old and new password"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} map[string]interface{} "Password mismatch, reuse, wrong old password or weak password"
// @Security BearerAuth
// @Router /auth/change-password [put]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req service.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.service.ChangePassword(actor, &req); err != nil {
		respondError(c, err, "change password")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Password changed successfully"})
}

// GetProfile handles GET /api/v1/profile
// @Summary Get current user
// @Tags users
// @Produce json
// @Success 200 {object} service.UserResponse
// @Security BearerAuth
// @Router /profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	user, err := h.service.GetProfile(actor)
	if err != nil {
		respondError(c, err, "get profile")
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile handles PUT /api/v1/profile
// @Summary Update current user
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.UpdateUserRequest true "Profile fields"
// @Success 200 {object} service.UserResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Security BearerAuth
// @Router /profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req service.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.service.UpdateProfile(actor, &req)
	if err != nil {
		respondError(c, err, "update profile")
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser handles POST /api/v1/users
// @Summary Register a user
// @Description Public signup. A customer brings organization_data or organization_id; only admins may create admins.
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.CreateUserRequest true "User data"
// @Success 201 {object} service.UserResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Only platform admins can create admin accounts"
// @Failure 409 {object} map[string]interface{} "User already exists"
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req service.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.service.Create(optionalActor(c), &req)
	if err != nil {
		respondError(c, err, "create user")
		return
	}
	c.JSON(http.StatusCreated, user)
}

// ListUsers handles GET /api/v1/users
// @Summary List users
// @Tags users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(25)
// @Param search query string false "Search username, email or name"
// @Param role query string false "Filter by role"
// @Param is_active query bool false "Filter by active flag"
// @Param is_verified query bool false "Filter by verified flag"
// @Success 200 {object} service.UserListResponse
// @Failure 403 {object} map[string]interface{} "Managers only"
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req service.UserListRequest
	if !bindQuery(c, &req) {
		return
	}

	users, err := h.service.List(actor, &req)
	if err != nil {
		respondError(c, err, "list users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser handles GET /api/v1/users/:id
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} service.UserResponse
// @Failure 404 {object} map[string]interface{} "User not found"
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "user")
	if !ok {
		return
	}

	user, err := h.service.GetByID(actor, id)
	if err != nil {
		respondError(c, err, "get user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser handles PUT /api/v1/users/:id
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param user body service.UpdateUserRequest true "User fields"
// @Success 200 {object} service.UserResponse
// @Failure 404 {object} map[string]interface{} "User not found"
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "user")
	if !ok {
		return
	}
	var req service.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.service.Update(actor, id, &req)
	if err != nil {
		respondError(c, err, "update user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /api/v1/users/:id
// @Summary Delete user
// @Tags users
// @Param id path string true "User ID (UUID)"
// @Success 204 "User deleted"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "user")
	if !ok {
		return
	}

	if err := h.service.Delete(actor, id); err != nil {
		respondError(c, err, "delete user")
		return
	}
	c.Status(http.StatusNoContent)
}

// Statistics handles GET /api/v1/statistics
// @Summary User statistics
// @Description Aggregates the users of the caller's organization; admins may pass another organization
// @Tags users
// @Produce json
// @Param organization query string false "Organization ID (admins only)"
// @Success 200 {object} service.UserStatisticsResponse
// @Failure 400 {object} map[string]interface{} "No organization context"
// @Security BearerAuth
// @Router /statistics [get]
func (h *UserHandler) Statistics(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var orgID *uuid.UUID
	if raw := c.Query("organization"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
			return
		}
		orgID = &id
	}

	stats, err := h.service.Statistics(actor, orgID)
	if err != nil {
		respondError(c, err, "get user statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}
