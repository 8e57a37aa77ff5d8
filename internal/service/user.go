package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"phishing-simulator-backend/internal/auth"
	"phishing-simulator-backend/internal/database/models"
	apperrors "phishing-simulator-backend/internal/errors"
	"phishing-simulator-backend/internal/logger"
	"phishing-simulator-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var phonePattern = regexp.MustCompile(`^\+?1?\d{9,15}$`)

// UserService handles accounts, authentication flows and user statistics
type UserService struct {
	repo          repository.UserRepositoryInterface
	organizations *OrganizationService
	tokens        TokenIssuer
	validator     *validator.Validate
	now           func() time.Time
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, organizations *OrganizationService, tokens TokenIssuer, validator *validator.Validate) *UserService {
	return &UserService{
		repo:          repo,
		organizations: organizations,
		tokens:        tokens,
		validator:     validator,
		now:           time.Now,
	}
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"jane@example.com"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the token pair and the signed-in user
type LoginResponse struct {
	Access  string        `json:"access"`
	Refresh string        `json:"refresh"`
	User    *UserResponse `json:"user"`
}

// RefreshRequest carries a refresh token
type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// RefreshResponse carries a new access token
type RefreshResponse struct {
	Access string `json:"access"`
}

// ChangePasswordRequest represents the change-password payload
type ChangePasswordRequest struct {
	OldPassword        string `json:"old_password" validate:"required"`
	NewPassword        string `json:"new_password" validate:"required"`
	NewPasswordConfirm string `json:"new_password_confirm" validate:"required"`
}

// CreateUserRequest represents a signup or an admin-created account
type CreateUserRequest struct {
	Username         string                     `json:"username" validate:"required,min=3,max=150"`
	Email            string                     `json:"email" validate:"required,email,max=255"`
	Password         string                     `json:"password" validate:"required"`
	PasswordConfirm  string                     `json:"password_confirm" validate:"required"`
	FirstName        string                     `json:"first_name" validate:"max=150"`
	LastName         string                     `json:"last_name" validate:"max=150"`
	Role             models.UserRole            `json:"role" validate:"required"`
	Phone            string                     `json:"phone,omitempty"`
	OrganizationID   *uuid.UUID                 `json:"organization_id,omitempty"`
	OrganizationData *CreateOrganizationRequest `json:"organization_data,omitempty"`
}

// UpdateUserRequest represents a partial update of a user and their profile
type UpdateUserRequest struct {
	FirstName     *string               `json:"first_name" validate:"omitempty,max=150"`
	LastName      *string               `json:"last_name" validate:"omitempty,max=150"`
	Phone         *string               `json:"phone"`
	Role          *models.UserRole      `json:"role"`
	IsActive      *bool                 `json:"is_active"`
	IsVerified    *bool                 `json:"is_verified"`
	Department    *string               `json:"department" validate:"omitempty,max=100"`
	JobTitle      *string               `json:"job_title" validate:"omitempty,max=100"`
	SecurityLevel *models.SecurityLevel `json:"security_level"`
}

// UserListRequest filters users
type UserListRequest struct {
	ListParams
	Role       models.UserRole `form:"role"`
	IsActive   *bool           `form:"is_active"`
	IsVerified *bool           `form:"is_verified"`
}

// OrganizationSummary is the organization embedded in a user response
type OrganizationSummary struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	Domain           string          `json:"domain"`
	SubscriptionTier models.PlanType `json:"subscription_tier"`
}

// UserProfileResponse is the security profile embedded in a user response
type UserProfileResponse struct {
	Department       string               `json:"department"`
	JobTitle         string               `json:"job_title"`
	SecurityLevel    models.SecurityLevel `json:"security_level"`
	LastTrainingDate *string              `json:"last_training_date,omitempty"`
}

// UserResponse represents a user
type UserResponse struct {
	ID             uuid.UUID            `json:"id"`
	Username       string               `json:"username"`
	Email          string               `json:"email"`
	FirstName      string               `json:"first_name"`
	LastName       string               `json:"last_name"`
	FullName       string               `json:"full_name"`
	Role           models.UserRole      `json:"role"`
	OrganizationID *uuid.UUID           `json:"organization_id,omitempty"`
	Organization   *OrganizationSummary `json:"organization,omitempty"`
	Phone          string               `json:"phone"`
	IsVerified     bool                 `json:"is_verified"`
	IsActive       bool                 `json:"is_active"`
	LastLogin      *string              `json:"last_login,omitempty"`
	Profile        *UserProfileResponse `json:"profile,omitempty"`
	CreatedAt      string               `json:"created_at"`
	UpdatedAt      string               `json:"updated_at"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// UserStatisticsResponse aggregates the users of an organization
type UserStatisticsResponse struct {
	TotalUsers          int64            `json:"total_users"`
	ActiveUsers         int64            `json:"active_users"`
	VerifiedUsers       int64            `json:"verified_users"`
	UsersByRole         map[string]int64 `json:"users_by_role"`
	RecentRegistrations int64            `json:"recent_registrations"`
}

// Login checks credentials, stamps last_login and issues a token pair
func (s *UserService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.repo.GetByEmail(strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	now := s.now()
	if err := s.repo.UpdateLastLogin(user.ID, now); err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}
	user.LastLogin = &now

	pair, err := s.tokens.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}
	logger.WithContext(ctx).WithField("user_id", user.ID).Info("user logged in")

	return &LoginResponse{Access: pair.Access, Refresh: pair.Refresh, User: toUserResponse(user)}, nil
}

// Refresh exchanges a valid, unrevoked refresh token for a new access token
func (s *UserService) Refresh(ctx context.Context, req *RefreshRequest) (*RefreshResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	claims, err := s.tokens.ValidateRefreshToken(ctx, req.Refresh)
	if err != nil {
		if errors.Is(err, auth.ErrTokenRevoked) {
			return nil, apperrors.ErrRefreshTokenRevoked
		}
		return nil, apperrors.ErrInvalidRefreshToken
	}
	userID, err := claims.UUID()
	if err != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}
	user, err := s.repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	access, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	return &RefreshResponse{Access: access}, nil
}

// Logout blacklists the refresh token until it expires
func (s *UserService) Logout(ctx context.Context, req *RefreshRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if err := s.tokens.RevokeRefreshToken(ctx, req.Refresh); err != nil {
		logger.WithContext(ctx).WithError(err).Debug("logout with unusable refresh token")
		return apperrors.NewBadRequestError("Invalid token")
	}
	return nil
}

// ChangePassword replaces the actor's password after checking the old one
func (s *UserService) ChangePassword(actor Actor, req *ChangePasswordRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if req.NewPassword != req.NewPasswordConfirm {
		return apperrors.NewValidationError("new_password_confirm", "New passwords don't match")
	}
	if req.NewPassword == req.OldPassword {
		return apperrors.NewValidationError("new_password", "New password must be different from old password")
	}

	user, err := s.repo.GetByID(actor.UserID)
	if err != nil {
		return lookupError(err, apperrors.ErrUserNotFound, "get user")
	}
	if !auth.CheckPassword(user.PasswordHash, req.OldPassword) {
		return apperrors.NewValidationError("old_password", "Old password is incorrect")
	}
	if err := auth.ValidatePasswordStrength(req.NewPassword); err != nil {
		return apperrors.NewValidationError("new_password", err.Error())
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.repo.UpdatePassword(user.ID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// Create registers a user. actor is nil for anonymous signup.
func (s *UserService) Create(actor *Actor, req *CreateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.Password != req.PasswordConfirm {
		return nil, apperrors.ErrPasswordMismatch
	}
	if err := auth.ValidatePasswordStrength(req.Password); err != nil {
		return nil, apperrors.NewValidationError("password", err.Error())
	}
	if req.Phone != "" && !phonePattern.MatchString(req.Phone) {
		return nil, apperrors.NewValidationError("phone", "Phone number must be entered in the format: '+999999999'. Up to 15 digits allowed.")
	}
	if err := s.checkSignupOrganization(actor, req); err != nil {
		return nil, err
	}
	if err := s.checkUnique(req.Email, req.Username); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &models.User{
		Username:       strings.TrimSpace(req.Username),
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash:   hash,
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		Role:           req.Role,
		OrganizationID: req.OrganizationID,
		Phone:          req.Phone,
		IsActive:       true,
		Profile:        &models.UserProfile{SecurityLevel: models.SecurityLevelMedium},
	}

	if req.OrganizationData != nil {
		org, err := s.organizations.build(req.OrganizationData)
		if err != nil {
			return nil, err
		}
		if err := s.repo.CreateWithOrganization(org, user); err != nil {
			return nil, fmt.Errorf("failed to create user with organization: %w", err)
		}
		if err := s.organizations.Provision(org); err != nil {
			return nil, err
		}
	} else if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	created, err := s.repo.GetByID(user.ID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrUserNotFound, "get user")
	}
	return toUserResponse(created), nil
}

// checkSignupOrganization enforces the role rules for organization membership at signup
func (s *UserService) checkSignupOrganization(actor *Actor, req *CreateUserRequest) error {
	hasID := req.OrganizationID != nil
	hasData := req.OrganizationData != nil

	switch req.Role {
	case models.UserRoleAdmin:
		if actor == nil || !actor.IsAdmin() {
			return apperrors.ErrAdminRequired
		}
		if hasID && hasData {
			return apperrors.NewValidationError("organization", "Provide either organization_data or organization_id, not both.")
		}
	case models.UserRoleCustomer:
		if hasID == hasData {
			return apperrors.NewValidationError("organization", "Customer accounts require exactly one of organization_data or organization_id.")
		}
	case models.UserRoleTarget:
		if hasData {
			return apperrors.NewValidationError("organization_data", "Target accounts cannot create an organization.")
		}
		if !hasID {
			return apperrors.NewValidationError("organization_id", "Target accounts require organization_id.")
		}
	default:
		return apperrors.NewValidationError("role", "invalid role")
	}

	if hasID {
		if _, err := s.organizations.repo.GetByID(*req.OrganizationID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewValidationError("organization_id", "Organization does not exist.")
			}
			return fmt.Errorf("failed to get organization: %w", err)
		}
	}
	return nil
}

func (s *UserService) checkUnique(email, username string) error {
	existing, err := s.repo.GetByEmail(strings.TrimSpace(email))
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing user by email: %w", err)
	}
	if existing != nil {
		return apperrors.ErrUserExists
	}
	existing, err = s.repo.GetByUsername(strings.TrimSpace(username))
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing user by username: %w", err)
	}
	if existing != nil {
		return apperrors.ErrUserExists
	}
	return nil
}

// GetProfile returns the actor's own account
func (s *UserService) GetProfile(actor Actor) (*UserResponse, error) {
	user, err := s.repo.GetByID(actor.UserID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrUserNotFound, "get user")
	}
	return toUserResponse(user), nil
}

// UpdateProfile updates the actor's own names, phone and profile; role and status are not self-service
func (s *UserService) UpdateProfile(actor Actor, req *UpdateUserRequest) (*UserResponse, error) {
	restricted := *req
	restricted.Role = nil
	restricted.IsActive = nil
	restricted.IsVerified = nil
	restricted.SecurityLevel = nil
	return s.update(actor.UserID, &restricted)
}

// List returns users of the actor's organization, or every user for an admin
func (s *UserService) List(actor Actor, req *UserListRequest) (*UserListResponse, error) {
	if !actor.IsManager() {
		return nil, apperrors.ErrManagerRequired
	}
	params := req.ListParams.Normalize()
	filter := repository.UserFilter{
		Page:       params.repoPage(),
		Role:       req.Role,
		IsActive:   req.IsActive,
		IsVerified: req.IsVerified,
	}
	if !actor.IsAdmin() {
		orgID, err := actor.TenantID()
		if err != nil {
			return nil, err
		}
		filter.OrganizationID = &orgID
	}

	users, total, err := s.repo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *toUserResponse(&users[i])
	}
	return &UserListResponse{Users: responses, Total: total, Page: params.Page, PageSize: params.PageSize}, nil
}

// GetByID retrieves a user visible to the actor
func (s *UserService) GetByID(actor Actor, id uuid.UUID) (*UserResponse, error) {
	user, err := s.visible(actor, id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Update updates a user visible to the actor; only admins may grant the admin role
func (s *UserService) Update(actor Actor, id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if _, err := s.visible(actor, id); err != nil {
		return nil, err
	}
	if req.Role != nil && *req.Role == models.UserRoleAdmin && !actor.IsAdmin() {
		return nil, apperrors.ErrAdminRequired
	}
	return s.update(id, req)
}

// Delete deletes a user visible to the actor
func (s *UserService) Delete(actor Actor, id uuid.UUID) error {
	if _, err := s.visible(actor, id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// Statistics aggregates users of an organization. Only admins may pick the organization.
func (s *UserService) Statistics(actor Actor, organizationID *uuid.UUID) (*UserStatisticsResponse, error) {
	if !actor.IsManager() {
		return nil, apperrors.ErrManagerRequired
	}
	orgID := actor.OrganizationID
	if actor.IsAdmin() && organizationID != nil {
		orgID = organizationID
	}
	if orgID == nil {
		return nil, apperrors.ErrNoOrganizationContext
	}

	stats, err := s.repo.Statistics(orgID, s.now().AddDate(0, 0, -30))
	if err != nil {
		return nil, fmt.Errorf("failed to get user statistics: %w", err)
	}
	byRole := map[string]int64{
		string(models.UserRoleAdmin):    0,
		string(models.UserRoleCustomer): 0,
		string(models.UserRoleTarget):   0,
	}
	for role, count := range stats.UsersByRole {
		byRole[role] = count
	}
	return &UserStatisticsResponse{
		TotalUsers:          stats.TotalUsers,
		ActiveUsers:         stats.ActiveUsers,
		VerifiedUsers:       stats.VerifiedUsers,
		UsersByRole:         byRole,
		RecentRegistrations: stats.RecentRegistrations,
	}, nil
}

// visible loads a user the actor may manage: any user for an admin, same-organization users otherwise
func (s *UserService) visible(actor Actor, id uuid.UUID) (*models.User, error) {
	if !actor.IsManager() {
		return nil, apperrors.ErrManagerRequired
	}
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrUserNotFound, "get user")
	}
	if actor.IsAdmin() {
		return user, nil
	}
	orgID, err := actor.TenantID()
	if err != nil {
		return nil, err
	}
	if user.OrganizationID == nil || *user.OrganizationID != orgID {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) update(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.Phone != nil && *req.Phone != "" && !phonePattern.MatchString(*req.Phone) {
		return nil, apperrors.NewValidationError("phone", "Phone number must be entered in the format: '+999999999'. Up to 15 digits allowed.")
	}
	if req.Role != nil && !req.Role.IsValid() {
		return nil, apperrors.NewValidationError("role", "invalid role")
	}
	if req.SecurityLevel != nil && !req.SecurityLevel.IsValid() {
		return nil, apperrors.NewValidationError("security_level", "invalid security level")
	}

	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrUserNotFound, "get user")
	}
	if req.FirstName != nil {
		user.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	user.IsActive = boolValue(req.IsActive, user.IsActive)
	user.IsVerified = boolValue(req.IsVerified, user.IsVerified)

	if user.Profile == nil {
		user.Profile = &models.UserProfile{UserID: user.ID, SecurityLevel: models.SecurityLevelMedium}
	}
	if req.Department != nil {
		user.Profile.Department = strings.TrimSpace(*req.Department)
	}
	if req.JobTitle != nil {
		user.Profile.JobTitle = strings.TrimSpace(*req.JobTitle)
	}
	if req.SecurityLevel != nil {
		user.Profile.SecurityLevel = *req.SecurityLevel
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *models.User) *UserResponse {
	resp := &UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		FullName:       u.FullName(),
		Role:           u.Role,
		OrganizationID: u.OrganizationID,
		Phone:          u.Phone,
		IsVerified:     u.IsVerified,
		IsActive:       u.IsActive,
		LastLogin:      formatTimePtr(u.LastLogin),
		CreatedAt:      formatTime(u.CreatedAt),
		UpdatedAt:      formatTime(u.UpdatedAt),
	}
	if u.Organization != nil {
		resp.Organization = &OrganizationSummary{
			ID:               u.Organization.ID,
			Name:             u.Organization.Name,
			Domain:           u.Organization.Domain,
			SubscriptionTier: u.Organization.SubscriptionTier,
		}
	}
	if u.Profile != nil {
		resp.Profile = &UserProfileResponse{
			Department:       u.Profile.Department,
			JobTitle:         u.Profile.JobTitle,
			SecurityLevel:    u.Profile.SecurityLevel,
			LastTrainingDate: formatTimePtr(u.Profile.LastTrainingDate),
		}
	}
	return resp
}
