package controllers

import (
	"errors"

	"go.uber.org/zap"

	"parlayLeague/auth"
	"parlayLeague/common/logger"
	"parlayLeague/common/response"
	"parlayLeague/models"
	"parlayLeague/services/userService"
)

type AuthController struct {
	baseController
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken  string            `json:"access_token"`
	RefreshToken string            `json:"refresh_token"`
	User         models.PublicUser `json:"user"`
}

// Register creates an account and returns a token pair.
func (c *AuthController) Register() {
	var req registerRequest
	if err := c.parseBody(&req); err != nil {
		response.BadRequest(&c.Controller, "invalid JSON body", c.traceID())
		return
	}

	user, err := userService.Register(db, req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, userService.ErrUsernameTaken) || errors.Is(err, userService.ErrEmailTaken) {
			response.ErrorWithMessage(&c.Controller, 409, response.CodeConflict, err.Error(), c.traceID())
			return
		}
		response.BadRequest(&c.Controller, err.Error(), c.traceID())
		return
	}

	tokens, err := issueTokens(user)
	if err != nil {
		logger.Error("token issue failed", zap.Error(err))
		response.InternalError(&c.Controller, c.traceID())
		return
	}
	logger.Info("user registered", zap.Uint("user_id", user.ID))
	response.Created(&c.Controller, tokens, c.traceID())
}

// Login authenticates by email+password.
func (c *AuthController) Login() {
	var req loginRequest
	if err := c.parseBody(&req); err != nil {
		response.BadRequest(&c.Controller, "invalid JSON body", c.traceID())
		return
	}

	user, err := userService.Authenticate(db, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, userService.ErrBadCredential) {
			response.ErrorWithMessage(&c.Controller, 401, response.CodeUnauthorized, "invalid credentials", c.traceID())
			return
		}
		response.InternalError(&c.Controller, c.traceID())
		return
	}

	tokens, err := issueTokens(user)
	if err != nil {
		logger.Error("token issue failed", zap.Error(err))
		response.InternalError(&c.Controller, c.traceID())
		return
	}
	response.Success(&c.Controller, tokens, c.traceID())
}

// Me returns the authenticated user's profile.
func (c *AuthController) Me() {
	user, err := userService.GetUser(db, c.userID())
	if err != nil {
		response.FromError(&c.Controller, err, c.traceID())
		return
	}
	response.Success(&c.Controller, user.Public(), c.traceID())
}

type profileRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

// UpdateProfile changes username and/or email.
func (c *AuthController) UpdateProfile() {
	var req profileRequest
	if err := c.parseBody(&req); err != nil {
		response.BadRequest(&c.Controller, "invalid JSON body", c.traceID())
		return
	}

	user, err := userService.UpdateProfile(db, c.userID(), req.Username, req.Email)
	if err != nil {
		if errors.Is(err, userService.ErrUsernameTaken) || errors.Is(err, userService.ErrEmailTaken) {
			response.ErrorWithMessage(&c.Controller, 409, response.CodeConflict, err.Error(), c.traceID())
			return
		}
		response.BadRequest(&c.Controller, err.Error(), c.traceID())
		return
	}
	response.Success(&c.Controller, user.Public(), c.traceID())
}

func issueTokens(user *models.User) (*tokenResponse, error) {
	access, err := auth.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	refresh, err := auth.GenerateRefreshToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	return &tokenResponse{AccessToken: access, RefreshToken: refresh, User: user.Public()}, nil
}
