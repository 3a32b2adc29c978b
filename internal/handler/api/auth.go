package api

import (
	"errors"
	"net/http"

	reqdto "oficina-criativa/internal/handler/dto/request"
	resdto "oficina-criativa/internal/handler/dto/response"
	"oficina-criativa/internal/handler/middleware"
	"oficina-criativa/internal/pkg/config"
	"oficina-criativa/internal/pkg/cookie"
	"oficina-criativa/internal/pkg/jwt"
	"oficina-criativa/internal/usecase/commands"
	"oficina-criativa/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	userQueries  queries.UserQueries
	jwtService   *jwt.Service
	cookieCfg    config.CookieConfig
}

func NewAuthHandler(authCommands commands.AuthCommands, userQueries queries.UserQueries, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		userQueries:  userQueries,
		jwtService:   jwtService,
		cookieCfg:    cfg.Cookie,
	}
}

// @Summary Request magic link
// @Description Sends a one-shot login link to buyers with a recorded purchase
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.MagicLinkRequest true "Magic link request"
// @Success 202 {object} resdto.MagicLinkResponse
// @Failure 429 {object} map[string]string
// @Router /auth/magic-link [post]
func (h *AuthHandler) RequestMagicLink(c *gin.Context) {
	var req reqdto.MagicLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	token, err := h.authCommands.RequestMagicLink(c.Request.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrTooManyLoginRequests):
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many login requests, try again later",
			})
		case errors.Is(err, commands.ErrAuthenticationFailed):
			// Malformed email: still opaque, the caller learns nothing.
			c.JSON(http.StatusAccepted, resdto.MagicLinkResponse{OK: true})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp := resdto.MagicLinkResponse{OK: true}
	if gin.Mode() == gin.DebugMode {
		resp.Token = token
	}
	c.JSON(http.StatusAccepted, resp)
}

// @Summary Verify magic link
// @Description Consumes a login token and issues a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyMagicLinkRequest true "Verification request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 401 {object} map[string]string
// @Router /auth/verify [post]
func (h *AuthHandler) VerifyMagicLink(c *gin.Context) {
	var req reqdto.VerifyMagicLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.VerifyMagicLink(c.Request.Context(), req.Email, req.Token)
	if err != nil {
		if errors.Is(err, commands.ErrInvalidLoginToken) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired login link",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	h.respondWithSession(c, result)
}

// @Summary Admin login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, commands.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	h.respondWithSession(c, result)
}

// @Summary Refresh tokens
// @Description Rotates the access and refresh token pair
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} resdto.LoginResponse
// @Failure 401 {object} map[string]string
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req reqdto.RefreshRequest
	_ = c.ShouldBindJSON(&req)

	refreshToken := req.RefreshToken
	if refreshToken == "" {
		refreshToken = cookie.GetRefreshToken(c)
	}
	if refreshToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Refresh token required",
		})
		return
	}

	pair, err := h.authCommands.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid or expired refresh token",
		})
		return
	}

	cookie.SetTokenCookies(c, h.cookieCfg, pair.AccessToken, pair.RefreshToken,
		h.jwtService.AccessTokenDuration(), h.jwtService.RefreshTokenDuration())

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// @Summary Logout
// @Description Clears the session cookies
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookies(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Returns the authenticated user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.MeResponse
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	view, err := h.userQueries.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, queries.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.MeResponse{User: view})
}

func (h *AuthHandler) respondWithSession(c *gin.Context, result *commands.LoginResult) {
	cookie.SetTokenCookies(c, h.cookieCfg, result.TokenPair.AccessToken, result.TokenPair.RefreshToken,
		h.jwtService.AccessTokenDuration(), h.jwtService.RefreshTokenDuration())

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken:  result.TokenPair.AccessToken,
		RefreshToken: result.TokenPair.RefreshToken,
		UserID:       result.UserID.String(),
		Role:         result.Role.String(),
	})
}
