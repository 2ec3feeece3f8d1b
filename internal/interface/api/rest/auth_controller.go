package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pronet-api/internal/application/ports"
	"pronet-api/internal/application/services"
	userDB "pronet-api/internal/infrastructure/db/postgres/user"
	"pronet-api/internal/infrastructure/jwt"
	"pronet-api/internal/interface/api/rest/dto/auth"
	"pronet-api/internal/interface/api/rest/middleware"
	"pronet-api/internal/interface/api/rest/validator"
)

type AuthController struct {
	logger      *zap.Logger
	userService ports.UserService
	authService ports.Auth
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	userService ports.UserService,
	authService ports.Auth,
	jwtService *jwt.Service,
) *AuthController {
	ac := &AuthController{
		logger:      logger,
		userService: userService,
		authService: authService,
	}

	r.POST(RouteSignup, ac.SignupHandler)
	r.POST(RouteLogin, ac.LoginHandler)
	r.GET(RouteMe, middleware.AuthMiddleware(jwtService), ac.MeHandler)

	return ac
}

func (ac *AuthController) MeHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.GetString(middleware.CtxUserID))
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "invalid token subject"},
		)
		return
	}

	u, err := ac.userService.FindUserByID(c.Request.Context(), uuid)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		ac.logger.Error("FindUserByID() error", zap.Error(err))
		return
	}
	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"uuid":     u.UUID,
		"username": u.Username,
		"email":    u.Email,
		"role":     u.Role,
	})
}

func (ac *AuthController) SignupHandler(c *gin.Context) {
	var req auth.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateSignup(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	u, err := ac.userService.SignupUser(
		c.Request.Context(),
		strings.ToLower(strings.TrimSpace(req.Username)),
		strings.ToLower(strings.TrimSpace(req.Email)),
		req.Password,
	)
	if err != nil {
		if errors.Is(err, userDB.ErrUserAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to sign up"},
		)
		ac.logger.Error("SignupUser() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"uuid":     u.UUID,
		"username": u.Username,
		"email":    u.Email,
	})
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateLogin(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	u, err := ac.userService.FindByLogin(c.Request.Context(), strings.ToLower(strings.TrimSpace(req.Login)))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		ac.logger.Error("FindByLogin() error", zap.Error(err))
		return
	}
	if u == nil {
		// same answer as a bad password; do not leak account existence
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "invalid credentials"},
		)
		return
	}

	token, err := ac.authService.GenerateToken(u, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		ac.logger.Error("GenerateToken() error", zap.Error(err), zap.Stringer("user_uuid", u.UUID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "Bearer",
	})
}
