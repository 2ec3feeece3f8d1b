package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pronet-api/internal/application/ports"
	"pronet-api/internal/application/services"
	"pronet-api/internal/domain/media"
	"pronet-api/internal/infrastructure/jwt"
	"pronet-api/internal/interface/api/rest/dto/profile"
	"pronet-api/internal/interface/api/rest/middleware"
	"pronet-api/internal/interface/api/rest/validator"
)

type ProfileController struct {
	profileService ports.ProfileService
	mediaService   ports.MediaService
	logger         *zap.Logger
}

func NewProfileController(
	r *gin.Engine,
	profileService ports.ProfileService,
	mediaService ports.MediaService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *ProfileController {
	pc := &ProfileController{
		profileService: profileService,
		mediaService:   mediaService,
		logger:         logger,
	}

	r.GET(RouteProfile, middleware.AuthMiddleware(jwtService), pc.GetProfileHandler)
	r.PUT(RouteProfile, middleware.AuthMiddleware(jwtService), pc.UpdateProfileHandler)
	r.POST(RouteProfileImage, middleware.AuthMiddleware(jwtService), pc.UploadProfileImageHandler)

	return pc
}

func (pc *ProfileController) GetProfileHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.GetString(middleware.CtxUserID))
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "invalid token subject"},
		)
		return
	}

	p, err := pc.profileService.GetOrCreate(c.Request.Context(), uuid)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(
				http.StatusNotFound,
				gin.H{"error": "user not found"},
			)
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get profile"},
		)
		pc.logger.Error("GetOrCreate() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, profile.ToResponseProfile(*p))
}

func (pc *ProfileController) UpdateProfileHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.GetString(middleware.CtxUserID))
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "invalid token subject"},
		)
		return
	}

	var req profile.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	p, err := pc.profileService.UpdateProfile(c.Request.Context(), uuid, profile.ToDomainProfile(req))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update profile"},
		)
		pc.logger.Error("UpdateProfile() error", zap.Error(err))
		return
	}

	if p == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "profile not found"},
		)
		return
	}

	c.JSON(http.StatusOK, profile.ToResponseProfile(*p))
}

func (pc *ProfileController) UploadProfileImageHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.GetString(middleware.CtxUserID))
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "invalid token subject"},
		)
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	manifest, err := pc.mediaService.Upload(c.Request.Context(), uuid, media.PurposeAvatar, fh)
	if err != nil {
		if status := mediaErrStatus(err); status != http.StatusInternalServerError {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to store image"},
		)
		pc.logger.Error("Upload() error", zap.Error(err))
		return
	}

	if err = pc.profileService.SetAvatar(c.Request.Context(), uuid, manifest.Original.Name); err != nil {
		// the profile row never advanced, so neither may the assets
		pc.mediaService.Discard(c.Request.Context(), manifest)
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(
				http.StatusNotFound,
				gin.H{"error": "user not found"},
			)
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to set avatar"},
		)
		pc.logger.Error("SetAvatar() error", zap.Error(err))
		return
	}

	resp := gin.H{
		"image_url": "/uploads/" + string(media.PurposeAvatar) + "/" + manifest.Original.Name,
		"filename":  manifest.Original.Name,
	}
	if thumb := manifest.Derivative("thumb"); thumb != nil {
		resp["thumbnail_url"] = "/uploads/" + string(media.PurposeAvatar) + "/" + thumb.Name
	}

	c.JSON(http.StatusCreated, resp)
}
