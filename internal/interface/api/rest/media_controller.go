package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pronet-api/internal/application/ports"
	"pronet-api/internal/domain/media"
)

type MediaController struct {
	mediaService ports.MediaService
	logger       *zap.Logger
}

func NewMediaController(
	r *gin.Engine,
	mediaService ports.MediaService,
	logger *zap.Logger,
) *MediaController {
	mc := &MediaController{
		mediaService: mediaService,
		logger:       logger,
	}

	r.GET(RouteUploads, mc.GetUploadHandler)

	return mc
}

func (mc *MediaController) GetUploadHandler(c *gin.Context) {
	purpose, ok := media.ParsePurpose(c.Param("purpose"))
	if !ok {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "not found"},
		)
		return
	}

	data, contentType, err := mc.mediaService.Fetch(c.Request.Context(), purpose, c.Param("name"))
	if err != nil {
		if errors.Is(err, media.ErrNotFound) {
			c.JSON(
				http.StatusNotFound,
				gin.H{"error": "not found"},
			)
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to read asset"},
		)
		mc.logger.Error("Fetch() error", zap.Error(err))
		return
	}

	c.Data(http.StatusOK, contentType, data)
}

// mediaErrStatus maps upload pipeline failures onto response codes:
// bad input 400, undecodable or unprocessable content 422, anything
// infrastructural 500.
func mediaErrStatus(err error) int {
	switch {
	case media.IsClientError(err):
		return http.StatusBadRequest
	case media.IsProcessingError(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
