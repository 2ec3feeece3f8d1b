package rest

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pronet-api/internal/application/ports"
	"pronet-api/internal/domain/media"
)

func setupMediaRouter(t *testing.T, ms ports.MediaService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	mc := &MediaController{
		mediaService: ms,
		logger:       zap.NewNop(),
	}
	r.GET(RouteUploads, mc.GetUploadHandler)
	return r
}

func TestMediaController_GetUploadHandler(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		mockMS     func() ports.MediaService
		wantStatus int
		wantBody   string
		wantType   string
	}{
		{
			name:       "404 unknown purpose",
			path:       "/uploads/banner/x.png",
			mockMS:     func() ports.MediaService { return &FakeMediaService{} },
			wantStatus: http.StatusNotFound,
		},
		{
			name: "404 missing asset",
			path: "/uploads/avatar/profile_x_00.png",
			mockMS: func() ports.MediaService {
				return &FakeMediaService{
					FetchFunc: func(ctx context.Context, p media.Purpose, name string) ([]byte, string, error) {
						return nil, "", media.ErrNotFound
					},
				}
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "500 store failure",
			path: "/uploads/avatar/profile_x_00.png",
			mockMS: func() ports.MediaService {
				return &FakeMediaService{
					FetchFunc: func(ctx context.Context, p media.Purpose, name string) ([]byte, string, error) {
						return nil, "", errors.New("disk error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name: "200 avatar bytes",
			path: "/uploads/avatar/profile_x_00.png",
			mockMS: func() ports.MediaService {
				return &FakeMediaService{
					FetchFunc: func(ctx context.Context, p media.Purpose, name string) ([]byte, string, error) {
						assert.Equal(t, media.PurposeAvatar, p)
						assert.Equal(t, "profile_x_00.png", name)
						return []byte("png-bytes"), "image/png", nil
					},
				}
			},
			wantStatus: http.StatusOK,
			wantBody:   "png-bytes",
			wantType:   "image/png",
		},
		{
			name: "200 post media bytes",
			path: "/uploads/post-media/post_x_00.jpg",
			mockMS: func() ports.MediaService {
				return &FakeMediaService{
					FetchFunc: func(ctx context.Context, p media.Purpose, name string) ([]byte, string, error) {
						assert.Equal(t, media.PurposePostMedia, p)
						return []byte("jpg-bytes"), "image/jpeg", nil
					},
				}
			},
			wantStatus: http.StatusOK,
			wantBody:   "jpg-bytes",
			wantType:   "image/jpeg",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupMediaRouter(t, tt.mockMS())
			rr := doReq(t, r, http.MethodGet, tt.path, nil, nil)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rr.Body.String())
				assert.Equal(t, tt.wantType, rr.Header().Get("Content-Type"))
			}
		})
	}
}

func TestMediaErrStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"empty payload", media.ErrEmptyPayload, http.StatusBadRequest},
		{"too large", media.ErrPayloadTooLarge, http.StatusBadRequest},
		{"bad format", media.ErrUnsupportedFormat, http.StatusBadRequest},
		{"unknown purpose", media.ErrUnknownPurpose, http.StatusBadRequest},
		{"decode failure", media.ErrDecodeFailure, http.StatusUnprocessableEntity},
		{"color mode", media.ErrUnsupportedColorMode, http.StatusUnprocessableEntity},
		{"derivative failure", media.ErrDerivativeFailure, http.StatusUnprocessableEntity},
		{"write failure", media.ErrWriteFailure, http.StatusInternalServerError},
		{"no randomness", media.ErrRandomnessUnavailable, http.StatusInternalServerError},
		{"plain error", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mediaErrStatus(tt.err))
		})
	}
}
