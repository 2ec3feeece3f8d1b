package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pronet-api/internal/application/ports"
	"pronet-api/internal/domain/media"
	"pronet-api/internal/domain/post"
	domain "pronet-api/internal/domain/user"
	jwtSvc "pronet-api/internal/infrastructure/jwt"
	postDTO "pronet-api/internal/interface/api/rest/dto/post"
	"pronet-api/internal/interface/api/rest/middleware"
)

func setupPostRouter(t *testing.T, ps ports.PostService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	j := jwtSvc.New(testSecret)
	pc := &PostController{
		postService: ps,
		logger:      zap.NewNop(),
	}
	r.GET(RouteFeed, pc.GetFeedHandler)
	r.POST(RoutePosts, middleware.AuthMiddleware(j), pc.CreatePostHandler)
	return r
}

func somePost(owner domain.UUID) *post.Post {
	return &post.Post{
		ID:            42,
		UserUUID:      owner,
		Content:       "hello network",
		IsPublic:      true,
		AllowComments: true,
		CreatedAt:     time.Now().UTC(),
	}
}

func TestPostController_GetFeedHandler(t *testing.T) {
	tests := []struct {
		name       string
		mockPS     func() ports.PostService
		wantStatus int
		wantLen    int
	}{
		{
			name: "500 service error",
			mockPS: func() ports.PostService {
				return &FakePostService{
					FetchFeedFunc: func(ctx context.Context, page int) (post.Posts, error) {
						return nil, errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name: "200 success",
			mockPS: func() ports.PostService {
				return &FakePostService{
					FetchFeedFunc: func(ctx context.Context, page int) (post.Posts, error) {
						return post.Posts{somePost(uuid.New()), somePost(uuid.New())}, nil
					},
				}
			},
			wantStatus: http.StatusOK,
			wantLen:    2,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupPostRouter(t, tt.mockPS())
			rr := doReq(t, r, http.MethodGet, RouteFeed+"?page=1", nil, nil)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantStatus == http.StatusOK {
				var resp postDTO.ResponseData
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Len(t, resp.Data, tt.wantLen)
			}
		})
	}
}

func TestPostController_CreatePostHandler(t *testing.T) {
	owner := uuid.New()

	t.Run("401 missing header", func(t *testing.T) {
		r := setupPostRouter(t, &FakePostService{})
		rr := doMultipartReq(t, r, http.MethodPost, RoutePosts, map[string]string{"content": "hi"}, "", "", nil, nil)
		require.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("400 missing content", func(t *testing.T) {
		r := setupPostRouter(t, &FakePostService{})
		rr := doMultipartReq(t, r, http.MethodPost, RoutePosts, nil, "", "", nil, authHeader(t, owner.String()))
		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("201 text only", func(t *testing.T) {
		ps := &FakePostService{
			CreatePostFunc: func(ctx context.Context, o domain.UUID, in ports.CreatePostInput) (*post.Post, error) {
				assert.Equal(t, owner, o)
				assert.Equal(t, "hello network", in.Content)
				assert.Nil(t, in.Media)
				assert.True(t, in.IsPublic)
				assert.True(t, in.AllowComments)
				return somePost(o), nil
			},
		}
		r := setupPostRouter(t, ps)
		rr := doMultipartReq(t, r, http.MethodPost, RoutePosts, map[string]string{"content": "hello network"}, "", "", nil, authHeader(t, owner.String()))
		require.Equal(t, http.StatusCreated, rr.Code)

		var resp postDTO.Post
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, uint64(42), resp.ID)
	})

	t.Run("201 with media and flags", func(t *testing.T) {
		ps := &FakePostService{
			CreatePostFunc: func(ctx context.Context, o domain.UUID, in ports.CreatePostInput) (*post.Post, error) {
				require.NotNil(t, in.Media)
				assert.Equal(t, "pic.png", in.Media.Filename)
				assert.False(t, in.IsPublic)
				assert.False(t, in.AllowComments)
				p := somePost(o)
				url := "/uploads/post-media/post_abc_00ff.png"
				p.MediaURL = &url
				p.IsPublic = false
				return p, nil
			},
		}
		r := setupPostRouter(t, ps)
		fields := map[string]string{
			"content":        "with pic",
			"is_public":      "false",
			"allow_comments": "false",
		}
		rr := doMultipartReq(t, r, http.MethodPost, RoutePosts, fields, "media", "pic.png", []byte("png-ish"), authHeader(t, owner.String()))
		require.Equal(t, http.StatusCreated, rr.Code)

		var resp postDTO.Post
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.NotNil(t, resp.MediaURL)
		assert.Equal(t, "/uploads/post-media/post_abc_00ff.png", *resp.MediaURL)
	})

	t.Run("400 media rejected by pipeline", func(t *testing.T) {
		ps := &FakePostService{
			CreatePostFunc: func(ctx context.Context, o domain.UUID, in ports.CreatePostInput) (*post.Post, error) {
				return nil, media.ErrPayloadTooLarge
			},
		}
		r := setupPostRouter(t, ps)
		rr := doMultipartReq(t, r, http.MethodPost, RoutePosts, map[string]string{"content": "x"}, "media", "big.png", []byte("x"), authHeader(t, owner.String()))
		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("422 media fails processing", func(t *testing.T) {
		ps := &FakePostService{
			CreatePostFunc: func(ctx context.Context, o domain.UUID, in ports.CreatePostInput) (*post.Post, error) {
				return nil, media.ErrDerivativeFailure
			},
		}
		r := setupPostRouter(t, ps)
		rr := doMultipartReq(t, r, http.MethodPost, RoutePosts, map[string]string{"content": "x"}, "media", "a.png", []byte("x"), authHeader(t, owner.String()))
		require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})

	t.Run("500 db error", func(t *testing.T) {
		ps := &FakePostService{
			CreatePostFunc: func(ctx context.Context, o domain.UUID, in ports.CreatePostInput) (*post.Post, error) {
				return nil, errors.New("db error")
			},
		}
		r := setupPostRouter(t, ps)
		rr := doMultipartReq(t, r, http.MethodPost, RoutePosts, map[string]string{"content": "x"}, "", "", nil, authHeader(t, owner.String()))
		require.Equal(t, http.StatusInternalServerError, rr.Code)

		var resp map[string]any
		_ = json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.Equal(t, "failed to create a post", resp["error"])
	})
}
