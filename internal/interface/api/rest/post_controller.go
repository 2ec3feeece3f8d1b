package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pronet-api/internal/application/ports"
	"pronet-api/internal/infrastructure/jwt"
	"pronet-api/internal/interface/api/rest/dto/post"
	"pronet-api/internal/interface/api/rest/middleware"
	"pronet-api/internal/interface/api/rest/validator"
)

const maxPostContentLen = 4000

type PostController struct {
	postService ports.PostService
	logger      *zap.Logger
}

func NewPostController(
	r *gin.Engine,
	postService ports.PostService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *PostController {
	pc := &PostController{
		postService: postService,
		logger:      logger,
	}

	r.GET(RouteFeed, pc.GetFeedHandler)
	r.POST(RoutePosts, middleware.AuthMiddleware(jwtService), pc.CreatePostHandler)

	return pc
}

func (pc *PostController) GetFeedHandler(c *gin.Context) {
	page, err := validator.ValidatePage(c.Query("page"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	posts, err := pc.postService.FetchFeed(c.Request.Context(), page)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get feed"},
		)
		pc.logger.Error("FetchFeed() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, post.ResponseData{
		Data: post.ToResponsePosts(posts),
	})
}

func (pc *PostController) CreatePostHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.GetString(middleware.CtxUserID))
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "invalid token subject"},
		)
		return
	}

	content := c.PostForm("content")
	if content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}
	if len(content) > maxPostContentLen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content too long"})
		return
	}

	in := ports.CreatePostInput{
		Content:       content,
		IsPublic:      formBool(c.PostForm("is_public"), true),
		AllowComments: formBool(c.PostForm("allow_comments"), true),
	}

	// media is optional; a post can be text only
	if fh, err := c.FormFile("media"); err == nil {
		in.Media = fh
	}

	p, err := pc.postService.CreatePost(c.Request.Context(), uuid, in)
	if err != nil {
		if status := mediaErrStatus(err); status != http.StatusInternalServerError {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a post"},
		)
		pc.logger.Error("CreatePost() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, post.ToResponsePost(*p))
}

func formBool(v string, def bool) bool {
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
