package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"pronet-api/internal/application/ports"
	"pronet-api/internal/domain/media"
	domain "pronet-api/internal/domain/post"
	"pronet-api/internal/domain/user"
	"pronet-api/internal/infrastructure/mq"
)

type PostService struct {
	postRepository domain.Repository
	userRepository user.Repository
	mediaService   ports.MediaService
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewPostService(
	postRepository domain.Repository,
	userRepository user.Repository,
	mediaService ports.MediaService,
	rabbit ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.PostService {
	return &PostService{
		postRepository: postRepository,
		userRepository: userRepository,
		mediaService:   mediaService,
		mq:             rabbit,
		mCounter:       mCounter,
	}
}

func (ps *PostService) CreatePost(ctx context.Context, owner user.UUID, in ports.CreatePostInput) (*domain.Post, error) {
	id, err := ps.userRepository.FetchInternalID(ctx, owner)
	if err != nil {
		return nil, err
	}

	p := &domain.Post{
		UserUUID:      owner,
		Content:       in.Content,
		IsPublic:      in.IsPublic,
		AllowComments: in.AllowComments,
	}

	var manifest *media.UploadManifest
	if in.Media != nil {
		manifest, err = ps.mediaService.Upload(ctx, owner, media.PurposePostMedia, in.Media)
		if err != nil {
			return nil, err
		}
		url := "/uploads/" + string(media.PurposePostMedia) + "/" + manifest.Original.Name
		p.MediaURL = &url
	}

	out, err := ps.postRepository.CreatePost(ctx, id, p)
	if err != nil {
		// the row never landed, so the uploaded media must not outlive it
		ps.mediaService.Discard(ctx, manifest)
		return nil, err
	}

	if ps.mq != nil {
		payload, _ := json.Marshal(struct {
			PostID   uint64  `json:"post_id"`
			MediaURL *string `json:"media_url,omitempty"`
		}{PostID: out.ID, MediaURL: out.MediaURL})

		ps.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Action:  mq.ActionPostCreated,
			UserID:  owner.String(),
			Payload: payload,
		}
	}

	if ps.mCounter != nil {
		ps.mCounter.WithLabelValues("posts_created_total").Inc()
	}

	return out, nil
}

func (ps *PostService) FetchFeed(ctx context.Context, page int) (domain.Posts, error) {
	posts, err := ps.postRepository.FetchFeed(ctx, page)
	if err != nil {
		return nil, err
	}

	return posts, nil
}
