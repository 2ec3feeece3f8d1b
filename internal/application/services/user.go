package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"pronet-api/internal/application/ports"
	"pronet-api/internal/domain/profile"
	domain "pronet-api/internal/domain/user"
	"pronet-api/internal/infrastructure/mq"
)

const defaultRole = "member"

type UserService struct {
	userRepository    domain.Repository
	profileRepository profile.Repository
	mq                ports.RabbitMQ
	mCounter          *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	profileRepository profile.Repository,
	rabbit ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository:    userRepository,
		profileRepository: profileRepository,
		mq:                rabbit,
		mCounter:          mCounter,
	}
}

func (us *UserService) FindUserByID(ctx context.Context, uuid domain.UUID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, uuid)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByLogin(ctx, login)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) SignupUser(ctx context.Context, username, email, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	uRet, err := us.userRepository.CreateUser(ctx, domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: &hashStr,
		Role:         defaultRole,
	})
	if err != nil {
		return nil, err
	}

	// every account gets a profile row up front so profile reads never
	// race signup
	id, err := us.userRepository.FetchInternalID(ctx, uRet.UUID)
	if err != nil {
		return nil, err
	}
	if _, err = us.profileRepository.GetOrCreate(ctx, id, username); err != nil {
		return nil, err
	}

	if us.mq != nil {
		payload, _ := json.Marshal(struct {
			Username string `json:"username"`
			Email    string `json:"email"`
		}{Username: uRet.Username, Email: uRet.Email})

		us.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Action:  mq.ActionUserCreated,
			UserID:  uRet.UUID.String(),
			Payload: payload,
		}
	}

	if us.mCounter != nil {
		us.mCounter.WithLabelValues("user_created_total").Inc()
	}

	return uRet, nil
}
