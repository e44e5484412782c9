package service

import (
	"context"
	"encoding/json"

	"github.com/oceanshop/storefront/config"
	"github.com/oceanshop/storefront/internal/domain"
	"github.com/oceanshop/storefront/internal/dto"
	"github.com/oceanshop/storefront/internal/infrastructure/identity"
	"github.com/oceanshop/storefront/pkg/errs"
	"github.com/oceanshop/storefront/pkg/utils"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

type UserServiceImpl struct {
	identity      *identity.Client
	config        *config.Config
	kafkaProducer *kafka.Conn
}

func CreateUserService(identity *identity.Client, config *config.Config, kafkaProducer *kafka.Conn) UserService {
	return &UserServiceImpl{
		identity:      identity,
		config:        config,
		kafkaProducer: kafkaProducer,
	}
}

func (s *UserServiceImpl) sessionResponse(account identity.Account) (dto.LoginResponse, error) {
	token, err := utils.CreateSessionToken(account.UID, account.Email, account.DisplayName, s.config.JWTSecret)
	if err != nil {
		log.Error().Err(err).Str("component", "sessionResponse").Msg("")
		return dto.LoginResponse{}, errs.ErrInternalServer
	}

	return dto.LoginResponse{
		Token: token,
		User: domain.User{
			UID:         account.UID,
			Email:       account.Email,
			DisplayName: account.DisplayName,
		},
	}, nil
}

// Register creates the account at the identity provider and then sets the
// display name, mirroring the sign-up flow of the storefront UI. A mismatched
// confirmation field fails before any provider call is made.
func (s *UserServiceImpl) Register(ctx context.Context, req dto.RegisterRequest) (resp dto.LoginResponse, err error) {
	if req.Password != req.ConfirmPassword {
		return resp, errs.ErrInvalidPasswordConfirmation
	}

	account, err := s.identity.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		return resp, err
	}

	if err = s.identity.UpdateDisplayName(ctx, account.UID, req.Name); err != nil {
		return resp, err
	}
	account.DisplayName = req.Name

	return s.sessionResponse(account)
}

func (s *UserServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (resp dto.LoginResponse, err error) {
	account, err := s.identity.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return resp, err
	}

	return s.sessionResponse(account)
}

func (s *UserServiceImpl) FederatedLogin(ctx context.Context, req dto.FederatedLoginRequest) (resp dto.LoginResponse, err error) {
	account, err := s.identity.SignInWithProvider(ctx, req.ProviderID, req.ProviderToken)
	if err != nil {
		return resp, err
	}

	return s.sessionResponse(account)
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, user *domain.User, req dto.UpdateProfileRequest) (resp dto.UserResponse, err error) {
	if user == nil {
		return resp, errs.ErrNotLoggedIn
	}

	if err = s.identity.UpdateDisplayName(ctx, user.UID, req.DisplayName); err != nil {
		return resp, err
	}

	s.publishUserUpdate(user.UID, req.DisplayName)

	session, err := s.sessionResponse(identity.Account{
		UID:         user.UID,
		Email:       user.Email,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		return resp, err
	}

	resp.Token = session.Token
	resp.User = session.User

	return resp, nil
}

// Logout is a client-side token discard; the session token is stateless and
// the provider session is owned by the provider.
func (s *UserServiceImpl) Logout(ctx context.Context, user *domain.User) (err error) {
	return nil
}

func (s *UserServiceImpl) publishUserUpdate(uid string, displayName string) {
	if s.kafkaProducer == nil {
		return
	}

	kafkaMsg := dto.KafkaMessage{
		EventType: "user_update",
		Data: dto.UserUpdateEvent{
			UID:         uid,
			DisplayName: displayName,
		},
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		log.Error().Err(err).Str("component", "publishUserUpdate").Msg("")
		return
	}

	if _, err := s.kafkaProducer.WriteMessages(kafka.Message{Value: jsonMsg}); err != nil {
		log.Error().Err(err).Str("component", "publishUserUpdate").Msg("")
	}
}
