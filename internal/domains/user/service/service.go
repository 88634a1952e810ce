package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=User=MockUserService

import (
	"context"
	"fmt"

	"tablebook/config"
	"tablebook/infras/jwt"
	"tablebook/infras/otel"
	"tablebook/internal/domains/user/model"
	"tablebook/internal/domains/user/model/dto"
	"tablebook/internal/domains/user/repository"
	"tablebook/shared"
	"tablebook/shared/cache"
	"tablebook/shared/constant"
	gDto "tablebook/shared/dto"
	"tablebook/shared/failure"
	"tablebook/shared/validator"

	"github.com/rs/zerolog/log"
)

const cacheGetUser = "user:get"

type User interface {
	// Identity resolves the user behind a token. It is called by the access
	// gate on every authenticated request.
	Identity(ctx context.Context, id string) (dto.UserResponse, error)
	Create(ctx context.Context, req dto.CreateUserRequest) (dto.UserResponse, error)
	IssueToken(ctx context.Context, id string) (*jwt.Token, error)
}

type serviceImpl struct {
	repo  repository.User
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	jwt   jwt.JWT
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, jwt jwt.JWT) User {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		jwt:   jwt,
	}
}

func (s *serviceImpl) Identity(ctx context.Context, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Identity")
	defer scope.Finish(&err)

	if !shared.IsValidID(id) {
		return res, failure.Unauthorized("User no longer exists") //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetUser, id)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		return res, nil
	}

	user, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if !user.Exists() {
		return res, failure.Unauthorized("User no longer exists") //nolint:wrapcheck
	}

	res.FromModel(user)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save user to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateUserRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Create")
	defer scope.Finish(&err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	emailFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Email,
				Table:    model.TableName,
			},
		},
	}

	exists, err := s.repo.Exist(ctx, emailFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return res, failure.BadRequestFromString("email already registered") //nolint:wrapcheck
	}

	user := req.ToModel(gDto.CallerFromContext(ctx).UserID)

	if err = s.repo.Insert(ctx, user); err != nil {
		log.Error().Err(err).Msg("failed to insert user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) IssueToken(ctx context.Context, id string) (token *jwt.Token, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.IssueToken")
	defer scope.Finish(&err)

	if !shared.IsValidID(id) {
		return nil, failure.NotFound("User not found") //nolint:wrapcheck
	}

	user, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName), model.FieldID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !user.Exists() {
		return nil, failure.NotFound("User not found") //nolint:wrapcheck
	}

	token, err = s.jwt.Issue(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return token, nil
}
