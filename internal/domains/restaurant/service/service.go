package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Restaurant=MockRestaurantService

import (
	"context"
	"fmt"
	"strings"

	"tablebook/config"
	"tablebook/infras/otel"
	"tablebook/infras/s3"
	"tablebook/internal/domains/restaurant/model"
	"tablebook/internal/domains/restaurant/model/dto"
	"tablebook/internal/domains/restaurant/repository"
	"tablebook/shared"
	"tablebook/shared/base64"
	"tablebook/shared/cache"
	"tablebook/shared/constant"
	gDto "tablebook/shared/dto"
	"tablebook/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetRestaurant    = "restaurant:get"
	cacheGetAllRestaurant = "restaurant:gets"

	defaultSortColumn = model.TableName + "." + model.FieldName
)

var sortableColumns = map[string]string{
	model.FieldName:      model.TableName + "." + model.FieldName,
	model.FieldCreatedAt: model.TableName + "." + model.FieldCreatedAt,
}

type Restaurant interface {
	Create(ctx context.Context, req dto.CreateRestaurantRequest) (dto.RestaurantResponse, error)
	Get(ctx context.Context, id string) (dto.RestaurantResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetRestaurantsResponse, error)
}

type serviceImpl struct {
	repo  repository.Restaurant
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Restaurant, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Restaurant {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRestaurantRequest) (res dto.RestaurantResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.Finish(&err)

	caller := gDto.CallerFromContext(ctx)
	if !caller.IsAdmin {
		return res, failure.ForbiddenError
	}

	imageURL, uploaded, err := s.storeImage(ctx, req.Image)
	if err != nil {
		return res, err
	}

	restaurant := req.ToModel(caller.UserID, imageURL)

	if err = s.repo.Insert(ctx, restaurant); err != nil {
		log.Error().Err(err).Msg("failed to insert restaurant")

		if uploaded {
			if delErr := s.s3.Delete(ctx, imageURL); delErr != nil {
				log.Error().Err(delErr).Str("url", imageURL).Msg("failed to remove orphaned restaurant image")
			}
		}

		return res, fmt.Errorf("failed to create restaurant: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllRestaurant)
	}()

	res.FromModel(restaurant)

	return res, nil
}

// storeImage uploads base64 data URLs and passes any other value through.
func (s *serviceImpl) storeImage(ctx context.Context, image string) (url string, uploaded bool, err error) {
	if !base64.IsDataURL(image) {
		return image, false, nil
	}

	contentType, data, err := base64.Decode(image)
	if err != nil {
		return constant.Empty, false, failure.BadRequest(err) //nolint:wrapcheck
	}

	fileName := uuid.NewString()
	if _, ext, found := strings.Cut(contentType, "/"); found && ext != "" {
		fileName += "." + ext
	}

	url, err = s.s3.Upload(ctx, model.EntityName, fileName, contentType, data)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload restaurant image")

		return constant.Empty, false, fmt.Errorf("failed to upload image: %w", err)
	}

	return url, true, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RestaurantResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.Finish(&err)

	if !shared.IsValidID(id) {
		return res, failure.NotFound("Restaurant not found") //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetRestaurant, id)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for restaurant")

		return res, nil
	}

	restaurant, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get restaurant")

		return res, fmt.Errorf("failed to get restaurant: %w", err)
	}

	if !restaurant.Exists() {
		return res, failure.NotFound("Restaurant not found") //nolint:wrapcheck
	}

	res.FromModel(restaurant)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save restaurant to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetRestaurantsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.Finish(&err)

	params = normalizeSort(params)
	filter := gDto.FilterGroup{}
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRestaurant, params, filter)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for restaurants")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count restaurants")

		return res, fmt.Errorf("failed to count restaurants: %w", err)
	}

	restaurants, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get restaurants")

		return res, fmt.Errorf("failed to get restaurants: %w", err)
	}

	res.FromModels(restaurants, total, params.Limit)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save restaurants to cache")
		}
	}()

	return res, nil
}

// normalizeSort maps sort_by onto a known column so it is safe to splice into
// ORDER BY.
func normalizeSort(params gDto.QueryParams) gDto.QueryParams {
	column, ok := sortableColumns[params.SortBy]
	if !ok {
		column = defaultSortColumn
	}

	params.SortBy = column

	if params.SortDir == constant.Empty {
		params.SortDir = gDto.SortDirAsc
	}

	return params
}
