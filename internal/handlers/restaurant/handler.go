package restaurant

import (
	"net/http"

	"tablebook/infras/otel"
	availabilityDto "tablebook/internal/domains/availability/model/dto"
	availabilityService "tablebook/internal/domains/availability/service"
	"tablebook/internal/domains/restaurant/model/dto"
	"tablebook/internal/domains/restaurant/service"
	"tablebook/shared/constant"
	gDto "tablebook/shared/dto"
	"tablebook/shared/validator"
	"tablebook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service      service.Restaurant
	availability availabilityService.Availability
	otel         otel.Otel
}

func New(service service.Restaurant, availability availabilityService.Availability, otel otel.Otel) Handler {
	return Handler{
		service:      service,
		availability: availability,
		otel:         otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/restaurants", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRestaurants)
		routerGroup.Post("/", handler.CreateRestaurant)
		routerGroup.Get("/{id}", handler.GetRestaurant)
		routerGroup.Get("/{id}/availability", handler.CheckAvailability)
		routerGroup.Get("/{id}/slots", handler.GetDailySchedule)
	})
}

// GetRestaurants lists restaurants.
// @Summary List restaurants
// @Tags Restaurant
// @Produce json
// @Param page query int false "Page" default(1) minimum(1)
// @Param limit query int false "Page size" default(10) minimum(1) maximum(100)
// @Param sort_by query string false "name or created_at"
// @Param sort_dir query string false "ASC or DESC"
// @Success 200 {object} response.Data[dto.GetRestaurantsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/restaurants [get]
func (handler *Handler) GetRestaurants(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRestaurants")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	res, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get restaurants")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetRestaurant returns one restaurant.
// @Summary Get restaurant
// @Tags Restaurant
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {object} response.Data[dto.RestaurantResponse]
// @Failure 404 {object} response.Error
// @Router /v1/restaurants/{id} [get]
func (handler *Handler) GetRestaurant(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRestaurant")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get restaurant")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CreateRestaurant registers a restaurant with its table inventory.
// @Summary Create restaurant
// @Tags Restaurant
// @Accept json
// @Produce json
// @Param request body dto.CreateRestaurantRequest true "Create Restaurant Request"
// @Success 201 {object} response.Data[dto.RestaurantResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/restaurants [post]
// @Security BearerAuth
func (handler *Handler) CreateRestaurant(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRestaurant")
	defer scope.End()

	req := dto.CreateRestaurantRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create restaurant")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Restaurant created " + res.ID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// CheckAvailability returns free tables per type for one slot.
// @Summary Slot availability
// @Tags Restaurant
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param date query string true "YYYY-MM-DD"
// @Param time query string true "HH:00"
// @Success 200 {object} response.Data[availabilityDto.AvailabilityResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/restaurants/{id}/availability [get]
func (handler *Handler) CheckAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	var req availabilityDto.CheckRequest

	req.FromQuery(request.URL.Query())
	req.RestaurantID = chi.URLParam(request, constant.RequestParamID)

	res, err := handler.availability.Check(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetDailySchedule returns availability for every slot of a day.
// @Summary Daily schedule
// @Tags Restaurant
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param date query string true "YYYY-MM-DD"
// @Success 200 {object} response.Data[[]availabilityDto.SlotResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/restaurants/{id}/slots [get]
func (handler *Handler) GetDailySchedule(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDailySchedule")
	defer scope.End()

	var req availabilityDto.ScheduleRequest

	req.FromQuery(request.URL.Query())
	req.RestaurantID = chi.URLParam(request, constant.RequestParamID)

	res, err := handler.availability.DailySchedule(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get daily schedule")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
