package dto

import (
	"tablebook/internal/domains/restaurant/model"
	"tablebook/shared"
	gDto "tablebook/shared/dto"
	gModel "tablebook/shared/model"
	"tablebook/shared/timezone"

	"github.com/google/uuid"
)

type Tables struct {
	TwoSeater  int `json:"twoSeater"  validate:"gte=0"`
	FourSeater int `json:"fourSeater" validate:"gte=0"`
}

func (t *Tables) FromModel(tables model.Tables) {
	t.TwoSeater = tables.TwoSeater
	t.FourSeater = tables.FourSeater
}

type CreateRestaurantRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	// Image is either a URL or a base64 data URL; data URLs are uploaded.
	Image  string `json:"image"  validate:"omitempty,mimetypes=image/png image/jpeg image/webp,maxfilesize=2"`
	Tables Tables `json:"tables"`
}

func (c *CreateRestaurantRequest) ToModel(user, imageURL string) model.Restaurant {
	return model.Restaurant{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		Image:       imageURL,
		Tables: model.Tables{
			TwoSeater:  c.Tables.TwoSeater,
			FourSeater: c.Tables.FourSeater,
		},
		Metadata: gModel.NewMetadata(timezone.Now(), user),
	}
}

type RestaurantResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Tables      Tables `json:"tables"`
	gDto.Metadata
}

func (r *RestaurantResponse) FromModel(m model.Restaurant) {
	r.ID = m.ID
	r.Name = m.Name
	r.Description = m.Description
	r.Image = m.Image
	r.Tables.FromModel(m.Tables)
	r.Metadata.FromModel(m.Metadata)
}

type GetRestaurantsResponse struct {
	Restaurants []RestaurantResponse `json:"restaurants"`
	TotalPage   int                  `json:"totalPage"`
	TotalData   int                  `json:"totalData"`
}

func (r *GetRestaurantsResponse) FromModels(models []model.Restaurant, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Restaurants = make([]RestaurantResponse, len(models))
	for i, m := range models {
		r.Restaurants[i].FromModel(m)
	}
}
