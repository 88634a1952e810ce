package dto

import (
	"tablebook/shared/constant"
	"tablebook/shared/model"
	"tablebook/shared/timezone"
)

// Metadata is the audit block embedded in restaurant and reservation responses.
// Timestamps are rendered in the service timezone.
type Metadata struct {
	CreatedAt  string `json:"createdAt"`
	ModifiedAt string `json:"modifiedAt"`
	CreatedBy  string `json:"createdBy"`
	ModifiedBy string `json:"modifiedBy"`
}

func (m *Metadata) FromModel(metadata model.Metadata) {
	m.CreatedAt = timezone.Format(metadata.CreatedAt, constant.DateFormat)
	m.ModifiedAt = timezone.Format(metadata.ModifiedAt, constant.DateFormat)
	m.CreatedBy = metadata.CreatedBy
	m.ModifiedBy = metadata.ModifiedBy
}
