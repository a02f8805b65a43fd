package dto

import (
	"hotel/shared/model"
)

type Metadata struct {
	CreatedAt  int64  `json:"created_at"`
	ModifiedAt int64  `json:"modified_at"`
	CreatedBy  string `json:"created_by,omitempty"`
	ModifiedBy string `json:"modified_by,omitempty"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = model.CreatedAt
	m.ModifiedAt = model.ModifiedAt
	m.CreatedBy = model.CreatedBy
	m.ModifiedBy = model.ModifiedBy
}
