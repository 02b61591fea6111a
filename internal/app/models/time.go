package models

import "time"

type TimeModel struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (t *TimeModel) SetCreatedAt(createdAt time.Time) {
	t.CreatedAt = createdAt
}

func (t *TimeModel) SetUpdatedAt(updatedAt time.Time) {
	t.UpdatedAt = updatedAt
}
