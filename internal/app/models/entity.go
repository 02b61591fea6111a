package models

import "time"

// Entity is implemented by every record type kept in a collection of the
// record store. Types that also carry timestamps opt into stamping by
// implementing CreationStamped and/or UpdateStamped.
type Entity interface {
	comparable
	GetID() string
	SetID(id string)
}

type CreationStamped interface {
	SetCreatedAt(t time.Time)
}

type UpdateStamped interface {
	SetUpdatedAt(t time.Time)
}
