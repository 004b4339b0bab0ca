package entity

import "github.com/google/uuid"

// Country is a selectable country a person can belong to.
// Names are unique, which the country service checks before inserting.
type Country struct {
	ID   uuid.UUID
	Name string
}
