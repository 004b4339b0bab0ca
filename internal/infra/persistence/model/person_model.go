package model

import (
	"time"

	"github.com/google/uuid"
)

// CountryModel mirrors the 'countries' table.
type CountryModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(100);unique;not null"`
}

// TableName explicitly sets the table name for GORM.
func (CountryModel) TableName() string {
	return "countries"
}

// PersonModel mirrors the 'persons' table. The CHK_PIN constraint requires
// a 4 character PIN when the column is not null.
type PersonModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name               string     `gorm:"column:person_name;type:varchar(45)"`
	Email              string     `gorm:"type:varchar(30)"`
	DateOfBirth        *time.Time `gorm:"type:date"`
	Gender             string     `gorm:"type:varchar(10)"`
	CountryID          *uuid.UUID `gorm:"type:uuid"`
	Address            string     `gorm:"type:varchar(65)"`
	ReceiveNewsLetters bool       `gorm:"not null"`
	PIN                *string    `gorm:"column:pin;type:varchar(6)"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Country *CountryModel `gorm:"foreignKey:CountryID"`
}

// TableName explicitly sets the table name for GORM.
func (PersonModel) TableName() string {
	return "persons"
}
