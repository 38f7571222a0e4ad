package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Profile struct {
	gorm.Model
	UserID uint              `gorm:"uniqueIndex;not null"`
	Bio    string            `gorm:"type:text"`
	Avatar string            `gorm:"default:''"`
	Links  datatypes.JSONMap
}
