package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Bootcamp struct {
	gorm.Model
	Name          string         `gorm:"column:name;not null"`
	Slug          string         `gorm:"column:slug;uniqueIndex;not null"`
	Description   string         `gorm:"column:description;not null"`
	Website       string         `gorm:"column:website"`
	Phone         string         `gorm:"column:phone"`
	Email         string         `gorm:"column:email"`
	Address       string         `gorm:"column:address"`
	Zipcode       string         `gorm:"column:zipcode;index"`
	Latitude      float64        `gorm:"column:latitude"`
	Longitude     float64        `gorm:"column:longitude"`
	Careers       datatypes.JSON `gorm:"column:careers"`
	AverageCost   float64        `gorm:"column:average_cost"`
	Housing       bool           `gorm:"column:housing;default:false"`
	JobAssistance bool           `gorm:"column:job_assistance;default:false"`
	JobGuarantee  bool           `gorm:"column:job_guarantee;default:false"`
	AcceptGI      bool           `gorm:"column:accept_gi;default:false"`
	Photo         string         `gorm:"column:photo;default:no-photo.jpg"`
	Courses       []Course       `gorm:"foreignKey:BootcampID"`
}
