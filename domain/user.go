package domain

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	ID                uint64         `json:"id" gorm:"primaryKey;autoIncrement"`
	Name              string         `json:"name" gorm:"column:name;not null"`
	Email             string         `json:"email" gorm:"column:email;unique;not null"`
	Phone             string         `json:"phone" gorm:"column:phone;unique"`
	Password          string         `json:"-" gorm:"column:password;not null"`
	DonationCount     int            `json:"donationCount" gorm:"column:donation_count;default:0"`
	Points            int            `json:"points" gorm:"column:points;default:0"`
	IgnoredItems      datatypes.JSON `json:"ignoredItems" gorm:"column:ignored_items;type:jsonb"`
	LastLatitude      *float64       `json:"lastLatitude" gorm:"column:last_latitude"`
	LastLongitude     *float64       `json:"lastLongitude" gorm:"column:last_longitude"`
	LocationUpdatedAt *time.Time     `json:"locationUpdatedAt" gorm:"column:location_updated_at"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
