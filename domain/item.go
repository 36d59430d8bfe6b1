package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.items (
//     id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     owner_id    BIGINT NOT NULL,
//     item_type   TEXT NOT NULL,           -- 'donation' | 'request'
//     item_name   TEXT NOT NULL,
//     category    TEXT,
//     gender      TEXT DEFAULT 'other',    -- 'male' | 'female' | 'other'
//     profession  TEXT,
//     age         INT,
//     priority    BOOLEAN DEFAULT FALSE,
//     is_claimed  BOOLEAN DEFAULT FALSE,
//     claimed_by  BIGINT,
//     longitude   DOUBLE PRECISION NOT NULL,
//     latitude    DOUBLE PRECISION NOT NULL,
//     images      JSONB,
//     created_at  TIMESTAMPTZ DEFAULT NOW()
// );
// CREATE INDEX idx_items_type_coords ON items (item_type, latitude, longitude);

const (
	ItemTypeDonation = "donation"
	ItemTypeRequest  = "request"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

type Item struct {
	ID         uint64         `json:"id" gorm:"primaryKey;autoIncrement"`
	OwnerID    uint64         `json:"ownerId" gorm:"column:owner_id;not null"`
	ItemType   string         `json:"itemType" gorm:"column:item_type;type:text;not null"`
	ItemName   string         `json:"itemName" gorm:"column:item_name;type:text;not null"`
	Category   string         `json:"category" gorm:"column:category;type:text"`
	Gender     string         `json:"gender" gorm:"column:gender;type:text;default:other"`
	Profession string         `json:"profession" gorm:"column:profession;type:text"`
	Age        int            `json:"age" gorm:"column:age"`
	Priority   bool           `json:"priority" gorm:"column:priority;default:false"`
	IsClaimed  bool           `json:"isClaimed" gorm:"column:is_claimed;default:false"`
	ClaimedBy  *uint64        `json:"claimedBy" gorm:"column:claimed_by"`
	Longitude  float64        `json:"longitude" gorm:"column:longitude;not null"`
	Latitude   float64        `json:"latitude" gorm:"column:latitude;not null"`
	Images     datatypes.JSON `json:"images" gorm:"column:images;type:jsonb"`
	CreatedAt  time.Time      `json:"createdAt" gorm:"column:created_at"`
}

func (Item) TableName() string {
	return "items"
}
