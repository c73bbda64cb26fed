package models

// Item belongs to exactly one Box for its whole lifetime.
type Item struct {
	BaseModel
	BoxID uint   `gorm:"index;not null" json:"box_id"`
	Name  string `gorm:"type:varchar(255);not null" json:"name"`
}
