package models

// Box is a named moving box. Items are ordered by creation time ascending.
type Box struct {
	BaseModel
	Name  string `gorm:"type:varchar(255);not null" json:"name"`
	Items []Item `gorm:"foreignKey:BoxID;constraint:OnDelete:CASCADE" json:"items"`
}
