package dto

import "time"

type ItemDTO struct {
	ID        uint      `json:"id"`
	BoxID     uint      `json:"box_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
