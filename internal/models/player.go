package models

import "time"

type Player struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	FullName    string       `gorm:"size:255;not null" json:"full_name"`
	Birthdate   string       `gorm:"size:10" json:"birthdate"`
	Position    string       `gorm:"size:100" json:"position"`
	Evaluations []Evaluation `gorm:"foreignKey:PlayerID" json:"-"`
	CreatedAt   time.Time    `json:"created_at"`
}
