package models

import "time"

type Mesa struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Capacidade int       `gorm:"not null" json:"capacidade"`
	Descricao  string    `gorm:"size:255;not null" json:"descricao"`
	Local      string    `gorm:"size:100;not null;index" json:"local"`
	Status     int       `gorm:"not null;default:1" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
