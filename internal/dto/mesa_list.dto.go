package dto

import "time"

type MesaListDTO struct {
	ID         uint      `json:"id"`
	Capacidade int       `json:"capacidade"`
	Descricao  string    `json:"descricao"`
	Local      string    `json:"local"`
	Status     int       `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
