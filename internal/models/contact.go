package models

import (
	"strings"
	"time"
)

// Contact — запись формы обратной связи (лид). JSON-ключи совпадают
// с колонками таблицы contactos, фронт опирается на них.
type Contact struct {
	ID        int       `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"msg"`
	CreatedAt time.Time `json:"create_at"`
	StateID   int       `json:"id_state_id"`
}

type ContactRequest struct {
	FullName string `json:"fullName" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,phone"`
	Message  string `json:"msg" binding:"required,min=5,max=1000"`
	Captcha  string `json:"captcha" binding:"required"`
}

// Normalize обрезает пробелы до валидации: ограничения длины
// применяются к тому значению, которое попадёт в БД.
func (r *ContactRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(r.Email)
	r.Message = strings.TrimSpace(r.Message)
}

type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}
