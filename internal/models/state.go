package models

// State — справочник статусов лида (states). Только чтение.
type State struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

type UpdateStateRequest struct {
	StateID int `json:"id_state_id" binding:"required"`
}
