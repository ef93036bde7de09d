package models

import "time"

// Evaluation is one scouting report for a player. Score is a pointer so an
// unscored evaluation stays NULL in the database, distinct from a score of 0.
type Evaluation struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PlayerID      uint      `gorm:"not null;index" json:"player_id"`
	Player        Player    `gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE" json:"-"`
	EvaluatorName string    `gorm:"size:255" json:"evaluator_name"`
	Date          string    `gorm:"size:10;not null" json:"date"`
	Notes         string    `json:"notes"`
	Score         *int      `json:"score"`
	CreatedAt     time.Time `json:"created_at"`
}
