package services

import (
	"database/sql"
	"errors"
	"math"
	"strings"

	"github.com/Aysaleh/player-app/internal/models"

	"gorm.io/gorm"
)

var (
	ErrFullNameRequired = errors.New("full_name is required")
	ErrPlayerNotFound   = errors.New("player not found")
)

type PlayerService struct {
	db *gorm.DB
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{db: db}
}

// ListPlayers returns players most-recently-created first.
func (s *PlayerService) ListPlayers() ([]models.Player, error) {
	var players []models.Player
	if err := s.db.Order("id DESC").Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (s *PlayerService) CreatePlayer(fullName, birthdate, position string) (*models.Player, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, ErrFullNameRequired
	}

	player := models.Player{
		FullName:  fullName,
		Birthdate: birthdate,
		Position:  position,
	}
	if err := s.db.Create(&player).Error; err != nil {
		return nil, err
	}
	return &player, nil
}

// DeletePlayer removes the player's evaluations and then the player inside
// one transaction, so a failed player delete never strands already-deleted
// evaluations.
func (s *PlayerService) DeletePlayer(id uint) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Where("player_id = ?", id).Delete(&models.Evaluation{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	result := tx.Delete(&models.Player{}, id)
	if result.Error != nil {
		tx.Rollback()
		return result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return ErrPlayerNotFound
	}

	return tx.Commit().Error
}

// ListEvaluations orders by date descending with id descending as the
// tie-break, so evaluations sharing a date keep a deterministic order.
func (s *PlayerService) ListEvaluations(playerID uint) ([]models.Evaluation, error) {
	var evals []models.Evaluation
	err := s.db.
		Where("player_id = ?", playerID).
		Order("date DESC, id DESC").
		Find(&evals).Error
	if err != nil {
		return nil, err
	}
	return evals, nil
}

// CreateEvaluation verifies the player exists first; the foreign key is
// enforced here rather than trusted to the storage engine.
func (s *PlayerService) CreateEvaluation(playerID uint, evaluatorName, date, notes string, score *int) (*models.Evaluation, error) {
	var player models.Player
	if err := s.db.First(&player, playerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	eval := models.Evaluation{
		PlayerID:      playerID,
		EvaluatorName: evaluatorName,
		Date:          date,
		Notes:         notes,
		Score:         score,
	}
	if err := s.db.Create(&eval).Error; err != nil {
		return nil, err
	}
	return &eval, nil
}

type DashboardStats struct {
	PlayersCount int64    `json:"players_count"`
	EvalsCount   int64    `json:"evals_count"`
	AvgScore     *float64 `json:"avg_score"`
}

// DashboardStats averages only scored evaluations, rounded to 2 decimals;
// AvgScore stays nil when no evaluation has a score.
func (s *PlayerService) DashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := s.db.Model(&models.Player{}).Count(&stats.PlayersCount).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Evaluation{}).Count(&stats.EvalsCount).Error; err != nil {
		return nil, err
	}

	var avg sql.NullFloat64
	err := s.db.Model(&models.Evaluation{}).
		Where("score IS NOT NULL").
		Select("AVG(score)").
		Scan(&avg).Error
	if err != nil {
		return nil, err
	}
	if avg.Valid {
		rounded := math.Round(avg.Float64*100) / 100
		stats.AvgScore = &rounded
	}

	return stats, nil
}
