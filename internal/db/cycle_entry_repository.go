package db

import (
	"time"

	"github.com/selene-health/selene/internal/models"
	"gorm.io/gorm"
)

type CycleEntryRepository struct {
	database *gorm.DB
}

func NewCycleEntryRepository(database *gorm.DB) *CycleEntryRepository {
	return &CycleEntryRepository{database: database}
}

func (repo *CycleEntryRepository) Create(entry *models.CycleEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *CycleEntryRepository) Save(entry *models.CycleEntry) error {
	return repo.database.Save(entry).Error
}

func (repo *CycleEntryRepository) Delete(entry *models.CycleEntry) error {
	return repo.database.Delete(entry).Error
}

func (repo *CycleEntryRepository) FindByIDForUser(entryID uint, userID uint) (models.CycleEntry, error) {
	entry := models.CycleEntry{}
	if err := repo.database.Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error; err != nil {
		return models.CycleEntry{}, err
	}
	return entry, nil
}

func (repo *CycleEntryRepository) ExistsByUserAndDate(userID uint, day time.Time) (bool, error) {
	var count int64
	if err := repo.database.Model(&models.CycleEntry{}).
		Where("user_id = ? AND date = ?", userID, day).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByUserRange returns entries ascending by date; nil bounds are
// open ends.
func (repo *CycleEntryRepository) ListByUserRange(userID uint, from *time.Time, to *time.Time, limit int) ([]models.CycleEntry, error) {
	query := repo.database.Where("user_id = ?", userID)
	if from != nil {
		query = query.Where("date >= ?", *from)
	}
	if to != nil {
		query = query.Where("date <= ?", *to)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	entries := make([]models.CycleEntry, 0)
	if err := query.Order("date ASC, id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *CycleEntryRepository) ListByUserSince(userID uint, since time.Time) ([]models.CycleEntry, error) {
	return repo.ListByUserRange(userID, &since, nil, 0)
}
