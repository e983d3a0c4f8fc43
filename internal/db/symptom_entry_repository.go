package db

import (
	"time"

	"github.com/selene-health/selene/internal/models"
	"gorm.io/gorm"
)

type SymptomEntryRepository struct {
	database *gorm.DB
}

func NewSymptomEntryRepository(database *gorm.DB) *SymptomEntryRepository {
	return &SymptomEntryRepository{database: database}
}

func (repo *SymptomEntryRepository) Create(entry *models.SymptomEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *SymptomEntryRepository) Save(entry *models.SymptomEntry) error {
	return repo.database.Save(entry).Error
}

func (repo *SymptomEntryRepository) Delete(entry *models.SymptomEntry) error {
	return repo.database.Delete(entry).Error
}

func (repo *SymptomEntryRepository) FindByIDForUser(entryID uint, userID uint) (models.SymptomEntry, error) {
	entry := models.SymptomEntry{}
	if err := repo.database.Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error; err != nil {
		return models.SymptomEntry{}, err
	}
	return entry, nil
}

func (repo *SymptomEntryRepository) FindByUserAndDate(userID uint, day time.Time) (models.SymptomEntry, bool, error) {
	entry := models.SymptomEntry{}
	result := repo.database.
		Where("user_id = ? AND date = ?", userID, day).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.SymptomEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.SymptomEntry{}, false, nil
	}
	return entry, true, nil
}

func (repo *SymptomEntryRepository) ListByUserSince(userID uint, since time.Time) ([]models.SymptomEntry, error) {
	entries := make([]models.SymptomEntry, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
