package db

import "gorm.io/gorm"

type Repositories struct {
	Users          *UserRepository
	CycleEntries   *CycleEntryRepository
	SymptomEntries *SymptomEntryRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:          NewUserRepository(database),
		CycleEntries:   NewCycleEntryRepository(database),
		SymptomEntries: NewSymptomEntryRepository(database),
	}
}
