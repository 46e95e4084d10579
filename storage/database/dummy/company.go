package dummydb

import (
	"github.com/jmstudio/fitmanage/core/company"
)

type companyRepository struct {
	db *companyTable
}

func NewCompanyRepository(db *DB) company.Repository {
	return &companyRepository{db: db.company}
}

func (repo *companyRepository) GetProfile() (company.Profile, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if repo.db.profile == nil {
		return company.Profile{}, company.ErrNotRegistered
	}
	return *repo.db.profile, nil
}

func (repo *companyRepository) SaveProfile(p company.Profile) (company.Profile, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.profile = &p
	return p, nil
}
