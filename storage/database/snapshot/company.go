package snapshotdb

import (
	"github.com/jmstudio/fitmanage/core/company"
)

type companyRepository struct {
	db *DB
}

func NewCompanyRepository(db *DB) company.Repository {
	return &companyRepository{db: db}
}

func (repo *companyRepository) GetProfile() (company.Profile, error) {
	repo.db.company.RLock()
	defer repo.db.company.RUnlock()

	if repo.db.company.profile == nil {
		return company.Profile{}, company.ErrNotRegistered
	}
	return *repo.db.company.profile, nil
}

func (repo *companyRepository) SaveProfile(p company.Profile) (company.Profile, error) {
	repo.db.company.Lock()
	defer repo.db.company.Unlock()

	repo.db.company.profile = &p
	return p, repo.db.flush(companyFile, p)
}
