package dummydb

import (
	"github.com/jmstudio/fitmanage/core/staff"
)

type staffRepository struct {
	db *staffTable
}

func NewStaffRepository(db *DB) staff.Repository {
	return &staffRepository{db: db.staff}
}

func (repo *staffRepository) query() []staff.Account {
	accounts := make([]staff.Account, 0, len(repo.db.table))
	for _, a := range repo.db.table {
		accounts = append(accounts, *a)
	}
	return accounts
}

func (repo *staffRepository) CheckUsernameUniqueness(username, email string, excluded ...staff.Account) error {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, acct := range repo.query() {
		if isExcluded(acct, excluded) {
			continue
		}
		if acct.Username == username {
			return staff.ErrUsernameExists
		}
		if email != "" && acct.Email == email {
			return staff.ErrEmailExists
		}
	}
	return nil
}

func (repo *staffRepository) CreateAccount(a staff.Account) (staff.Account, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[a.ID] = &a
	return a, nil
}

func (repo *staffRepository) QueryAllAccounts() ([]staff.Account, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *staffRepository) GetAccountByID(id string) (staff.Account, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if a, ok := repo.db.table[id]; ok {
		return *a, nil
	}
	return staff.Account{}, staff.ErrNotFound
}

func (repo *staffRepository) GetAccountByUsernameOrEmail(username string) (staff.Account, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, acct := range repo.query() {
		if (acct.Username == username) || (acct.Email == username) {
			return acct, nil
		}
	}
	return staff.Account{}, staff.ErrNotFound
}

func (repo *staffRepository) UpdateAccount(a staff.Account) (staff.Account, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[a.ID]; !ok {
		return staff.Account{}, staff.ErrNotFound
	}
	repo.db.table[a.ID] = &a
	return a, nil
}

func (repo *staffRepository) DeleteAccountsByID(ids ...string) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	for _, id := range ids {
		delete(repo.db.table, id)
	}
	return nil
}

func (repo *staffRepository) ReplaceAllAccounts(accounts []staff.Account) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table = make(map[string]*staff.Account, len(accounts))
	for i := range accounts {
		a := accounts[i]
		repo.db.table[a.ID] = &a
	}
	return nil
}

func isExcluded(acct staff.Account, excluded []staff.Account) bool {
	for _, ex := range excluded {
		if ex.ID == acct.ID {
			return true
		}
	}
	return false
}
