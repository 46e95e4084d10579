package snapshotdb

import (
	"sort"

	"github.com/jmstudio/fitmanage/core/staff"
)

type staffRepository struct {
	db *DB
}

func NewStaffRepository(db *DB) staff.Repository {
	return &staffRepository{db: db}
}

func (repo *staffRepository) snapshot() []staff.Account {
	accounts := make([]staff.Account, 0, len(repo.db.staff.table))
	for _, a := range repo.db.staff.table {
		accounts = append(accounts, *a)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Username < accounts[j].Username })
	return accounts
}

func (repo *staffRepository) flush() error {
	return repo.db.flush(staffFile, repo.snapshotPersistable())
}

// persistedAccount carries the password hash that the API-facing model hides
// from JSON.
type persistedAccount struct {
	staff.Account
	PasswordHash []byte `json:"password_hash"`
}

func (repo *staffRepository) snapshotPersistable() []persistedAccount {
	accounts := repo.snapshot()
	out := make([]persistedAccount, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, persistedAccount{Account: a, PasswordHash: a.PasswordHash})
	}
	return out
}

func (repo *staffRepository) CheckUsernameUniqueness(username, email string, excluded ...staff.Account) error {
	repo.db.staff.RLock()
	defer repo.db.staff.RUnlock()

	for _, acct := range repo.snapshot() {
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
	repo.db.staff.Lock()
	defer repo.db.staff.Unlock()

	repo.db.staff.table[a.ID] = &a
	return a, repo.flush()
}

func (repo *staffRepository) QueryAllAccounts() ([]staff.Account, error) {
	repo.db.staff.RLock()
	defer repo.db.staff.RUnlock()
	return repo.snapshot(), nil
}

func (repo *staffRepository) GetAccountByID(id string) (staff.Account, error) {
	repo.db.staff.RLock()
	defer repo.db.staff.RUnlock()

	if a, ok := repo.db.staff.table[id]; ok {
		return *a, nil
	}
	return staff.Account{}, staff.ErrNotFound
}

func (repo *staffRepository) GetAccountByUsernameOrEmail(username string) (staff.Account, error) {
	repo.db.staff.RLock()
	defer repo.db.staff.RUnlock()

	for _, acct := range repo.snapshot() {
		if (acct.Username == username) || (acct.Email == username) {
			return acct, nil
		}
	}
	return staff.Account{}, staff.ErrNotFound
}

func (repo *staffRepository) UpdateAccount(a staff.Account) (staff.Account, error) {
	repo.db.staff.Lock()
	defer repo.db.staff.Unlock()

	if _, ok := repo.db.staff.table[a.ID]; !ok {
		return staff.Account{}, staff.ErrNotFound
	}
	repo.db.staff.table[a.ID] = &a
	return a, repo.flush()
}

func (repo *staffRepository) DeleteAccountsByID(ids ...string) error {
	repo.db.staff.Lock()
	defer repo.db.staff.Unlock()

	for _, id := range ids {
		delete(repo.db.staff.table, id)
	}
	return repo.flush()
}

func (repo *staffRepository) ReplaceAllAccounts(accounts []staff.Account) error {
	repo.db.staff.Lock()
	defer repo.db.staff.Unlock()

	repo.db.staff.table = make(map[string]*staff.Account, len(accounts))
	for i := range accounts {
		a := accounts[i]
		repo.db.staff.table[a.ID] = &a
	}
	return repo.flush()
}

func isExcluded(acct staff.Account, excluded []staff.Account) bool {
	for _, ex := range excluded {
		if ex.ID == acct.ID {
			return true
		}
	}
	return false
}
