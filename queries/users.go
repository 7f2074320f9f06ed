package queries

import (
	"gitlab.com/smartstart-platform/buz_ledger_api/model"
)

// GetUserByID retrieves a user by id
func (repo *Repo) GetUserByID(id uint64) (*model.User, error) {
	user := model.User{}
	db := repo.ConnReader.First(&user, "id = ?", id)
	if db.Error != nil {
		return nil, db.Error
	}
	return &user, nil
}

// GetUsersCount returns the total number of users
func (repo *Repo) GetUsersCount() (int64, error) {
	var count int64
	db := repo.ConnReader.Table("users").Count(&count)
	return count, db.Error
}
