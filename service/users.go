package service

import "gitlab.com/smartstart-platform/buz_ledger_api/model"

// GetUserByID returns the user with the given id
func (service *Service) GetUserByID(id uint64) (*model.User, error) {
	return service.repo.GetUserByID(id)
}
