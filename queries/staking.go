package queries

import (
	"gitlab.com/smartstart-platform/buz_ledger_api/model"
)

// GetStakingPositionByID retrieves a staking position by id
func (repo *Repo) GetStakingPositionByID(id uint64) (*model.StakingPosition, error) {
	position := model.StakingPosition{}
	db := repo.ConnReader.First(&position, "id = ?", id)
	if db.Error != nil {
		return nil, db.Error
	}
	return &position, nil
}

// GetStakingPositionsByUser lists the user's positions, newest first.
// An empty status returns every position.
func (repo *Repo) GetStakingPositionsByUser(userID uint64, status model.StakingStatus, limit, page int) (*model.StakingPositionList, error) {
	positions := make([]model.StakingPosition, 0)
	var rowCount int64

	q := repo.ConnReader.Table("staking_positions").Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	dbc := q.Count(&rowCount)
	if dbc.Error != nil {
		return nil, dbc.Error
	}

	q = q.Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset((page - 1) * limit)
	}
	db := q.Find(&positions)
	if db.Error != nil {
		return nil, db.Error
	}

	list := model.StakingPositionList{
		Positions: positions,
		Meta: model.PagingMeta{
			Page:  page,
			Count: rowCount,
			Limit: limit,
		},
	}
	return &list, nil
}

// GetActiveStakingPositionsCount returns the number of positions not yet withdrawn
func (repo *Repo) GetActiveStakingPositionsCount() (int64, error) {
	var count int64
	db := repo.ConnReader.Table("staking_positions").
		Where("status = ?", model.StakingStatusActive).
		Count(&count)
	return count, db.Error
}

// UpdateMaturedStakingPositions flips every active position past its end
// date to matured and returns the number of rows changed
func (repo *Repo) UpdateMaturedStakingPositions() (int64, error) {
	db := repo.Conn.Table("staking_positions").
		Where("status = ? AND end_date <= now()", model.StakingStatusActive).
		Update("status", model.StakingStatusMatured)
	return db.RowsAffected, db.Error
}
