package model

import (
	"encoding/json"
	"time"

	"github.com/ericlagergren/decimal"
	"github.com/ericlagergren/decimal/sql/postgres"
	gouuid "github.com/nu7hatch/gouuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"gitlab.com/smartstart-platform/buz_ledger_api/utils"
)

type TransactionStatus string

const (
	TransactionStatus_Pending   TransactionStatus = "pending"
	TransactionStatus_Confirmed TransactionStatus = "confirmed"
	TransactionStatus_Failed    TransactionStatus = "failed"
)

func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionStatus_Pending,
		TransactionStatus_Confirmed,
		TransactionStatus_Failed:
		return true
	default:
		return false
	}
}

type TransactionType string

const (
	TransactionType_Transfer TransactionType = "transfer"
	TransactionType_Mint     TransactionType = "mint"
	TransactionType_Burn     TransactionType = "burn"
	TransactionType_Stake    TransactionType = "stake"
	TransactionType_Unstake  TransactionType = "unstake"
	TransactionType_Reward   TransactionType = "reward"
)

func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionType_Transfer,
		TransactionType_Mint,
		TransactionType_Burn,
		TransactionType_Stake,
		TransactionType_Unstake,
		TransactionType_Reward:
		return true
	default:
		return false
	}
}

func (t TransactionType) String() string {
	return string(t)
}

// Transaction is the append only record of a balance affecting event.
// FromUserID is nil for mint, ToUserID is nil for burn.
type Transaction struct {
	ID          uint64            `gorm:"PRIMARY_KEY" json:"id"`
	RefID       string            `gorm:"column:ref_id" json:"ref_id"`
	FromUserID  *uint64           `gorm:"column:from_user_id" json:"from_user_id"`
	ToUserID    *uint64           `gorm:"column:to_user_id" json:"to_user_id"`
	Amount      *postgres.Decimal `sql:"type:decimal(36,18)" json:"amount"`
	TxType      TransactionType   `gorm:"column:tx_type" sql:"not null;type:transaction_type_t" json:"tx_type"`
	Reason      string            `json:"reason"`
	Description string            `json:"description"`
	Status      TransactionStatus `sql:"not null;type:transaction_status_t;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTransaction creates a transaction with a generated reference id
func NewTransaction(txType TransactionType, status TransactionStatus, fromUserID, toUserID *uint64, amount *decimal.Big, reason, description string) *Transaction {
	u, _ := gouuid.NewV4()
	return &Transaction{
		RefID:       u.String(),
		FromUserID:  fromUserID,
		ToUserID:    toUserID,
		Amount:      &postgres.Decimal{V: amount},
		TxType:      txType,
		Reason:      reason,
		Description: description,
		Status:      status,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

// BeforeUpdate blocks every mutation of a confirmed transaction.
// The log is append only, a confirmed row can never change again.
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	stored := Transaction{}
	if err := tx.Session(&gorm.Session{NewDB: true}).First(&stored, "id = ?", t.ID).Error; err != nil {
		return err
	}
	if stored.Status == TransactionStatus_Confirmed {
		return errors.New("confirmed transactions are immutable")
	}
	return nil
}

// MarshalJSON JSON encoding of a transaction
func (t Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"id":           t.ID,
		"ref_id":       t.RefID,
		"from_user_id": t.FromUserID,
		"to_user_id":   t.ToUserID,
		"amount":       utils.FmtDecimal(t.Amount),
		"tx_type":      t.TxType,
		"reason":       t.Reason,
		"description":  t.Description,
		"status":       t.Status,
		"created_at":   t.CreatedAt,
	})
}

// TransactionList type
type TransactionList struct {
	Transactions []Transaction `json:"transactions"`
	Meta         PagingMeta    `json:"meta"`
}

// TransferRequest is the payload for a user to user transfer
type TransferRequest struct {
	ToUserID    uint64       `json:"to_user_id"`
	Amount      *decimal.Big `json:"amount"`
	Reason      string       `json:"reason"`
	Description string       `json:"description"`
}
