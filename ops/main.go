package ops

import (
	"errors"
	"sync"
	"time"

	"gitlab.com/smartstart-platform/buz_ledger_api/queries"
	"gitlab.com/smartstart-platform/buz_ledger_api/service/fms"
)

var ErrInvalidTier = errors.New("INVALID_TIER")
var ErrNotMatured = errors.New("NOT_MATURED")
var ErrPositionWithdrawn = errors.New("POSITION_WITHDRAWN")
var ErrSupplyHalted = errors.New("SUPPLY_HALTED")
var ErrConservationViolation = errors.New("CONSERVATION_VIOLATION")
var ErrInsufficientBucket = errors.New("INSUFFICIENT_BUCKET")

// Ops is the only code path allowed to mutate balances, staking
// positions and the supply registry. Every mutation appends a
// transaction row and commits in a single database transaction while
// the funds engine holds the affected account locks.
type Ops struct {
	repo  *queries.Repo
	funds *fms.FundsEngine
	now   func() time.Time

	haltLock sync.RWMutex
	halted   bool
}

func New(repo *queries.Repo, funds *fms.FundsEngine) *Ops {
	return &Ops{
		repo:  repo,
		funds: funds,
		now:   time.Now,
	}
}

// SetClock overrides the time source, used to simulate maturity in tests
func (o *Ops) SetClock(now func() time.Time) {
	o.now = now
}

// Halt latches the supply into a halted state. Mint and burn refuse to
// run until the process is restarted after a manual audit.
func (o *Ops) Halt() {
	o.haltLock.Lock()
	o.halted = true
	o.haltLock.Unlock()
}

func (o *Ops) IsHalted() bool {
	o.haltLock.RLock()
	defer o.haltLock.RUnlock()
	return o.halted
}
