package domain

import "github.com/shopspring/decimal"

// 學生帳戶餘額上限；入帳 (含轉帳入帳與利息) 一律受限
var studentMaxBalance = decimal.NewFromInt(5000)

// StudentAccount 學生帳戶：餘額上限 5000，不具計息能力
type StudentAccount struct {
	BaseAccount
}

// NewStudentAccount 開立學生帳戶，開戶餘額不得超過 5000
func NewStudentAccount(number, holder string, opening float64) (*StudentAccount, error) {
	base, err := newBaseAccount(number, holder, opening)
	if err != nil {
		return nil, err
	}
	if base.Balance().GreaterThan(studentMaxBalance) {
		return nil, ErrOpeningBalanceTooHigh
	}
	return &StudentAccount{BaseAccount: base}, nil
}

func (a *StudentAccount) Kind() AccountKind { return KindStudent }

// Deposit 覆寫預設入帳：入帳後超過上限即拒絕 (狀態不變)
func (a *StudentAccount) Deposit(amount decimal.Decimal) (Outcome, error) {
	if a.Balance().Add(amount).GreaterThan(studentMaxBalance) {
		return OutcomeRejectedCapExceeded, nil
	}
	if err := a.Credit(amount); err != nil {
		return 0, err
	}
	return OutcomeApplied, nil
}

// Withdraw 學生帳戶提款政策：餘額不足即拒絕，不允許透支
func (a *StudentAccount) Withdraw(amount decimal.Decimal) (Outcome, error) {
	if a.Balance().Sub(amount).Sign() < 0 {
		return OutcomeRejectedInsufficientFunds, nil
	}
	if err := a.Debit(amount); err != nil {
		return 0, err
	}
	return OutcomeApplied, nil
}

func (a *StudentAccount) DisplayInfo() string {
	return a.displayInfo(KindStudent)
}

var _ Account = (*StudentAccount)(nil)
