package domain

import "github.com/shopspring/decimal"

// 透支手續費，固定 35，單次提款最多收一次
var checkingOverdraftFee = decimal.NewFromInt(35)

// CheckingAccount 支票帳戶：無條件扣款，可透支
type CheckingAccount struct {
	BaseAccount
}

// NewCheckingAccount 開立支票帳戶，無開戶餘額限制
func NewCheckingAccount(number, holder string, opening float64) (*CheckingAccount, error) {
	base, err := newBaseAccount(number, holder, opening)
	if err != nil {
		return nil, err
	}
	return &CheckingAccount{BaseAccount: base}, nil
}

func (a *CheckingAccount) Kind() AccountKind { return KindChecking }

// Withdraw 支票帳戶提款政策：
// 一律扣款 (允許餘額變負)；扣款後若餘額為負，再收一次透支手續費
// 手續費本身不再觸發第二次透支檢查
func (a *CheckingAccount) Withdraw(amount decimal.Decimal) (Outcome, error) {
	if err := a.Debit(amount); err != nil {
		return 0, err
	}
	if a.Balance().Sign() < 0 {
		if err := a.Debit(checkingOverdraftFee); err != nil {
			return 0, err
		}
	}
	return OutcomeApplied, nil
}

func (a *CheckingAccount) DisplayInfo() string {
	return a.displayInfo(KindChecking)
}

var _ Account = (*CheckingAccount)(nil)
