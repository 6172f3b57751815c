package domain

import "github.com/shopspring/decimal"

var (
	savingsMinBalance = decimal.NewFromInt(500)
	savingsAnnualRate = decimal.NewFromFloat(0.02)
)

// 終身提款次數上限；計數器不會歸零 (既定產品決策)
const savingsWithdrawLimit = 3

// SavingsAccount 儲蓄帳戶
// 最低餘額 500、年利率 2%、提款次數上限 3 次
type SavingsAccount struct {
	BaseAccount
	withdrawals int
}

// NewSavingsAccount 開立儲蓄帳戶，開戶餘額不得低於 500
func NewSavingsAccount(number, holder string, opening float64) (*SavingsAccount, error) {
	base, err := newBaseAccount(number, holder, opening)
	if err != nil {
		return nil, err
	}
	if base.Balance().LessThan(savingsMinBalance) {
		return nil, ErrOpeningBalanceTooLow
	}
	return &SavingsAccount{BaseAccount: base}, nil
}

func (a *SavingsAccount) Kind() AccountKind { return KindSavings }

// Withdrawals 回報已成功提款的次數
func (a *SavingsAccount) Withdrawals() int { return a.withdrawals }

// Withdraw 儲蓄帳戶提款政策：
//  1. 次數達上限 → 拒絕 (狀態不變)
//  2. 提款後低於最低餘額 → 拒絕 (狀態不變)
//  3. 否則扣款並累計次數
func (a *SavingsAccount) Withdraw(amount decimal.Decimal) (Outcome, error) {
	if a.withdrawals >= savingsWithdrawLimit {
		return OutcomeRejectedLimit, nil
	}
	if a.Balance().Sub(amount).LessThan(savingsMinBalance) {
		return OutcomeRejectedMinBalance, nil
	}
	if err := a.Debit(amount); err != nil {
		return 0, err
	}
	a.withdrawals++
	return OutcomeApplied, nil
}

// MonthlyInterest 月息 = 餘額 * 年利率 / 12
func (a *SavingsAccount) MonthlyInterest() decimal.Decimal {
	return monthlyInterest(a.Balance(), savingsAnnualRate)
}

func (a *SavingsAccount) DisplayInfo() string {
	return a.displayInfo(KindSavings)
}

var (
	_ Account         = (*SavingsAccount)(nil)
	_ InterestBearing = (*SavingsAccount)(nil)
)
