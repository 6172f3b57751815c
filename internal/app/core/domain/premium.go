package domain

import "github.com/shopspring/decimal"

var (
	premiumMinOpening = decimal.NewFromInt(10000)
	premiumAnnualRate = decimal.NewFromFloat(0.05)
)

// PremiumAccount 尊榮帳戶：開戶門檻 10000、年利率 5%
type PremiumAccount struct {
	BaseAccount
}

// NewPremiumAccount 開立尊榮帳戶，開戶餘額不得低於 10000
func NewPremiumAccount(number, holder string, opening float64) (*PremiumAccount, error) {
	base, err := newBaseAccount(number, holder, opening)
	if err != nil {
		return nil, err
	}
	if base.Balance().LessThan(premiumMinOpening) {
		return nil, ErrOpeningBalanceTooLow
	}
	return &PremiumAccount{BaseAccount: base}, nil
}

func (a *PremiumAccount) Kind() AccountKind { return KindPremium }

// Withdraw 尊榮帳戶提款政策：餘額不足即拒絕，不允許透支
func (a *PremiumAccount) Withdraw(amount decimal.Decimal) (Outcome, error) {
	if a.Balance().Sub(amount).Sign() < 0 {
		return OutcomeRejectedInsufficientFunds, nil
	}
	if err := a.Debit(amount); err != nil {
		return 0, err
	}
	return OutcomeApplied, nil
}

// MonthlyInterest 月息 = 餘額 * 年利率 / 12
func (a *PremiumAccount) MonthlyInterest() decimal.Decimal {
	return monthlyInterest(a.Balance(), premiumAnnualRate)
}

func (a *PremiumAccount) DisplayInfo() string {
	return a.displayInfo(KindPremium)
}

var (
	_ Account         = (*PremiumAccount)(nil)
	_ InterestBearing = (*PremiumAccount)(nil)
)
