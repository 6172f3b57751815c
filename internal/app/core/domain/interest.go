package domain

import "github.com/shopspring/decimal"

// 一年十二個月，月利率 = 年利率 / 12 (不複利)
var monthsPerYear = decimal.NewFromInt(12)

// InterestBearing 計息能力
// 只有部分帳戶類型 (Savings / Premium) 具備；
// Ledger 逐帳戶以介面斷言偵測能力，而不是檢查具體型別
type InterestBearing interface {
	// MonthlyInterest 回傳當月利息金額，純讀取、不改變餘額
	// 實際入帳由 Ledger 透過該帳戶自己的 Deposit 執行
	MonthlyInterest() decimal.Decimal
}

// monthlyInterest 共用的月息計算：先乘後除，維持十進位精確
func monthlyInterest(balance, annualRate decimal.Decimal) decimal.Decimal {
	return balance.Mul(annualRate).Div(monthsPerYear)
}
