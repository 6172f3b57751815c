package domain

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// AccountKind 帳戶類型代碼，開戶與報表顯示使用
type AccountKind string

const (
	KindSavings  AccountKind = "savings"
	KindChecking AccountKind = "checking"
	KindPremium  AccountKind = "premium"
	KindStudent  AccountKind = "student"
)

// Account 是所有帳戶類型共同的能力集合
// Withdraw / Deposit 的政策由各類型自行決定：
// Hard Failure 回傳 error，政策拒絕回傳 Outcome (不噴錯、狀態不變)
type Account interface {
	Number() string
	Holder() string
	SetHolder(name string) error
	Balance() decimal.Decimal
	Kind() AccountKind

	// Deposit 入帳；預設等同 Credit，Student 會覆寫加上上限檢查
	Deposit(amount decimal.Decimal) (Outcome, error)
	// Withdraw 提款；各類型必須實作自己的政策
	Withdraw(amount decimal.Decimal) (Outcome, error)
	// DisplayInfo 產生一行人類可讀的帳戶摘要，純讀取
	DisplayInfo() string
}

// NewAccount 依類型開戶的工廠函式，供開戶入口 (use case / 設定檔種子) 使用
func NewAccount(kind AccountKind, number, holder string, opening float64) (Account, error) {
	switch kind {
	case KindSavings:
		return NewSavingsAccount(number, holder, opening)
	case KindChecking:
		return NewCheckingAccount(number, holder, opening)
	case KindPremium:
		return NewPremiumAccount(number, holder, opening)
	case KindStudent:
		return NewStudentAccount(number, holder, opening)
	default:
		return nil, ErrUnknownAccountKind
	}
}

// BaseAccount 帳戶共同欄位與 credit/debit 原語
// 只能由各類型的建構子建立，餘額只透過 Credit/Debit 變動
type BaseAccount struct {
	number  string
	holder  string
	balance decimal.Decimal
}

// newBaseAccount 驗證共同開戶參數
// 帳號與戶名不得空白；開戶餘額必須是有限數值 (拒絕 NaN / ±Inf)
func newBaseAccount(number, holder string, opening float64) (BaseAccount, error) {
	if strings.TrimSpace(number) == "" {
		return BaseAccount{}, ErrBlankAccountNumber
	}
	if math.IsNaN(opening) || math.IsInf(opening, 0) {
		return BaseAccount{}, ErrAmountNotFinite
	}
	acc := BaseAccount{
		number:  strings.TrimSpace(number),
		balance: decimal.NewFromFloat(opening),
	}
	if err := acc.SetHolder(holder); err != nil {
		return BaseAccount{}, err
	}
	return acc, nil
}

func (a *BaseAccount) Number() string { return a.number }

func (a *BaseAccount) Holder() string { return a.holder }

// SetHolder 去除前後空白後設定戶名，空白戶名視為非法參數
func (a *BaseAccount) SetHolder(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrBlankHolderName
	}
	a.holder = trimmed
	return nil
}

func (a *BaseAccount) Balance() decimal.Decimal { return a.balance }

// Credit 入帳原語：金額必須為正
func (a *BaseAccount) Credit(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrAmountMustBePositive
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Debit 扣款原語：金額必須為正，不做餘額下限檢查
// 下限政策屬於各類型的 Withdraw，不屬於這裡
func (a *BaseAccount) Debit(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrAmountMustBePositive
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// Deposit 預設入帳行為 = Credit
func (a *BaseAccount) Deposit(amount decimal.Decimal) (Outcome, error) {
	if err := a.Credit(amount); err != nil {
		return 0, err
	}
	return OutcomeApplied, nil
}

// displayInfo 共用的摘要格式，kind 由各類型帶入
func (a *BaseAccount) displayInfo(kind AccountKind) string {
	return formatInfo(kind, a.number, a.holder, a.balance)
}

// formatInfo 帳戶摘要行的唯一格式來源，帳戶本體與快照共用
func formatInfo(kind AccountKind, number, holder string, balance decimal.Decimal) string {
	return fmt.Sprintf("[%s] %s | %s | balance=%s", kind, number, holder, balance.String())
}

// AccountSnapshot 帳戶狀態的唯讀值拷貝
// Ledger 的查詢面只回傳快照，不外洩活的帳戶指標；
// 快照必須在帳本的臨界區內產生 (SnapshotOf)，離開臨界區後可安全讀取
type AccountSnapshot struct {
	Number  string
	Holder  string
	Kind    AccountKind
	Balance decimal.Decimal
}

// SnapshotOf 取當下狀態的值拷貝；呼叫端必須確保 acc 尚未共享或已持有鎖
func SnapshotOf(acc Account) AccountSnapshot {
	return AccountSnapshot{
		Number:  acc.Number(),
		Holder:  acc.Holder(),
		Kind:    acc.Kind(),
		Balance: acc.Balance(),
	}
}

// DisplayInfo 與帳戶本體同格式的摘要行，供報表使用
func (s AccountSnapshot) DisplayInfo() string {
	return formatInfo(s.Kind, s.Number, s.Holder, s.Balance)
}
