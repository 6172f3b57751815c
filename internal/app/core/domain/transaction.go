package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType 交易類型
type TransactionType uint8

const (
	// 存款
	TransactionTypeDeposit TransactionType = 1
	// 提款
	TransactionTypeWithdraw TransactionType = 2
	// 轉帳
	TransactionTypeTransfer TransactionType = 3
	// 月息入帳
	TransactionTypeInterest TransactionType = 4
)

// String 供 log 與 API 回應使用
func (t TransactionType) String() string {
	switch t {
	case TransactionTypeDeposit:
		return "deposit"
	case TransactionTypeWithdraw:
		return "withdraw"
	case TransactionTypeTransfer:
		return "transfer"
	case TransactionTypeInterest:
		return "interest"
	default:
		return "unknown"
	}
}

// Transaction 單筆交易的收據
// Ledger 處理完畢後回填 Outcome，呼叫端以此分辨「已入帳」與「政策拒絕」
// 系統不保留交易紀錄，收據只活在回傳值裡
type Transaction struct {
	// From, To: 帳號；存款/利息只有 To，提款只有 From
	From string
	To   string
	// Amount: 金額
	Amount decimal.Decimal
	// CreatedAt: 交易時間 (UnixNano)
	CreatedAt int64
	// TransactionID: 追蹤號 (UUID)，由核心產生
	TransactionID uuid.UUID
	// Type: 交易類型
	Type TransactionType
	// Outcome: 政策結果，由 Ledger 回填
	Outcome Outcome
}
