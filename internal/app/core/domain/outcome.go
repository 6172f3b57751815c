package domain

// Outcome 政策性操作結果 (Soft Failure 模型)
// Hard Failure 走 error；政策拒絕不噴錯，只回報 Outcome
// 與 TransactionType 同樣使用 uint8
type Outcome uint8

const (
	// 已入帳 / 已扣款
	OutcomeApplied Outcome = 1
	// 提款次數達上限 (Savings)
	OutcomeRejectedLimit Outcome = 2
	// 會低於最低餘額 (Savings)
	OutcomeRejectedMinBalance Outcome = 3
	// 餘額不足 (Premium / Student 提款)
	OutcomeRejectedInsufficientFunds Outcome = 4
	// 會超過存款上限 (Student)
	OutcomeRejectedCapExceeded Outcome = 5
)

// Applied 回報操作是否真的改變了餘額
func (o Outcome) Applied() bool {
	return o == OutcomeApplied
}

// String 供 log 與 API 回應使用
func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeRejectedLimit:
		return "rejected_limit"
	case OutcomeRejectedMinBalance:
		return "rejected_min_balance"
	case OutcomeRejectedInsufficientFunds:
		return "rejected_insufficient_funds"
	case OutcomeRejectedCapExceeded:
		return "rejected_cap_exceeded"
	default:
		return "unknown"
	}
}
