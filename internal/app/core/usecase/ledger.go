package usecase

import (
	"context"

	"github.com/JoeShih716/go-bank-ledger/internal/app/core/domain"
)

// Ledger 是帳務系統的介面
type Ledger interface {
	// AddAccount 加入帳戶；帳號重複回傳 ErrAccountAlreadyExists
	AddAccount(ctx context.Context, acc domain.Account) error
	// FindAccount 依帳號取得帳戶狀態快照 (臨界區內產生)
	FindAccount(ctx context.Context, number string) (domain.AccountSnapshot, error)
	// RenameHolder 在臨界區內變更戶名，回傳變更後的快照
	RenameHolder(ctx context.Context, number, holder string) (domain.AccountSnapshot, error)
	// PostTransaction 不再分 Deposit/Withdraw，直接看 tran.Type 決定
	// 處理完畢回填 tran.Outcome
	PostTransaction(ctx context.Context, tran *domain.Transaction) error
	// ApplyMonthlyInterest 對所有具計息能力的帳戶入當月利息
	// 回傳每筆利息交易的收據 (依帳戶加入順序)
	ApplyMonthlyInterest(ctx context.Context) ([]*domain.Transaction, error)
	// ListAccounts 依加入順序列出所有帳戶的狀態快照
	ListAccounts(ctx context.Context) ([]domain.AccountSnapshot, error)
}
