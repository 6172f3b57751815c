package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-bank-ledger/internal/app/core/domain"
)

// CoreUseCase 是核心業務邏輯層
type CoreUseCase struct {
	ledger Ledger
}

func NewCoreUseCase(ledger Ledger) *CoreUseCase {
	return &CoreUseCase{
		ledger: ledger,
	}
}

// OpenAccount 依類型開戶並加入 Ledger
// 快照在帳戶指標交給 Ledger 共享之前取得，之後的讀取都走查詢面
func (c *CoreUseCase) OpenAccount(ctx context.Context, kind domain.AccountKind, number, holder string, opening float64) (domain.AccountSnapshot, error) {
	acc, err := domain.NewAccount(kind, number, holder, opening)
	if err != nil {
		return domain.AccountSnapshot{}, err
	}
	snapshot := domain.SnapshotOf(acc)
	if err := c.ledger.AddAccount(ctx, acc); err != nil {
		return domain.AccountSnapshot{}, err
	}
	return snapshot, nil
}

// GetAccount 依帳號取得帳戶狀態快照
func (c *CoreUseCase) GetAccount(ctx context.Context, number string) (domain.AccountSnapshot, error) {
	return c.ledger.FindAccount(ctx, number)
}

// ListAccounts 依加入順序列出所有帳戶的狀態快照
func (c *CoreUseCase) ListAccounts(ctx context.Context) ([]domain.AccountSnapshot, error) {
	return c.ledger.ListAccounts(ctx)
}

// RenameHolder 變更戶名 (去空白後不得為空)；變更由 Ledger 在臨界區內執行
func (c *CoreUseCase) RenameHolder(ctx context.Context, number, holder string) (domain.AccountSnapshot, error) {
	return c.ledger.RenameHolder(ctx, number, holder)
}

// Deposit 對單一帳戶入帳
func (c *CoreUseCase) Deposit(ctx context.Context, number string, amount decimal.Decimal) (*domain.Transaction, error) {
	tran := c.newTransaction(domain.TransactionTypeDeposit, "", number, amount)
	if err := c.ledger.PostTransaction(ctx, tran); err != nil {
		return nil, err
	}
	return tran, nil
}

// Withdraw 對單一帳戶提款
func (c *CoreUseCase) Withdraw(ctx context.Context, number string, amount decimal.Decimal) (*domain.Transaction, error) {
	tran := c.newTransaction(domain.TransactionTypeWithdraw, number, "", amount)
	if err := c.ledger.PostTransaction(ctx, tran); err != nil {
		return nil, err
	}
	return tran, nil
}

// Transfer 帳戶間轉帳
func (c *CoreUseCase) Transfer(ctx context.Context, from, to string, amount decimal.Decimal) (*domain.Transaction, error) {
	tran := c.newTransaction(domain.TransactionTypeTransfer, from, to, amount)
	if err := c.ledger.PostTransaction(ctx, tran); err != nil {
		return nil, err
	}
	return tran, nil
}

// ApplyMonthlyInterest 對所有具計息能力的帳戶入當月利息
func (c *CoreUseCase) ApplyMonthlyInterest(ctx context.Context) ([]*domain.Transaction, error) {
	return c.ledger.ApplyMonthlyInterest(ctx)
}

// newTransaction 產生帶追蹤號與時間戳的交易
func (c *CoreUseCase) newTransaction(txType domain.TransactionType, from, to string, amount decimal.Decimal) *domain.Transaction {
	return &domain.Transaction{
		TransactionID: uuid.New(),
		From:          from,
		To:            to,
		Amount:        amount,
		CreatedAt:     time.Now().UnixNano(),
		Type:          txType,
	}
}
