package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JoeShih716/go-bank-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-bank-ledger/internal/app/core/usecase"
)

// MutexLedger 是一個使用 Mutex 實現的帳本
//
// 結構:
//
//	accounts: 依加入順序排列的帳戶 (報表與利息批次的迭代順序)
//	index: 帳號 -> 帳戶 的查詢索引
//	mu: Mutex 用於保護帳戶資料
//
// 模型本身假設單一邏輯執行緒；仍以單一粗粒度鎖序列化所有操作，
// 讓 HTTP adapter 之類的併發呼叫端不會 race。
// 查詢面 (FindAccount / ListAccounts) 只回傳持鎖時產生的快照，
// 活的帳戶指標不離開臨界區
type MutexLedger struct {
	accounts []domain.Account
	index    map[string]domain.Account
	mu       sync.RWMutex
}

// NewMutexLedger 建立一個空的 MutexLedger 實例
func NewMutexLedger() *MutexLedger {
	return &MutexLedger{
		accounts: make([]domain.Account, 0),
		index:    make(map[string]domain.Account),
		mu:       sync.RWMutex{},
	}
}

// AddAccount 加入帳戶
//
// 參數:
//
//	ctx: 上下文
//	acc: 帳戶實例
//
// 回傳:
//
//	error: 帳號重複時回傳 domain.ErrAccountAlreadyExists
func (m *MutexLedger) AddAccount(ctx context.Context, acc domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.index[acc.Number()]; ok {
		return domain.ErrAccountAlreadyExists
	}
	m.accounts = append(m.accounts, acc)
	m.index[acc.Number()] = acc
	return nil
}

// FindAccount 依帳號取得帳戶狀態快照
//
// 活的帳戶指標不離開臨界區；快照在持鎖時產生，呼叫端可安全讀取
//
// 參數:
//
//	ctx: 上下文
//	number: 帳號
//
// 回傳:
//
//	domain.AccountSnapshot: 帳戶狀態快照
//	error: 查詢錯誤 (如帳戶不存在)
func (m *MutexLedger) FindAccount(ctx context.Context, number string) (domain.AccountSnapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	acc, err := m.lookup(number)
	if err != nil {
		return domain.AccountSnapshot{}, err
	}
	return domain.SnapshotOf(acc), nil
}

// RenameHolder 變更戶名，SetHolder 在臨界區內完成
//
// 參數:
//
//	ctx: 上下文
//	number: 帳號
//	holder: 新戶名
//
// 回傳:
//
//	domain.AccountSnapshot: 變更後的帳戶狀態快照
//	error: 查詢或驗證錯誤 (帳戶不存在 / 戶名空白)
func (m *MutexLedger) RenameHolder(ctx context.Context, number, holder string) (domain.AccountSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, err := m.lookup(number)
	if err != nil {
		return domain.AccountSnapshot{}, err
	}
	if err := acc.SetHolder(holder); err != nil {
		return domain.AccountSnapshot{}, err
	}
	return domain.SnapshotOf(acc), nil
}

// lookup 內部查詢，呼叫端必須已持有鎖
func (m *MutexLedger) lookup(number string) (domain.Account, error) {
	acc, ok := m.index[number]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return acc, nil
}

// ListAccounts 依加入順序列出所有帳戶的狀態快照
func (m *MutexLedger) ListAccounts(ctx context.Context) ([]domain.AccountSnapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.AccountSnapshot, 0, len(m.accounts))
	for _, acc := range m.accounts {
		out = append(out, domain.SnapshotOf(acc))
	}
	return out, nil
}

// PostTransaction 處理交易請求 (單一粗粒度鎖)
//
// 參數:
//
//	ctx: 上下文
//	tran: 交易請求物件，處理完畢回填 tran.Outcome
//
// 回傳:
//
//	error: 處理錯誤 (Hard Failure)；政策拒絕不回傳錯誤
func (m *MutexLedger) PostTransaction(ctx context.Context, tran *domain.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// 核心交易分發
	switch tran.Type {
	case domain.TransactionTypeDeposit, domain.TransactionTypeInterest:
		return m.handleDeposit(tran)
	case domain.TransactionTypeWithdraw:
		return m.handleWithdraw(tran)
	case domain.TransactionTypeTransfer:
		return m.handleTransfer(tran)
	default:
		return nil // Unknown type, ignore or error
	}
}

// handleDeposit 處理存款邏輯
func (m *MutexLedger) handleDeposit(tran *domain.Transaction) error {
	toAccount, err := m.lookup(tran.To)
	if err != nil {
		return err
	}
	outcome, err := toAccount.Deposit(tran.Amount)
	if err != nil {
		return err
	}
	tran.Outcome = outcome
	return nil
}

// handleWithdraw 處理提款邏輯
func (m *MutexLedger) handleWithdraw(tran *domain.Transaction) error {
	fromAccount, err := m.lookup(tran.From)
	if err != nil {
		return err
	}
	outcome, err := fromAccount.Withdraw(tran.Amount)
	if err != nil {
		return err
	}
	tran.Outcome = outcome
	return nil
}

// handleTransfer 處理轉帳邏輯
//
// 兩段式：先扣款方 Withdraw，政策拒絕就停在這裡 (收款方不得入帳)；
// 扣款成功後收款方 Deposit 若失敗 (Hard 或政策拒絕)，
// 以扣款方自己的 Deposit 補償回原餘額後再回報失敗
func (m *MutexLedger) handleTransfer(tran *domain.Transaction) error {
	if tran.From == tran.To {
		return domain.ErrSameAccount
	}
	fromAccount, err := m.lookup(tran.From)
	if err != nil {
		return err
	}
	toAccount, err := m.lookup(tran.To)
	if err != nil {
		return err
	}

	outcome, err := fromAccount.Withdraw(tran.Amount)
	if err != nil {
		return err
	}
	tran.Outcome = outcome
	if !outcome.Applied() {
		return nil
	}

	depOutcome, depErr := toAccount.Deposit(tran.Amount)
	if depErr == nil && depOutcome.Applied() {
		return nil
	}

	// 補償扣款方：金額為正且回到扣款前餘額，這裡的 Deposit 不會再被政策拒絕
	// 注意：Savings 的提款計數不會因補償而回退 (只還餘額)
	if _, err := fromAccount.Deposit(tran.Amount); err != nil {
		return err
	}
	if depErr != nil {
		return depErr
	}
	tran.Outcome = depOutcome
	return nil
}

// ApplyMonthlyInterest 對所有具計息能力的帳戶入當月利息
//
// 依加入順序迭代；逐帳戶以介面斷言偵測計息能力，
// 利息 > 0 才透過該帳戶自己的 (可能被覆寫的) Deposit 入帳
//
// 回傳:
//
//	[]*domain.Transaction: 每筆利息交易的收據
//	error: 入帳錯誤 (Hard Failure)
func (m *MutexLedger) ApplyMonthlyInterest(ctx context.Context) ([]*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	postings := make([]*domain.Transaction, 0)
	for _, acc := range m.accounts {
		bearing, ok := acc.(domain.InterestBearing)
		if !ok {
			continue
		}
		interest := bearing.MonthlyInterest()
		if interest.Sign() <= 0 {
			continue
		}
		outcome, err := acc.Deposit(interest)
		if err != nil {
			return nil, err
		}
		postings = append(postings, &domain.Transaction{
			TransactionID: uuid.New(),
			To:            acc.Number(),
			Amount:        interest,
			CreatedAt:     time.Now().UnixNano(),
			Type:          domain.TransactionTypeInterest,
			Outcome:       outcome,
		})
	}
	return postings, nil
}

var _ usecase.Ledger = (*MutexLedger)(nil)
