package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-bank-ledger/internal/app/core/domain"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// mustAdd 為小工具：開戶並加入帳本，失敗立即讓測試失敗
func mustAdd(t *testing.T, m *MutexLedger, kind domain.AccountKind, number string, opening float64) domain.Account {
	t.Helper()
	acc, err := domain.NewAccount(kind, number, "Tester", opening)
	if err != nil {
		t.Fatalf("NewAccount(%s) err=%v", number, err)
	}
	if err := m.AddAccount(context.Background(), acc); err != nil {
		t.Fatalf("AddAccount(%s) err=%v", number, err)
	}
	return acc
}

// balance 為小工具：安全取出帳戶餘額 (走快照查詢面)
func balance(t *testing.T, m *MutexLedger, number string) decimal.Decimal {
	t.Helper()
	snapshot, err := m.FindAccount(context.Background(), number)
	if err != nil {
		t.Fatalf("FindAccount(%s) err=%v", number, err)
	}
	return snapshot.Balance
}

// transfer 為小工具：組一筆轉帳交易送進帳本
func transfer(t *testing.T, m *MutexLedger, from, to string, amount decimal.Decimal) (*domain.Transaction, error) {
	t.Helper()
	tran := &domain.Transaction{
		From:   from,
		To:     to,
		Amount: amount,
		Type:   domain.TransactionTypeTransfer,
	}
	err := m.PostTransaction(context.Background(), tran)
	return tran, err
}

// TestAddAndFind 驗證加入、查詢與帳號重複拒絕
func TestAddAndFind(t *testing.T) {
	m := NewMutexLedger()
	mustAdd(t, m, domain.KindChecking, "CHK-1", 100)

	if _, err := m.FindAccount(context.Background(), "CHK-1"); err != nil {
		t.Fatal(err)
	}
	if _, err := m.FindAccount(context.Background(), "NOPE"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("want ErrAccountNotFound, got %v", err)
	}

	// 帳號重複必須拒絕
	dup, _ := domain.NewCheckingAccount("CHK-1", "Other", 100)
	if err := m.AddAccount(context.Background(), dup); !errors.Is(err, domain.ErrAccountAlreadyExists) {
		t.Fatalf("want ErrAccountAlreadyExists, got %v", err)
	}
}

// TestRenameHolder 驗證戶名變更在帳本內完成：
// 去空白後設定、空白戶名拒絕且狀態不變、不存在的帳戶回報錯誤
func TestRenameHolder(t *testing.T) {
	m := NewMutexLedger()
	mustAdd(t, m, domain.KindChecking, "CHK-1", 100)

	snapshot, err := m.RenameHolder(context.Background(), "CHK-1", "  Bob  ")
	if err != nil {
		t.Fatal(err)
	}
	if snapshot.Holder != "Bob" {
		t.Fatalf("holder=%q want=Bob", snapshot.Holder)
	}

	if _, err := m.RenameHolder(context.Background(), "CHK-1", "   "); !errors.Is(err, domain.ErrBlankHolderName) {
		t.Fatalf("want ErrBlankHolderName, got %v", err)
	}
	snapshot, _ = m.FindAccount(context.Background(), "CHK-1")
	if snapshot.Holder != "Bob" {
		t.Fatalf("holder changed on rejected rename: %q", snapshot.Holder)
	}

	if _, err := m.RenameHolder(context.Background(), "NOPE", "Bob"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("want ErrAccountNotFound, got %v", err)
	}
}

// TestConcurrentAccess 驗證所有操作都在帳本的臨界區內完成：
// 併發的改名 / 入帳 / 查詢交錯執行不得互相干擾 (配合 -race 執行驗證無 data race)
func TestConcurrentAccess(t *testing.T) {
	m := NewMutexLedger()
	mustAdd(t, m, domain.KindChecking, "CHK-1", 1000)

	const iterations = 200
	var wg sync.WaitGroup
	wg.Add(3)

	// 改名者
	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			name := "Alice"
			if i%2 == 1 {
				name = "Bob"
			}
			if _, err := m.RenameHolder(context.Background(), "CHK-1", name); err != nil {
				t.Errorf("RenameHolder err=%v", err)
				return
			}
		}
	}()

	// 入帳者
	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			tran := &domain.Transaction{To: "CHK-1", Amount: d("1"), Type: domain.TransactionTypeDeposit}
			if err := m.PostTransaction(context.Background(), tran); err != nil {
				t.Errorf("PostTransaction err=%v", err)
				return
			}
		}
	}()

	// 讀取者：單帳戶快照與報表列表
	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			snapshot, err := m.FindAccount(context.Background(), "CHK-1")
			if err != nil {
				t.Errorf("FindAccount err=%v", err)
				return
			}
			if snapshot.Holder == "" {
				t.Errorf("snapshot holder is blank")
				return
			}
			if _, err := m.ListAccounts(context.Background()); err != nil {
				t.Errorf("ListAccounts err=%v", err)
				return
			}
		}
	}()

	wg.Wait()

	// 入帳全數生效：1000 + 200*1
	if got := balance(t, m, "CHK-1"); !got.Equal(d("1200")) {
		t.Fatalf("balance=%s want=1200", got)
	}
}

// TestListAccountsOrder 驗證列出順序 = 加入順序
func TestListAccountsOrder(t *testing.T) {
	m := NewMutexLedger()
	numbers := []string{"B-2", "A-1", "C-3"}
	for _, n := range numbers {
		mustAdd(t, m, domain.KindChecking, n, 100)
	}
	accounts, err := m.ListAccounts(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	for i, n := range numbers {
		if accounts[i].Number != n {
			t.Fatalf("accounts[%d]=%s want=%s", i, accounts[i].Number, n)
		}
	}
}

// TestDepositWithdrawTransactions 驗證存款 / 提款交易分發與 Outcome 回填
func TestDepositWithdrawTransactions(t *testing.T) {
	m := NewMutexLedger()
	mustAdd(t, m, domain.KindChecking, "CHK-1", 100)

	dep := &domain.Transaction{To: "CHK-1", Amount: d("50"), Type: domain.TransactionTypeDeposit}
	if err := m.PostTransaction(context.Background(), dep); err != nil {
		t.Fatal(err)
	}
	if !dep.Outcome.Applied() {
		t.Fatalf("deposit outcome=%s", dep.Outcome)
	}

	wd := &domain.Transaction{From: "CHK-1", Amount: d("30"), Type: domain.TransactionTypeWithdraw}
	if err := m.PostTransaction(context.Background(), wd); err != nil {
		t.Fatal(err)
	}
	if got := balance(t, m, "CHK-1"); !got.Equal(d("120")) {
		t.Fatalf("balance=%s want=120", got)
	}

	// 不存在的帳戶：Hard Failure
	missing := &domain.Transaction{To: "NOPE", Amount: d("1"), Type: domain.TransactionTypeDeposit}
	if err := m.PostTransaction(context.Background(), missing); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("want ErrAccountNotFound, got %v", err)
	}
}

// TestTransferSameAccount 自己轉給自己一律拒絕，與金額無關
func TestTransferSameAccount(t *testing.T) {
	m := NewMutexLedger()
	mustAdd(t, m, domain.KindChecking, "CHK-1", 100)
	if _, err := transfer(t, m, "CHK-1", "CHK-1", d("10")); !errors.Is(err, domain.ErrSameAccount) {
		t.Fatalf("want ErrSameAccount, got %v", err)
	}
}

// TestTransferNotFound 任一端不存在即失敗，雙方餘額不變
func TestTransferNotFound(t *testing.T) {
	m := NewMutexLedger()
	mustAdd(t, m, domain.KindChecking, "CHK-1", 100)

	if _, err := transfer(t, m, "CHK-1", "NOPE", d("10")); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("want ErrAccountNotFound, got %v", err)
	}
	if _, err := transfer(t, m, "NOPE", "CHK-1", d("10")); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("want ErrAccountNotFound, got %v", err)
	}
	if got := balance(t, m, "CHK-1"); !got.Equal(d("100")) {
		t.Fatalf("balance=%s want=100", got)
	}
}

// TestTransferRejectedWithdrawStopsDeposit 驗證政策拒絕的提款會中止轉帳：
// 收款方不得在扣款方未扣款的情況下被入帳
func TestTransferRejectedWithdrawStopsDeposit(t *testing.T) {
	m := NewMutexLedger()
	mustAdd(t, m, domain.KindSavings, "SAV-1", 600)
	mustAdd(t, m, domain.KindChecking, "CHK-1", 100)

	// 600 - 200 = 400 < 500：儲蓄帳戶拒絕提款
	tran, err := transfer(t, m, "SAV-1", "CHK-1", d("200"))
	if err != nil {
		t.Fatal(err)
	}
	if tran.Outcome != domain.OutcomeRejectedMinBalance {
		t.Fatalf("outcome=%s want=rejected_min_balance", tran.Outcome)
	}
	if got := balance(t, m, "SAV-1"); !got.Equal(d("600")) {
		t.Fatalf("sender balance=%s want=600", got)
	}
	if got := balance(t, m, "CHK-1"); !got.Equal(d("100")) {
		t.Fatalf("receiver credited on rejected withdraw: %s", got)
	}
}

// TestTransferDepositRejectedCompensatesSender 驗證入帳端政策拒絕時的補償：
// 扣款方餘額回到轉帳前 (但 Savings 提款計數不回退)
func TestTransferDepositRejectedCompensatesSender(t *testing.T) {
	m := NewMutexLedger()
	sender := mustAdd(t, m, domain.KindSavings, "SAV-1", 5000)
	mustAdd(t, m, domain.KindStudent, "STU-1", 4000)

	// 4000 + 1100 = 5100 > 5000：學生帳戶拒絕入帳
	tran, err := transfer(t, m, "SAV-1", "STU-1", d("1100"))
	if err != nil {
		t.Fatal(err)
	}
	if tran.Outcome != domain.OutcomeRejectedCapExceeded {
		t.Fatalf("outcome=%s want=rejected_cap_exceeded", tran.Outcome)
	}
	if got := balance(t, m, "SAV-1"); !got.Equal(d("5000")) {
		t.Fatalf("sender balance=%s want=5000 (compensated)", got)
	}
	if got := balance(t, m, "STU-1"); !got.Equal(d("4000")) {
		t.Fatalf("receiver balance=%s want=4000", got)
	}
	// 補償只還餘額：提款計數已消耗
	if sav := sender.(*domain.SavingsAccount); sav.Withdrawals() != 1 {
		t.Fatalf("withdrawals=%d want=1", sav.Withdrawals())
	}
}

// TestApplyMonthlyInterest 驗證月息批次：
// 只有具計息能力的帳戶入息，金額精確，收據依加入順序
func TestApplyMonthlyInterest(t *testing.T) {
	m := NewMutexLedger()
	mustAdd(t, m, domain.KindSavings, "SAV-1", 1200)
	mustAdd(t, m, domain.KindChecking, "CHK-1", 100)
	mustAdd(t, m, domain.KindPremium, "PRM-1", 20100)
	mustAdd(t, m, domain.KindStudent, "STU-1", 3000)

	postings, err := m.ApplyMonthlyInterest(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(postings) != 2 {
		t.Fatalf("postings=%d want=2", len(postings))
	}
	if postings[0].To != "SAV-1" || !postings[0].Amount.Equal(d("2")) {
		t.Fatalf("postings[0]=%s %s", postings[0].To, postings[0].Amount)
	}
	if postings[1].To != "PRM-1" || !postings[1].Amount.Equal(d("83.75")) {
		t.Fatalf("postings[1]=%s %s", postings[1].To, postings[1].Amount)
	}

	if got := balance(t, m, "SAV-1"); !got.Equal(d("1202")) {
		t.Fatalf("savings balance=%s want=1202", got)
	}
	if got := balance(t, m, "PRM-1"); !got.Equal(d("20183.75")) {
		t.Fatalf("premium balance=%s want=20183.75", got)
	}
	// 無計息能力的帳戶不動
	if got := balance(t, m, "CHK-1"); !got.Equal(d("100")) {
		t.Fatalf("checking balance=%s want=100", got)
	}
	if got := balance(t, m, "STU-1"); !got.Equal(d("3000")) {
		t.Fatalf("student balance=%s want=3000", got)
	}
}

// TestEndToEndScenario 端到端情境：
// 儲蓄提款 -> 支票透支 -> 跨帳戶轉帳 -> 月息批次
func TestEndToEndScenario(t *testing.T) {
	m := NewMutexLedger()
	savings := mustAdd(t, m, domain.KindSavings, "SAV-1", 1500)
	mustAdd(t, m, domain.KindChecking, "CHK-1", 500)
	mustAdd(t, m, domain.KindPremium, "PRM-1", 20000)

	// 儲蓄提款 200 -> 1300, withdrawals=1
	wd := &domain.Transaction{From: "SAV-1", Amount: d("200"), Type: domain.TransactionTypeWithdraw}
	if err := m.PostTransaction(context.Background(), wd); err != nil || !wd.Outcome.Applied() {
		t.Fatalf("outcome=%s err=%v", wd.Outcome, err)
	}
	if got := balance(t, m, "SAV-1"); !got.Equal(d("1300")) {
		t.Fatalf("savings=%s want=1300", got)
	}
	if sav := savings.(*domain.SavingsAccount); sav.Withdrawals() != 1 {
		t.Fatalf("withdrawals=%d want=1", sav.Withdrawals())
	}

	// 支票提款 600 -> -100，透支費 -> -135
	wd = &domain.Transaction{From: "CHK-1", Amount: d("600"), Type: domain.TransactionTypeWithdraw}
	if err := m.PostTransaction(context.Background(), wd); err != nil {
		t.Fatal(err)
	}
	if got := balance(t, m, "CHK-1"); !got.Equal(d("-135")) {
		t.Fatalf("checking=%s want=-135", got)
	}

	// 轉帳 100: SAV-1 -> PRM-1
	tran, err := transfer(t, m, "SAV-1", "PRM-1", d("100"))
	if err != nil || !tran.Outcome.Applied() {
		t.Fatalf("outcome=%s err=%v", tran.Outcome, err)
	}
	if got := balance(t, m, "SAV-1"); !got.Equal(d("1200")) {
		t.Fatalf("savings=%s want=1200", got)
	}
	if got := balance(t, m, "PRM-1"); !got.Equal(d("20100")) {
		t.Fatalf("premium=%s want=20100", got)
	}

	// 月息批次: SAV +2 -> 1202, PRM +83.75 -> 20183.75
	if _, err := m.ApplyMonthlyInterest(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := balance(t, m, "SAV-1"); !got.Equal(d("1202")) {
		t.Fatalf("savings=%s want=1202", got)
	}
	if got := balance(t, m, "PRM-1"); !got.Equal(d("20183.75")) {
		t.Fatalf("premium=%s want=20183.75", got)
	}
}
