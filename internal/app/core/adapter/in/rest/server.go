package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-bank-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-bank-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-bank-ledger/pkg/report"
)

// Server 是 REST Driving Adapter，對應 CoreUseCase 的操作面
type Server struct {
	core *usecase.CoreUseCase
}

func NewServer(core *usecase.CoreUseCase) *Server {
	return &Server{
		core: core,
	}
}

// Router 建立路由
func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	v1 := r.Group("/v1")
	{
		v1.POST("/accounts", s.OpenAccount)
		v1.GET("/accounts", s.ListAccounts)
		v1.GET("/accounts/:number", s.GetAccount)
		v1.PATCH("/accounts/:number", s.RenameHolder)
		v1.POST("/accounts/:number/deposits", s.Deposit)
		v1.POST("/accounts/:number/withdrawals", s.Withdraw)
		v1.POST("/transfers", s.Transfer)
		v1.POST("/interest", s.ApplyMonthlyInterest)
		v1.GET("/report", s.Report)
	}
	return r
}

type OpenAccountRequest struct {
	Kind           string  `json:"kind" validate:"required,oneof=savings checking premium student"`
	Number         string  `json:"number" validate:"required"`
	Holder         string  `json:"holder" validate:"required"`
	OpeningBalance float64 `json:"openingBalance"`
}

type RenameHolderRequest struct {
	Holder string `json:"holder" validate:"required"`
}

type AmountRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type TransferRequest struct {
	From   string  `json:"from" validate:"required"`
	To     string  `json:"to" validate:"required"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// AccountView 帳戶的唯讀輸出格式
type AccountView struct {
	Number  string `json:"number"`
	Holder  string `json:"holder"`
	Kind    string `json:"kind"`
	Balance string `json:"balance"`
}

// TransactionView 交易收據的輸出格式
type TransactionView struct {
	TransactionID string `json:"transactionId"`
	Type          string `json:"type"`
	From          string `json:"from,omitempty"`
	To            string `json:"to,omitempty"`
	Amount        string `json:"amount"`
	Outcome       string `json:"outcome"`
	CreatedAt     int64  `json:"createdAt"`
}

func toAccountView(snapshot domain.AccountSnapshot) AccountView {
	return AccountView{
		Number:  snapshot.Number,
		Holder:  snapshot.Holder,
		Kind:    string(snapshot.Kind),
		Balance: snapshot.Balance.String(),
	}
}

func toTransactionView(tran *domain.Transaction) TransactionView {
	return TransactionView{
		TransactionID: tran.TransactionID.String(),
		Type:          tran.Type.String(),
		From:          tran.From,
		To:            tran.To,
		Amount:        tran.Amount.String(),
		Outcome:       tran.Outcome.String(),
		CreatedAt:     tran.CreatedAt,
	}
}

func (s *Server) OpenAccount(c *gin.Context) {
	var req OpenAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := ValidateRequest(req); validationErrors != nil {
		RespondWithValidationError(c, validationErrors)
		return
	}

	snapshot, err := s.core.OpenAccount(c.Request.Context(),
		domain.AccountKind(req.Kind), req.Number, req.Holder, req.OpeningBalance)
	if err != nil {
		s.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toAccountView(snapshot))
}

func (s *Server) ListAccounts(c *gin.Context) {
	accounts, err := s.core.ListAccounts(c.Request.Context())
	if err != nil {
		s.respondDomainError(c, err)
		return
	}
	views := make([]AccountView, 0, len(accounts))
	for _, snapshot := range accounts {
		views = append(views, toAccountView(snapshot))
	}
	c.JSON(http.StatusOK, gin.H{"accounts": views})
}

func (s *Server) GetAccount(c *gin.Context) {
	snapshot, err := s.core.GetAccount(c.Request.Context(), c.Param("number"))
	if err != nil {
		s.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAccountView(snapshot))
}

func (s *Server) RenameHolder(c *gin.Context) {
	var req RenameHolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := ValidateRequest(req); validationErrors != nil {
		RespondWithValidationError(c, validationErrors)
		return
	}

	snapshot, err := s.core.RenameHolder(c.Request.Context(), c.Param("number"), req.Holder)
	if err != nil {
		s.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAccountView(snapshot))
}

func (s *Server) Deposit(c *gin.Context) {
	s.postAmount(c, func(amount decimal.Decimal) (*domain.Transaction, error) {
		return s.core.Deposit(c.Request.Context(), c.Param("number"), amount)
	})
}

func (s *Server) Withdraw(c *gin.Context) {
	s.postAmount(c, func(amount decimal.Decimal) (*domain.Transaction, error) {
		return s.core.Withdraw(c.Request.Context(), c.Param("number"), amount)
	})
}

// postAmount 共用「單帳戶 + 金額」的請求流程
func (s *Server) postAmount(c *gin.Context, post func(decimal.Decimal) (*domain.Transaction, error)) {
	var req AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := ValidateRequest(req); validationErrors != nil {
		RespondWithValidationError(c, validationErrors)
		return
	}

	tran, err := post(decimal.NewFromFloat(req.Amount))
	if err != nil {
		s.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTransactionView(tran))
}

func (s *Server) Transfer(c *gin.Context) {
	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := ValidateRequest(req); validationErrors != nil {
		RespondWithValidationError(c, validationErrors)
		return
	}

	tran, err := s.core.Transfer(c.Request.Context(), req.From, req.To, decimal.NewFromFloat(req.Amount))
	if err != nil {
		s.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTransactionView(tran))
}

func (s *Server) ApplyMonthlyInterest(c *gin.Context) {
	postings, err := s.core.ApplyMonthlyInterest(c.Request.Context())
	if err != nil {
		s.respondDomainError(c, err)
		return
	}
	views := make([]TransactionView, 0, len(postings))
	for _, tran := range postings {
		views = append(views, toTransactionView(tran))
	}
	c.JSON(http.StatusOK, gin.H{"postings": views})
}

// Report 輸出純文字報表 (Reporting Collaborator 的唯讀介面)
func (s *Server) Report(c *gin.Context) {
	accounts, err := s.core.ListAccounts(c.Request.Context())
	if err != nil {
		s.respondDomainError(c, err)
		return
	}
	var sb strings.Builder
	report.Write(&sb, accounts)
	c.String(http.StatusOK, sb.String())
}

// respondDomainError 將 domain 錯誤對應到 HTTP 狀態碼
// NotFound -> 404, 重複帳號 -> 409, 非法參數家族 -> 400, 其餘 -> 500
func (s *Server) respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		RespondWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrAccountAlreadyExists):
		RespondWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrAmountMustBePositive),
		errors.Is(err, domain.ErrAmountNotFinite),
		errors.Is(err, domain.ErrBlankAccountNumber),
		errors.Is(err, domain.ErrBlankHolderName),
		errors.Is(err, domain.ErrOpeningBalanceTooLow),
		errors.Is(err, domain.ErrOpeningBalanceTooHigh),
		errors.Is(err, domain.ErrSameAccount),
		errors.Is(err, domain.ErrUnknownAccountKind):
		RespondWithError(c, http.StatusBadRequest, err.Error())
	default:
		RespondWithError(c, http.StatusInternalServerError, err.Error())
	}
}
