package domain

import "errors"

var (
	// ErrAmountMustBePositive 金額必須為正數
	ErrAmountMustBePositive = errors.New("amount must be positive")

	// ErrAmountNotFinite 金額必須為有限數值 (拒絕 NaN / ±Inf)
	ErrAmountNotFinite = errors.New("amount must be a finite number")

	// ErrBlankAccountNumber 帳號不得為空白
	ErrBlankAccountNumber = errors.New("account number must not be blank")

	// ErrBlankHolderName 戶名不得為空白
	ErrBlankHolderName = errors.New("holder name must not be blank")

	// ErrOpeningBalanceTooLow 開戶餘額低於該帳戶類型的下限
	ErrOpeningBalanceTooLow = errors.New("opening balance below required minimum")

	// ErrOpeningBalanceTooHigh 開戶餘額高於該帳戶類型的上限
	ErrOpeningBalanceTooHigh = errors.New("opening balance above allowed maximum")

	// ErrAccountNotFound 找不到帳戶
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountAlreadyExists 帳戶已存在 (帳號重複)
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrSameAccount 轉帳來源與目標帳戶相同
	ErrSameAccount = errors.New("from and to are same account")

	// ErrUnknownAccountKind 不支援的帳戶類型
	ErrUnknownAccountKind = errors.New("unknown account kind")
)
