package domain

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// BalanceGuard определяет поведение применения дельты баланса.
type BalanceGuard int

const (
	// GuardNone дельта применяется без проверок.
	GuardNone BalanceGuard = iota
	// GuardNonNegative операция отклоняется, если итоговый баланс ушел бы в минус.
	GuardNonNegative
)
