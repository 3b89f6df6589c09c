package usecase

const (
	defaultPageSize = 20
	maxPageSize     = 100

	defaultTransactionPageSize = 10

	topProductsLimit = 5
)

func clampLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > maxPageSize {
		return maxPageSize
	}
	return limit
}
