package dto

type TopUpRequest struct {
	Amount float64 `json:"amount"`
}

type TopUpResult struct {
	Balance float64 `json:"balance"`
}

func NewTopUpResult(balance float64) *TopUpResult {
	return &TopUpResult{Balance: balance}
}
