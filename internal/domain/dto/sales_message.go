package dto

// SalesRequest is the inbound watch message. A missing or out-of-range
// period defaults to 0 (daily), mirroring the watch-side behavior.
type SalesRequest struct {
	Period int `json:"period" example:"1"`
}

// SalesMessage is the single outcome message sent back to the watch.
//
// Exactly one of the two shapes is ever produced per request:
//   - status "ok":    period, total, currency populated
//   - status "error": period, error populated
//
// Fields match the watch app message keys and may differ from internal
// domain models. This ensures loose coupling between the API surface and
// business logic.
type SalesMessage struct {
	Period   int    `json:"period" example:"1"`
	Status   string `json:"status" example:"ok"`
	Total    string `json:"total,omitempty" example:"1542.50"`
	Currency string `json:"currency,omitempty" example:"$"`
	Error    string `json:"error,omitempty" example:"Rate limited: slow down"`
}

// NewSalesOK builds the success outcome for a period.
func NewSalesOK(period int, total, currency string) SalesMessage {
	return SalesMessage{Period: period, Status: "ok", Total: total, Currency: currency}
}

// NewSalesError builds the failure outcome for a period.
func NewSalesError(period int, err error) SalesMessage {
	msg := "Unknown error"
	if err != nil {
		msg = err.Error()
	}
	return SalesMessage{Period: period, Status: "error", Error: msg}
}
