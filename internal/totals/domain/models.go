package domain

// Totals aggregates the derived figures across every account in the
// store. It is recomputed from the store on read, never cached.
type Totals struct {
	Amount          float64 `json:"amount"`
	DiscountAmount  float64 `json:"discountAmount"`
	DiscountedTotal float64 `json:"discountedTotal"`
	GST             float64 `json:"gst"`
	FinalAmount     float64 `json:"finalAmount"`
}
