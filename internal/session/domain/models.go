package domain

// Selection is the session's view of the active account: the reference
// plus the figures captured at selection time. InvoiceAmount is editable
// independently and does not track later row edits.
type Selection struct {
	ActiveAccountID int64   `json:"activeAccountId"`
	InvoiceAmount   float64 `json:"invoiceAmount"`
	Discount        float64 `json:"discount"`
	GSTNo           string  `json:"gstNo"`
}

// Breakdown holds the derived figures for the active invoice amount.
type Breakdown struct {
	InvoiceAmount  float64 `json:"invoiceAmount"`
	DiscountAmount float64 `json:"discountAmount"`
	AfterDiscount  float64 `json:"afterDiscount"`
	GST            float64 `json:"gst"`
	FinalAmount    float64 `json:"finalAmount"`
}
