package domain

// Account represents one billable counterparty.
type Account struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	PANNo         string  `json:"panNo"`
	GSTNo         string  `json:"gstNo"`
	Address       string  `json:"address"`
	ContactPerson string  `json:"contactPerson"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Discount      float64 `json:"discount"`
	Amount        float64 `json:"amount"`
}

// Draft is a form-shaped copy of an account used while composing an add
// or edit. It never carries an id; the store assigns one on add.
type Draft struct {
	Name          string  `json:"name"`
	PANNo         string  `json:"panNo"`
	GSTNo         string  `json:"gstNo"`
	Address       string  `json:"address"`
	ContactPerson string  `json:"contactPerson"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Discount      float64 `json:"discount"`
	Amount        float64 `json:"amount"`
}
