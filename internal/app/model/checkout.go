package model

// BillingDetails is the checkout form as submitted by the customer
type BillingDetails struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Country   string `json:"country"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
}
