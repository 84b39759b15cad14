package model

type CustomerRole string

const (
	RoleCustomer CustomerRole = "customer"
	RoleAdmin    CustomerRole = "admin"
)

// Customer is a registered storefront account. Passwords are stored as
// bcrypt hashes only; the hash is omitted from API responses.
type Customer struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"` // unique, enforced at registration
	PasswordHash string       `json:"-"`
	Role         CustomerRole `json:"role"`
	JoinDate     string       `json:"joinDate"` // ISO timestamp
}

// CustomerSnapshot is the persisted form of Customer: unlike the API view
// it must round-trip the password hash.
type CustomerSnapshot struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"passwordHash"`
	Role         CustomerRole `json:"role"`
	JoinDate     string       `json:"joinDate"`
}

// SnapshotCustomers converts customers into their persisted form
func SnapshotCustomers(customers []Customer) []CustomerSnapshot {
	out := make([]CustomerSnapshot, len(customers))
	for i, c := range customers {
		out[i] = CustomerSnapshot(c)
	}
	return out
}

// RestoreCustomers converts persisted customers back to the domain form
func RestoreCustomers(rows []CustomerSnapshot) []Customer {
	out := make([]Customer, len(rows))
	for i, r := range rows {
		out[i] = Customer(r)
	}
	return out
}
