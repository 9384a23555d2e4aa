package domain

const (
	passwordMinLen = 6
	passwordMaxLen = 36
)

// Customer is a registered buyer.
//
// The password is stored as received. The upstream system keeps it in plain
// text and this port reproduces that behavior; it is a known weakness, not
// an endorsement.
type Customer struct {
	ID       int64
	Name     string
	Address  string
	Email    string
	Password string
}

// Validate checks the field constraints of a candidate customer.
func (c Customer) Validate() error {
	if isBlank(c.Name) {
		return newValidation("name", "must not be blank")
	}
	if isBlank(c.Address) {
		return newValidation("address", "must not be blank")
	}
	if isBlank(c.Email) {
		return newValidation("email", "must not be blank")
	}
	if isBlank(c.Password) {
		return newValidation("password", "must not be blank")
	}
	if len(c.Password) < passwordMinLen || len(c.Password) > passwordMaxLen {
		return newValidation("password", "must be between 6-36 characters")
	}
	return nil
}
