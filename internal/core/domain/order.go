package domain

// Customer identifies the buyer on a checkout request. Document is a CPF or
// CNPJ; DocumentType distinguishes the two.
type Customer struct {
	Name         string
	Email        string
	Document     string
	DocumentType string
	Phone        string
}

type Address struct {
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	State        string
	ZipCode      string
}

// Item is a single order line. Price is in currency-decimal units (BRL),
// never cents; conversion happens once at the gateway boundary.
type Item struct {
	Name     string
	Price    float64
	Quantity int
}

type Shipping struct {
	Carrier string
	Price   float64
}

// Order is the transient shape of a checkout request. It is never persisted
// as an entity; the gateway owns the charge the order turns into.
type Order struct {
	Customer Customer
	Address  Address
	Items    []Item
	Shipping Shipping
	Total    float64
}

// Validate enforces the checkout invariants: a positive total, at least one
// item, and a complete customer block.
func (o *Order) Validate() error {
	if o.Customer.Name == "" {
		return NewValidationError("customer name is required")
	}
	if o.Customer.Email == "" {
		return NewValidationError("customer email is required")
	}
	if o.Customer.Document == "" {
		return NewValidationError("customer document is required")
	}
	if o.Customer.Phone == "" {
		return NewValidationError("customer phone is required")
	}
	if len(o.Items) == 0 {
		return NewValidationError("order must have at least one item")
	}
	if o.Total <= 0 {
		return NewValidationError("order total must be a positive amount")
	}
	return nil
}
