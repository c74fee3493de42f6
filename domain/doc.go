// Package domain provides validated value objects.
//
// Each value object guards a single primitive behind a constructor that either
// returns a fully valid instance or a *errors.ValidationError naming the field
// and the violated rule. Payloads live in unexported fields and are only
// reachable through read accessors, so an instance can never be observed in
// an invalid state:
//
//   - Street, City: non-empty names
//   - PostalCode: exactly 5 ASCII digits
//   - PhoneNumber: exactly 10 ASCII digits
//   - Email: contains "@" (deliberately weak; not an RFC 5322 check)
//   - Money: non-negative decimal amount
//   - CustomerID: non-empty identifier, optionally produced by an IDGenerator
//
// Aggregates (Address, Contact, User, Customer, Product) own their value
// objects. All value objects implement JSON, text and YAML (un)marshaling and
// re-run their constructor when decoding, so the invariant also holds for
// values read from configuration files or wire payloads.
//
// Example usage:
//
//	addr, err := domain.NewAddress("123 Main St", "New York", "10001")
//	if err != nil {
//	    // err is an errors.ValidationErrors listing every bad field
//	}
//
//	id, _ := domain.GenerateCustomerID(domain.UUIDGenerator{})
//	price := domain.MustNewMoney(decimal.RequireFromString("19.99"))
package domain
