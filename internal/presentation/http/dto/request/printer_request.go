package request

// CheckoutRequest is the optional body of a checkout.
type CheckoutRequest struct {
	// Print defaults to true; false closes the bill without printing.
	Print *bool `json:"print"`
}
