package dto

// Payment fields are collected but only checked for presence; no real
// payment authorization happens.
type CheckoutRequest struct {
	CardNumber     string `json:"card_number" validate:"required"`
	ExpiryDate     string `json:"expiry_date" validate:"required"`
	CVV            string `json:"cvv" validate:"required"`
	CardholderName string `json:"cardholder_name" validate:"required"`
}
