package domain

// TokenizeRequest exchanges raw payment method data for a processor token.
type TokenizeRequest struct {
	PaymentMethod PaymentMethodData
}

// TokenizeResponse returns the processor token.
type TokenizeResponse struct {
	Token string
}

// SessionRequest opens a wallet session with the processor.
type SessionRequest struct {
	Amount   MinorUnit
	Currency Currency
}

// SessionResponse returns processor session data.
type SessionResponse struct {
	SessionToken string
}

// AccessTokenRequest exchanges long-lived credentials for a short-lived
// access token.
type AccessTokenRequest struct {
	AppID string
}

// AccessToken is a short-lived bearer credential.
type AccessToken struct {
	Token     string
	ExpiresIn int64
}

// SetupMandateRequest registers a payment method for off-session charging.
type SetupMandateRequest struct {
	Currency      Currency
	PaymentMethod PaymentMethodData
	Reference     string
}
