package domain

// AuthType is the closed set of credential shapes a connector can be
// configured with. Each adapter accepts exactly one variant and must fail
// auth-header construction for any other.
type AuthType interface {
	isAuthType()
}

// HeaderKeyAuth is a single API key sent in a header.
type HeaderKeyAuth struct {
	APIKey string
}

// BodyKeyAuth is an API key plus one extra credential.
type BodyKeyAuth struct {
	APIKey string
	Key1   string
}

// SignatureKeyAuth is an API key, an extra credential and a signing secret.
type SignatureKeyAuth struct {
	APIKey    string
	Key1      string
	APISecret string
}

func (HeaderKeyAuth) isAuthType()    {}
func (BodyKeyAuth) isAuthType()      {}
func (SignatureKeyAuth) isAuthType() {}
