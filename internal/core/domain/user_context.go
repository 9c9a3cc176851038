package domain

// Principal is the authenticated caller as supplied by the auth
// collaborator. Token is the opaque bearer credential.
type Principal struct {
	UserID string
	Token  string
}

// Authenticated reports whether a credential is present.
func (p Principal) Authenticated() bool {
	return p.Token != "" && p.UserID != ""
}
