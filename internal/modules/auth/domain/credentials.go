package domain

// CredentialVerifier checks a submitted identity/secret pair. The single
// boolean keeps callers from distinguishing an unknown identity from a
// wrong secret.
type CredentialVerifier interface {
	Verify(email, password string) bool
}

// FixedAdminVerifier guards the one built-in administrator identity.
type FixedAdminVerifier struct {
	email        string
	passwordHash string
	hasher       *PasswordHasher
}

var _ CredentialVerifier = (*FixedAdminVerifier)(nil)

func NewFixedAdminVerifier(email, password string, hasher *PasswordHasher) (*FixedAdminVerifier, error) {
	passwordHash, err := hasher.HashPassword(password)
	if err != nil {
		return nil, err
	}

	return &FixedAdminVerifier{
		email:        email,
		passwordHash: passwordHash,
		hasher:       hasher,
	}, nil
}

func (v *FixedAdminVerifier) Verify(email, password string) bool {
	// The hash check runs regardless of the email comparison so both
	// failure paths cost about the same.
	passwordMatches := v.hasher.Verify(v.passwordHash, password) == nil
	return email == v.email && passwordMatches
}
