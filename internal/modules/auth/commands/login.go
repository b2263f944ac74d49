package commands

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/mdjukic/inventory-api/internal/modules/auth"
	"github.com/mdjukic/inventory-api/internal/modules/auth/domain"
	"github.com/mdjukic/inventory-api/internal/modules/core"

	"github.com/eskrenkovic/mediator-go"
	"github.com/google/uuid"
)

type LoginCommand struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c LoginCommand) Validate() error {
	var errs core.FieldErrors

	if strings.TrimSpace(c.Email) == "" {
		errs.Add("email", "email is required")
	}

	if c.Password == "" {
		errs.Add("password", "password is required")
	}

	return errs.AsError()
}

type LoginResponse struct {
	AccessToken      string   `json:"accessToken"`
	ExpiresInSeconds int64    `json:"expiresInSeconds"`
	SubjectID        string   `json:"subjectId"`
	Email            string   `json:"email"`
	Claims           []string `json:"claims"`
}

func HandleLogin(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[LoginCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, core.ErrBody(err))
		return
	}

	response, err := mediator.Send[LoginCommand, LoginResponse](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

// LoginCommandHandler walks every login attempt through the same three
// steps: verify the credential pair, mint a token, report the claim set.
// No session state survives the request.
type LoginCommandHandler struct {
	verifier  domain.CredentialVerifier
	issuer    *auth.TokenIssuer
	subjectID uuid.UUID
}

func NewLoginCommandHandler(verifier domain.CredentialVerifier, issuer *auth.TokenIssuer) *LoginCommandHandler {
	return &LoginCommandHandler{
		verifier: verifier,
		issuer:   issuer,
		// The subject id stays stable for the process lifetime so the
		// tokens a deployment issues are attributable to one principal.
		subjectID: uuid.New(),
	}
}

func (h *LoginCommandHandler) Handle(
	ctx context.Context,
	request LoginCommand,
) (LoginResponse, error) {
	if !h.verifier.Verify(request.Email, request.Password) {
		return LoginResponse{}, core.NewCommandError(401, nil, core.WithReason("invalid credentials"))
	}

	token, claims, err := h.issuer.Issue(h.subjectID, request.Email)
	if err != nil {
		return LoginResponse{}, core.NewCommandError(500, err, core.WithReason("failed to issue token"))
	}

	return LoginResponse{
		AccessToken:      token,
		ExpiresInSeconds: int64(h.issuer.Lifetime() / time.Second),
		SubjectID:        claims.Subject,
		Email:            request.Email,
		Claims:           []string{auth.NameClaim, auth.RoleClaim},
	}, nil
}
