package main

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/mdjukic/inventory-api/internal/modules/auth"
	authcommands "github.com/mdjukic/inventory-api/internal/modules/auth/commands"

	"github.com/stretchr/testify/require"
)

func loginURL() string {
	return fmt.Sprintf("%s%s", fixture.baseURL, "/auth/login")
}

func Test_Login_Returns_Token_For_Admin_Credentials(t *testing.T) {
	// Arrange
	command := authcommands.LoginCommand{
		Email:    fixture.conf.Auth.AdminEmail,
		Password: fixture.conf.Auth.AdminPassword,
	}

	// Act
	response, httpResp, err := sendRequest[authcommands.LoginCommand, authcommands.LoginResponse](
		fixture.client,
		loginURL(),
		http.MethodPost,
		command,
	)

	// Assert
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, httpResp.StatusCode)

	require.NotEmpty(t, response.AccessToken)
	require.NotEmpty(t, response.SubjectID)
	require.Equal(t, fixture.conf.Auth.AdminEmail, response.Email)
	require.Equal(t, int64(fixture.conf.Auth.ExpirationHours*60*60), response.ExpiresInSeconds)
	require.ElementsMatch(t, []string{auth.NameClaim, auth.RoleClaim}, response.Claims)
}

func Test_Login_Rejects_Wrong_Credentials(t *testing.T) {
	// Arrange
	command := authcommands.LoginCommand{
		Email:    fixture.conf.Auth.AdminEmail,
		Password: "definitely-not-it",
	}

	// Act
	_, httpResp, err := sendRequest[authcommands.LoginCommand, authcommands.LoginResponse](
		fixture.client,
		loginURL(),
		http.MethodPost,
		command,
	)

	// Assert
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, httpResp.StatusCode)
}

func Test_Login_Rejects_Incomplete_Request(t *testing.T) {
	// Arrange
	command := authcommands.LoginCommand{
		Email: fixture.conf.Auth.AdminEmail,
	}

	// Act
	response, httpResp, err := sendRequest[authcommands.LoginCommand, commandErrorBody](
		fixture.client,
		loginURL(),
		http.MethodPost,
		command,
	)

	// Assert
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, httpResp.StatusCode)
	require.Len(t, response.Payload.Errors, 1)
	require.Equal(t, "password", response.Payload.Errors[0].Field)
}
