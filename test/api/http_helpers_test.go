package main

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	authcommands "github.com/mdjukic/inventory-api/internal/modules/auth/commands"

	"github.com/stretchr/testify/require"
)

var adminToken struct {
	sync.Mutex
	value string
}

// loginAsAdmin logs in once and hands the same token to every test so
// the suite stays inside the login rate limit.
func loginAsAdmin(t *testing.T) string {
	t.Helper()

	adminToken.Lock()
	defer adminToken.Unlock()

	if adminToken.value != "" {
		return adminToken.value
	}

	command := authcommands.LoginCommand{
		Email:    fixture.conf.Auth.AdminEmail,
		Password: fixture.conf.Auth.AdminPassword,
	}

	response, httpResp, err := sendRequest[authcommands.LoginCommand, authcommands.LoginResponse](
		fixture.client,
		fmt.Sprintf("%s%s", fixture.baseURL, "/auth/login"),
		http.MethodPost,
		command,
	)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, httpResp.StatusCode)
	require.NotEmpty(t, response.AccessToken)

	adminToken.value = response.AccessToken
	return adminToken.value
}
