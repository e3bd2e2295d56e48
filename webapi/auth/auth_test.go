package auth_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/amirasaad/expensetracker/internal/fixtures"
	"github.com/amirasaad/expensetracker/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

type AuthTestSuite struct {
	suite.Suite
	app *fiber.App
}

func (s *AuthTestSuite) SetupTest() {
	s.app, _ = testutils.NewTestApp(s.T(), fixtures.NewMemoryUoW(), testutils.NewTestConfig(s.T().TempDir()))
}

func (s *AuthTestSuite) request(method, path, body, token string) *http.Response {
	return testutils.MakeRequest(s.T(), s.app, method, path, body, token)
}

func (s *AuthTestSuite) TestRegister_DuplicateEmail() {
	body := `{"email":"dup@example.com","password":"secret1"}`
	testutils.DecodeData(s.T(), s.request("POST", "/auth/register", body, ""), fiber.StatusCreated, nil)
	testutils.DecodeData(s.T(), s.request("POST", "/auth/register", body, ""), fiber.StatusConflict, nil)
	// Email comparison ignores case.
	testutils.DecodeData(s.T(),
		s.request("POST", "/auth/register", `{"email":"DUP@example.com","password":"secret1"}`, ""),
		fiber.StatusConflict, nil)
}

func (s *AuthTestSuite) TestRegister_Invalid() {
	for _, body := range []string{
		`{"email":"not-an-email","password":"secret1"}`,
		`{"email":"a@example.com","password":"123"}`,
		`{"email":"a@example.com"}`,
		`not json`,
	} {
		resp := s.request("POST", "/auth/register", body, "")
		s.Equalf(fiber.StatusBadRequest, resp.StatusCode, "body %s", body)
		_ = resp.Body.Close()
	}
}

func (s *AuthTestSuite) TestLogin_BadCredentials() {
	_, _ = testutils.RegisterAndLogin(s.T(), s.app)

	resp := s.request("POST", "/auth/login", `{"email":"nobody@example.com","password":"password123"}`, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	s.Equal("application/problem+json", resp.Header.Get("Content-Type"))
}

func (s *AuthTestSuite) TestLogin_WrongPassword() {
	body := `{"email":"pw@example.com","password":"secret1"}`
	testutils.DecodeData(s.T(), s.request("POST", "/auth/register", body, ""), fiber.StatusCreated, nil)

	resp := s.request("POST", "/auth/login", `{"email":"pw@example.com","password":"secret2"}`, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *AuthTestSuite) TestRefreshAndLogout() {
	body := `{"email":"flow@example.com","password":"secret1"}`
	testutils.DecodeData(s.T(), s.request("POST", "/auth/register", body, ""), fiber.StatusCreated, nil)

	var login struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
		TokenType    string `json:"tokenType"`
		User         struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	testutils.DecodeData(s.T(), s.request("POST", "/auth/login", body, ""), fiber.StatusOK, &login)
	s.Equal("bearer", login.TokenType)
	s.Equal("flow@example.com", login.User.Email)

	refreshBody := fmt.Sprintf(`{"refreshToken":%q}`, login.RefreshToken)
	var refreshed struct {
		AccessToken string `json:"accessToken"`
	}
	testutils.DecodeData(s.T(), s.request("POST", "/auth/refresh-token", refreshBody, ""), fiber.StatusOK, &refreshed)
	s.NotEmpty(refreshed.AccessToken)

	// An access token is not accepted as a refresh token.
	testutils.DecodeData(s.T(),
		s.request("POST", "/auth/refresh-token", fmt.Sprintf(`{"refreshToken":%q}`, login.AccessToken), ""),
		fiber.StatusForbidden, nil)

	testutils.DecodeData(s.T(), s.request("POST", "/auth/logout", "", refreshed.AccessToken), fiber.StatusOK, nil)
	testutils.DecodeData(s.T(), s.request("POST", "/auth/refresh-token", refreshBody, ""), fiber.StatusForbidden, nil)
}

func (s *AuthTestSuite) TestLogout_RequiresBearer() {
	resp := s.request("POST", "/auth/logout", "", "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthTestSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}
