package testutils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/expensetracker/infra"
	infra_cache "github.com/amirasaad/expensetracker/infra/cache"
	infrarepo "github.com/amirasaad/expensetracker/infra/repository"
	infra_storage "github.com/amirasaad/expensetracker/infra/storage"
	"github.com/amirasaad/expensetracker/internal/migrations"
	"github.com/amirasaad/expensetracker/pkg/app"
	"github.com/amirasaad/expensetracker/pkg/config"
	"github.com/amirasaad/expensetracker/pkg/repository"
	"github.com/amirasaad/expensetracker/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const TestPassword = "password123"

// Envelope is the success body written by common.SuccessResponseJSON with
// the payload left raw for the caller to decode.
type Envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// NewTestConfig returns a config suitable for tests, storing uploads under
// uploadDir.
func NewTestConfig(uploadDir string) *config.App {
	return &config.App{
		Env:    "test",
		Server: &config.Server{Scheme: "http", Host: "localhost", Port: 3000},
		Log:    &config.Log{Format: "text"},
		DB:     &config.DB{QueryTimeout: 5 * time.Second, MaxOpenConns: 10, MaxIdleConns: 5},
		Auth: &config.Auth{Jwt: &config.Jwt{
			AccessSecret:  "test-access-secret",
			RefreshSecret: "test-refresh-secret",
			AccessExpiry:  15 * time.Minute,
			RefreshExpiry: 24 * time.Hour,
		}},
		Redis:     &config.Redis{},
		RateLimit: &config.RateLimit{MaxRequests: 10000, Window: time.Minute},
		Upload:    &config.Upload{Dir: uploadDir, URLPrefix: "/uploads", MaxBytes: 1 << 20},
	}
}

// NewTestApp builds the full HTTP app over uow with an in-memory session
// store and avatars written to cfg.Upload.Dir.
func NewTestApp(t testing.TB, uow repository.UnitOfWork, cfg *config.App) (*fiber.App, *app.App) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	avatars, err := infra_storage.NewLocalFileStore(cfg.Upload.Dir, cfg.Upload.URLPrefix, logger)
	require.NoError(t, err)
	a := app.New(config.Deps{
		Uow:      uow,
		Sessions: infra_cache.NewMemorySessionStore(),
		Avatars:  avatars,
		Logger:   logger,
		Config:   cfg,
	})
	return webapi.SetupApp(a), a
}

// E2ETestSuite provides a test suite with a real Postgres database using Testcontainers
type E2ETestSuite struct {
	suite.Suite
	pgContainer *tcpostgres.PostgresContainer
	App         *fiber.App
	Cfg         *config.App
}

// startPostgresContainer starts a Postgres container using Testcontainers
func (s *E2ETestSuite) startPostgresContainer(ctx context.Context) (*tcpostgres.PostgresContainer, error) {
	return tcpostgres.Run(
		ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(60*time.Second),
		),
	)
}

// SetupSuite initializes the test suite with a real Postgres database
func (s *E2ETestSuite) SetupSuite() {
	if testing.Short() {
		s.T().Skip("skipping container-backed tests in short mode")
	}
	ctx := context.Background()
	log.SetOutput(io.Discard)

	pg, err := s.startPostgresContainer(ctx)
	s.Require().NoError(err)
	s.pgContainer = pg

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.Cfg = NewTestConfig(s.T().TempDir())
	s.Cfg.DB.Url = dsn

	db, err := infra.NewDBConnection(s.Cfg.DB, s.Cfg.Env)
	s.Require().NoError(err)
	sqlDB, err := db.DB()
	s.Require().NoError(err)
	s.Require().NoError(migrations.Up(sqlDB))

	uow := infrarepo.NewUoW(db, infrarepo.WithTimeout(s.Cfg.DB.QueryTimeout))
	s.App, _ = NewTestApp(s.T(), uow, s.Cfg)
}

// TearDownSuite cleans up the test suite resources
func (s *E2ETestSuite) TearDownSuite() {
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(context.Background())
	}
}

// MakeRequest is a helper for making HTTP requests in tests
func (s *E2ETestSuite) MakeRequest(method, path, body, token string) *http.Response {
	return MakeRequest(s.T(), s.App, method, path, body, token)
}

// RegisterAndLogin creates a fresh user and returns its access token and ID.
func (s *E2ETestSuite) RegisterAndLogin() (token string, userID uuid.UUID) {
	return RegisterAndLogin(s.T(), s.App)
}

// MakeRequest sends a JSON request to app.
func MakeRequest(t testing.TB, app *fiber.App, method, path, body, token string) *http.Response {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// UploadFile posts data as the multipart field "file".
func UploadFile(t testing.TB, app *fiber.App, path, filename string, data []byte, token string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// DecodeData checks the status and unmarshals the envelope's data into out.
func DecodeData(t testing.TB, resp *http.Response, wantStatus int, out any) {
	t.Helper()
	defer resp.Body.Close() //nolint: errcheck
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equalf(t, wantStatus, resp.StatusCode, "body: %s", raw)
	if out == nil {
		return
	}
	var env Envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	require.NoError(t, json.Unmarshal(env.Data, out))
}

// RegisterAndLogin registers a unique user against app and logs in.
func RegisterAndLogin(t testing.TB, app *fiber.App) (token string, userID uuid.UUID) {
	t.Helper()
	email := fmt.Sprintf("test_%s@example.com", uuid.New().String()[:8])

	var reg struct {
		UserID uuid.UUID `json:"userId"`
	}
	body := fmt.Sprintf(`{"email":%q,"password":%q,"nickname":"tester"}`, email, TestPassword)
	DecodeData(t, MakeRequest(t, app, http.MethodPost, "/auth/register", body, ""), http.StatusCreated, &reg)

	var login struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	body = fmt.Sprintf(`{"email":%q,"password":%q}`, email, TestPassword)
	DecodeData(t, MakeRequest(t, app, http.MethodPost, "/auth/login", body, ""), http.StatusOK, &login)
	require.NotEmpty(t, login.AccessToken)
	return login.AccessToken, reg.UserID
}
