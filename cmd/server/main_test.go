package main_test

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"testing"

	"github.com/amirasaad/expensetracker/pkg/dto"
	statssvc "github.com/amirasaad/expensetracker/pkg/service/stats"
	"github.com/amirasaad/expensetracker/webapi/testutils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// TestMain runs before any tests and applies globally for all tests in the package.
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	log.SetOutput(io.Discard)

	exitVal := m.Run()
	os.Exit(exitVal)
}

type MainTestSuite struct {
	testutils.E2ETestSuite
}

func TestMainTestSuite(t *testing.T) {
	suite.Run(t, new(MainTestSuite))
}

func (s *MainTestSuite) createAsset(token, body string) dto.AssetRead {
	var a dto.AssetRead
	testutils.DecodeData(s.T(), s.MakeRequest(http.MethodPost, "/assets", body, token), http.StatusCreated, &a)
	return a
}

func (s *MainTestSuite) balance(token string, a dto.AssetRead) decimal.Decimal {
	var got dto.AssetRead
	testutils.DecodeData(s.T(), s.MakeRequest(http.MethodGet, "/assets/"+a.ID.String(), "", token), http.StatusOK, &got)
	return got.Balance
}

func (s *MainTestSuite) TestRootRoute() {
	resp := s.MakeRequest(http.MethodGet, "/", "", "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *MainTestSuite) TestProtectedRoute_Unauthorized() {
	resp := s.MakeRequest(http.MethodGet, "/users/me", "", "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *MainTestSuite) TestNotFoundRoute() {
	resp := s.MakeRequest(http.MethodGet, "/doesnotexist", "", "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *MainTestSuite) TestLoginRoute_BadRequest() {
	resp := s.MakeRequest(http.MethodPost, "/auth/login", "", "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *MainTestSuite) TestDuplicateEmail_Conflict() {
	body := `{"email":"same@example.com","password":"secret1"}`
	testutils.DecodeData(s.T(), s.MakeRequest(http.MethodPost, "/auth/register", body, ""), http.StatusCreated, nil)
	testutils.DecodeData(s.T(), s.MakeRequest(http.MethodPost, "/auth/register", body, ""), http.StatusConflict, nil)
}

func (s *MainTestSuite) TestLedgerFlow() {
	token, _ := s.RegisterAndLogin()
	bank := s.createAsset(token, `{"name":"Bank","type":"bank"}`)
	cash := s.createAsset(token, `{"name":"Cash","type":"cash"}`)

	var salary, groceries dto.TransactionRead
	testutils.DecodeData(s.T(), s.MakeRequest(http.MethodPost, "/transactions", fmt.Sprintf(
		`{"assetId":%q,"amount":"2500.00","type":"income","categoryId":"salary","date":"2025-01-31"}`, bank.ID), token),
		http.StatusCreated, &salary)
	testutils.DecodeData(s.T(), s.MakeRequest(http.MethodPost, "/transactions", fmt.Sprintf(
		`{"assetId":%q,"amount":"80.40","type":"expense","categoryId":"food","date":"2025-02-01T10:00:00Z"}`, bank.ID), token),
		http.StatusCreated, &groceries)
	s.True(s.balance(token, bank).Equal(decimal.RequireFromString("2419.60")))

	// Moving the expense to the cash asset restores bank and charges cash.
	testutils.DecodeData(s.T(), s.MakeRequest(http.MethodPut, "/transactions/"+groceries.ID.String(), fmt.Sprintf(
		`{"assetId":%q,"amount":"80.40","type":"expense","categoryId":"food","date":"2025-02-01"}`, cash.ID), token),
		http.StatusOK, nil)
	s.True(s.balance(token, bank).Equal(decimal.NewFromInt(2500)))
	s.True(s.balance(token, cash).Equal(decimal.RequireFromString("-80.40")))

	// Referenced assets cannot be deleted.
	testutils.DecodeData(s.T(), s.MakeRequest(http.MethodDelete, "/assets/"+cash.ID.String(), "", token),
		http.StatusConflict, nil)

	var b statssvc.Breakdown
	testutils.DecodeData(s.T(), s.MakeRequest(http.MethodGet,
		"/transactions/stats/category?type=income&period=year&year=2025", "", token),
		http.StatusOK, &b)
	s.Require().Len(b.Categories, 1)
	s.Equal(int64(100), b.Categories[0].Percentage)

	testutils.DecodeData(s.T(), s.MakeRequest(http.MethodDelete, "/transactions/"+groceries.ID.String(), "", token),
		http.StatusOK, nil)
	s.True(s.balance(token, cash).IsZero())
	testutils.DecodeData(s.T(), s.MakeRequest(http.MethodDelete, "/assets/"+cash.ID.String(), "", token),
		http.StatusOK, nil)
}

func (s *MainTestSuite) TestConcurrentTransactions_SerializeOnAsset() {
	token, _ := s.RegisterAndLogin()
	bank := s.createAsset(token, `{"name":"Shared","type":"bank"}`)

	const n = 25
	var wg sync.WaitGroup
	statuses := make([]int, n)
	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp := s.MakeRequest(http.MethodPost, "/transactions", fmt.Sprintf(
				`{"assetId":%q,"amount":"1.10","type":"income","categoryId":"tips","date":"2025-05-05"}`, bank.ID), token)
			statuses[i] = resp.StatusCode
			_ = resp.Body.Close()
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, st := range statuses {
		if st == http.StatusCreated {
			ok++
		}
	}
	want := decimal.RequireFromString("1.10").Mul(decimal.NewFromInt(int64(ok)))
	s.True(s.balance(token, bank).Equal(want), "balance must equal the sum of committed transactions")
	s.Equal(n, ok)
}
