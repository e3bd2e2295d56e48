package asset_test

import (
	"fmt"
	"testing"

	"github.com/amirasaad/expensetracker/internal/fixtures"
	"github.com/amirasaad/expensetracker/pkg/dto"
	"github.com/amirasaad/expensetracker/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AssetTestSuite struct {
	suite.Suite
	app   *fiber.App
	token string
}

func (s *AssetTestSuite) SetupTest() {
	s.app, _ = testutils.NewTestApp(s.T(), fixtures.NewMemoryUoW(), testutils.NewTestConfig(s.T().TempDir()))
	s.token, _ = testutils.RegisterAndLogin(s.T(), s.app)
}

func (s *AssetTestSuite) create(body string) dto.AssetRead {
	var a dto.AssetRead
	testutils.DecodeData(s.T(),
		testutils.MakeRequest(s.T(), s.app, "POST", "/assets", body, s.token),
		fiber.StatusCreated, &a)
	return a
}

func (s *AssetTestSuite) TestCreateListGet() {
	a := s.create(`{"name":"Savings","type":"bank","icon":"piggy","color":"#00ff00"}`)
	s.Equal("Savings", a.Name)
	s.Equal("bank", a.Type)
	s.True(a.Balance.IsZero())

	var list []dto.AssetRead
	testutils.DecodeData(s.T(), testutils.MakeRequest(s.T(), s.app, "GET", "/assets", "", s.token), fiber.StatusOK, &list)
	s.Require().Len(list, 1)
	s.Equal(a.ID, list[0].ID)

	var got dto.AssetRead
	testutils.DecodeData(s.T(),
		testutils.MakeRequest(s.T(), s.app, "GET", "/assets/"+a.ID.String(), "", s.token),
		fiber.StatusOK, &got)
	s.Equal("piggy", got.Icon)
}

func (s *AssetTestSuite) TestCreate_Invalid() {
	for _, body := range []string{
		`{"type":"bank"}`,
		`{"name":"Yacht","type":"boat"}`,
		`{"name":"   "}`,
	} {
		resp := testutils.MakeRequest(s.T(), s.app, "POST", "/assets", body, s.token)
		s.Equalf(fiber.StatusBadRequest, resp.StatusCode, "body %s", body)
		_ = resp.Body.Close()
	}
}

func (s *AssetTestSuite) TestUpdate_IgnoresBalance() {
	a := s.create(`{"name":"Wallet","type":"cash"}`)

	var updated dto.AssetRead
	testutils.DecodeData(s.T(),
		testutils.MakeRequest(s.T(), s.app, "PUT", "/assets/"+a.ID.String(),
			`{"name":"Pocket","balance":"1000000"}`, s.token),
		fiber.StatusOK, &updated)
	s.Equal("Pocket", updated.Name)
	s.Equal("cash", updated.Type)
	s.True(updated.Balance.IsZero())
}

func (s *AssetTestSuite) TestOtherUsersAssetIsNotFound() {
	a := s.create(`{"name":"Mine","type":"bank"}`)
	other, _ := testutils.RegisterAndLogin(s.T(), s.app)

	for _, method := range []string{"GET", "PUT", "DELETE"} {
		body := ""
		if method == "PUT" {
			body = `{"name":"Stolen"}`
		}
		resp := testutils.MakeRequest(s.T(), s.app, method, "/assets/"+a.ID.String(), body, other)
		s.Equalf(fiber.StatusNotFound, resp.StatusCode, "method %s", method)
		_ = resp.Body.Close()
	}

	resp := testutils.MakeRequest(s.T(), s.app, "GET", "/assets/"+uuid.NewString(), "", s.token)
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
}

func (s *AssetTestSuite) TestDelete_InUse() {
	a := s.create(`{"name":"Card","type":"bank"}`)
	var tx dto.TransactionRead
	testutils.DecodeData(s.T(),
		testutils.MakeRequest(s.T(), s.app, "POST", "/transactions", fmt.Sprintf(
			`{"assetId":%q,"amount":"12.50","type":"expense","categoryId":"food","date":"2025-03-01"}`, a.ID),
			s.token),
		fiber.StatusCreated, &tx)

	testutils.DecodeData(s.T(),
		testutils.MakeRequest(s.T(), s.app, "DELETE", "/assets/"+a.ID.String(), "", s.token),
		fiber.StatusConflict, nil)

	testutils.DecodeData(s.T(),
		testutils.MakeRequest(s.T(), s.app, "DELETE", "/transactions/"+tx.ID.String(), "", s.token),
		fiber.StatusOK, nil)
	testutils.DecodeData(s.T(),
		testutils.MakeRequest(s.T(), s.app, "DELETE", "/assets/"+a.ID.String(), "", s.token),
		fiber.StatusOK, nil)
}

func (s *AssetTestSuite) TestInvalidID() {
	resp := testutils.MakeRequest(s.T(), s.app, "GET", "/assets/not-a-uuid", "", s.token)
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *AssetTestSuite) TestRequiresBearer() {
	resp := testutils.MakeRequest(s.T(), s.app, "GET", "/assets", "", "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAssetTestSuite(t *testing.T) {
	suite.Run(t, new(AssetTestSuite))
}
