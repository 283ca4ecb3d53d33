package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/matifood/catalog-service/config"
	"github.com/stretchr/testify/suite"
)

type IntegrationTestSuite struct {
	suite.Suite
	app    App
	server *httptest.Server
}

func setupTestConfig() *config.Config {
	cfg := config.CreateNewConfig()
	cfg.Environment = "test"
	cfg.StoreDriver = config.StoreDriverMemory
	cfg.SeedOnStartup = true
	cfg.KafkaConfig = config.KafkaConfig{}
	cfg.TracingConfig = config.TracingConfig{}
	cfg.RecaptchaConfig.Secret = ""
	cfg.SMTPConfig = config.SMTPConfig{}
	cfg.AnalyticsConfig.StatsRefreshInterval = time.Hour
	cfg.LogConfig.Level = "disabled"
	return cfg
}

func (s *IntegrationTestSuite) SetupSuite() {
	s.app.Config = setupTestConfig()
	s.Require().NoError(s.app.Setup())

	s.server = httptest.NewServer(s.app.Server)
}

func (s *IntegrationTestSuite) TearDownSuite() {
	s.server.Close()
	s.Require().NoError(s.app.StopServer())
}

func (s *IntegrationTestSuite) request(method string, path string, body interface{}) *http.Response {
	reqBody, err := json.Marshal(body)
	s.Require().NoError(err)

	req, err := http.NewRequest(method, s.server.URL+path, bytes.NewBuffer(reqBody))
	s.Require().NoError(err)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)

	return resp
}

func (s *IntegrationTestSuite) Test_Ping() {
	resp := s.request(http.MethodGet, "/api/ping/", nil)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
	s.NotEmpty(resp.Header.Get(echo.HeaderXRequestID))
}

func (s *IntegrationTestSuite) Test_RequestIDIsEchoed() {
	req, err := http.NewRequest(http.MethodGet, s.server.URL+"/api/health", nil)
	s.Require().NoError(err)
	req.Header.Set(echo.HeaderXRequestID, "req-123")

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("req-123", resp.Header.Get(echo.HeaderXRequestID))
}

func (s *IntegrationTestSuite) Test_SeededCatalogue() {
	count, err := s.app.Store.Products.CountProducts(context.Background())
	s.Require().NoError(err)
	s.EqualValues(8, count)

	resp := s.request(http.MethodGet, "/api/products?featured=true", nil)
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *IntegrationTestSuite) Test_ReviewRecomputesRating() {
	resp := s.request(http.MethodPost, "/api/reviews", map[string]interface{}{
		"product_id":    "5",
		"customer_name": "Jo",
		"rating":        3,
		"comment":       "Too sweet for me",
	})
	resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	product, err := s.app.Store.Products.GetProductByID(context.Background(), "5")
	s.Require().NoError(err)
	s.Equal(3.0, product.Rating)
	s.Equal(1, product.ReviewCount)
}

func (s *IntegrationTestSuite) Test_UnknownRoute() {
	resp := s.request(http.MethodGet, "/api/unknown", nil)
	defer resp.Body.Close()

	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *IntegrationTestSuite) Test_Stats() {
	s.Require().NoError(s.app.Analytics.RefreshStats(context.Background()))

	resp := s.request(http.MethodGet, "/api/analytics/stats", nil)
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	var env struct {
		Data struct {
			ProductsAvailable int64 `json:"products_available"`
			HappyFamilies     int64 `json:"happy_families"`
		} `json:"data"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&env))
	s.EqualValues(8, env.Data.ProductsAvailable)
	s.GreaterOrEqual(env.Data.HappyFamilies, int64(50000))
}

func (s *IntegrationTestSuite) Test_ProductNotFound() {
	resp := s.request(http.MethodGet, "/api/products/404", nil)
	defer resp.Body.Close()

	s.Equal(http.StatusNotFound, resp.StatusCode)

	var env struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&env))
	s.Equal("error", env.Status)
	s.Equal("Product not found", env.Message)
}

func TestIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}
