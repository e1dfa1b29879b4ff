package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/api"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/report"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDataset() *domain.Dataset {
	return domain.NewDataset([]domain.SalesRecord{
		{Year: 2008, Month: "Jan", Recession: true, VehicleType: "Supperminicar", AutomobileSales: 100, AdvertisingExpenditure: 10, UnemploymentRate: 5.5},
		{Year: 2008, Month: "Feb", Recession: true, VehicleType: "Sports", AutomobileSales: 20, AdvertisingExpenditure: 30, UnemploymentRate: 5.5},
		{Year: 2012, Month: "Jan", Recession: false, VehicleType: "Sports", AutomobileSales: 300, AdvertisingExpenditure: 40, UnemploymentRate: 3.0},
	})
}

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	config := Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Resolver: report.NewResolver(testDataset()),
		},
	}
	webAPI := NewWebAPI(logger, config)
	testServer := httptest.NewServer(webAPI.Handler())
	defer testServer.Close()

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expected       interface{}
		parseResponse  func([]byte) (interface{}, error)
	}{
		{
			name:           "Healthz",
			path:           "/healthz",
			expectedStatus: http.StatusOK,
			expected:       "",
			parseResponse: func(data []byte) (interface{}, error) {
				return string(data), nil
			},
		},
		{
			name:           "ListYears",
			path:           "/api/v1/years",
			expectedStatus: http.StatusOK,
			expected:       api.Years{Years: []int{2008, 2012}},
			parseResponse:  unmarshalResponse[api.Years](),
		},
		{
			name:           "Report_InvalidType",
			path:           "/api/v1/report?type=weekly",
			expectedStatus: http.StatusBadRequest,
			expected:       api.Error{Error: "unknown report type: weekly"},
			parseResponse:  unmarshalResponse[api.Error](),
		},
		{
			name:           "Report_UnknownRoute",
			path:           "/api/v1/workspaces",
			expectedStatus: http.StatusNotFound,
			expected:       "404 page not found\n",
			parseResponse: func(data []byte) (interface{}, error) {
				return string(data), nil
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Get(testServer.URL + tc.path)
			require.NoError(t, err, "Failed to send request")
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err, "Failed to read response body")

			actual, err := tc.parseResponse(body)
			require.NoError(t, err, "Failed to parse response")

			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestWebAPI_ReportFlow(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	webAPI := NewWebAPI(logger, Config{
		Dependencies: Dependencies{Resolver: report.NewResolver(testDataset())},
	})
	testServer := httptest.NewServer(webAPI.Handler())
	defer testServer.Close()

	fetch := func(t *testing.T, query string) api.Report {
		resp, err := http.Get(testServer.URL + "/api/v1/report" + query)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		var body api.Report
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		return body
	}

	t.Run("idle", func(t *testing.T) {
		body := fetch(t, "")
		assert.True(t, body.Empty)
		assert.Equal(t, "no_selection", body.Condition)
		assert.Empty(t, body.Charts)
	})

	t.Run("recession", func(t *testing.T) {
		body := fetch(t, "?type=recession")
		assert.False(t, body.Empty)
		assert.False(t, body.YearEnabled)
		require.Len(t, body.Charts, 4)
		assert.Equal(t, string(domain.TableAvgSalesByYear), body.Charts[0].ID)
		assert.Equal(t, []api.ChartRow{{Key: "2008", Value: 60, Count: 2}}, body.Charts[0].Rows)
	})

	t.Run("yearly without year", func(t *testing.T) {
		body := fetch(t, "?type=yearly")
		assert.True(t, body.Empty)
		assert.True(t, body.YearEnabled)
		assert.Equal(t, report.ReasonInvalidYear, body.Reason)
	})

	t.Run("yearly with data", func(t *testing.T) {
		body := fetch(t, "?type=yearly&year=2012")
		require.Len(t, body.Charts, 4)
		require.NotNil(t, body.Year)
		assert.Equal(t, 2012, *body.Year)
		assert.Len(t, body.Charts[0].Rows, 2)
	})

	t.Run("yearly with no data", func(t *testing.T) {
		body := fetch(t, "?type=yearly&year=1999")
		assert.True(t, body.Empty)
		assert.Equal(t, "empty_result_set", body.Condition)
		assert.Equal(t, "no data for year 1999", body.Reason)
	})
}

func unmarshalResponse[T any]() func([]byte) (interface{}, error) {
	return func(data []byte) (interface{}, error) {
		var response T
		err := json.Unmarshal(data, &response)
		return response, err
	}
}
