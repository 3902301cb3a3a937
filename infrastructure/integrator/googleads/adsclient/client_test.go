package adsclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	adsdomain "github.com/vfg2006/ads-status-monitor/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-status-monitor/internal/config"
)

func clientFor(serverURL string) *GoogleAdsClient {
	cfg := &config.Config{
		GoogleAds: config.GoogleAds{
			URL:             serverURL,
			AccessToken:     "token-teste",
			DeveloperToken:  "dev-token-teste",
			LoginCustomerID: "9999999999",
		},
	}
	return &GoogleAdsClient{Cfg: cfg, httpClient: &http.Client{}}
}

func TestSearch_Paginacao(t *testing.T) {
	var requests []searchRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customers/1234567890/googleAds:search", r.URL.Path)
		assert.Equal(t, "Bearer token-teste", r.Header.Get("Authorization"))
		assert.Equal(t, "dev-token-teste", r.Header.Get("developer-token"))
		assert.Equal(t, "9999999999", r.Header.Get("login-customer-id"))

		var req searchRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		requests = append(requests, req)

		response := adsdomain.SearchResponse{}
		if req.PageToken == "" {
			response.Results = []adsdomain.SearchRow{
				{AdGroup: &adsdomain.AdGroup{ID: "ag-1", Status: "ENABLED"}},
				{AdGroup: &adsdomain.AdGroup{ID: "ag-2", Status: "PAUSED"}},
			}
			response.NextPageToken = "pagina-2"
		} else {
			response.Results = []adsdomain.SearchRow{
				{AdGroup: &adsdomain.AdGroup{ID: "ag-3", Status: "ENABLED"}},
			}
		}

		assert.NoError(t, json.NewEncoder(w).Encode(response))
	}))
	defer server.Close()

	client := clientFor(server.URL)

	rows, err := client.SearchAdGroups(context.Background(), "1234567890")

	assert.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, "ag-1", rows[0].AdGroup.ID)
	assert.Equal(t, "ag-2", rows[1].AdGroup.ID)
	assert.Equal(t, "ag-3", rows[2].AdGroup.ID)

	// Duas requisições: a primeira sem pageToken, a segunda com o token da
	// página seguinte e a mesma consulta.
	assert.Len(t, requests, 2)
	assert.Empty(t, requests[0].PageToken)
	assert.Equal(t, "pagina-2", requests[1].PageToken)
	assert.Equal(t, requests[0].Query, requests[1].Query)
}

func TestSearch_ErroDaAPI(t *testing.T) {
	t.Run("Erro estruturado da API vira mensagem com código e status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			apiErr := adsdomain.APIError{}
			apiErr.Error.Code = 401
			apiErr.Error.Status = "UNAUTHENTICATED"
			apiErr.Error.Message = "Request had invalid authentication credentials."
			_ = json.NewEncoder(w).Encode(apiErr)
		}))
		defer server.Close()

		client := clientFor(server.URL)

		rows, err := client.SearchAds(context.Background(), "1234567890")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "401 UNAUTHENTICATED")
		assert.Contains(t, err.Error(), "invalid authentication credentials")
		assert.Empty(t, rows)
	})

	t.Run("Corpo não estruturado cai no erro genérico com o status HTTP", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("upstream indisponível"))
		}))
		defer server.Close()

		client := clientFor(server.URL)

		_, err := client.SearchKeywords(context.Background(), "1234567890")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "status 503")
	})

	t.Run("Falha no meio da paginação devolve as linhas já acumuladas", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls++
			if calls == 1 {
				response := adsdomain.SearchResponse{
					Results:       []adsdomain.SearchRow{{AdGroup: &adsdomain.AdGroup{ID: "ag-1"}}},
					NextPageToken: "pagina-2",
				}
				_ = json.NewEncoder(w).Encode(response)
				return
			}
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := clientFor(server.URL)

		rows, err := client.SearchAdGroups(context.Background(), "1234567890")

		assert.Error(t, err)
		assert.Len(t, rows, 1)
		assert.Equal(t, "ag-1", rows[0].AdGroup.ID)
	})
}
