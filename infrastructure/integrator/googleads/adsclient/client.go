package adsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	adsdomain "github.com/vfg2006/ads-status-monitor/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-status-monitor/internal/config"
)

type Client interface {
	SearchAds(ctx context.Context, customerID string) ([]adsdomain.SearchRow, error)
	SearchAdGroups(ctx context.Context, customerID string) ([]adsdomain.SearchRow, error)
	SearchKeywords(ctx context.Context, customerID string) ([]adsdomain.SearchRow, error)
}

type GoogleAdsClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &GoogleAdsClient{
		Cfg:        cfg,
		httpClient: &http.Client{},
	}
}

type searchRequest struct {
	Query     string `json:"query"`
	PageToken string `json:"pageToken,omitempty"`
}

// search executa uma consulta GAQL contra o endpoint googleAds:search,
// seguindo o pageToken até esgotar as páginas. As linhas voltam na ordem em
// que a API as retorna, que é a ordem preservada no snapshot.
func (c *GoogleAdsClient) search(ctx context.Context, customerID, query string) ([]adsdomain.SearchRow, error) {
	endpoint := fmt.Sprintf("%s/customers/%s/googleAds:search", c.Cfg.GoogleAds.URL, customerID)

	rows := make([]adsdomain.SearchRow, 0)
	pageToken := ""

	for {
		payload, err := json.Marshal(searchRequest{Query: query, PageToken: pageToken})
		if err != nil {
			return rows, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
		if err != nil {
			logrus.WithError(err).Error("Erro ao criar a requisição")
			return rows, err
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.Cfg.GoogleAds.AccessToken)
		req.Header.Set("developer-token", c.Cfg.GoogleAds.DeveloperToken)
		if c.Cfg.GoogleAds.LoginCustomerID != "" {
			req.Header.Set("login-customer-id", c.Cfg.GoogleAds.LoginCustomerID)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			logrus.WithError(err).Error("Erro ao fazer a requisição")
			return rows, err
		}

		body, err := c.handleResponse(resp)
		if err != nil {
			return rows, err
		}

		var response adsdomain.SearchResponse
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON")
			return rows, err
		}

		rows = append(rows, response.Results...)

		if response.NextPageToken == "" {
			return rows, nil
		}
		pageToken = response.NextPageToken
	}
}

// handleResponse lê o corpo e converte respostas não-2xx no erro estruturado
// da API.
func (c *GoogleAdsClient) handleResponse(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logrus.WithError(err).Error("Erro ao ler o corpo da resposta")
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := adsdomain.APIError{}
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf(
				"erro da API do Google Ads (%d %s): %s",
				apiErr.Error.Code, apiErr.Error.Status, apiErr.Error.Message,
			)
		}
		return nil, fmt.Errorf("erro da API do Google Ads: status %d", resp.StatusCode)
	}

	return body, nil
}
