package adsdomain

// Tipos da resposta do endpoint googleAds:search (REST). Apenas os campos
// selecionados nas consultas GAQL do monitor são mapeados.

type SearchResponse struct {
	Results       []SearchRow `json:"results"`
	NextPageToken string      `json:"nextPageToken"`
}

type SearchRow struct {
	Campaign         *Campaign         `json:"campaign,omitempty"`
	AdGroup          *AdGroup          `json:"adGroup,omitempty"`
	AdGroupAd        *AdGroupAd        `json:"adGroupAd,omitempty"`
	AdGroupCriterion *AdGroupCriterion `json:"adGroupCriterion,omitempty"`
}

type Campaign struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

type AdGroup struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

type AdGroupAd struct {
	Status        string         `json:"status"`
	Ad            *Ad            `json:"ad,omitempty"`
	PolicySummary *PolicySummary `json:"policySummary,omitempty"`
}

type Ad struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

type PolicySummary struct {
	ApprovalStatus string `json:"approvalStatus"`
}

type AdGroupCriterion struct {
	CriterionID    string       `json:"criterionId"`
	Status         string       `json:"status"`
	ApprovalStatus string       `json:"approvalStatus"`
	Keyword        *KeywordInfo `json:"keyword,omitempty"`
}

type KeywordInfo struct {
	Text      string `json:"text"`
	MatchType string `json:"matchType"`
}

type APIError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
