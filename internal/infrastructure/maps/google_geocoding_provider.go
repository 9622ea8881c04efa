package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"HelloMoon-App/internal/domain/model"
)

const defaultGeocodingBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"

// GoogleGeocodingProvider はGoogle Maps Geocoding APIを使用したジオコーディングの実装
type GoogleGeocodingProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewGoogleGeocodingProvider は新しいプロバイダを生成する
func NewGoogleGeocodingProvider(apiKey string) *GoogleGeocodingProvider {
	return &GoogleGeocodingProvider{
		apiKey:     apiKey,
		baseURL:    defaultGeocodingBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Geocode はGeocoding APIを呼び出して住所に対する座標候補を取得する
// 候補が0件（ZERO_RESULTS）の場合は空スライスを返し、エラーにはしない
func (g *GoogleGeocodingProvider) Geocode(ctx context.Context, address string) ([]model.GeocodeCandidate, error) {
	// 1. APIリクエストURLを構築
	reqURL := g.buildURL(address)

	// 2. HTTPリクエストを作成・実行
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("APIからエラーステータスが返されました: %s", resp.Status)
	}

	// 3. JSONレスポンスをパース
	var apiResp googleGeocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("JSONのパースに失敗: %w", err)
	}

	switch apiResp.Status {
	case "OK":
		// 続行
	case "ZERO_RESULTS":
		return []model.GeocodeCandidate{}, nil
	default:
		return nil, fmt.Errorf("Geocoding APIがステータス %s を返しました: %s", apiResp.Status, apiResp.ErrorMessage)
	}

	// 4. ドメインモデルに変換して返す
	candidates := make([]model.GeocodeCandidate, 0, len(apiResp.Results))
	for _, result := range apiResp.Results {
		candidates = append(candidates, model.GeocodeCandidate{
			Location: model.LatLng{
				Lat: result.Geometry.Location.Lat,
				Lng: result.Geometry.Location.Lng,
			},
			FormattedAddress: result.FormattedAddress,
		})
	}

	return candidates, nil
}

func (g *GoogleGeocodingProvider) buildURL(address string) string {
	params := url.Values{}
	params.Set("address", address)
	params.Set("key", g.apiKey)

	return fmt.Sprintf("%s?%s", g.baseURL, params.Encode())
}

// --- Geocoding APIのレスポンスをパースするための構造体 ---

type googleGeocodeResponse struct {
	Results      []geocodeResult `json:"results"`
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message,omitempty"`
}

type geocodeResult struct {
	FormattedAddress string   `json:"formatted_address"`
	Geometry         geometry `json:"geometry"`
}

type geometry struct {
	Location geoLocation `json:"location"`
}

type geoLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
