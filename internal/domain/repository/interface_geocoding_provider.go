package repository

import (
	"context"

	"HelloMoon-App/internal/domain/model"
)

// GeocodingProvider 住所文字列から座標候補を取得するプロバイダインターフェース
type GeocodingProvider interface {
	// Geocode は住所に対する候補を0件以上返す（0件はエラーではない）
	Geocode(ctx context.Context, address string) ([]model.GeocodeCandidate, error)
}
