package repository

import (
	"context"

	"HelloMoon-App/internal/domain/model"
)

// ShopRepository 店舗レコードへの書き込みの責務を持つリポジトリインターフェース
type ShopRepository interface {
	// SetLocation は /shops/{shopID}/data/location を丸ごと上書きする（フィールド単位のマージはしない）
	SetLocation(ctx context.Context, shopID string, location model.LatLng) error
}

// GeoIndexRepository 地理空間インデックスへの登録の責務を持つリポジトリインターフェース
type GeoIndexRepository interface {
	// Upsert は店舗IDと座標をインデックスに登録（既存エントリは上書き）する
	Upsert(ctx context.Context, shopID string, location model.LatLng) error
}
