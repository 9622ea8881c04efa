package usecase

import (
	"context"
	"log"

	"HelloMoon-App/internal/domain/model"
	"HelloMoon-App/internal/domain/repository"
)

type ShopLocationUseCase interface {
	// SyncLocation は住所イベントから店舗の位置情報と地理空間インデックスを同期する
	// 書き込んだ（または書き込もうとした）座標を返す
	SyncLocation(ctx context.Context, event *model.ShopAddressEvent) (model.LatLng, error)
}

// shopLocationUseCaseImpl はShopLocationUseCaseの実装
type shopLocationUseCaseImpl struct {
	geocoder repository.GeocodingProvider
	shops    repository.ShopRepository
	geoIndex repository.GeoIndexRepository
}

// NewShopLocationUseCase は新しいShopLocationUseCaseインスタンスを作成
func NewShopLocationUseCase(
	geocoder repository.GeocodingProvider,
	shops repository.ShopRepository,
	geoIndex repository.GeoIndexRepository,
) ShopLocationUseCase {
	return &shopLocationUseCaseImpl{
		geocoder: geocoder,
		shops:    shops,
		geoIndex: geoIndex,
	}
}

// SyncLocation は住所イベントから店舗の位置情報と地理空間インデックスを同期する
func (u *shopLocationUseCaseImpl) SyncLocation(ctx context.Context, event *model.ShopAddressEvent) (model.LatLng, error) {
	// Step 1: 住所をジオコーディング
	// 失敗・候補0件は (0, 0) にフォールバックする（下流は未確定位置として扱う）
	location := model.LatLng{Lat: 0, Lng: 0}

	candidates, err := u.geocoder.Geocode(ctx, event.Address.Oneline())
	if err == nil && len(candidates) > 0 {
		// 先頭の候補だけを採用する
		location = candidates[0].Location
	} else {
		log.Printf("⚠️ ジオコーディングの結果が得られなかったため (0, 0) を書き込みます (shopID: %s)", event.ShopID)
	}

	// Step 2: 位置情報を上書き（フォールバック時も必ず書き込む）
	writeErr := u.shops.SetLocation(ctx, event.ShopID, location)

	// Step 3: 位置書き込みの成否に関わらず、インデックスは必ず1回だけ更新する
	indexErr := u.geoIndex.Upsert(ctx, event.ShopID, location)

	if writeErr != nil {
		return location, writeErr
	}
	return location, indexErr
}
