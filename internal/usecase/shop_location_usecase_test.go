package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"HelloMoon-App/internal/domain/model"
)

// --- フェイク実装 ---

type fakeGeocoder struct {
	candidates []model.GeocodeCandidate
	err        error
	addresses  []string
}

func (f *fakeGeocoder) Geocode(_ context.Context, address string) ([]model.GeocodeCandidate, error) {
	f.addresses = append(f.addresses, address)
	return f.candidates, f.err
}

type fakeShopRepo struct {
	locations map[string]model.LatLng
	err       error
	calls     int
}

func newFakeShopRepo() *fakeShopRepo {
	return &fakeShopRepo{locations: map[string]model.LatLng{}}
}

func (f *fakeShopRepo) SetLocation(_ context.Context, shopID string, location model.LatLng) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.locations[shopID] = location
	return nil
}

type fakeGeoIndex struct {
	entries map[string]model.LatLng
	err     error
	calls   int
}

func newFakeGeoIndex() *fakeGeoIndex {
	return &fakeGeoIndex{entries: map[string]model.LatLng{}}
}

func (f *fakeGeoIndex) Upsert(_ context.Context, shopID string, location model.LatLng) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.entries[shopID] = location
	return nil
}

func testAddressEvent() *model.ShopAddressEvent {
	return &model.ShopAddressEvent{
		ShopID: "shop_1",
		Address: model.Address{
			Street:  "1 Main St",
			City:    "Springfield",
			State:   "IL",
			Zipcode: "62701",
			Country: "USA",
		},
	}
}

// --- テスト ---

func TestShopLocationUseCase_SyncLocation(t *testing.T) {
	ctx := context.Background()

	t.Run("先頭の候補の座標が書き込まれる", func(t *testing.T) {
		geocoder := &fakeGeocoder{
			candidates: []model.GeocodeCandidate{
				{Location: model.LatLng{Lat: 39.7817, Lng: -89.6501}},
				{Location: model.LatLng{Lat: 1.0, Lng: 2.0}},
			},
		}
		shops := newFakeShopRepo()
		geoIndex := newFakeGeoIndex()
		uc := NewShopLocationUseCase(geocoder, shops, geoIndex)

		location, err := uc.SyncLocation(ctx, testAddressEvent())

		require.NoError(t, err)
		assert.Equal(t, model.LatLng{Lat: 39.7817, Lng: -89.6501}, location)
		assert.Equal(t, model.LatLng{Lat: 39.7817, Lng: -89.6501}, shops.locations["shop_1"])

		// ジオコーダーには固定順の1行住所が渡る
		require.Len(t, geocoder.addresses, 1)
		assert.Equal(t, "62701, 1 Main St, Springfield, IL, USA", geocoder.addresses[0])
	})

	t.Run("ジオコーディングエラー時は (0, 0) が書き込まれる", func(t *testing.T) {
		geocoder := &fakeGeocoder{err: errors.New("API unreachable")}
		shops := newFakeShopRepo()
		geoIndex := newFakeGeoIndex()
		uc := NewShopLocationUseCase(geocoder, shops, geoIndex)

		location, err := uc.SyncLocation(ctx, testAddressEvent())

		require.NoError(t, err)
		assert.Equal(t, model.LatLng{Lat: 0, Lng: 0}, location)
		assert.Equal(t, 1, shops.calls, "フォールバック時も位置は必ず書き込む")
		assert.Equal(t, model.LatLng{Lat: 0, Lng: 0}, shops.locations["shop_1"])
	})

	t.Run("候補が0件でも (0, 0) が書き込まれる", func(t *testing.T) {
		geocoder := &fakeGeocoder{candidates: []model.GeocodeCandidate{}}
		shops := newFakeShopRepo()
		geoIndex := newFakeGeoIndex()
		uc := NewShopLocationUseCase(geocoder, shops, geoIndex)

		location, err := uc.SyncLocation(ctx, testAddressEvent())

		require.NoError(t, err)
		assert.Equal(t, model.LatLng{Lat: 0, Lng: 0}, location)
		assert.Equal(t, model.LatLng{Lat: 0, Lng: 0}, geoIndex.entries["shop_1"])
	})

	t.Run("インデックスは1イベントにつき1回だけ登録される", func(t *testing.T) {
		geocoder := &fakeGeocoder{
			candidates: []model.GeocodeCandidate{{Location: model.LatLng{Lat: 35.0, Lng: 135.0}}},
		}
		shops := newFakeShopRepo()
		geoIndex := newFakeGeoIndex()
		uc := NewShopLocationUseCase(geocoder, shops, geoIndex)

		_, err := uc.SyncLocation(ctx, testAddressEvent())

		require.NoError(t, err)
		assert.Equal(t, 1, geoIndex.calls)
		assert.Equal(t, model.LatLng{Lat: 35.0, Lng: 135.0}, geoIndex.entries["shop_1"],
			"インデックスの座標は書き込んだ位置と一致する")
	})

	t.Run("位置の書き込みが失敗してもインデックスは登録される", func(t *testing.T) {
		geocoder := &fakeGeocoder{
			candidates: []model.GeocodeCandidate{{Location: model.LatLng{Lat: 35.0, Lng: 135.0}}},
		}
		shops := newFakeShopRepo()
		shops.err = errors.New("write failed")
		geoIndex := newFakeGeoIndex()
		uc := NewShopLocationUseCase(geocoder, shops, geoIndex)

		_, err := uc.SyncLocation(ctx, testAddressEvent())

		assert.Error(t, err, "永続化の失敗は呼び出し元のログ用に返す")
		assert.Equal(t, 1, geoIndex.calls, "書き込み失敗時も1回だけ登録する")
		assert.Equal(t, model.LatLng{Lat: 35.0, Lng: 135.0}, geoIndex.entries["shop_1"])
	})

	t.Run("同じ結果で2回実行しても保存値は変わらない", func(t *testing.T) {
		geocoder := &fakeGeocoder{
			candidates: []model.GeocodeCandidate{{Location: model.LatLng{Lat: 35.0, Lng: 135.0}}},
		}
		shops := newFakeShopRepo()
		geoIndex := newFakeGeoIndex()
		uc := NewShopLocationUseCase(geocoder, shops, geoIndex)

		_, err := uc.SyncLocation(ctx, testAddressEvent())
		require.NoError(t, err)
		_, err = uc.SyncLocation(ctx, testAddressEvent())
		require.NoError(t, err)

		assert.Equal(t, model.LatLng{Lat: 35.0, Lng: 135.0}, shops.locations["shop_1"])
		assert.Len(t, shops.locations, 1)
	})
}
