package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"

	"HelloMoon-App/internal/domain/model"
)

// geoIndexCollection 地理空間インデックスを保持するコレクション名
const geoIndexCollection = "geoIndex"

// geoIndexEntry Firestoreに保存するインデックスエントリ
// geohashのプレフィックス範囲クエリで近傍の店舗を検索できる
type geoIndexEntry struct {
	Geohash   string    `firestore:"geohash"`
	Lat       float64   `firestore:"lat"`
	Lng       float64   `firestore:"lng"`
	UpdatedAt time.Time `firestore:"updated_at,serverTimestamp"`
}

// FirestoreGeoIndexRepository Firestoreを使用した地理空間インデックスリポジトリ
type FirestoreGeoIndexRepository struct {
	client *firestore.Client
}

// NewFirestoreGeoIndexRepository 新しいFirestoreGeoIndexRepositoryインスタンスを作成
func NewFirestoreGeoIndexRepository(client *firestore.Client) *FirestoreGeoIndexRepository {
	return &FirestoreGeoIndexRepository{
		client: client,
	}
}

// Upsert は店舗IDをキーにインデックスエントリを登録する
// Setなので既存エントリは上書きされ、イベントごとに1回だけ呼ばれる前提
func (r *FirestoreGeoIndexRepository) Upsert(ctx context.Context, shopID string, location model.LatLng) error {
	entry := geoIndexEntry{
		Geohash: EncodeLocationHash(location),
		Lat:     location.Lat,
		Lng:     location.Lng,
	}

	_, err := r.client.Collection(geoIndexCollection).Doc(shopID).Set(ctx, entry)
	if err != nil {
		return fmt.Errorf("地理空間インデックスの登録に失敗しました: %w", err)
	}

	return nil
}
