package repository

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/db"

	"HelloMoon-App/internal/domain/model"
)

// RealtimeDBShopRepository Realtime Databaseを使用した店舗リポジトリ
type RealtimeDBShopRepository struct {
	client *db.Client
}

// NewRealtimeDBShopRepository 新しいRealtimeDBShopRepositoryインスタンスを作成
func NewRealtimeDBShopRepository(client *db.Client) *RealtimeDBShopRepository {
	return &RealtimeDBShopRepository{
		client: client,
	}
}

// SetLocation は /shops/{shopID}/data/location を座標で丸ごと上書きする
// マージではなくSetなので、同じ入力で何度実行しても結果は同じ
func (r *RealtimeDBShopRepository) SetLocation(ctx context.Context, shopID string, location model.LatLng) error {
	ref := r.client.NewRef(fmt.Sprintf("shops/%s/data/location", shopID))

	if err := ref.Set(ctx, location); err != nil {
		return fmt.Errorf("店舗位置情報の書き込みに失敗しました: %w", err)
	}

	return nil
}
