package repository

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/db"

	"HelloMoon-App/internal/domain/model"
)

// RealtimeDBCardRepository Realtime Databaseを使用したカードリポジトリ
type RealtimeDBCardRepository struct {
	client *db.Client
}

// NewRealtimeDBCardRepository 新しいRealtimeDBCardRepositoryインスタンスを作成
func NewRealtimeDBCardRepository(client *db.Client) *RealtimeDBCardRepository {
	return &RealtimeDBCardRepository{
		client: client,
	}
}

// Save は /cards/{userID}/{card.ID} にカード情報を保存する
// パスのキーは決済プロバイダが採番したカードID
func (r *RealtimeDBCardRepository) Save(ctx context.Context, userID string, card *model.Card) error {
	ref := r.client.NewRef(fmt.Sprintf("cards/%s/%s", userID, card.ID))

	if err := ref.Set(ctx, card); err != nil {
		return fmt.Errorf("カードレコードの保存に失敗しました: %w", err)
	}

	return nil
}

// Delete は /cards/{userID}/{cardID} を削除する
func (r *RealtimeDBCardRepository) Delete(ctx context.Context, userID string, cardID string) error {
	ref := r.client.NewRef(fmt.Sprintf("cards/%s/%s", userID, cardID))

	if err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("カードレコードの削除に失敗しました: %w", err)
	}

	return nil
}
