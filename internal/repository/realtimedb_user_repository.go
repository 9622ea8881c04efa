package repository

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/db"

	"HelloMoon-App/internal/domain/model"
)

// RealtimeDBUserRepository Realtime Databaseを使用したユーザーリポジトリ
type RealtimeDBUserRepository struct {
	client *db.Client
}

// NewRealtimeDBUserRepository 新しいRealtimeDBUserRepositoryインスタンスを作成
func NewRealtimeDBUserRepository(client *db.Client) *RealtimeDBUserRepository {
	return &RealtimeDBUserRepository{
		client: client,
	}
}

// GetCustomerID は /users/{uid} から決済プロバイダの顧客IDを取得する
// レコードの存在とフィールドの登録を明示的に確認してから返す
func (r *RealtimeDBUserRepository) GetCustomerID(ctx context.Context, uid string) (string, error) {
	ref := r.client.NewRef(fmt.Sprintf("users/%s", uid))

	// 存在しないパスのGetはエラーにならずnilのままになる
	var user *model.User
	if err := ref.Get(ctx, &user); err != nil {
		return "", fmt.Errorf("ユーザーレコードの取得に失敗しました: %w", err)
	}

	if user == nil {
		return "", fmt.Errorf("uid=%s: %w", uid, model.ErrUserNotFound)
	}
	if user.CustomerID == "" {
		return "", fmt.Errorf("uid=%s: %w", uid, model.ErrNoCustomerID)
	}

	return user.CustomerID, nil
}

// SetCustomerID は /users/{uid} の customerId フィールドだけを更新する
// Updateを使うことでレコードの他のフィールドには触れない
func (r *RealtimeDBUserRepository) SetCustomerID(ctx context.Context, uid string, customerID string) error {
	ref := r.client.NewRef(fmt.Sprintf("users/%s", uid))

	if err := ref.Update(ctx, map[string]interface{}{"customerId": customerID}); err != nil {
		return fmt.Errorf("customerIdの更新に失敗しました: %w", err)
	}

	return nil
}
