package repository

import (
	"context"

	"HelloMoon-App/internal/domain/model"
)

// UserRepository ユーザーレコードの読み書きの責務を持つリポジトリインターフェース
type UserRepository interface {
	// GetCustomerID は /users/{uid} から決済プロバイダの顧客IDを取得する
	// レコードが存在しない場合は model.ErrUserNotFound、
	// customerId が未登録の場合は model.ErrNoCustomerID を返す
	GetCustomerID(ctx context.Context, uid string) (string, error)

	// SetCustomerID は /users/{uid} の customerId フィールドだけを更新する
	SetCustomerID(ctx context.Context, uid string, customerID string) error
}

// CardRepository カードレコードの保存・削除の責務を持つリポジトリインターフェース
type CardRepository interface {
	// Save は /cards/{userID}/{card.ID} にカード情報を保存する
	Save(ctx context.Context, userID string, card *model.Card) error

	// Delete は /cards/{userID}/{cardID} を削除する
	Delete(ctx context.Context, userID string, cardID string) error
}
