package repository

import (
	"context"

	"HelloMoon-App/internal/domain/model"
)

// PaymentProvider 決済プロバイダ操作のインターフェース
// 実装はプロバイダ固有のエラーを model.PaymentError に変換して返す
type PaymentProvider interface {
	// CreateCustomer はメールアドレスで顧客を作成し、顧客IDを返す
	CreateCustomer(ctx context.Context, email string) (string, error)

	// AttachCard はトークン化されたカードを顧客に紐付け、登録されたカード情報を返す
	AttachCard(ctx context.Context, customerID string, token string) (*model.Card, error)

	// DeleteCard は顧客からカードを削除する
	DeleteCard(ctx context.Context, customerID string, cardID string) error
}
