package usecase

import (
	"context"
	"fmt"

	"HelloMoon-App/internal/domain/model"
	"HelloMoon-App/internal/domain/repository"
)

type PaymentSourceUseCase interface {
	// AttachCard はトークン化されたカードをユーザーの顧客に紐付けて保存する
	AttachCard(ctx context.Context, userID string, token string) (*model.Card, error)

	// RemoveCard はカードを顧客から削除し、対応するレコードも削除する
	RemoveCard(ctx context.Context, userID string, cardID string) error
}

// paymentSourceUseCaseImpl はPaymentSourceUseCaseの実装
type paymentSourceUseCaseImpl struct {
	payments repository.PaymentProvider
	users    repository.UserRepository
	cards    repository.CardRepository
}

// NewPaymentSourceUseCase は新しいPaymentSourceUseCaseインスタンスを作成
func NewPaymentSourceUseCase(
	payments repository.PaymentProvider,
	users repository.UserRepository,
	cards repository.CardRepository,
) PaymentSourceUseCase {
	return &paymentSourceUseCaseImpl{
		payments: payments,
		users:    users,
		cards:    cards,
	}
}

// AttachCard はトークン化されたカードをユーザーの顧客に紐付けて保存する
func (u *paymentSourceUseCaseImpl) AttachCard(ctx context.Context, userID string, token string) (*model.Card, error) {
	// Step 1: customerIdの取得（レコードとフィールドの存在を明示的に確認）
	customerID, err := u.users.GetCustomerID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Step 2: 決済プロバイダでカードを紐付け
	card, err := u.payments.AttachCard(ctx, customerID, token)
	if err != nil {
		return nil, err
	}

	// Step 3: カードレコードを保存
	if err := u.cards.Save(ctx, userID, card); err != nil {
		return nil, fmt.Errorf("カードの保存に失敗: %w", err)
	}

	return card, nil
}

// RemoveCard はカードを顧客から削除し、対応するレコードも削除する
func (u *paymentSourceUseCaseImpl) RemoveCard(ctx context.Context, userID string, cardID string) error {
	customerID, err := u.users.GetCustomerID(ctx, userID)
	if err != nil {
		return err
	}

	if err := u.payments.DeleteCard(ctx, customerID, cardID); err != nil {
		return err
	}

	if err := u.cards.Delete(ctx, userID, cardID); err != nil {
		return fmt.Errorf("カードレコードの削除に失敗: %w", err)
	}

	return nil
}
