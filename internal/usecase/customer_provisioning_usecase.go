package usecase

import (
	"context"
	"fmt"
	"log"

	"HelloMoon-App/internal/domain/model"
	"HelloMoon-App/internal/domain/repository"
)

type CustomerProvisioningUseCase interface {
	// Provision はサインアップしたアカウントに決済プロバイダの顧客を割り当てる
	Provision(ctx context.Context, event *model.UserCreatedEvent) error
}

// customerProvisioningUseCaseImpl はCustomerProvisioningUseCaseの実装
type customerProvisioningUseCaseImpl struct {
	payments repository.PaymentProvider
	users    repository.UserRepository
}

// NewCustomerProvisioningUseCase は新しいCustomerProvisioningUseCaseインスタンスを作成
func NewCustomerProvisioningUseCase(
	payments repository.PaymentProvider,
	users repository.UserRepository,
) CustomerProvisioningUseCase {
	return &customerProvisioningUseCaseImpl{
		payments: payments,
		users:    users,
	}
}

// Provision はサインアップしたアカウントに決済プロバイダの顧客を割り当てる
// 顧客作成に失敗した場合はレコードへの書き込みを行わず、エラーをそのまま呼び出し元へ返す
func (u *customerProvisioningUseCaseImpl) Provision(ctx context.Context, event *model.UserCreatedEvent) error {
	customerID, err := u.payments.CreateCustomer(ctx, event.Email)
	if err != nil {
		return fmt.Errorf("顧客の作成に失敗: %w", err)
	}

	if err := u.users.SetCustomerID(ctx, event.UID, customerID); err != nil {
		return fmt.Errorf("customerIdの保存に失敗: %w", err)
	}

	log.Printf("✅ 顧客を割り当てました (uid: %s, customerID: %s)", event.UID, customerID)
	return nil
}
