package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"

	"HelloMoon-App/internal/domain/model"
)

// StripePaymentProvider はStripeを使用した決済プロバイダの実装
// Stripe固有のエラーはこの境界で model.PaymentError に変換する
type StripePaymentProvider struct {
	api *client.API
}

// NewStripePaymentProvider はシークレットキーからプロバイダを生成する
func NewStripePaymentProvider(secretKey string) *StripePaymentProvider {
	api := &client.API{}
	api.Init(secretKey, nil)

	return &StripePaymentProvider{api: api}
}

// CreateCustomer はメールアドレスでStripe顧客を作成し、顧客IDを返す
func (p *StripePaymentProvider) CreateCustomer(ctx context.Context, email string) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
	}
	params.Context = ctx

	customer, err := p.api.Customers.New(params)
	if err != nil {
		return "", translateStripeError(err)
	}

	return customer.ID, nil
}

// AttachCard はトークン化されたカードを顧客に紐付け、登録されたカード情報を返す
func (p *StripePaymentProvider) AttachCard(ctx context.Context, customerID string, token string) (*model.Card, error) {
	params := &stripe.CardParams{
		Customer: stripe.String(customerID),
		Token:    stripe.String(token),
	}
	params.Context = ctx

	card, err := p.api.Cards.New(params)
	if err != nil {
		return nil, translateStripeError(err)
	}

	return &model.Card{
		ID:    card.ID,
		Brand: string(card.Brand),
		Expiration: model.CardExpiration{
			Month: card.ExpMonth,
			Year:  card.ExpYear,
		},
		Country: card.Country,
		Last4:   card.Last4,
	}, nil
}

// DeleteCard は顧客からカードを削除する
func (p *StripePaymentProvider) DeleteCard(ctx context.Context, customerID string, cardID string) error {
	params := &stripe.CardParams{
		Customer: stripe.String(customerID),
	}
	params.Context = ctx

	if _, err := p.api.Cards.Del(cardID, params); err != nil {
		return translateStripeError(err)
	}

	return nil
}

// translateStripeError はStripeのエラーをドメインのエラー分類に変換する
// カード起因のエラーだけがメッセージをそのままユーザーに見せてよい分類になる
func translateStripeError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		if stripeErr.Type == stripe.ErrorTypeCard {
			return &model.PaymentError{
				Kind:    model.PaymentErrorKindCard,
				Message: stripeErr.Msg,
			}
		}
		return &model.PaymentError{
			Kind:    model.PaymentErrorKindOther,
			Message: fmt.Sprintf("Stripe APIエラー (%s): %s", stripeErr.Type, stripeErr.Msg),
		}
	}

	return &model.PaymentError{
		Kind:    model.PaymentErrorKindOther,
		Message: err.Error(),
	}
}
