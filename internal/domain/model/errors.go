package model

import "errors"

var (
	// ErrUserNotFound 指定されたuidのユーザーレコードが存在しない
	ErrUserNotFound = errors.New("ユーザーレコードが見つかりません")

	// ErrNoCustomerID ユーザーレコードに customerId が登録されていない
	ErrNoCustomerID = errors.New("customerIdが登録されていません")

	// ErrNoGeocodeResult ジオコーディング結果の候補が0件
	ErrNoGeocodeResult = errors.New("ジオコーディング候補が見つかりません")
)

// PaymentErrorKind 決済プロバイダのエラー分類（クローズドな列挙）
type PaymentErrorKind int

const (
	// PaymentErrorKindOther カード起因以外のエラー（ネットワーク・認証など）
	PaymentErrorKindOther PaymentErrorKind = iota
	// PaymentErrorKindCard カード起因のエラー（拒否・期限切れなど）
	// メッセージはエンドユーザーにそのまま表示して安全なもの
	PaymentErrorKindCard
)

// PaymentError 決済プロバイダのレスポンスを境界で変換したドメインエラー
type PaymentError struct {
	Kind    PaymentErrorKind
	Message string
}

func (e *PaymentError) Error() string {
	return e.Message
}

// IsCardError err がカード起因の決済エラーかどうかを判定する
func IsCardError(err error) bool {
	var pe *PaymentError
	return errors.As(err, &pe) && pe.Kind == PaymentErrorKindCard
}
