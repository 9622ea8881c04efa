package model

// User ユーザーレコード（/users/{uid} 配下）
// customerId は決済プロバイダ側の顧客ID。サインアップ後の顧客登録で付与される
type User struct {
	CustomerID string `json:"customerId"`
}

// CardExpiration カードの有効期限
type CardExpiration struct {
	Month int64 `json:"month"`
	Year  int64 `json:"year"`
}

// Card 決済プロバイダに登録済みのカード情報（/cards/{userId}/{cardId} 配下）
// ID はパスのキーとして使うためレコード本体には保存しない
type Card struct {
	ID         string         `json:"-"`
	Brand      string         `json:"brand"`
	Expiration CardExpiration `json:"expiration"`
	Country    string         `json:"country"`
	Last4      string         `json:"last4"`
}
