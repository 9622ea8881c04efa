package model

// ShopAddressEvent 店舗住所の作成・更新トリガーが運ぶイベントペイロード
type ShopAddressEvent struct {
	ShopID  string  `json:"shopId" binding:"required"`
	Address Address `json:"address"`
}

// UserCreatedEvent 認証プロバイダのアカウント作成イベント
type UserCreatedEvent struct {
	UID   string `json:"uid" binding:"required"`
	Email string `json:"email" binding:"required"`
}
