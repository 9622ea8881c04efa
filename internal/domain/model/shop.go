package model

import "strings"

// Address 店舗の住所情報（外部アプリから書き込まれるフィールド構成そのまま）
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zipcode string `json:"zipcode"`
	Country string `json:"country"`
}

// Oneline ジオコーディングAPIに渡す1行の住所文字列を組み立てる
// 順序は zipcode, street, city, state, country 固定（バリデーション・エスケープなし）
func (a Address) Oneline() string {
	return strings.Join([]string{a.Zipcode, a.Street, a.City, a.State, a.Country}, ", ")
}

// LatLng 緯度経度のペア
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GeocodeCandidate ジオコーディング結果の候補1件
type GeocodeCandidate struct {
	Location         LatLng
	FormattedAddress string
}
