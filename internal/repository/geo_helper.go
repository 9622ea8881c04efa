package repository

import (
	"github.com/mmcloughlin/geohash"
	"github.com/paulmach/orb"

	"HelloMoon-App/internal/domain/model"
)

// geohashPrecision インデックスエントリのジオハッシュ桁数
// 10桁で約1m四方の解像度になり、近傍検索のプレフィックス一致に十分
const geohashPrecision = 10

// LatLngToPoint model.LatLng を orb.Point に変換する（orbは [lng, lat] 順）
func LatLngToPoint(location model.LatLng) orb.Point {
	return orb.Point{location.Lng, location.Lat}
}

// PointToLatLng orb.Point を model.LatLng に変換する
func PointToLatLng(point orb.Point) model.LatLng {
	return model.LatLng{
		Lat: point.Lat(),
		Lng: point.Lon(),
	}
}

// EncodeLocationHash 座標からインデックス用のジオハッシュを計算する
func EncodeLocationHash(location model.LatLng) string {
	point := LatLngToPoint(location)
	return geohash.EncodeWithPrecision(point.Lat(), point.Lon(), geohashPrecision)
}
