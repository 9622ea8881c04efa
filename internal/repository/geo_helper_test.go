package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"HelloMoon-App/internal/domain/model"
)

func TestLatLngPointConversion(t *testing.T) {
	t.Run("orb.Pointは [lng, lat] 順になる", func(t *testing.T) {
		location := model.LatLng{Lat: 35.0116, Lng: 135.7681}

		point := LatLngToPoint(location)

		assert.Equal(t, 135.7681, point.Lon())
		assert.Equal(t, 35.0116, point.Lat())
	})

	t.Run("往復変換で値が保存される", func(t *testing.T) {
		location := model.LatLng{Lat: 35.0116, Lng: 135.7681}

		assert.Equal(t, location, PointToLatLng(LatLngToPoint(location)))
	})
}

func TestEncodeLocationHash(t *testing.T) {
	t.Run("既知の座標のジオハッシュと一致する", func(t *testing.T) {
		// geohash.org の参照値 (u4pruydqqvj) の先頭10桁
		hash := EncodeLocationHash(model.LatLng{Lat: 57.64911, Lng: 10.40744})

		assert.Equal(t, "u4pruydqqv", hash)
		assert.Len(t, hash, geohashPrecision)
	})

	t.Run("原点のフォールバック座標でもハッシュが計算できる", func(t *testing.T) {
		hash := EncodeLocationHash(model.LatLng{Lat: 0, Lng: 0})

		assert.Len(t, hash, geohashPrecision)
	})
}
