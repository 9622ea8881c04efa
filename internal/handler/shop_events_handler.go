package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"HelloMoon-App/internal/domain/model"
	"HelloMoon-App/internal/usecase"
)

// ShopEventsHandler 店舗住所の作成・更新トリガーを受けるフックのハンドラー
type ShopEventsHandler struct {
	shopLocationUseCase usecase.ShopLocationUseCase
}

// NewShopEventsHandler は新しいShopEventsHandlerインスタンスを作成
func NewShopEventsHandler(shopLocationUseCase usecase.ShopLocationUseCase) *ShopEventsHandler {
	return &ShopEventsHandler{
		shopLocationUseCase: shopLocationUseCase,
	}
}

// AddressCreated は住所の新規作成トリガーを受けるエンドポイント
// POST /hooks/shops/address-created
func (h *ShopEventsHandler) AddressCreated(c *gin.Context) {
	h.handleAddressEvent(c, "created")
}

// AddressUpdated は住所の更新トリガーを受けるエンドポイント
// POST /hooks/shops/address-updated
func (h *ShopEventsHandler) AddressUpdated(c *gin.Context) {
	h.handleAddressEvent(c, "updated")
}

// handleAddressEvent は作成・更新どちらのトリガーでも同じ同期パイプラインを実行する
func (h *ShopEventsHandler) handleAddressEvent(c *gin.Context, kind string) {
	var event model.ShopAddressEvent

	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	// ログの突き合わせ用に呼び出しごとのIDを振る
	invocationID := uuid.New().String()
	log.Printf("🏠 住所%sイベントを受信 (invocation: %s, shopID: %s)", kind, invocationID, event.ShopID)

	location, err := h.shopLocationUseCase.SyncLocation(c.Request.Context(), &event)
	if err != nil {
		// 永続化の失敗はトリガー元に伝播させず、ログだけ残してACKする
		log.Printf("❌ 位置情報の同期に失敗 (invocation: %s, shopID: %s): %v", invocationID, event.ShopID, err)
	} else {
		log.Printf("✅ 位置情報を同期しました (invocation: %s, shopID: %s, lat: %f, lng: %f)",
			invocationID, event.ShopID, location.Lat, location.Lng)
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
