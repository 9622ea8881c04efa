package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"HelloMoon-App/internal/domain/model"
	"HelloMoon-App/internal/usecase"
)

// AuthEventsHandler 認証プロバイダのアカウント作成トリガーを受けるフックのハンドラー
type AuthEventsHandler struct {
	provisioningUseCase usecase.CustomerProvisioningUseCase
}

// NewAuthEventsHandler は新しいAuthEventsHandlerインスタンスを作成
func NewAuthEventsHandler(provisioningUseCase usecase.CustomerProvisioningUseCase) *AuthEventsHandler {
	return &AuthEventsHandler{
		provisioningUseCase: provisioningUseCase,
	}
}

// UserCreated はアカウント作成イベントを受けるエンドポイント
// POST /hooks/auth/user-created
func (h *AuthEventsHandler) UserCreated(c *gin.Context) {
	var event model.UserCreatedEvent

	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	// 失敗はプラットフォーム側のリトライに任せるため5xxで返す
	if err := h.provisioningUseCase.Provision(c.Request.Context(), &event); err != nil {
		log.Printf("❌ 顧客の割り当てに失敗 (uid: %s): %v", event.UID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "provisioning_failed",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
