package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"HelloMoon-App/internal/domain/model"
	"HelloMoon-App/internal/usecase"
)

const (
	addCardSuccessMessage    = "Successfully Added Card!"
	removeCardSuccessMessage = "Successfully Removed Payment Method"
	genericErrorMessage      = "An unknown error occurred. Administration has been notified."
)

// PaymentSourceHandler 支払い方法の追加・削除APIのハンドラー
type PaymentSourceHandler struct {
	paymentSourceUseCase usecase.PaymentSourceUseCase
}

// NewPaymentSourceHandler は新しいPaymentSourceHandlerインスタンスを作成
func NewPaymentSourceHandler(paymentSourceUseCase usecase.PaymentSourceUseCase) *PaymentSourceHandler {
	return &PaymentSourceHandler{
		paymentSourceUseCase: paymentSourceUseCase,
	}
}

// attachCardRequest カード追加リクエストのボディ
type attachCardRequest struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

// removeCardRequest カード削除リクエストのボディ
type removeCardRequest struct {
	UserID string `json:"userId"`
	CardID string `json:"cardId"`
}

// AttachCard はカードを顧客に追加するエンドポイント
// POST /payments/cards
func (h *PaymentSourceHandler) AttachCard(c *gin.Context) {
	var req attachCardRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, err)
		return
	}

	if _, err := h.paymentSourceUseCase.AttachCard(c.Request.Context(), req.UserID, req.Token); err != nil {
		h.respondError(c, err)
		return
	}

	c.String(http.StatusOK, addCardSuccessMessage)
}

// RemoveCard はカードを顧客から削除するエンドポイント
// POST /payments/cards/remove
func (h *PaymentSourceHandler) RemoveCard(c *gin.Context) {
	var req removeCardRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.paymentSourceUseCase.RemoveCard(c.Request.Context(), req.UserID, req.CardID); err != nil {
		h.respondError(c, err)
		return
	}

	c.String(http.StatusOK, removeCardSuccessMessage)
}

// respondError はエラーを2段階のポリシーでレスポンスに変換する
// カード起因のエラーだけメッセージをそのまま返し、それ以外は
// 内容をサーバー側のログに残して汎用メッセージを返す
func (h *PaymentSourceHandler) respondError(c *gin.Context, err error) {
	if model.IsCardError(err) {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	log.Printf("❌ 支払い方法の操作に失敗: %v", err)
	c.String(http.StatusBadRequest, genericErrorMessage)
}
