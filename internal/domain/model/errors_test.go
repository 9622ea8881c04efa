package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCardError(t *testing.T) {
	t.Run("カード起因のPaymentErrorはtrue", func(t *testing.T) {
		err := &PaymentError{Kind: PaymentErrorKindCard, Message: "Your card was declined."}
		assert.True(t, IsCardError(err))
	})

	t.Run("カード起因以外のPaymentErrorはfalse", func(t *testing.T) {
		err := &PaymentError{Kind: PaymentErrorKindOther, Message: "network error"}
		assert.False(t, IsCardError(err))
	})

	t.Run("ラップされていても判定できる", func(t *testing.T) {
		inner := &PaymentError{Kind: PaymentErrorKindCard, Message: "Your card has expired."}
		wrapped := fmt.Errorf("カードの追加に失敗: %w", inner)
		assert.True(t, IsCardError(wrapped))
	})

	t.Run("PaymentError以外のエラーはfalse", func(t *testing.T) {
		assert.False(t, IsCardError(errors.New("something else")))
		assert.False(t, IsCardError(ErrUserNotFound))
	})
}
