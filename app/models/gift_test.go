package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGiftValidate(t *testing.T) {
	gift := &Gift{Name: "Kia Ora", Description: "A small thank you.", Amount: 500, Currency: "nzd"}
	assert.NoError(t, gift.Validate())

	assert.Error(t, (&Gift{Name: "", Amount: 500, Currency: "nzd"}).Validate())
	assert.Error(t, (&Gift{Name: "Kia Ora", Amount: 0, Currency: "nzd"}).Validate())
	assert.Error(t, (&Gift{Name: "Kia Ora", Amount: 500, Currency: "dollars"}).Validate())
}

func TestCurrentGiftsReturnsSnapshot(t *testing.T) {
	t.Cleanup(func() { replaceGiftsCache(nil) })

	replaceGiftsCache([]Gift{{ID: 1, Name: "Kia Ora", Amount: 500, Currency: "nzd"}})

	first, err := CurrentGifts(nil)
	assert.NoError(t, err)
	first[0].Amount = 9999

	second, err := CurrentGifts(nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(500), second[0].Amount, "cache must not be mutated through a snapshot")
}
