package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 113.0, Round2(113.004))
	assert.Equal(t, 113.46, Round2(113.456))
	assert.Equal(t, 0.13, Round2(0.125))
	assert.Equal(t, -5.0, Round2(-5.0049))
}

func TestRetry(t *testing.T) {
	calls := 0
	err := Retry(3, time.Millisecond, func() error {
		calls++
		if calls < 3 {
			return errors.New("not ready")
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)

	calls = 0
	err = Retry(2, time.Millisecond, func() error {
		calls++
		return errors.New("down")
	})
	assert.EqualError(t, err, "down")
	assert.Equal(t, 2, calls)
}

func TestParseIntDefault(t *testing.T) {
	assert.Equal(t, 7, ParseIntDefault(" 7 ", 1))
	assert.Equal(t, 1, ParseIntDefault("x", 1))
	assert.Equal(t, 1, ParseIntDefault("-3", 1))
}

type patchDTO struct {
	Name   *string  `json:"name"`
	TaxID  *string  `json:"tax_id"`
	Amount *float64 `json:"amount"`
	Skip   *string  `json:"-"`
}

func TestUpdatesFromPtrDTO(t *testing.T) {
	name := "  Acme  "
	amount := 12.344
	dto := patchDTO{Name: &name, Amount: &amount}

	NormalizePtrDTO(&dto)
	got := UpdatesFromPtrDTO(&dto, map[string]string{"name": "client_name"})

	assert.Equal(t, map[string]any{"client_name": "Acme", "amount": 12.34}, got)
}
