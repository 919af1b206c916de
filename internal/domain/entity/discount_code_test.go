package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func intPtr(n int) *int { return &n }

func TestDiscountCode_Evaluate(t *testing.T) {
	now := time.Date(2026, time.March, 15, 18, 30, 0, 0, time.UTC)

	cases := []struct {
		name string
		code *DiscountCode
		want string
	}{
		{"nil", nil, DiscountNotFound},
		{"activo sin limites", &DiscountCode{Active: true}, ""},
		{"inactivo", &DiscountCode{Active: false}, DiscountInactive},
		{"inactivo gana a expirado", &DiscountCode{Active: false, EndDate: date(2020, 1, 1)}, DiscountInactive},
		{"antes del inicio", &DiscountCode{Active: true, StartDate: date(2026, 3, 16)}, DiscountNotYet},
		{"inicio hoy", &DiscountCode{Active: true, StartDate: date(2026, 3, 15)}, ""},
		{"fin hoy es inclusivo", &DiscountCode{Active: true, EndDate: date(2026, 3, 15)}, ""},
		{"fin ayer", &DiscountCode{Active: true, EndDate: date(2026, 3, 14)}, DiscountExpired},
		{"usos disponibles", &DiscountCode{Active: true, MaxUses: intPtr(10), UsedCount: 9}, ""},
		{"agotado", &DiscountCode{Active: true, MaxUses: intPtr(10), UsedCount: 10}, DiscountExhausted},
		{"tope cero", &DiscountCode{Active: true, MaxUses: intPtr(0)}, DiscountExhausted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.code.Evaluate(now))
		})
	}
}

func TestDiscountCode_RemainingUses(t *testing.T) {
	assert.Nil(t, (&DiscountCode{}).RemainingUses())
	assert.Equal(t, 3, *(&DiscountCode{MaxUses: intPtr(5), UsedCount: 2}).RemainingUses())
	assert.Equal(t, 0, *(&DiscountCode{MaxUses: intPtr(5), UsedCount: 7}).RemainingUses())
}
