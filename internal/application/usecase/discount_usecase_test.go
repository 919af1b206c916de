package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

func fixedNow(s string) func() time.Time {
	t, _ := time.ParseInLocation("2006-01-02 15:04", s, time.Local)
	return func() time.Time { return t }
}

func newDiscountUC(now string) (*DiscountUseCase, *memDiscounts) {
	repo := newMemDiscounts()
	uc := NewDiscountUseCase(repo)
	uc.now = fixedNow(now)
	return uc, repo
}

func discountReq(code string) dto.DiscountCodeRequest {
	return dto.DiscountCodeRequest{Code: code, Type: entity.DiscountPercent, Value: decimal.NewFromInt(15)}
}

func TestDiscount_CodigoEnMayusculasYUnico(t *testing.T) {
	uc, repo := newDiscountUC("2026-05-10 12:00")
	ctx := context.Background()
	out, err := uc.Create(ctx, "c1", discountReq("verano26"))
	require.NoError(t, err)
	assert.Equal(t, "VERANO26", out.Code)
	assert.Nil(t, out.RemainingUses)

	_, err = uc.Create(ctx, "c1", discountReq("Verano26"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, repo.items, 1)
}

func TestDiscount_ValidacionesDeValor(t *testing.T) {
	uc, _ := newDiscountUC("2026-05-10 12:00")
	ctx := context.Background()

	in := discountReq("PCT")
	in.Value = decimal.NewFromInt(120)
	_, err := uc.Create(ctx, "c1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = discountReq("CERO")
	in.Value = decimal.Zero
	_, err = uc.Create(ctx, "c1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = discountReq("FECHAS")
	in.StartDate, in.EndDate = "2026-06-01", "2026-05-01"
	_, err = uc.Create(ctx, "c1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDiscount_ValidateMotivos(t *testing.T) {
	uc, _ := newDiscountUC("2026-05-10 12:00")
	ctx := context.Background()
	one := 1

	mk := func(code string, mut func(*dto.DiscountCodeRequest)) {
		in := discountReq(code)
		mut(&in)
		_, err := uc.Create(ctx, "c1", in)
		require.NoError(t, err)
	}
	inactive := false
	mk("OK", func(*dto.DiscountCodeRequest) {})
	mk("OFF", func(in *dto.DiscountCodeRequest) { in.Active = &inactive })
	mk("FUTURO", func(in *dto.DiscountCodeRequest) { in.StartDate = "2026-05-11" })
	mk("VENCIDO", func(in *dto.DiscountCodeRequest) { in.EndDate = "2026-05-09" })
	mk("HOYFIN", func(in *dto.DiscountCodeRequest) { in.EndDate = "2026-05-10" })
	mk("UNO", func(in *dto.DiscountCodeRequest) { in.MaxUses = &one })

	cases := map[string]string{
		"ok":      "",
		"OFF":     entity.DiscountInactive,
		"FUTURO":  entity.DiscountNotYet,
		"VENCIDO": entity.DiscountExpired,
		"HOYFIN":  "",
		"NADA":    entity.DiscountNotFound,
	}
	for code, reason := range cases {
		out, err := uc.Validate(ctx, "c1", code)
		require.NoError(t, err, code)
		assert.Equal(t, reason == "", out.Valid, code)
		assert.Equal(t, reason, out.Reason, code)
	}

	// Canje consume el único uso; el segundo queda agotado.
	res, err := uc.Redeem(ctx, "c1", "uno")
	require.NoError(t, err)
	assert.True(t, res.Valid)
	res, err = uc.Redeem(ctx, "c1", "uno")
	assert.ErrorIs(t, err, domain.ErrCodeRejected)
	require.NotNil(t, res)
	assert.Equal(t, entity.DiscountExhausted, res.Reason)

	out, err := uc.Validate(ctx, "c1", "UNO")
	require.NoError(t, err)
	assert.Equal(t, entity.DiscountExhausted, out.Reason)
}

func TestDiscount_RedeemInexistente(t *testing.T) {
	uc, _ := newDiscountUC("2026-05-10 12:00")
	res, err := uc.Redeem(context.Background(), "c1", "NADA")
	assert.ErrorIs(t, err, domain.ErrCodeRejected)
	assert.Equal(t, entity.DiscountNotFound, res.Reason)
}

func TestDiscount_UpdateConservaUsos(t *testing.T) {
	uc, repo := newDiscountUC("2026-05-10 12:00")
	ctx := context.Background()
	d, err := uc.Create(ctx, "c1", discountReq("PROMO"))
	require.NoError(t, err)
	repo.items[d.ID].UsedCount = 4

	in := discountReq("PROMO")
	in.Value = decimal.NewFromInt(20)
	out, err := uc.Update(ctx, "c1", d.ID, in)
	require.NoError(t, err)
	assert.Equal(t, 4, out.UsedCount)
	assert.True(t, out.Value.Equal(decimal.NewFromInt(20)))
}
