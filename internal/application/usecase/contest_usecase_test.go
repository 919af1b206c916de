package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

func openSeason() map[string]string {
	return map[string]string{
		entity.SettingSeasonName:   "Verano 2026",
		entity.SettingSeasonActive: "true",
		entity.SettingSeasonStart:  "2026-01-01",
		entity.SettingSeasonEnd:    "2026-03-31",
	}
}

func newSettingUC(values map[string]string, now string) *SettingUseCase {
	uc := NewSettingUseCase(newMemSettings(values))
	uc.now = fixedNow(now)
	return uc
}

func TestSetting_SeasonAbierta(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		now  string
		mut  func(map[string]string)
		open bool
	}{
		{"2026-02-10 10:00", nil, true},
		{"2026-03-31 23:59", nil, true},
		{"2026-04-01 00:00", nil, false},
		{"2025-12-31 23:00", nil, false},
		{"2026-02-10 10:00", func(m map[string]string) { m[entity.SettingSeasonActive] = "false" }, false},
		{"2030-02-10 10:00", func(m map[string]string) { delete(m, entity.SettingSeasonEnd) }, true},
	}
	for _, tc := range cases {
		values := openSeason()
		if tc.mut != nil {
			tc.mut(values)
		}
		s, err := newSettingUC(values, tc.now).Season(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, tc.open, s.Open, tc.now)
		assert.Equal(t, "Verano 2026", s.Name)
	}
}

func TestSetting_UpsertValidaClavesDeTemporada(t *testing.T) {
	uc := newSettingUC(nil, "2026-02-10 10:00")
	ctx := context.Background()
	_, err := uc.Upsert(ctx, "c1", entity.SettingSeasonStart, dto.SettingRequest{Value: "31-12-2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Upsert(ctx, "c1", entity.SettingSeasonActive, dto.SettingRequest{Value: "tal vez"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Upsert(ctx, "c1", "Clave Con Espacios", dto.SettingRequest{Value: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.Upsert(ctx, "c1", "TEMPORADA_NOMBRE", dto.SettingRequest{Value: " Invierno "})
	require.NoError(t, err)
	assert.Equal(t, entity.SettingSeasonName, out.Key)
	assert.Equal(t, "Invierno", out.Value)
}

type stubReceiptReader struct {
	out *dto.ReceiptReading
	err error
}

func (s stubReceiptReader) ReadReceipt(context.Context, []byte, string) (*dto.ReceiptReading, error) {
	return s.out, s.err
}

func newContestUC(values map[string]string, reader *stubReceiptReader) (*ContestUseCase, *memContest, *memStorage) {
	repo := newMemContest()
	storage := newMemStorage()
	branches := newMemBranches(&entity.Branch{ID: "b1", CompanyID: "c1", Name: "Centro"})
	uc := NewContestUseCase(repo, branches, newSettingUC(values, "2026-02-10 10:00"), storage, &stubImages{}, nil)
	if reader != nil {
		uc.reader = reader
	}
	uc.now = fixedNow("2026-02-10 10:00")
	return uc, repo, storage
}

func entryReq(receipt string) dto.ContestEntryRequest {
	return dto.ContestEntryRequest{
		RUT:           "12.345.678-5",
		Name:          "Ana Pérez",
		Email:         "Ana@Example.com",
		Phone:         "+56911112222",
		ReceiptNumber: receipt,
		Amount:        "15990",
		ReceiptDate:   "2026-02-09",
		BranchID:      "b1",
	}
}

func TestContest_Participate(t *testing.T) {
	uc, repo, storage := newContestUC(openSeason(), nil)
	ctx := context.Background()

	out, err := uc.Participate(ctx, "c1", entryReq("b-1001"), []byte("jpeg"))
	require.NoError(t, err)
	assert.Equal(t, "12345678-5", out.RUT)
	assert.Equal(t, "B-1001", out.ReceiptNumber)
	assert.Equal(t, "ana@example.com", out.Email)
	assert.Equal(t, entity.EntryPending, out.Status)
	assert.Equal(t, "Verano 2026", out.Season)
	assert.Contains(t, out.ImageURL, "/uploads/concurso/c1/")
	assert.Len(t, repo.items, 1)
	assert.Len(t, storage.saved, 1)

	_, err = uc.Participate(ctx, "c1", entryReq("B-1001"), []byte("jpeg"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, repo.items, 1)
}

func TestContest_Rechazos(t *testing.T) {
	ctx := context.Background()

	closed := openSeason()
	closed[entity.SettingSeasonActive] = "false"
	uc, _, _ := newContestUC(closed, nil)
	_, err := uc.Participate(ctx, "c1", entryReq("1"), []byte("jpeg"))
	assert.ErrorIs(t, err, domain.ErrSeasonClosed)

	uc, repo, _ := newContestUC(openSeason(), nil)
	bad := entryReq("2")
	bad.RUT = "12345678-9"
	_, err = uc.Participate(ctx, "c1", bad, []byte("jpeg"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	bad = entryReq("3")
	bad.Amount = "-5"
	_, err = uc.Participate(ctx, "c1", bad, []byte("jpeg"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Participate(ctx, "c1", entryReq("4"), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.items)
}

func TestContest_GuardadoFallido(t *testing.T) {
	uc, repo, storage := newContestUC(openSeason(), nil)
	storage.failErr = errors.New("disco lleno")
	_, err := uc.Participate(context.Background(), "c1", entryReq("5"), []byte("jpeg"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.items)
}

func TestContest_ReadReceipt(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newContestUC(openSeason(), nil)
	_, err := uc.ReadReceipt(ctx, []byte("img"), "image/jpeg")
	assert.ErrorIs(t, err, domain.ErrUnavailable, "sin proveedor configurado")

	want := &dto.ReceiptReading{ReceiptNumber: "778899", Confidence: 0.9}
	uc, _, _ = newContestUC(openSeason(), &stubReceiptReader{out: want})
	got, err := uc.ReadReceipt(ctx, []byte("img"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	uc, _, _ = newContestUC(openSeason(), &stubReceiptReader{err: errors.New("timeout")})
	_, err = uc.ReadReceipt(ctx, []byte("img"), "image/jpeg")
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestContest_ReviewInvalidoRequiereNota(t *testing.T) {
	uc, repo, _ := newContestUC(openSeason(), nil)
	ctx := context.Background()
	e, err := uc.Participate(ctx, "c1", entryReq("6"), []byte("jpeg"))
	require.NoError(t, err)

	_, err = uc.Review(ctx, "c1", e.ID, dto.ContestReviewRequest{Status: entity.EntryInvalid})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.Review(ctx, "c1", e.ID, dto.ContestReviewRequest{Status: entity.EntryInvalid, Note: "boleta ilegible"})
	require.NoError(t, err)
	assert.Equal(t, entity.EntryInvalid, out.Status)
	assert.Equal(t, "boleta ilegible", repo.items[e.ID].ReviewNote)
}
