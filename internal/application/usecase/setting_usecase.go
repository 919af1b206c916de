package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var settingKeyRe = regexp.MustCompile(`^[a-z0-9_.]{1,100}$`)

// SettingUseCase configuración clave/valor por empresa y lectura de la temporada del concurso.
type SettingUseCase struct {
	repo repository.SettingRepository
	now  func() time.Time
}

// NewSettingUseCase construye el caso de uso.
func NewSettingUseCase(repo repository.SettingRepository) *SettingUseCase {
	return &SettingUseCase{repo: repo, now: time.Now}
}

// List devuelve todas las claves de la empresa.
func (uc *SettingUseCase) List(ctx context.Context, companyID string) ([]dto.SettingResponse, error) {
	list, err := uc.repo.List(ctx, companyID, "")
	if err != nil {
		return nil, err
	}
	items := make([]dto.SettingResponse, 0, len(list))
	for _, s := range list {
		items = append(items, toSettingResponse(s))
	}
	return items, nil
}

// Get devuelve una clave.
func (uc *SettingUseCase) Get(ctx context.Context, companyID, key string) (*dto.SettingResponse, error) {
	s, err := uc.repo.Get(ctx, companyID, key)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	out := toSettingResponse(s)
	return &out, nil
}

// Upsert crea o reemplaza el valor de una clave. Las claves de temporada se validan.
func (uc *SettingUseCase) Upsert(ctx context.Context, companyID, key string, in dto.SettingRequest) (*dto.SettingResponse, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if !settingKeyRe.MatchString(key) {
		return nil, domain.Invalid("clave", "solo minúsculas, dígitos, punto y guion bajo")
	}
	value := strings.TrimSpace(in.Value)
	switch key {
	case entity.SettingSeasonStart, entity.SettingSeasonEnd:
		if _, err := parseOptionalDate(key, value); err != nil {
			return nil, err
		}
	case entity.SettingSeasonActive:
		if _, ok := parseFlag(value); !ok && value != "" {
			return nil, domain.Invalid(key, "debe ser true o false")
		}
	}
	s := &entity.Setting{
		CompanyID:   companyID,
		Key:         key,
		Value:       value,
		Description: in.Description,
		UpdatedAt:   uc.now(),
	}
	if err := uc.repo.Upsert(ctx, s); err != nil {
		return nil, err
	}
	out := toSettingResponse(s)
	return &out, nil
}

// Delete elimina una clave.
func (uc *SettingUseCase) Delete(ctx context.Context, companyID, key string) error {
	s, err := uc.repo.Get(ctx, companyID, key)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, companyID, key)
}

// Season arma la temporada del concurso a partir de las claves temporada_*.
// Abierta = activa y hoy dentro de [inicio, fin], ambos inclusivos y opcionales.
func (uc *SettingUseCase) Season(ctx context.Context, companyID string) (*dto.SeasonResponse, error) {
	list, err := uc.repo.List(ctx, companyID, entity.SeasonPrefix)
	if err != nil {
		return nil, err
	}
	values := make(map[string]string, len(list))
	for _, s := range list {
		values[s.Key] = strings.TrimSpace(s.Value)
	}
	out := &dto.SeasonResponse{
		Name:  values[entity.SettingSeasonName],
		Rules: values[entity.SettingSeasonRules],
	}
	out.Active, _ = parseFlag(values[entity.SettingSeasonActive])
	start, _ := parseOptionalDate(entity.SettingSeasonStart, values[entity.SettingSeasonStart])
	end, _ := parseOptionalDate(entity.SettingSeasonEnd, values[entity.SettingSeasonEnd])
	out.Start, out.End = formatDate(start), formatDate(end)

	today := uc.now()
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.Local)
	out.Open = out.Active &&
		(start == nil || !today.Before(*start)) &&
		(end == nil || !today.After(*end))
	return out, nil
}

// parseFlag interpreta los valores booleanos guardados como texto.
func parseFlag(s string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "si", "sí", "on":
		return true, true
	case "false", "0", "no", "off":
		return false, true
	}
	return false, false
}

func toSettingResponse(s *entity.Setting) dto.SettingResponse {
	return dto.SettingResponse{Key: s.Key, Value: s.Value, Description: s.Description, UpdatedAt: s.UpdatedAt}
}
