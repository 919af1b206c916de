package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.SettingRepository = (*SettingRepo)(nil)

// SettingRepo implementación de SettingRepository sobre configuracion_sistema.
type SettingRepo struct {
	q Querier
}

// NewSettingRepository construye el adaptador. Acepta pool o tx (Querier).
func NewSettingRepository(q Querier) *SettingRepo {
	return &SettingRepo{q: q}
}

func (r *SettingRepo) Get(ctx context.Context, companyID, key string) (*entity.Setting, error) {
	query := `SELECT empresa_id, clave, valor, descripcion, updated_at FROM configuracion_sistema WHERE empresa_id = $1 AND clave = $2`
	s, err := scanSetting(r.q.QueryRow(ctx, query, companyID, key))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get setting: %w", err)
	}
	return s, nil
}

// List lista las claves de la empresa; prefix vacío = todas.
func (r *SettingRepo) List(ctx context.Context, companyID, prefix string) ([]*entity.Setting, error) {
	query := `
		SELECT empresa_id, clave, valor, descripcion, updated_at
		FROM configuracion_sistema
		WHERE empresa_id = $1 AND starts_with(clave, $2)
		ORDER BY clave`
	rows, err := r.q.Query(ctx, query, companyID, prefix)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()
	var list []*entity.Setting
	for rows.Next() {
		s, err := scanSetting(rows)
		if err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Upsert inserta o reemplaza el valor de la clave.
func (r *SettingRepo) Upsert(ctx context.Context, s *entity.Setting) error {
	query := `
		INSERT INTO configuracion_sistema (empresa_id, clave, valor, descripcion, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (empresa_id, clave)
		DO UPDATE SET valor = EXCLUDED.valor, descripcion = EXCLUDED.descripcion, updated_at = EXCLUDED.updated_at`
	if _, err := r.q.Exec(ctx, query, s.CompanyID, s.Key, s.Value, s.Description, s.UpdatedAt); err != nil {
		return fmt.Errorf("upsert setting: %w", err)
	}
	return nil
}

func (r *SettingRepo) Delete(ctx context.Context, companyID, key string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM configuracion_sistema WHERE empresa_id = $1 AND clave = $2`, companyID, key)
	if err != nil {
		return fmt.Errorf("delete setting: %w", err)
	}
	return mustAffect(tag)
}

func scanSetting(row pgxScanner) (*entity.Setting, error) {
	var s entity.Setting
	if err := row.Scan(&s.CompanyID, &s.Key, &s.Value, &s.Description, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
