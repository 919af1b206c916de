package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.ContestRepository = (*ContestRepo)(nil)

// ContestRepo implementación de ContestRepository sobre participaciones_concurso.
type ContestRepo struct {
	q Querier
}

// NewContestRepository construye el adaptador. Acepta pool o tx (Querier).
func NewContestRepository(q Querier) *ContestRepo {
	return &ContestRepo{q: q}
}

const contestColumns = `id, empresa_id, sucursal_id, rut, nombre, email, telefono, numero_boleta, monto,
	fecha_boleta, imagen_url, estado, nota_revision, temporada, created_at, updated_at`

func (r *ContestRepo) Create(ctx context.Context, e *entity.ContestEntry) error {
	query := `
		INSERT INTO participaciones_concurso (` + contestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.CompanyID, nullIfEmpty(e.BranchID), e.RUT, e.Name, e.Email, e.Phone, e.ReceiptNumber, e.Amount,
		e.ReceiptDate, e.ImageURL, e.Status, e.ReviewNote, e.Season, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Duplicate("numero_boleta", e.ReceiptNumber)
		}
		return fmt.Errorf("insert contest entry: %w", err)
	}
	return nil
}

func (r *ContestRepo) GetByID(ctx context.Context, companyID, id string) (*entity.ContestEntry, error) {
	query := `SELECT ` + contestColumns + ` FROM participaciones_concurso WHERE empresa_id = $1 AND id = $2`
	e, err := scanContestEntry(r.q.QueryRow(ctx, query, companyID, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contest entry: %w", err)
	}
	return e, nil
}

func (r *ContestRepo) ExistsReceipt(ctx context.Context, companyID, receiptNumber string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM participaciones_concurso WHERE empresa_id = $1 AND numero_boleta = $2)`
	if err := r.q.QueryRow(ctx, query, companyID, receiptNumber).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists receipt: %w", err)
	}
	return exists, nil
}

func (r *ContestRepo) List(ctx context.Context, companyID string, f repository.ContestFilter) ([]*entity.ContestEntry, int, error) {
	where := []string{"empresa_id = $1"}
	args := []any{companyID}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if f.Status != "" {
		where = append(where, "estado = "+arg(f.Status))
	}
	if f.Season != "" {
		where = append(where, "temporada = "+arg(f.Season))
	}
	if f.BranchID != "" {
		where = append(where, "sucursal_id = "+arg(f.BranchID))
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		p := arg(likePattern(s))
		where = append(where, fmt.Sprintf("(rut ILIKE %[1]s OR nombre ILIKE %[1]s OR numero_boleta ILIKE %[1]s)", p))
	}
	query := `SELECT ` + contestColumns + `, COUNT(*) OVER() FROM participaciones_concurso WHERE ` +
		strings.Join(where, " AND ") +
		` ORDER BY created_at DESC LIMIT ` + arg(f.Limit) + ` OFFSET ` + arg(f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list contest entries: %w", err)
	}
	defer rows.Close()
	var (
		list  []*entity.ContestEntry
		total int
	)
	for rows.Next() {
		e, err := scanContestEntry(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan contest entry: %w", err)
		}
		list = append(list, e)
	}
	return list, total, rows.Err()
}

func (r *ContestRepo) SetStatus(ctx context.Context, companyID, id, status, note string) error {
	query := `UPDATE participaciones_concurso SET estado = $3, nota_revision = $4, updated_at = now() WHERE empresa_id = $1 AND id = $2`
	tag, err := r.q.Exec(ctx, query, companyID, id, status, note)
	if err != nil {
		return fmt.Errorf("set contest entry status: %w", err)
	}
	return mustAffect(tag)
}

func scanContestEntry(row pgxScanner, extra ...any) (*entity.ContestEntry, error) {
	var e entity.ContestEntry
	dest := []any{
		&e.ID, &e.CompanyID, &e.BranchID, &e.RUT, &e.Name, &e.Email, &e.Phone, &e.ReceiptNumber, &e.Amount,
		&e.ReceiptDate, &e.ImageURL, &e.Status, &e.ReviewNote, &e.Season, &e.CreatedAt, &e.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return &e, nil
}
