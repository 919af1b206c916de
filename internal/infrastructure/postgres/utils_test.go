package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Backoffice-api/internal/domain"
)

func TestPgErrorCodes(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "empleados_empresa_rut_key"})
	fk := &pgconn.PgError{Code: "23503"}

	assert.True(t, isUniqueViolation(unique))
	assert.False(t, isForeignKeyViolation(unique))
	assert.Equal(t, "empleados_empresa_rut_key", constraintName(unique))
	assert.True(t, isForeignKeyViolation(fk))
	assert.False(t, isUniqueViolation(errors.New("timeout")))
	assert.False(t, isUniqueViolation(nil))
}

func TestMustAffect(t *testing.T) {
	assert.ErrorIs(t, mustAffect(pgconn.NewCommandTag("DELETE 0")), domain.ErrNotFound)
	assert.NoError(t, mustAffect(pgconn.NewCommandTag("UPDATE 1")))
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%juan%", likePattern(" juan "))
	assert.Equal(t, `%50\%\_x%`, likePattern("50%_x"))
}

func TestNullIfEmpty(t *testing.T) {
	empty, id := "", "abc"
	assert.Nil(t, nullIfEmpty(nil))
	assert.Nil(t, nullIfEmpty(&empty))
	assert.Equal(t, &id, nullIfEmpty(&id))
}
