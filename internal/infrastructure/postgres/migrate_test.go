package postgres

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_EmbebidasYOrdenadas(t *testing.T) {
	files, err := fs.Glob(migrationsFS, MigrationsDir+"/*.sql")
	require.NoError(t, err)
	require.Len(t, files, 4)
	assert.Equal(t, "migrations/00001_init.sql", files[0])

	for _, f := range files {
		data, err := fs.ReadFile(migrationsFS, f)
		require.NoError(t, err)
		content := string(data)
		assert.True(t, strings.HasPrefix(content, "-- +goose Up"), f)
		assert.Contains(t, content, "-- +goose Down", f)
	}
}

func TestMigrations_Constraints(t *testing.T) {
	read := func(name string) string {
		data, err := fs.ReadFile(migrationsFS, MigrationsDir+"/"+name)
		require.NoError(t, err)
		return string(data)
	}
	schema := read("00001_init.sql")
	for _, sub := range []string{
		"CONSTRAINT empleados_empresa_rut_key UNIQUE (empresa_id, rut)",
		"REFERENCES empleados(id) ON DELETE SET NULL",
		"empleado_id UUID NOT NULL REFERENCES empleados(id) ON DELETE CASCADE",
		"CONSTRAINT razones_sociales_empresa_rut_key UNIQUE (empresa_id, rut)",
		"CONSTRAINT centros_costos_empresa_codigo_key UNIQUE (empresa_id, codigo)",
		"('concurso',",
	} {
		assert.Contains(t, schema, sub)
	}

	discounts := read("00002_descuentos_configuracion.sql")
	assert.Contains(t, discounts, "CONSTRAINT codigos_descuento_empresa_codigo_key UNIQUE (empresa_id, codigo)")
	assert.Contains(t, discounts, "PRIMARY KEY (empresa_id, clave)")

	assert.Contains(t, read("00003_concurso.sql"), "UNIQUE (empresa_id, numero_boleta)")
	assert.Contains(t, read("00004_estado_resultados.sql"), "PRIMARY KEY (empresa_id, sucursal_id, fecha)")
}
