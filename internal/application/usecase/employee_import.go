package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/pkg/rut"
)

// MaxImportRows tope de filas por importación.
const MaxImportRows = 5000

// Columnas reconocidas en archivos de importación (encabezado normalizado → campo).
var importColumns = map[string]string{
	"rut":              "rut",
	"run":              "rut",
	"nombres":          "nombres",
	"nombre":           "nombres",
	"apellidos":        "apellidos",
	"email":            "email",
	"correo":           "email",
	"telefono":         "telefono",
	"cargo":            "cargo",
	"fecha_ingreso":    "fecha_ingreso",
	"fecha_nacimiento": "fecha_nacimiento",
	"sueldo_base":      "sueldo_base",
	"sueldo":           "sueldo_base",
	"razon_social":     "razon_social",
	"rut_razon_social": "razon_social",
	"centro_costo":     "centro_costo",
	"centro_de_costo":  "centro_costo",
	"sucursales":       "sucursales",
	"sucursal":         "sucursales",
	"id_jefe":          "id_jefe",
	"activo":           "activo",
	"discapacidad":     "discapacidad",
}

// Import procesa cada fila de forma independiente: una fila inválida se reporta y no
// detiene las demás.
func (uc *EmployeeUseCase) Import(ctx context.Context, companyID string, rows []dto.EmployeeRequest) (*dto.ImportResult, error) {
	if len(rows) > MaxImportRows {
		return nil, domain.Invalid("rows", fmt.Sprintf("máximo %d filas por importación", MaxImportRows))
	}
	result := &dto.ImportResult{Total: len(rows), Errors: []dto.ImportRowError{}}
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		err := validRow(&row)
		if err == nil {
			_, err = uc.Create(ctx, companyID, row)
		}
		if err != nil {
			result.Errors = append(result.Errors, dto.ImportRowError{Row: i + 1, RUT: row.RUT, Error: importErrorMessage(err)})
			continue
		}
		result.Created++
	}
	return result, nil
}

// ImportFile lee un xlsx, xls o csv (primera fila = encabezados) y delega en Import.
// Razón social se informa por RUT, centro de costo por código y sucursales por nombre
// o id separados por coma o punto y coma.
func (uc *EmployeeUseCase) ImportFile(ctx context.Context, companyID, filename string, data []byte) (*dto.ImportResult, error) {
	table, err := uc.Sheets.ReadRows(filename, data)
	if err != nil {
		return nil, domain.Invalid("archivo", err.Error())
	}
	if len(table) < 2 {
		return nil, domain.Invalid("archivo", "el archivo no tiene filas de datos")
	}
	cols := make(map[string]int)
	for i, h := range table[0] {
		if field, ok := importColumns[normalizeHeader(h)]; ok {
			if _, dup := cols[field]; !dup {
				cols[field] = i
			}
		}
	}
	for _, required := range []string{"rut", "nombres", "apellidos"} {
		if _, ok := cols[required]; !ok {
			return nil, domain.Invalid("archivo", fmt.Sprintf("falta la columna %q", required))
		}
	}

	lk, err := uc.newImportLookup(ctx, companyID)
	if err != nil {
		return nil, err
	}
	body := table[1:]
	if len(body) > MaxImportRows {
		return nil, domain.Invalid("archivo", fmt.Sprintf("máximo %d filas por importación", MaxImportRows))
	}

	result := &dto.ImportResult{Errors: []dto.ImportRowError{}}
	for i, cells := range body {
		if blankRow(cells) {
			continue
		}
		result.Total++
		get := func(field string) string {
			idx, ok := cols[field]
			if !ok || idx >= len(cells) {
				return ""
			}
			return strings.TrimSpace(cells[idx])
		}
		req, err := lk.toRequest(ctx, get)
		if err == nil {
			err = validRow(&req)
		}
		if err == nil {
			_, err = uc.Create(ctx, companyID, req)
		}
		if err != nil {
			// +2: el encabezado ocupa la fila 1 de la planilla.
			result.Errors = append(result.Errors, dto.ImportRowError{Row: i + 2, RUT: get("rut"), Error: importErrorMessage(err)})
			continue
		}
		result.Created++
	}
	return result, nil
}

// validRow aplica a la fila las reglas de formato del alta individual (email, largos, UUIDs).
func validRow(in *dto.EmployeeRequest) error {
	fields, err := dto.Check(in)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}
	parts := make([]string, 0, len(fields))
	for name, msg := range fields {
		parts = append(parts, name+": "+msg)
	}
	sort.Strings(parts)
	return domain.Invalid("", strings.Join(parts, "; "))
}

// importLookup resuelve las referencias por nombre/código de una importación.
type importLookup struct {
	uc          *EmployeeUseCase
	companyID   string
	branches    map[string]string // nombre normalizado o id → id
	costCenters map[string]*string
	legal       map[string]*string
}

func (uc *EmployeeUseCase) newImportLookup(ctx context.Context, companyID string) (*importLookup, error) {
	list, err := uc.Branches.ListByCompany(ctx, companyID, false)
	if err != nil {
		return nil, err
	}
	lk := &importLookup{
		uc:          uc,
		companyID:   companyID,
		branches:    make(map[string]string, len(list)*2),
		costCenters: map[string]*string{},
		legal:       map[string]*string{},
	}
	for _, b := range list {
		lk.branches[b.ID] = b.ID
		lk.branches[normalizeHeader(b.Name)] = b.ID
	}
	return lk, nil
}

func (lk *importLookup) toRequest(ctx context.Context, get func(string) string) (dto.EmployeeRequest, error) {
	req := dto.EmployeeRequest{
		RUT:        get("rut"),
		FirstNames: get("nombres"),
		LastNames:  get("apellidos"),
		Email:      get("email"),
		Phone:      get("telefono"),
		Position:   get("cargo"),
	}
	var err error
	if req.HireDate, err = normalizeDateCell("fecha_ingreso", get("fecha_ingreso")); err != nil {
		return req, err
	}
	if req.BirthDate, err = normalizeDateCell("fecha_nacimiento", get("fecha_nacimiento")); err != nil {
		return req, err
	}
	if s := get("sueldo_base"); s != "" {
		d, err := parseAmountCell(s)
		if err != nil {
			return req, domain.Invalid("sueldo_base", "monto inválido")
		}
		req.BaseSalary = &d
	}
	if req.Active, err = parseBoolCell("activo", get("activo")); err != nil {
		return req, err
	}
	if req.Disability, err = parseBoolCell("discapacidad", get("discapacidad")); err != nil {
		return req, err
	}
	if s := get("id_jefe"); s != "" {
		req.ManagerID = &s
	}
	if s := get("centro_costo"); s != "" {
		if req.CostCenterID, err = lk.costCenter(ctx, s); err != nil {
			return req, err
		}
	}
	if s := get("razon_social"); s != "" {
		if req.LegalEntityID, err = lk.legalEntity(ctx, s); err != nil {
			return req, err
		}
	}
	if s := get("sucursales"); s != "" {
		for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' }) {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, ok := lk.branches[part]
			if !ok {
				id, ok = lk.branches[normalizeHeader(part)]
			}
			if !ok {
				return req, domain.Invalid("sucursales", fmt.Sprintf("sucursal %q no existe", part))
			}
			req.BranchIDs = append(req.BranchIDs, id)
		}
	}
	return req, nil
}

func (lk *importLookup) costCenter(ctx context.Context, code string) (*string, error) {
	code = strings.ToUpper(code)
	if id, ok := lk.costCenters[code]; ok {
		return id, nil
	}
	cc, err := lk.uc.CostCenters.GetByCode(ctx, lk.companyID, code)
	if err != nil {
		return nil, err
	}
	if cc == nil {
		return nil, domain.Invalid("centro_costo", fmt.Sprintf("centro de costo %q no existe", code))
	}
	lk.costCenters[code] = &cc.ID
	return &cc.ID, nil
}

func (lk *importLookup) legalEntity(ctx context.Context, raw string) (*string, error) {
	r, err := rut.Normalize(raw)
	if err != nil {
		return nil, domain.Invalid("razon_social", "RUT de razón social inválido")
	}
	if id, ok := lk.legal[r]; ok {
		return id, nil
	}
	le, err := lk.uc.LegalEntities.GetByRUT(ctx, lk.companyID, r)
	if err != nil {
		return nil, err
	}
	if le == nil {
		return nil, domain.Invalid("razon_social", fmt.Sprintf("razón social %s no existe", r))
	}
	lk.legal[r] = &le.ID
	return &le.ID, nil
}

// normalizeHeader pasa a minúsculas, quita tildes y reemplaza separadores por "_".
func normalizeHeader(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	out = strings.ToLower(strings.TrimSpace(out))
	return strings.Join(strings.FieldsFunc(out, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_' || r == '.'
	}), "_")
}

var cellDateLayouts = []string{"2006-01-02", "02-01-2006", "02/01/2006", "2/1/2006", "2006/01/02"}

// normalizeDateCell acepta las formas habituales de una planilla y devuelve YYYY-MM-DD.
func normalizeDateCell(field, s string) (string, error) {
	if s == "" {
		return "", nil
	}
	for _, layout := range cellDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(dateLayout), nil
		}
	}
	return "", domain.Invalid(field, fmt.Sprintf("fecha %q no reconocida", s))
}

// parseAmountCell interpreta montos como "$1.250.000", "1250000" o "1.250,50".
func parseAmountCell(s string) (decimal.Decimal, error) {
	s = strings.NewReplacer("$", "", " ", "").Replace(s)
	switch {
	case strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case strings.Count(s, ".") > 1:
		s = strings.ReplaceAll(s, ".", "")
	case strings.Count(s, ".") == 1 && len(s)-strings.Index(s, ".") == 4:
		s = strings.ReplaceAll(s, ".", "")
	}
	return decimal.NewFromString(s)
}

func parseBoolCell(field, s string) (*bool, error) {
	var v bool
	switch normalizeHeader(s) {
	case "":
		return nil, nil
	case "si", "s", "true", "1", "x", "activo":
		v = true
	case "no", "n", "false", "0", "inactivo":
		v = false
	default:
		return nil, domain.Invalid(field, fmt.Sprintf("valor %q no reconocido", s))
	}
	return &v, nil
}

func blankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// importErrorMessage expone el mensaje de errores de dominio; los de infraestructura se ocultan.
func importErrorMessage(err error) string {
	var (
		verr *domain.ValidationError
		derr *domain.DuplicateError
	)
	switch {
	case errors.As(err, &verr), errors.As(err, &derr), errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrDuplicate):
		return err.Error()
	default:
		return "error interno al guardar la fila"
	}
}
