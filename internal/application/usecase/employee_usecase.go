package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/ports"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// PhotoSize lado en píxeles de la foto de perfil almacenada.
const PhotoSize = 512

// EmployeeDeps agrupa los puertos que necesita el caso de uso de empleados.
type EmployeeDeps struct {
	Repo          repository.EmployeeRepository
	Tx            repository.EmployeeTxRunner
	Branches      repository.BranchRepository
	LegalEntities repository.LegalEntityRepository
	CostCenters   repository.CostCenterRepository
	Storage       ports.FileStorage
	Images        ports.ImageProcessor
	Sheets        ports.SheetReader
	Exporter      ports.ReportExporter
}

// EmployeeUseCase casos de uso de empleados: CRUD, flags, foto, jerarquía e importación.
type EmployeeUseCase struct {
	EmployeeDeps
	now func() time.Time
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(deps EmployeeDeps) *EmployeeUseCase {
	return &EmployeeUseCase{EmployeeDeps: deps, now: time.Now}
}

// Create valida y persiste el empleado junto con sus sucursales en una transacción.
func (uc *EmployeeUseCase) Create(ctx context.Context, companyID string, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	e := &entity.Employee{ID: uuid.New().String(), CompanyID: companyID}
	if err := uc.apply(ctx, e, in, true); err != nil {
		return nil, err
	}
	now := uc.now()
	e.CreatedAt, e.UpdatedAt = now, now
	err := uc.Tx.RunEmployees(ctx, func(repo repository.EmployeeRepository) error {
		if err := repo.Create(ctx, e); err != nil {
			return err
		}
		return repo.ReplaceBranches(ctx, e.ID, e.BranchIDs())
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, companyID, e.ID)
}

// Update reemplaza los datos del empleado y sus sucursales en una transacción.
func (uc *EmployeeUseCase) Update(ctx context.Context, companyID, id string, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	e, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if err := uc.apply(ctx, e, in, false); err != nil {
		return nil, err
	}
	e.UpdatedAt = uc.now()
	err = uc.Tx.RunEmployees(ctx, func(repo repository.EmployeeRepository) error {
		if err := repo.Update(ctx, e); err != nil {
			return err
		}
		return repo.ReplaceBranches(ctx, e.ID, e.BranchIDs())
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, companyID, e.ID)
}

// GetByID devuelve el empleado con sus sucursales y el nombre de su jefe.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.EmployeeResponse, error) {
	e, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

// List lista empleados con filtros y paginación.
func (uc *EmployeeUseCase) List(ctx context.Context, companyID string, in dto.EmployeeListRequest) (*dto.ListResponse[dto.EmployeeResponse], error) {
	in.PageRequest.Normalize()
	f, err := employeeFilter(in)
	if err != nil {
		return nil, err
	}
	list, total, err := uc.Repo.List(ctx, companyID, f)
	if err != nil {
		return nil, err
	}
	return &dto.ListResponse[dto.EmployeeResponse]{
		Items: toEmployeeResponses(list),
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

// Subordinates lista los empleados que reportan directamente al indicado.
func (uc *EmployeeUseCase) Subordinates(ctx context.Context, companyID, id string) ([]dto.EmployeeResponse, error) {
	if _, err := uc.get(ctx, companyID, id); err != nil {
		return nil, err
	}
	list, err := uc.Repo.ListSubordinates(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponses(list), nil
}

// SetActive fija el flag activo (idempotente).
func (uc *EmployeeUseCase) SetActive(ctx context.Context, companyID, id string, active bool) (*dto.EmployeeResponse, error) {
	if _, err := uc.get(ctx, companyID, id); err != nil {
		return nil, err
	}
	if err := uc.Repo.SetActive(ctx, companyID, id, active); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, companyID, id)
}

// SetDisability fija el flag discapacidad (idempotente).
func (uc *EmployeeUseCase) SetDisability(ctx context.Context, companyID, id string, disability bool) (*dto.EmployeeResponse, error) {
	if _, err := uc.get(ctx, companyID, id); err != nil {
		return nil, err
	}
	if err := uc.Repo.SetDisability(ctx, companyID, id, disability); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, companyID, id)
}

// Delete elimina el empleado. Sus subordinados quedan sin jefe.
func (uc *EmployeeUseCase) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uc.get(ctx, companyID, id); err != nil {
		return err
	}
	return uc.Repo.Delete(ctx, companyID, id)
}

// UploadPhoto recorta la imagen a un cuadrado de PhotoSize px, la guarda y actualiza foto_url.
func (uc *EmployeeUseCase) UploadPhoto(ctx context.Context, companyID, id string, data []byte, crop *dto.PhotoCrop) (*dto.EmployeeResponse, error) {
	if _, err := uc.get(ctx, companyID, id); err != nil {
		return nil, err
	}
	img, err := uc.Images.Square(data, crop, PhotoSize)
	if err != nil {
		return nil, domain.Invalid("foto", err.Error())
	}
	key := fmt.Sprintf("empleados/%s/%s-%d.jpg", companyID, id, uc.now().Unix())
	url, err := uc.Storage.Save(ctx, key, img, "image/jpeg")
	if err != nil {
		return nil, fmt.Errorf("guardar foto: %w", err)
	}
	if err := uc.Repo.SetPhoto(ctx, companyID, id, url); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, companyID, id)
}

// Export genera un xlsx con los empleados que cumplen el filtro (sin paginación).
func (uc *EmployeeUseCase) Export(ctx context.Context, companyID string, in dto.EmployeeListRequest) ([]byte, error) {
	f, err := employeeFilter(in)
	if err != nil {
		return nil, err
	}
	f.Limit, f.Offset = 500, 0
	var all []*entity.Employee
	for {
		page, total, err := uc.Repo.List(ctx, companyID, f)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		f.Offset += len(page)
		if len(page) == 0 || f.Offset >= total {
			break
		}
	}
	return uc.Exporter.EmployeesXLSX(toEmployeeResponses(all))
}

func (uc *EmployeeUseCase) get(ctx context.Context, companyID, id string) (*entity.Employee, error) {
	e, err := uc.Repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

// apply valida la entrada contra el estado de la empresa y la copia sobre e.
func (uc *EmployeeUseCase) apply(ctx context.Context, e *entity.Employee, in dto.EmployeeRequest, creating bool) error {
	r, err := normalizeRUT("rut", in.RUT)
	if err != nil {
		return err
	}
	existing, err := uc.Repo.GetByRUT(ctx, e.CompanyID, r)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != e.ID {
		return domain.Duplicate("rut", r)
	}
	firstNames, lastNames := strings.TrimSpace(in.FirstNames), strings.TrimSpace(in.LastNames)
	if firstNames == "" {
		return domain.Invalid("nombres", "es obligatorio")
	}
	if lastNames == "" {
		return domain.Invalid("apellidos", "es obligatorio")
	}
	hire, err := parseOptionalDate("fecha_ingreso", in.HireDate)
	if err != nil {
		return err
	}
	birth, err := parseOptionalDate("fecha_nacimiento", in.BirthDate)
	if err != nil {
		return err
	}
	salary := decimal.Zero
	if in.BaseSalary != nil {
		if in.BaseSalary.IsNegative() {
			return domain.Invalid("sueldo_base", "no puede ser negativo")
		}
		salary = *in.BaseSalary
	}

	legalEntityID := emptyToNil(in.LegalEntityID)
	if legalEntityID != nil {
		le, err := uc.LegalEntities.GetByID(ctx, e.CompanyID, *legalEntityID)
		if err != nil {
			return err
		}
		if le == nil {
			return domain.Invalid("razon_social_id", "la razón social no existe")
		}
	}
	costCenterID := emptyToNil(in.CostCenterID)
	if costCenterID != nil {
		cc, err := uc.CostCenters.GetByID(ctx, e.CompanyID, *costCenterID)
		if err != nil {
			return err
		}
		if cc == nil {
			return domain.Invalid("centro_costo_id", "el centro de costo no existe")
		}
	}
	managerID := emptyToNil(in.ManagerID)
	if managerID != nil {
		if *managerID == e.ID {
			return domain.Invalid("id_jefe", "un empleado no puede ser su propio jefe")
		}
		m, err := uc.Repo.GetByID(ctx, e.CompanyID, *managerID)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.Invalid("id_jefe", "el jefe no existe en la empresa")
		}
	}
	branches, err := uc.resolveBranches(ctx, e.CompanyID, in.BranchIDs)
	if err != nil {
		return err
	}

	e.RUT = r
	e.FirstNames = firstNames
	e.LastNames = lastNames
	e.Email = strings.TrimSpace(in.Email)
	e.Phone = strings.TrimSpace(in.Phone)
	e.Position = strings.TrimSpace(in.Position)
	e.HireDate = hire
	e.BirthDate = birth
	e.BaseSalary = salary
	e.LegalEntityID = legalEntityID
	e.CostCenterID = costCenterID
	e.ManagerID = managerID
	e.Branches = branches
	if creating {
		e.Active = boolOr(in.Active, true)
		e.Disability = boolOr(in.Disability, false)
	} else {
		e.Active = boolOr(in.Active, e.Active)
		e.Disability = boolOr(in.Disability, e.Disability)
	}
	return nil
}

// resolveBranches verifica que cada sucursal pertenezca a la empresa. Ignora repetidos.
func (uc *EmployeeUseCase) resolveBranches(ctx context.Context, companyID string, ids []string) ([]entity.BranchRef, error) {
	refs := make([]entity.BranchRef, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		b, err := uc.Branches.GetByID(ctx, companyID, id)
		if err != nil {
			return nil, err
		}
		if b == nil {
			return nil, domain.Invalid("sucursales", fmt.Sprintf("la sucursal %s no existe", id))
		}
		refs = append(refs, entity.BranchRef{ID: b.ID, Name: b.Name})
	}
	return refs, nil
}

func employeeFilter(in dto.EmployeeListRequest) (repository.EmployeeFilter, error) {
	f := repository.EmployeeFilter{
		Search:       strings.TrimSpace(in.Search),
		BranchID:     in.BranchID,
		CostCenterID: in.CostCenterID,
		Limit:        in.Limit,
		Offset:       in.Offset,
	}
	switch strings.ToLower(in.Active) {
	case "":
	case "true", "1", "si":
		v := true
		f.Active = &v
	case "false", "0", "no":
		v := false
		f.Active = &v
	default:
		return f, domain.Invalid("activo", "debe ser true o false")
	}
	return f, nil
}

func toEmployeeResponses(list []*entity.Employee) []dto.EmployeeResponse {
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeResponse(e))
	}
	return items
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	branches := make([]dto.BranchRefResponse, 0, len(e.Branches))
	for _, b := range e.Branches {
		branches = append(branches, dto.BranchRefResponse{ID: b.ID, Name: b.Name})
	}
	return &dto.EmployeeResponse{
		ID:            e.ID,
		RUT:           e.RUT,
		FirstNames:    e.FirstNames,
		LastNames:     e.LastNames,
		FullName:      e.FullName(),
		Email:         e.Email,
		Phone:         e.Phone,
		Position:      e.Position,
		HireDate:      formatDate(e.HireDate),
		BirthDate:     formatDate(e.BirthDate),
		BaseSalary:    e.BaseSalary,
		LegalEntityID: e.LegalEntityID,
		CostCenterID:  e.CostCenterID,
		ManagerID:     e.ManagerID,
		ManagerName:   e.ManagerName,
		Active:        e.Active,
		Disability:    e.Disability,
		PhotoURL:      e.PhotoURL,
		Branches:      branches,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
