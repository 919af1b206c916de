package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

const defaultPOSPort = 5432

// BranchUseCase casos de uso CRUD para sucursales y sus credenciales de punto de venta.
type BranchUseCase struct {
	repo          repository.BranchRepository
	legalEntities repository.LegalEntityRepository
	connector     repository.BranchConnector
}

// NewBranchUseCase construye el caso de uso.
func NewBranchUseCase(repo repository.BranchRepository, legalEntities repository.LegalEntityRepository, connector repository.BranchConnector) *BranchUseCase {
	return &BranchUseCase{repo: repo, legalEntities: legalEntities, connector: connector}
}

// Create crea una nueva sucursal.
func (uc *BranchUseCase) Create(ctx context.Context, companyID string, in dto.BranchRequest) (*dto.BranchResponse, error) {
	legalEntityID, err := uc.checkLegalEntity(ctx, companyID, in.LegalEntityID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	branch := &entity.Branch{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		LegalEntityID: legalEntityID,
		Name:          strings.TrimSpace(in.Name),
		Address:       in.Address,
		Active:        boolOr(in.Active, true),
		POS:           posFromRequest(in, ""),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// GetByID obtiene una sucursal de la empresa.
func (uc *BranchUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.BranchResponse, error) {
	branch, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// Update reemplaza los datos de la sucursal. Un db_password vacío conserva el guardado.
func (uc *BranchUseCase) Update(ctx context.Context, companyID, id string, in dto.BranchRequest) (*dto.BranchResponse, error) {
	branch, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	legalEntityID, err := uc.checkLegalEntity(ctx, companyID, in.LegalEntityID)
	if err != nil {
		return nil, err
	}
	branch.LegalEntityID = legalEntityID
	branch.Name = strings.TrimSpace(in.Name)
	branch.Address = in.Address
	branch.Active = boolOr(in.Active, branch.Active)
	branch.POS = posFromRequest(in, branch.POS.Password)
	branch.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// List lista las sucursales de la empresa.
func (uc *BranchUseCase) List(ctx context.Context, companyID string, onlyActive bool) ([]dto.BranchResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, onlyActive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BranchResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBranchResponse(b))
	}
	return items, nil
}

// Delete elimina la sucursal si no tiene empleados asignados.
func (uc *BranchUseCase) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uc.get(ctx, companyID, id); err != nil {
		return err
	}
	employees, records, err := uc.repo.CountDependents(ctx, companyID, id)
	if err != nil {
		return err
	}
	if employees > 0 {
		return domain.InUse("la sucursal", "empleados", employees)
	}
	if records > 0 {
		return domain.InUse("la sucursal", "registros contables", records)
	}
	return uc.repo.Delete(ctx, companyID, id)
}

// TestConnection abre la base de punto de venta de la sucursal, hace ping y la cierra.
func (uc *BranchUseCase) TestConnection(ctx context.Context, companyID, id string) error {
	branch, err := uc.get(ctx, companyID, id)
	if err != nil {
		return err
	}
	if !branch.POS.Configured() {
		return domain.Invalid("db_host", "la sucursal no tiene credenciales de punto de venta")
	}
	reader, err := uc.connector.Open(ctx, branch.POS)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer reader.Close()
	if err := reader.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	return nil
}

func (uc *BranchUseCase) get(ctx context.Context, companyID, id string) (*entity.Branch, error) {
	branch, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}
	return branch, nil
}

func (uc *BranchUseCase) checkLegalEntity(ctx context.Context, companyID string, id *string) (*string, error) {
	id = emptyToNil(id)
	if id == nil {
		return nil, nil
	}
	le, err := uc.legalEntities.GetByID(ctx, companyID, *id)
	if err != nil {
		return nil, err
	}
	if le == nil {
		return nil, domain.Invalid("razon_social_id", "la razón social no existe")
	}
	return id, nil
}

func posFromRequest(in dto.BranchRequest, storedPassword string) entity.POSConnection {
	port := in.DBPort
	if port == 0 {
		port = defaultPOSPort
	}
	password := in.DBPassword
	if password == "" {
		password = storedPassword
	}
	sslMode := in.DBSSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return entity.POSConnection{
		Host:     strings.TrimSpace(in.DBHost),
		Port:     port,
		DBName:   strings.TrimSpace(in.DBName),
		User:     strings.TrimSpace(in.DBUser),
		Password: password,
		SSLMode:  sslMode,
	}
}

func toBranchResponse(b *entity.Branch) *dto.BranchResponse {
	return &dto.BranchResponse{
		ID:             b.ID,
		Name:           b.Name,
		Address:        b.Address,
		LegalEntityID:  b.LegalEntityID,
		Active:         b.Active,
		DBHost:         b.POS.Host,
		DBPort:         b.POS.Port,
		DBName:         b.POS.DBName,
		DBUser:         b.POS.User,
		HasCredentials: b.POS.Configured() && b.POS.Password != "",
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
