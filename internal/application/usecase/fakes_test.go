package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// ── Repositorios en memoria para tests ───────────────────────────────────────

type memLegalEntities struct {
	items     map[string]*entity.LegalEntity
	employees map[string]int
	branches  map[string]int
}

func newMemLegalEntities() *memLegalEntities {
	return &memLegalEntities{items: map[string]*entity.LegalEntity{}, employees: map[string]int{}, branches: map[string]int{}}
}

func (m *memLegalEntities) Create(_ context.Context, le *entity.LegalEntity) error {
	c := *le
	m.items[le.ID] = &c
	return nil
}

func (m *memLegalEntities) GetByID(_ context.Context, companyID, id string) (*entity.LegalEntity, error) {
	le, ok := m.items[id]
	if !ok || le.CompanyID != companyID {
		return nil, nil
	}
	c := *le
	return &c, nil
}

func (m *memLegalEntities) GetByRUT(_ context.Context, companyID, rut string) (*entity.LegalEntity, error) {
	for _, le := range m.items {
		if le.CompanyID == companyID && le.RUT == rut {
			c := *le
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memLegalEntities) Update(_ context.Context, le *entity.LegalEntity) error {
	c := *le
	m.items[le.ID] = &c
	return nil
}

func (m *memLegalEntities) List(_ context.Context, companyID, _ string, _, _ int) ([]*entity.LegalEntity, int, error) {
	var out []*entity.LegalEntity
	for _, le := range m.items {
		if le.CompanyID == companyID {
			out = append(out, le)
		}
	}
	return out, len(out), nil
}

func (m *memLegalEntities) Delete(_ context.Context, _, id string) error {
	delete(m.items, id)
	return nil
}

func (m *memLegalEntities) CountDependents(_ context.Context, _, id string) (int, int, error) {
	return m.employees[id], m.branches[id], nil
}

type memCostCenters struct {
	items     map[string]*entity.CostCenter
	employees map[string]int
	movements map[string]int
}

func newMemCostCenters() *memCostCenters {
	return &memCostCenters{items: map[string]*entity.CostCenter{}, employees: map[string]int{}, movements: map[string]int{}}
}

func (m *memCostCenters) Create(_ context.Context, cc *entity.CostCenter) error {
	c := *cc
	m.items[cc.ID] = &c
	return nil
}

func (m *memCostCenters) GetByID(_ context.Context, companyID, id string) (*entity.CostCenter, error) {
	cc, ok := m.items[id]
	if !ok || cc.CompanyID != companyID {
		return nil, nil
	}
	c := *cc
	return &c, nil
}

func (m *memCostCenters) GetByCode(_ context.Context, companyID, code string) (*entity.CostCenter, error) {
	for _, cc := range m.items {
		if cc.CompanyID == companyID && cc.Code == code {
			c := *cc
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memCostCenters) Update(_ context.Context, cc *entity.CostCenter) error {
	c := *cc
	m.items[cc.ID] = &c
	return nil
}

func (m *memCostCenters) List(_ context.Context, companyID string, _ bool) ([]*entity.CostCenter, error) {
	var out []*entity.CostCenter
	for _, cc := range m.items {
		if cc.CompanyID == companyID {
			out = append(out, cc)
		}
	}
	return out, nil
}

func (m *memCostCenters) Delete(_ context.Context, _, id string) error {
	delete(m.items, id)
	return nil
}

func (m *memCostCenters) CountDependents(_ context.Context, _, id string) (int, int, error) {
	return m.employees[id], m.movements[id], nil
}

type memBranches struct {
	items     map[string]*entity.Branch
	employees map[string]int
	records   map[string]int
}

func newMemBranches(branches ...*entity.Branch) *memBranches {
	m := &memBranches{items: map[string]*entity.Branch{}, employees: map[string]int{}, records: map[string]int{}}
	for _, b := range branches {
		m.items[b.ID] = b
	}
	return m
}

func (m *memBranches) Create(_ context.Context, b *entity.Branch) error {
	c := *b
	m.items[b.ID] = &c
	return nil
}

func (m *memBranches) GetByID(_ context.Context, companyID, id string) (*entity.Branch, error) {
	b, ok := m.items[id]
	if !ok || b.CompanyID != companyID {
		return nil, nil
	}
	c := *b
	return &c, nil
}

func (m *memBranches) Update(_ context.Context, b *entity.Branch) error {
	c := *b
	m.items[b.ID] = &c
	return nil
}

func (m *memBranches) ListByCompany(_ context.Context, companyID string, onlyActive bool) ([]*entity.Branch, error) {
	var out []*entity.Branch
	for _, b := range m.items {
		if b.CompanyID == companyID && (!onlyActive || b.Active) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memBranches) Delete(_ context.Context, _, id string) error {
	delete(m.items, id)
	return nil
}

func (m *memBranches) CountDependents(_ context.Context, _, id string) (int, int, error) {
	return m.employees[id], m.records[id], nil
}

// memEmployees implementa EmployeeRepository y EmployeeTxRunner sobre el mismo mapa.
type memEmployees struct {
	items    map[string]*entity.Employee
	branches map[string][]string
	txCalls  int
	failTx   error
}

func newMemEmployees() *memEmployees {
	return &memEmployees{items: map[string]*entity.Employee{}, branches: map[string][]string{}}
}

func (m *memEmployees) RunEmployees(ctx context.Context, fn func(repository.EmployeeRepository) error) error {
	m.txCalls++
	if m.failTx != nil {
		return m.failTx
	}
	return fn(m)
}

func (m *memEmployees) Create(_ context.Context, e *entity.Employee) error {
	for _, x := range m.items {
		if x.CompanyID == e.CompanyID && x.RUT == e.RUT {
			return domain.Duplicate("rut", e.RUT)
		}
	}
	c := *e
	m.items[e.ID] = &c
	return nil
}

func (m *memEmployees) GetByID(_ context.Context, companyID, id string) (*entity.Employee, error) {
	e, ok := m.items[id]
	if !ok || e.CompanyID != companyID {
		return nil, nil
	}
	c := *e
	c.Branches = nil
	for _, bid := range m.branches[id] {
		c.Branches = append(c.Branches, entity.BranchRef{ID: bid})
	}
	return &c, nil
}

func (m *memEmployees) GetByRUT(_ context.Context, companyID, rut string) (*entity.Employee, error) {
	for _, e := range m.items {
		if e.CompanyID == companyID && e.RUT == rut {
			c := *e
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memEmployees) Update(_ context.Context, e *entity.Employee) error {
	c := *e
	m.items[e.ID] = &c
	return nil
}

func (m *memEmployees) ReplaceBranches(_ context.Context, employeeID string, ids []string) error {
	m.branches[employeeID] = append([]string(nil), ids...)
	return nil
}

func (m *memEmployees) List(_ context.Context, companyID string, f repository.EmployeeFilter) ([]*entity.Employee, int, error) {
	var out []*entity.Employee
	for _, e := range m.items {
		if e.CompanyID != companyID {
			continue
		}
		if f.Active != nil && e.Active != *f.Active {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(e.FullName()), strings.ToLower(f.Search)) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RUT < out[j].RUT })
	total := len(out)
	if f.Offset < len(out) {
		out = out[f.Offset:]
	} else {
		out = nil
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, total, nil
}

func (m *memEmployees) ListSubordinates(_ context.Context, companyID, managerID string) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, e := range m.items {
		if e.CompanyID == companyID && e.ManagerID != nil && *e.ManagerID == managerID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memEmployees) SetActive(_ context.Context, _, id string, active bool) error {
	m.items[id].Active = active
	return nil
}

func (m *memEmployees) SetDisability(_ context.Context, _, id string, disability bool) error {
	m.items[id].Disability = disability
	return nil
}

func (m *memEmployees) SetPhoto(_ context.Context, _, id, url string) error {
	m.items[id].PhotoURL = url
	return nil
}

func (m *memEmployees) Delete(_ context.Context, _, id string) error {
	delete(m.items, id)
	delete(m.branches, id)
	return nil
}

type memDiscounts struct {
	items map[string]*entity.DiscountCode
}

func newMemDiscounts() *memDiscounts {
	return &memDiscounts{items: map[string]*entity.DiscountCode{}}
}

func (m *memDiscounts) Create(_ context.Context, d *entity.DiscountCode) error {
	c := *d
	m.items[d.ID] = &c
	return nil
}

func (m *memDiscounts) GetByID(_ context.Context, companyID, id string) (*entity.DiscountCode, error) {
	d, ok := m.items[id]
	if !ok || d.CompanyID != companyID {
		return nil, nil
	}
	c := *d
	return &c, nil
}

func (m *memDiscounts) GetByCode(_ context.Context, companyID, code string) (*entity.DiscountCode, error) {
	for _, d := range m.items {
		if d.CompanyID == companyID && d.Code == code {
			c := *d
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memDiscounts) Update(_ context.Context, d *entity.DiscountCode) error {
	c := *d
	m.items[d.ID] = &c
	return nil
}

func (m *memDiscounts) List(_ context.Context, companyID string, _ bool, _, _ int) ([]*entity.DiscountCode, int, error) {
	var out []*entity.DiscountCode
	for _, d := range m.items {
		if d.CompanyID == companyID {
			out = append(out, d)
		}
	}
	return out, len(out), nil
}

func (m *memDiscounts) SetActive(_ context.Context, _, id string, active bool) error {
	m.items[id].Active = active
	return nil
}

func (m *memDiscounts) Delete(_ context.Context, _, id string) error {
	delete(m.items, id)
	return nil
}

// Redeem replica el UPDATE condicionado de la implementación SQL.
func (m *memDiscounts) Redeem(_ context.Context, companyID, code string, now time.Time) (bool, error) {
	for _, d := range m.items {
		if d.CompanyID == companyID && d.Code == code {
			if d.Evaluate(now) != "" {
				return false, nil
			}
			d.UsedCount++
			return true, nil
		}
	}
	return false, nil
}

type memSettings struct {
	items map[string]*entity.Setting
}

func newMemSettings(values map[string]string) *memSettings {
	m := &memSettings{items: map[string]*entity.Setting{}}
	for k, v := range values {
		m.items[k] = &entity.Setting{CompanyID: "c1", Key: k, Value: v}
	}
	return m
}

func (m *memSettings) Get(_ context.Context, companyID, key string) (*entity.Setting, error) {
	s, ok := m.items[key]
	if !ok || s.CompanyID != companyID {
		return nil, nil
	}
	return s, nil
}

func (m *memSettings) List(_ context.Context, companyID, prefix string) ([]*entity.Setting, error) {
	var out []*entity.Setting
	for _, s := range m.items {
		if s.CompanyID == companyID && strings.HasPrefix(s.Key, prefix) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memSettings) Upsert(_ context.Context, s *entity.Setting) error {
	m.items[s.Key] = s
	return nil
}

func (m *memSettings) Delete(_ context.Context, _, key string) error {
	delete(m.items, key)
	return nil
}

type memContest struct {
	items map[string]*entity.ContestEntry
}

func newMemContest() *memContest {
	return &memContest{items: map[string]*entity.ContestEntry{}}
}

func (m *memContest) Create(_ context.Context, e *entity.ContestEntry) error {
	c := *e
	m.items[e.ID] = &c
	return nil
}

func (m *memContest) GetByID(_ context.Context, companyID, id string) (*entity.ContestEntry, error) {
	e, ok := m.items[id]
	if !ok || e.CompanyID != companyID {
		return nil, nil
	}
	c := *e
	return &c, nil
}

func (m *memContest) ExistsReceipt(_ context.Context, companyID, receipt string) (bool, error) {
	for _, e := range m.items {
		if e.CompanyID == companyID && e.ReceiptNumber == receipt {
			return true, nil
		}
	}
	return false, nil
}

func (m *memContest) List(_ context.Context, companyID string, _ repository.ContestFilter) ([]*entity.ContestEntry, int, error) {
	var out []*entity.ContestEntry
	for _, e := range m.items {
		if e.CompanyID == companyID {
			out = append(out, e)
		}
	}
	return out, len(out), nil
}

func (m *memContest) SetStatus(_ context.Context, _, id, status, note string) error {
	m.items[id].Status = status
	m.items[id].ReviewNote = note
	return nil
}

type memProfiles struct {
	items   map[string]*entity.Profile
	modules []*entity.Module
}

func newMemProfiles(profiles ...*entity.Profile) *memProfiles {
	m := &memProfiles{items: map[string]*entity.Profile{}}
	for _, p := range profiles {
		m.items[p.ID] = p
	}
	for _, code := range []string{entity.ModuleEmployees, entity.ModuleDiscounts, entity.ModuleSales} {
		m.modules = append(m.modules, &entity.Module{ID: code, Code: code, Name: code})
	}
	return m
}

func (m *memProfiles) RunProfiles(_ context.Context, fn func(repository.ProfileRepository) error) error {
	return fn(m)
}

func (m *memProfiles) Create(_ context.Context, p *entity.Profile) error {
	c := *p
	m.items[p.ID] = &c
	return nil
}

func (m *memProfiles) GetByID(_ context.Context, companyID, id string) (*entity.Profile, error) {
	p, ok := m.items[id]
	if !ok || p.CompanyID != companyID {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (m *memProfiles) GetByName(_ context.Context, companyID, name string) (*entity.Profile, error) {
	for _, p := range m.items {
		if p.CompanyID == companyID && p.Name == name {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memProfiles) Update(_ context.Context, p *entity.Profile) error {
	c := *p
	m.items[p.ID] = &c
	return nil
}

func (m *memProfiles) ReplaceModules(_ context.Context, id string, codes []string) error {
	m.items[id].ModuleCodes = codes
	return nil
}

func (m *memProfiles) ReplaceBranches(_ context.Context, id string, ids []string) error {
	m.items[id].BranchIDs = ids
	return nil
}

func (m *memProfiles) List(_ context.Context, companyID string) ([]*entity.Profile, error) {
	var out []*entity.Profile
	for _, p := range m.items {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memProfiles) Delete(_ context.Context, _, id string) error {
	delete(m.items, id)
	return nil
}

func (m *memProfiles) ListModules(_ context.Context) ([]*entity.Module, error) {
	return m.modules, nil
}

type memUsers struct {
	byProfile map[string]int
}

func (m *memUsers) Create(context.Context, *entity.User) error { return nil }
func (m *memUsers) GetByID(context.Context, string) (*entity.User, error) { return nil, nil }
func (m *memUsers) FindByEmail(context.Context, string) (*entity.User, error) { return nil, nil }
func (m *memUsers) Update(context.Context, *entity.User) error { return nil }
func (m *memUsers) ListByCompany(context.Context, string, int, int) ([]*entity.User, error) {
	return nil, nil
}
func (m *memUsers) CountByProfile(_ context.Context, _, profileID string) (int, error) {
	return m.byProfile[profileID], nil
}

// ── Puertos de infraestructura ───────────────────────────────────────────────

type memStorage struct {
	saved   map[string][]byte
	deleted []string
	failErr error
}

func newMemStorage() *memStorage { return &memStorage{saved: map[string][]byte{}} }

func (s *memStorage) Save(_ context.Context, key string, data []byte, _ string) (string, error) {
	if s.failErr != nil {
		return "", s.failErr
	}
	s.saved[key] = data
	return "/uploads/" + key, nil
}

func (s *memStorage) Delete(_ context.Context, key string) error {
	s.deleted = append(s.deleted, key)
	delete(s.saved, key)
	return nil
}

// stubImages devuelve la entrada sin procesar; "bad" simula una imagen inválida.
type stubImages struct {
	lastSize int
	lastCrop *dto.PhotoCrop
}

func (s *stubImages) Square(data []byte, crop *dto.PhotoCrop, size int) ([]byte, error) {
	if string(data) == "bad" {
		return nil, errors.New("formato de imagen no soportado")
	}
	s.lastSize, s.lastCrop = size, crop
	return data, nil
}

func (s *stubImages) Fit(data []byte, _ int) ([]byte, error) {
	if string(data) == "bad" {
		return nil, errors.New("formato de imagen no soportado")
	}
	return data, nil
}

type stubSheet struct {
	rows [][]string
}

func (s stubSheet) ReadRows(string, []byte) ([][]string, error) { return s.rows, nil }

type stubExporter struct {
	employees int
}

func (s *stubExporter) EmployeesXLSX(items []dto.EmployeeResponse) ([]byte, error) {
	s.employees = len(items)
	return []byte("xlsx"), nil
}

func (s *stubExporter) IncomeStatementXLSX(string, *dto.IncomeStatementDTO) ([]byte, error) {
	return []byte("xlsx"), nil
}
