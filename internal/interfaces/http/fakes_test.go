package http_test

import (
	"context"
	"time"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// ── Repositorios en memoria ──────────────────────────────────────────────────

type memLegalEntities struct {
	items     map[string]*entity.LegalEntity
	employees map[string]int
}

func newMemLegalEntities() *memLegalEntities {
	return &memLegalEntities{items: map[string]*entity.LegalEntity{}, employees: map[string]int{}}
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
	return m.employees[id], 0, nil
}

type memDiscounts struct {
	items map[string]*entity.DiscountCode
}

func newMemDiscounts(codes ...*entity.DiscountCode) *memDiscounts {
	m := &memDiscounts{items: map[string]*entity.DiscountCode{}}
	for _, d := range codes {
		m.items[d.ID] = d
	}
	return m
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

// memProfiles solo responde GetByID; el resto no se usa en estos tests.
type memProfiles struct {
	items map[string]*entity.Profile
}

func (m *memProfiles) Create(context.Context, *entity.Profile) error { return nil }

func (m *memProfiles) GetByID(_ context.Context, companyID, id string) (*entity.Profile, error) {
	p, ok := m.items[id]
	if !ok || p.CompanyID != companyID {
		return nil, nil
	}
	return p, nil
}

func (m *memProfiles) GetByName(context.Context, string, string) (*entity.Profile, error) {
	return nil, nil
}

func (m *memProfiles) Update(context.Context, *entity.Profile) error { return nil }
func (m *memProfiles) ReplaceModules(context.Context, string, []string) error { return nil }
func (m *memProfiles) ReplaceBranches(context.Context, string, []string) error { return nil }
func (m *memProfiles) List(context.Context, string) ([]*entity.Profile, error) { return nil, nil }
func (m *memProfiles) Delete(context.Context, string, string) error { return nil }
func (m *memProfiles) ListModules(context.Context) ([]*entity.Module, error) { return nil, nil }
