package mock

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/khabaroff/vehicle-registry/src/models"
	"github.com/khabaroff/vehicle-registry/src/repositories"
)

// AdministratorRepository is a mock implementation of repositories.AdministratorRepository.
// Without stubs it behaves like an in-memory store.
type AdministratorRepository struct {
	// Function stubs that can be overridden in tests
	CreateFunc     func(ctx context.Context, admin *models.Administrator) error
	GetByIDFunc    func(ctx context.Context, id int64) (*models.Administrator, error)
	GetByEmailFunc func(ctx context.Context, email string) (*models.Administrator, error)
	ListFunc       func(ctx context.Context, limit, offset int) ([]models.Administrator, error)
	CountFunc      func(ctx context.Context) (int, error)

	// Call tracking
	Calls map[string][]interface{}

	mu     sync.Mutex
	rows   map[int64]models.Administrator
	nextID int64
}

// NewAdministratorRepository creates a new mock administrator repository
func NewAdministratorRepository() *AdministratorRepository {
	return &AdministratorRepository{
		Calls: make(map[string][]interface{}),
		rows:  make(map[int64]models.Administrator),
	}
}

func (m *AdministratorRepository) track(name string, arg interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls[name] = append(m.Calls[name], arg)
}

// CallCount returns how many times the named method was invoked
func (m *AdministratorRepository) CallCount(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls[name])
}

func (m *AdministratorRepository) Create(ctx context.Context, admin *models.Administrator) error {
	m.track("Create", admin)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, admin)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.rows {
		if row.Email == admin.Email {
			return repositories.ErrDuplicate
		}
	}
	m.nextID++
	admin.ID = m.nextID
	admin.CreatedAt = time.Now()
	m.rows[admin.ID] = *admin
	return nil
}

func (m *AdministratorRepository) GetByID(ctx context.Context, id int64) (*models.Administrator, error) {
	m.track("GetByID", id)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &row, nil
}

func (m *AdministratorRepository) GetByEmail(ctx context.Context, email string) (*models.Administrator, error) {
	m.track("GetByEmail", email)
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.rows {
		if row.Email == email {
			found := row
			return &found, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *AdministratorRepository) List(ctx context.Context, limit, offset int) ([]models.Administrator, error) {
	m.track("List", [2]int{limit, offset})
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]models.Administrator, 0, len(m.rows))
	for _, row := range m.rows {
		all = append(all, row)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return window(all, limit, offset), nil
}

func (m *AdministratorRepository) Count(ctx context.Context) (int, error) {
	m.track("Count", nil)
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows), nil
}

// window applies limit/offset the way the SQL implementation does
func window[T any](all []T, limit, offset int) []T {
	if limit <= 0 {
		return all
	}
	if offset >= len(all) {
		return []T{}
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}

// Ensure AdministratorRepository implements the interface
var _ repositories.AdministratorRepository = (*AdministratorRepository)(nil)
