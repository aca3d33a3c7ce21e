package mock

import (
	"context"
	"sort"
	"sync"

	"github.com/khabaroff/vehicle-registry/src/models"
	"github.com/khabaroff/vehicle-registry/src/repositories"
)

// VehicleRepository is a mock implementation of repositories.VehicleRepository.
// Without stubs it behaves like an in-memory store.
type VehicleRepository struct {
	// Function stubs that can be overridden in tests
	CreateFunc  func(ctx context.Context, vehicle *models.Vehicle) error
	GetByIDFunc func(ctx context.Context, id int64) (*models.Vehicle, error)
	ListFunc    func(ctx context.Context, limit, offset int) ([]models.Vehicle, error)
	UpdateFunc  func(ctx context.Context, vehicle *models.Vehicle) error
	DeleteFunc  func(ctx context.Context, id int64) error

	// Call tracking
	Calls map[string][]interface{}

	mu     sync.Mutex
	rows   map[int64]models.Vehicle
	nextID int64
}

// NewVehicleRepository creates a new mock vehicle repository
func NewVehicleRepository() *VehicleRepository {
	return &VehicleRepository{
		Calls: make(map[string][]interface{}),
		rows:  make(map[int64]models.Vehicle),
	}
}

func (m *VehicleRepository) track(name string, arg interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls[name] = append(m.Calls[name], arg)
}

// CallCount returns how many times the named method was invoked
func (m *VehicleRepository) CallCount(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls[name])
}

func (m *VehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	m.track("Create", vehicle)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, vehicle)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	vehicle.ID = m.nextID
	m.rows[vehicle.ID] = *vehicle
	return nil
}

func (m *VehicleRepository) GetByID(ctx context.Context, id int64) (*models.Vehicle, error) {
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

func (m *VehicleRepository) List(ctx context.Context, limit, offset int) ([]models.Vehicle, error) {
	m.track("List", [2]int{limit, offset})
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]models.Vehicle, 0, len(m.rows))
	for _, row := range m.rows {
		all = append(all, row)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return window(all, limit, offset), nil
}

func (m *VehicleRepository) Update(ctx context.Context, vehicle *models.Vehicle) error {
	m.track("Update", vehicle)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, vehicle)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[vehicle.ID]; !ok {
		return repositories.ErrNotFound
	}
	m.rows[vehicle.ID] = *vehicle
	return nil
}

func (m *VehicleRepository) Delete(ctx context.Context, id int64) error {
	m.track("Delete", id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

// Ensure VehicleRepository implements the interface
var _ repositories.VehicleRepository = (*VehicleRepository)(nil)
