package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/cueros-api/internal/domain"
	"github.com/jhoicas/cueros-api/internal/domain/entity"
	"github.com/jhoicas/cueros-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo clientes en memoria. El nombre es único.
type ClientRepo struct {
	mu    sync.RWMutex
	items map[string]entity.Client
}

// NewClientRepository construye el repositorio vacío.
func NewClientRepository() *ClientRepo {
	return &ClientRepo{items: make(map[string]entity.Client)}
}

func (r *ClientRepo) nameTaken(name, exceptID string) bool {
	for id, c := range r.items {
		if c.Name == name && id != exceptID {
			return true
		}
	}
	return false
}

func (r *ClientRepo) Create(_ context.Context, c *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[c.ID]; ok || r.nameTaken(c.Name, "") {
		return domain.ErrDuplicate
	}
	r.items[c.ID] = *c
	return nil
}

func (r *ClientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *ClientRepo) GetByName(_ context.Context, name string) (*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.items {
		if c.Name == name {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (r *ClientRepo) Update(_ context.Context, c *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[c.ID]; !ok {
		return domain.ErrNotFound
	}
	if r.nameTaken(c.Name, c.ID) {
		return domain.ErrDuplicate
	}
	r.items[c.ID] = *c
	return nil
}

func (r *ClientRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *ClientRepo) List(_ context.Context, activeOnly bool) ([]*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Client, 0, len(r.items))
	for _, c := range r.items {
		if activeOnly && !c.Active {
			continue
		}
		c := c
		list = append(list, &c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *ClientRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}
