package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/cueros-api/internal/domain"
	"github.com/jhoicas/cueros-api/internal/domain/entity"
	"github.com/jhoicas/cueros-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo movimientos en memoria.
type MovementRepo struct {
	mu    sync.RWMutex
	items map[string]entity.Movement
	seq   map[string]int // orden de inserción, desempata fechas iguales
	next  int
}

// NewMovementRepository construye el repositorio vacío.
func NewMovementRepository() *MovementRepo {
	return &MovementRepo{items: make(map[string]entity.Movement), seq: make(map[string]int)}
}

func (r *MovementRepo) Create(_ context.Context, m *entity.Movement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[m.ID]; ok {
		return domain.ErrDuplicate
	}
	r.items[m.ID] = *m
	r.seq[m.ID] = r.next
	r.next++
	return nil
}

func (r *MovementRepo) GetByID(_ context.Context, id string) (*entity.Movement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *MovementRepo) Update(_ context.Context, m *entity.Movement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[m.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[m.ID] = *m
	return nil
}

func (r *MovementRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	delete(r.seq, id)
	return nil
}

func (r *MovementRepo) DeleteByCounterparty(_ context.Context, name string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, m := range r.items {
		if m.Counterparty == name {
			delete(r.items, id)
			delete(r.seq, id)
			n++
		}
	}
	return n, nil
}

func (r *MovementRepo) List(_ context.Context, f repository.MovementFilter) ([]*entity.Movement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Movement, 0, len(r.items))
	for _, m := range r.items {
		if f.Counterparty != "" && m.Counterparty != f.Counterparty {
			continue
		}
		if f.Product != "" && !strings.EqualFold(m.Product, f.Product) {
			continue
		}
		if f.PaymentStatus != "" && entity.NormalizePaymentStatus(m.PaymentStatus) != entity.NormalizePaymentStatus(f.PaymentStatus) {
			continue
		}
		m := m
		list = append(list, &m)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return r.seq[list[i].ID] > r.seq[list[j].ID]
	})
	return list, nil
}

func (r *MovementRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}
