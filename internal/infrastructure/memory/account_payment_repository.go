package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/cueros-api/internal/domain"
	"github.com/jhoicas/cueros-api/internal/domain/entity"
	"github.com/jhoicas/cueros-api/internal/domain/repository"
)

var _ repository.AccountPaymentRepository = (*AccountPaymentRepo)(nil)

// AccountPaymentRepo pagos a cuenta en memoria.
type AccountPaymentRepo struct {
	mu    sync.RWMutex
	items map[string]entity.AccountPayment
	seq   map[string]int
	next  int
}

// NewAccountPaymentRepository construye el repositorio vacío.
func NewAccountPaymentRepository() *AccountPaymentRepo {
	return &AccountPaymentRepo{items: make(map[string]entity.AccountPayment), seq: make(map[string]int)}
}

func (r *AccountPaymentRepo) Create(_ context.Context, p *entity.AccountPayment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; ok {
		return domain.ErrDuplicate
	}
	r.items[p.ID] = *p
	r.seq[p.ID] = r.next
	r.next++
	return nil
}

func (r *AccountPaymentRepo) GetByID(_ context.Context, id string) (*entity.AccountPayment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *AccountPaymentRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	delete(r.seq, id)
	return nil
}

func (r *AccountPaymentRepo) List(ctx context.Context) ([]*entity.AccountPayment, error) {
	return r.list(func(*entity.AccountPayment) bool { return true }), nil
}

func (r *AccountPaymentRepo) ListByClient(_ context.Context, name string) ([]*entity.AccountPayment, error) {
	return r.list(func(p *entity.AccountPayment) bool { return p.ClientName == name }), nil
}

func (r *AccountPaymentRepo) list(keep func(*entity.AccountPayment) bool) []*entity.AccountPayment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.AccountPayment, 0, len(r.items))
	for _, p := range r.items {
		p := p
		if keep(&p) {
			list = append(list, &p)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return r.seq[list[i].ID] > r.seq[list[j].ID]
	})
	return list
}

func (r *AccountPaymentRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}
