// Package repositorytest provides in-memory repositories for tests.
package repositorytest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/fadilmartias/submission-admin/internal/model"
	"github.com/fadilmartias/submission-admin/internal/repository"
)

type SubmissionRepository struct {
	mu     sync.Mutex
	subs   []model.Submission
	nextID uint
	// Err, when set, is returned by every method.
	Err error
}

func NewSubmissionRepository(seed ...model.Submission) *SubmissionRepository {
	r := &SubmissionRepository{}
	for _, s := range seed {
		r.add(s)
	}
	return r
}

func (r *SubmissionRepository) add(s model.Submission) {
	if s.ID == 0 {
		r.nextID++
		s.ID = r.nextID
	} else if s.ID > r.nextID {
		r.nextID = s.ID
	}
	r.subs = append(r.subs, s)
}

func (r *SubmissionRepository) List(ctx context.Context) ([]model.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := append([]model.Submission(nil), r.subs...)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].SubmittedAt.Equal(out[j].SubmittedAt) {
			return out[i].SubmittedAt.After(out[j].SubmittedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *SubmissionRepository) CreateBatch(ctx context.Context, subs []model.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for i := range subs {
		r.nextID++
		subs[i].ID = r.nextID
		subs[i].CreatedAt = time.Now()
		r.subs = append(r.subs, subs[i])
	}
	return nil
}

func (r *SubmissionRepository) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	return int64(len(r.subs)), nil
}

type FilterRepository struct {
	mu      sync.Mutex
	filters map[uint]model.SubmissionFilter
	nextID  uint
	clock   time.Time
	Err     error
}

func NewFilterRepository(seed ...model.SubmissionFilter) *FilterRepository {
	r := &FilterRepository{
		filters: make(map[uint]model.SubmissionFilter),
		clock:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, f := range seed {
		_ = r.Create(context.Background(), &f)
	}
	return r
}

// tick hands out strictly increasing timestamps so ordering is deterministic.
func (r *FilterRepository) tick() time.Time {
	r.clock = r.clock.Add(time.Second)
	return r.clock
}

func (r *FilterRepository) List(ctx context.Context) ([]model.SubmissionFilter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]model.SubmissionFilter, 0, len(r.filters))
	for _, f := range r.filters {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *FilterRepository) FindByID(ctx context.Context, id uint) (*model.SubmissionFilter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	f, ok := r.filters[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &f, nil
}

func (r *FilterRepository) Create(ctx context.Context, f *model.SubmissionFilter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if f.ID == 0 {
		r.nextID++
		f.ID = r.nextID
	} else if f.ID > r.nextID {
		r.nextID = f.ID
	}
	now := r.tick()
	f.CreatedAt, f.UpdatedAt = now, now
	r.filters[f.ID] = *f
	return nil
}

func (r *FilterRepository) Update(ctx context.Context, f *model.SubmissionFilter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	old, ok := r.filters[f.ID]
	if !ok {
		return repository.ErrNotFound
	}
	f.CreatedAt = old.CreatedAt
	f.UpdatedAt = r.tick()
	r.filters[f.ID] = *f
	return nil
}

func (r *FilterRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.filters[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.filters, id)
	return nil
}

var (
	_ repository.SubmissionRepositoryInterface = (*SubmissionRepository)(nil)
	_ repository.FilterRepositoryInterface     = (*FilterRepository)(nil)
)
