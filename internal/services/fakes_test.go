package services_test

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/Trunday/kalfa-api/internal/entities"
	apperrors "github.com/Trunday/kalfa-api/pkg/errors"
)

// In-memory stand-ins for the repository interfaces. They keep just enough
// state for the service rules under test.

type fakeUserRepo struct {
	users  map[uint64]*entities.User
	nextID uint64
}

func newFakeUserRepo(seed ...*entities.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[uint64]*entities.User{}, nextID: 1}
	for _, u := range seed {
		cp := *u
		if cp.ID == 0 {
			cp.ID = repo.nextID
		}
		repo.users[cp.ID] = &cp
		if cp.ID >= repo.nextID {
			repo.nextID = cp.ID + 1
		}
	}
	return repo
}

func (r *fakeUserRepo) GetUsers(_ context.Context, role string, activeOnly bool) ([]entities.User, error) {
	out := make([]entities.User, 0)
	for _, u := range r.users {
		if role != "" && u.Role != role {
			continue
		}
		if activeOnly && !u.Active {
			continue
		}
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) FindUserByID(_ context.Context, id uint64) (*entities.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindUserByUsernameOrEmail(_ context.Context, login string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Username == login || (u.Email.Valid && u.Email.String == login) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeUserRepo) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
		if email != "" && u.Email.Valid && u.Email.String == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) CreateUser(_ context.Context, entity *entities.User) (*entities.User, error) {
	cp := *entity
	cp.ID = r.nextID
	r.nextID++
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	r.users[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *fakeUserRepo) UpdateUser(_ context.Context, entity *entities.User) (*entities.User, error) {
	if _, ok := r.users[entity.ID]; !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *entity
	cp.UpdatedAt = time.Now()
	r.users[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *fakeUserRepo) DeactivateUser(_ context.Context, id uint64) error {
	u, ok := r.users[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	u.Active = false
	return nil
}

var errCacheMiss = errors.New("cache: key not found")

type fakeCache struct {
	store map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string]string{}}
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	v, ok := c.store[key]
	if !ok {
		return "", errCacheMiss
	}
	return v, nil
}

func (c *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	switch v := value.(type) {
	case string:
		c.store[key] = v
	case uint64:
		c.store[key] = strconv.FormatUint(v, 10)
	default:
		c.store[key] = ""
	}
	return nil
}

func (c *fakeCache) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.store, k)
	}
	return nil
}

func (c *fakeCache) Incr(_ context.Context, key string) (int64, error) {
	n, _ := strconv.ParseInt(c.store[key], 10, 64)
	n++
	c.store[key] = strconv.FormatInt(n, 10)
	return n, nil
}

func (c *fakeCache) Expire(_ context.Context, _ string, _ time.Duration) error {
	return nil
}

type fakeJobRepo struct {
	jobs   map[uint64]*entities.Job
	nextID uint64
}

func newFakeJobRepo(seed ...*entities.Job) *fakeJobRepo {
	repo := &fakeJobRepo{jobs: map[uint64]*entities.Job{}, nextID: 1}
	for _, j := range seed {
		cp := *j
		if cp.ID == 0 {
			cp.ID = repo.nextID
		}
		repo.jobs[cp.ID] = &cp
		if cp.ID >= repo.nextID {
			repo.nextID = cp.ID + 1
		}
	}
	return repo
}

func (r *fakeJobRepo) GetJobs(_ context.Context, _ map[string]string) ([]entities.Job, error) {
	out := make([]entities.Job, 0)
	for _, j := range r.jobs {
		out = append(out, *j)
	}
	return out, nil
}

func (r *fakeJobRepo) FindJob(_ context.Context, id uint64) (*entities.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *j
	return &cp, nil
}

func (r *fakeJobRepo) CreateJob(_ context.Context, entity *entities.Job) (*entities.Job, error) {
	cp := *entity
	cp.ID = r.nextID
	r.nextID++
	r.jobs[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *fakeJobRepo) UpdateJob(_ context.Context, entity *entities.Job) (*entities.Job, error) {
	if _, ok := r.jobs[entity.ID]; !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *entity
	r.jobs[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *fakeJobRepo) DeleteJob(_ context.Context, id uint64) error {
	if _, ok := r.jobs[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.jobs, id)
	return nil
}

type fakeAdvanceRepo struct {
	advances map[uint64]*entities.Advance
	nextID   uint64
}

func newFakeAdvanceRepo(seed ...*entities.Advance) *fakeAdvanceRepo {
	repo := &fakeAdvanceRepo{advances: map[uint64]*entities.Advance{}, nextID: 1}
	for _, a := range seed {
		cp := *a
		if cp.ID == 0 {
			cp.ID = repo.nextID
		}
		repo.advances[cp.ID] = &cp
		if cp.ID >= repo.nextID {
			repo.nextID = cp.ID + 1
		}
	}
	return repo
}

func (r *fakeAdvanceRepo) GetAdvances(_ context.Context, userID uint64) ([]entities.Advance, error) {
	out := make([]entities.Advance, 0)
	for _, a := range r.advances {
		if userID != 0 && (!a.UserID.Valid || a.UserID.Uint64 != userID) {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeAdvanceRepo) FindAdvance(_ context.Context, id uint64) (*entities.Advance, error) {
	a, ok := r.advances[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAdvanceRepo) CreateAdvance(_ context.Context, entity *entities.Advance) (*entities.Advance, error) {
	cp := *entity
	cp.ID = r.nextID
	r.nextID++
	r.advances[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *fakeAdvanceRepo) UpdateAdvance(_ context.Context, entity *entities.Advance) (*entities.Advance, error) {
	if _, ok := r.advances[entity.ID]; !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *entity
	r.advances[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *fakeAdvanceRepo) DeleteAdvance(_ context.Context, id uint64) error {
	if _, ok := r.advances[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.advances, id)
	return nil
}
