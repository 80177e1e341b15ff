package memory

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre el store en memoria.
type UserRepo struct {
	s *Store
}

// NewUserRepository construye el adaptador sobre el store compartido.
func NewUserRepository(s *Store) *UserRepo {
	return &UserRepo{s: s}
}

// Create persiste un usuario nuevo. Devuelve ErrEmailAlreadyExists si el
// email ya está registrado (sin distinguir mayúsculas).
func (r *UserRepo) Create(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if _, ok := r.s.users[user.ID]; ok {
		return domain.ErrDuplicate
	}
	now := r.s.now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = now
	}
	r.s.users[user.ID] = cloneUser(user)
	return nil
}

// GetByID obtiene una copia del usuario, o nil si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneUser(r.s.users[id]), nil
}

// GetByEmail busca por email sin distinguir mayúsculas, o nil si no existe.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

// List devuelve usuarios paginados, más reciente primero.
func (r *UserRepo) List(limit, offset int) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		list = append(list, cloneUser(u))
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return paginate(list, limit, offset), nil
}

// Update reemplaza el usuario almacenado. Devuelve ErrNotFound si no existe.
func (r *UserRepo) Update(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[user.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.users[user.ID] = cloneUser(user)
	return nil
}

// Delete elimina el usuario. Devuelve true si existía.
func (r *UserRepo) Delete(id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return false, nil
	}
	delete(r.s.users, id)
	return true, nil
}
