package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// La jerarquía es un orden total: viewer < manager < admin. Un rol siempre se
// satisface a sí mismo y a los inferiores, nunca a los superiores.
func TestRole_Allows_Jerarquia(t *testing.T) {
	cases := []struct {
		actual   entity.Role
		required entity.Role
		want     bool
	}{
		{entity.RoleViewer, entity.RoleViewer, true},
		{entity.RoleViewer, entity.RoleManager, false},
		{entity.RoleViewer, entity.RoleAdmin, false},
		{entity.RoleManager, entity.RoleViewer, true},
		{entity.RoleManager, entity.RoleManager, true},
		{entity.RoleManager, entity.RoleAdmin, false},
		{entity.RoleAdmin, entity.RoleViewer, true},
		{entity.RoleAdmin, entity.RoleManager, true},
		{entity.RoleAdmin, entity.RoleAdmin, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.actual.Allows(tc.required),
			"%s.Allows(%s)", tc.actual, tc.required)
	}
}

// Un rol desconocido nunca satisface nada, ni siquiera a sí mismo; y nada
// satisface un requisito desconocido.
func TestRole_Allows_RolDesconocido(t *testing.T) {
	unknown := entity.Role("superuser")
	assert.False(t, unknown.Allows(entity.RoleViewer))
	assert.False(t, unknown.Allows(unknown))
	assert.False(t, entity.RoleAdmin.Allows(unknown))
}

func TestHasAnyRole(t *testing.T) {
	// manager satisface viewer aunque la lista pida viewer o admin.
	assert.True(t, entity.HasAnyRole(entity.RoleManager, entity.RoleAdmin, entity.RoleViewer))
	// viewer no alcanza ninguno de los superiores.
	assert.False(t, entity.HasAnyRole(entity.RoleViewer, entity.RoleManager, entity.RoleAdmin))
	// lista vacía: nadie pasa.
	assert.False(t, entity.HasAnyRole(entity.RoleAdmin))
}

func TestParseRole(t *testing.T) {
	for _, s := range []string{"viewer", "manager", "admin"} {
		r, ok := entity.ParseRole(s)
		assert.True(t, ok, s)
		assert.True(t, r.IsValid())
	}
	_, ok := entity.ParseRole("Admin") // sensible a mayúsculas, igual que el claim del token
	assert.False(t, ok)
	_, ok = entity.ParseRole("")
	assert.False(t, ok)
}
