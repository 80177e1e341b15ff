package entity

// Role es el nivel de permiso de un usuario. La jerarquía es un orden total:
// viewer(1) < manager(2) < admin(3). Un rol superior hereda los permisos de
// los inferiores.
type Role string

// Roles válidos para User.
const (
	RoleViewer  Role = "viewer"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

// rank devuelve la posición del rol en el orden total; 0 si el rol no existe.
func (r Role) rank() int {
	switch r {
	case RoleViewer:
		return 1
	case RoleManager:
		return 2
	case RoleAdmin:
		return 3
	}
	return 0
}

// IsValid indica si el rol es uno de los declarados.
func (r Role) IsValid() bool {
	return r.rank() > 0
}

// Allows indica si el rol actual satisface el rol requerido:
// rank(actual) >= rank(requerido). Un rol desconocido nunca satisface nada.
func (r Role) Allows(required Role) bool {
	if r.rank() == 0 || required.rank() == 0 {
		return false
	}
	return r.rank() >= required.rank()
}

// HasAnyRole indica si el rol actual satisface al menos uno de los requeridos.
func HasAnyRole(actual Role, required ...Role) bool {
	for _, req := range required {
		if actual.Allows(req) {
			return true
		}
	}
	return false
}

// ParseRole valida una cadena como rol; devuelve el rol y ok=false si no existe.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.IsValid()
}
