package entity

import "time"

// Roles válidos para Employee.
const (
	RoleEmployer = "employer"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// Estados de un Employee.
const (
	EmployeeActive   = "active"
	EmployeeInactive = "inactive"
)

// Employee representa a una persona que opera el sistema. Solo puede existir
// un employer y un manager a la vez.
type Employee struct {
	ID           string
	Name         string
	Role         string // employer, manager, employee
	Phone        string // único
	Status       string // active, inactive
	PasswordHash string // bcrypt hash, nunca plano
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive indica si el empleado puede operar.
func (e *Employee) IsActive() bool {
	return e != nil && e.Status == EmployeeActive
}

// ValidRole indica si el rol es uno de los soportados.
func ValidRole(role string) bool {
	switch role {
	case RoleEmployer, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// UniqueRole indica si el rol admite un único titular en todo el sistema.
func UniqueRole(role string) bool {
	return role == RoleEmployer || role == RoleManager
}
