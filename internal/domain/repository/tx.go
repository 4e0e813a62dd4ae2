package repository

import "context"

// Repos agrupa los repositorios atados a una misma conexión o transacción.
type Repos struct {
	Employees  EmployeeRepository
	Categories CategoryRepository
	Suppliers  SupplierRepository
	Products   ProductRepository
	Days       DayRepository
	Sales      SaleRepository
	Credits    CreditRepository
}

// TxRunner ejecuta fn dentro de una transacción de BD con repositorios atados a ella.
// Si fn devuelve error se hace Rollback y no queda ninguna escritura parcial.
type TxRunner interface {
	Run(ctx context.Context, fn func(ctx context.Context, r Repos) error) error
}
