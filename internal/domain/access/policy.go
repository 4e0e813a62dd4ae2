// Package access contiene la tabla de permisos por rol. Es la única fuente de
// verdad sobre qué rol puede invocar cada operación.
package access

import "github.com/majidtech25/my-project02/internal/domain/entity"

// Operation identifica una acción protegida ("recurso:acción").
type Operation string

const (
	DayOpen   Operation = "day:open"
	DayClose  Operation = "day:close"
	DayDelete Operation = "day:delete"
	DayList   Operation = "day:list"
	DayView   Operation = "day:view"

	SaleCreate  Operation = "sale:create"
	SaleView    Operation = "sale:view"
	SaleListOwn Operation = "sale:list-own"
	SaleList    Operation = "sale:list"
	SaleUpdate  Operation = "sale:update"
	SaleDelete  Operation = "sale:delete"
	SaleSettle  Operation = "sale:settle"

	CreditCreate Operation = "credit:create"
	CreditView   Operation = "credit:view"
	CreditList   Operation = "credit:list"
	CreditClear  Operation = "credit:clear"
	CreditRevoke Operation = "credit:revoke"

	ProductView    Operation = "product:view"
	ProductManage  Operation = "product:manage"
	ProductRestock Operation = "product:restock"

	CategoryView   Operation = "category:view"
	CategoryManage Operation = "category:manage"
	SupplierView   Operation = "supplier:view"
	SupplierManage Operation = "supplier:manage"

	EmployeeManage Operation = "employee:manage"
	ReportView     Operation = "report:view"
)

var (
	everyone   = []string{entity.RoleEmployer, entity.RoleManager, entity.RoleEmployee}
	management = []string{entity.RoleEmployer, entity.RoleManager}
	ownerOnly  = []string{entity.RoleEmployer}
)

var permissions = map[Operation][]string{
	DayOpen:   management,
	DayClose:  management,
	DayDelete: ownerOnly,
	DayList:   management,
	DayView:   everyone,

	SaleCreate:  everyone,
	SaleView:    everyone,
	SaleListOwn: everyone,
	SaleList:    management,
	SaleUpdate:  management,
	SaleDelete:  management,
	SaleSettle:  management,

	CreditCreate: everyone,
	CreditView:   everyone,
	CreditList:   management,
	CreditClear:  management,
	CreditRevoke: management,

	ProductView:    everyone,
	ProductManage:  management,
	ProductRestock: management,

	CategoryView:   everyone,
	CategoryManage: management,
	SupplierView:   everyone,
	SupplierManage: management,

	EmployeeManage: management,
	ReportView:     management,
}

// Allowed indica si role puede ejecutar op. Operaciones desconocidas se niegan.
func Allowed(role string, op Operation) bool {
	for _, r := range permissions[op] {
		if r == role {
			return true
		}
	}
	return false
}

// Roles devuelve una copia de los roles autorizados para op.
func Roles(op Operation) []string {
	roles := permissions[op]
	out := make([]string, len(roles))
	copy(out, roles)
	return out
}
