// Package stock es el único punto que modifica Product.Stock: reservas de ventas,
// devoluciones al editar o borrar ventas y recepciones de mercancía.
// Todas las funciones deben llamarse con repositorios atados a una transacción.
package stock

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/majidtech25/my-project02/internal/domain"
	"github.com/majidtech25/my-project02/internal/domain/entity"
	"github.com/majidtech25/my-project02/internal/domain/repository"
)

// Line producto y cantidad solicitados.
type Line struct {
	ProductID string
	Quantity  int
}

// Reservation resultado de Reserve: total y items en el orden de la solicitud.
// Los items no tienen SaleID; lo asigna quien persiste la venta.
type Reservation struct {
	Total decimal.Decimal
	Items []entity.SaleItem
}

// Reserve valida y descuenta stock para todas las líneas.
// Bloquea los productos en orden ascendente de ID, valida cada línea contra el stock
// agregado por producto y solo entonces escribe. Si algo falla no se escribe nada.
func Reserve(ctx context.Context, products repository.ProductRepository, lines []Line) (*Reservation, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: la venta debe tener al menos un item", domain.ErrInvalidInput)
	}
	requested := make(map[string]int, len(lines))
	for _, l := range lines {
		if l.ProductID == "" {
			return nil, fmt.Errorf("%w: product_id requerido", domain.ErrInvalidInput)
		}
		if l.Quantity <= 0 {
			return nil, fmt.Errorf("%w: la cantidad debe ser mayor a 0", domain.ErrInvalidInput)
		}
		requested[l.ProductID] += l.Quantity
	}

	locked, err := lockProducts(ctx, products, requested)
	if err != nil {
		return nil, err
	}
	for _, l := range lines {
		p, qty := locked[l.ProductID], requested[l.ProductID]
		if p.Stock < qty {
			return nil, &domain.StockError{ProductID: p.ID, ProductName: p.Name, Available: p.Stock, Requested: qty}
		}
	}

	for _, id := range sortedIDs(requested) {
		p := locked[id]
		p.Stock -= requested[id]
		if err := products.UpdateStock(ctx, id, p.Stock); err != nil {
			return nil, err
		}
	}

	res := &Reservation{Total: decimal.Zero, Items: make([]entity.SaleItem, 0, len(lines))}
	for i, l := range lines {
		item := entity.SaleItem{
			ID:        uuid.New().String(),
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: locked[l.ProductID].Price,
			Position:  i + 1,
		}
		res.Total = res.Total.Add(item.Subtotal())
		res.Items = append(res.Items, item)
	}
	return res, nil
}

// Release devuelve al stock las cantidades de los items.
// Un producto inexistente es un error: los productos referenciados no se pueden borrar.
func Release(ctx context.Context, products repository.ProductRepository, items []entity.SaleItem) error {
	if len(items) == 0 {
		return nil
	}
	returned := make(map[string]int, len(items))
	for _, it := range items {
		returned[it.ProductID] += it.Quantity
	}
	locked, err := lockProducts(ctx, products, returned)
	if err != nil {
		return err
	}
	for _, id := range sortedIDs(returned) {
		p := locked[id]
		p.Stock += returned[id]
		if err := products.UpdateStock(ctx, id, p.Stock); err != nil {
			return err
		}
	}
	return nil
}

// Replace devuelve los items actuales y reserva las nuevas líneas.
// Bloquea primero la unión de productos en orden ascendente para no mezclar órdenes de bloqueo.
func Replace(ctx context.Context, products repository.ProductRepository, current []entity.SaleItem, lines []Line) (*Reservation, error) {
	union := make(map[string]int, len(current)+len(lines))
	for _, it := range current {
		union[it.ProductID] += it.Quantity
	}
	for _, l := range lines {
		if l.ProductID != "" {
			union[l.ProductID] += l.Quantity
		}
	}
	if _, err := lockProducts(ctx, products, union); err != nil {
		return nil, err
	}
	if err := Release(ctx, products, current); err != nil {
		return nil, err
	}
	return Reserve(ctx, products, lines)
}

// Receive registra una recepción de mercancía (qty > 0) y devuelve el producto actualizado.
func Receive(ctx context.Context, products repository.ProductRepository, productID string, qty int) (*entity.Product, error) {
	if qty <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser mayor a 0", domain.ErrInvalidInput)
	}
	p, err := products.GetForUpdate(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, productID)
	}
	p.Stock += qty
	if err := products.UpdateStock(ctx, p.ID, p.Stock); err != nil {
		return nil, err
	}
	return p, nil
}

// lockProducts bloquea (FOR UPDATE) cada producto en orden ascendente de ID.
func lockProducts(ctx context.Context, products repository.ProductRepository, qty map[string]int) (map[string]*entity.Product, error) {
	locked := make(map[string]*entity.Product, len(qty))
	for _, id := range sortedIDs(qty) {
		p, err := products.GetForUpdate(ctx, id)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
		}
		locked[id] = p
	}
	return locked, nil
}

func sortedIDs(m map[string]int) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
