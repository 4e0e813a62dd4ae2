package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/majidtech25/my-project02/internal/application/dto"
	"github.com/majidtech25/my-project02/internal/application/stock"
	"github.com/majidtech25/my-project02/internal/domain"
	"github.com/majidtech25/my-project02/internal/domain/entity"
	"github.com/majidtech25/my-project02/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Stock solo cambia vía ventas y reabastecimiento.
type ProductUseCase struct {
	tx    repository.TxRunner
	repos repository.Repos
	log   zerolog.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(tx repository.TxRunner, repos repository.Repos, log zerolog.Logger) *ProductUseCase {
	return &ProductUseCase{tx: tx, repos: repos, log: log}
}

func normalizeSKU(s string) (string, error) {
	sku := strings.ToUpper(strings.TrimSpace(s))
	if err := checkLength("sku", sku, 2, 50); err != nil {
		return "", err
	}
	return sku, nil
}

// checkRefs valida que categoría y proveedor existan cuando se indican.
func (uc *ProductUseCase) checkRefs(ctx context.Context, r repository.Repos, categoryID, supplierID *string) error {
	if categoryID != nil {
		c, err := r.Categories.GetByID(ctx, *categoryID)
		if err != nil {
			return err
		}
		if c == nil {
			return fmt.Errorf("%w: categoría %s", domain.ErrNotFound, *categoryID)
		}
	}
	if supplierID != nil {
		s, err := r.Suppliers.GetByID(ctx, *supplierID)
		if err != nil {
			return err
		}
		if s == nil {
			return fmt.Errorf("%w: proveedor %s", domain.ErrNotFound, *supplierID)
		}
	}
	return nil
}

// Create crea un producto con su stock inicial.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := titleName(in.Name)
	if err := checkLength("name", name, 2, 150); err != nil {
		return nil, err
	}
	sku, err := normalizeSKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if err := validPrice(in.Price); err != nil {
		return nil, err
	}
	if in.Stock < 0 {
		return nil, fmt.Errorf("%w: el stock no puede ser negativo", domain.ErrInvalidInput)
	}
	categoryID, supplierID := optionalID(in.CategoryID), optionalID(in.SupplierID)

	var product *entity.Product
	err = uc.tx.Run(ctx, func(ctx context.Context, r repository.Repos) error {
		existing, err := r.Products.GetBySKU(ctx, sku)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: ya existe un producto con SKU %s", domain.ErrDuplicate, sku)
		}
		if err := uc.checkRefs(ctx, r, categoryID, supplierID); err != nil {
			return err
		}
		now := time.Now()
		product = &entity.Product{
			ID:         uuid.New().String(),
			Name:       name,
			SKU:        sku,
			Price:      in.Price,
			Stock:      in.Stock,
			CategoryID: categoryID,
			SupplierID: supplierID,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		return r.Products.Create(ctx, product)
	})
	if err != nil {
		return nil, err
	}
	return dto.FromProduct(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.repos.Products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	return dto.FromProduct(p), nil
}

// List lista productos con filtros y paginación.
func (uc *ProductUseCase) List(ctx context.Context, q dto.ProductQuery) (*dto.ProductListResponse, error) {
	limit, offset := pageOrDefault(q.Limit, q.Offset)
	list, err := uc.repos.Products.List(ctx, repository.ProductFilter{
		CategoryID: q.CategoryID, SupplierID: q.SupplierID, Search: q.Search, Limit: limit, Offset: offset,
	})
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{Items: make([]dto.ProductResponse, 0, len(list)), Page: dto.PageResponse{Limit: limit, Offset: offset}}
	for _, p := range list {
		out.Items = append(out.Items, *dto.FromProduct(p))
	}
	return out, nil
}

// Update actualiza un producto. No permite modificar Stock.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var product *entity.Product
	err := uc.tx.Run(ctx, func(ctx context.Context, r repository.Repos) error {
		p, err := r.Products.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
		}
		if in.Name != nil {
			name := titleName(*in.Name)
			if err := checkLength("name", name, 2, 150); err != nil {
				return err
			}
			p.Name = name
		}
		if in.SKU != nil {
			sku, err := normalizeSKU(*in.SKU)
			if err != nil {
				return err
			}
			other, err := r.Products.GetBySKU(ctx, sku)
			if err != nil {
				return err
			}
			if other != nil && other.ID != p.ID {
				return fmt.Errorf("%w: ya existe un producto con SKU %s", domain.ErrDuplicate, sku)
			}
			p.SKU = sku
		}
		if in.Price != nil {
			if err := validPrice(*in.Price); err != nil {
				return err
			}
			p.Price = *in.Price
		}
		if in.CategoryID != nil {
			p.CategoryID = optionalID(in.CategoryID)
		}
		if in.SupplierID != nil {
			p.SupplierID = optionalID(in.SupplierID)
		}
		if err := uc.checkRefs(ctx, r, p.CategoryID, p.SupplierID); err != nil {
			return err
		}
		p.UpdatedAt = time.Now()
		if err := r.Products.Update(ctx, p); err != nil {
			return err
		}
		product = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.FromProduct(product), nil
}

// Delete elimina un producto que ninguna venta referencia.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(ctx context.Context, r repository.Repos) error {
		p, err := r.Products.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
		}
		used, err := r.Products.IsReferenced(ctx, id)
		if err != nil {
			return err
		}
		if used {
			return fmt.Errorf("%w: el producto figura en ventas registradas", domain.ErrInUse)
		}
		return r.Products.Delete(ctx, id)
	})
}

// Restock registra una recepción de mercancía a través del ledger.
func (uc *ProductUseCase) Restock(ctx context.Context, id string, in dto.RestockRequest) (*dto.ProductResponse, error) {
	var product *entity.Product
	err := uc.tx.Run(ctx, func(ctx context.Context, r repository.Repos) error {
		var err error
		product, err = stock.Receive(ctx, r.Products, id, in.Quantity)
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", product.ID).Int("quantity", in.Quantity).Int("stock", product.Stock).Msg("mercancía recibida")
	return dto.FromProduct(product), nil
}
