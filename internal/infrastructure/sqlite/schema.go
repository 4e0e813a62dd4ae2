package sqlite

// schema en orden de dependencias. Fechas de calendario como TEXT YYYY-MM-DD,
// timestamps como TEXT UTC de ancho fijo y dinero como TEXT decimal.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		role          TEXT NOT NULL CHECK (role IN ('employer', 'manager', 'employee')),
		phone         TEXT NOT NULL UNIQUE,
		status        TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'inactive')),
		password_hash TEXT NOT NULL,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_categories_name ON categories (lower(name))`,
	`CREATE TABLE IF NOT EXISTS suppliers (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		contact    TEXT NOT NULL DEFAULT '',
		email      TEXT NOT NULL DEFAULT '',
		balance    TEXT NOT NULL DEFAULT '0',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_suppliers_name ON suppliers (lower(name))`,
	`CREATE TABLE IF NOT EXISTS products (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		sku         TEXT NOT NULL,
		price       TEXT NOT NULL,
		stock       INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
		category_id TEXT REFERENCES categories (id) ON DELETE RESTRICT,
		supplier_id TEXT REFERENCES suppliers (id) ON DELETE RESTRICT,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_products_sku ON products (lower(sku))`,
	`CREATE TABLE IF NOT EXISTS days (
		id         TEXT PRIMARY KEY,
		date       TEXT NOT NULL UNIQUE,
		is_open    INTEGER NOT NULL DEFAULT 0,
		opened_by  TEXT NOT NULL REFERENCES employees (id),
		closed_by  TEXT REFERENCES employees (id),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_days_single_open ON days (is_open) WHERE is_open = 1`,
	`CREATE TABLE IF NOT EXISTS sales (
		id             TEXT PRIMARY KEY,
		date           TEXT NOT NULL,
		total_amount   TEXT NOT NULL,
		employee_id    TEXT NOT NULL REFERENCES employees (id),
		payment_method TEXT CHECK (payment_method IS NULL OR payment_method IN ('cash', 'mpesa', 'card')),
		is_paid        INTEGER NOT NULL DEFAULT 0,
		is_credit      INTEGER NOT NULL DEFAULT 0,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL,
		CHECK (NOT (is_paid = 1 AND is_credit = 1))
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_date ON sales (date)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_employee ON sales (employee_id)`,
	`CREATE TABLE IF NOT EXISTS sale_items (
		id         TEXT PRIMARY KEY,
		sale_id    TEXT NOT NULL REFERENCES sales (id) ON DELETE CASCADE,
		product_id TEXT NOT NULL REFERENCES products (id) ON DELETE RESTRICT,
		quantity   INTEGER NOT NULL CHECK (quantity > 0),
		unit_price TEXT NOT NULL,
		position   INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sale_items_sale ON sale_items (sale_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sale_items_product ON sale_items (product_id)`,
	`CREATE TABLE IF NOT EXISTS credits (
		id          TEXT PRIMARY KEY,
		sale_id     TEXT NOT NULL UNIQUE REFERENCES sales (id) ON DELETE CASCADE,
		employee_id TEXT NOT NULL REFERENCES employees (id),
		amount      TEXT NOT NULL,
		status      TEXT NOT NULL DEFAULT 'open' CHECK (status IN ('open', 'cleared')),
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_credits_status ON credits (status)`,
}
