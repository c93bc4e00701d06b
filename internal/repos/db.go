package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// one connection: ":memory:" databases are per-connection, and sqlite serialises writes anyway
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed baseline data if DB is empty (units/insumos/products)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

CREATE TABLE IF NOT EXISTS unidades_medida(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  denominacion TEXT NOT NULL,
  eliminado INTEGER NOT NULL DEFAULT 0
);

-- Articulos: INSUMO and MANUFACTURADO share one table
CREATE TABLE IF NOT EXISTS articulos(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  tipo TEXT NOT NULL CHECK (tipo IN ('INSUMO','MANUFACTURADO')),
  denominacion TEXT NOT NULL,
  precio_venta REAL NOT NULL DEFAULT 0,
  descripcion TEXT NOT NULL DEFAULT '',
  unidad_medida_id INTEGER NULL REFERENCES unidades_medida(id),
  eliminado INTEGER NOT NULL DEFAULT 0,
  precio_compra REAL,
  stock_actual REAL,
  stock_maximo REAL,
  es_para_elaborar INTEGER,
  tiempo_estimado_minutos INTEGER,
  preparacion TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_articulos_tipo ON articulos(tipo);

-- Images are created on their own and linked when the owning item is saved
CREATE TABLE IF NOT EXISTS imagenes_articulo(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  url TEXT NOT NULL,
  eliminado INTEGER NOT NULL DEFAULT 0,
  articulo_id INTEGER NULL REFERENCES articulos(id) ON DELETE SET NULL
);
CREATE INDEX IF NOT EXISTS idx_imagenes_articulo ON imagenes_articulo(articulo_id);

CREATE TABLE IF NOT EXISTS articulo_manufacturado_detalles(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  articulo_manufacturado_id INTEGER NOT NULL REFERENCES articulos(id) ON DELETE CASCADE,
  articulo_insumo_id INTEGER NULL REFERENCES articulos(id),
  cantidad REAL NOT NULL DEFAULT 0,
  eliminado INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_detalles_manufacturado ON articulo_manufacturado_detalles(articulo_manufacturado_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM unidades_medida`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo units/insumos/products")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO unidades_medida(id,denominacion) VALUES
	  (1,'Kilogramo'),
	  (2,'Litro'),
	  (3,'Unidad'),
	  (4,'Gramo')`)

	tx.MustExec(`INSERT INTO articulos(id,tipo,denominacion,precio_venta,descripcion,unidad_medida_id,
	    precio_compra,stock_actual,stock_maximo,es_para_elaborar) VALUES
	  (1,'INSUMO','Queso muzzarella',0,'Horma de muzzarella',1,4200,12,40,1),
	  (2,'INSUMO','Salsa de tomate',0,'',2,900,20,60,1),
	  (3,'INSUMO','Gaseosa cola 500ml',1500,'',3,800,48,120,0)`)

	tx.MustExec(`INSERT INTO articulos(id,tipo,denominacion,precio_venta,descripcion,unidad_medida_id,
	    tiempo_estimado_minutos,preparacion) VALUES
	  (4,'MANUFACTURADO','Pizza muzzarella',9500,'Pizza grande de muzzarella',3,25,'Estirar la masa, salsa, queso y horno fuerte')`)

	tx.MustExec(`INSERT INTO articulo_manufacturado_detalles(articulo_manufacturado_id,articulo_insumo_id,cantidad) VALUES
	  (4,1,0.4),
	  (4,2,0.2)`)

	tx.MustExec(`INSERT INTO imagenes_articulo(url,articulo_id) VALUES
	  ('https://images.example.test/pizza-muzzarella.jpg',4)`)

	return tx.Commit()
}
