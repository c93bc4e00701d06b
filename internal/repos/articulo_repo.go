package repos

import (
	"database/sql"

	"catalogadmin/internal/domain"

	"github.com/jmoiron/sqlx"
)

const (
	TipoInsumo        = "INSUMO"
	TipoManufacturado = "MANUFACTURADO"
)

type articuloRow struct {
	ID                    int64           `db:"id"`
	Denominacion          string          `db:"denominacion"`
	PrecioVenta           float64         `db:"precio_venta"`
	Descripcion           string          `db:"descripcion"`
	Eliminado             bool            `db:"eliminado"`
	UnidadID              sql.NullInt64   `db:"unidad_id"`
	UnidadDenominacion    sql.NullString  `db:"unidad_denominacion"`
	UnidadEliminado       sql.NullBool    `db:"unidad_eliminado"`
	PrecioCompra          sql.NullFloat64 `db:"precio_compra"`
	StockActual           sql.NullFloat64 `db:"stock_actual"`
	StockMaximo           sql.NullFloat64 `db:"stock_maximo"`
	EsParaElaborar        sql.NullBool    `db:"es_para_elaborar"`
	TiempoEstimadoMinutos sql.NullInt64   `db:"tiempo_estimado_minutos"`
	Preparacion           sql.NullString  `db:"preparacion"`
}

type imagenRow struct {
	domain.ImagenArticulo
	ArticuloID int64 `db:"articulo_id"`
}

type detalleRow struct {
	ID                 int64          `db:"id"`
	Eliminado          bool           `db:"eliminado"`
	Cantidad           float64        `db:"cantidad"`
	ManufacturadoID    int64          `db:"articulo_manufacturado_id"`
	InsumoID           sql.NullInt64  `db:"insumo_id"`
	InsumoDenominacion sql.NullString `db:"insumo_denominacion"`
}

const selectArticulo = `
  SELECT
    a.id, a.denominacion, a.precio_venta, a.descripcion, a.eliminado,
    u.id AS unidad_id, u.denominacion AS unidad_denominacion, u.eliminado AS unidad_eliminado,
    a.precio_compra, a.stock_actual, a.stock_maximo, a.es_para_elaborar,
    a.tiempo_estimado_minutos, a.preparacion
  FROM articulos a
  LEFT JOIN unidades_medida u ON u.id = a.unidad_medida_id
  WHERE a.tipo = ?`

// ArticuloRepo stores both raw-material items and manufactured products.
type ArticuloRepo struct{ db *sqlx.DB }

func NewArticuloRepo(db *sqlx.DB) *ArticuloRepo { return &ArticuloRepo{db: db} }

func (r *ArticuloRepo) ListInsumos() ([]domain.ArticuloInsumo, error) {
	rows, imgs, err := r.list(TipoInsumo)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ArticuloInsumo, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.insumo(imgs[row.ID]))
	}
	return out, nil
}

func (r *ArticuloRepo) GetInsumo(id int64) (domain.ArticuloInsumo, error) {
	row, imgs, err := r.get(TipoInsumo, id)
	if err != nil {
		return domain.ArticuloInsumo{}, err
	}
	return row.insumo(imgs), nil
}

func (r *ArticuloRepo) ListManufacturados() ([]domain.ArticuloManufacturado, error) {
	rows, imgs, err := r.list(TipoManufacturado)
	if err != nil {
		return nil, err
	}
	dets, err := r.detalles(0)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ArticuloManufacturado, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.manufacturado(imgs[row.ID], dets[row.ID]))
	}
	return out, nil
}

func (r *ArticuloRepo) GetManufacturado(id int64) (domain.ArticuloManufacturado, error) {
	row, imgs, err := r.get(TipoManufacturado, id)
	if err != nil {
		return domain.ArticuloManufacturado{}, err
	}
	dets, err := r.detalles(id)
	if err != nil {
		return domain.ArticuloManufacturado{}, err
	}
	return row.manufacturado(imgs, dets[id]), nil
}

// SaveInsumo inserts when a.ID is zero, otherwise replaces the stored row.
func (r *ArticuloRepo) SaveInsumo(a domain.ArticuloInsumo) (domain.ArticuloInsumo, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return a, err
	}
	defer func() { _ = tx.Rollback() }()

	args := []any{a.Denominacion, a.PrecioVenta, a.Descripcion, unidadID(a.UnidadMedida), a.Eliminado,
		a.PrecioCompra, a.StockActual, a.StockMaximo, a.EsParaElaborar}
	id := a.ID
	if id == 0 {
		res, err := tx.Exec(`
			INSERT INTO articulos(tipo, denominacion, precio_venta, descripcion, unidad_medida_id, eliminado,
			  precio_compra, stock_actual, stock_maximo, es_para_elaborar)
			VALUES ('INSUMO', ?, ?, ?, ?, ?, ?, ?, ?, ?)`, args...)
		if err != nil {
			return a, err
		}
		if id, err = res.LastInsertId(); err != nil {
			return a, err
		}
	} else {
		if err := mustAffect(tx.Exec(`
			UPDATE articulos SET denominacion = ?, precio_venta = ?, descripcion = ?, unidad_medida_id = ?,
			  eliminado = ?, precio_compra = ?, stock_actual = ?, stock_maximo = ?, es_para_elaborar = ?,
			  updated_at = CURRENT_TIMESTAMP
			WHERE id = ? AND tipo = 'INSUMO'`, append(args, id)...)); err != nil {
			return a, err
		}
	}
	if err := linkImagenes(tx, id, a.Imagenes); err != nil {
		return a, err
	}
	if err := tx.Commit(); err != nil {
		return a, err
	}
	return r.GetInsumo(id)
}

func (r *ArticuloRepo) SaveManufacturado(a domain.ArticuloManufacturado) (domain.ArticuloManufacturado, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return a, err
	}
	defer func() { _ = tx.Rollback() }()

	args := []any{a.Denominacion, a.PrecioVenta, a.Descripcion, unidadID(a.UnidadMedida), a.Eliminado,
		a.TiempoEstimadoMinutos, a.Preparacion}
	id := a.ID
	if id == 0 {
		res, err := tx.Exec(`
			INSERT INTO articulos(tipo, denominacion, precio_venta, descripcion, unidad_medida_id, eliminado,
			  tiempo_estimado_minutos, preparacion)
			VALUES ('MANUFACTURADO', ?, ?, ?, ?, ?, ?, ?)`, args...)
		if err != nil {
			return a, err
		}
		if id, err = res.LastInsertId(); err != nil {
			return a, err
		}
	} else {
		if err := mustAffect(tx.Exec(`
			UPDATE articulos SET denominacion = ?, precio_venta = ?, descripcion = ?, unidad_medida_id = ?,
			  eliminado = ?, tiempo_estimado_minutos = ?, preparacion = ?, updated_at = CURRENT_TIMESTAMP
			WHERE id = ? AND tipo = 'MANUFACTURADO'`, append(args, id)...)); err != nil {
			return a, err
		}
		if _, err := tx.Exec(`DELETE FROM articulo_manufacturado_detalles WHERE articulo_manufacturado_id = ?`, id); err != nil {
			return a, err
		}
	}
	for _, d := range a.Detalles {
		var insumo any
		if d.ArticuloInsumo != nil && d.ArticuloInsumo.ID != 0 {
			insumo = d.ArticuloInsumo.ID
		}
		if _, err := tx.Exec(`
			INSERT INTO articulo_manufacturado_detalles(articulo_manufacturado_id, articulo_insumo_id, cantidad, eliminado)
			VALUES (?, ?, ?, ?)`, id, insumo, d.Cantidad, d.Eliminado); err != nil {
			return a, err
		}
	}
	if err := linkImagenes(tx, id, a.Imagenes); err != nil {
		return a, err
	}
	if err := tx.Commit(); err != nil {
		return a, err
	}
	return r.GetManufacturado(id)
}

// SoftDelete flags the item; rows are never removed.
func (r *ArticuloRepo) SoftDelete(tipo string, id int64) error {
	return mustAffect(r.db.Exec(`
		UPDATE articulos SET eliminado = 1, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND tipo = ?`, id, tipo))
}

func (r *ArticuloRepo) list(tipo string) ([]articuloRow, map[int64][]domain.ImagenArticulo, error) {
	var rows []articuloRow
	if err := r.db.Select(&rows, selectArticulo+` ORDER BY a.id`, tipo); err != nil {
		return nil, nil, err
	}
	var imgs []imagenRow
	if err := r.db.Select(&imgs, `
		SELECT id, url, eliminado, articulo_id FROM imagenes_articulo
		WHERE articulo_id IS NOT NULL ORDER BY id`); err != nil {
		return nil, nil, err
	}
	byItem := map[int64][]domain.ImagenArticulo{}
	for _, im := range imgs {
		byItem[im.ArticuloID] = append(byItem[im.ArticuloID], im.ImagenArticulo)
	}
	return rows, byItem, nil
}

func (r *ArticuloRepo) get(tipo string, id int64) (articuloRow, []domain.ImagenArticulo, error) {
	var row articuloRow
	if err := r.db.Get(&row, selectArticulo+` AND a.id = ?`, tipo, id); err != nil {
		if err == sql.ErrNoRows {
			return row, nil, ErrNotFound
		}
		return row, nil, err
	}
	imgs := []domain.ImagenArticulo{}
	err := r.db.Select(&imgs, `SELECT id, url, eliminado FROM imagenes_articulo WHERE articulo_id = ? ORDER BY id`, id)
	return row, imgs, err
}

// detalles loads recipe lines for one product, or for all when id is zero.
func (r *ArticuloRepo) detalles(id int64) (map[int64][]domain.ArticuloManufacturadoDetalle, error) {
	q := `
		SELECT d.id, d.eliminado, d.cantidad, d.articulo_manufacturado_id,
		  i.id AS insumo_id, i.denominacion AS insumo_denominacion
		FROM articulo_manufacturado_detalles d
		LEFT JOIN articulos i ON i.id = d.articulo_insumo_id`
	args := []any{}
	if id != 0 {
		q += ` WHERE d.articulo_manufacturado_id = ?`
		args = append(args, id)
	}
	var rows []detalleRow
	if err := r.db.Select(&rows, q+` ORDER BY d.id`, args...); err != nil {
		return nil, err
	}
	out := map[int64][]domain.ArticuloManufacturadoDetalle{}
	for _, d := range rows {
		det := domain.ArticuloManufacturadoDetalle{ID: d.ID, Eliminado: d.Eliminado, Cantidad: d.Cantidad}
		if d.InsumoID.Valid {
			det.ArticuloInsumo = &domain.ArticuloInsumo{Articulo: domain.Articulo{
				ID: d.InsumoID.Int64, Denominacion: d.InsumoDenominacion.String,
			}}
		}
		out[d.ManufacturadoID] = append(out[d.ManufacturadoID], det)
	}
	return out, nil
}

// linkImagenes attaches already created images to the item and inserts the ones sent without id.
func linkImagenes(tx *sqlx.Tx, articuloID int64, imgs []domain.ImagenArticulo) error {
	for _, im := range imgs {
		if im.ID == 0 {
			if _, err := tx.Exec(`INSERT INTO imagenes_articulo(url, eliminado, articulo_id) VALUES (?, ?, ?)`,
				im.URL, im.Eliminado, articuloID); err != nil {
				return err
			}
			continue
		}
		if err := mustAffect(tx.Exec(`UPDATE imagenes_articulo SET articulo_id = ?, url = ?, eliminado = ? WHERE id = ?`,
			articuloID, im.URL, im.Eliminado, im.ID)); err != nil {
			return err
		}
	}
	return nil
}

func unidadID(u *domain.UnidadMedida) any {
	if u == nil || u.ID == 0 {
		return nil
	}
	return u.ID
}

func (row articuloRow) base(imgs []domain.ImagenArticulo) domain.Articulo {
	if imgs == nil {
		imgs = []domain.ImagenArticulo{}
	}
	a := domain.Articulo{
		ID:           row.ID,
		Eliminado:    row.Eliminado,
		Denominacion: row.Denominacion,
		PrecioVenta:  row.PrecioVenta,
		Imagenes:     imgs,
		Descripcion:  row.Descripcion,
	}
	if row.UnidadID.Valid {
		a.UnidadMedida = &domain.UnidadMedida{
			ID:           row.UnidadID.Int64,
			Denominacion: row.UnidadDenominacion.String,
			Eliminado:    row.UnidadEliminado.Bool,
		}
	}
	return a
}

func (row articuloRow) insumo(imgs []domain.ImagenArticulo) domain.ArticuloInsumo {
	return domain.ArticuloInsumo{
		Articulo:       row.base(imgs),
		PrecioCompra:   row.PrecioCompra.Float64,
		StockActual:    row.StockActual.Float64,
		StockMaximo:    row.StockMaximo.Float64,
		EsParaElaborar: row.EsParaElaborar.Bool,
	}
}

func (row articuloRow) manufacturado(imgs []domain.ImagenArticulo, dets []domain.ArticuloManufacturadoDetalle) domain.ArticuloManufacturado {
	if dets == nil {
		dets = []domain.ArticuloManufacturadoDetalle{}
	}
	return domain.ArticuloManufacturado{
		Articulo:              row.base(imgs),
		TiempoEstimadoMinutos: int(row.TiempoEstimadoMinutos.Int64),
		Preparacion:           row.Preparacion.String,
		Detalles:              dets,
	}
}
