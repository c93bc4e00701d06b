package repos

import (
	"catalogadmin/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ImagenRepo struct{ db *sqlx.DB }

func NewImagenRepo(db *sqlx.DB) *ImagenRepo { return &ImagenRepo{db: db} }

func (r *ImagenRepo) List() ([]domain.ImagenArticulo, error) {
	out := []domain.ImagenArticulo{}
	err := r.db.Select(&out, `SELECT id, url, eliminado FROM imagenes_articulo ORDER BY id`)
	return out, err
}

// Create stores an image that no item owns yet; saving an item links it.
func (r *ImagenRepo) Create(img domain.ImagenArticulo) (domain.ImagenArticulo, error) {
	res, err := r.db.Exec(`INSERT INTO imagenes_articulo(url, eliminado) VALUES (?, ?)`, img.URL, img.Eliminado)
	if err != nil {
		return img, err
	}
	img.ID, err = res.LastInsertId()
	return img, err
}

func (r *ImagenRepo) Update(img domain.ImagenArticulo) (domain.ImagenArticulo, error) {
	if err := mustAffect(r.db.Exec(`UPDATE imagenes_articulo SET url = ?, eliminado = ? WHERE id = ?`,
		img.URL, img.Eliminado, img.ID)); err != nil {
		return img, err
	}
	return img, nil
}

func (r *ImagenRepo) SoftDelete(id int64) error {
	return mustAffect(r.db.Exec(`UPDATE imagenes_articulo SET eliminado = 1 WHERE id = ?`, id))
}

// Orphans lists images never linked to an item.
func (r *ImagenRepo) Orphans() ([]domain.ImagenArticulo, error) {
	out := []domain.ImagenArticulo{}
	err := r.db.Select(&out, `SELECT id, url, eliminado FROM imagenes_articulo WHERE articulo_id IS NULL ORDER BY id`)
	return out, err
}
