package repos

import (
	"catalogadmin/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UnidadRepo struct{ db *sqlx.DB }

func NewUnidadRepo(db *sqlx.DB) *UnidadRepo { return &UnidadRepo{db: db} }

func (r *UnidadRepo) List() ([]domain.UnidadMedida, error) {
	out := []domain.UnidadMedida{}
	err := r.db.Select(&out, `SELECT id, denominacion, eliminado FROM unidades_medida ORDER BY id`)
	return out, err
}

func (r *UnidadRepo) Get(id int64) (domain.UnidadMedida, error) {
	var u domain.UnidadMedida
	err := r.db.Get(&u, `SELECT id, denominacion, eliminado FROM unidades_medida WHERE id = ?`, id)
	return u, err
}

func (r *UnidadRepo) Create(u domain.UnidadMedida) (domain.UnidadMedida, error) {
	res, err := r.db.Exec(`INSERT INTO unidades_medida(denominacion, eliminado) VALUES (?, ?)`,
		u.Denominacion, u.Eliminado)
	if err != nil {
		return u, err
	}
	u.ID, err = res.LastInsertId()
	return u, err
}

func (r *UnidadRepo) Update(u domain.UnidadMedida) (domain.UnidadMedida, error) {
	if err := mustAffect(r.db.Exec(`UPDATE unidades_medida SET denominacion = ?, eliminado = ? WHERE id = ?`,
		u.Denominacion, u.Eliminado, u.ID)); err != nil {
		return u, err
	}
	return u, nil
}

func (r *UnidadRepo) SoftDelete(id int64) error {
	return mustAffect(r.db.Exec(`UPDATE unidades_medida SET eliminado = 1 WHERE id = ?`, id))
}
