package domain

// Entity is implemented by every record the admin screens list.
type Entity interface {
	GetID() int64
	IsEliminado() bool
	DisplayName() string
}

func (u UnidadMedida) GetID() int64        { return u.ID }
func (u UnidadMedida) IsEliminado() bool   { return u.Eliminado }
func (u UnidadMedida) DisplayName() string { return u.Denominacion }

func (a Articulo) GetID() int64        { return a.ID }
func (a Articulo) IsEliminado() bool   { return a.Eliminado }
func (a Articulo) DisplayName() string { return a.Denominacion }

// PlaceholderUnidad is used by forms when a record has no unit yet.
func PlaceholderUnidad() UnidadMedida {
	return UnidadMedida{ID: 0, Eliminado: false, Denominacion: ""}
}

// Activos drops soft-deleted records, keeping order.
func Activos[T Entity](in []T) []T {
	out := make([]T, 0, len(in))
	for _, e := range in {
		if !e.IsEliminado() {
			out = append(out, e)
		}
	}
	return out
}

// FindByID returns the record with the given id among list.
func FindByID[T Entity](list []T, id int64) (T, bool) {
	for _, e := range list {
		if e.GetID() == id {
			return e, true
		}
	}
	var zero T
	return zero, false
}
