package form

import "catalogadmin/internal/domain"

type UnidadInput struct {
	Token        string `form:"token"`
	Denominacion string `form:"denominacion" validate:"required"`
}

// UnidadValues is the form state for a unit of measure. Units have no images.
type UnidadValues struct {
	ID           int64
	Eliminado    bool
	Denominacion string
}

func NewUnidadValues(rec *domain.UnidadMedida) UnidadValues {
	if rec == nil {
		return UnidadValues{}
	}
	return UnidadValues{ID: rec.ID, Eliminado: rec.Eliminado, Denominacion: rec.Denominacion}
}

func (v *UnidadValues) Apply(in UnidadInput) ValidationErrors {
	trimAll(&in.Denominacion)
	v.Denominacion = in.Denominacion
	return check(in)
}

func (v *UnidadValues) EntityID() int64                 { return v.ID }
func (v *UnidadValues) NuevaImagenURL() string          { return "" }
func (v *UnidadValues) AddImagen(domain.ImagenArticulo) {}

func (v *UnidadValues) Payload() domain.UnidadMedida {
	return domain.UnidadMedida{ID: v.ID, Eliminado: v.Eliminado, Denominacion: v.Denominacion}
}
