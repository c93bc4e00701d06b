package form

import (
	"strconv"

	"catalogadmin/internal/domain"
)

// InsumoInput is the raw POST body of the raw-material form.
type InsumoInput struct {
	Token          string `form:"token"`
	Denominacion   string `form:"denominacion" validate:"required"`
	Descripcion    string `form:"descripcion"`
	PrecioVenta    string `form:"precioVenta" validate:"required,numeric"`
	PrecioCompra   string `form:"precioCompra" validate:"required,numeric"`
	StockActual    string `form:"stockActual" validate:"required,numeric"`
	StockMaximo    string `form:"stockMaximo" validate:"required,numeric"`
	EsParaElaborar string `form:"esParaElaborar" validate:"omitempty,boolean"`
	UnidadMedida   string `form:"unidadMedida"`
	NuevaImagen    string `form:"nuevaImagen"`
}

// InsumoValues is the form state for a raw-material item.
type InsumoValues struct {
	ID             int64
	Eliminado      bool
	Denominacion   string
	Descripcion    string
	PrecioVenta    float64
	PrecioCompra   float64
	StockActual    float64
	StockMaximo    float64
	EsParaElaborar bool
	Imagenes       []domain.ImagenArticulo
	UnidadMedida   domain.UnidadMedida
	NuevaImagen    string
}

// NewInsumoValues copies rec, or returns the empty defaults when rec is nil.
func NewInsumoValues(rec *domain.ArticuloInsumo) InsumoValues {
	if rec == nil {
		return InsumoValues{Imagenes: []domain.ImagenArticulo{}, UnidadMedida: domain.PlaceholderUnidad()}
	}
	v := InsumoValues{
		ID:             rec.ID,
		Eliminado:      rec.Eliminado,
		Denominacion:   rec.Denominacion,
		Descripcion:    rec.Descripcion,
		PrecioVenta:    rec.PrecioVenta,
		PrecioCompra:   rec.PrecioCompra,
		StockActual:    rec.StockActual,
		StockMaximo:    rec.StockMaximo,
		EsParaElaborar: rec.EsParaElaborar,
		Imagenes:       append([]domain.ImagenArticulo{}, rec.Imagenes...),
		UnidadMedida:   domain.PlaceholderUnidad(),
	}
	if rec.UnidadMedida != nil {
		v.UnidadMedida = *rec.UnidadMedida
	}
	return v
}

// Apply validates in and copies it over v. The unit is resolved against units;
// an unknown unit is logged by SelectUnit and is not a validation error.
func (v *InsumoValues) Apply(in InsumoInput, units []domain.UnidadMedida) ValidationErrors {
	trimAll(&in.Denominacion, &in.PrecioVenta, &in.PrecioCompra, &in.StockActual,
		&in.StockMaximo, &in.EsParaElaborar, &in.NuevaImagen)

	v.Denominacion = in.Denominacion
	v.Descripcion = in.Descripcion
	v.NuevaImagen = in.NuevaImagen
	v.EsParaElaborar, _ = strconv.ParseBool(in.EsParaElaborar)
	v.UnidadMedida, _ = SelectUnit(units, in.UnidadMedida, v.UnidadMedida)

	errs := check(in)
	errs = setNumber(errs, "precioVenta", in.PrecioVenta, &v.PrecioVenta)
	errs = setNumber(errs, "precioCompra", in.PrecioCompra, &v.PrecioCompra)
	errs = setNumber(errs, "stockActual", in.StockActual, &v.StockActual)
	errs = setNumber(errs, "stockMaximo", in.StockMaximo, &v.StockMaximo)
	return errs
}

func (v *InsumoValues) EntityID() int64                     { return v.ID }
func (v *InsumoValues) NuevaImagenURL() string              { return v.NuevaImagen }
func (v *InsumoValues) AddImagen(img domain.ImagenArticulo) { v.Imagenes = append(v.Imagenes, img) }

func (v *InsumoValues) Payload() domain.ArticuloInsumo {
	return domain.ArticuloInsumo{
		Articulo: domain.Articulo{
			ID:           v.ID,
			Eliminado:    v.Eliminado,
			Denominacion: v.Denominacion,
			PrecioVenta:  v.PrecioVenta,
			Imagenes:     v.Imagenes,
			UnidadMedida: unidadRef(v.UnidadMedida),
			Descripcion:  v.Descripcion,
		},
		PrecioCompra:   v.PrecioCompra,
		StockActual:    v.StockActual,
		StockMaximo:    v.StockMaximo,
		EsParaElaborar: v.EsParaElaborar,
	}
}

// unidadRef drops the placeholder so it is never sent as a real reference.
func unidadRef(u domain.UnidadMedida) *domain.UnidadMedida {
	if u.ID == 0 {
		return nil
	}
	return &u
}
