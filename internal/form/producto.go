package form

import "catalogadmin/internal/domain"

// ProductoInput is the raw POST body of the product form.
type ProductoInput struct {
	Token                 string `form:"token"`
	Denominacion          string `form:"denominacion" validate:"required"`
	Descripcion           string `form:"descripcion"`
	PrecioVenta           string `form:"precioVenta" validate:"required,numeric"`
	TiempoEstimadoMinutos string `form:"tiempoEstimadoMinutos" validate:"required,numeric"`
	Preparacion           string `form:"preparacion"`
	UnidadMedida          string `form:"unidadMedida"`
	NuevaImagen           string `form:"nuevaImagen"`
}

// ProductoValues is the form state for a manufactured product.
// Recipe lines are not editable here and pass through unchanged.
type ProductoValues struct {
	ID                    int64
	Eliminado             bool
	Denominacion          string
	Descripcion           string
	PrecioVenta           float64
	TiempoEstimadoMinutos int
	Preparacion           string
	Imagenes              []domain.ImagenArticulo
	UnidadMedida          domain.UnidadMedida
	Detalles              []domain.ArticuloManufacturadoDetalle
	NuevaImagen           string
}

func NewProductoValues(rec *domain.ArticuloManufacturado) ProductoValues {
	if rec == nil {
		return ProductoValues{
			Imagenes:     []domain.ImagenArticulo{},
			UnidadMedida: domain.PlaceholderUnidad(),
			Detalles:     []domain.ArticuloManufacturadoDetalle{},
		}
	}
	v := ProductoValues{
		ID:                    rec.ID,
		Eliminado:             rec.Eliminado,
		Denominacion:          rec.Denominacion,
		Descripcion:           rec.Descripcion,
		PrecioVenta:           rec.PrecioVenta,
		TiempoEstimadoMinutos: rec.TiempoEstimadoMinutos,
		Preparacion:           rec.Preparacion,
		Imagenes:              append([]domain.ImagenArticulo{}, rec.Imagenes...),
		UnidadMedida:          domain.PlaceholderUnidad(),
		Detalles:              append([]domain.ArticuloManufacturadoDetalle{}, rec.Detalles...),
	}
	if rec.UnidadMedida != nil {
		v.UnidadMedida = *rec.UnidadMedida
	}
	return v
}

func (v *ProductoValues) Apply(in ProductoInput, units []domain.UnidadMedida) ValidationErrors {
	trimAll(&in.Denominacion, &in.PrecioVenta, &in.TiempoEstimadoMinutos, &in.NuevaImagen)

	v.Denominacion = in.Denominacion
	v.Descripcion = in.Descripcion
	v.Preparacion = in.Preparacion
	v.NuevaImagen = in.NuevaImagen
	v.UnidadMedida, _ = SelectUnit(units, in.UnidadMedida, v.UnidadMedida)

	errs := check(in)
	if errs == nil {
		errs = ValidationErrors{}
	}
	errs = setNumber(errs, "precioVenta", in.PrecioVenta, &v.PrecioVenta)
	if _, bad := errs["tiempoEstimadoMinutos"]; !bad {
		if m, ok := minutes(in.TiempoEstimadoMinutos); ok {
			v.TiempoEstimadoMinutos = m
		} else {
			errs["tiempoEstimadoMinutos"] = "Debe ser un número entero"
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (v *ProductoValues) EntityID() int64                     { return v.ID }
func (v *ProductoValues) NuevaImagenURL() string              { return v.NuevaImagen }
func (v *ProductoValues) AddImagen(img domain.ImagenArticulo) { v.Imagenes = append(v.Imagenes, img) }

func (v *ProductoValues) Payload() domain.ArticuloManufacturado {
	return domain.ArticuloManufacturado{
		Articulo: domain.Articulo{
			ID:           v.ID,
			Eliminado:    v.Eliminado,
			Denominacion: v.Denominacion,
			PrecioVenta:  v.PrecioVenta,
			Imagenes:     v.Imagenes,
			UnidadMedida: unidadRef(v.UnidadMedida),
			Descripcion:  v.Descripcion,
		},
		TiempoEstimadoMinutos: v.TiempoEstimadoMinutos,
		Preparacion:           v.Preparacion,
		Detalles:              v.Detalles,
	}
}
