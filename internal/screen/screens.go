package screen

import (
	"catalogadmin/internal/apiclient"
	"catalogadmin/internal/domain"
)

func Productos(store Store[domain.ArticuloManufacturado]) *Screen[domain.ArticuloManufacturado] {
	return &Screen[domain.ArticuloManufacturado]{
		Name: "productos", Title: "Productos", Path: apiclient.ProductoPath,
		Store: store, Columns: ProductoColumns(),
	}
}

func Insumos(store Store[domain.ArticuloInsumo]) *Screen[domain.ArticuloInsumo] {
	return &Screen[domain.ArticuloInsumo]{
		Name: "insumos", Title: "Insumos", Path: apiclient.ArticuloInsumoPath,
		Store: store, Columns: InsumoColumns(),
	}
}

func Unidades(store Store[domain.UnidadMedida]) *Screen[domain.UnidadMedida] {
	return &Screen[domain.UnidadMedida]{
		Name: "unidades", Title: "Unidades de medida", Path: apiclient.UnidadMedidaPath,
		Store: store, Columns: UnidadColumns(),
	}
}
