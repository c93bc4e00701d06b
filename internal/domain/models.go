package domain

// UnidadMedida is a unit of measure referenced by catalog items.
type UnidadMedida struct {
	ID           int64  `json:"id" db:"id"`
	Eliminado    bool   `json:"eliminado" db:"eliminado"`
	Denominacion string `json:"denominacion" db:"denominacion"`
}

// ImagenArticulo is owned by exactly one catalog item.
type ImagenArticulo struct {
	ID        int64  `json:"id" db:"id"`
	Eliminado bool   `json:"eliminado" db:"eliminado"`
	URL       string `json:"url" db:"url"`
}

// Articulo holds the fields shared by products and raw-material items.
type Articulo struct {
	ID           int64            `json:"id"`
	Eliminado    bool             `json:"eliminado"`
	Denominacion string           `json:"denominacion"`
	PrecioVenta  float64          `json:"precioVenta"`
	Imagenes     []ImagenArticulo `json:"imagenes"`
	UnidadMedida *UnidadMedida    `json:"unidadMedida,omitempty"`
	Descripcion  string           `json:"descripcion"`
}

// ArticuloInsumo is a raw material.
type ArticuloInsumo struct {
	Articulo
	PrecioCompra   float64 `json:"precioCompra"`
	StockActual    float64 `json:"stockActual"`
	StockMaximo    float64 `json:"stockMaximo"`
	EsParaElaborar bool    `json:"esParaElaborar"`
}

// ArticuloManufacturado is a product prepared from raw materials.
type ArticuloManufacturado struct {
	Articulo
	TiempoEstimadoMinutos int                            `json:"tiempoEstimadoMinutos"`
	Preparacion           string                         `json:"preparacion"`
	Detalles              []ArticuloManufacturadoDetalle `json:"articuloManufacturadoDetalles"`
}

// ArticuloManufacturadoDetalle is one recipe line. The admin screens carry it through untouched.
type ArticuloManufacturadoDetalle struct {
	ID             int64           `json:"id"`
	Eliminado      bool            `json:"eliminado"`
	Cantidad       float64         `json:"cantidad"`
	ArticuloInsumo *ArticuloInsumo `json:"articuloInsumo,omitempty"`
}
