package screen

import (
	"html/template"
	"strconv"
	"strings"

	"catalogadmin/internal/domain"
	"catalogadmin/internal/table"
)

func num(f float64) template.HTML { return table.Text(table.Decimal(f)) }

func idCell(id int64) template.HTML { return table.Text(strconv.FormatInt(id, 10)) }

func unidadCell(u *domain.UnidadMedida) template.HTML {
	if u == nil || u.Denominacion == "" {
		return table.Text("Sin unidad de medida")
	}
	return table.Text(u.Denominacion)
}

func imagenesCell(imgs []domain.ImagenArticulo) template.HTML {
	var b strings.Builder
	n := 0
	for _, img := range imgs {
		if img.Eliminado || !safeURL(img.URL) {
			continue
		}
		n++
		b.WriteString(`<img class="thumb" src="` + template.HTMLEscapeString(img.URL) +
			`" alt="Imagen ` + strconv.Itoa(n) + `">`)
	}
	if n == 0 {
		return table.Text("No hay imágenes disponibles")
	}
	return template.HTML(`<div class="thumbs">` + b.String() + `</div>`)
}

func safeURL(u string) bool {
	l := strings.ToLower(strings.TrimSpace(u))
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://") || strings.HasPrefix(l, "/")
}

func siNo(b bool) template.HTML {
	if b {
		return table.Text("Sí")
	}
	return table.Text("No")
}

func ProductoColumns() []table.Column[domain.ArticuloManufacturado] {
	type P = domain.ArticuloManufacturado
	return []table.Column[P]{
		{ID: "id", Label: "Id", Render: func(p P) template.HTML { return idCell(p.ID) }},
		{ID: "denominacion", Label: "Nombre", Render: func(p P) template.HTML { return table.Text(p.Denominacion) }},
		{ID: "precioVenta", Label: "Precio Venta", Render: func(p P) template.HTML { return num(p.PrecioVenta) }},
		{ID: "unidadMedida", Label: "Unidad Medida", Render: func(p P) template.HTML { return unidadCell(p.UnidadMedida) }},
		{ID: "descripcion", Label: "Descripción", Render: func(p P) template.HTML { return table.Text(p.Descripcion) }},
		{ID: "tiempoEstimadoMinutos", Label: "Tiempo Estimado (min)", Render: func(p P) template.HTML {
			return table.Text(strconv.Itoa(p.TiempoEstimadoMinutos))
		}},
		{ID: "imagenes", Label: "Imágenes", Render: func(p P) template.HTML { return imagenesCell(p.Imagenes) }},
	}
}

func InsumoColumns() []table.Column[domain.ArticuloInsumo] {
	type I = domain.ArticuloInsumo
	return []table.Column[I]{
		{ID: "id", Label: "Id", Render: func(i I) template.HTML { return idCell(i.ID) }},
		{ID: "denominacion", Label: "Nombre", Render: func(i I) template.HTML { return table.Text(i.Denominacion) }},
		{ID: "precioCompra", Label: "Precio Compra", Render: func(i I) template.HTML { return num(i.PrecioCompra) }},
		{ID: "precioVenta", Label: "Precio Venta", Render: func(i I) template.HTML { return num(i.PrecioVenta) }},
		{ID: "stockActual", Label: "Stock Actual", Render: func(i I) template.HTML { return num(i.StockActual) }},
		{ID: "stockMaximo", Label: "Stock Máximo", Render: func(i I) template.HTML { return num(i.StockMaximo) }},
		{ID: "unidadMedida", Label: "Unidad Medida", Render: func(i I) template.HTML { return unidadCell(i.UnidadMedida) }},
		{ID: "esParaElaborar", Label: "Para elaborar", Render: func(i I) template.HTML { return siNo(i.EsParaElaborar) }},
		{ID: "imagenes", Label: "Imágenes", Render: func(i I) template.HTML { return imagenesCell(i.Imagenes) }},
	}
}

func UnidadColumns() []table.Column[domain.UnidadMedida] {
	type U = domain.UnidadMedida
	return []table.Column[U]{
		{ID: "id", Label: "Id", Render: func(u U) template.HTML { return idCell(u.ID) }},
		{ID: "denominacion", Label: "Denominación", Render: func(u U) template.HTML { return table.Text(u.Denominacion) }},
	}
}
