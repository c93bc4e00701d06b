package handlers

import (
	"github.com/gofiber/fiber/v2"

	"catalogadmin/internal/apiclient"
	"catalogadmin/internal/config"
	"catalogadmin/internal/domain"
	"catalogadmin/internal/form"
	"catalogadmin/internal/metrics"
	"catalogadmin/internal/screen"
)

type Deps struct {
	ProductoHandler *ProductoHandler
	InsumoHandler   *InsumoHandler
	UnidadHandler   *UnidadHandler
	Metrics         *metrics.Collector
}

// NewDeps wires every screen to one REST client. All forms share one
// submission guard.
func NewDeps(cfg config.Config, m *metrics.Collector) *Deps {
	client := apiclient.New(cfg.APIBaseURL,
		apiclient.WithTimeout(cfg.APITimeout()),
		apiclient.WithMetrics(m),
	)
	guard := form.NewGuard()

	images := apiclient.NewService[domain.ImagenArticulo](client)
	units := apiclient.NewService[domain.UnidadMedida](client)
	insumos := apiclient.NewService[domain.ArticuloInsumo](client)
	productos := apiclient.NewService[domain.ArticuloManufacturado](client)

	return &Deps{
		ProductoHandler: &ProductoHandler{
			Screen: screen.Productos(productos),
			Units:  units,
			Submit: &form.Submitter[domain.ArticuloManufacturado]{
				Screen: "productos", Path: apiclient.ProductoPath, ImagePath: apiclient.ImagenPath,
				Images: images, Items: productos, Guard: guard, Metrics: m,
			},
		},
		InsumoHandler: &InsumoHandler{
			Screen: screen.Insumos(insumos),
			Units:  units,
			Submit: &form.Submitter[domain.ArticuloInsumo]{
				Screen: "insumos", Path: apiclient.ArticuloInsumoPath, ImagePath: apiclient.ImagenPath,
				Images: images, Items: insumos, Guard: guard, Metrics: m,
			},
		},
		UnidadHandler: &UnidadHandler{
			Screen: screen.Unidades(units),
			Submit: &form.Submitter[domain.UnidadMedida]{
				Screen: "unidades", Path: apiclient.UnidadMedidaPath,
				Items: units, Guard: guard, Metrics: m,
			},
		},
		Metrics: m,
	}
}

// Register mounts the admin screens on r.
func (d *Deps) Register(r fiber.Router) {
	r.Get("/", func(c *fiber.Ctx) error { return c.Redirect("/productos") })

	r.Get("/productos", d.ProductoHandler.List)
	r.Post("/productos", d.ProductoHandler.Save)
	r.Post("/productos/:id", d.ProductoHandler.Save)
	r.Post("/productos/:id/delete", d.ProductoHandler.Delete)

	r.Get("/insumos", d.InsumoHandler.List)
	r.Post("/insumos", d.InsumoHandler.Save)
	r.Post("/insumos/:id", d.InsumoHandler.Save)
	r.Post("/insumos/:id/delete", d.InsumoHandler.Delete)

	r.Get("/unidades", d.UnidadHandler.List)
	r.Post("/unidades", d.UnidadHandler.Save)
	r.Post("/unidades/:id", d.UnidadHandler.Save)
	r.Post("/unidades/:id/delete", d.UnidadHandler.Delete)

	r.Get("/metrics", d.Metrics.Handler())
}
