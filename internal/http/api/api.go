// Package api serves the catalog REST resources for local development and tests.
// It stores what it receives; soft delete is the only rule it applies.
package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"catalogadmin/internal/domain"
	applog "catalogadmin/internal/log"
	"catalogadmin/internal/repos"
)

type Handler struct {
	Unidades  *repos.UnidadRepo
	Imagenes  *repos.ImagenRepo
	Articulos *repos.ArticuloRepo
}

func New(db *sqlx.DB) *Handler {
	return &Handler{
		Unidades:  repos.NewUnidadRepo(db),
		Imagenes:  repos.NewImagenRepo(db),
		Articulos: repos.NewArticuloRepo(db),
	}
}

// Register mounts the four resources under /api.
func (h *Handler) Register(app fiber.Router) {
	g := app.Group("/api")

	g.Get("/unidadMedida", h.listUnidades)
	g.Post("/unidadMedida", h.saveUnidad)
	g.Put("/unidadMedida/:id", h.saveUnidad)
	g.Delete("/unidadMedida/:id", h.deleteUnidad)

	g.Get("/imagenArticulo", h.listImagenes)
	g.Post("/imagenArticulo", h.saveImagen)
	g.Put("/imagenArticulo/:id", h.saveImagen)
	g.Delete("/imagenArticulo/:id", h.deleteImagen)

	g.Get("/articuloInsumo", h.listInsumos)
	g.Post("/articuloInsumo", h.saveInsumo)
	g.Put("/articuloInsumo/:id", h.saveInsumo)
	g.Delete("/articuloInsumo/:id", h.deleteArticulo(repos.TipoInsumo))

	g.Get("/producto", h.listProductos)
	g.Post("/producto", h.saveProducto)
	g.Put("/producto/:id", h.saveProducto)
	g.Delete("/producto/:id", h.deleteArticulo(repos.TipoManufacturado))
}

// pathID returns 0 for POST routes and the parsed :id for PUT/DELETE.
func pathID(c *fiber.Ctx) (int64, error) {
	raw := c.Params("id")
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func fail(c *fiber.Ctx, action string, err error) error {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	case errors.Is(err, repos.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	applog.Error(c, action, err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}

func (h *Handler) listUnidades(c *fiber.Ctx) error {
	out, err := h.Unidades.List()
	if err != nil {
		return fail(c, "api.unidades.list.fail", err)
	}
	return c.JSON(out)
}

func (h *Handler) saveUnidad(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, "api.unidades.save.fail", err)
	}
	var u domain.UnidadMedida
	if err := c.BodyParser(&u); err != nil {
		return fail(c, "api.unidades.save.fail", fiber.NewError(fiber.StatusBadRequest, "invalid body"))
	}
	if id == 0 {
		u.ID = 0
		if u, err = h.Unidades.Create(u); err != nil {
			return fail(c, "api.unidades.save.fail", err)
		}
		return c.Status(fiber.StatusCreated).JSON(u)
	}
	u.ID = id
	if u, err = h.Unidades.Update(u); err != nil {
		return fail(c, "api.unidades.save.fail", err)
	}
	return c.JSON(u)
}

func (h *Handler) deleteUnidad(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err == nil {
		err = h.Unidades.SoftDelete(id)
	}
	if err != nil {
		return fail(c, "api.unidades.delete.fail", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GET /api/imagenArticulo, or only the images no item links to with ?huerfanas=true
func (h *Handler) listImagenes(c *fiber.Ctx) error {
	list := h.Imagenes.List
	if c.QueryBool("huerfanas") {
		list = h.Imagenes.Orphans
	}
	out, err := list()
	if err != nil {
		return fail(c, "api.imagenes.list.fail", err)
	}
	return c.JSON(out)
}

func (h *Handler) saveImagen(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, "api.imagenes.save.fail", err)
	}
	var img domain.ImagenArticulo
	if err := c.BodyParser(&img); err != nil || img.URL == "" {
		return fail(c, "api.imagenes.save.fail", fiber.NewError(fiber.StatusBadRequest, "invalid body"))
	}
	if id == 0 {
		// the id sent by clients on create is ignored
		img.ID = 0
		if img, err = h.Imagenes.Create(img); err != nil {
			return fail(c, "api.imagenes.save.fail", err)
		}
		return c.Status(fiber.StatusCreated).JSON(img)
	}
	img.ID = id
	if img, err = h.Imagenes.Update(img); err != nil {
		return fail(c, "api.imagenes.save.fail", err)
	}
	return c.JSON(img)
}

func (h *Handler) deleteImagen(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err == nil {
		err = h.Imagenes.SoftDelete(id)
	}
	if err != nil {
		return fail(c, "api.imagenes.delete.fail", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) listInsumos(c *fiber.Ctx) error {
	out, err := h.Articulos.ListInsumos()
	if err != nil {
		return fail(c, "api.insumos.list.fail", err)
	}
	return c.JSON(out)
}

func (h *Handler) saveInsumo(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, "api.insumos.save.fail", err)
	}
	var a domain.ArticuloInsumo
	if err := c.BodyParser(&a); err != nil {
		return fail(c, "api.insumos.save.fail", fiber.NewError(fiber.StatusBadRequest, "invalid body"))
	}
	a.ID = id
	saved, err := h.Articulos.SaveInsumo(a)
	if err != nil {
		return fail(c, "api.insumos.save.fail", err)
	}
	if id == 0 {
		return c.Status(fiber.StatusCreated).JSON(saved)
	}
	return c.JSON(saved)
}

func (h *Handler) listProductos(c *fiber.Ctx) error {
	out, err := h.Articulos.ListManufacturados()
	if err != nil {
		return fail(c, "api.productos.list.fail", err)
	}
	return c.JSON(out)
}

func (h *Handler) saveProducto(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, "api.productos.save.fail", err)
	}
	var a domain.ArticuloManufacturado
	if err := c.BodyParser(&a); err != nil {
		return fail(c, "api.productos.save.fail", fiber.NewError(fiber.StatusBadRequest, "invalid body"))
	}
	a.ID = id
	saved, err := h.Articulos.SaveManufacturado(a)
	if err != nil {
		return fail(c, "api.productos.save.fail", err)
	}
	if id == 0 {
		return c.Status(fiber.StatusCreated).JSON(saved)
	}
	return c.JSON(saved)
}

func (h *Handler) deleteArticulo(tipo string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err == nil {
			err = h.Articulos.SoftDelete(tipo, id)
		}
		if err != nil {
			return fail(c, "api.articulos.delete.fail", err)
		}
		applog.Audit(c, "api.articulos.delete", map[string]any{"tipo": tipo, "id": id})
		return c.SendStatus(fiber.StatusNoContent)
	}
}
