package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"catalogadmin/internal/domain"
	"catalogadmin/internal/form"
	applog "catalogadmin/internal/log"
	"catalogadmin/internal/screen"
	"catalogadmin/internal/validate"
)

type InsumoHandler struct {
	Screen *screen.Screen[domain.ArticuloInsumo]
	Units  unitLister
	Submit *form.Submitter[domain.ArticuloInsumo]
}

// GET /insumos
func (h *InsumoHandler) List(c *fiber.Ctx) error {
	st := screen.ParseState(c)
	list := h.Screen.Load(c)
	var fv *formView
	rec := editTarget(c, h.Screen, &st, list)
	if st.FormOpen() {
		vals := form.NewInsumoValues(rec)
		fv = &formView{
			Action:  formAction(h.Screen, st, rec),
			Editing: rec != nil,
			Token:   form.NewToken(),
			Values:  &vals,
			Units:   loadUnits(c, h.Units),
		}
	}
	return listPage(c, fiber.StatusOK, h.Screen, st, list, fv)
}

// POST /insumos and POST /insumos/:id
func (h *InsumoHandler) Save(c *fiber.Ctx) error {
	st := screen.ParseState(c)
	var in form.InsumoInput
	if err := c.BodyParser(&in); err != nil {
		applog.Security(c, "validation.fail", map[string]any{"field": "body"})
		return notFound(c, fiber.StatusBadRequest, "Solicitud inválida")
	}

	list := h.Screen.Load(c)
	var rec *domain.ArticuloInsumo
	if raw := c.Params("id"); raw != "" {
		id, ok := validate.ID(raw)
		if rec = screen.Current(list, id); !ok || rec == nil {
			applog.Info(c, "insumos.save.missing", map[string]any{"id": raw})
			return notFound(c, fiber.StatusNotFound, "El insumo ya no existe")
		}
	}
	st.Modal = screen.ModalForm
	if rec != nil {
		st.ID = rec.ID
	}

	m := form.Open(rec != nil)
	vals := form.NewInsumoValues(rec)
	units := loadUnits(c, h.Units)
	fv := &formView{Action: formAction(h.Screen, st, rec), Editing: rec != nil, Token: in.Token, Values: &vals, Units: units}

	if errs := vals.Apply(in, units); errs != nil {
		applog.Info(c, "insumos.save.invalid", map[string]any{"fields": fieldNames(errs)})
		fv.Errors = errs
		return listPage(c, fiber.StatusUnprocessableEntity, h.Screen, st, list, fv)
	}

	saved, err := h.Submit.Submit(m, in.Token, &vals)
	switch {
	case errors.Is(err, form.ErrDuplicateSubmit):
		applog.Security(c, "insumos.save.duplicate", map[string]any{"token": in.Token})
		return closeForm(c, h.Screen, st)
	case err != nil:
		applog.Error(c, "insumos.save.fail", err, map[string]any{"id": vals.ID, "mode": m.Mode().String()})
		fv.Message = "No se pudo guardar el insumo. Intente nuevamente."
		return listPage(c, fiber.StatusBadGateway, h.Screen, st, list, fv)
	}
	applog.Audit(c, "insumos.save", map[string]any{"id": saved.ID, "denominacion": saved.Denominacion, "editing": rec != nil})
	return closeForm(c, h.Screen, st)
}

// POST /insumos/:id/delete
func (h *InsumoHandler) Delete(c *fiber.Ctx) error {
	return deleteRecord(c, h.Screen)
}
