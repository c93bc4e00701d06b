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

type UnidadHandler struct {
	Screen *screen.Screen[domain.UnidadMedida]
	Submit *form.Submitter[domain.UnidadMedida]
}

// GET /unidades
func (h *UnidadHandler) List(c *fiber.Ctx) error {
	st := screen.ParseState(c)
	list := h.Screen.Load(c)
	var fv *formView
	rec := editTarget(c, h.Screen, &st, list)
	if st.FormOpen() {
		vals := form.NewUnidadValues(rec)
		fv = &formView{Action: formAction(h.Screen, st, rec), Editing: rec != nil, Token: form.NewToken(), Values: &vals}
	}
	return listPage(c, fiber.StatusOK, h.Screen, st, list, fv)
}

// POST /unidades and POST /unidades/:id
func (h *UnidadHandler) Save(c *fiber.Ctx) error {
	st := screen.ParseState(c)
	var in form.UnidadInput
	if err := c.BodyParser(&in); err != nil {
		applog.Security(c, "validation.fail", map[string]any{"field": "body"})
		return notFound(c, fiber.StatusBadRequest, "Solicitud inválida")
	}

	list := h.Screen.Load(c)
	var rec *domain.UnidadMedida
	if raw := c.Params("id"); raw != "" {
		id, ok := validate.ID(raw)
		if rec = screen.Current(list, id); !ok || rec == nil {
			applog.Info(c, "unidades.save.missing", map[string]any{"id": raw})
			return notFound(c, fiber.StatusNotFound, "La unidad de medida ya no existe")
		}
		st.ID = rec.ID
	}
	st.Modal = screen.ModalForm

	m := form.Open(rec != nil)
	vals := form.NewUnidadValues(rec)
	fv := &formView{Action: formAction(h.Screen, st, rec), Editing: rec != nil, Token: in.Token, Values: &vals}
	if errs := vals.Apply(in); errs != nil {
		applog.Info(c, "unidades.save.invalid", map[string]any{"fields": fieldNames(errs)})
		fv.Errors = errs
		return listPage(c, fiber.StatusUnprocessableEntity, h.Screen, st, list, fv)
	}

	saved, err := h.Submit.Submit(m, in.Token, &vals)
	switch {
	case errors.Is(err, form.ErrDuplicateSubmit):
		applog.Security(c, "unidades.save.duplicate", map[string]any{"token": in.Token})
		return closeForm(c, h.Screen, st)
	case err != nil:
		applog.Error(c, "unidades.save.fail", err, map[string]any{"id": vals.ID})
		fv.Message = "No se pudo guardar la unidad de medida. Intente nuevamente."
		return listPage(c, fiber.StatusBadGateway, h.Screen, st, list, fv)
	}
	applog.Audit(c, "unidades.save", map[string]any{"id": saved.ID, "denominacion": saved.Denominacion, "editing": rec != nil})
	return closeForm(c, h.Screen, st)
}

// POST /unidades/:id/delete
func (h *UnidadHandler) Delete(c *fiber.Ctx) error {
	return deleteRecord(c, h.Screen)
}
