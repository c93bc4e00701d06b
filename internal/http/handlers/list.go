package handlers

import (
	"errors"
	"sort"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"catalogadmin/internal/apiclient"
	"catalogadmin/internal/domain"
	"catalogadmin/internal/form"
	applog "catalogadmin/internal/log"
	"catalogadmin/internal/screen"
	"catalogadmin/internal/validate"
)

// formView is what the entity form templates read.
type formView struct {
	Action  string
	Cancel  string
	Editing bool
	Token   string
	Values  any
	Errors  form.ValidationErrors
	Message string
	Units   []domain.UnidadMedida
}

// listPage renders a screen's list with whichever overlay st asks for.
func listPage[T domain.Entity](c *fiber.Ctx, status int, s *screen.Screen[T], st screen.State, list []T, fv *formView) error {
	data := fiber.Map{
		"Title":   s.Title,
		"Screen":  s.Name,
		"Route":   s.Route(),
		"State":   st,
		"Table":   s.Table(list, st),
		"NewHref": s.Route() + st.With(screen.ModalForm, 0),
	}
	if st.DeleteOpen() {
		data["Confirm"] = s.Confirm(screen.Current(list, st.ID), st)
	}
	if fv != nil {
		back := st
		back.Modal, back.ID = "", 0
		fv.Cancel = s.Route() + back.With("", 0)
		data["Form"] = fv
	}
	c.Status(status)
	return render(c, s.Name, data)
}

// editTarget resolves the record the form should edit. A stale id closes
// the overlay instead of silently turning into a create.
func editTarget[T domain.Entity](c *fiber.Ctx, s *screen.Screen[T], st *screen.State, list []T) *T {
	if !st.FormOpen() || st.ID == 0 {
		return nil
	}
	rec := screen.Current(list, st.ID)
	if rec == nil {
		applog.Info(c, s.Name+".edit.missing", map[string]any{"id": st.ID})
		st.Modal, st.ID = "", 0
	}
	return rec
}

// formAction is the POST target of the form for rec.
func formAction[T domain.Entity](s *screen.Screen[T], st screen.State, rec *T) string {
	back := st
	back.Modal, back.ID = "", 0
	if rec == nil {
		return s.Route() + back.With("", 0)
	}
	return s.Route() + "/" + itoa((*rec).GetID()) + back.With("", 0)
}

// closeForm is the redirect after a successful save or delete: the overlay
// closes and the list is fetched again.
func closeForm[T domain.Entity](c *fiber.Ctx, s *screen.Screen[T], st screen.State) error {
	st.Modal, st.ID = "", 0
	return c.Redirect(s.Route()+st.With("", 0), fiber.StatusSeeOther)
}

func fieldNames(errs form.ValidationErrors) []string {
	out := make([]string, 0, len(errs))
	for k := range errs {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// deleteRecord serves POST /<screen>/:id/delete. Unparsable ids reach the
// screen as 0, which it refuses without a network call.
func deleteRecord[T domain.Entity](c *fiber.Ctx, s *screen.Screen[T]) error {
	st := screen.ParseState(c)
	id, _ := validate.ID(c.Params("id"))
	err := s.Delete(c, id)
	if err != nil && !errors.Is(err, screen.ErrNoID) {
		// keep the confirmation open
		st.Modal, st.ID = screen.ModalDelete, id
		return c.Redirect(s.Route()+st.With(st.Modal, st.ID), fiber.StatusSeeOther)
	}
	return closeForm(c, s, st)
}

type unitLister interface {
	GetAll(path string) ([]domain.UnidadMedida, error)
}

// loadUnits fetches the unit options for a form. Only called while a form is
// open, once per request.
func loadUnits(c *fiber.Ctx, src unitLister) []domain.UnidadMedida {
	all, err := src.GetAll(apiclient.UnidadMedidaPath)
	if err != nil {
		applog.Error(c, "unidades.list.fail", err, nil)
		return nil
	}
	return domain.Activos(all)
}

func itoa(n int64) string { return strconv.FormatInt(n, 10) }
