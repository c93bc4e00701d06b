// Package screen owns the per-request state of one admin list page: the
// fetched records, which overlay is open and which record it targets.
package screen

import (
	"errors"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"catalogadmin/internal/domain"
	applog "catalogadmin/internal/log"
	"catalogadmin/internal/table"
	"catalogadmin/internal/validate"
)

var ErrNoID = errors.New("registro sin id")

// Store is the slice of the REST wrapper a screen needs.
type Store[T any] interface {
	GetAll(path string) ([]T, error)
	Delete(path string, id int64) error
}

type Screen[T domain.Entity] struct {
	Name    string // route segment and log prefix
	Title   string
	Path    string // REST resource
	Store   Store[T]
	Columns []table.Column[T]
}

func (s *Screen[T]) Route() string { return "/" + s.Name }

// Load fetches every record and drops the soft-deleted ones. A failed fetch
// is logged and yields an empty list.
func (s *Screen[T]) Load(c *fiber.Ctx) []T {
	all, err := s.Store.GetAll(s.Path)
	if err != nil {
		applog.Error(c, s.Name+".list.fail", err, nil)
		return []T{}
	}
	return domain.Activos(all)
}

// Current returns the record with id from list, or nil.
func Current[T domain.Entity](list []T, id int64) *T {
	if id <= 0 {
		return nil
	}
	if rec, ok := domain.FindByID(list, id); ok {
		return &rec
	}
	return nil
}

// Table renders the requested page of list with edit and delete links.
func (s *Screen[T]) Table(list []T, st State) table.View {
	t := table.New(list, s.Columns)
	t.SetPageSize(st.Size)
	t.SetPage(st.Page)
	at := st
	at.Page = t.Page()
	t.Actions = func(r T) (string, string) {
		if r.GetID() == 0 {
			return "", ""
		}
		return s.Route() + at.With(ModalForm, r.GetID()), s.Route() + at.With(ModalDelete, r.GetID())
	}
	return t.View()
}

// Delete removes the record with id through the store. Ids <= 0 never reach
// the network.
func (s *Screen[T]) Delete(c *fiber.Ctx, id int64) error {
	if id <= 0 {
		applog.Error(c, s.Name+".delete.noid", ErrNoID, nil)
		return ErrNoID
	}
	if err := s.Store.Delete(s.Path, id); err != nil {
		applog.Error(c, s.Name+".delete.fail", err, map[string]any{"id": id})
		return err
	}
	applog.Audit(c, s.Name+".delete", map[string]any{"id": id})
	return nil
}

// Confirmation is what the delete overlay shows. Building it does no I/O.
type Confirmation struct {
	Nombre string
	Action string
	Cancel string
}

func (s *Screen[T]) Confirm(rec *T, st State) Confirmation {
	back := st
	back.Modal, back.ID = "", 0
	q := back.With("", 0)
	cf := Confirmation{Action: s.Route() + "/0/delete" + q, Cancel: s.Route() + q}
	if rec != nil {
		r := *rec
		cf.Nombre = r.DisplayName()
		cf.Action = s.Route() + "/" + strconv.FormatInt(r.GetID(), 10) + "/delete" + q
	}
	return cf
}

const (
	ModalForm   = "form"
	ModalDelete = "delete"
)

// State is the list page's query string.
type State struct {
	Page  int
	Size  int
	Modal string
	ID    int64
}

func ParseState(c *fiber.Ctx) State {
	st := State{
		Page: validate.Page(c.Query("page")),
		Size: validate.Size(c.Query("size"), table.PageSizes, table.DefaultPageSize),
	}
	if m, ok := validate.Modal(c.Query("modal")); ok {
		st.Modal = m
	}
	st.ID, _ = validate.ID(c.Query("id"))
	return st
}

func (st State) FormOpen() bool   { return st.Modal == ModalForm }
func (st State) DeleteOpen() bool { return st.Modal == ModalDelete }

// With returns the query string for st with the given overlay and target.
func (st State) With(modal string, id int64) string {
	q := url.Values{}
	if st.Page > 0 {
		q.Set("page", strconv.Itoa(st.Page))
	}
	if st.Size != table.DefaultPageSize && st.Size != 0 {
		q.Set("size", strconv.Itoa(st.Size))
	}
	if modal != "" {
		q.Set("modal", modal)
	}
	if id > 0 {
		q.Set("id", strconv.FormatInt(id, 10))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}
