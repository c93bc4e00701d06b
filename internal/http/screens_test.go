package handlers_test

import (
	"fmt"
	"strings"
	"testing"

	"catalogadmin/internal/apiclient"
	"catalogadmin/internal/domain"
)

func seedInsumos(t *testing.T, base string, n int) {
	t.Helper()
	svc := apiclient.NewService[domain.ArticuloInsumo](apiclient.New(base))
	for i := 0; i < n; i++ {
		_, err := svc.Post(apiclient.ArticuloInsumoPath, domain.ArticuloInsumo{
			Articulo:     domain.Articulo{Denominacion: fmt.Sprintf("Insumo %02d", i), PrecioVenta: 10},
			PrecioCompra: 5, StockActual: 1, StockMaximo: 2,
		})
		if err != nil {
			t.Fatalf("seed insumo %d: %v", i, err)
		}
	}
}

func rows(body string) int { return strings.Count(body, `aria-label="editar"`) }

func TestListPageSizes(t *testing.T) {
	b := startBackend(t)
	seedInsumos(t, b.URL, 9) // 3 seeded + 9 = 12
	app := newAdmin(t, b.URL)

	cases := map[string]int{
		"/insumos":                5,
		"/insumos?size=10":        10,
		"/insumos?size=25":        12,
		"/insumos?size=5&page=2":  2,
		"/insumos?size=10&page=9": 2, // clamped to the last page
		"/insumos?size=7":         5, // unknown size falls back to 5
	}
	for path, want := range cases {
		resp, body := get(t, app, path)
		if resp.StatusCode != 200 {
			t.Fatalf("%s: status %d", path, resp.StatusCode)
		}
		if got := rows(body); got != want {
			t.Fatalf("%s: %d rows, want %d", path, got, want)
		}
	}
}

func TestListHidesSoftDeleted(t *testing.T) {
	b := startBackend(t)
	svc := apiclient.NewService[domain.ArticuloInsumo](apiclient.New(b.URL))
	if err := svc.Delete(apiclient.ArticuloInsumoPath, 2); err != nil {
		t.Fatalf("delete: %v", err)
	}
	// the backend still returns the record, flagged
	all, err := svc.GetAll(apiclient.ArticuloInsumoPath)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	flagged := false
	for _, a := range all {
		if a.ID == 2 && a.Eliminado {
			flagged = true
		}
	}
	if !flagged {
		t.Fatal("expected backend to keep the soft-deleted record")
	}

	app := newAdmin(t, b.URL)
	_, body := get(t, app, "/insumos")
	if strings.Contains(body, "Salsa de tomate") {
		t.Fatal("soft-deleted insumo rendered")
	}
	if !strings.Contains(body, "Queso muzzarella") {
		t.Fatal("active insumo missing")
	}
}

func TestColumnsFallbackText(t *testing.T) {
	b := startBackend(t)
	seedInsumos(t, b.URL, 1)
	app := newAdmin(t, b.URL)
	_, body := get(t, app, "/insumos?size=25")
	if !strings.Contains(body, "Sin unidad de medida") {
		t.Fatal("missing unit placeholder text")
	}
	if !strings.Contains(body, "No hay imágenes disponibles") {
		t.Fatal("missing no-images text")
	}
}

func TestUnitsFetchedOnlyWithFormOpen(t *testing.T) {
	b := startBackend(t)
	app := newAdmin(t, b.URL)

	b.Reset()
	get(t, app, "/insumos")
	for _, c := range b.Calls() {
		if strings.Contains(c, "unidadMedida") {
			t.Fatalf("units fetched without a form: %v", b.Calls())
		}
	}

	b.Reset()
	_, body := get(t, app, "/insumos?modal=form")
	n := 0
	for _, c := range b.Calls() {
		if c == "GET /api/unidadMedida" {
			n++
		}
	}
	if n != 1 {
		t.Fatalf("expected one unit fetch, got %v", b.Calls())
	}
	if !strings.Contains(body, "Añadir insumo") || !strings.Contains(body, `<option value="1"`) {
		t.Fatal("create form with unit options not rendered")
	}
}

func TestEditFormIsPrefilled(t *testing.T) {
	b := startBackend(t)
	app := newAdmin(t, b.URL)
	_, body := get(t, app, "/productos?modal=form&id=4")
	if !strings.Contains(body, "Editar producto") {
		t.Fatal("edit form not open")
	}
	if !strings.Contains(body, `value="Pizza muzzarella"`) {
		t.Fatal("edit form not prefilled")
	}
	if !strings.Contains(body, `action="/productos/4"`) {
		t.Fatal("edit form posts to the wrong target")
	}
	if !strings.Contains(body, `name="nuevaImagen" value=""`) {
		t.Fatal("new image field should start empty")
	}
}

func TestStaleEditIDClosesForm(t *testing.T) {
	b := startBackend(t)
	app := newAdmin(t, b.URL)
	var body string
	entries := captureLogs(t, func() {
		_, body = get(t, app, "/productos?modal=form&id=999")
	})
	if strings.Contains(body, "form-title") {
		t.Fatal("form should stay closed for an unknown record")
	}
	if !hasAction(entries, "productos.edit.missing") {
		t.Fatal("missing productos.edit.missing log")
	}
}

func TestDeleteConfirmation(t *testing.T) {
	b := startBackend(t)
	app := newAdmin(t, b.URL)
	b.Reset()
	_, body := get(t, app, "/unidades?modal=delete&id=4")
	if !strings.Contains(body, "<strong>Gramo</strong>") {
		t.Fatal("confirmation does not name the record")
	}
	if !strings.Contains(body, `action="/unidades/4/delete"`) {
		t.Fatal("confirmation posts to the wrong target")
	}
	if b.count("DELETE") != 0 {
		t.Fatal("opening the confirmation must not delete")
	}

	_, body = get(t, app, "/unidades?modal=delete&id=4&size=10")
	if !strings.Contains(body, `action="/unidades/4/delete?size=10"`) {
		t.Fatal("confirmation target dropped the page size")
	}
}

func TestListFetchFailureRendersEmptyTable(t *testing.T) {
	app := newAdmin(t, deadURL(t))
	var status int
	var body string
	entries := captureLogs(t, func() {
		resp, b := get(t, app, "/productos")
		status, body = resp.StatusCode, b
	})
	if status != 200 {
		t.Fatalf("expected 200, got %d", status)
	}
	if !strings.Contains(body, "No hay registros") {
		t.Fatal("expected empty table")
	}
	if !hasAction(entries, "productos.list.fail") {
		t.Fatal("missing productos.list.fail log")
	}
}

func TestRootRedirectsAndMetrics(t *testing.T) {
	b := startBackend(t)
	app := newAdmin(t, b.URL)
	resp, _ := get(t, app, "/")
	if resp.StatusCode != 302 || resp.Header.Get("Location") != "/productos" {
		t.Fatalf("unexpected root response %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}
	get(t, app, "/productos")
	_, body := get(t, app, "/metrics")
	if !strings.Contains(body, `catalogadmin_backend_requests_total{method="GET",outcome="ok",resource="api/producto"}`) {
		t.Fatalf("backend metrics missing:\n%s", body)
	}
}
