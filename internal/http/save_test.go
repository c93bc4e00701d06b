package handlers_test

import (
	"net/url"
	"strings"
	"testing"

	"catalogadmin/internal/apiclient"
	"catalogadmin/internal/domain"
)

func harina() url.Values {
	return url.Values{
		"token":          {"c0ffee00-0000-4000-8000-000000000001"},
		"denominacion":   {"Harina"},
		"descripcion":    {"Harina 000"},
		"precioCompra":   {"50"},
		"precioVenta":    {"80"},
		"stockActual":    {"100"},
		"stockMaximo":    {"200"},
		"esParaElaborar": {"true"},
		"unidadMedida":   {"1"},
		"nuevaImagen":    {"https://img.test/harina.png"},
	}
}

func insumos(t *testing.T, base string) []domain.ArticuloInsumo {
	t.Helper()
	all, err := apiclient.NewService[domain.ArticuloInsumo](apiclient.New(base)).GetAll(apiclient.ArticuloInsumoPath)
	if err != nil {
		t.Fatalf("list insumos: %v", err)
	}
	return domain.Activos(all)
}

// End to end: create through the admin, read back through the REST backend.
func TestCreateInsumoWithImage(t *testing.T) {
	b := startBackend(t)
	app := newAdmin(t, b.URL)
	tok := csrfToken(t, app)
	before := len(insumos(t, b.URL))

	b.Reset()
	var status int
	var loc string
	entries := captureLogs(t, func() {
		resp, _ := postForm(t, app, "/insumos", tok, harina())
		status, loc = resp.StatusCode, resp.Header.Get("Location")
	})
	if status != 303 || loc != "/insumos" {
		t.Fatalf("expected redirect to /insumos, got %d %q", status, loc)
	}
	if !hasAction(entries, "insumos.save") {
		t.Fatal("missing insumos.save audit log")
	}

	// exactly one image POST, then exactly one entity POST
	var writes []string
	for _, c := range b.Calls() {
		if !strings.HasPrefix(c, "GET ") {
			writes = append(writes, c)
		}
	}
	want := []string{"POST /api/imagenArticulo", "POST /api/articuloInsumo"}
	if strings.Join(writes, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected write sequence %v", writes)
	}

	after := insumos(t, b.URL)
	if len(after) != before+1 {
		t.Fatalf("expected %d insumos, got %d", before+1, len(after))
	}
	var got *domain.ArticuloInsumo
	for i := range after {
		if after[i].Denominacion == "Harina" {
			got = &after[i]
		}
	}
	if got == nil {
		t.Fatal("Harina not found after refetch")
	}
	if got.Eliminado || got.PrecioCompra != 50 || got.PrecioVenta != 80 ||
		got.StockActual != 100 || got.StockMaximo != 200 || !got.EsParaElaborar {
		t.Fatalf("unexpected values %+v", *got)
	}
	if got.UnidadMedida == nil || got.UnidadMedida.ID != 1 || got.UnidadMedida.Denominacion != "Kilogramo" {
		t.Fatalf("unit not stored: %+v", got.UnidadMedida)
	}
	if len(got.Imagenes) != 1 || got.Imagenes[0].URL != "https://img.test/harina.png" {
		t.Fatalf("unexpected images %+v", got.Imagenes)
	}

	_, body := get(t, app, "/insumos?size=25")
	if !strings.Contains(body, "Harina") || !strings.Contains(body, `src="https://img.test/harina.png"`) {
		t.Fatal("refetched list does not show the new insumo")
	}
}

func TestValidationKeepsFormOpen(t *testing.T) {
	b := startBackend(t)
	app := newAdmin(t, b.URL)
	tok := csrfToken(t, app)

	vals := harina()
	vals.Set("denominacion", " ")
	vals.Set("precioVenta", "ochenta")
	b.Reset()
	var status int
	var body string
	entries := captureLogs(t, func() {
		resp, out := postForm(t, app, "/insumos", tok, vals)
		status, body = resp.StatusCode, out
	})
	if status != 422 {
		t.Fatalf("expected 422, got %d", status)
	}
	if !strings.Contains(body, "Añadir insumo") {
		t.Fatal("form modal should stay open")
	}
	if !strings.Contains(body, "Campo requerido") || !strings.Contains(body, "Debe ser un número") {
		t.Fatal("field errors not shown")
	}
	if b.count("POST") != 0 || b.count("PUT") != 0 {
		t.Fatalf("invalid form reached the backend: %v", b.Calls())
	}
	if !hasAction(entries, "insumos.save.invalid") {
		t.Fatal("missing insumos.save.invalid log")
	}
}

func TestOversizedNumberKeepsFormOpen(t *testing.T) {
	b := startBackend(t)
	app := newAdmin(t, b.URL)
	tok := csrfToken(t, app)

	vals := harina()
	vals.Set("precioVenta", "1"+strings.Repeat("0", 400))
	b.Reset()
	resp, body := postForm(t, app, "/insumos", tok, vals)
	if resp.StatusCode != 422 {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, "Añadir insumo") || !strings.Contains(body, "Debe ser un número") {
		t.Fatal("form should stay open with the field error")
	}
	if b.count("POST") != 0 || b.count("PUT") != 0 {
		t.Fatalf("out of range value reached the backend: %v", b.Calls())
	}
}

func TestUnknownUnitIsLoggedAndIgnored(t *testing.T) {
	b := startBackend(t)
	app := newAdmin(t, b.URL)
	tok := csrfToken(t, app)

	vals := harina()
	vals.Set("unidadMedida", "99")
	vals.Del("nuevaImagen")
	var status int
	entries := captureLogs(t, func() {
		resp, _ := postForm(t, app, "/insumos", tok, vals)
		status = resp.StatusCode
	})
	if status != 303 {
		t.Fatalf("expected redirect, got %d", status)
	}
	if !hasAction(entries, "form.unit.notfound") {
		t.Fatal("missing form.unit.notfound log")
	}
	for _, a := range insumos(t, b.URL) {
		if a.Denominacion == "Harina" && a.UnidadMedida != nil {
			t.Fatalf("unit should be left unset, got %+v", a.UnidadMedida)
		}
	}
}

func TestEditUsesPut(t *testing.T) {
	b := startBackend(t)
	app := newAdmin(t, b.URL)
	tok := csrfToken(t, app)

	b.Reset()
	resp, _ := postForm(t, app, "/unidades/3?size=10", tok, url.Values{"denominacion": {"Unidades"}})
	if resp.StatusCode != 303 || resp.Header.Get("Location") != "/unidades?size=10" {
		t.Fatalf("unexpected response %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}
	if b.count("PUT") != 1 || b.count("POST") != 0 {
		t.Fatalf("expected a single PUT, got %v", b.Calls())
	}
	_, body := get(t, app, "/unidades")
	if !strings.Contains(body, "<td>Unidades</td>") {
		t.Fatal("renamed unit missing")
	}
}

func TestSaveUnknownRecord(t *testing.T) {
	b := startBackend(t)
	app := newAdmin(t, b.URL)
	tok := csrfToken(t, app)
	b.Reset()
	resp, _ := postForm(t, app, "/productos/999", tok, url.Values{"denominacion": {"X"}})
	if resp.StatusCode != 404 {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if b.count("PUT") != 0 {
		t.Fatal("unknown record must not be written")
	}
}

func TestBackendFailureKeepsFormOpen(t *testing.T) {
	app := newAdmin(t, deadURL(t))
	tok := csrfToken(t, app)
	var status int
	var body string
	entries := captureLogs(t, func() {
		resp, out := postForm(t, app, "/insumos", tok, harina())
		status, body = resp.StatusCode, out
	})
	if status != 502 {
		t.Fatalf("expected 502, got %d", status)
	}
	if !strings.Contains(body, "No se pudo guardar el insumo") || !strings.Contains(body, "Añadir insumo") {
		t.Fatal("form should stay open with an error message")
	}
	if !hasAction(entries, "insumos.save.fail") {
		t.Fatal("missing insumos.save.fail log")
	}
}

func TestDeleteWithoutIDMakesNoCall(t *testing.T) {
	b := startBackend(t)
	app := newAdmin(t, b.URL)
	tok := csrfToken(t, app)

	for _, path := range []string{"/insumos/0/delete", "/insumos/abc/delete"} {
		b.Reset()
		var status int
		entries := captureLogs(t, func() {
			resp, _ := postForm(t, app, path, tok, nil)
			status = resp.StatusCode
		})
		if status != 303 {
			t.Fatalf("%s: expected redirect, got %d", path, status)
		}
		if b.count("DELETE") != 0 {
			t.Fatalf("%s: unexpected backend delete %v", path, b.Calls())
		}
		if !hasAction(entries, "insumos.delete.noid") {
			t.Fatalf("%s: missing insumos.delete.noid log", path)
		}
	}
}

func TestDeleteSoftDeletes(t *testing.T) {
	b := startBackend(t)
	app := newAdmin(t, b.URL)
	tok := csrfToken(t, app)

	b.Reset()
	resp, _ := postForm(t, app, "/productos/4/delete", tok, nil)
	if resp.StatusCode != 303 || resp.Header.Get("Location") != "/productos" {
		t.Fatalf("unexpected response %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}
	if got := b.Calls(); len(got) != 1 || got[0] != "DELETE /api/producto/4" {
		t.Fatalf("unexpected backend calls %v", got)
	}
	_, body := get(t, app, "/productos")
	if strings.Contains(body, "Pizza muzzarella") {
		t.Fatal("deleted product still listed")
	}
}

func TestDeleteKeepsPaging(t *testing.T) {
	b := startBackend(t)
	app := newAdmin(t, b.URL)
	tok := csrfToken(t, app)

	_, body := get(t, app, "/productos?page=1&size=10&modal=delete&id=4")
	if !strings.Contains(body, `action="/productos/4/delete?page=1&amp;size=10"`) {
		t.Fatal("confirmation target lost the paging state")
	}

	resp, _ := postForm(t, app, "/productos/4/delete?page=1&size=10", tok, nil)
	if resp.StatusCode != 303 || resp.Header.Get("Location") != "/productos?page=1&size=10" {
		t.Fatalf("unexpected response %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}
}
