package handlers

import (
	html "github.com/gofiber/template/html/v2"

	"catalogadmin/internal/table"
)

// NewViews loads the admin templates from dir with the helpers they use.
func NewViews(dir string) *html.Engine {
	engine := html.New(dir, ".html")
	// plain decimal notation so the value parses back on submit
	engine.AddFunc("num", table.Decimal)
	return engine
}
