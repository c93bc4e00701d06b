package apiclient

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"catalogadmin/internal/metrics"
)

// Resource paths, relative to the configured base URL.
const (
	ProductoPath       = "api/producto"
	ArticuloInsumoPath = "api/articuloInsumo"
	UnidadMedidaPath   = "api/unidadMedida"
	ImagenPath         = "api/imagenArticulo"
)

// Error is returned for transport failures (Status == 0) and non-2xx responses.
type Error struct {
	Method string
	Path   string
	Status int
	Body   string
	Err    error
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

// StatusOf reports the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Status
	}
	return 0
}

// Client performs one round trip per call against the catalog backend.
// It does not retry, cache or deduplicate.
type Client struct {
	baseURL string
	http    *fiber.Client
	timeout time.Duration
	metrics *metrics.Collector
}

type Option func(*Client)

// WithTimeout bounds each call; zero (the default) waits indefinitely.
func WithTimeout(d time.Duration) Option { return func(c *Client) { c.timeout = d } }

func WithMetrics(m *metrics.Collector) Option { return func(c *Client) { c.metrics = m } }

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &fiber.Client{UserAgent: "catalogadmin"},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) agent(method, url string) *fiber.Agent {
	switch method {
	case fiber.MethodPost:
		return c.http.Post(url)
	case fiber.MethodPut:
		return c.http.Put(url)
	case fiber.MethodDelete:
		return c.http.Delete(url)
	default:
		return c.http.Get(url)
	}
}

func (c *Client) do(method, path string, in any) ([]byte, error) {
	start := time.Now()
	a := c.agent(method, c.baseURL+path)
	if in != nil {
		a.JSON(in)
	}
	if c.timeout > 0 {
		a.Timeout(c.timeout)
	}
	code, body, errs := a.Bytes()

	outcome := "ok"
	var err error
	switch {
	case len(errs) > 0:
		outcome = "transport"
		err = &Error{Method: method, Path: path, Err: errors.Join(errs...)}
	case code < 200 || code > 299:
		outcome = "status"
		err = &Error{Method: method, Path: path, Status: code, Body: truncate(string(body), 256)}
	}
	c.observe(resourceOf(path), method, outcome, time.Since(start))
	return body, err
}

func (c *Client) observe(resource, method, outcome string, d time.Duration) {
	if c.metrics == nil {
		return
	}
	c.metrics.BackendRequests.WithLabelValues(resource, method, outcome).Inc()
	c.metrics.BackendDuration.WithLabelValues(resource, method).Observe(d.Seconds())
}

// resourceOf strips a trailing "/{id}" so metric labels stay bounded.
func resourceOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			if _, err := strconv.ParseInt(path[i+1:], 10, 64); err == nil {
				return path[:i]
			}
			break
		}
	}
	return path
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
