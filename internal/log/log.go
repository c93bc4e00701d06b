package log

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// stdSink forwards to whatever writer the std logger currently uses, so
// LOG_FILE tee-ing in main and log capture in tests both keep working.
type stdSink struct{}

func (stdSink) Write(p []byte) (int, error) { return log.Writer().Write(p) }

var logger = newLogger()

func newLogger() zerolog.Logger {
	zerolog.TimestampFieldName = "ts"
	zerolog.ErrorFieldName = "err"
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	return zerolog.New(stdSink{}).With().Timestamp().Logger()
}

func write(e *zerolog.Event, c *fiber.Ctx, action string, err error, fields map[string]any) {
	if c != nil {
		e = e.Str("ip", c.IP()).
			Str("method", c.Method()).
			Str("path", c.Path())
		if st := c.Response().StatusCode(); st != 0 {
			e = e.Int("status", st)
		}
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			e = e.Str("req_id", rid)
		}
	}
	e = e.Str("action", action)
	if err != nil {
		e = e.Err(err)
	}
	if len(fields) > 0 {
		e = e.Interface("fields", fields)
	}
	e.Send()
}

func Info(c *fiber.Ctx, action string, fields map[string]any) {
	write(logger.Info(), c, action, nil, fields)
}

func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	write(logger.Log().Str("level", "audit"), c, action, nil, fields)
}

func Security(c *fiber.Ctx, action string, fields map[string]any) {
	write(logger.Warn(), c, action, nil, fields)
}

func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	write(logger.Error(), c, action, err, fields)
}
