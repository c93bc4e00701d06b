package form

import (
	"errors"
	"strconv"
	"strings"

	"catalogadmin/internal/domain"
	applog "catalogadmin/internal/log"
)

var ErrUnitNotFound = errors.New("unidad de medida no encontrada")

// SelectUnit resolves a submitted unit id to the full unit from units.
// An empty selection keeps current silently; an id with no match keeps
// current, logs form.unit.notfound and returns ErrUnitNotFound.
func SelectUnit(units []domain.UnidadMedida, raw string, current domain.UnidadMedida) (domain.UnidadMedida, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return current, nil
	}
	if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if u, ok := domain.FindByID(units, id); ok {
			return u, nil
		}
	}
	applog.Error(nil, "form.unit.notfound", ErrUnitNotFound, map[string]any{"unidad_id": raw})
	return current, ErrUnitNotFound
}
