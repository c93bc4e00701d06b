package form

import (
	"fmt"

	"catalogadmin/internal/domain"
	applog "catalogadmin/internal/log"
	"catalogadmin/internal/metrics"
)

// Values is the form state of one entity kind, as seen by Submitter.
type Values[T any] interface {
	EntityID() int64
	NuevaImagenURL() string
	AddImagen(domain.ImagenArticulo)
	Payload() T
}

type ImageCreator interface {
	Post(path string, img domain.ImagenArticulo) (domain.ImagenArticulo, error)
}

type EntitySaver[T any] interface {
	Post(path string, v T) (T, error)
	Put(path string, id int64, v T) (T, error)
}

// Submitter runs the create-or-update sequence for one screen:
// optional image creation, then exactly one entity POST or PUT.
type Submitter[T any] struct {
	Screen    string
	Path      string
	ImagePath string
	Images    ImageCreator
	Items     EntitySaver[T]
	Guard     *Guard
	Metrics   *metrics.Collector
}

// Submit stops at the first failing step and leaves m open. An image created
// before a failed save is not removed.
func (s *Submitter[T]) Submit(m *Modal, token string, v Values[T]) (T, error) {
	var zero T
	if s.Guard != nil {
		if !s.Guard.Begin(token) {
			s.count(m, "duplicate")
			return zero, ErrDuplicateSubmit
		}
		defer s.Guard.End(token)
	}
	if err := m.begin(); err != nil {
		return zero, err
	}

	var created *domain.ImagenArticulo
	if url := v.NuevaImagenURL(); url != "" {
		img, err := s.Images.Post(s.ImagePath, domain.ImagenArticulo{ID: 0, Eliminado: false, URL: url})
		if err != nil {
			m.fail()
			s.count(m, "fail")
			return zero, fmt.Errorf("crear imagen: %w", err)
		}
		v.AddImagen(img)
		created = &img
	}

	var (
		saved T
		err   error
	)
	if m.Editing() {
		saved, err = s.Items.Put(s.Path, v.EntityID(), v.Payload())
	} else {
		saved, err = s.Items.Post(s.Path, v.Payload())
	}
	if err != nil {
		if created != nil {
			applog.Error(nil, "form.image.orphaned", err, map[string]any{
				"screen": s.Screen, "imagen_id": created.ID, "url": created.URL,
			})
		}
		m.fail()
		s.count(m, "fail")
		return zero, fmt.Errorf("guardar %s: %w", s.Screen, err)
	}
	m.succeed()
	s.count(m, "ok")
	return saved, nil
}

func (s *Submitter[T]) count(m *Modal, outcome string) {
	if s.Metrics == nil {
		return
	}
	mode := "create"
	if m.Editing() {
		mode = "edit"
	}
	s.Metrics.FormSubmits.WithLabelValues(s.Screen, mode, outcome).Inc()
}
