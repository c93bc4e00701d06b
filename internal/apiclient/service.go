package apiclient

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Service is the typed CRUD wrapper for one entity kind.
type Service[T any] struct {
	c *Client
}

func NewService[T any](c *Client) Service[T] { return Service[T]{c: c} }

func (s Service[T]) GetAll(path string) ([]T, error) {
	body, err := s.c.do(fiber.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var out []T
	if len(body) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return out, nil
}

// Post creates v and returns the backend's copy of it.
func (s Service[T]) Post(path string, v T) (T, error) {
	return s.send(fiber.MethodPost, path, v)
}

func (s Service[T]) Put(path string, id int64, v T) (T, error) {
	return s.send(fiber.MethodPut, path+"/"+strconv.FormatInt(id, 10), v)
}

func (s Service[T]) Delete(path string, id int64) error {
	_, err := s.c.do(fiber.MethodDelete, path+"/"+strconv.FormatInt(id, 10), nil)
	return err
}

func (s Service[T]) send(method, path string, v T) (T, error) {
	body, err := s.c.do(method, path, v)
	if err != nil {
		var zero T
		return zero, err
	}
	// some backends answer 201/204 without a body
	if len(body) == 0 {
		return v, nil
	}
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		var zero T
		return zero, fmt.Errorf("decode %s: %w", path, err)
	}
	return out, nil
}
