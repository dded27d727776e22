package mockapi

import (
	"errors"
	"fmt"
)

// ErrNotFound 请求的实体不存在
var ErrNotFound = errors.New("not found")

// NotFoundError 携带实体类别与ID的未找到错误，errors.Is(err, ErrNotFound) 成立
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

func notFound(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}
