package rest

import (
	"encoding/json"

	"github.com/heartmarshall/notes-api/internal/domain"
)

// optional decodes a JSON member into a domain.Optional, keeping the
// difference between an absent member and an explicit null.
// encoding/json only calls UnmarshalJSON for members that are present.
type optional[T any] domain.Optional[T]

func (o *optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

func (o optional[T]) toDomain() domain.Optional[T] {
	return domain.Optional[T](o)
}
