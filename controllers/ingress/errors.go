package ingress

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"k8s.io/apimachinery/pkg/types"
)

// DecodeError indicates the spec payload could not be turned into a routing spec.
// It is never worth retrying with the same payload.
type DecodeError struct {
	// Payload is the original spec text
	Payload []byte
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode spec: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// FieldErrors returns per-field validation failures, if the payload was parsed
// but failed validation. Syntax errors yield nil.
func (e *DecodeError) FieldErrors() validator.ValidationErrors {
	var verrs validator.ValidationErrors
	if errors.As(e.Err, &verrs) {
		return verrs
	}
	return nil
}

// StoreError indicates the Kubernetes API rejected a read or write of the Ingress.
type StoreError struct {
	// Op is one of get, create or update
	Op  string
	Key types.NamespacedName
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s ingress %s: %v", e.Op, e.Key, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
