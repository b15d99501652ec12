// Package domain defines document domain errors.
package domain

import "errors"

// ErrInvalidType is returned when a document type is not license, rc or puc.
var ErrInvalidType = errors.New("invalid document type")
