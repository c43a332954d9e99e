package inputs

import (
	"context"
	"errors"

	"github.com/brave-intl/visacheckout/libs/validators"
	uuid "github.com/satori/go.uuid"
)

var (
	// ErrIDDecodeNotUUID - an error that tells caller the id is not a uuid
	ErrIDDecodeNotUUID = errors.New("failed to decode id: id is not a uuid")
	// ErrIDDecodeEmpty - an error that tells caller the id is empty and should not be
	ErrIDDecodeEmpty = errors.New("failed to decode id: id cannot be empty")
	// ErrIDNil - the id decoded to the nil uuid
	ErrIDNil = errors.New("invalid id: id cannot be the nil uuid")
)

// ID - a generic ID type that can be used for common id based things
type ID struct {
	uuid *uuid.UUID
	raw  string
}

// UUID - return the UUID representation of the ID
func (id *ID) UUID() *uuid.UUID {
	return id.uuid
}

// String - return the String representation of the ID
func (id *ID) String() string {
	return id.raw
}

// Validate - session ids minted by the relay are never the nil uuid
func (id *ID) Validate(ctx context.Context) error {
	if id.uuid == nil || !validators.IsRequiredUUID(*id.uuid) {
		return ErrIDNil
	}
	return nil
}

// Decode - take raw []byte input and populate id with the ID
func (id *ID) Decode(ctx context.Context, input []byte) error {
	if len(input) == 0 {
		return ErrIDDecodeEmpty
	}
	id.raw = string(input)

	if !validators.IsUUID(id.raw) {
		return ErrIDDecodeNotUUID
	}
	parsed := uuid.FromStringOrNil(id.raw)
	id.uuid = &parsed
	return nil
}
