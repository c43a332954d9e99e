package inputs

import (
	"context"
	"testing"

	uuid "github.com/satori/go.uuid"
	should "github.com/stretchr/testify/assert"
	must "github.com/stretchr/testify/require"
)

func TestDecodeAndValidateString_ID(t *testing.T) {
	type tcExpected struct {
		err error
	}

	type testCase struct {
		name  string
		given string
		exp   tcExpected
	}

	tests := []testCase{
		{
			name:  "valid",
			given: "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		},
		{
			name: "empty",
			exp:  tcExpected{err: ErrIDDecodeEmpty},
		},
		{
			name:  "not_uuid",
			given: "session",
			exp:   tcExpected{err: ErrIDDecodeNotUUID},
		},
		{
			name:  "nil_uuid",
			given: uuid.Nil.String(),
			exp:   tcExpected{err: ErrIDNil},
		},
	}

	for i := range tests {
		tc := tests[i]

		t.Run(tc.name, func(t *testing.T) {
			id := new(ID)

			err := DecodeAndValidateString(context.Background(), id, tc.given)
			if tc.exp.err != nil {
				should.ErrorIs(t, err, tc.exp.err)
				return
			}

			must.NoError(t, err)
			should.Equal(t, tc.given, id.UUID().String())
			should.Equal(t, tc.given, id.String())
		})
	}
}
