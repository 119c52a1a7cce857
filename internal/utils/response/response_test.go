package response

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aanand-mishra/contact-book/internal/types"
)

func TestOK(t *testing.T) {
	r := OK("Contact added.")
	assert.Equal(t, StatusOK, r.Status)
	assert.False(t, r.Failed())
	assert.Equal(t, "Contact added.", r.String())
}

func TestGeneralError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"WrongArgumentCount", types.ErrWrongArgumentCount, MsgWrongArgumentCount},
		{"WrappedWrongArgumentCount", fmt.Errorf("add: %w", types.ErrWrongArgumentCount), MsgWrongArgumentCount},
		{"RecordNotFound", fmt.Errorf("%w: alice", types.ErrRecordNotFound), MsgRecordNotFound},
		{"InvalidPhone", types.ErrInvalidPhone, "The phone number must be a string of 10 digits"},
		{"InvalidBirthday", types.ErrInvalidBirthday, "Birthday must be in format DD.MM.YYYY"},
		{"PhoneNotFound", fmt.Errorf("%w: 5555555555", types.ErrPhoneNotFound), "Phone number not found: 5555555555"},
		{"Other", errors.New("disk on fire"), "disk on fire"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := GeneralError(tc.err)
			assert.Equal(t, StatusError, r.Status)
			assert.True(t, r.Failed())
			assert.Equal(t, tc.want, r.Message)
		})
	}
}
