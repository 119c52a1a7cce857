package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecord(t *testing.T, name string, phones ...string) *Record {
	t.Helper()
	r, err := NewRecord(name)
	require.NoError(t, err)
	for _, p := range phones {
		require.NoError(t, r.AddPhone(p))
	}
	return r
}

func TestNewRecord(t *testing.T) {
	r, err := NewRecord("alice")
	require.NoError(t, err)
	assert.Equal(t, Name("alice"), r.Name)
	assert.Empty(t, r.Phones)
	assert.False(t, r.Birthday.IsSet())

	_, err = NewRecord("")
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestRecord_AddPhone(t *testing.T) {
	r := newTestRecord(t, "alice", "1234567890", "1234567890")
	assert.Equal(t, []Phone{"1234567890", "1234567890"}, r.Phones, "duplicates are kept")

	err := r.AddPhone("12345")
	assert.ErrorIs(t, err, ErrInvalidPhone)
	assert.Len(t, r.Phones, 2)
}

func TestRecord_FindPhone(t *testing.T) {
	r := newTestRecord(t, "alice", "1234567890")

	p, ok := r.FindPhone("1234567890")
	assert.True(t, ok)
	assert.Equal(t, Phone("1234567890"), p)

	_, ok = r.FindPhone("0987654321")
	assert.False(t, ok)
}

func TestRecord_RemovePhone(t *testing.T) {
	r := newTestRecord(t, "alice", "1111111111", "2222222222", "1111111111")

	assert.True(t, r.RemovePhone("1111111111"))
	assert.Equal(t, []Phone{"2222222222", "1111111111"}, r.Phones, "only the first match is removed")

	assert.False(t, r.RemovePhone("3333333333"))
	assert.Len(t, r.Phones, 2)
}

func TestRecord_EditPhone(t *testing.T) {
	t.Run("Replaces", func(t *testing.T) {
		r := newTestRecord(t, "alice", "1234567890", "0987654321")
		require.NoError(t, r.EditPhone("1234567890", "1112223334"))

		assert.Equal(t, []Phone{"0987654321", "1112223334"}, r.Phones)
		_, ok := r.FindPhone("1234567890")
		assert.False(t, ok)
	})

	t.Run("OldMissing", func(t *testing.T) {
		r := newTestRecord(t, "alice", "1234567890")
		err := r.EditPhone("5555555555", "1112223334")
		assert.ErrorIs(t, err, ErrPhoneNotFound)
		assert.Contains(t, err.Error(), "5555555555")
		assert.Equal(t, []Phone{"1234567890"}, r.Phones)
	})

	t.Run("NewInvalid", func(t *testing.T) {
		r := newTestRecord(t, "alice", "1234567890")
		err := r.EditPhone("1234567890", "bad")
		assert.ErrorIs(t, err, ErrInvalidPhone)
		assert.Equal(t, []Phone{"1234567890"}, r.Phones, "old phone survives a failed edit")
	})
}

func TestRecord_AddBirthday(t *testing.T) {
	r := newTestRecord(t, "alice")
	require.NoError(t, r.AddBirthday("15.06.1990"))
	assert.Equal(t, Birthday("15.06.1990"), r.Birthday)

	require.NoError(t, r.AddBirthday("16.06.1991"))
	assert.Equal(t, Birthday("16.06.1991"), r.Birthday)

	assert.ErrorIs(t, r.AddBirthday("1991-06-16"), ErrInvalidBirthday)
	assert.Equal(t, Birthday("16.06.1991"), r.Birthday)
}

func TestRecord_String(t *testing.T) {
	r := newTestRecord(t, "alice", "1234567890", "0987654321")
	assert.Equal(t, "Contact name: alice, phones: 1234567890; 0987654321", r.String())

	require.NoError(t, r.AddBirthday("15.06.1990"))
	assert.Equal(t, "Contact name: alice, phones: 1234567890; 0987654321, birthday: 15.06.1990", r.String())

	empty := newTestRecord(t, "bob")
	assert.Equal(t, "Contact name: bob, phones: ", empty.String())
}
