package addressbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/contact-book/internal/types"
)

func newRecord(t *testing.T, name string, phones ...string) *types.Record {
	t.Helper()
	r, err := types.NewRecord(name)
	require.NoError(t, err)
	for _, p := range phones {
		require.NoError(t, r.AddPhone(p))
	}
	return r
}

func names(records []*types.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Name.String())
	}
	return out
}

func TestAddressBook_AddAndFind(t *testing.T) {
	book := New()
	alice := newRecord(t, "alice", "1234567890")
	book.AddRecord(alice)

	got, ok := book.Find("alice")
	require.True(t, ok)
	assert.Same(t, alice, got)

	_, ok = book.Find("Alice")
	assert.False(t, ok, "names are case-sensitive")
	_, ok = book.Find("bob")
	assert.False(t, ok)
}

func TestAddressBook_OverwriteKeepsPosition(t *testing.T) {
	book := New()
	book.AddRecord(newRecord(t, "alice", "1111111111"))
	book.AddRecord(newRecord(t, "bob", "2222222222"))

	replacement := newRecord(t, "alice", "3333333333")
	book.AddRecord(replacement)

	assert.Equal(t, 2, book.Len())
	assert.Equal(t, []string{"alice", "bob"}, names(book.Records()))
	got, _ := book.Find("alice")
	assert.Same(t, replacement, got)
}

func TestAddressBook_Delete(t *testing.T) {
	book := New()
	book.AddRecord(newRecord(t, "alice"))
	book.AddRecord(newRecord(t, "bob"))
	book.AddRecord(newRecord(t, "carol"))

	require.NoError(t, book.Delete("bob"))
	assert.Equal(t, []string{"alice", "carol"}, names(book.Records()))
	_, ok := book.Find("bob")
	assert.False(t, ok)

	err := book.Delete("bob")
	assert.ErrorIs(t, err, types.ErrRecordNotFound)
}

func TestAddressBook_String(t *testing.T) {
	book := New()
	assert.Equal(t, "The address book is empty.", book.String())

	book.AddRecord(newRecord(t, "alice", "1234567890"))
	bob := newRecord(t, "bob", "0987654321")
	require.NoError(t, bob.AddBirthday("01.02.1990"))
	book.AddRecord(bob)

	assert.Equal(t,
		"Contact name: alice, phones: 1234567890\n"+
			"Contact name: bob, phones: 0987654321, birthday: 01.02.1990",
		book.String())
}
