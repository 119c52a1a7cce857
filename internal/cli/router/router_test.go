package router

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aanand-mishra/contact-book/internal/utils/response"
)

func TestParseInput(t *testing.T) {
	cases := []struct {
		line    string
		command string
		args    []string
	}{
		{"hello", "hello", []string{}},
		{"  ADD  Alice   1234567890 \n", "add", []string{"Alice", "1234567890"}},
		{"Add-Birthday bob 01.02.1990", "add-birthday", []string{"bob", "01.02.1990"}},
		{"\tphone\tBob", "phone", []string{"Bob"}},
		{"", "", nil},
		{"   \n", "", nil},
	}
	for _, c := range cases {
		command, args := ParseInput(c.line)
		assert.Equal(t, c.command, command, "ParseInput(%q) command", c.line)
		assert.Equal(t, c.args, args, "ParseInput(%q) args", c.line)
	}
}

func TestRouter_Dispatch(t *testing.T) {
	r := New()

	var got []string
	r.Handle("Echo", func(args []string) response.Response {
		got = args
		return response.OK("echoed")
	})

	resp := r.Dispatch("echo", []string{"A", "b"})
	assert.Equal(t, response.OK("echoed"), resp)
	assert.Equal(t, []string{"A", "b"}, got)

	resp = r.Dispatch("foo", nil)
	assert.True(t, resp.Failed())
	assert.Equal(t, MsgInvalidCommand, resp.Message)

	resp = r.Dispatch("", nil)
	assert.Equal(t, MsgInvalidCommand, resp.Message)
}
