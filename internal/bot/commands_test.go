package bot

import "testing"

func TestEchoArgs(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"/echo hello", "hello"},
		{"/echo   hello world  ", "hello world"},
		{"/echo", ""},
		{"/echo ", ""},
		{"/echo@sannubot hi", "hi"},
		{"/echo@sannubot", ""},
	}

	for _, c := range cases {
		if got := echoArgs(c.in); got != c.want {
			t.Errorf("echoArgs(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
