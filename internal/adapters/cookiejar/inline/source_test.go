package inline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmilner/schoology-mcp/internal/domain"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   map[string]string
	}{
		{
			name:   "single cookie",
			header: "SESS123=abc",
			want:   map[string]string{"SESS123": "abc"},
		},
		{
			name:   "multiple cookies with spacing",
			header: "SESS123=abc;  csrftoken=xyz ; theme=dark",
			want: map[string]string{
				"SESS123":   "abc",
				"csrftoken": "xyz",
				"theme":     "dark",
			},
		},
		{
			name:   "value containing equals sign",
			header: "token=a=b=c",
			want:   map[string]string{"token": "a=b=c"},
		},
		{
			name:   "later duplicate wins",
			header: "a=1; b=2; a=3",
			want:   map[string]string{"a": "3", "b": "2"},
		},
		{
			name:   "segment without equals keeps name with empty value",
			header: "flag; a=1",
			want:   map[string]string{"flag": "", "a": "1"},
		},
		{
			name:   "empty segments and trailing semicolon skipped",
			header: "a=1;; b=2;",
			want:   map[string]string{"a": "1", "b": "2"},
		},
		{
			name:   "nameless segment dropped",
			header: "=orphan; a=1",
			want:   map[string]string{"a": "1"},
		},
		{
			name:   "empty header",
			header: "",
			want:   map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Parse(tt.header))
		})
	}
}

func TestSourceCookies(t *testing.T) {
	t.Parallel()

	t.Run("returns parsed cookies", func(t *testing.T) {
		t.Parallel()

		source := NewSource("SESS123=abc; csrftoken=xyz")

		cookies, err := source.Cookies(context.Background())
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"SESS123": "abc", "csrftoken": "xyz"}, cookies)
	})

	t.Run("empty string yields ErrNoCookies", func(t *testing.T) {
		t.Parallel()

		source := NewSource("  ;; ")

		_, err := source.Cookies(context.Background())
		require.ErrorIs(t, err, domain.ErrNoCookies)
	})

	t.Run("honours cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewSource("a=1").Cookies(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}
