package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenFromRequest(t *testing.T) {
	cases := []struct {
		name    string
		cookie  string
		header  string
		want    string
		wantErr error
	}{
		{name: "cookie", cookie: "c0", want: "c0"},
		{name: "cookie wins over header", cookie: "c0", header: "Bearer h0", want: "c0"},
		{name: "bearer header", header: "Bearer h0", want: "h0"},
		{name: "nothing", wantErr: ErrMissingToken},
		{name: "basic scheme", header: "Basic abc", wantErr: ErrMalformedHeader},
		{name: "empty bearer", header: "Bearer ", wantErr: ErrMalformedHeader},
		{name: "extra parts", header: "Bearer a b", wantErr: ErrMalformedHeader},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.cookie != "" {
				r.AddCookie(&http.Cookie{Name: TokenCookie, Value: tc.cookie})
			}
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			got, err := TokenFromRequest(r)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, got)
		})
	}
}
