package repos_test

import (
	"errors"
	"testing"

	"pricebook/internal/repos"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want repos.Category
	}{
		{"nil error", nil, ""},
		{"access denied", errors.New("SQLITE_AUTH: access denied"), repos.CategoryAuth},
		{"auth failed", errors.New("Authentication Failed for user"), repos.CategoryAuth},
		{"redis noauth", errors.New("NOAUTH Authentication required"), repos.CategoryAuth},
		{"missing table", errors.New("SQL logic error: no such table: products"), repos.CategorySchema},
		{"missing column", errors.New("no such column: price_pence"), repos.CategorySchema},
		{"refused", errors.New("dial tcp 127.0.0.1:6379: connection refused"), repos.CategoryNetwork},
		{"dns", errors.New("dial tcp: lookup db.internal: no such host"), repos.CategoryNetwork},
		{"timeout", errors.New("read tcp: i/o timeout"), repos.CategoryNetwork},
		{"locked", errors.New("database is locked (5) (SQLITE_BUSY)"), repos.CategoryNetwork},
		{"unknown", errors.New("some random failure"), repos.CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repos.Classify(tt.err)
			if tt.err == nil {
				if got != nil {
					t.Fatalf("Classify(nil) = %v, want nil", got)
				}
				return
			}
			if got.Category != tt.want {
				t.Errorf("Classify() category = %q, want %q", got.Category, tt.want)
			}
			if !errors.Is(got, tt.err) {
				t.Error("Unwrap() should return the original error")
			}
			if got.Message == "" {
				t.Error("classified errors need a human-readable message")
			}
		})
	}
}
