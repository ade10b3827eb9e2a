package builder_test

import (
	"testing"

	"github.com/katalvlaran/netresil/builder"
	"github.com/stretchr/testify/require"
)

func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"DefaultIDFn_zero", builder.DefaultIDFn, 0, "0", false},
		{"DefaultIDFn_multi", builder.DefaultIDFn, 123, "123", false},
		{"SymbolIDFn_min", builder.SymbolIDFn, 0, "A", false},
		{"SymbolIDFn_max", builder.SymbolIDFn, 25, "Z", false},
		{"SymbolIDFn_neg", builder.SymbolIDFn, -1, "", true},
		{"SymbolIDFn_tooHigh", builder.SymbolIDFn, 26, "", true},
		{"SymbolNumber", builder.SymbolNumberIDFn("n"), 12, "n12", false},
		{"SymbolNumber_neg", builder.SymbolNumberIDFn("n"), -1, "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.shouldPanic {
				require.Panics(t, func() { tc.fn(tc.input) })
				return
			}
			require.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}
