package arpeggio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAlphabet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc    string
		give    string
		wantErr error
		wantMsg string
	}{
		{
			desc:    "empty",
			wantErr: ErrInvalidConfiguration,
			wantMsg: "must have at least two items, got 0",
		},
		{
			desc:    "single",
			give:    "a",
			wantErr: ErrInvalidConfiguration,
			wantMsg: "must have at least two items, got 1",
		},
		{
			desc: "good",
			give: "0123456789",
		},
		{
			desc:    "pair of duplicates",
			give:    "aa",
			wantErr: ErrDuplicateSymbol,
			wantMsg: "alphabet has duplicates: ['a']",
		},
		{
			desc:    "dupes",
			give:    "asdffghhjjkl",
			wantErr: ErrDuplicateSymbol,
			wantMsg: "alphabet has duplicates: ['f' 'h' 'j']",
		},
		{
			desc:    "dupes reported once",
			give:    "zzzyxyx",
			wantErr: ErrDuplicateSymbol,
			wantMsg: "alphabet has duplicates: ['z' 'y' 'x']",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			alpha, err := NewAlphabet([]rune(tt.give)...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, []rune(tt.give), alpha.Symbols())
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestNewAlphabetStrings(t *testing.T) {
	t.Parallel()

	_, err := NewAlphabet("x", "yz", "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateSymbol)
	assert.Contains(t, err.Error(), `["x"]`)

	_, err = NewAlphabet(1, 2, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[2]")
}

func TestAlphabetIndex(t *testing.T) {
	t.Parallel()

	alpha, err := NewAlphabet("do", "re", "mi")
	require.NoError(t, err)

	assert.Equal(t, 3, alpha.Len())
	assert.Equal(t, "re", alpha.Symbol(1))

	for i, s := range []string{"do", "re", "mi"} {
		got, ok := alpha.Index(s)
		if assert.True(t, ok, "symbol %q", s) {
			assert.Equal(t, i, got, "symbol %q", s)
		}
	}

	_, ok := alpha.Index("fa")
	assert.False(t, ok, "symbol not in alphabet")
}

func TestAlphabetSymbolsCopy(t *testing.T) {
	t.Parallel()

	give := []rune("abc")
	alpha, err := NewAlphabet(give...)
	require.NoError(t, err)

	give[0] = 'z'
	symbols := alpha.Symbols()
	symbols[1] = 'z'

	assert.Equal(t, []rune("abc"), alpha.Symbols(),
		"alphabet must not share memory with callers")
}
