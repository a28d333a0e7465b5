package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/ledgertree/internal/config"
	"github.com/joshuapare/ledgertree/pkg/table"
)

func TestFit(t *testing.T) {
	require.Equal(t, "abc   ", fit("abc", 6, table.AlignLeft))
	require.Equal(t, "   abc", fit("abc", 6, table.AlignRight))
	require.Equal(t, " abc  ", fit("abc", 6, table.AlignCenter))
	require.Equal(t, "abcd…", fit("abcdefgh", 5, table.AlignLeft))
	require.Empty(t, fit("abc", 0, table.AlignLeft))
}

func TestRowList_Widths(t *testing.T) {
	m := NewModel("test.json", config.Default())

	// name takes the rest: 100 - (12+2) - (14+2) - (14+2)
	require.Equal(t, []int{54, 12, 14, 14}, m.rows.widths(100))
	require.Equal(t, minNameWidth, m.rows.widths(20)[0])
}
