package plotkit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/VatinaCharo/pltutils/src/plotstyle"
)

func TestFormatTitle(t *testing.T) {
	cases := []struct {
		name   string
		dep    string
		indeps []string
		params []Param
		want   string
	}{
		{"one variable", "y", []string{"x"}, nil, "$y$ vs $x$"},
		{"two variables", "y", []string{"x", "t"}, nil, "$y$ vs ($x,~t$)"},
		{"one param", "y", []string{"x"}, []Param{{"k", "0.1"}}, "$y$ vs $x$ when $k=0.1$"},
		{
			"two params keep order", "y", []string{"x", "t"},
			[]Param{{"a", "1"}, {"b", "2"}},
			"$y$ vs ($x,~t$) when $a=1,~b=2$",
		},
		{
			"subscripted names", "y_i", []string{"x", "y_{idx}"},
			[]Param{{"idx", "1,2,3,4,5"}},
			"$y_i$ vs ($x,~y_{idx}$) when $idx=1,2,3,4,5$",
		},
	}
	for _, c := range cases {
		got, err := FormatTitle(c.dep, c.indeps, c.params)
		require.NoError(t, err, c.name)
		require.Equal(t, c.want, got, c.name)
	}
}

func TestFormatTitleBadIndependents(t *testing.T) {
	for _, indeps := range [][]string{nil, {}, {"a", "b", "c"}, {"a", "b", "c", "d"}} {
		_, err := FormatTitle("y", indeps, nil)
		require.Error(t, err, "len %d", len(indeps))
		require.True(t, errors.Is(err, plotstyle.ErrInvalidArgument), "len %d", len(indeps))
	}
}

func TestAnnotate(t *testing.T) {
	p := newTestPlot(t)
	err := p.Annotate("y_i", []string{"x", "y_{idx}"}, []Param{{"idx", "1,2,3,4,5"}}, true)
	require.NoError(t, err)
	require.Equal(t, "$y_i$ vs ($x,~y_{idx}$) when $idx=1,2,3,4,5$", p.title)
	require.Equal(t, "$x,~y_{idx}$", p.xlabel)
	require.Equal(t, "$y_i$", p.ylabel)
	require.True(t, p.legend)
}

func TestAnnotateSingleVariable(t *testing.T) {
	p := newTestPlot(t)
	require.NoError(t, p.Annotate("y", []string{"x"}, nil, false))
	require.Equal(t, "$y$ vs $x$", p.title)
	require.Equal(t, "$x$", p.xlabel)
	require.Equal(t, "$y$", p.ylabel)
	require.False(t, p.legend)
}

func TestAnnotateBadIndependents(t *testing.T) {
	p := newTestPlot(t)
	err := p.Annotate("y", []string{"a", "b", "c"}, nil, true)
	require.True(t, errors.Is(err, plotstyle.ErrInvalidArgument))
	require.Empty(t, p.title, "failed annotate must not touch the title")
	require.Empty(t, p.xlabel)
}
