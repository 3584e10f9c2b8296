package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arnegrau/colp/rational"
	"github.com/arnegrau/colp/simplex"
)

func TestParseGoal_Accepts(t *testing.T) {
	g, ok := simplex.ParseGoal("2x1+3x2=>min")
	require.True(t, ok)
	require.Equal(t, "min", g.Direction())
	require.Equal(t, []int{1, 2}, g.Indices())

	g2, ok := simplex.ParseGoal("x1 => max")
	require.True(t, ok)
	require.Equal(t, "max", g2.Direction())
}

func TestParseGoal_Rejects(t *testing.T) {
	cases := []string{"2x1+3x2", "2x1+3x2=>", "2x1+3x2=>avg", "2x1+3x2->min"}
	for _, s := range cases {
		_, ok := simplex.ParseGoal(s)
		require.False(t, ok, s)
	}
}

func TestGoal_SetDirection_IgnoresUnrecognized(t *testing.T) {
	g, ok := simplex.ParseGoal("x1=>min")
	require.True(t, ok)
	g.SetDirection("sideways")
	require.Equal(t, "min", g.Direction())
	g.SetDirection("max")
	require.Equal(t, "max", g.Direction())
}

func TestParseRestriction_Accepts(t *testing.T) {
	cases := []struct {
		s        string
		rel      string
		right    int64
		indexLen int
	}{
		{"2x1+x2<=10", "<=", 10, 2},
		{"x1>=-3", ">=", -3, 1},
		{"x1+x2==0", "==", 0, 2},
	}
	for _, c := range cases {
		r, ok := simplex.ParseRestriction(c.s)
		require.True(t, ok, c.s)
		require.Equal(t, c.rel, r.Relation())
		require.True(t, r.Right().Equal(rational.FromInt(c.right)))
		require.Len(t, r.Indices(), c.indexLen)
	}
}

func TestParseRestriction_RejectsStrictComparisons(t *testing.T) {
	cases := []string{"x1<10", "x1>10", "x1=10", "x1<<=10", "x1<=", "x1<=abc"}
	for _, s := range cases {
		_, ok := simplex.ParseRestriction(s)
		require.False(t, ok, s)
	}
}

func TestRestriction_SetRelation_IgnoresUnrecognized(t *testing.T) {
	r, ok := simplex.ParseRestriction("x1<=5")
	require.True(t, ok)
	r.SetRelation("~=")
	require.Equal(t, "<=", r.Relation())
	r.SetRelation(">=")
	require.Equal(t, ">=", r.Relation())
}

func TestGoal_String(t *testing.T) {
	g, _ := simplex.ParseGoal("2x1-3x2=>min")
	require.Equal(t, "[Goal: 2{X1} -3{X2} => min]", g.String())
}

func TestRestriction_String(t *testing.T) {
	r, _ := simplex.ParseRestriction("2x1+x2<=16")
	require.Equal(t, "[Restriction: 2{X1} 1{X2} <= 16]", r.String())
}
