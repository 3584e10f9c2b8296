package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arnegrau/colp/polynomial"
	"github.com/arnegrau/colp/rational"
	"github.com/arnegrau/colp/simplex"
)

func basisValue(basis []polynomial.Term, idx int) rational.Rational {
	for _, t := range basis {
		if t.Idx == idx {
			return t.Coeff
		}
	}
	return rational.Zero()
}

func buildSolver(t *testing.T, goal string, restrs []string) *simplex.Solver {
	t.Helper()
	s := simplex.NewSolver()
	require.True(t, s.SetGoal(goal), goal)
	for _, r := range restrs {
		require.True(t, s.AddRestriction(r), r)
	}
	return s
}

func TestSolve_SeedScenarios(t *testing.T) {
	cases := []struct {
		name      string
		goal      string
		restrs    []string
		wantValid bool
		wantW     rational.Rational
		wantBasis map[int]rational.Rational
	}{
		{
			name:      "min_x1_plus_x2",
			goal:      "x1+x2=>min",
			restrs:    []string{"2x1+4x2<=16", "-4x1+2x2<=8", "x1+3x2>=9"},
			wantValid: true,
			wantW:     rational.FromInt(3),
			wantBasis: map[int]rational.Rational{1: rational.FromInt(0), 2: rational.FromInt(3)},
		},
		{
			name:      "min_7x1_minus_2x2",
			goal:      "7x1-2x2=>min",
			restrs:    []string{"5x1-2x2<=3", "x1+x2>=1", "2x1+x2<=4"},
			wantValid: true,
			wantW:     rational.FromInt(-8),
			wantBasis: map[int]rational.Rational{1: rational.FromInt(0), 2: rational.FromInt(4)},
		},
		{
			name:      "min_2x1_plus_3x2",
			goal:      "2x1+3x2=>min",
			restrs:    []string{"2x1+x2<=10", "-2x1+3x2<=6", "2x1+4x2>=8"},
			wantValid: true,
			wantW:     rational.FromInt(6),
			wantBasis: map[int]rational.Rational{1: rational.FromInt(0), 2: rational.FromInt(2)},
		},
		{
			name:      "max_infeasible",
			goal:      "2x1+7x2=>max",
			restrs:    []string{"12x1+13x2<=17", "3x1+x2<=5", "x1+4x2>=6"},
			wantValid: false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := buildSolver(t, c.goal, c.restrs)
			steps := s.Solve()
			require.NotEmpty(t, steps)
			last := steps[len(steps)-1]
			require.Equal(t, c.wantValid, last.Valid())
			if !c.wantValid {
				return
			}
			require.True(t, last.W.Equal(c.wantW), "w = %s, want %s", last.W, c.wantW)
			for idx, want := range c.wantBasis {
				got := basisValue(last.Basis, idx)
				require.Truef(t, got.Equal(want), "basis[%d] = %s, want %s", idx, got, want)
			}
		})
	}
}

func TestSolve_FractionalOptimum(t *testing.T) {
	s := buildSolver(t, "4x1+x2=>max", []string{"2x1-x2<=12", "x1+3x2<=18", "2x1+5x2>=10"})
	steps := s.Solve()
	last := steps[len(steps)-1]
	require.True(t, last.Valid())

	wantW, _ := rational.New(240, 7)
	require.Truef(t, last.W.Equal(wantW), "w = %s", last.W)

	wantX1, _ := rational.New(54, 7)
	wantX2, _ := rational.New(24, 7)
	require.True(t, basisValue(last.Basis, 1).Equal(wantX1))
	require.True(t, basisValue(last.Basis, 2).Equal(wantX2))
}

func TestInvertToDual_StrongDuality(t *testing.T) {
	cases := []struct {
		name   string
		goal   string
		restrs []string
	}{
		{"min_x1_plus_x2", "x1+x2=>min", []string{"2x1+4x2<=16", "-4x1+2x2<=8", "x1+3x2>=9"}},
		{"min_7x1_minus_2x2", "7x1-2x2=>min", []string{"5x1-2x2<=3", "x1+x2>=1", "2x1+x2<=4"}},
		{"min_2x1_plus_3x2", "2x1+3x2=>min", []string{"2x1+x2<=10", "-2x1+3x2<=6", "2x1+4x2>=8"}},
		{"max_4x1_plus_x2", "4x1+x2=>max", []string{"2x1-x2<=12", "x1+3x2<=18", "2x1+5x2>=10"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			primal := buildSolver(t, c.goal, c.restrs)
			primalSteps := primal.Solve()
			primalLast := primalSteps[len(primalSteps)-1]
			require.True(t, primalLast.Valid())

			dual := buildSolver(t, c.goal, c.restrs)
			dualSteps := dual.InvertToDual().Solve()
			dualLast := dualSteps[len(dualSteps)-1]
			require.True(t, dualLast.Valid())

			require.Truef(t, primalLast.W.Equal(dualLast.W),
				"primal w=%s dual w=%s", primalLast.W, dualLast.W)
		})
	}
}

func TestSolve_GuardsAgainstMissingGoal(t *testing.T) {
	s := simplex.NewSolver()
	require.Nil(t, s.Solve())
	require.False(t, s.AddRestriction("x1<=1"))
}

func TestSetGoal_RejectsAfterRestrictionAdded(t *testing.T) {
	s := buildSolver(t, "x1=>min", []string{"x1<=1"})
	require.False(t, s.SetGoal("x1+x2=>max"))
}
