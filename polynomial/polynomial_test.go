package polynomial_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arnegrau/colp/polynomial"
	"github.com/arnegrau/colp/rational"
)

func TestAddTerm_MergesSortsAndFillsGaps(t *testing.T) {
	p := polynomial.New()
	p.AddTerm(3, rational.FromInt(5), false)
	p.AddTerm(1, rational.FromInt(2), false)
	p.AddTerm(3, rational.FromInt(1), false)

	require.Equal(t, []int{1, 2, 3}, p.Indices())

	c1, err := p.Coeff(1)
	require.NoError(t, err)
	require.True(t, c1.Equal(rational.FromInt(2)))

	c2, err := p.Coeff(2)
	require.NoError(t, err)
	require.True(t, c2.IsZero())

	c3, err := p.Coeff(3)
	require.NoError(t, err)
	require.True(t, c3.Equal(rational.FromInt(6)))
}

func TestAddTerm_MergeOrsBigFlag(t *testing.T) {
	p := polynomial.New()
	p.AddTerm(1, rational.FromInt(1), false)
	p.AddTerm(1, rational.FromInt(1), true)
	require.True(t, p.Big(1))
}

func TestTerm_UnknownIndex(t *testing.T) {
	p := polynomial.New()
	p.AddTerm(1, rational.FromInt(1), false)
	_, err := p.Term(5)
	require.Error(t, err)
	var idxErr *polynomial.IndexError
	require.ErrorAs(t, err, &idxErr)
}

func TestSetCoeff(t *testing.T) {
	p := polynomial.New()
	p.AddTerm(1, rational.FromInt(1), false)
	require.NoError(t, p.SetCoeff(1, rational.FromInt(9)))
	c, _ := p.Coeff(1)
	require.True(t, c.Equal(rational.FromInt(9)))

	require.Error(t, p.SetCoeff(2, rational.FromInt(9)))
}

func TestRemoveTerm_LeavesGap(t *testing.T) {
	p := polynomial.New()
	p.AddTerm(1, rational.FromInt(1), false)
	p.AddTerm(2, rational.FromInt(1), false)
	p.AddTerm(3, rational.FromInt(1), false)
	p.RemoveTerm(2)
	require.Equal(t, []int{1, 3}, p.Indices())
}

func TestClone_Independent(t *testing.T) {
	p := polynomial.New()
	p.AddTerm(1, rational.FromInt(1), false)
	clone := p.Clone()
	clone.AddTerm(2, rational.FromInt(1), false)
	require.Equal(t, 1, p.Size())
	require.Equal(t, 2, clone.Size())
}

func TestLastIdxAndNextIdx(t *testing.T) {
	p := polynomial.New()
	require.Equal(t, 0, p.LastIdx())
	require.Equal(t, 1, p.NextIdx())
	p.AddTerm(1, rational.FromInt(1), false)
	p.AddTerm(2, rational.FromInt(1), false)
	require.Equal(t, 2, p.LastIdx())
	require.Equal(t, 3, p.NextIdx())
}

func TestEqual(t *testing.T) {
	a := polynomial.New()
	a.AddTerm(1, rational.FromInt(2), false)
	b := polynomial.New()
	b.AddTerm(1, rational.FromInt(2), false)
	require.True(t, a.Equal(b))

	b.AddTerm(2, rational.FromInt(1), false)
	require.False(t, a.Equal(b))
}

func TestParse_SimpleSum(t *testing.T) {
	p, rest, ok := polynomial.Parse("2x1+3x2-x3")
	require.True(t, ok)
	require.Empty(t, rest)
	require.Equal(t, []int{1, 2, 3}, p.Indices())

	c1, _ := p.Coeff(1)
	require.True(t, c1.Equal(rational.FromInt(2)))
	c2, _ := p.Coeff(2)
	require.True(t, c2.Equal(rational.FromInt(3)))
	c3, _ := p.Coeff(3)
	require.True(t, c3.Equal(rational.FromInt(-1)))
}

func TestParse_ImplicitCoeffOne(t *testing.T) {
	p, rest, ok := polynomial.Parse("x1+x2")
	require.True(t, ok)
	require.Empty(t, rest)
	c1, _ := p.Coeff(1)
	require.True(t, c1.Equal(rational.One()))
	c2, _ := p.Coeff(2)
	require.True(t, c2.Equal(rational.One()))
}

func TestParse_FractionalCoeff(t *testing.T) {
	p, rest, ok := polynomial.Parse("1/2x1-3/4x2")
	require.True(t, ok)
	require.Empty(t, rest)
	c1, _ := p.Coeff(1)
	half, _ := rational.New(1, 2)
	require.True(t, c1.Equal(half))
	c2, _ := p.Coeff(2)
	threeQuarters, _ := rational.New(-3, 4)
	require.True(t, c2.Equal(threeQuarters))
}

func TestParse_StopsAtRelation(t *testing.T) {
	p, rest, ok := polynomial.Parse("2x1+x2<=10")
	require.True(t, ok)
	require.Equal(t, "<=10", rest)
	require.Equal(t, []int{1, 2}, p.Indices())
}

func TestParse_FillsGapsFromSparseIndices(t *testing.T) {
	p, rest, ok := polynomial.Parse("5x1+7x3")
	require.True(t, ok)
	require.Empty(t, rest)
	require.Equal(t, []int{1, 2, 3}, p.Indices())
	c2, _ := p.Coeff(2)
	require.True(t, c2.IsZero())
}

func TestParse_Invalid(t *testing.T) {
	cases := []string{"", "+", "2x", "x1+", "2+3"}
	for _, s := range cases {
		_, rest, ok := polynomial.Parse(s)
		require.False(t, ok, s)
		require.Equal(t, s, rest, s)
	}
}
