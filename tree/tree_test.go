package tree_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/google/btree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g-m-twostay/go-fundamentals/tree"
)

var rg = rand.New(rand.NewSource(0))

const (
	tAddN        = 4000
	tAddValRange = 8000
)

func inOrder(u *tree.Tree) []int {
	var s []int
	u.WalkInOrder(func(v int) {
		s = append(s, v)
	})
	return s
}

func TestEmpty(t *testing.T) {
	u := tree.New()
	assert.True(t, u.Empty())
	assert.Equal(t, 0, u.Size())
	assert.Equal(t, 0, u.Height())
	assert.False(t, u.Contains(0))
	assert.False(t, u.Remove(0))
	_, ok := u.Root()
	assert.False(t, ok)
	_, ok = u.Minimum()
	assert.False(t, ok)
	_, ok = u.Maximum()
	assert.False(t, ok)
	assert.Empty(t, inOrder(u))
	assert.False(t, u.Corrupt())
}

func TestInsert(t *testing.T) {
	u := tree.New()
	assert.True(t, u.Insert(5))
	assert.Equal(t, 1, u.Height())
	assert.False(t, u.Insert(5))
	assert.True(t, u.Insert(3))
	assert.True(t, u.Insert(8))
	assert.Equal(t, 3, u.Size())
	assert.Equal(t, 2, u.Height())

	content := map[int]struct{}{3: {}, 5: {}, 8: {}}
	for range tAddN {
		v := rg.Intn(tAddValRange)
		_, in := content[v]
		require.Equal(t, !in, u.Insert(v), "insert %d", v)
		content[v] = struct{}{}
	}
	assert.Equal(t, len(content), u.Size())
	for v := range content {
		assert.True(t, u.Contains(v))
	}
	for v := -10; v < 0; v++ {
		assert.False(t, u.Contains(v))
	}
	s := inOrder(u)
	assert.True(t, slices.IsSorted(s))
	assert.Len(t, slices.Compact(slices.Clone(s)), len(s))
	assert.False(t, u.Corrupt())
}

func TestHeight_Degenerate(t *testing.T) {
	u := tree.New()
	for i := range 50 {
		u.Insert(i)
	}
	assert.Equal(t, 50, u.Height())
	assert.Equal(t, 50, u.Size())
}

func TestRemove_TwoChildren(t *testing.T) {
	u := tree.From([]int{5, 3, 8, 1, 4, 7, 9})
	require.True(t, u.Remove(5))
	assert.Equal(t, []int{1, 3, 4, 7, 8, 9}, inOrder(u))
	r, ok := u.Root()
	require.True(t, ok)
	assert.Equal(t, 7, r)
	assert.False(t, u.Contains(5))
	assert.False(t, u.Corrupt())
}

func TestRemove_Cases(t *testing.T) {
	cases := []struct {
		name   string
		insert []int
		remove int
		root   int
		want   []int
	}{
		{"Leaf", []int{5, 3, 8}, 3, 5, []int{5, 8}},
		{"OnlyRight", []int{5, 8, 9}, 5, 8, []int{8, 9}},
		{"OnlyLeft", []int{5, 3, 1}, 5, 3, []int{1, 3}},
		{"SuccessorIsRightChild", []int{5, 3, 8, 9}, 5, 8, []int{3, 8, 9}},
		{"SuccessorHasRightSubtree", []int{5, 3, 10, 7, 8, 12}, 5, 7, []int{3, 7, 8, 10, 12}},
		{"Inner", []int{10, 5, 15, 3, 7, 6}, 5, 10, []int{3, 6, 7, 10, 15}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := tree.From(tc.insert)
			require.True(t, u.Remove(tc.remove))
			assert.False(t, u.Remove(tc.remove))
			r, _ := u.Root()
			assert.Equal(t, tc.root, r)
			assert.Equal(t, tc.want, inOrder(u))
			assert.False(t, u.Corrupt())
		})
	}

	u := tree.From([]int{1})
	require.True(t, u.Remove(1))
	assert.True(t, u.Empty())
}

func TestRemove_Random(t *testing.T) {
	u := tree.New()
	content := make(map[int]struct{})
	a := make([]int, tAddN)
	for i := range a {
		a[i] = rg.Intn(tAddValRange)
		u.Insert(a[i])
		content[a[i]] = struct{}{}
	}
	for _, v := range a[:tAddN/2] {
		_, in := content[v]
		require.Equal(t, in, u.Remove(v))
		require.False(t, u.Remove(v), "removed %d twice", v)
		delete(content, v)
	}
	assert.Equal(t, len(content), u.Size())
	for v := range content {
		assert.True(t, u.Contains(v))
	}
	for _, v := range a[:tAddN/2] {
		assert.False(t, u.Contains(v))
	}
	assert.True(t, slices.IsSorted(inOrder(u)))
	assert.False(t, u.Corrupt())
}

// Random operation sequences must agree with google/btree.
func TestTree_MatchesBTree(t *testing.T) {
	u := tree.New()
	ref := btree.NewOrderedG[int](8)
	for range 5000 {
		v := rg.Intn(500)
		switch rg.Intn(3) {
		case 0:
			_, replaced := ref.ReplaceOrInsert(v)
			require.Equal(t, !replaced, u.Insert(v))
		case 1:
			_, found := ref.Delete(v)
			require.Equal(t, found, u.Remove(v))
		default:
			require.Equal(t, ref.Has(v), u.Contains(v))
		}
		require.Equal(t, ref.Len(), u.Size())
	}
	var want []int
	ref.Ascend(func(v int) bool {
		want = append(want, v)
		return true
	})
	assert.Equal(t, want, inOrder(u))
	if lo, ok := ref.Min(); ok {
		got, _ := u.Minimum()
		assert.Equal(t, lo, got)
	}
	if hi, ok := ref.Max(); ok {
		got, _ := u.Maximum()
		assert.Equal(t, hi, got)
	}
}

func TestWalks(t *testing.T) {
	u := tree.From([]int{5, 3, 8, 1, 4, 7, 9})
	var pre, post []int
	u.WalkPreOrder(func(v int) { pre = append(pre, v) })
	u.WalkPostOrder(func(v int) { post = append(post, v) })
	assert.Equal(t, []int{5, 3, 1, 4, 8, 7, 9}, pre)
	assert.Equal(t, []int{1, 4, 3, 7, 9, 8, 5}, post)
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, inOrder(u))

	sum := 0
	u.WalkInOrder(func(v int) { sum += v })
	assert.Equal(t, 37, sum)
}

func TestIterators_EarlyStop(t *testing.T) {
	u := tree.From([]int{5, 3, 8, 1, 4, 7, 9})
	assert.Equal(t, []int{5, 3, 1}, take(u.PreOrder(), 3))
	assert.Equal(t, []int{1, 3, 4}, take(u.InOrder(), 3))
	assert.Equal(t, []int{1, 4, 3}, take(u.PostOrder(), 3))
	assert.Equal(t, []int{5, 3, 1, 4, 8, 7, 9}, slices.Collect(u.PreOrder()))
}

func take(seq func(func(int) bool), n int) []int {
	var s []int
	for v := range seq {
		if len(s) == n {
			break
		}
		s = append(s, v)
	}
	return s
}

func TestBuildSorted(t *testing.T) {
	s := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	u, err := tree.BuildSorted(s)
	require.NoError(t, err)
	assert.Equal(t, s, inOrder(u))
	assert.Equal(t, 4, u.Height())
	r, _ := u.Root()
	assert.Equal(t, 7, r)
	assert.False(t, u.Corrupt())

	_, err = tree.BuildSorted([]int{1, 3, 2})
	assert.ErrorIs(t, err, tree.ErrUnsortedInput)
	_, err = tree.BuildSorted([]int{1, 1})
	assert.ErrorIs(t, err, tree.ErrUnsortedInput)

	u, err = tree.BuildSorted(nil)
	require.NoError(t, err)
	assert.True(t, u.Empty())
}

func TestValuesString(t *testing.T) {
	u := tree.From([]int{2, 1, 3, 2})
	assert.Equal(t, []interface{}{1, 2, 3}, u.Values())
	assert.Equal(t, "Tree\n1, 2, 3", u.String())
	u.Clear()
	assert.True(t, u.Empty())
	assert.Equal(t, []interface{}{}, u.Values())
}
