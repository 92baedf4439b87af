package set

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gevorghari/jcabi/compare"
	"github.com/gevorghari/jcabi/errors"
	"github.com/gevorghari/jcabi/hashing"
)

// account has an identity (id) that the ordering uses and a payload (name)
// that it ignores, so two accounts can be order-equal without being equal.
type account struct {
	id   int
	name string
}

func byID(a, b account) int {
	switch {
	case a.id < b.id:
		return -1
	case a.id > b.id:
		return 1
	default:
		return 0
	}
}

func TestNewImmutableSortedSet(t *testing.T) {
	t.Parallel()

	t.Run("creates empty set", func(t *testing.T) {
		t.Parallel()

		s := NewImmutableSortedSet[int](compare.Natural[int]())
		require.NotNil(t, s)
		assert.Equal(t, 0, s.Size())
		assert.True(t, s.IsEmpty())
	})

	t.Run("panics on nil comparator", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			NewImmutableSortedSet[int](nil)
		})
	})
}

func TestImmutableSortedSetOf(t *testing.T) {
	t.Parallel()

	t.Run("sorts and deduplicates", func(t *testing.T) {
		t.Parallel()

		s := ImmutableSortedSetOf(compare.Natural[int](), 3, 1, 2, 3, 1)
		assert.Equal(t, []int{1, 2, 3}, s.Entries())
		assert.Equal(t, 3, s.Size())
	})

	t.Run("size equals distinct count under the comparator", func(t *testing.T) {
		t.Parallel()

		s := ImmutableSortedSetOf(compare.Natural[int](), 5, 5, 5, 7)
		assert.Equal(t, 2, s.Size())
	})

	t.Run("neutral comparator never deduplicates", func(t *testing.T) {
		t.Parallel()

		s := ImmutableSortedSetOf(compare.Neutral[int](), 1, 1, 1)
		assert.Equal(t, 3, s.Size())
		assert.Equal(t, []int{1, 1, 1}, s.Entries())
	})

	t.Run("first occurrence wins among order-equal inputs", func(t *testing.T) {
		t.Parallel()

		s := ImmutableSortedSetOf(byID, account{1, "alice"}, account{1, "bob"})
		assert.Equal(t, []account{{1, "alice"}}, s.Entries())
	})
}

func TestImmutableSortedSetFrom(t *testing.T) {
	t.Parallel()

	t.Run("copies an arbitrary collection", func(t *testing.T) {
		t.Parallel()

		src := NewTreeSet[int](compare.Natural[int]())
		require.NoError(t, src.AddAll(3, 1, 2))

		s := ImmutableSortedSetFrom[int](src, compare.Natural[int]())
		assert.Equal(t, []int{1, 2, 3}, s.Entries())
	})

	t.Run("reuses the backing slice of a same-type source", func(t *testing.T) {
		t.Parallel()

		src := ImmutableSortedSetOf(compare.Natural[int](), 1, 2, 3)

		// The backing sequence is adopted as-is, without re-sorting under the
		// new comparator. That is the documented caller obligation.
		s := ImmutableSortedSetFrom[int](src, compare.Reverse[int]())
		assert.Equal(t, []int{1, 2, 3}, s.Entries())
	})

	t.Run("panics on nil source", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			ImmutableSortedSetFrom[int](nil, compare.Natural[int]())
		})
	})

	t.Run("panics on nil comparator", func(t *testing.T) {
		t.Parallel()

		src := ImmutableSortedSetOf(compare.Natural[int](), 1)

		assert.Panics(t, func() {
			ImmutableSortedSetFrom[int](src, nil)
		})
	})
}

func TestImmutableSortedSet_With(t *testing.T) {
	t.Parallel()

	t.Run("inserts in sort order", func(t *testing.T) {
		t.Parallel()

		s := NewImmutableSortedSet[int](compare.Natural[int]()).With(3).With(1).With(2)
		assert.Equal(t, []int{1, 2, 3}, s.Entries())
	})

	t.Run("receiver is never modified", func(t *testing.T) {
		t.Parallel()

		base := ImmutableSortedSetOf(compare.Natural[int](), 1, 2)
		grown := base.With(3)

		assert.Equal(t, []int{1, 2}, base.Entries())
		assert.Equal(t, []int{1, 2, 3}, grown.Entries())
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		once := ImmutableSortedSetOf(compare.Natural[int](), 1, 2).With(7)
		twice := once.With(7)

		assert.True(t, once.Equals(twice))
	})

	t.Run("replaces an order-equal element, incoming value wins", func(t *testing.T) {
		t.Parallel()

		s := ImmutableSortedSetOf(byID, account{1, "alice"}, account{2, "carol"})
		out := s.With(account{1, "bob"})

		assert.False(t, out.Contains(account{1, "alice"}))
		assert.True(t, out.Contains(account{1, "bob"}))
		assert.Equal(t, 2, out.Size())
	})

	t.Run("panics on nil value", func(t *testing.T) {
		t.Parallel()

		byValue := func(a, b *int) int {
			return compare.Natural[int]()(*a, *b)
		}
		s := NewImmutableSortedSet[*int](byValue)

		assert.Panics(t, func() {
			s.With(nil)
		})
	})
}

func TestImmutableSortedSet_WithAll(t *testing.T) {
	t.Parallel()

	t.Run("adds a batch in sort order", func(t *testing.T) {
		t.Parallel()

		s := ImmutableSortedSetOf(compare.Natural[int](), 2, 4).WithAll(3, 1, 5)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, s.Entries())
	})

	t.Run("replaces order-equal elements of the base set", func(t *testing.T) {
		t.Parallel()

		s := ImmutableSortedSetOf(byID, account{1, "alice"}, account{2, "bob"})
		out := s.WithAll(account{1, "alice2"}, account{3, "carol"})

		assert.Equal(
			t,
			[]account{{1, "alice2"}, {2, "bob"}, {3, "carol"}},
			out.Entries(),
		)
	})

	t.Run("first of mutually order-equal inputs wins", func(t *testing.T) {
		t.Parallel()

		s := NewImmutableSortedSet[account](byID)
		out := s.WithAll(account{1, "first"}, account{1, "second"})

		assert.Equal(t, []account{{1, "first"}}, out.Entries())
	})

	t.Run("empty batch returns an equal set", func(t *testing.T) {
		t.Parallel()

		s := ImmutableSortedSetOf(compare.Natural[int](), 1, 2)
		assert.True(t, s.Equals(s.WithAll()))
	})
}

func TestImmutableSortedSet_Without(t *testing.T) {
	t.Parallel()

	t.Run("removes an order-equal element", func(t *testing.T) {
		t.Parallel()

		s := ImmutableSortedSetOf(compare.Natural[int](), 5, 1, 3).Without(3)
		assert.Equal(t, []int{1, 5}, s.Entries())
	})

	t.Run("absent value is a no-op", func(t *testing.T) {
		t.Parallel()

		s := ImmutableSortedSetOf(compare.Natural[int](), 1, 2)
		assert.True(t, s.Equals(s.Without(9)))
	})

	t.Run("neutral comparator never matches, so nothing is removed", func(t *testing.T) {
		t.Parallel()

		s := ImmutableSortedSetOf(compare.Neutral[int](), 1, 1)
		assert.Equal(t, 2, s.Without(1).Size())
	})

	t.Run("receiver is never modified", func(t *testing.T) {
		t.Parallel()

		base := ImmutableSortedSetOf(compare.Natural[int](), 1, 2, 3)
		_ = base.Without(2)

		assert.Equal(t, []int{1, 2, 3}, base.Entries())
	})
}

func TestImmutableSortedSet_Contains(t *testing.T) {
	t.Parallel()

	t.Run("uses value equality, not the comparator", func(t *testing.T) {
		t.Parallel()

		s := ImmutableSortedSetOf(byID, account{1, "alice"})

		assert.True(t, s.Contains(account{1, "alice"}))
		// Order-equal but not value-equal.
		assert.False(t, s.Contains(account{1, "bob"}))
	})

	t.Run("finds duplicates kept by the neutral comparator", func(t *testing.T) {
		t.Parallel()

		s := ImmutableSortedSetOf(compare.Neutral[int](), 1, 1)
		assert.True(t, s.Contains(1))
	})

	t.Run("ContainsAll checks every value", func(t *testing.T) {
		t.Parallel()

		s := ImmutableSortedSetOf(compare.Natural[int](), 1, 2, 3)
		assert.True(t, s.ContainsAll(1, 3))
		assert.False(t, s.ContainsAll(1, 4))
		assert.True(t, s.ContainsAll())
	})
}

func TestImmutableSortedSet_FirstLast(t *testing.T) {
	t.Parallel()

	t.Run("natural order", func(t *testing.T) {
		t.Parallel()

		s := ImmutableSortedSetOf(compare.Natural[int](), 2, 1, 3)

		first, err := s.First()
		require.NoError(t, err)
		assert.Equal(t, 1, first)

		last, err := s.Last()
		require.NoError(t, err)
		assert.Equal(t, 3, last)
	})

	t.Run("reverse order", func(t *testing.T) {
		t.Parallel()

		s := ImmutableSortedSetOf(compare.Reverse[int](), 1, 2, 3)

		first, err := s.First()
		require.NoError(t, err)
		assert.Equal(t, 3, first)

		last, err := s.Last()
		require.NoError(t, err)
		assert.Equal(t, 1, last)
	})

	t.Run("empty set", func(t *testing.T) {
		t.Parallel()

		s := NewImmutableSortedSet[int](compare.Natural[int]())

		_, err := s.First()
		require.ErrorIs(t, err, errors.ErrNoSuchElement)

		_, err = s.Last()
		require.ErrorIs(t, err, errors.ErrNoSuchElement)
	})

	t.Run("set emptied by removals", func(t *testing.T) {
		t.Parallel()

		s := ImmutableSortedSetOf(compare.Natural[int](), 1, 2).Without(1).Without(2)

		_, err := s.First()
		require.ErrorIs(t, err, errors.ErrNoSuchElement)
	})
}

func TestImmutableSortedSet_Seq(t *testing.T) {
	t.Parallel()

	t.Run("yields strictly increasing elements", func(t *testing.T) {
		t.Parallel()

		cmp := compare.Natural[int]()
		s := ImmutableSortedSetOf(cmp, 9, 4, 6, 1, 7)

		var prev *int
		for element := range s.Seq() {
			if prev != nil {
				assert.Negative(t, cmp(*prev, element))
			}

			value := element
			prev = &value
		}
	})

	t.Run("is restartable", func(t *testing.T) {
		t.Parallel()

		s := ImmutableSortedSetOf(compare.Natural[int](), 1, 2, 3)

		collect := func() []int {
			out := make([]int, 0, s.Size())
			for element := range s.Seq() {
				out = append(out, element)
			}

			return out
		}

		assert.Equal(t, []int{1, 2, 3}, collect())
		assert.Equal(t, []int{1, 2, 3}, collect())
	})

	t.Run("supports early termination", func(t *testing.T) {
		t.Parallel()

		s := ImmutableSortedSetOf(compare.Natural[int](), 1, 2, 3)

		for range s.Seq() {
			break
		}
	})
}

func TestImmutableSortedSet_Entries(t *testing.T) {
	t.Parallel()

	t.Run("round trips through construction", func(t *testing.T) {
		t.Parallel()

		s := ImmutableSortedSetOf(compare.Natural[int](), 4, 2, 8)
		back := ImmutableSortedSetOf(compare.Natural[int](), s.Entries()...)

		assert.True(t, s.Equals(back))
	})

	t.Run("returned slice is independent", func(t *testing.T) {
		t.Parallel()

		s := ImmutableSortedSetOf(compare.Natural[int](), 1, 2, 3)

		entries := s.Entries()
		entries[0] = 99

		assert.Equal(t, []int{1, 2, 3}, s.Entries())
	})
}

func TestImmutableSortedSet_Views(t *testing.T) {
	t.Parallel()

	t.Run("HeadSet holds elements strictly before the bound", func(t *testing.T) {
		t.Parallel()

		s := ImmutableSortedSetOf(compare.Natural[int](), 1, 2, 3, 4, 5)
		head := s.HeadSet(3)

		assert.Equal(t, []int{1, 2}, head.Entries())
	})

	t.Run("TailSet holds elements at or after the bound", func(t *testing.T) {
		t.Parallel()

		s := ImmutableSortedSetOf(compare.Natural[int](), 1, 2, 3, 4, 5)
		tail := s.TailSet(3)

		assert.Equal(t, []int{3, 4, 5}, tail.Entries())

		first, err := tail.First()
		require.NoError(t, err)
		assert.Equal(t, 3, first)

		last, err := tail.Last()
		require.NoError(t, err)
		assert.Equal(t, 5, last)
	})

	t.Run("views share no storage with the set", func(t *testing.T) {
		t.Parallel()

		s := ImmutableSortedSetOf(compare.Natural[int](), 1, 2, 3)
		head := s.HeadSet(3)

		entries := head.Entries()
		entries[0] = 99

		assert.Equal(t, []int{1, 2}, head.Entries())
		assert.Equal(t, []int{1, 2, 3}, s.Entries())
	})

	t.Run("empty view reports no such element", func(t *testing.T) {
		t.Parallel()

		s := ImmutableSortedSetOf(compare.Natural[int](), 5)
		head := s.HeadSet(1)

		assert.True(t, head.IsEmpty())

		_, err := head.First()
		require.ErrorIs(t, err, errors.ErrNoSuchElement)
	})

	t.Run("SubSet is not implemented", func(t *testing.T) {
		t.Parallel()

		s := ImmutableSortedSetOf(compare.Natural[int](), 1, 2, 3)

		view, err := s.SubSet(1, 3)
		require.ErrorIs(t, err, errors.ErrNotImplemented)
		assert.Nil(t, view)
	})
}

func TestImmutableSortedSet_Equals(t *testing.T) {
	t.Parallel()

	t.Run("equal backing sequences", func(t *testing.T) {
		t.Parallel()

		a := ImmutableSortedSetOf(compare.Natural[int](), 3, 1, 2)
		b := ImmutableSortedSetOf(compare.Natural[int](), 1, 2, 3)

		assert.True(t, a.Equals(b))
		assert.True(t, b.Equals(a))
	})

	t.Run("same elements, different sort order", func(t *testing.T) {
		t.Parallel()

		a := ImmutableSortedSetOf(compare.Natural[int](), 1, 2, 3)
		b := ImmutableSortedSetOf(compare.Reverse[int](), 1, 2, 3)

		assert.False(t, a.Equals(b))
	})

	t.Run("nil other", func(t *testing.T) {
		t.Parallel()

		a := ImmutableSortedSetOf(compare.Natural[int](), 1)
		assert.False(t, a.Equals(nil))
	})
}

func TestImmutableSortedSet_UpdateHash(t *testing.T) {
	t.Parallel()

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()

		a := ImmutableSortedSetOf(compare.Natural[int](), 3, 1, 2)
		b := ImmutableSortedSetOf(compare.Natural[int](), 1, 2, 3)

		hashA, err := hashing.Sha256(a)
		require.NoError(t, err)

		hashB, err := hashing.Sha256(b)
		require.NoError(t, err)

		assert.Equal(t, hashA, hashB)
	})

	t.Run("order-sensitive", func(t *testing.T) {
		t.Parallel()

		a := ImmutableSortedSetOf(compare.Natural[int](), 1, 2, 3)
		b := ImmutableSortedSetOf(compare.Reverse[int](), 1, 2, 3)

		hashA, err := hashing.XXH3(a)
		require.NoError(t, err)

		hashB, err := hashing.XXH3(b)
		require.NoError(t, err)

		assert.NotEqual(t, hashA, hashB)
	})
}

func TestImmutableSortedSet_String(t *testing.T) {
	t.Parallel()

	s := ImmutableSortedSetOf(compare.Natural[int](), 3, 1, 2)
	assert.Equal(t, "1, 2, 3", s.String())

	empty := NewImmutableSortedSet[int](compare.Natural[int]())
	assert.Empty(t, empty.String())
}

func TestImmutableSortedSet_ConcurrentSharing(t *testing.T) {
	t.Parallel()

	s := ImmutableSortedSetOf(compare.Natural[int](), 5, 1, 3, 2, 4)

	var wg sync.WaitGroup

	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 100 {
				assert.True(t, s.Contains(3))
				assert.Equal(t, []int{1, 2, 3, 4, 5}, s.Entries())

				// Deriving new instances never affects the shared one.
				derived := s.With(6).Without(1)
				assert.Equal(t, []int{2, 3, 4, 5, 6}, derived.Entries())

				first, err := s.First()
				require.NoError(t, err)
				assert.Equal(t, 1, first)
			}
		}()
	}

	wg.Wait()
}
