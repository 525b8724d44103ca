package sorting_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mgnsk/nodelist/sorting"
	. "github.com/onsi/gomega"
)

var sorters = map[string]func([]int) []int{
	"bubble": func(s []int) []int {
		sorting.BubbleSort(s)
		return s
	},
	"merge": sorting.MergeSort[int],
	"quick": func(s []int) []int {
		sorting.QuickSort(s)
		return s
	},
}

func TestSortExamples(t *testing.T) {
	g := NewWithT(t)

	s := []int{4, 6, 9, 12, 3, 13}
	sorting.BubbleSort(s)
	g.Expect(s).To(Equal([]int{3, 4, 6, 9, 12, 13}))

	g.Expect(sorting.MergeSort([]int{12, 9, 4})).To(Equal([]int{4, 9, 12}))

	s = []int{4, 6, 1, 8, 12, 9, 17, 23, 7, 2}
	sorting.QuickSort(s)
	g.Expect(s).To(Equal([]int{1, 2, 4, 6, 7, 8, 9, 12, 17, 23}))

	words := []string{"pear", "apple", "fig"}
	sorting.QuickSort(words)
	g.Expect(words).To(Equal([]string{"apple", "fig", "pear"}))
}

func TestSortProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for name, sort := range sorters {
		t.Run(name, func(t *testing.T) {
			g := NewWithT(t)

			g.Expect(sort([]int{})).To(BeEmpty())
			g.Expect(sort([]int{7})).To(Equal([]int{7}))

			for n := 0; n < 200; n++ {
				input := make([]int, rng.Intn(64))
				for i := range input {
					input[i] = rng.Intn(20) - 10
				}

				want := slices.Clone(input)
				slices.Sort(want)

				got := sort(slices.Clone(input))
				if diff := cmp.Diff(want, got); diff != "" {
					t.Fatalf("sorting %v (-want +got):\n%s", input, diff)
				}
			}
		})
	}
}

func TestMergeSortKeepsInput(t *testing.T) {
	g := NewWithT(t)

	input := []int{3, 1, 2}
	g.Expect(sorting.MergeSort(input)).To(Equal([]int{1, 2, 3}))
	g.Expect(input).To(Equal([]int{3, 1, 2}))
}

func TestPivot(t *testing.T) {
	g := NewWithT(t)

	s := []int{4, 6, 1, 8, 2, 7, 9, 5, 13, 8}
	p := sorting.Pivot(s)
	g.Expect(p).To(Equal(2))
	expectPartitioned(g, s, p)

	g.Expect(sorting.Pivot([]int{})).To(Equal(0))

	rng := rand.New(rand.NewSource(2))
	for n := 0; n < 200; n++ {
		s := make([]int, 1+rng.Intn(32))
		for i := range s {
			s[i] = rng.Intn(10)
		}

		pivot := s[0]
		p := sorting.Pivot(s)

		g.Expect(s[p]).To(Equal(pivot))
		expectPartitioned(g, s, p)
	}
}

func expectPartitioned(g *WithT, s []int, p int) {
	for _, v := range s[:p] {
		g.Expect(v).To(BeNumerically("<=", s[p]))
	}
	for _, v := range s[p:] {
		g.Expect(v).To(BeNumerically(">=", s[p]))
	}
}
