package list_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/mgnsk/nodelist/list"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

func TestListSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "list suite")
}

var _ = Describe("random operation sequences", func() {
	var (
		l     *list.List[int]
		model []int
		rng   *rand.Rand
	)

	BeforeEach(func() {
		l = list.New[int](list.WithCapacity(16))
		model = []int{}
		rng = rand.New(rand.NewSource(GinkgoRandomSeed()))
	})

	AfterEach(func() {
		l.Clear()
		Expect(l.Verify()).To(Succeed())
	})

	Specify("links stay consistent after every operation", func() {
		for i := 0; i < 5000; i++ {
			v := rng.Int()

			switch rng.Intn(6) {
			case 0:
				Expect(l.PushFront(v)).To(Succeed())
				model = slices.Insert(model, 0, v)

			case 1:
				Expect(l.PushBack(v)).To(Succeed())
				model = append(model, v)

			case 2:
				got, ok := l.PopFront()
				Expect(ok).To(Equal(len(model) > 0))
				if ok {
					Expect(got).To(Equal(model[0]))
					model = slices.Delete(model, 0, 1)
				}

			case 3:
				got, ok := l.PopBack()
				Expect(ok).To(Equal(len(model) > 0))
				if ok {
					Expect(got).To(Equal(model[len(model)-1]))
					model = slices.Delete(model, len(model)-1, len(model))
				}

			case 4:
				index := rng.Intn(len(model) + 1)
				Expect(l.PushAt(v, index)).To(Succeed())
				model = slices.Insert(model, index, v)

			case 5:
				index := rng.Intn(len(model) + 1)
				got, ok, err := l.PopAt(index)
				Expect(err).NotTo(HaveOccurred())
				Expect(ok).To(Equal(len(model) > 0))
				if ok {
					if index == len(model) {
						index--
					}
					Expect(got).To(Equal(model[index]))
					model = slices.Delete(model, index, index+1)
				}
			}

			Expect(l.Verify()).To(Succeed())
			Expect(l.Len()).To(Equal(len(model)))
			Expect(l.Values()).To(Equal(model))
		}
	})

	Specify("out of bounds indexes leave the list unchanged", func() {
		for i := 0; i < 8; i++ {
			Expect(l.PushBack(i)).To(Succeed())
			model = append(model, i)
		}

		for i := 0; i < 100; i++ {
			index := len(model) + 1 + rng.Intn(10)

			Expect(l.PushAt(-1, index)).To(MatchError(list.ErrIndexOutOfBounds))

			_, _, err := l.PopAt(index)
			Expect(err).To(MatchError(list.ErrIndexOutOfBounds))
		}

		Expect(l.Verify()).To(Succeed())
		Expect(l.Values()).To(Equal(model))
	})
})

var _ = DescribeTable("push at then pop at the same index",
	func(size, index int) {
		var l list.List[int]

		want := make([]int, 0, size)
		for i := 0; i < size; i++ {
			Expect(l.PushBack(i)).To(Succeed())
			want = append(want, i)
		}

		Expect(l.PushAt(-1, index)).To(Succeed())
		Expect(l.Verify()).To(Succeed())

		got, ok, err := l.PopAt(index)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(got).To(Equal(-1))

		Expect(l.Verify()).To(Succeed())
		Expect(l.Values()).To(Equal(want))
	},
	Entry("empty list", 0, 0),
	Entry("front of one", 1, 0),
	Entry("back of one", 1, 1),
	Entry("front", 5, 0),
	Entry("second", 5, 1),
	Entry("middle", 5, 2),
	Entry("before back", 5, 4),
	Entry("back", 5, 5),
)
