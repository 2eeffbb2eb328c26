package indexed_test

import (
	"code.cloudfoundry.org/access/pkg/access/indexed"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Map", func() {
	var subject *indexed.Map[string, int]

	BeforeEach(func() {
		subject = indexed.NewMap[string, int]()
	})

	Describe("#Get", func() {
		It("returns an explicit absent indicator for missing keys", func() {
			value, ok := subject.Get("missing")

			Expect(ok).To(BeFalse())
			Expect(value).To(Equal(0))
		})

		It("returns the stored value", func() {
			subject.Put("a", 1)

			value, ok := subject.Get("a")

			Expect(ok).To(BeTrue())
			Expect(value).To(Equal(1))
		})
	})

	Describe("#Put", func() {
		It("replaces without changing the key's position", func() {
			subject.Put("a", 1)
			subject.Put("b", 2)
			subject.Put("a", 3)

			Expect(subject.Len()).To(Equal(2))
			Expect(subject.KeyAt(0)).To(Equal("a"))
			Expect(subject.ValueAt(0)).To(Equal(3))
		})
	})

	Describe("#Remove", func() {
		It("reports whether the key was present", func() {
			subject.Put("a", 1)

			Expect(subject.Remove("a")).To(BeTrue())
			Expect(subject.Remove("a")).To(BeFalse())
		})

		It("preserves the order of the remaining keys", func() {
			subject.Put("a", 1)
			subject.Put("b", 2)
			subject.Put("c", 3)

			subject.Remove("b")

			Expect(subject.Keys()).To(Equal([]string{"a", "c"}))

			value, ok := subject.Get("c")
			Expect(ok).To(BeTrue())
			Expect(value).To(Equal(3))
		})
	})

	Describe("#GetOrPut", func() {
		It("inserts the default only when the key is absent", func() {
			calls := 0
			newValue := func() int {
				calls++
				return 7
			}

			Expect(subject.GetOrPut("a", newValue)).To(Equal(7))
			Expect(subject.GetOrPut("a", newValue)).To(Equal(7))
			Expect(calls).To(Equal(1))
		})
	})

	Describe("iteration", func() {
		BeforeEach(func() {
			subject.Put("a", 1)
			subject.Put("b", 2)
			subject.Put("c", 3)
		})

		It("visits entries in insertion order", func() {
			var keys []string
			var values []int
			subject.Each(func(i int, key string, value int) {
				Expect(subject.KeyAt(i)).To(Equal(key))
				keys = append(keys, key)
				values = append(values, value)
			})

			Expect(keys).To(Equal([]string{"a", "b", "c"}))
			Expect(values).To(Equal([]int{1, 2, 3}))
		})

		It("supports Any and All predicates", func() {
			Expect(subject.Any(func(_ int, _ string, value int) bool {
				return value == 2
			})).To(BeTrue())
			Expect(subject.Any(func(_ int, _ string, value int) bool {
				return value == 9
			})).To(BeFalse())

			Expect(subject.All(func(_ int, _ string, value int) bool {
				return value > 0
			})).To(BeTrue())
			Expect(subject.All(func(_ int, _ string, value int) bool {
				return value > 1
			})).To(BeFalse())
		})
	})

	Describe("#Copy", func() {
		It("preserves keys and insertion order", func() {
			subject.Put("a", 1)
			subject.Put("b", 2)

			c := subject.Copy(nil)

			Expect(c.Keys()).To(Equal([]string{"a", "b"}))
			Expect(c.ValueAt(1)).To(Equal(2))
		})

		It("applies the transform to every value", func() {
			subject.Put("a", 1)
			subject.Put("b", 2)

			c := subject.Copy(func(v int) int { return v * 10 })

			Expect(c.ValueAt(0)).To(Equal(10))
			Expect(c.ValueAt(1)).To(Equal(20))
		})

		It("is independent of the original", func() {
			subject.Put("a", 1)

			c := subject.Copy(nil)
			c.Put("b", 2)
			c.Put("a", 9)
			subject.Remove("a")

			Expect(subject.Contains("b")).To(BeFalse())
			value, ok := c.Get("a")
			Expect(ok).To(BeTrue())
			Expect(value).To(Equal(9))
		})
	})
})
