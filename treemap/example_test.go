package treemap

import "fmt"

func ExampleMap_Assoc() {
	prices := Of(
		Entry[string, int]{"apple", 3},
		Entry[string, int]{"pear", 5})
	discounted := prices.Assoc("pear", 4).Assoc("plum", 2)
	fmt.Println(prices)
	fmt.Println(discounted)
	// Output:
	// {apple=3, pear=5}
	// {apple=3, pear=4, plum=2}
}

func ExampleMap_Without() {
	m := Of(
		Entry[int, string]{1, "one"},
		Entry[int, string]{2, "two"},
		Entry[int, string]{3, "three"})
	fmt.Println(m.Without(2))
	fmt.Println(m.Len())
	// Output:
	// {1=one, 3=three}
	// 3
}

func ExampleMap_Entry() {
	m := Of(Entry[string, int]{"here", 1})
	fmt.Println(m.Entry("here"))
	fmt.Println(m.Entry("gone"))
	// Output:
	// Some(here=1)
	// None
}

func ExampleMap_SubMap() {
	m := Of(
		Entry[int, string]{1, "a"},
		Entry[int, string]{2, "b"},
		Entry[int, string]{3, "c"},
		Entry[int, string]{4, "d"})
	fmt.Println(m.SubMap(2, 4))
	// Output:
	// {2=b, 3=c}
}
