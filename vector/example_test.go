package vector

import "fmt"

func ExampleVector_Append() {
	v1 := New("a", "b")
	v2 := v1.Append("c")
	fmt.Println(v1)
	fmt.Println(v2)
	// Output:
	// [a, b]
	// [a, b, c]
}

func ExampleVector_Replace() {
	v := New(10, 20, 30)
	fmt.Println(v.Replace(1, 99))
	fmt.Println(v.Replace(3, 40)) // at Len, appends
	// Output:
	// [10, 99, 30]
	// [10, 20, 30, 40]
}

func ExampleTransient() {
	tr := Empty[int]().Transient()
	for i := 1; i <= 5; i++ {
		tr.Append(i * i)
	}
	fmt.Println(tr.ToImmutable())
	// Output:
	// [1, 4, 9, 16, 25]
}
