package container_test

import (
	"fmt"

	"github.com/km-arc/modcraft/framework/container"
)

type greeter struct{ greeting string }

func (g *greeter) Greet(name string) string { return g.greeting + ", " + name }

func Example() {
	r := container.New()
	_ = r.Instance("greeting", "Hello")
	_ = r.Transient("greeter", "greeting", func(s string) *greeter { return &greeter{greeting: s} })

	g := container.MustResolve[*greeter](r, "greeter")
	fmt.Println(g.Greet("world"))

	mocked, _ := r.Resolve("greeter", container.Overrides{"greeting": "Hi"})
	fmt.Println(mocked.(*greeter).Greet("world"))
	// Output:
	// Hello, world
	// Hi, world
}

func ExampleResolver_Invoke() {
	r := container.New()
	_ = r.Instance("a", 2)
	_ = r.Instance("b", 3)

	product, _ := r.Invoke([]string{"a", "b"}, func(a, b int) int { return a * b })
	fmt.Println(product)
	// Output: 6
}

func ExampleResolver_Branch() {
	root := container.New()
	_ = root.Instance("env", "root")

	child := root.Branch()
	_ = child.Instance("request", 42)

	fmt.Println(root.Bound("request"), child.Bound("request"), child.Bound("env"))
	// Output: false true true
}
