package main

import (
	"errors"

	"github.com/mgnsk/nodelist/list"
)

func main() {
	l := list.New[string](
		list.WithCapacity(8),
		list.WithMaxLen(8),
	)
	defer l.Clear()

	// Pushes only fail once the list holds WithMaxLen elements.
	if err := l.PushBack("b"); err != nil {
		panic(err)
	}

	if err := l.PushFront("a"); err != nil {
		panic(err)
	}

	if err := l.PushAt("c", 2); err != nil {
		panic(err)
	}

	// Indexes past the end are reported, not fatal.
	if _, _, err := l.PopAt(10); !errors.Is(err, list.ErrIndexOutOfBounds) {
		panic("expected an out of bounds error")
	}

	// Prints [a, b, c].
	println(l.String())
}
