// SPDX-License-Identifier: MIT

package builder_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/bacon/builder"
	"github.com/katalvlaran/bacon/records"
)

// ExampleBuild builds a three-actor graph and lists Tom Hanks' co-stars.
func ExampleBuild() {
	g, st, err := builder.Build(context.Background(), records.FromPairs(
		[2]string{"Kevin Bacon", "Apollo 13"},
		[2]string{"Tom Hanks", "Apollo 13"},
		[2]string{"Tom Hanks", "Big"},
		[2]string{"Elizabeth Perkins", "Big"},
	))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("credits:", st.Credits, "edges:", g.EdgeCount())
	nb, _ := g.Neighbors("tom hanks")
	for _, n := range nb {
		fmt.Printf("%s (%s)\n", n.Name, n.Movie)
	}
	// Output:
	// credits: 4 edges: 4
	// Elizabeth Perkins (Big)
	// Kevin Bacon (Apollo 13)
}

// ExampleBuilder_Cast inspects a movie's cast before edges are built.
func ExampleBuilder_Cast() {
	b := builder.NewBuilder()
	_ = b.AddAppearance("Kevin Bacon", "Footloose")
	_ = b.AddAppearance("Lori Singer", "Footloose")

	cast, _ := b.Cast("Footloose")
	fmt.Println(cast)
	// Output:
	// [Kevin Bacon Lori Singer]
}
