package builder_test

import (
	"fmt"

	"github.com/katalvlaran/molmatch/builder"
)

// ExampleBuildMolecule assembles benzene-like and methyl-like components.
func ExampleBuildMolecule() {
	m, err := builder.BuildMolecule(
		[]builder.BuilderOption{builder.WithElements(builder.ConstantElement("C"))},
		builder.Cycle(6),
		builder.Path(1),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("atoms=%d bonds=%d\n", m.NumAtoms(), m.NumBonds())
	// Output:
	// atoms=7 bonds=6
}
