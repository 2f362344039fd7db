package poet_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphpoet/poet"
)

// ExamplePoet_Poem composes the canonical poem.
func ExamplePoet_Poem() {
	p, err := poet.NewFromText("This is a test of the Mugar Omni Theater sound system.")
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(p.Poem("Test the system."))

	// Output:
	// Test of the system.
}

// ExamplePoet_Bridge looks up one bridge directly.
func ExamplePoet_Bridge() {
	p, _ := poet.NewFromText("to be or not to be")

	word, score, ok := p.Bridge("Not", "Be")
	fmt.Println(word, score, ok)

	_, _, ok = p.Bridge("be", "be")
	fmt.Println(ok)

	// Output:
	// to 3 true
	// false
}

// ExamplePoet_nurseryRhyme shows weights accumulating over repeated phrases
// and the bridges they produce. It mirrors examples/poet_bridges.
func ExamplePoet_nurseryRhyme() {
	p, err := poet.NewFromText(`the cat sat on the mat
the dog sat on the log
the dog saw the cat
and the cat ran`)
	if err != nil {
		fmt.Println(err)
		return
	}

	g := p.Graph()
	fmt.Printf("corpus: %d words, %d vertices, %d edges\n", p.CorpusWords(), g.VertexCount(), g.EdgeCount())
	fmt.Println("the ->", g.Targets("the"))

	for _, pair := range [][2]string{{"sat", "the"}, {"saw", "cat"}, {"cat", "mat"}} {
		word, score, ok := p.Bridge(pair[0], pair[1])
		if !ok {
			fmt.Printf("bridge(%s, %s): none\n", pair[0], pair[1])
			continue
		}
		fmt.Printf("bridge(%s, %s): %s (score %d)\n", pair[0], pair[1], word, score)
	}

	for _, in := range []string{"Dog sat the mat", "Saw cat"} {
		fmt.Printf("%s  =>  %s\n", in, p.Poem(in))
	}

	// Output:
	// corpus: 21 words, 10 vertices, 15 edges
	// the -> [{the cat 3} {the mat 1} {the dog 2} {the log 1}]
	// bridge(sat, the): on (score 4)
	// bridge(saw, cat): the (score 4)
	// bridge(cat, mat): none
	// Dog sat the mat  =>  Dog sat on the mat
	// Saw cat  =>  Saw the cat
}

// TestPoem_ConcurrentReaders checks a built Poet serves parallel queries.
func TestPoem_ConcurrentReaders(t *testing.T) {
	p := mustPoet(t, corpusMugar)

	const readers = 32
	results := make([]string, readers)
	var wg sync.WaitGroup
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func(i int) {
			defer wg.Done()
			results[i] = p.Poem("Test the system.")
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		require.Equal(t, "Test of the system.", got)
	}
}
