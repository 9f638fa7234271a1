package ingest_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/graphty/ingest"
)

func ExampleDecode() {
	doc, err := ingest.Decode(strings.NewReader(`
edges:
  - {source: a, target: b, weight: 2}
  - {source: b, target: c}
`))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g, err := doc.Build()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Vertices(), g.EdgeCount(), g.Weighted())

	_ = ingest.Encode(os.Stdout, ingest.FromGraph(g, false))
	// Output:
	// [a b c] 2 true
	// directed: false
	// weighted: true
	// nodes:
	//   - id: a
	//   - id: b
	//   - id: c
	// edges:
	//   - id: e1
	//     source: a
	//     target: b
	//     weight: 2
	//   - id: e2
	//     source: b
	//     target: c
	//     weight: 1
}
