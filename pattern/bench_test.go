package pattern

import (
	"fmt"
	"testing"

	"github.com/stencil-design/stencil/canvas"
)

// benchDoc builds a document with extra unrelated frames surrounding one
// complete tabs instance, approximating a busy design file.
func benchDoc(noise int) *canvas.Document {
	children := make([]canvas.Node, 0, noise+1)
	for i := 0; i < noise; i++ {
		children = append(children,
			testFrame(fmt.Sprintf("deco-%d", i), "",
				testText(fmt.Sprintf("deco-label-%d", i), ""),
			),
		)
	}
	children = append(children,
		testFrame("container", "tabs.container",
			testFrame("tablist", "tabs.tablist",
				testText("tab-0", "tabs.tab[0]"),
			),
			testFrame("panel-0", "tabs.tabpanel[0]"),
		),
	)
	return testDoc(children...)
}

func BenchmarkDetectPatterns(b *testing.B) {
	registry := NewRegistry()
	if err := RegisterBuiltins(registry); err != nil {
		b.Fatal(err)
	}
	detector := NewDetector(registry)
	doc := benchDoc(200)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		detector.DetectPatterns(doc)
	}
}

func BenchmarkValidatePatterns(b *testing.B) {
	registry := NewRegistry()
	if err := RegisterBuiltins(registry); err != nil {
		b.Fatal(err)
	}
	validator := NewValidator(registry)
	doc := benchDoc(200)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		validator.ValidatePatterns(doc)
	}
}

func BenchmarkGenerateFromPattern(b *testing.B) {
	registry := NewRegistry()
	if err := RegisterBuiltins(registry); err != nil {
		b.Fatal(err)
	}
	generator := NewGenerator(registry)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := generator.GenerateFromPattern("tabs", GenerateSpec{Name: "bench"}); err != nil {
			b.Fatal(err)
		}
	}
}
