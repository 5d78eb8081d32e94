// Sample program running a handful of typical field reports through the
// extractor and printing what each one yields.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Gleipnir-Technology/nidus-extract/internal/extract"
	"github.com/Gleipnir-Technology/nidus-extract/internal/llm"
	"github.com/Gleipnir-Technology/nidus-extract/internal/logging"
	"github.com/Gleipnir-Technology/nidus-extract/internal/model"
)

var samples = []string{
	"Mosquito source. Pool is 10 feet by 20 feet by 3 feet deep. Pool is green. No fish. Lots of third instar larvae.",
	"Inspection report. Five dips, twenty eggs and two tumblers. Culex pipiens breeding in a birdbath.",
	"Backyard fountain, not maintained. Treated with bti. Sprinkler runoff is feeding it; told the owner to fix the timer.",
	"Dimensions are 2 meters long, 1 wide and 30 inches deep. Water is murky. Issued a citation.",
}

func main() {
	logger, err := logging.New(model.LoggingConfig{Level: "info", Format: "console"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logging.Sync(logger) }()

	e := extract.NewRuleExtractor(extract.WithLogger(logger))

	fmt.Println("=== Field report extraction samples ===")
	fmt.Println()

	for i, text := range samples {
		fmt.Printf("Sample %d: %s\n", i+1, text)
		fmt.Println(strings.Repeat("-", 60))

		g := e.ExtractKnowledge(text)
		facts := llm.Facts(g)
		if len(facts) == 0 {
			fmt.Println("  (nothing extracted)")
		}
		for _, f := range facts {
			fmt.Printf("  %s\n", f)
		}

		for _, tag := range g.TranscriptTags {
			fmt.Printf("  [%-11s] %q\n", tag.Type, text[tag.Range.Start:tag.Range.End])
		}
		fmt.Println()
	}
}
