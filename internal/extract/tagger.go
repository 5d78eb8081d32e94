package extract

import (
	"github.com/Gleipnir-Technology/nidus-extract/internal/model"
	"github.com/Gleipnir-Technology/nidus-extract/internal/nlp"
)

// addTag records that w justified a value of the given category. Tags are
// never deduplicated or sorted.
func addTag(tags *[]model.TranscriptTag, w nlp.Word, category model.TagCategory) {
	*tags = append(*tags, model.TranscriptTag{Range: w.Range, Type: category})
}
