package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/akolanti/StudyRAG/internal/adapter/utils"
	"github.com/akolanti/StudyRAG/internal/domain/commonModels"
)

// Page is one unit of extracted text before chunking.
type Page struct {
	Number  int
	Content string
}

// MediaText turns non-text media into text. Both operations run behind the
// provider fallback policy.
type MediaText interface {
	Transcribe(ctx context.Context, path string) (string, error)
	DescribeImage(ctx context.Context, path string) (string, error)
}

// Extractor is the collaborator boundary for raw format extraction. The
// pipeline treats any error as a skip signal for that one document.
type Extractor interface {
	Extract(ctx context.Context, path string, docType commonModels.DocType) ([]Page, int, error)
}

type fileExtractor struct {
	media MediaText
}

func NewFileExtractor(media MediaText) Extractor {
	return &fileExtractor{media: media}
}

func (e *fileExtractor) Extract(ctx context.Context, path string, docType commonModels.DocType) ([]Page, int, error) {
	switch docType {
	case commonModels.PDF:
		return extractPDF(path)
	case commonModels.DOCX, commonModels.TXT:
		return extractDocxTxtRtf(path)
	case commonModels.IMAGE:
		return e.extractThroughMedia(ctx, path, e.media.DescribeImage)
	case commonModels.AUDIO, commonModels.YOUTUBE:
		return e.extractThroughMedia(ctx, path, e.media.Transcribe)
	default:
		return nil, 0, fmt.Errorf("unsupported content type: %s", docType)
	}
}

func (e *fileExtractor) extractThroughMedia(ctx context.Context, path string, convert func(context.Context, string) (string, error)) ([]Page, int, error) {
	if e.media == nil {
		return nil, 0, fmt.Errorf("no media provider configured")
	}
	text, err := convert(ctx, path)
	if err != nil {
		return nil, 0, err
	}
	return []Page{{Number: 1, Content: text}}, 1, nil
}

func DocTypeFor(path string) commonModels.DocType {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return commonModels.PDF
	case ".docx", ".odt", ".rtf":
		return commonModels.DOCX
	case ".txt", ".md":
		return commonModels.TXT
	case ".png", ".jpg", ".jpeg":
		return commonModels.IMAGE
	case ".mp3", ".wav", ".m4a", ".webm", ".mpeg":
		return commonModels.AUDIO
	default:
		return commonModels.ERR
	}
}

// PrepareFragments chunks every page and stamps each fragment with its
// owning document and an insertion sequence for deterministic tie-breaks.
func PrepareFragments(pages []Page, doc commonModels.Document) []commonModels.Fragment {
	var allFragments []commonModels.Fragment

	baseSeq := doc.IngestedAt.UnixNano()
	for _, page := range pages {
		stringChunks := SplitText(page.Content)

		for i, text := range stringChunks {
			allFragments = append(allFragments, commonModels.Fragment{
				Doc:       doc,
				Id:        utils.GetNewUUID(),
				Text:      text,
				Page:      page.Number,
				PageOrder: i,
				Seq:       baseSeq + int64(len(allFragments)),
			})
		}
	}

	return allFragments
}
