package ingest

import (
	"strings"
	"testing"
	"time"

	"github.com/akolanti/StudyRAG/internal/config"
	"github.com/akolanti/StudyRAG/internal/domain/commonModels"
)

func TestSplitText(t *testing.T) {
	t.Run("Whitespace_Only_Yields_Nothing", func(t *testing.T) {
		for _, input := range []string{"", "   ", "\n\t\n"} {
			if chunks := SplitText(input); chunks != nil {
				t.Errorf("SplitText(%q) got %v, want nil", input, chunks)
			}
		}
	})

	t.Run("Short_Text_Is_One_Chunk", func(t *testing.T) {
		chunks := SplitText("  a short paragraph  ")
		if len(chunks) != 1 || chunks[0] != "a short paragraph" {
			t.Errorf("got %v, want single trimmed chunk", chunks)
		}
	})

	t.Run("Chunks_Respect_Size_Bound", func(t *testing.T) {
		text := strings.Repeat("Sentences keep the splitter honest. ", 300)
		chunks := SplitText(text)
		if len(chunks) < 2 {
			t.Fatalf("expected multiple chunks for %d chars, got %d", len(text), len(chunks))
		}
		for i, c := range chunks {
			if len(c) > config.ChunkSize {
				t.Errorf("chunk %d is %d chars, exceeds %d", i, len(c), config.ChunkSize)
			}
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		text := strings.Repeat("Same input must give the same chunks every time. ", 100)
		first := SplitText(text)
		second := SplitText(text)
		if len(first) != len(second) {
			t.Fatalf("chunk counts differ: %d vs %d", len(first), len(second))
		}
		for i := range first {
			if first[i] != second[i] {
				t.Errorf("chunk %d differs between runs", i)
			}
		}
	})

	t.Run("Overlap_Carries_Context_Across_Boundary", func(t *testing.T) {
		text := strings.Repeat("word ", 500)
		chunks := splitWithLimits(text, 200, 50)
		if len(chunks) < 2 {
			t.Fatal("expected multiple chunks")
		}
		// the second chunk re-reads the last `overlap` chars of the first
		if !strings.HasSuffix(chunks[0], chunks[1][:50]) {
			t.Errorf("second chunk does not overlap the first:\n%q\n%q", chunks[0], chunks[1][:50])
		}
	})

	t.Run("No_Separator_Hard_Cuts", func(t *testing.T) {
		text := strings.Repeat("x", 2500)
		chunks := splitWithLimits(text, 1000, 200)
		if len(chunks) < 3 {
			t.Fatalf("expected hard cuts to progress, got %d chunks", len(chunks))
		}
		total := 0
		for _, c := range chunks {
			total += len(c)
		}
		if total < len(text) {
			t.Errorf("hard-cut chunks cover %d chars of %d", total, len(text))
		}
	})
}

func TestDocTypeFor(t *testing.T) {
	tests := []struct {
		path     string
		expected commonModels.DocType
	}{
		{"notes.pdf", commonModels.PDF},
		{"dir/Notes.PDF", commonModels.PDF},
		{"essay.docx", commonModels.DOCX},
		{"essay.odt", commonModels.DOCX},
		{"readme.txt", commonModels.TXT},
		{"readme.md", commonModels.TXT},
		{"diagram.png", commonModels.IMAGE},
		{"photo.JPEG", commonModels.IMAGE},
		{"lecture.mp3", commonModels.AUDIO},
		{"lecture.m4a", commonModels.AUDIO},
		{"archive.zip", commonModels.ERR},
		{"noextension", commonModels.ERR},
	}

	for _, tt := range tests {
		if got := DocTypeFor(tt.path); got != tt.expected {
			t.Errorf("DocTypeFor(%q) got %v, want %v", tt.path, got, tt.expected)
		}
	}
}

func TestPrepareFragments(t *testing.T) {
	doc := commonModels.Document{
		Id:         "doc-1",
		Name:       "bio.pdf",
		SessionId:  "session-1",
		IngestedAt: time.Now(),
	}
	pages := []Page{
		{Number: 1, Content: "[Page 1 of 2]\nFirst page content."},
		{Number: 2, Content: "[Page 2 of 2]\nSecond page content."},
		{Number: 3, Content: "   "},
	}

	fragments := PrepareFragments(pages, doc)

	if len(fragments) != 2 {
		t.Fatalf("got %d fragments, want 2 (blank page dropped)", len(fragments))
	}
	for i, f := range fragments {
		if f.Doc.Name != "bio.pdf" || f.Doc.SessionId != "session-1" {
			t.Errorf("fragment %d lost its document stamp: %+v", i, f.Doc)
		}
		if f.Id == "" {
			t.Errorf("fragment %d has no id", i)
		}
	}
	if fragments[0].Page != 1 || fragments[1].Page != 2 {
		t.Errorf("page numbers not carried: %d, %d", fragments[0].Page, fragments[1].Page)
	}
	if fragments[1].Seq <= fragments[0].Seq {
		t.Errorf("sequence must increase: %d then %d", fragments[0].Seq, fragments[1].Seq)
	}
}
