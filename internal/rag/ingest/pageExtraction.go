package ingest

import (
	"errors"
	"fmt"
	"time"

	"github.com/dslipak/pdf"
	"github.com/lu4p/cat"
)

// extractPDF pulls per-page text and embeds a "[Page N of M]" marker at the
// top of each page so citations can point at the right page later.
func extractPDF(path string) ([]Page, int, error) {
	f, err := pdf.Open(path)
	if err != nil {
		logger.Error("failed opening of pdf file", "error", err)
		return nil, 0, fmt.Errorf("failed to open pdf: %w", err)
	}

	var pages []Page
	numPages := f.NumPage()
	logger.Debug("extractPDF", "number of pages", numPages)
	for i := 1; i <= numPages; i++ {
		page := f.Page(i)
		if page.V.IsNull() {
			continue
		}

		content, err := protectExtract(page)
		if err != nil {
			// keep going - one unreadable page must not sink the document
			logger.Error("Error parsing page content", "page", i, "Error", err)
			continue
		}
		if content == "" {
			continue
		}

		pages = append(pages, Page{
			Number:  i,
			Content: fmt.Sprintf("[Page %d of %d]\n%s", i, numPages, content),
		})
	}
	return pages, numPages, nil
}

// extractDocxTxtRtf reads a .odt, .docx, .rtf or plaintext file. Page
// tracking is not possible for these formats, so everything lands on page 1.
func extractDocxTxtRtf(path string) ([]Page, int, error) {
	text, err := cat.File(path)
	if err != nil {
		logger.Error("Error extracting content from doc", "error", err)
		return nil, 0, fmt.Errorf("failed to extract document: %w", err)
	}

	return []Page{
		{
			Number:  1,
			Content: text,
		},
	}, 1, nil
}

func protectExtract(page pdf.Page) (string, error) {
	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)

	go func() {
		content, err := page.GetPlainText(nil)
		resChan <- result{content, err}
	}()
	select {
	case r := <-resChan:
		return r.content, r.err
	case <-time.After(time.Second * 10):
		logger.Error("pageExtract", "timeout")
		return "", errors.New("timeout")
	}
}
