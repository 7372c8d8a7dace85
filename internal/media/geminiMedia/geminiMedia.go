package geminiMedia

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/akolanti/StudyRAG/internal/config"
	"github.com/akolanti/StudyRAG/internal/domain/ragErrors"
	"github.com/akolanti/StudyRAG/internal/media"
	"github.com/akolanti/StudyRAG/pkg/logger_i"
	"google.golang.org/genai"
)

// fileService is the slice of the Files API the transcription poll needs.
// Tests swap it for function-field fakes to drive the processing states.
type fileService interface {
	Upload(ctx context.Context, path string, mimeType string) (*genai.File, error)
	Get(ctx context.Context, name string) (*genai.File, error)
}

type genaiFiles struct {
	client *genai.Client
}

func (g *genaiFiles) Upload(ctx context.Context, path string, mimeType string) (*genai.File, error) {
	return g.client.Files.UploadFromPath(ctx, path, &genai.UploadFileConfig{MIMEType: mimeType})
}

func (g *genaiFiles) Get(ctx context.Context, name string) (*genai.File, error) {
	return g.client.Files.Get(ctx, name, nil)
}

type geminiProvider struct {
	client       *genai.Client
	files        fileService
	pollInterval time.Duration
	pollCeiling  time.Duration
}

var logger *logger_i.Logger
var geminiMedia *geminiProvider
var once sync.Once

// GetGeminiMedia returns the Gemini-backed media provider: Files API plus
// model polling for audio, inline vision for images, Imagen for generation
// and the dedicated speech model for synthesis.
func GetGeminiMedia(ctx context.Context, apikey string) media.Provider {
	once.Do(func() {
		logger = logger_i.NewLogger("media_gemini")
		newGeminiMedia(ctx, apikey)
	})

	if geminiMedia == nil {
		return nil
	}
	return geminiMedia
}

func newGeminiMedia(ctx context.Context, apikey string) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apikey})
	if err != nil {
		logger.Error("Error creating Gemini media client:", "error", err)
	}
	if c != nil {
		geminiMedia = &geminiProvider{
			client:       c,
			files:        &genaiFiles{client: c},
			pollInterval: config.TranscribePollInterval,
			pollCeiling:  config.TranscribePollCeiling,
		}
		logger.Info("Gemini media client created")
		go closeClient(ctx, geminiMedia)
	}
}

func (p *geminiProvider) Name() string { return "gemini" }

func (p *geminiProvider) Transcribe(ctx context.Context, path string) (string, error) {
	log := logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	file, err := p.files.Upload(ctx, path, mimeFor(path))
	if err != nil {
		return "", p.wrap(err)
	}

	file, err = p.awaitFileActive(ctx, file)
	if err != nil {
		return "", err
	}

	parts := []*genai.Part{
		genai.NewPartFromURI(file.URI, file.MIMEType),
		genai.NewPartFromText("Transcribe this audio completely and accurately. Output only the transcription text."),
	}

	result, err := p.client.Models.GenerateContent(ctx, config.GeminiModelName,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}, nil)
	if err != nil {
		log.Error("Gemini transcription failed", "error", err)
		return "", p.wrap(err)
	}
	if result == nil || result.Text() == "" {
		return "", p.wrap(errors.New("empty transcription"))
	}
	return result.Text(), nil
}

// awaitFileActive polls the uploaded file until the service finishes
// processing it. Polling gives up after a fixed ceiling so a stuck file can
// never hold an ingestion worker hostage.
func (p *geminiProvider) awaitFileActive(ctx context.Context, file *genai.File) (*genai.File, error) {
	deadline := time.Now().Add(p.pollCeiling)

	for file.State == genai.FileStateProcessing {
		if time.Now().After(deadline) {
			return nil, p.wrap(fmt.Errorf("file %s still processing after %s", file.Name, p.pollCeiling))
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.pollInterval):
		}

		var err error
		file, err = p.files.Get(ctx, file.Name)
		if err != nil {
			return nil, p.wrap(err)
		}
	}

	if file.State == genai.FileStateFailed {
		return nil, p.wrap(fmt.Errorf("file %s failed processing", file.Name))
	}
	return file, nil
}

func (p *geminiProvider) DescribeImage(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	parts := []*genai.Part{
		genai.NewPartFromBytes(data, mimeFor(path)),
		genai.NewPartFromText("Describe this image in detail for study purposes. Extract and include any visible text, diagrams, labels or formulas."),
	}

	result, err := p.client.Models.GenerateContent(ctx, config.GeminiModelName,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}, nil)
	if err != nil {
		logger.Error("Gemini image description failed", "error", err)
		return "", p.wrap(err)
	}
	if result == nil || result.Text() == "" {
		return "", p.wrap(errors.New("empty image description"))
	}
	return result.Text(), nil
}

func (p *geminiProvider) GenerateImage(ctx context.Context, prompt string) (media.ImageResult, error) {
	result, err := p.client.Models.GenerateImages(ctx, config.GeminiImageModelName, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
	})
	if err != nil {
		logger.Error("Imagen generation failed", "error", err)
		return media.ImageResult{}, p.wrap(err)
	}
	if result == nil || len(result.GeneratedImages) == 0 || result.GeneratedImages[0].Image == nil {
		return media.ImageResult{}, p.wrap(errors.New("no image generated"))
	}

	img := result.GeneratedImages[0].Image
	mime := img.MIMEType
	if mime == "" {
		mime = "image/png"
	}
	return media.ImageResult{Data: img.ImageBytes, MimeType: mime}, nil
}

func (p *geminiProvider) Synthesize(ctx context.Context, text string) (media.AudioResult, error) {
	contentConfig := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: config.GeminiTTSVoice},
			},
		},
	}

	result, err := p.client.Models.GenerateContent(ctx, config.GeminiTTSModelName, genai.Text(text), contentConfig)
	if err != nil {
		logger.Error("Gemini speech synthesis failed", "error", err)
		return media.AudioResult{}, p.wrap(err)
	}

	pcm := extractAudioBytes(result)
	if len(pcm) == 0 {
		return media.AudioResult{}, p.wrap(errors.New("no audio returned"))
	}

	//the speech model emits raw 24kHz 16-bit mono PCM
	return media.AudioResult{Data: wrapPCMInWav(pcm, 24000, 1, 16), MimeType: "audio/wav"}, nil
}

func extractAudioBytes(result *genai.GenerateContentResponse) []byte {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return nil
	}
	for _, part := range result.Candidates[0].Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData.Data
		}
	}
	return nil
}

func (p *geminiProvider) wrap(err error) error {
	return &ragErrors.ProviderError{Provider: p.Name(), Err: err}
}

func mimeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return "audio/mp3"
	case ".wav":
		return "audio/wav"
	case ".m4a":
		return "audio/mp4"
	case ".webm":
		return "audio/webm"
	case ".mpeg":
		return "audio/mpeg"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}

func closeClient(ctx context.Context, p *geminiProvider) {
	<-ctx.Done()
	logger.Info("Closing Gemini media client")
	p.client = nil
}
