package openaiMedia

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/akolanti/StudyRAG/internal/config"
	"github.com/akolanti/StudyRAG/internal/customHttpClient"
	"github.com/akolanti/StudyRAG/internal/domain/ragErrors"
	"github.com/akolanti/StudyRAG/internal/media"
	"github.com/akolanti/StudyRAG/pkg/logger_i"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type openaiProvider struct {
	client openai.Client
}

var logger *logger_i.Logger
var openaiMedia *openaiProvider
var once sync.Once

// GetOpenAIMedia returns the OpenAI-backed media provider: Whisper for
// transcription, DALL-E for image generation and tts-1 for synthesis. It is
// the secondary leg of the fallback chain.
func GetOpenAIMedia(apikey string) media.Provider {
	once.Do(func() {
		logger = logger_i.NewLogger("media_openai")
		if apikey == "" {
			logger.Warn("No OpenAI api key, secondary media provider disabled")
			return
		}
		openaiMedia = &openaiProvider{
			client: openai.NewClient(
				option.WithAPIKey(apikey),
				option.WithHTTPClient(customHttpClient.PooledClient()),
			),
		}
		logger.Info("OpenAI media client created")
	})

	if openaiMedia == nil {
		return nil
	}
	return openaiMedia
}

func (p *openaiProvider) Name() string { return "openai" }

func (p *openaiProvider) Transcribe(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	transcription, err := p.client.Audio.Transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		Model: openai.AudioModel(config.OpenAIWhisperModel),
		File:  f,
	})
	if err != nil {
		logger.Error("Whisper transcription failed", "error", err)
		return "", p.wrap(err)
	}
	if transcription.Text == "" {
		return "", p.wrap(errors.New("empty transcription"))
	}
	return transcription.Text, nil
}

func (p *openaiProvider) DescribeImage(ctx context.Context, path string) (string, error) {
	return "", p.wrap(errors.New("image description not supported"))
}

func (p *openaiProvider) GenerateImage(ctx context.Context, prompt string) (media.ImageResult, error) {
	result, err := p.client.Images.Generate(ctx, openai.ImageGenerateParams{
		Model:          openai.ImageModel(config.OpenAIImageModel),
		Prompt:         prompt,
		ResponseFormat: openai.ImageGenerateParamsResponseFormatB64JSON,
		N:              openai.Int(1),
	})
	if err != nil {
		logger.Error("DALL-E generation failed", "error", err)
		return media.ImageResult{}, p.wrap(err)
	}
	if len(result.Data) == 0 || result.Data[0].B64JSON == "" {
		return media.ImageResult{}, p.wrap(errors.New("no image generated"))
	}

	data, err := base64.StdEncoding.DecodeString(result.Data[0].B64JSON)
	if err != nil {
		return media.ImageResult{}, p.wrap(err)
	}
	return media.ImageResult{Data: data, MimeType: "image/png"}, nil
}

// Synthesize splits long text at the provider's per-request character limit
// and stitches the resulting mp3 segments back together.
func (p *openaiProvider) Synthesize(ctx context.Context, text string) (media.AudioResult, error) {
	var audio []byte

	for _, segment := range splitForSynthesis(text, config.OpenAITTSCharLimit) {
		resp, err := p.client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
			Model:          openai.SpeechModel(config.OpenAITTSModel),
			Voice:          openai.AudioSpeechNewParamsVoice(config.OpenAITTSVoice),
			Input:          segment,
			ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
		})
		if err != nil {
			logger.Error("OpenAI speech synthesis failed", "error", err)
			return media.AudioResult{}, p.wrap(err)
		}

		segBytes, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return media.AudioResult{}, p.wrap(err)
		}
		audio = append(audio, segBytes...)
	}

	if len(audio) == 0 {
		return media.AudioResult{}, p.wrap(errors.New("no audio returned"))
	}
	return media.AudioResult{Data: audio, MimeType: "audio/mpeg"}, nil
}

// splitForSynthesis cuts at sentence ends where it can, spaces where it must,
// and mid-word only as a last resort.
func splitForSynthesis(text string, limit int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if len(text) <= limit {
		return []string{text}
	}

	var segments []string
	for len(text) > limit {
		cut := limit
		if idx := strings.LastIndexAny(text[:limit], ".!?"); idx > limit/2 {
			cut = idx + 1
		} else if idx := strings.LastIndex(text[:limit], " "); idx > limit/2 {
			cut = idx
		}
		segments = append(segments, strings.TrimSpace(text[:cut]))
		text = strings.TrimSpace(text[cut:])
	}
	if text != "" {
		segments = append(segments, text)
	}
	return segments
}

func (p *openaiProvider) wrap(err error) error {
	return &ragErrors.ProviderError{Provider: p.Name(), Err: err}
}
