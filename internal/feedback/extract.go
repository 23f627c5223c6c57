// ABOUTME: Response text extraction as an ordered chain of typed extractors.
// ABOUTME: Tolerates format drift across known response shapes without reflection.
package feedback

import (
	"encoding/json"
	"strings"
)

// extractor pulls plain text out of one known response shape.
type extractor interface {
	extractText(raw []byte) (string, bool)
}

// extractors are tried in order; the first non-empty result wins.
var extractors = []extractor{
	outputTextExtractor{},
	outputChunksExtractor{},
	chatChoicesExtractor{},
}

// ExtractText extracts plain text from a loosely-structured service
// response. Returns false when no extractor yields non-empty text.
func ExtractText(raw []byte) (string, bool) {
	for _, e := range extractors {
		if text, ok := e.extractText(raw); ok {
			return text, true
		}
	}
	return "", false
}

// outputTextExtractor handles the flattened shape: a top-level
// output_text string attribute.
type outputTextExtractor struct{}

func (outputTextExtractor) extractText(raw []byte) (string, bool) {
	var resp struct {
		OutputText string `json:"output_text"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", false
	}
	text := strings.TrimSpace(resp.OutputText)
	return text, text != ""
}

// outputChunksExtractor handles the structured shape: an output list of
// items, each carrying typed content chunks. All text chunks are
// concatenated in order.
type outputChunksExtractor struct{}

func (outputChunksExtractor) extractText(raw []byte) (string, bool) {
	var resp struct {
		Output []struct {
			Content []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"content"`
		} `json:"output"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", false
	}

	var sb strings.Builder
	for _, item := range resp.Output {
		for _, chunk := range item.Content {
			if chunk.Type == "output_text" || chunk.Type == "text" {
				sb.WriteString(chunk.Text)
			}
		}
	}
	text := strings.TrimSpace(sb.String())
	return text, text != ""
}

// chatChoicesExtractor handles the chat-completions shape: a choices list
// whose messages carry the text.
type chatChoicesExtractor struct{}

func (chatChoicesExtractor) extractText(raw []byte) (string, bool) {
	var resp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", false
	}

	var sb strings.Builder
	for _, choice := range resp.Choices {
		sb.WriteString(choice.Message.Content)
	}
	text := strings.TrimSpace(sb.String())
	return text, text != ""
}
