// ABOUTME: Tests for the extractor chain over known response shapes.
// ABOUTME: Each shape must yield text independently of the others.
package feedback

import "testing"

func TestExtractDirectOutputText(t *testing.T) {
	raw := []byte(`{"output_text": "solid effort this week"}`)
	text, ok := ExtractText(raw)
	if !ok || text != "solid effort this week" {
		t.Errorf("got (%q, %v)", text, ok)
	}
}

func TestExtractOutputChunks(t *testing.T) {
	raw := []byte(`{
		"output": [
			{"content": [
				{"type": "output_text", "text": "first part. "},
				{"type": "reasoning", "text": "ignore me"},
				{"type": "output_text", "text": "second part."}
			]}
		]
	}`)
	text, ok := ExtractText(raw)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if text != "first part. second part." {
		t.Errorf("text = %q", text)
	}
}

func TestExtractChatChoicesShape(t *testing.T) {
	// Third extractor in the chain: the first two find nothing here.
	raw := []byte(`{"choices": [{"message": {"content": "  keep boxing out  "}}]}`)
	text, ok := ExtractText(raw)
	if !ok || text != "keep boxing out" {
		t.Errorf("got (%q, %v)", text, ok)
	}
}

func TestExtractPrefersEarlierShapes(t *testing.T) {
	raw := []byte(`{
		"output_text": "direct",
		"choices": [{"message": {"content": "chat"}}]
	}`)
	text, _ := ExtractText(raw)
	if text != "direct" {
		t.Errorf("text = %q, want the first extractor's result", text)
	}
}

func TestExtractNothingUsable(t *testing.T) {
	cases := [][]byte{
		[]byte(`{}`),
		[]byte(`{"output": []}`),
		[]byte(`{"output_text": "   "}`),
		[]byte(`not json at all`),
	}
	for _, raw := range cases {
		if text, ok := ExtractText(raw); ok {
			t.Errorf("ExtractText(%s) unexpectedly returned %q", raw, text)
		}
	}
}
