package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dhamidi/norg/org"
)

func parseDoc(t *testing.T, input string) *org.Document {
	t.Helper()
	doc, err := org.ParseBytes([]byte(input), org.WithRawTitles())
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestOutlineEncoder(t *testing.T) {
	doc := parseDoc(t, "intro\n* TODO [#A] Plan :work:urgent:\nbody\n** Step one\n* Done deal\n")
	var buf bytes.Buffer
	if err := NewOutlineEncoder(&buf).Encode(doc); err != nil {
		t.Fatal(err)
	}
	want := "* TODO [#A] Plan :work:urgent:\n** Step one\n* Done deal\n"
	if buf.String() != want {
		t.Errorf("outline = %q, want %q", buf.String(), want)
	}
}

func TestOutlineEncoderBareStars(t *testing.T) {
	doc := parseDoc(t, "** DONE\n")
	var buf bytes.Buffer
	if err := NewOutlineEncoder(&buf).Encode(doc); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "** DONE\n" {
		t.Errorf("outline = %q", got)
	}
}

func TestJSONEncoder(t *testing.T) {
	doc := parseDoc(t, "lead text\n* TODO Task :a:\n** Sub\n")
	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(doc); err != nil {
		t.Fatal(err)
	}

	var decoded struct {
		Section   string `json:"section"`
		Headlines []struct {
			Node struct {
				Kind     string `json:"kind"`
				Begin    int    `json:"begin"`
				End      int    `json:"end"`
				Headline struct {
					RawValue    string   `json:"rawValue"`
					TodoKeyword string   `json:"todoKeyword"`
					Tags        []string `json:"tags"`
				} `json:"headline"`
			} `json:"node"`
			Children []json.RawMessage `json:"children"`
		} `json:"headlines"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if decoded.Section != "lead text\n" {
		t.Errorf("section = %q", decoded.Section)
	}
	if len(decoded.Headlines) != 1 {
		t.Fatalf("headlines = %d", len(decoded.Headlines))
	}
	top := decoded.Headlines[0]
	if top.Node.Kind != "headline" || top.Node.Headline.RawValue != "Task" {
		t.Errorf("node = %+v", top.Node)
	}
	if top.Node.Headline.TodoKeyword != "TODO" || !strings.Contains(strings.Join(top.Node.Headline.Tags, ","), "a") {
		t.Errorf("headline = %+v", top.Node.Headline)
	}
	if len(top.Children) != 1 {
		t.Errorf("children = %d", len(top.Children))
	}
}
