package docs

import (
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Every topic must be well-formed markdown starting with a level-1 heading,
// and every fenced code block must declare a language so the terminal
// renderer can highlight it.
func TestTopicsAreWellFormed(t *testing.T) {
	topics, err := AllTopics()
	if err != nil {
		t.Fatalf("AllTopics: %v", err)
	}
	if len(topics) == 0 {
		t.Fatal("no documentation topics embedded")
	}

	for _, topic := range topics {
		t.Run(topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatalf("GetTopic(%q): %v", topic, err)
			}
			source := []byte(content)

			mdParser := goldmark.DefaultParser()
			root := mdParser.Parse(text.NewReader(source))

			first := root.FirstChild()
			h, ok := first.(*ast.Heading)
			if !ok || h.Level != 1 {
				t.Errorf("topic %q does not start with a level-1 heading", topic)
			}

			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering {
					return ast.WalkContinue, nil
				}
				if fcb, ok := n.(*ast.FencedCodeBlock); ok {
					if fcb.Info == nil || len(fcb.Info.Segment.Value(source)) == 0 {
						t.Errorf("topic %q has a fenced code block without a language", topic)
					}
				}
				return ast.WalkContinue, nil
			})
		})
	}
}

func TestGetTopics_star(t *testing.T) {
	all, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*): %v", err)
	}
	single, err := GetTopic("readme")
	if err != nil {
		t.Fatalf("GetTopic(readme): %v", err)
	}
	if len(all) <= len(single) {
		t.Errorf("GetTopics(*) should concatenate all topics")
	}

	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Errorf("GetTopic on an unknown topic should fail")
	}
}
