package converter

import (
	"strings"

	"axesarif/internal/axe"
	"axesarif/internal/sarif"
)

const (
	headingFixAll = "Fix all of the following:"
	headingFixAny = "Fix any of the following:"
	headingPassed = "The following tests passed:"
)

var markdownEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// nodeMessage describes which checks fired for node. Failing nodes get a
// "fix all" group (all + none checks) and a "fix any" group; everything
// else lists every check under a single heading. Empty groups are skipped.
func nodeMessage(node axe.NodeResult, failing bool) sarif.Message {
	var m messageBuilder
	if failing {
		m.group(headingFixAll, node.All, node.None)
		m.group(headingFixAny, node.Any)
	} else {
		m.group(headingPassed, node.All, node.None, node.Any)
	}
	return sarif.Message{
		Text:     strings.Join(m.text, " "),
		Markdown: strings.Join(m.markdown, "\n\n"),
	}
}

type messageBuilder struct {
	text     []string
	markdown []string
}

func (m *messageBuilder) group(heading string, lists ...[]axe.CheckResult) {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	if n == 0 {
		return
	}

	textLines := make([]string, 0, n+1)
	markdownLines := make([]string, 0, n+1)
	textLines = append(textLines, heading)
	markdownLines = append(markdownLines, markdownEscaper.Replace(heading))
	for _, l := range lists {
		for _, check := range l {
			msg := checkMessage(check)
			textLines = append(textLines, msg+".")
			markdownLines = append(markdownLines, "- "+markdownEscaper.Replace(msg))
		}
	}
	m.text = append(m.text, strings.Join(textLines, " "))
	m.markdown = append(m.markdown, strings.Join(markdownLines, "\n"))
}

func checkMessage(check axe.CheckResult) string {
	if check.Message != "" {
		return check.Message
	}
	return check.ID
}
