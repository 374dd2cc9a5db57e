package html

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "Deep learning basics", "Deep learning basics"},
		{"collapses whitespace", "  Deep \n learning\tbasics ", "Deep learning basics"},
		{"bold tags", "Intro to <b>neural networks</b>", "Intro to neural networks"},
		{"entities", "Q&amp;A on LLMs &#8211; part 2", "Q&A on LLMs – part 2"},
		{"script removed", "safe<script>alert(1)</script> text", "safe text"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripHTML(tt.input))
		})
	}
}
