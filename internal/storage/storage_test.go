package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildKey(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{name: "simple", parts: []string{"contacts", "c1", "doc.pdf"}, want: "contacts/c1/doc.pdf"},
		{name: "trims slashes", parts: []string{"/contacts/", "c1/", "/doc.pdf"}, want: "contacts/c1/doc.pdf"},
		{name: "skips empty", parts: []string{"contacts", "", "doc.pdf"}, want: "contacts/doc.pdf"},
		{name: "nothing", parts: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildKey(tt.parts...))
		})
	}
}
