package engine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sweepr-io/sweepr/internal/resource"
)

func TestGateConfirm(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		phrase string
		want   bool
	}{
		{
			name:   "exact phrase accepted",
			input:  "DELETE ALL REPOSITORIES\n",
			phrase: "DELETE ALL REPOSITORIES",
			want:   true,
		},
		{
			name:   "windows line ending accepted",
			input:  "DELETE ALL REPOSITORIES\r\n",
			phrase: "DELETE ALL REPOSITORIES",
			want:   true,
		},
		{
			name:   "yes is a refusal",
			input:  "yes\n",
			phrase: "DELETE ALL REPOSITORIES",
			want:   false,
		},
		{
			name:   "case mismatch is a refusal",
			input:  "delete all repositories\n",
			phrase: "DELETE ALL REPOSITORIES",
			want:   false,
		},
		{
			name:   "empty line is a refusal",
			input:  "\n",
			phrase: "DELETE ALL REPOSITORIES",
			want:   false,
		},
		{
			name:   "closed input is a refusal",
			input:  "",
			phrase: "DELETE ALL REPOSITORIES",
			want:   false,
		},
		{
			name:   "phrase without newline at EOF accepted",
			input:  "DELETE ALL REPOSITORIES",
			phrase: "DELETE ALL REPOSITORIES",
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			gate := NewGate(strings.NewReader(tt.input), &out)

			got := gate.Confirm("Type the phrase: ", tt.phrase)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Type the phrase: ", out.String())
		})
	}
}

func TestGateConfirmItem(t *testing.T) {
	ref := resource.Ref{ID: "1", Name: "legacy-api", Kind: resource.KindRepository}

	var out bytes.Buffer
	gate := NewGate(strings.NewReader("delete legacy-api\n"), &out)
	assert.True(t, gate.ConfirmItem(ref))
	assert.Contains(t, out.String(), `"delete legacy-api"`)

	gate = NewGate(strings.NewReader("delete other-repo\n"), &out)
	assert.False(t, gate.ConfirmItem(ref))

	gate = NewGate(strings.NewReader("delete\n"), &out)
	assert.False(t, gate.ConfirmItem(ref))
}

func TestGateSequentialPrompts(t *testing.T) {
	// One reader serves several prompts in order.
	var out bytes.Buffer
	gate := NewGate(strings.NewReader("delete a\nnope\ndelete c\n"), &out)

	assert.True(t, gate.ConfirmItem(resource.Ref{Name: "a"}))
	assert.False(t, gate.ConfirmItem(resource.Ref{Name: "b"}))
	assert.True(t, gate.ConfirmItem(resource.Ref{Name: "c"}))
}
