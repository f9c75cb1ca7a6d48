package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate flag and value",
			args:    []string{"-a", "http://localhost:5000/api", "-x", "noise"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://localhost:5000/api"},
		},
		{
			name:    "joined with equals",
			args:    []string{"--config=wikictl.json", "-other=1"},
			allowed: []string{"--config"},
			want:    []string{"--config=wikictl.json"},
		},
		{
			name:    "flag without value",
			args:    []string{"-v", "-a", "addr"},
			allowed: []string{"-v"},
			want:    []string{"-v"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "addr"},
			allowed: nil,
			want:    []string{},
		},
		{
			name:    "value looking like a flag is not consumed",
			args:    []string{"-a", "-d"},
			allowed: []string{"-a"},
			want:    []string{"-a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}
