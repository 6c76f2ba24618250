package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPartialName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"first plus last initial", "João Silva", "João S."},
		{"middle names skipped", "Maria da Silva Santos", "Maria S."},
		{"last initial uppercased", "Ana souza", "Ana S."},
		{"single name", "Carlos", "C***"},
		{"email hidden", "joao@example.com", "Usuário anônimo"},
		{"empty hidden", "", "Usuário anônimo"},
		{"spaces only hidden", "   ", "Usuário anônimo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPartialName(tt.input))
		})
	}
}
