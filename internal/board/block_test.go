package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Block
		want bool
	}{
		{"blank singleton", Blank, Blank, true},
		{"distinct blanks", &Block{}, &Block{Kind: KindBlank}, true},
		{"nil reads as blank", nil, Blank, true},
		{"kind mismatch", Blank, NewActive(false), false},
		{"kind mismatch ignores flag", &Block{Falling: true}, NewActive(true), false},
		{"active same flag", NewActive(true), NewActive(true), true},
		{"active flag differs", NewActive(true), NewActive(false), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, Equal(tt.b, tt.a), "Equal must be symmetric")
		})
	}
}

func TestBlockString(t *testing.T) {
	assert.Equal(t, ".", Blank.String())
	assert.Equal(t, "#", NewActive(true).String())
	assert.Equal(t, "@", NewActive(false).String())
	var nilBlock *Block
	assert.Equal(t, ".", nilBlock.String())
}
