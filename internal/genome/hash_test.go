package genome_test

import (
	"testing"

	"github.com/dom/quiz-monsters/internal/genome"
	"github.com/stretchr/testify/assert"
)

func TestHash_Fixtures(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  uint64
	}{
		{name: "empty", input: "", want: 3338908027751811},
		{name: "single char", input: "a", want: 7929297801672961},
		{name: "ascii", input: "hello", want: 4625896200565286},
		{name: "id only", input: "p1", want: 231592308308667},
		{name: "hangul", input: "p1가는 말이 고와야 오는 말이 곱다", want: 5886455756162863},
		{name: "surrogate pair", input: "😀", want: 4725715722941614},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, genome.Hash(tt.input))
		})
	}
}

func TestHashSeed(t *testing.T) {
	assert.Equal(t, uint64(6922249475667011), genome.HashSeed("hello", 1))
	assert.NotEqual(t, genome.Hash("hello"), genome.HashSeed("hello", 1))
}

func TestHash_FitsIn53Bits(t *testing.T) {
	for _, s := range []string{"", "x", "monster", "긴 문자열 테스트 입니다"} {
		assert.Less(t, genome.Hash(s), uint64(1)<<53, "hash of %q", s)
	}
}
