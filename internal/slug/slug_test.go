package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name  string
		title string
		want  string
	}{
		{"cyrillic title", "Уникальный заголовок", "unikalnyij-zagolovok"},
		{"single word", "Заголовок", "zagolovok"},
		{"latin passthrough", "Hello World", "hello-world"},
		{"mixed scripts", "Заметка about Go", "zametka-about-go"},
		{"punctuation dropped", "Что? Где! Когда...", "chto-gde-kogda"},
		{"run of separators", "a  -  b", "a-b"},
		{"leading and trailing junk", "  ---Привет---  ", "privet"},
		{"digits kept", "Список 2024", "spisok-2024"},
		{"yo and soft sign", "Объём", "obyom"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.title))
		})
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	title := "Уникальный заголовок"
	assert.Equal(t, Slugify(title), Slugify(title))
}

func TestSlugifyProducesURLSafeOutput(t *testing.T) {
	titles := []string{
		"Уникальный заголовок",
		"ЖЁЛТЫЙ ЩИТ",
		"  шашлык из мяса  ",
		"100% гарантия!!!",
		"çà et là",
	}
	for _, title := range titles {
		s := Slugify(title)
		assert.False(t, strings.HasPrefix(s, "-"), "slug %q starts with hyphen", s)
		assert.False(t, strings.HasSuffix(s, "-"), "slug %q ends with hyphen", s)
		assert.NotContains(t, s, "--", "slug %q has a hyphen run", s)
		for _, r := range s {
			ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_'
			assert.True(t, ok, "slug %q contains %q", s, r)
		}
	}
}

func TestSlugifyTruncates(t *testing.T) {
	long := strings.Repeat("а ", 200)
	s := Slugify(long)
	assert.LessOrEqual(t, len(s), MaxLen)
	assert.False(t, strings.HasSuffix(s, "-"))
}
