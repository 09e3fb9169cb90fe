package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyArticleCode(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		wantCode string
	}{
		{
			name:     "plain code",
			message:  "Расскажи про MS110",
			wantCode: "ms110",
		},
		{
			name:     "first qualifying token wins",
			message:  "Сравни AB12 и CD34",
			wantCode: "ab12",
		},
		{
			name:     "digits only is not a code",
			message:  "Нужно 12345 метров",
			wantCode: "",
		},
		{
			name:     "letters only is not a code",
			message:  "Покажи каталог parquet",
			wantCode: "",
		},
		{
			name:     "short token is skipped",
			message:  "Что такое A1?",
			wantCode: "",
		},
		{
			name:     "russian words never produce candidates",
			message:  "Какой паркет лучше для кухни",
			wantCode: "",
		},
		{
			name:     "hyphen splits the token",
			message:  "Есть ли MS-110 в наличии",
			wantCode: "",
		},
		{
			name:     "code adjacent to cyrillic",
			message:  "артикулMS110как дела",
			wantCode: "ms110",
		},
		{
			name:     "empty message",
			message:  "",
			wantCode: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := Classify(tt.message)
			assert.Equal(t, tt.wantCode, intent.ArticleCode)
		})
	}
}

func TestClassifySupplementaryKeywords(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    bool
	}{
		{name: "texture request", message: "Покажи текстуру MS110", want: true},
		{name: "interior request", message: "Как это выглядит в интерьере?", want: true},
		{name: "photo stem matches inflections", message: "Есть фотографии?", want: true},
		{name: "case insensitive", message: "ФОТО дубовой доски", want: true},
		{name: "plain lookup", message: "Цена на MS110", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := Classify(tt.message)
			assert.Equal(t, tt.want, intent.WantsSupplementary)
		})
	}
}
