package analyzer

import (
	"testing"

	"kwx/internal/domain"
)

func TestIsSymbolOnly(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"!!", true},
		{"、。", true},
		{"→", true},
		{"", false},
		{"a!", false},
		{"_", false},
		{"認証", false},
		{"３", false},
		{"C++", false},
	}

	for _, tt := range tests {
		if got := IsSymbolOnly(tt.input); got != tt.want {
			t.Errorf("IsSymbolOnly(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsSingleNonASCII(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"あ", true},
		{"ア", true},
		{"é", true},
		{"a", false},
		{"1", false},
		{"ああ", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsSingleNonASCII(tt.input); got != tt.want {
			t.Errorf("IsSingleNonASCII(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsStopWord(t *testing.T) {
	for _, w := range []string{"する", "こと", "場合", "the", "The", "AND", "its"} {
		if !IsStopWord(w) {
			t.Errorf("expected %q to be a stop word", w)
		}
	}
	for _, w := range []string{"認証", "OAuth", "theory", "Koto"} {
		if IsStopWord(w) {
			t.Errorf("expected %q not to be a stop word", w)
		}
	}
}

func TestIsStopWord_JapaneseIsCaseSensitiveExact(t *testing.T) {
	// Only the foreign list is compared case-insensitively.
	if IsStopWord("コト") {
		t.Error("katakana コト should not match hiragana こと")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		tok      domain.Token
		wantForm string
		want     Reason
	}{
		{"particle", domain.Token{Surface: "を", POS: "助詞"}, "", RejectPOS},
		{"symbol pos", domain.Token{Surface: "。", POS: "記号", POSDetail: "句点"}, "", RejectPOS},
		{"non-independent", domain.Token{Surface: "の", POS: "名詞", POSDetail: "非自立"}, "", RejectDetail},
		{"suffix", domain.Token{Surface: "さん", POS: "名詞", POSDetail: "接尾"}, "", RejectDetail},
		{"special", domain.Token{Surface: "そ", POS: "名詞", POSDetail: "特殊"}, "", RejectDetail},
		{"symbol only", domain.Token{Surface: "**", BaseForm: "*", POS: "名詞", POSDetail: "サ変接続"}, "**", RejectSymbol},
		{"single kana", domain.Token{Surface: "ぇ", POS: "名詞", POSDetail: "一般"}, "ぇ", RejectSingle},
		{"stop word base form", domain.Token{Surface: "し", BaseForm: "する", POS: "動詞", POSDetail: "自立"}, "する", RejectStop},
		{"foreign stop word", domain.Token{Surface: "With", POS: "名詞", POSDetail: "固有名詞"}, "With", RejectForeign},
		{"verb base form", domain.Token{Surface: "書い", BaseForm: "書く", POS: "動詞", POSDetail: "自立"}, "書く", Kept},
		{"unknown base form", domain.Token{Surface: "PKCE", BaseForm: "*", POS: "名詞", POSDetail: "一般"}, "PKCE", Kept},
		{"adjective", domain.Token{Surface: "高く", BaseForm: "高い", POS: "形容詞", POSDetail: "自立"}, "高い", Kept},
		{"single ascii", domain.Token{Surface: "R", POS: "名詞", POSDetail: "一般"}, "R", Kept},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form, reason := Classify(tt.tok)
			if reason != tt.want {
				t.Errorf("reason = %q, want %q", reason, tt.want)
			}
			if form != tt.wantForm {
				t.Errorf("form = %q, want %q", form, tt.wantForm)
			}
		})
	}
}
