package tokenizer

import (
	"strings"
	"testing"
)

func TestTokensOffsets(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Azərbaycan gözəl ölkədir.",
		"Bakı-Sumqayıt yolu 35,6 km-dir.",
		"Qiymət 1.250.000 manatdır!",
		"Bakı'nın tarixi",
		"a  b\tc\nd",
		"-- salam --",
		"☺ emoji",
	}

	for _, in := range inputs {
		toks := Tokens(in)
		var sb strings.Builder
		for _, tok := range toks {
			if in[tok.Start:tok.End] != tok.Text {
				t.Errorf("offset invariant broken for %q: token %v", in, tok)
			}
			sb.WriteString(tok.Text)
		}
		if sb.String() != in {
			t.Errorf("concatenation does not reconstruct %q: got %q", in, sb.String())
		}
	}
}

func TestTokensClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "hyphen joined word",
			input: "sosial-iqtisadi",
			want: []Token{
				{Text: "sosial-iqtisadi", Start: 0, End: 15, Type: Word},
			},
		},
		{
			name:  "double hyphen splits",
			input: "a--b",
			want: []Token{
				{Text: "a", Start: 0, End: 1, Type: Word},
				{Text: "--", Start: 1, End: 3, Type: Punctuation},
				{Text: "b", Start: 3, End: 4, Type: Word},
			},
		},
		{
			name:  "apostrophe joined word",
			input: "Bakı'nın",
			want: []Token{
				{Text: "Bakı'nın", Start: 0, End: 10, Type: Word},
			},
		},
		{
			name:  "decimal comma number",
			input: "35,6",
			want: []Token{
				{Text: "35,6", Start: 0, End: 4, Type: Number},
			},
		},
		{
			name:  "thousand separator dots",
			input: "1.250.000",
			want: []Token{
				{Text: "1.250.000", Start: 0, End: 9, Type: Number},
			},
		},
		{
			name:  "dot between words is punctuation",
			input: "son. Yeni",
			want: []Token{
				{Text: "son", Start: 0, End: 3, Type: Word},
				{Text: ".", Start: 3, End: 4, Type: Punctuation},
				{Text: " ", Start: 4, End: 5, Type: Space},
				{Text: "Yeni", Start: 5, End: 9, Type: Word},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Tokens(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokens(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Tokens(%q)[%d] = %v, want %v", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		lowercase bool
		want      []string
	}{
		{
			name:      "lowercased words",
			input:     "Azərbaycan Gözəl ölkədir.",
			lowercase: true,
			want:      []string{"azərbaycan", "gözəl", "ölkədir"},
		},
		{
			name:      "case preserved",
			input:     "Bakı şəhəri",
			lowercase: false,
			want:      []string{"Bakı", "şəhəri"},
		},
		{
			name:      "dotted I folds to i",
			input:     "İstanbul",
			lowercase: true,
			want:      []string{"istanbul"},
		},
		{
			name:      "ascii I folds to dotless",
			input:     "ILDIRIM",
			lowercase: true,
			want:      []string{"ıldırım"},
		},
		{
			name:      "numbers kept",
			input:     "1992 ildə 3,5 faiz",
			lowercase: true,
			want:      []string{"1992", "ildə", "3,5", "faiz"},
		},
		{
			name:      "category line stripped",
			input:     "Mətn burada bitir.\nKateqoriya: Şəhərlər",
			lowercase: true,
			want:      []string{"mətn", "burada", "bitir"},
		},
		{
			name:      "references heading stripped",
			input:     "Əsas mətn.\nİstinadlar\nwikipedia.org keçidi",
			lowercase: true,
			want:      []string{"əsas", "mətn", "wikipedia", "org", "keçidi"},
		},
		{
			name:      "curly apostrophe folded",
			input:     "Bakı’nın",
			lowercase: true,
			want:      []string{"bakı'nın"},
		},
		{
			name:      "empty",
			input:     "",
			lowercase: true,
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Words(tt.input, tt.lowercase)
			if len(got) != len(tt.want) {
				t.Fatalf("Words(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Words(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"nbsp to space", "a b", "a b"},
		{"curly quotes", "Bakı’nın", "Bakı'nın"},
		{"dashes folded", "1990–1995 — dövr", "1990-1995 - dövr"},
		{"whitespace collapsed", "a   b\t\tc", "a b c"},
		{"nfd recomposed", "gözəl", "gözəl"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSentences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "two plain sentences",
			input: "Bu birinci cümlədir. Bu ikinci cümlədir.",
			want:  []string{"Bu birinci cümlədir.", "Bu ikinci cümlədir."},
		},
		{
			name:  "abbreviation does not break",
			input: "Prof. Əliyev mühazirə oxudu. Sonra getdi.",
			want:  []string{"Prof. Əliyev mühazirə oxudu.", "Sonra getdi."},
		},
		{
			name:  "decimal does not break",
			input: "Dəyər 3.14 oldu. Sonra artdı.",
			want:  []string{"Dəyər 3.14 oldu.", "Sonra artdı."},
		},
		{
			name:  "initials do not break",
			input: "H.Ə. Əliyev çıxış etdi. Zal alqışladı.",
			want:  []string{"H.Ə. Əliyev çıxış etdi.", "Zal alqışladı."},
		},
		{
			name:  "question and exclamation",
			input: "Nə oldu? Heç nə!",
			want:  []string{"Nə oldu?", "Heç nə!"},
		},
		{
			name:  "lowercase continuation does not break",
			input: "Saat 18.30 radələrində gəldi.",
			want:  []string{"Saat 18.30 radələrində gəldi."},
		},
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Sentences(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Sentences(%q) = %q, want %q", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Sentences(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func FuzzTokens(f *testing.F) {
	f.Add("Azərbaycan gözəl ölkədir.")
	f.Add("1.250.000 manat, 35,6 km")
	f.Add("Bakı'nın -- tarixi")
	f.Add("")
	f.Add("\xff\xfe")
	f.Add("\x00")

	f.Fuzz(func(t *testing.T, s string) {
		toks := Tokens(s)
		var sb strings.Builder
		for _, tok := range toks {
			sb.WriteString(tok.Text)
		}
		if sb.String() != s {
			t.Errorf("reconstruction failed:\ninput: %q\ngot:   %q", s, sb.String())
		}
	})
}

func FuzzSentences(f *testing.F) {
	f.Add("Bu birinci cümlədir. Bu ikinci cümlədir.")
	f.Add("Prof. Əliyev... Nə oldu?!")
	f.Add("")
	f.Add("\xff\xfe.")

	f.Fuzz(func(t *testing.T, s string) {
		toks := SentenceTokens(s)
		var sb strings.Builder
		for _, tok := range toks {
			sb.WriteString(tok.Text)
		}
		if sb.String() != s {
			t.Errorf("sentence tokens do not cover input:\ninput: %q\ngot:   %q", s, sb.String())
		}
	})
}
