package extract

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/pdiddy/trend-report/pkg/types"
)

// --- StripTags ---

func TestStripTags(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{"empty", "", ""},
		{"plain text untouched", "plain text", "plain text"},
		{"simple tags", "<p>Hello</p>", "Hello"},
		{"nested tags", "<p>Hello <b>world</b></p>", "Hello world"},
		{"self closing", "a<br>b", "a b"},
		{"attributes", `<a href="https://example.test/x?a=1">link</a>`, "link"},
		{"uppercase closing tag", "A</P>B", "A B"},
		{"newlines become spaces", "line1\nline2\r\nline3", "line1 line2 line3"},
		{"double space collapsed", "a  b", "a b"},
		// The collapse is one pass: four spaces become two, not one.
		{"long runs keep residue", "x<div>\n\n</div>y", "x  y"},
		{"tag only", "<p></p>", ""},
		{"angle text is a tag", "1 <token> 2", "1  2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripTags(tt.html); got != tt.want {
				t.Errorf("StripTags(%q) = %q, want %q", tt.html, got, tt.want)
			}
		})
	}
}

// --- HumanDate ---

func TestHumanDate(t *testing.T) {
	tests := []struct {
		name string
		ms   json.Number
		want string
	}{
		{"normal timestamp", "1694012345678", "2023-09-06 14:59:05"},
		{"epoch zero formats", "0", "1970-01-01 00:00:00"},
		{"missing is empty", "", ""},
		{"malformed is empty", "not-a-number", ""},
		{"float is empty", "1694012345678.5", ""},
		{"negative before epoch", "-1000", "1969-12-31 23:59:59"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HumanDate(tt.ms); got != tt.want {
				t.Errorf("HumanDate(%q) = %q, want %q", tt.ms, got, tt.want)
			}
		})
	}
}

// --- URL ---

func TestURL(t *testing.T) {
	tests := []struct {
		name    string
		article types.Article
		want    string
	}{
		{
			name:    "canonical wins",
			article: types.Article{CanonicalURL: "https://a.test/c", Alternate: []types.Link{{Href: "https://a.test/alt"}}},
			want:    "https://a.test/c",
		},
		{
			name:    "first alternate fallback",
			article: types.Article{Alternate: []types.Link{{Href: "https://a.test/1"}, {Href: "https://a.test/2"}}},
			want:    "https://a.test/1",
		},
		{
			name:    "no location",
			article: types.Article{Title: "no links"},
			want:    "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := URL(tt.article); got != tt.want {
				t.Errorf("URL() = %q, want %q", got, tt.want)
			}
		})
	}
}

// --- Content ---

func TestContent(t *testing.T) {
	tests := []struct {
		name    string
		article types.Article
		want    string
	}{
		{
			name: "full content wins",
			article: types.Article{
				FullContent: "<p>full</p>",
				Content:     types.ContentBlock{Content: "<p>body</p>"},
				Summary:     types.ContentBlock{Content: "<p>summary</p>"},
			},
			want: "full",
		},
		{
			name: "body beats summary",
			article: types.Article{
				Content: types.ContentBlock{Content: "<p>body</p>"},
				Summary: types.ContentBlock{Content: "<p>summary</p>"},
			},
			want: "body",
		},
		{
			name:    "summary only",
			article: types.Article{Summary: types.ContentBlock{Content: "summary text"}},
			want:    "summary text",
		},
		{
			name:    "nothing available",
			article: types.Article{},
			want:    "",
		},
		{
			// Precedence looks at the raw HTML, so a candidate that strips
			// to nothing still shadows the later ones.
			name: "empty after strip is not replaced",
			article: types.Article{
				FullContent: "<p></p>",
				Summary:     types.ContentBlock{Content: "readable"},
			},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Content(tt.article); got != tt.want {
				t.Errorf("Content() = %q, want %q", got, tt.want)
			}
		})
	}
}

// --- Categories / TypeLabel ---

func TestCategories(t *testing.T) {
	tests := []struct {
		name    string
		article types.Article
		want    []string
	}{
		{
			name: "regulatory changes",
			article: types.Article{
				BusinessEvents: []types.Entity{{ID: "nlp/f/businessEvent/regulatory-changes"}},
			},
			want: []string{"Regulatory"},
		},
		{
			name: "regulatory approvals",
			article: types.Article{
				BusinessEvents: []types.Entity{{ID: "nlp/f/businessEvent/regulatory-approvals"}},
			},
			want: []string{"Regulatory"},
		},
		{
			name: "both regulatory ids dedup",
			article: types.Article{
				BusinessEvents: []types.Entity{
					{ID: "nlp/f/businessEvent/regulatory-changes"},
					{ID: "nlp/f/businessEvent/regulatory-approvals"},
				},
			},
			want: []string{"Regulatory"},
		},
		{
			name: "conference",
			article: types.Article{
				BusinessEvents: []types.Entity{{ID: "nlp/f/businessEvent/participation-in-an-event"}},
			},
			want: []string{"Conferences"},
		},
		{
			name: "expert mention",
			article: types.Article{
				CommonTopics: []types.Entity{{ID: "nlp/f/topic/6001"}},
			},
			want: []string{"Expert Mentions"},
		},
		{
			name: "match order preserved",
			article: types.Article{
				BusinessEvents: []types.Entity{
					{ID: "nlp/f/businessEvent/participation-in-an-event"},
					{ID: "nlp/f/businessEvent/regulatory-changes"},
				},
				CommonTopics: []types.Entity{{ID: "nlp/f/topic/6001"}},
			},
			want: []string{"Conferences", "Regulatory", "Expert Mentions"},
		},
		{
			name: "unrelated annotations ignored",
			article: types.Article{
				BusinessEvents: []types.Entity{{ID: "nlp/f/businessEvent/product-launches"}},
				CommonTopics:   []types.Entity{{ID: "nlp/f/topic/42"}},
			},
			want: nil,
		},
		{
			name:    "no annotations",
			article: types.Article{},
			want:    nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Categories(tt.article)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Categories() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTypeLabel(t *testing.T) {
	a := types.Article{
		BusinessEvents: []types.Entity{{ID: "nlp/f/businessEvent/regulatory-changes"}},
		CommonTopics:   []types.Entity{{ID: "nlp/f/topic/6001"}},
	}
	if got := TypeLabel(a); got != "Regulatory, Expert Mentions" {
		t.Errorf("TypeLabel() = %q", got)
	}
	if got := TypeLabel(types.Article{}); got != "" {
		t.Errorf("TypeLabel(empty) = %q, want empty", got)
	}
}

// --- Classify ---

func TestClassify(t *testing.T) {
	a := types.Article{
		ID:           "feedly/entry/abc",
		Title:        "New rules announced",
		CanonicalURL: "https://news.test/rules",
		FullContent:  "<p>Regulators move.</p>",
		Crawled:      "1694012345678",
		BusinessEvents: []types.Entity{
			{ID: "nlp/f/businessEvent/regulatory-approvals", Label: "Regulatory Approvals"},
		},
	}

	got := Classify(a)
	want := types.ClassifiedArticle{
		ID:      "feedly/entry/abc",
		Title:   "New rules announced",
		Crawled: "2023-09-06 14:59:05",
		URL:     "https://news.test/rules",
		Content: "Regulators move.",
		Type:    "Regulatory",
	}
	if got != want {
		t.Errorf("Classify() = %+v, want %+v", got, want)
	}
}
