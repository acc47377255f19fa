package domain

// SourceVietnamMarket is the source label on curated dataset records.
// The publisher maps it to the Vietnamese language code.
const SourceVietnamMarket = "Vietnam IT Job Market"

// RawRecord is the ephemeral output of an extractor: one piece of source
// content plus whatever classification metadata the source already carries.
// It lives only for the duration of a single ingestion call, after which it
// is folded into a CrawledQuestion.
type RawRecord struct {
	Source  string `json:"source"`
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`

	// Meta* fields are populated by extractors that already know the
	// correct classification (e.g. the curated dataset). When set, the
	// corresponding detector is skipped downstream.
	MetaTopic string   `json:"meta_topic,omitempty"`
	MetaRole  string   `json:"meta_role,omitempty"`
	MetaLevel string   `json:"meta_level,omitempty"`
	MetaTags  []string `json:"meta_tags,omitempty"`

	// Curated records may ship a hint and a reference answer.
	Hint          string `json:"hint,omitempty"`
	CorrectAnswer string `json:"correct_answer,omitempty"`
}

// Empty reports whether the record carries no usable content.
// A record with neither title nor content is malformed and fails the batch.
func (r *RawRecord) Empty() bool {
	return r.Title == "" && r.Content == ""
}
