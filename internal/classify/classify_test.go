package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/questionforge/ingestor/internal/domain"
	"github.com/questionforge/ingestor/internal/logger"
)

func newTestClassifier() *Classifier {
	return New(logger.Nop())
}

func TestClassifierTopic(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name     string
		title    string
		body     string
		expected string
	}{
		{"golang keyword", "Explain goroutine scheduling", "", "Golang"},
		{"go as a whole word", "Why is Go fast?", "", "Golang"},
		{"go inside another word does not match", "A good database question", "", "Database"},
		{"python", "", "Explain Python decorators", "Python"},
		{"system design phrase", "System design for a URL shortener", "", "System Design"},
		{"database", "", "Write a SQL query", "Database"},
		{"devops", "", "What does Docker solve?", "DevOps"},
		{"precedence golang over database", "Go database/sql patterns", "", "Golang"},
		{"no match defaults", "Tell me about yourself", "soft skills", "General"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Topic(tt.title, tt.body))
		})
	}
}

func TestClassifierLevel(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name     string
		title    string
		body     string
		expected string
	}{
		{"fresher", "Entry level interview questions", "", "Fresher"},
		{"fresher vietnamese", "Câu hỏi cho thực tập sinh", "", "Fresher"},
		{"junior what is", "What is a closure?", "", "Junior"},
		{"junior vietnamese", "Closure là gì?", "", "Junior"},
		{"senior design", "Design a rate limiter", "", "Senior"},
		{"senior vietnamese", "Thiết kế hệ thống", "", "Senior"},
		{"fresher wins over junior", "What is an internship project?", "", "Fresher"},
		{"default mid", "Review this pull request", "", "Mid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Level(tt.title, tt.body))
		})
	}
}

func TestClassifierRole(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name     string
		title    string
		body     string
		expected string
	}{
		{"frontend react", "React hooks deep dive", "", "FrontEnd"},
		{"frontend wins over backend", "", "React components fetching from a database", "FrontEnd"},
		{"backend", "", "Designing a REST API", "BackEnd"},
		{"devops", "", "Terraform state management", "DevOps"},
		{"data engineer", "", "Building an ETL pipeline with Airflow", "Data Engineer"},
		{"vietnamese data", "", "Xử lý dữ liệu lớn", "Data Engineer"},
		{"default backend", "Tell me about your last project", "", "BackEnd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Role(tt.title, tt.body))
		})
	}
}

func TestClassifierApply(t *testing.T) {
	c := newTestClassifier()

	t.Run("meta fields win over detection", func(t *testing.T) {
		rec := &domain.RawRecord{
			Title:     "What is Kubernetes?",
			MetaTopic: "Docker",
			MetaRole:  "DevOps",
			MetaLevel: "Senior",
		}
		topic, role, level := c.Apply(rec, "docker and kubernetes basics")
		assert.Equal(t, "Docker", topic)
		assert.Equal(t, "DevOps", role)
		assert.Equal(t, "Senior", level)
	})

	t.Run("detectors fill absent meta fields", func(t *testing.T) {
		rec := &domain.RawRecord{Title: "What is a goroutine?"}
		topic, role, level := c.Apply(rec, "explain channels and the go scheduler")
		assert.Equal(t, "Golang", topic)
		assert.Equal(t, "BackEnd", role)
		assert.Equal(t, "Junior", level)
	})

	t.Run("partial meta only skips its own detector", func(t *testing.T) {
		rec := &domain.RawRecord{
			Title:    "Design a React architecture",
			MetaRole: "FrontEnd",
		}
		topic, role, level := c.Apply(rec, "")
		assert.Equal(t, "General", topic)
		assert.Equal(t, "FrontEnd", role)
		assert.Equal(t, "Senior", level)
	})
}

func TestDetectorWholeWordMatching(t *testing.T) {
	d := newDetector([]Rule{{Label: "Golang", Terms: []string{"go"}}}, "General")

	tests := []struct {
		text     string
		expected string
	}{
		{"go is simple", "Golang"},
		{"learn Go today", "Golang"},
		{"I use go, daily", "Golang"},
		{"a good question", "General"},
		{"django templates", "General"},
		{"cargo build", "General"},
	}

	for _, tt := range tests {
		label, _ := d.detect(tt.text)
		assert.Equal(t, tt.expected, label, "text %q", tt.text)
	}
}

func TestDetectorPhraseMatching(t *testing.T) {
	d := newDetector([]Rule{{Label: "System Design", Terms: []string{"system design"}}}, "General")

	label, defaulted := d.detect("a classic System Design interview")
	assert.Equal(t, "System Design", label)
	assert.False(t, defaulted)

	// Punctuation normalizes to a word boundary, so the phrase still matches.
	label, defaulted = d.detect("the system. design comes later")
	assert.Equal(t, "System Design", label)
	assert.False(t, defaulted)

	label, defaulted = d.detect("design the system")
	assert.Equal(t, "General", label)
	assert.True(t, defaulted)
}

func TestDetectorFallbackFlag(t *testing.T) {
	d := newDetector(topicRules, DefaultTopic)

	_, defaulted := d.detect("explain goroutines")
	assert.False(t, defaulted)

	label, defaulted := d.detect("nothing technical here")
	assert.Equal(t, DefaultTopic, label)
	assert.True(t, defaulted)
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello, World!", "hello world"},
		{"CI/CD pipelines", "ci cd pipelines"},
		{"  spaced   out  ", "spaced out"},
		{"tối ưu hóa", "tối ưu hóa"},
		{"", ""},
		{"?!.,", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, normalizeText(tt.input), "input %q", tt.input)
	}
}
