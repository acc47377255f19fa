package classify

import (
	"github.com/questionforge/ingestor/internal/domain"
	"github.com/questionforge/ingestor/internal/logger"
	"github.com/questionforge/ingestor/internal/metrics"
)

// Defaults returned when no rule matches.
const (
	DefaultTopic = "General"
	DefaultLevel = "Mid"
	DefaultRole  = "BackEnd"
)

// Topic rules, in precedence order. Single tokens match whole-word;
// multi-word terms match as phrases.
var topicRules = []Rule{
	{Label: "Golang", Terms: []string{"golang", "go", "goroutine"}},
	{Label: "Python", Terms: []string{"python", "list comprehension"}},
	{Label: "System Design", Terms: []string{"system design", "scalability"}},
	{Label: "Database", Terms: []string{"database", "sql"}},
	{Label: "DevOps", Terms: []string{"kubernetes", "docker", "ci/cd"}},
}

// Level rules. Each set carries English terms and Vietnamese equivalents,
// since the curated dataset is bilingual.
var levelRules = []Rule{
	{Label: "Fresher", Terms: []string{
		"fresher", "entry level", "internship",
		"thực tập", "mới ra trường",
	}},
	{Label: "Junior", Terms: []string{
		"basic", "what is", "define",
		"cơ bản", "là gì",
	}},
	{Label: "Senior", Terms: []string{
		"design", "architecture", "trade-off", "optimize",
		"thiết kế", "kiến trúc", "tối ưu",
	}},
}

// Role rules. FrontEnd is checked first, so content naming both "react" and
// "database" classifies as FrontEnd.
var roleRules = []Rule{
	{Label: "FrontEnd", Terms: []string{
		"react", "vue", "angular", "css", "frontend",
		"giao diện",
	}},
	{Label: "BackEnd", Terms: []string{
		"backend", "api", "database", "microservices", "server",
		"máy chủ",
	}},
	{Label: "DevOps", Terms: []string{
		"kubernetes", "docker", "ci/cd", "terraform", "devops",
		"hạ tầng",
	}},
	{Label: "Data Engineer", Terms: []string{
		"etl", "spark", "kafka", "airflow", "data warehouse",
		"dữ liệu",
	}},
}

// Classifier maps (title, normalized content) to topic, level, and role.
// All three detectors are pure: same input, same output.
type Classifier struct {
	topic *detector
	level *detector
	role  *detector
	log   logger.Logger
}

// New builds a Classifier with the built-in rule sets.
func New(log logger.Logger) *Classifier {
	return &Classifier{
		topic: newDetector(topicRules, DefaultTopic),
		level: newDetector(levelRules, DefaultLevel),
		role:  newDetector(roleRules, DefaultRole),
		log:   log,
	}
}

// Topic returns the detected topic for the given title and content.
func (c *Classifier) Topic(title, body string) string {
	return c.run("topic", c.topic, title, body)
}

// Level returns the detected seniority level.
func (c *Classifier) Level(title, body string) string {
	return c.run("level", c.level, title, body)
}

// Role returns the detected role.
func (c *Classifier) Role(title, body string) string {
	return c.run("role", c.role, title, body)
}

// Apply resolves the final topic, role, and level for a record. Extractor
// metadata wins; a detector only runs when its meta field is absent.
func (c *Classifier) Apply(rec *domain.RawRecord, normalized string) (topic, role, level string) {
	topic = rec.MetaTopic
	if topic == "" {
		topic = c.Topic(rec.Title, normalized)
	}
	role = rec.MetaRole
	if role == "" {
		role = c.Role(rec.Title, normalized)
	}
	level = rec.MetaLevel
	if level == "" {
		level = c.Level(rec.Title, normalized)
	}
	return topic, role, level
}

func (c *Classifier) run(name string, d *detector, title, body string) string {
	label, defaulted := d.detect(title + " " + body)
	if defaulted {
		metrics.ClassificationDefaulted.WithLabelValues(name).Inc()
		c.log.Debug("classification defaulted",
			logger.String("detector", name),
			logger.String("label", label),
			logger.String("title", title))
	}
	return label
}
