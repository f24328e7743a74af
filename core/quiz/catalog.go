package quiz

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"

	"github.com/iiskills/shiksha/core"
)

// Catalog holds the reference question set for the process lifetime.
// It is read-only after construction.
type Catalog struct {
	questions []Question
	byID      map[int]Question
}

func NewCatalog(questions []Question) *Catalog {
	byID := make(map[int]Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	return &Catalog{questions: questions, byID: byID}
}

// LoadCatalog reads the question set from path. A missing, malformed or
// invalid file is rewritten with DefaultQuestions and the defaults are used
// (fallback-on-invalid).
func LoadCatalog(path string, logger core.Logger) *Catalog {
	questions, err := loadQuestions(path)
	if err != nil {
		logger.Warn(fmt.Sprintf("quiz: %s invalid, falling back to default question set: %v", path, err))
		questions = DefaultQuestions
		if data, merr := json.MarshalIndent(questions, "", "  "); merr == nil {
			if werr := ioutil.WriteFile(path, data, 0644); werr != nil {
				logger.Warn(fmt.Sprintf("quiz: writing default question set: %v", werr))
			}
		}
	}
	return NewCatalog(questions)
}

func loadQuestions(path string) ([]Question, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("file does not exist")
		}
		return nil, errors.Wrap(err, "reading file")
	}
	var questions []Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, errors.Wrap(err, "parsing file")
	}
	if err := validateQuestions(questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func validateQuestions(questions []Question) error {
	if len(questions) == 0 {
		return errors.New("empty question set")
	}
	for _, q := range questions {
		if q.ID <= 0 || q.Question == "" || q.Explanation == "" {
			return errors.Errorf("question %d: missing required fields", q.ID)
		}
		if len(q.Options) < 2 {
			return errors.Errorf("question %d: needs at least 2 options", q.ID)
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return errors.Errorf("question %d: correct answer index out of range", q.ID)
		}
	}
	return nil
}

// Questions returns the full set, answer key included. Admin use only.
func (c *Catalog) Questions() []Question {
	questions := make([]Question, len(c.questions))
	copy(questions, c.questions)
	return questions
}

// Public returns the set stripped of answer keys, in catalog order.
func (c *Catalog) Public() []PublicQuestion {
	public := make([]PublicQuestion, 0, len(c.questions))
	for _, q := range c.questions {
		public = append(public, q.Public())
	}
	return public
}

func (c *Catalog) Get(id int) (Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

func (c *Catalog) Size() int { return len(c.questions) }
