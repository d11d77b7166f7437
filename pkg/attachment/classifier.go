package attachment

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/skynet2/beancount-telegram-importer/pkg/common"
)

// CollisionSuffix is inserted before the extension when the destination
// already exists. Only one level is applied: a third file with the same
// name overwrites the suffixed one.
const CollisionSuffix = "_2"

var dateLayouts = []string{
	time.DateOnly,
	"20060102",
	"2006-01-02T15:04:05",
	"20060102T150405",
	"2006-01-02T15:04",
	"2006-01",
	"200601",
	"2006",
}

type Classifier struct {
	accounts      common.AccountMapping
	rules         []common.AttachmentRule
	rootFolder    string
	stagingFolder string
}

func NewClassifier(
	accounts common.AccountMapping,
	rules []common.AttachmentRule,
	rootFolder string,
	stagingFolder string,
) *Classifier {
	return &Classifier{
		accounts:      accounts,
		rules:         append([]common.AttachmentRule(nil), rules...),
		rootFolder:    rootFolder,
		stagingFolder: stagingFolder,
	}
}

type Match struct {
	Rule common.AttachmentRule
	Date civil.Date
}

type Destination struct {
	Path        string
	Account     string
	Date        civil.Date
	DisplayName string
	Rule        *common.AttachmentRule
	Staged      bool
}

// Match returns the first rule that both matches the file name and yields
// a date.
func (c *Classifier) Match(ctx context.Context, fileName string) (*Match, bool) {
	for _, rule := range c.rules {
		m, err := MatchRule(rule, fileName)
		if err != nil {
			zerolog.Ctx(ctx).Debug().Err(err).Str("file", fileName).
				Stringer("rule", rule).Msg("attachment rule skipped")
			continue
		}

		return m, true
	}

	return nil, false
}

// MatchRule checks a single rule. The error is marked with
// common.ErrRuleMismatch.
func MatchRule(rule common.AttachmentRule, fileName string) (*Match, error) {
	ok, err := path.Match(globPattern(rule.Pattern), fileName)
	if err != nil {
		return nil, errors.Wrapf(errors.Mark(err, common.ErrRuleMismatch), "bad pattern %q", rule.Pattern)
	}

	if !ok {
		return nil, errors.Wrapf(common.ErrRuleMismatch, "%q does not match %q", fileName, rule.Pattern)
	}

	date, err := ExtractDate(pySlice(fileName, rule.SkipStart, rule.SkipEnd))
	if err != nil {
		return nil, err
	}

	return &Match{
		Rule: rule,
		Date: date,
	}, nil
}

// Classify computes where an attachment should be stored. Attachments that
// match no rule go to the staging folder under their original name.
func (c *Classifier) Classify(ctx context.Context, fileName string) (*Destination, error) {
	fileName = filepath.Base(fileName)

	if m, ok := c.Match(ctx, fileName); ok {
		segments, found := c.accounts.FolderSegments(m.Rule.Account)
		if !found {
			return nil, errors.Wrapf(common.ErrAccountNotFound, "attachment rule account %s", m.Rule.Account)
		}

		rule := m.Rule
		name := m.Date.String() + "-" + rule.DisplayName + filepath.Ext(fileName)

		return &Destination{
			Path:        ResolveCollision(filepath.Join(append(append([]string{c.rootFolder}, segments...), name)...)),
			Account:     rule.Account,
			Date:        m.Date,
			DisplayName: rule.DisplayName,
			Rule:        &rule,
		}, nil
	}

	zerolog.Ctx(ctx).Debug().Str("file", fileName).Err(common.ErrRuleMismatch).
		Msg("attachment goes to staging folder")

	return &Destination{
		Path:        ResolveCollision(filepath.Join(c.stagingFolder, fileName)),
		DisplayName: fileName,
		Staged:      true,
	}, nil
}

func ResolveCollision(target string) string {
	if _, err := os.Stat(target); err != nil {
		return target
	}

	ext := filepath.Ext(target)

	return strings.TrimSuffix(target, ext) + CollisionSuffix + ext
}

func ExtractDate(raw string) (civil.Date, error) {
	raw = strings.TrimSpace(raw)

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return civil.DateOf(parsed), nil
		}
	}

	return civil.Date{}, errors.Wrapf(common.ErrRuleMismatch, "no date in %q", raw)
}

// pySlice slices by characters the way s[start:end] does in Python:
// negative indexes count from the end and out of range indexes are clamped.
func pySlice(s string, start int, end int) string {
	runes := []rune(s)
	n := len(runes)

	norm := func(i int) int {
		if i < 0 {
			i += n
			if i < 0 {
				return 0
			}
		}
		if i > n {
			return n
		}

		return i
	}

	start, end = norm(start), norm(end)
	if start >= end {
		return ""
	}

	return string(runes[start:end])
}

// globPattern converts fnmatch negated classes ([!abc]) to the [^abc] form
// understood by path.Match.
func globPattern(pattern string) string {
	return strings.ReplaceAll(pattern, "[!", "[^")
}
