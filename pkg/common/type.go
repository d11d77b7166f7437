package common

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

const (
	accountSeparator     = ":"
	ruleFieldSeparator   = ";"
	mappingPairSeparator = "="
	attachmentRuleFields = 5
)

// AccountMapping maps a logical account name (Expenses:Food) to the folder
// holding its files, relative to the ledger root. Values use ':' as the
// hierarchy separator.
type AccountMapping struct {
	paths map[string]string
}

func NewAccountMapping(paths map[string]string) AccountMapping {
	copied := make(map[string]string, len(paths))
	for k, v := range paths {
		copied[k] = v
	}

	return AccountMapping{paths: copied}
}

// ParseAccountMapping reads a list of key=value pairs.
func ParseAccountMapping(pairs []string) (AccountMapping, error) {
	paths := map[string]string{}

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, mappingPairSeparator)
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		if !ok || key == "" || value == "" {
			return AccountMapping{}, errors.Wrapf(ErrConfiguration, "invalid account mapping %q", pair)
		}

		paths[key] = value
	}

	return AccountMapping{paths: paths}, nil
}

func (m AccountMapping) Lookup(account string) (string, bool) {
	v, ok := m.paths[account]
	return v, ok
}

// FolderSegments splits the mapped path of account into path segments.
func (m AccountMapping) FolderSegments(account string) ([]string, bool) {
	v, ok := m.paths[account]
	if !ok {
		return nil, false
	}

	return strings.Split(v, accountSeparator), true
}

func (m AccountMapping) Accounts() []string {
	keys := lo.Keys(m.paths)
	sort.Strings(keys)

	return keys
}

func (m AccountMapping) Len() int {
	return len(m.paths)
}

// AttachmentRule routes attachments whose file name matches Pattern into
// Account. The attachment date is read from FileName[SkipStart:SkipEnd].
type AttachmentRule struct {
	Account     string
	Pattern     string
	SkipStart   int
	SkipEnd     int
	DisplayName string
}

func (r AttachmentRule) String() string {
	return "(Account " + r.Account + "; Pattern " + r.Pattern +
		", Skip " + strconv.Itoa(r.SkipStart) + "-" + strconv.Itoa(r.SkipEnd) +
		", Name " + r.DisplayName + ")"
}

// ParseAttachmentRule reads account;glob;skipStart;skipEnd;displayName.
func ParseAttachmentRule(raw string) (AttachmentRule, error) {
	parts := strings.Split(raw, ruleFieldSeparator)
	if len(parts) != attachmentRuleFields {
		return AttachmentRule{}, errors.Wrapf(ErrConfiguration,
			"attachment rule %q: expected %d fields, got %d", raw, attachmentRuleFields, len(parts))
	}

	start, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return AttachmentRule{}, errors.Wrapf(errors.Mark(err, ErrConfiguration),
			"attachment rule %q: invalid skip start", raw)
	}

	end, err := strconv.Atoi(strings.TrimSpace(parts[3]))
	if err != nil {
		return AttachmentRule{}, errors.Wrapf(errors.Mark(err, ErrConfiguration),
			"attachment rule %q: invalid skip end", raw)
	}

	return AttachmentRule{
		Account:     strings.TrimSpace(parts[0]),
		Pattern:     strings.TrimSpace(parts[1]),
		SkipStart:   start,
		SkipEnd:     end,
		DisplayName: strings.TrimSpace(parts[4]),
	}, nil
}

func ParseAttachmentRules(raw []string) ([]AttachmentRule, error) {
	rules := make([]AttachmentRule, 0, len(raw))

	for _, r := range raw {
		rule, err := ParseAttachmentRule(r)
		if err != nil {
			return nil, err
		}

		rules = append(rules, rule)
	}

	return rules, nil
}
