package validate

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Errors maps a field name to a human-readable violation message.
// An empty map means the input was accepted.
type Errors map[string]string

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation: ok"
	}
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return "validation: " + strings.Join(parts, "; ")
}

// Ok reports whether the input passed every rule.
func (e Errors) Ok() bool { return len(e) == 0 }

// Rule checks a single string value and returns "" when it is acceptable,
// otherwise the message to show for the field. Rules never touch the network.
type Rule func(value string) string

// Field runs rules in order and records the first violation under name.
// Later rules are skipped so the user sees one message per field.
func (e Errors) Field(name, value string, rules ...Rule) {
	if _, seen := e[name]; seen {
		return
	}
	for _, r := range rules {
		if msg := r(value); msg != "" {
			e[name] = msg
			return
		}
	}
}

func MinLen(n int, label string) Rule {
	return func(v string) string {
		if len([]rune(v)) < n {
			if n == 1 {
				return fmt.Sprintf("%s tem no mínimo 1 caracteres.", label)
			}
			return fmt.Sprintf("%s precisa ter pelo menos %d caracteres.", label, n)
		}
		return ""
	}
}

func MaxLen(n int, label string) Rule {
	return func(v string) string {
		if len([]rune(v)) > n {
			return fmt.Sprintf("%s tem no máximo %d caracteres.", label, n)
		}
		return ""
	}
}

func ExactLen(n int, label string) Rule {
	return func(v string) string {
		if len([]rune(v)) != n {
			return fmt.Sprintf("%s precisa ter %d caracteres.", label, n)
		}
		return ""
	}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func Email() Rule {
	return func(v string) string {
		if !emailPattern.MatchString(v) {
			return "Email inválido"
		}
		return ""
	}
}

// hourPattern accepts 0-23 with an optional leading zero.
var hourPattern = regexp.MustCompile(`^(0?[0-9]|1[0-9]|2[0-3])$`)

func Hour(label string) Rule {
	return func(v string) string {
		if !hourPattern.MatchString(v) {
			return fmt.Sprintf("%s precisa ser um número positivo entre 0 e 23.", label)
		}
		return ""
	}
}

// OneOf checks closed-set membership, e.g. enum-backed selects.
func OneOf(values []string, msg string) Rule {
	return func(v string) string {
		for _, allowed := range values {
			if v == allowed {
				return ""
			}
		}
		return msg
	}
}

// PositiveInt accepts base-10 integers greater than zero.
func PositiveInt(msg string) Rule {
	return func(v string) string {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n <= 0 {
			return msg
		}
		return ""
	}
}
