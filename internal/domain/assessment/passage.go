package assessment

import "strings"

// Compose builds an ability paragraph from canned sentences and free text.
//
// Ids are resolved in order and unknown ids are dropped. Each sentence loses
// its trailing periods, the sentences are joined with ". " and the result ends
// with exactly one period. Non-empty custom text is appended after one space.
func Compose(ids []string, bank map[string]string, custom string) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		text, ok := bank[id]
		if !ok {
			continue
		}
		text = strings.TrimRight(strings.TrimSpace(text), ".")
		if text == "" {
			continue
		}
		parts = append(parts, text)
	}

	var b strings.Builder
	if len(parts) > 0 {
		b.WriteString(strings.Join(parts, ". "))
		b.WriteByte('.')
	}

	if custom = strings.TrimSpace(custom); custom != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(custom)
	}

	return b.String()
}
