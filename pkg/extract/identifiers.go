package extract

import (
	"regexp"
	"strings"
)

var (
	// ecamLabeledPattern matches ECAM/alert names announced by a label,
	// e.g. "ECAM ALERT: AIR PACK 1 FAULT".
	ecamLabeledPattern = regexp.MustCompile(`(?i)(?:ECAM[^:\n]*[:–-]\s*|ALERT[^:\n]*[:–-]\s*|MESSAGE[^:\n]*[:–-]\s*)([A-Z][A-Z0-9 /+]+)`)

	// ecamLoosePattern matches bare upper-case message runs such as
	// "FWC 1 FAULT" or "LGCIU SYS FAULT" when no label announces them.
	ecamLoosePattern = regexp.MustCompile(`\b([A-Z]{2,4}(?:\s+[A-Z]{2,})+(?:\s+\d+)?(?:\s+FAULT)?)\b`)
)

const (
	minLabeledMessageLen = 4
	minLooseMessageLen   = 6
	maxLooseMessages     = 4
)

// messageStrategies is the ordered fallback chain for message extraction,
// most specific first. The first strategy that yields anything wins; the
// header strategy always yields, so the result is never empty for a real
// SUBTASK block.
var messageStrategies = []func(text, header string) []string{
	labeledMessages,
	looseMessages,
	headerMessage,
}

// ExtractECAMMessages returns the ECAM message identifiers named in the
// block, deduplicated in order of first appearance.
func ExtractECAMMessages(text, header string) []string {
	for _, strategy := range messageStrategies {
		if msgs := strategy(text, header); len(msgs) > 0 {
			return msgs
		}
	}
	return nil
}

func labeledMessages(text, _ string) []string {
	set := newOrderedSet()
	for _, m := range ecamLabeledPattern.FindAllStringSubmatch(text, -1) {
		msg := strings.TrimSpace(m[1])
		if len(msg) > minLabeledMessageLen {
			set.Add(msg)
		}
	}
	return set.Items()
}

func looseMessages(text, _ string) []string {
	set := newOrderedSet()
	for _, m := range ecamLoosePattern.FindAllStringSubmatch(text, -1) {
		msg := strings.TrimSpace(m[1])
		if len(msg) > minLooseMessageLen {
			set.Add(msg)
		}
		if set.Len() == maxLooseMessages {
			break
		}
	}
	return set.Items()
}

func headerMessage(_, header string) []string {
	msg := strings.TrimSpace(strings.ReplaceAll(header, "SUBTASK", ""))
	if msg == "" {
		return nil
	}
	return []string{msg}
}
