package platform

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"
)

const (
	kwinRulesFileName = "kwinrulesrc"
	kwinGeneral       = "General"

	// Policy value 2 means "Force"; match value 2 means substring match.
	kwinPolicyForce    = "2"
	kwinMatchSubstring = "2"
)

// iniKey is a key line, or a comment line kept verbatim when raw is set.
type iniKey struct {
	name  string
	value string
	raw   string
}

type iniSection struct {
	name string
	keys []iniKey
}

// kwinRules is an order-preserving view of kwinrulesrc. Comments stay
// attached to the section they appear in.
type kwinRules struct {
	preamble []string
	sections []*iniSection
}

func parseKWinRules(data []byte) *kwinRules {
	rules := &kwinRules{}
	var current *iniSection

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			if current == nil {
				rules.preamble = append(rules.preamble, line)
			} else {
				current.keys = append(current.keys, iniKey{raw: line})
			}
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			current = rules.ensureSection(strings.TrimSpace(line[1 : len(line)-1]))
			continue
		}
		if current == nil {
			continue
		}
		name, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		current.set(strings.TrimSpace(name), strings.TrimSpace(value))
	}
	return rules
}

func (rules *kwinRules) bytes() []byte {
	var buffer bytes.Buffer
	for _, line := range rules.preamble {
		buffer.WriteString(line + "\n")
	}
	for index, section := range rules.sections {
		if index > 0 || len(rules.preamble) > 0 {
			buffer.WriteByte('\n')
		}
		buffer.WriteString("[" + section.name + "]\n")
		for _, key := range section.keys {
			if key.raw != "" {
				buffer.WriteString(key.raw + "\n")
				continue
			}
			buffer.WriteString(key.name + "=" + key.value + "\n")
		}
	}
	return buffer.Bytes()
}

func (rules *kwinRules) section(name string) *iniSection {
	for _, section := range rules.sections {
		if section.name == name {
			return section
		}
	}
	return nil
}

func (rules *kwinRules) ensureSection(name string) *iniSection {
	if section := rules.section(name); section != nil {
		return section
	}
	section := &iniSection{name: name}
	rules.sections = append(rules.sections, section)
	return section
}

func (rules *kwinRules) removeSection(name string) {
	kept := rules.sections[:0]
	for _, section := range rules.sections {
		if section.name != name {
			kept = append(kept, section)
		}
	}
	rules.sections = kept
}

func (section *iniSection) get(name string) (string, bool) {
	for _, key := range section.keys {
		if key.raw == "" && key.name == name {
			return key.value, true
		}
	}
	return "", false
}

func (section *iniSection) set(name, value string) {
	for index := range section.keys {
		if section.keys[index].raw == "" && section.keys[index].name == name {
			section.keys[index].value = value
			return
		}
	}
	section.keys = append(section.keys, iniKey{name: name, value: value})
}

func kwinRuleDescription(windowClass string) string {
	return windowClass + " keep above"
}

// ruleIDs returns the rule section names listed in [General].
func (rules *kwinRules) ruleIDs() []string {
	general := rules.section(kwinGeneral)
	if general == nil {
		return nil
	}
	value, _ := general.get("rules")
	var ids []string
	for _, id := range strings.Split(value, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func (rules *kwinRules) setRuleIDs(ids []string) {
	general := rules.ensureSection(kwinGeneral)
	general.set("count", strconv.Itoa(len(ids)))
	general.set("rules", strings.Join(ids, ","))
}

// findRule returns the id of the rule created for windowClass.
func (rules *kwinRules) findRule(windowClass string) string {
	description := kwinRuleDescription(windowClass)
	for _, id := range rules.ruleIDs() {
		section := rules.section(id)
		if section == nil {
			continue
		}
		if value, _ := section.get("Description"); value == description {
			return id
		}
	}
	return ""
}

// upsertKeepAbove adds or refreshes the keep-above rule for windowClass
// and returns its id. newID is only called when no rule exists yet.
func (rules *kwinRules) upsertKeepAbove(windowClass string, newID func() string) string {
	id := rules.findRule(windowClass)
	if id == "" {
		id = newID()
		rules.setRuleIDs(append(rules.ruleIDs(), id))
	}

	section := rules.ensureSection(id)
	section.set("Description", kwinRuleDescription(windowClass))
	section.set("wmclass", windowClass)
	section.set("wmclassmatch", kwinMatchSubstring)
	section.set("above", "true")
	section.set("aboverule", kwinPolicyForce)
	section.set("skiptaskbar", "true")
	section.set("skiptaskbarrule", kwinPolicyForce)
	return id
}

// removeKeepAbove deletes the rule for windowClass and reports whether one existed.
func (rules *kwinRules) removeKeepAbove(windowClass string) bool {
	id := rules.findRule(windowClass)
	if id == "" {
		return false
	}
	rules.removeSection(id)

	ids := rules.ruleIDs()
	kept := ids[:0]
	for _, existing := range ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	rules.setRuleIDs(kept)
	return true
}
