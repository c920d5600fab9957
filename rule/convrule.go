package rule

import (
	"fmt"
	"strings"

	"zhconv/variant"
)

// Action is the global-rule effect a ConvRule can carry: Add merges its pairs into the
// document ruleset, Remove subtracts them (removes always win at build time, spec §4.D).
type Action int

const (
	ActionAdd Action = iota
	ActionRemove
)

// OutputKind selects what a ConvRule renders at its site of occurrence.
type OutputKind int

const (
	OutputNone OutputKind = iota
	OutputNormal
	OutputVariantName
	OutputDescription
)

// Output is the rendering directive of a ConvRule: for OutputVariantName, Variant names which
// variant's display name to emit.
type Output struct {
	Kind    OutputKind
	Variant variant.Variant
}

// ConvRule is a fully parsed `-{ FLAGS | BODY }-` directive.
type ConvRule struct {
	Action   *Action
	Output   Output
	Conv     *Conv
	SetTitle bool
}

// InvalidFlag is returned for a flag character outside "+-RNDHSAT".
type InvalidFlag struct {
	Flag byte
}

func (e *InvalidFlag) Error() string { return fmt.Sprintf("invalid rule flag: %q", e.Flag) }

// InvalidConvForTitle is returned when the 'T' flag is set but the rule body did not parse to a
// non-empty bidirectional mapping (a title rule must name at least one variant's title text).
type InvalidConvForTitle struct{}

func (e *InvalidConvForTitle) Error() string {
	return "title rule requires a non-empty bidirectional conv"
}

func actionPtr(a Action) *Action { return &a }

// ParseConvRule parses the content between `-{` and `}-`. With no '|' present, the whole string
// is BODY; with an empty flags segment before the first '|', BODY is the text after that '|'.
// Either way it renders as Normal output of its Conv, with no action and no title — this is the
// degenerate "bare body" form.
func ParseConvRule(s string) (ConvRule, error) {
	flags, body, hasPipe := strings.Cut(s, "|")
	if !hasPipe || flags == "" {
		body = s
		if hasPipe {
			body = s[len(flags)+1:]
		}
		conv, err := ParseConv(body)
		if err != nil {
			conv = Conv{Kind: ConvAsis, Asis: body}
		}
		return ConvRule{Output: Output{Kind: OutputNormal}, Conv: &conv}, nil
	}

	rule := ConvRule{Output: Output{Kind: OutputNone}}
	bodyIsVariantTag := false
	for i := 0; i < len(flags); i++ {
		switch flags[i] {
		case '+':
			rule.Action = actionPtr(ActionAdd)
		case '-':
			rule.Action = actionPtr(ActionRemove)
		case 'A':
			rule.Action = actionPtr(ActionAdd)
			rule.Output = Output{Kind: OutputNormal}
		case 'H':
			rule.Action = actionPtr(ActionAdd)
			rule.Output = Output{Kind: OutputNone}
		case 'S':
			rule.Output = Output{Kind: OutputNormal}
		case 'N':
			v, err := variant.Parse(strings.TrimSpace(body))
			if err != nil {
				return ConvRule{}, &InvalidConv{Body: body}
			}
			rule.Output = Output{Kind: OutputVariantName, Variant: v}
			bodyIsVariantTag = true
		case 'D':
			rule.Output = Output{Kind: OutputDescription}
		case 'T':
			rule.SetTitle = true
			rule.Output = Output{Kind: OutputNone}
		case 'R':
			return ConvRule{
				Output: Output{Kind: OutputNormal},
				Conv:   &Conv{Kind: ConvAsis, Asis: body},
			}, nil
		default:
			return ConvRule{}, &InvalidFlag{Flag: flags[i]}
		}
	}

	if !bodyIsVariantTag {
		conv, err := ParseConv(body)
		if err != nil {
			return ConvRule{}, err
		}
		rule.Conv = &conv
	}

	if rule.SetTitle {
		if rule.Conv == nil || rule.Conv.Kind != ConvMap || rule.Conv.Bidirectional == nil || rule.Conv.Bidirectional.IsEmpty() {
			return ConvRule{}, &InvalidConvForTitle{}
		}
	}

	return rule, nil
}

// ParseConvRuleInfallible is the tolerant entry point used by the wikitext scanner: any parse
// failure degrades the whole rule content to a literal Asis passthrough instead of propagating
// an error, so a corrupt `-{...}-` piece renders as the text it actually contains.
func ParseConvRuleInfallible(s string) ConvRule {
	rule, err := ParseConvRule(s)
	if err != nil {
		return ConvRule{
			Output: Output{Kind: OutputNormal},
			Conv:   &Conv{Kind: ConvAsis, Asis: s},
		}
	}
	return rule
}

// Render produces the text this rule emits at its site of occurrence for the given target
// variant.
func (r *ConvRule) Render(target variant.Variant) string {
	switch r.Output.Kind {
	case OutputNone:
		return ""
	case OutputVariantName:
		return r.Output.Variant.DisplayName()
	case OutputDescription:
		return r.Conv.Description()
	default:
		return r.Conv.TextForTarget(target)
	}
}

// ConvPairs returns the substitution pairs this rule contributes when acting as a global rule
// (Action != nil); nil for rules with no action.
func (r *ConvRule) ConvPairs(target variant.Variant) []variant.Pair {
	if r.Action == nil || r.Conv == nil {
		return nil
	}
	return r.Conv.ConvPairs(target)
}

// Targeted reports whether this rule, applied at build time for target, contributes an Add or
// a Remove, and the pairs involved. ok is false for rules carrying no action.
func (r *ConvRule) Targeted(target variant.Variant) (action Action, pairs []variant.Pair, ok bool) {
	if r.Action == nil {
		return 0, nil, false
	}
	return *r.Action, r.ConvPairs(target), true
}
