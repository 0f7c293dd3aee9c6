package cliparse

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vk/bargeparse/internal/model"
)

// CommandSpec is the adapter-visible slice of a command: everything the
// parser needs, nothing it should not touch (no casters' internals, no
// handler).
type CommandSpec struct {
	// Prog is the program name used in usage lines and diagnostics. For
	// subcommands it includes the parent path, e.g. "tool sync".
	Prog string

	Summary     string
	Description string

	// Descriptors is the compiled argument sequence, positionals first.
	Descriptors []*model.ArgumentDescriptor

	// Subcommands lists the registered children in registration order.
	Subcommands []SubcommandInfo
}

// SubcommandInfo is the help-facing view of a registered subcommand.
type SubcommandInfo struct {
	Name    string
	Summary string
}

// Result is the outcome of one parse: raw token runs keyed by canonical
// parameter name, plus the selected subcommand and its unparsed
// remainder, when one was named.
type Result struct {
	Raw     map[string][]string
	Sub     string
	SubArgv []string
}

// flagRef resolves one flag spelling to its descriptor. Boolean
// descriptors contribute two spellings, the plain and the negated form.
type flagRef struct {
	d       *model.ArgumentDescriptor
	negated bool
}

// Parse walks argv against the command spec. Help requests render to
// output and return ErrHelp; every other failure is a *ParseError. The
// returned mapping holds raw tokens only; casting happens downstream.
func Parse(spec *CommandSpec, argv []string, output io.Writer) (*Result, error) {
	flags := make(map[string]*flagRef)
	var positionals []*model.ArgumentDescriptor
	for _, d := range spec.Descriptors {
		if d.Role == model.Positional {
			positionals = append(positionals, d)
			continue
		}
		flags[d.Flag] = &flagRef{d: d}
		if d.NegatedFlag != "" {
			flags[d.NegatedFlag] = &flagRef{d: d, negated: true}
		}
	}
	subs := make(map[string]bool, len(spec.Subcommands))
	for _, s := range spec.Subcommands {
		subs[s.Name] = true
	}
	// A bare token can only name a subcommand once every required
	// fixed-arity positional has been fed. Tuples reserve their full
	// token count.
	requiredTokens := 0
	for _, d := range positionals {
		if !d.Required {
			continue
		}
		switch {
		case d.Caster.Kind == model.CastTuple:
			requiredTokens += d.Caster.TupleLen
		case d.Arity == model.Single:
			requiredTokens++
		}
	}

	res := &Result{Raw: make(map[string][]string)}
	var bare []string
	afterDoubleDash := false

	for i := 0; i < len(argv); i++ {
		tok := argv[i]

		if !afterDoubleDash && tok == "--" {
			afterDoubleDash = true
			continue
		}

		if !afterDoubleDash && isFlagToken(tok) {
			if tok == "-h" || tok == "--help" {
				fmt.Fprint(output, RenderHelp(spec))
				return nil, ErrHelp
			}
			if !strings.HasPrefix(tok, "--") {
				return nil, &ParseError{Reason: fmt.Sprintf("unrecognized flag: %s", tok)}
			}
			name, inline, hasInline := strings.Cut(tok, "=")
			ref, known := flags[name]
			if !known {
				return nil, &ParseError{Reason: fmt.Sprintf("unrecognized flag: %s", name)}
			}
			d := ref.d
			key := d.Param.Name

			switch {
			case d.Caster.Kind == model.CastBoolean:
				if hasInline {
					return nil, &ParseError{Arg: name, Reason: "does not take a value"}
				}
				res.Raw[key] = []string{strconv.FormatBool(!ref.negated)}

			case d.Arity == model.List:
				if hasInline {
					res.Raw[key] = []string{inline}
					continue
				}
				var run []string
				for i+1 < len(argv) && !isBoundary(argv[i+1]) {
					i++
					run = append(run, argv[i])
				}
				res.Raw[key] = run

			default:
				if hasInline {
					res.Raw[key] = []string{inline}
					continue
				}
				if i+1 >= len(argv) || isBoundary(argv[i+1]) {
					return nil, &ParseError{Arg: d.Flag, Reason: "expected one argument"}
				}
				i++
				res.Raw[key] = []string{argv[i]}
			}
			continue
		}

		if res.Sub == "" && subs[tok] && len(bare) >= requiredTokens {
			res.Sub = tok
			res.SubArgv = argv[i+1:]
			break
		}
		bare = append(bare, tok)
	}

	if err := assignPositionals(positionals, bare, res.Raw); err != nil {
		return nil, err
	}
	if err := checkChoices(spec.Descriptors, res.Raw); err != nil {
		return nil, err
	}
	for _, d := range spec.Descriptors {
		if d.Role == model.OptionalFlag && d.Required {
			if _, ok := res.Raw[d.Param.Name]; !ok {
				return nil, &ParseError{
					Arg:    d.Flag,
					Reason: "missing required value",
					Err:    &MissingArgumentError{Name: d.Flag},
				}
			}
		}
	}
	return res, nil
}

// assignPositionals matches bare tokens against positional descriptors
// left to right. Tokens are reserved for required single-arity
// positionals that come later, so an optional positional never starves
// a required one; a list positional takes whatever remains.
func assignPositionals(positionals []*model.ArgumentDescriptor, bare []string, raw map[string][]string) error {
	idx := 0
	for pi, d := range positionals {
		left := len(bare) - idx
		reserved := 0
		for _, later := range positionals[pi+1:] {
			if later.Required && later.Arity == model.Single {
				reserved++
			}
		}
		name := d.Param.Name

		switch {
		case d.Arity == model.Single && d.Required:
			if left == 0 {
				return &ParseError{
					Arg:    name,
					Reason: "missing required value",
					Err:    &MissingArgumentError{Name: name},
				}
			}
			raw[name] = []string{bare[idx]}
			idx++

		case d.Arity == model.Single:
			if left > reserved {
				raw[name] = []string{bare[idx]}
				idx++
			}

		case d.Caster.Kind == model.CastTuple:
			n := d.Caster.TupleLen
			if left-reserved < n {
				return &ParseError{Arg: name, Reason: fmt.Sprintf("expected %d values", n)}
			}
			raw[name] = bare[idx : idx+n]
			idx += n

		default:
			take := left - reserved
			if take < 0 {
				take = 0
			}
			if take == 0 && d.Param.HasDefault {
				// Leave the run unset so the default applies.
				continue
			}
			raw[name] = bare[idx : idx+take]
			idx += take
		}
	}
	if idx < len(bare) {
		return &ParseError{
			Reason: "unrecognized arguments: " + strings.Join(bare[idx:], " "),
		}
	}
	return nil
}

// checkChoices validates enum-typed raw tokens against their choice set
// before any conversion runs, so the user sees the permitted literals.
func checkChoices(descriptors []*model.ArgumentDescriptor, raw map[string][]string) error {
	for _, d := range descriptors {
		choices := choiceSet(d)
		if choices == nil {
			continue
		}
		for _, tok := range raw[d.Param.Name] {
			ok := false
			for _, c := range choices {
				if tok == c {
					ok = true
					break
				}
			}
			if !ok {
				err := &model.InvalidChoiceError{Value: tok, Choices: choices}
				return &ParseError{Arg: d.DisplayName(), Reason: err.Error(), Err: err}
			}
		}
	}
	return nil
}

// choiceSet returns the descriptor's choice set, looking through list
// and tuple casters to their element.
func choiceSet(d *model.ArgumentDescriptor) []string {
	if d.Caster.Choices != nil {
		return d.Caster.Choices
	}
	if d.Caster.Elem != nil {
		return d.Caster.Elem.Choices
	}
	return nil
}

// isBoundary reports tokens that terminate a greedy value run.
func isBoundary(tok string) bool {
	return tok == "--" || isFlagToken(tok)
}

// isFlagToken reports tokens that look like flags. Negative numbers do
// not; they are values.
func isFlagToken(tok string) bool {
	if len(tok) < 2 || tok[0] != '-' {
		return false
	}
	if _, err := strconv.ParseFloat(tok, 64); err == nil {
		return false
	}
	return true
}

// FormatError renders a parse failure the way the CLI surface promises:
// the usage line, then "<prog>: error: argument <name>: <reason>".
func FormatError(spec *CommandSpec, err *ParseError) string {
	return RenderUsage(spec) + "\n" + spec.Prog + ": error: " + err.Error()
}
