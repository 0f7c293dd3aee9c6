package cliparse

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"

	"github.com/vk/bargeparse/internal/model"
)

const (
	helpIndent   = "  "
	helpColumn   = 24
	helpWidth    = 78
	helpWrapCols = uint(helpWidth - helpColumn)
)

// RenderUsage builds the one-line usage summary: program name, flags in
// schema order, then positionals, then the subcommand marker.
func RenderUsage(spec *CommandSpec) string {
	parts := []string{"usage:", spec.Prog, "[-h]"}

	for _, d := range spec.Descriptors {
		if d.Role != model.OptionalFlag {
			continue
		}
		item := d.Flag
		switch {
		case d.Caster.Kind == model.CastBoolean:
			item = d.Flag + " | " + d.NegatedFlag
		case d.Arity == model.List:
			item += " " + metavar(d) + " ..."
		default:
			item += " " + metavar(d)
		}
		if !d.Required {
			item = "[" + item + "]"
		}
		parts = append(parts, item)
	}

	for _, d := range spec.Descriptors {
		if d.Role != model.Positional {
			continue
		}
		switch {
		case d.Arity == model.List:
			parts = append(parts, "["+d.Param.Name+" ...]")
		case d.Required:
			parts = append(parts, d.Param.Name)
		default:
			parts = append(parts, "["+d.Param.Name+"]")
		}
	}

	if len(spec.Subcommands) > 0 {
		names := make([]string, len(spec.Subcommands))
		for i, s := range spec.Subcommands {
			names[i] = s.Name
		}
		parts = append(parts, "{"+strings.Join(names, ",")+"} ...")
	}

	return strings.Join(parts, " ")
}

// RenderHelp builds the full --help output: usage, description, the
// positional and option sections, and the subcommand listing.
func RenderHelp(spec *CommandSpec) string {
	var b strings.Builder
	b.WriteString(RenderUsage(spec))
	b.WriteString("\n")

	if spec.Description != "" {
		b.WriteString("\n")
		b.WriteString(spec.Description)
		b.WriteString("\n")
	}

	var positionals, flags []*model.ArgumentDescriptor
	for _, d := range spec.Descriptors {
		if d.Role == model.Positional {
			positionals = append(positionals, d)
		} else {
			flags = append(flags, d)
		}
	}

	if len(positionals) > 0 {
		b.WriteString("\npositional arguments:\n")
		for _, d := range positionals {
			writeRow(&b, d.Param.Name, annotatedHelp(d))
		}
	}

	b.WriteString("\noptions:\n")
	writeRow(&b, "-h, --help", "show this help message and exit")
	for _, d := range flags {
		left := d.Flag
		switch {
		case d.Caster.Kind == model.CastBoolean:
			left = d.Flag + ", " + d.NegatedFlag
		case d.Arity == model.List:
			left = d.Flag + " " + metavar(d) + " ..."
		default:
			left = d.Flag + " " + metavar(d)
		}
		writeRow(&b, left, annotatedHelp(d))
	}

	if len(spec.Subcommands) > 0 {
		b.WriteString("\nsubcommands:\n")
		for _, s := range spec.Subcommands {
			writeRow(&b, s.Name, s.Summary)
		}
	}

	return b.String()
}

// annotatedHelp appends the "(required)" and "(default: X)" notes to a
// descriptor's help text, in parentheses after the text when both are
// present.
func annotatedHelp(d *model.ArgumentDescriptor) string {
	var notes []string
	if d.Required && d.Role == model.OptionalFlag {
		notes = append(notes, "required")
	}
	if d.Param.HasDefault && d.Caster.Kind != model.CastBoolean && d.Param.DefaultRaw != "" {
		notes = append(notes, "default: "+d.Param.DefaultRaw)
	}

	help := d.Param.Help
	switch {
	case len(notes) == 0:
		return help
	case help == "":
		return "(" + strings.Join(notes, ", ") + ")"
	default:
		return help + " (" + strings.Join(notes, ", ") + ")"
	}
}

// writeRow emits one two-column help row, wrapping the right column and
// pushing it to the next line when the left column overflows.
func writeRow(b *strings.Builder, left, right string) {
	b.WriteString(helpIndent)
	b.WriteString(left)
	if right == "" {
		b.WriteString("\n")
		return
	}

	pad := helpColumn - len(helpIndent) - len(left)
	if pad < 2 {
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", helpColumn))
	} else {
		b.WriteString(strings.Repeat(" ", pad))
	}

	lines := strings.Split(wordwrap.WrapString(right, helpWrapCols), "\n")
	for i, line := range lines {
		if i > 0 {
			b.WriteString(strings.Repeat(" ", helpColumn))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
}

// metavar is the value placeholder shown in usage: the parameter name
// upper-cased with dashes as underscores.
func metavar(d *model.ArgumentDescriptor) string {
	return strings.ToUpper(strings.ReplaceAll(d.Param.Name, "-", "_"))
}
