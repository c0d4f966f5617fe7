package clirk

import "strings"

// HelpMessage renders the --help output
func (c *Context) HelpMessage() string {
	s := c.styles

	header := "\n"
	if c.Icon != "" {
		header += c.Icon + " "
	}
	header += s.Bold(s.Cyan(c.Name + " — " + c.Title))

	pkg := c.VersionMessage()
	if c.Package.Homepage != "" {
		pkg += "\n" + s.Dim(s.Underline(c.Package.Homepage))
	}

	blocks := []string{header, pkg}

	if len(c.Description) > 0 {
		blocks = append(blocks, strings.Join(c.Description, "\n"))
	}

	usage := s.Bold(c.UsageLabel+":") + "\n\n" + indentLines(c.Examples, "  ", s.Yellow)
	if len(c.Usage) > 0 {
		usage += "\n\n" + indentLines(c.Usage, "  ", nil)
	}
	blocks = append(blocks, usage)

	if len(c.Parameters) > 0 {
		items := make([]string, 0, len(c.Parameters))
		for _, p := range c.Parameters {
			item := "  " + s.Yellow(p.Name)
			if len(p.Description) > 0 {
				item += "\n" + indentLines(p.Description, "    ", nil)
			}
			items = append(items, item)
		}
		blocks = append(blocks, s.Bold(c.ParametersLabel+":")+"\n\n"+strings.Join(items, "\n\n"))
	}

	if len(c.Options) > 0 {
		items := make([]string, 0, len(c.Options))
		for _, o := range c.Options {
			items = append(items, c.optionHelp(o))
		}
		blocks = append(blocks, s.Bold(c.OptionsLabel+":")+"\n\n"+strings.Join(items, "\n\n"))
	}

	return strings.Join(blocks, "\n\n") + "\n"
}

func (c *Context) optionHelp(o Option) string {
	s := c.styles

	item := "  " + s.Yellow("--"+o.Name)
	if o.Type == OptionString {
		item += s.Dim("=<VALUE>")
	}
	if len(o.Description) > 0 {
		item += "\n" + indentLines(o.Description, "    ", nil)
	}

	if len(o.Aliases) > 0 {
		flags := make([]string, 0, len(o.Aliases))
		for _, alias := range o.Aliases {
			if len(alias) == 1 {
				flags = append(flags, "-"+alias)
			} else {
				flags = append(flags, "--"+alias)
			}
		}
		label := "Alias"
		if len(flags) > 1 {
			label = "Aliases"
		}
		item += "\n    " + s.Dim(label+": "+strings.Join(flags, ", "))
	}
	return item
}

// VersionMessage renders the --version output
func (c *Context) VersionMessage() string {
	return c.Package.Name + " v" + c.Package.Version
}

func indentLines(lines []string, indent string, style func(string) string) string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if style != nil {
			line = style(line)
		}
		out = append(out, indent+line)
	}
	return strings.Join(out, "\n")
}
