// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ConfigConflictId Id = iota + 1
	ConfigLoadFailedId
	ConfigSaveFailedId
	UnknownSettingId
	InvalidUsageId
	ImportFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Render renders the issue for the terminal. stylePath is a glamour style
// name ("dark", "light", "notty") or a path to a JSON style file.
func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 {
		extraMd += "\n\n## See also:\n"
		for _, link := range i.docLinks {
			extraMd += "- <" + string(link) + ">\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	configConflictIssue = &Issue{
		id: ConfigConflictId,
		mdMsg: `
# Conflicting options!

Some options are mutually exclusive: they belong to different option groups
that share the same conflict tag, and only one of those groups may be used
per invocation.

## Things you can try:
- Keep the options of one group and drop the others
- Run the command once per group instead of combining them
- Use ` + "`configopt --help`" + ` to see which group each flag belongs to`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load the configuration file!

The configuration file exists but could not be read or parsed.

## Things you can try:
- Check that the file uses INI syntax:
~~~ini
[general]
base_url = http://localhost:8080
headers = on
~~~
- Check the file permissions
- Point to another file with ` + "`--config <path>`",
	}

	configSaveFailedIssue = &Issue{
		id: ConfigSaveFailedId,
		mdMsg: `
# Failed to save the configuration file!

The resolved configuration could not be written.

## Things you can try:
- Make sure the parent directory exists and is writable
- Save to another location with ` + "`--config <path>`",
	}

	unknownSettingIssue = &Issue{
		id: UnknownSettingId,
		mdMsg: `
# Unknown setting!

Settings are addressed as ` + "`group.option`" + `, e.g. ` + "`general.base_url`" + `.

## Things you can try:
- List the available settings:
~~~
$ configopt show
~~~`,
	}

	invalidUsageIssue = &Issue{
		id: InvalidUsageId,
		mdMsg: `
# Invalid command line!

A flag was not recognized or is missing its argument.

## Things you can try:
- Run ` + "`configopt --help`" + ` to list the accepted flags
- Use ` + "`--flag=value`" + ` when the value starts with a dash`,
	}

	importFailedIssue = &Issue{
		id: ImportFailedId,
		mdMsg: `
# Failed to import settings!

Imported files are read by extension: ` + "`.json`, `.yaml`, `.yml`, `.toml`" + `.
Top-level keys are groups, nested keys are options.

~~~yaml
general:
  base_url: http://localhost:8080
  headers: true
~~~`,
	}

	issues = map[Id]*Issue{
		configConflictIssue.Id():   configConflictIssue,
		configLoadFailedIssue.Id(): configLoadFailedIssue,
		configSaveFailedIssue.Id(): configSaveFailedIssue,
		unknownSettingIssue.Id():   unknownSettingIssue,
		invalidUsageIssue.Id():     invalidUsageIssue,
		importFailedIssue.Id():     importFailedIssue,
	}
)

// Values returns every catalogued issue ordered by Id.
func Values() []*Issue {
	ids := make([]Id, 0, len(issues))
	for id := range issues {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]*Issue, 0, len(ids))
	for _, id := range ids {
		out = append(out, issues[id])
	}
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
