// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	JavaNotFoundId Id = iota + 1
	LaunchFailedId
	MainClassMissingId
	ConfigLoadFailedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation links for the issue type
	extLinks []HttpLink  // external links that might be useful for the user
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

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	javaNotFoundIssue = &Issue{
		id: JavaNotFoundId,
		mdMsg: `
# Java executable not found!

We could not locate the ` + "`java`" + ` executable on this host, so no
virtual machine was started.

## How the executable is located:
1. The ` + "`JAVA_HOME`" + ` environment variable must point at a Java installation
2. ` + "`$JAVA_HOME/bin/java`" + ` (or ` + "`java.exe`" + ` on Windows) must exist

## Things you can try:
- Check that a JDK or JRE is installed:
~~~
$ java -version
~~~

- Point JAVA_HOME at your installation:
~~~
$ export JAVA_HOME=/usr/lib/jvm/default
~~~

- Or set it persistently in your config file:
~~~cue
java_home: "/usr/lib/jvm/default"
~~~`,
	}

	launchFailedIssue = &Issue{
		id: LaunchFailedId,
		mdMsg: `
# Virtual machine launch failed!

The java executable was found but the child process could not be
started.

## Common causes:
- The executable is not actually runnable (permissions, wrong architecture)
- The configured main class does not exist on the classpath
- An OS-level spawn limit was hit

## Things you can try:
- Run with verbose mode for the full error chain:
~~~
$ jvmlaunch --verbose run <main-class>
~~~

- Check the executable directly:
~~~
$ "$JAVA_HOME/bin/java" -version
~~~

- Verify the classpath entries exist and are readable`,
	}

	mainClassMissingIssue = &Issue{
		id: MainClassMissingId,
		mdMsg: `
# No main class given!

A launch needs the fully qualified name of the class to start
executing.

## Example:
~~~
$ jvmlaunch run org.example.Main -- arg1 arg2
~~~

Everything after ` + "`--`" + ` is passed to the application verbatim.`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the jvmlaunch configuration file.

## Configuration file locations:
- Linux: ~/.config/jvmlaunch/config.cue
- macOS: ~/Library/Application Support/jvmlaunch/config.cue
- Windows: %APPDATA%\jvmlaunch\config.cue

## Things you can try:
- Create a default configuration:
~~~
$ jvmlaunch config init
~~~

- Check the configuration syntax
- Remove the config file to use defaults

## Example configuration:
~~~cue
java_home: "/usr/lib/jvm/default"
default_max_memory_mb: 512

ui: {
  color_scheme: "auto"
  verbose: false
}
~~~`,
	}

	issues = map[Id]*Issue{
		javaNotFoundIssue.Id():     javaNotFoundIssue,
		launchFailedIssue.Id():     launchFailedIssue,
		mainClassMissingIssue.Id(): mainClassMissingIssue,
		configLoadFailedIssue.Id(): configLoadFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
