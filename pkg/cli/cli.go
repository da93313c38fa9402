package cli

import (
	"io"
	"log/slog"

	"github.com/alecthomas/kong"
)

// Context is bound into every command's Run method.
type Context struct {
	Stdout io.Writer
	Logger *slog.Logger
}

// Globals are the flags shared by every command.
type Globals struct {
	Config    kong.ConfigFlag `help:"Load flag values from a JSON configuration file."`
	LogLevel  string          `help:"Log level (${enum})." enum:"debug,info,warn,error" default:"warn" env:"WORDTRIE_LOG_LEVEL"`
	LogFormat string          `help:"Log format (${enum})." enum:"text,json" default:"text" env:"WORDTRIE_LOG_FORMAT"`
}

// CLI is the root command tree.
type CLI struct {
	Globals

	Count CountCmd `cmd:"" default:"withargs" help:"Load a dictionary into a trie and count occurrences of query words."`
}

// Run parses args and executes the selected command. Program output goes to
// stdout, logs and usage to stderr. Extra kong options are applied after the
// defaults.
func Run(args []string, stdout, stderr io.Writer, options ...kong.Option) error {
	var root CLI
	defaults := []kong.Option{
		kong.Name("wordtrie"),
		kong.Description("Count exact word occurrences using an in-memory prefix tree."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON),
	}
	parser, err := kong.New(&root, append(defaults, options...)...)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger, err := NewLogger(stderr, root.LogLevel, root.LogFormat)
	if err != nil {
		return err
	}
	return ctx.Run(&Context{Stdout: stdout, Logger: logger})
}
