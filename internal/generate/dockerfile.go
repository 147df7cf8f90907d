package generate

import (
	"strings"

	"github.com/RevCBH/livegen/internal/project"
)

// instruction is one Dockerfile line.
type instruction struct {
	keyword string
	args    string
}

func (i instruction) String() string {
	return i.keyword + " " + i.args
}

// Dockerfile renders the container build file. The base image and the
// dependency list are passed through as-is, so an empty selection still yields
// a "FROM " or "RUN pip install " line.
func Dockerfile(cfg project.Config) string {
	instructions := []instruction{
		{keyword: "FROM", args: cfg.BaseImage},
		{keyword: "RUN", args: "pip install " + strings.Join(cfg.Dependencies, " ")},
		{keyword: "CMD", args: execForm(commandOrDefault(cfg.Command))},
	}

	lines := make([]string, len(instructions))
	for i, in := range instructions {
		lines[i] = in.String()
	}
	return strings.Join(lines, "\n")
}

var execEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// execForm wraps the command as a single-element JSON array.
func execForm(command string) string {
	return `["` + execEscaper.Replace(command) + `"]`
}
