package decor

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/pooriaaskarim/logd-sub003/event"
	"github.com/pooriaaskarim/logd-sub003/ir"
)

// Styleable selects one color rule: a semantic role at a severity.
type Styleable struct {
	Tag   ir.Tag
	Level event.Level
}

// Colors maps semantic roles to color functions. Roles without an entry
// render through Default.
type Colors struct {
	Default func(string, ...any) string
	Map     map[Styleable]func(string, ...any) string
}

// styleOrder is the precedence when a segment carries several role bits.
var styleOrder = []ir.Tag{
	ir.TagBorder,
	ir.TagIndent,
	ir.TagLevel,
	ir.TagTimestamp,
	ir.TagError,
	ir.TagStack,
	ir.TagKey,
	ir.TagValue,
	ir.TagMessage,
}

func NewColors() *Colors {
	colors := &Colors{
		Default: fmt.Sprintf,
		Map:     map[Styleable]func(string, ...any) string{},
	}
	dim := color.New(color.Faint).SprintfFunc()
	for _, lvl := range event.Levels() {
		able := Styleable{Level: lvl}
		able.Tag = ir.TagBorder
		colors.Map[able] = dim
		able.Tag = ir.TagIndent
		colors.Map[able] = dim
		able.Tag = ir.TagTimestamp
		colors.Map[able] = dim
		able.Tag = ir.TagStack
		colors.Map[able] = dim
		able.Tag = ir.TagKey
		colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
		able.Tag = ir.TagValue
		colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
		able.Tag = ir.TagError
		colors.Map[able] = color.RedString
	}

	able := Styleable{Tag: ir.TagLevel}
	able.Level = event.DebugLevel
	colors.Map[able] = color.CyanString
	able.Level = event.InfoLevel
	colors.Map[able] = color.GreenString
	able.Level = event.WarnLevel
	colors.Map[able] = color.YellowString
	able.Level = event.ErrorLevel
	colors.Map[able] = color.RedString
	able.Level = event.FatalLevel
	colors.Map[able] = color.New(color.FgRed, color.Bold).SprintfFunc()
	able.Level = event.PanicLevel
	colors.Map[able] = color.New(color.FgMagenta, color.Bold).SprintfFunc()
	return colors
}

// Color styles s according to the highest-precedence role present in tags.
func (c *Colors) Color(tags ir.Tag, lvl event.Level, s string) string {
	for _, t := range styleOrder {
		if !tags.Has(t) {
			continue
		}
		if fn, ok := c.Map[Styleable{Tag: t, Level: lvl}]; ok {
			return fn("%s", s)
		}
	}
	return c.Default("%s", s)
}
