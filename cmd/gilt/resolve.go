package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"gilt/css"
	"gilt/dom"
	"gilt/state"
	"gilt/utils/debug"
)

func runResolve(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() == 0 {
		return errors.New("widget tree file is required")
	}
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many trees", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	fname := cmd.Args().Get(0)
	data, err := os.ReadFile(fname)
	if err != nil {
		return fmt.Errorf("unable to read widget tree '%s': %w", fname, err)
	}
	tree, root, err := dom.ParseMarkup(data, env.Log)
	if err != nil {
		return fmt.Errorf("unable to parse widget tree '%s': %w", fname, err)
	}
	env.Log.Debug("Widget tree loaded", zap.String("file", fname), zap.Int("nodes", tree.Len()))

	defaultPaths := append(append([]string{}, env.Cfg.Stylesheets.DefaultPaths...), cmd.StringSlice("styles")...)
	userPaths := append(append([]string{}, env.Cfg.Stylesheets.UserPaths...), cmd.StringSlice("user")...)

	// within one cascade later sheets win ties, so default sheets go first
	var sheets []*css.CompiledStylesheet
	if sheets, err = loadSheets(env, sheets, defaultPaths, css.OriginDefault); err != nil {
		return err
	}
	if sheets, err = loadSheets(env, sheets, userPaths, css.OriginUser); err != nil {
		return err
	}
	if len(sheets) == 0 {
		env.Log.Warn("No stylesheets to match, all nodes resolve empty")
	}
	env.Sheets = sheets

	cascade := css.NewCascade(env.Log, sheets...)

	type resolved struct {
		path   string
		styles css.Styles
	}
	filter := cmd.String("node")

	var nodes []resolved
	tree.Walk(root, func(id css.NodeID, _ dom.NodeData) bool {
		path := tree.Path(id)
		if len(filter) > 0 && !strings.Contains(path, filter) {
			return true
		}
		nodes = append(nodes, resolved{path: path, styles: cascade.Styles(id, tree)})
		return true
	})
	sort.Slice(nodes, func(i, j int) bool { return natural.Less(nodes[i].path, nodes[j].path) })

	tw := debug.NewTreeWriter()
	for _, n := range nodes {
		tw.Line(0, "%s", n.path)
		props := styleProps(n.styles)
		if len(props) == 0 {
			tw.Line(1, "<empty>")
			continue
		}
		for _, p := range props {
			tw.Field(1, p.name, p.value)
		}
	}
	fmt.Print(tw.String())
	return nil
}

func loadSheets(env *state.LocalEnv, sheets []*css.CompiledStylesheet, paths []string, origin css.Origin) ([]*css.CompiledStylesheet, error) {
	parser := css.NewParser(env.Log)
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("unable to read stylesheet '%s': %w", path, err)
		}
		sheet, err := parser.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("unable to parse stylesheet '%s': %w", path, err)
		}
		compiled := css.Compile(sheet, origin)
		env.Log.Debug("Stylesheet compiled",
			zap.String("file", path), zap.Stringer("origin", origin), zap.Int("rules", compiled.Len()))
		sheets = append(sheets, compiled)
	}
	return sheets, nil
}

type styleProp struct {
	name  string
	value string
}

// styleProps renders set properties in property table order.
func styleProps(s css.Styles) []styleProp {
	var lines []styleProp
	add := func(name string, v fmt.Stringer) {
		lines = append(lines, styleProp{name: name, value: v.String()})
	}
	if s.Display != nil {
		add("display", s.Display)
	}
	if s.Visibility != nil {
		add("visibility", s.Visibility)
	}
	if s.Layout != nil {
		add("layout", s.Layout)
	}
	if s.Dock != nil {
		add("dock", s.Dock)
	}
	if s.OverflowX != nil {
		add("overflow-x", s.OverflowX)
	}
	if s.OverflowY != nil {
		add("overflow-y", s.OverflowY)
	}
	if s.Width != nil {
		add("width", s.Width)
	}
	if s.Height != nil {
		add("height", s.Height)
	}
	if s.MinWidth != nil {
		add("min-width", s.MinWidth)
	}
	if s.MinHeight != nil {
		add("min-height", s.MinHeight)
	}
	if s.MaxWidth != nil {
		add("max-width", s.MaxWidth)
	}
	if s.MaxHeight != nil {
		add("max-height", s.MaxHeight)
	}
	if s.Margin != nil {
		add("margin", s.Margin)
	}
	if s.Padding != nil {
		add("padding", s.Padding)
	}
	if s.Color != nil {
		lines = append(lines, styleProp{name: "color", value: *s.Color})
	}
	if s.Background != nil {
		lines = append(lines, styleProp{name: "background", value: *s.Background})
	}
	if s.TextAlign != nil {
		add("text-align", s.TextAlign)
	}
	if s.TextStyle != nil {
		add("text-style", s.TextStyle)
	}
	if s.Border != nil {
		add("border", s.Border)
	}
	return lines
}
