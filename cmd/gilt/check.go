package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"gilt/css"
	"gilt/state"
)

func runCheck(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() == 0 {
		return errors.New("at least one stylesheet file is required")
	}

	bad := 0
	for _, fname := range cmd.Args().Slice() {
		if err := checkFile(env, fname); err != nil {
			bad++
		}
	}
	if bad > 0 {
		return fmt.Errorf("%d of %d file(s) have problems", bad, cmd.Args().Len())
	}
	env.Log.Info("All files are clean", zap.Int("files", cmd.Args().Len()))
	return nil
}

func checkFile(env *state.LocalEnv, fname string) error {
	data, err := os.ReadFile(fname)
	if err != nil {
		env.Log.Error("Unable to read file", zap.String("file", fname), zap.Error(err))
		return err
	}

	sheet, err := css.NewParser(env.Log).Parse(data)
	if err != nil {
		var perr *css.ParseError
		if errors.As(err, &perr) && !perr.EOF {
			// reported offsets are relative to comment-stripped source
			stripped := css.StripComments(string(data))
			line, col, _ := parse.Position(strings.NewReader(stripped), perr.Offset)
			env.Log.Error("Syntax error",
				zap.String("file", fname), zap.Int("line", line), zap.Int("col", col), zap.String("problem", perr.Message))
		} else {
			env.Log.Error("Syntax error", zap.String("file", fname), zap.Error(err))
		}
		return err
	}

	if err := css.ValidateStylesheet(sheet); err != nil {
		for _, e := range multierr.Errors(err) {
			env.Log.Error("Bad declaration", zap.String("file", fname), zap.Error(e))
		}
		return err
	}

	env.Log.Info("File is clean", zap.String("file", fname), zap.Int("rules", len(sheet.Rules)))
	return nil
}
