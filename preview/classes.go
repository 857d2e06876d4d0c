package preview

import (
	"context"
	"fmt"
	"io"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"uitree/markup"
	"uitree/state"
	"uitree/style"
)

func Classes(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("preview")

	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many prefixes", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	n, err := listClasses(cmd.Root().Writer, env.Engine(), cmd.Args().Get(0), cmd.Bool("explain"))
	if err != nil {
		return err
	}
	log.Debug("Classes listed", zap.Int("count", n))
	return nil
}

// listClasses prints known classes starting with prefix, one per line. With
// explain every class is followed by style operations it produces.
func listClasses(w io.Writer, engine *style.Engine, prefix string, explain bool) (int, error) {
	count := 0
	for _, token := range engine.Tokens() {
		if !strings.HasPrefix(token, prefix) {
			continue
		}
		count++
		if !explain {
			if _, err := fmt.Fprintln(w, token); err != nil {
				return count, err
			}
			continue
		}

		var s style.Style
		if err := engine.Apply(&s, []markup.Attr{{Name: "class", Value: token}}); err != nil {
			return count, err
		}
		ops := make([]string, 0, len(s.Ops))
		for _, op := range s.Ops {
			ops = append(ops, op.String())
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", token, strings.Join(ops, " ")); err != nil {
			return count, err
		}
	}
	return count, nil
}
