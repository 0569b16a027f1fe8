package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/anvil3d/scenevault/pkg/model"
	"github.com/anvil3d/scenevault/pkg/scene"
	"github.com/anvil3d/scenevault/pkg/spawn"
	"github.com/anvil3d/scenevault/pkg/usecase/persist"
	"github.com/anvil3d/scenevault/pkg/utils/logging"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
)

func consoleCommand() *cli.Command {
	var cfg config

	return &cli.Command{
		Name:  "console",
		Usage: "Interactive scene editing session",
		Flags: globalFlags(&cfg),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := cfg.newLogger().With("session", uuid.New().String())
			ctx = logging.With(ctx, logger)

			store, err := cfg.newStore()
			if err != nil {
				return err
			}

			sc := scene.New()
			spawner := spawn.New(sc)
			uc := persist.New(sc, store, spawner, persist.WithOutput(c.Root().Writer))

			co := &console{
				scene:   sc,
				spawner: spawner,
				uc:      uc,
				out:     c.Root().Writer,
			}

			scanner := bufio.NewScanner(os.Stdin)
			fmt.Fprintf(c.Root().Writer, "Scene console started. Type 'help' for commands, 'exit' to quit.\n")

			for {
				fmt.Fprintf(c.Root().Writer, "> ")
				if !scanner.Scan() {
					break
				}

				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					break
				}

				if err := co.dispatch(ctx, line); err != nil {
					fmt.Fprintf(c.Root().Writer, "error: %s\n", err)
				}
			}

			fmt.Fprintf(c.Root().Writer, "\nScene console closed\n")
			return nil
		},
	}
}

type console struct {
	scene   *scene.Scene
	spawner *spawn.Registry
	uc      *persist.UseCase
	out     io.Writer
}

func (co *console) dispatch(ctx context.Context, line string) error {
	args := strings.Fields(line)
	cmd, args := args[0], args[1:]

	switch cmd {
	case "help":
		co.help()
		return nil
	case "kinds":
		for _, k := range co.spawner.Kinds() {
			fmt.Fprintf(co.out, "  %s (default name %q)\n", k, co.spawner.DefaultName(k))
		}
		return nil
	case "spawn":
		return co.spawnObject(ctx, args)
	case "name":
		return co.rename(args)
	case "move":
		return co.move(args)
	case "parent":
		return co.reparent(args)
	case "ls":
		co.list()
		return nil
	case "save":
		if len(args) != 1 {
			return fmt.Errorf("usage: save <name>")
		}
		return co.uc.HandleSave(ctx, model.SaveRequest{Name: args[0]})
	case "load":
		if len(args) != 1 {
			return fmt.Errorf("usage: load <name>")
		}
		return co.uc.HandleLoad(ctx, model.LoadRequest{Name: args[0]})
	default:
		return fmt.Errorf("unknown command %q, try 'help'", cmd)
	}
}

func (co *console) help() {
	fmt.Fprint(co.out, `commands:
  kinds                           list spawnable kinds
  spawn <kind> [name]             spawn an object
  name <old-name> <new-name>      rename an object
  move <name> <x> <y> <z>         set an object's translation
  parent <child-name> <parent-name>  nest an object under another
  ls                              list tracked objects
  save <name>                     save the scene
  load <name>                     load a scene, replacing the current one
  exit                            quit
`)
}

func (co *console) spawnObject(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: spawn <kind> [name]")
	}
	req := model.SpawnRequest{
		Kind:      model.Kind(args[0]),
		Transform: model.IdentityTransform(),
	}
	if len(args) == 2 {
		req.Name = &args[1]
	}
	if err := co.spawner.Spawn(ctx, req); err != nil {
		return err
	}
	objects := co.scene.Tracked()
	fmt.Fprintf(co.out, "spawned %s\n", objects[len(objects)-1].Name)
	return nil
}

func (co *console) rename(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: name <old-name> <new-name>")
	}
	obj, ok := co.scene.FindByName(args[0])
	if !ok {
		return fmt.Errorf("no object named %q", args[0])
	}
	obj.Name = args[1]
	return nil
}

func (co *console) move(args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("usage: move <name> <x> <y> <z>")
	}
	obj, ok := co.scene.FindByName(args[0])
	if !ok {
		return fmt.Errorf("no object named %q", args[0])
	}

	var coords mgl64.Vec3
	for i, raw := range args[1:] {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("invalid coordinate %q", raw)
		}
		coords[i] = v
	}

	if obj.Transform == nil {
		t := model.IdentityTransform()
		obj.Transform = &t
	}
	obj.Transform.Translation = coords
	return nil
}

func (co *console) reparent(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: parent <child-name> <parent-name>")
	}
	child, ok := co.scene.FindByName(args[0])
	if !ok {
		return fmt.Errorf("no object named %q", args[0])
	}
	parent, ok := co.scene.FindByName(args[1])
	if !ok {
		return fmt.Errorf("no object named %q", args[1])
	}
	// Walk up from the new parent to keep the scene a forest.
	for p, ok := parent, true; ok; p, ok = co.scene.Lookup(p.Parent) {
		if p.Tag == child.Tag {
			return fmt.Errorf("cannot parent %q under its own descendant", args[0])
		}
	}
	child.Parent = parent.Tag
	return nil
}

func (co *console) list() {
	objects := co.scene.Tracked()
	if len(objects) == 0 {
		fmt.Fprintf(co.out, "scene is empty\n")
		return
	}
	for _, obj := range objects {
		line := fmt.Sprintf("  #%d %s (%s)", obj.Tag, obj.Name, obj.Kind)
		if parent, ok := co.scene.Lookup(obj.Parent); ok {
			line += fmt.Sprintf(" parent=%s", parent.Name)
		}
		if obj.Transform != nil && !obj.Transform.IsIdentity() {
			tr := obj.Transform.Translation
			line += fmt.Sprintf(" at (%g, %g, %g)", tr[0], tr[1], tr[2])
		}
		fmt.Fprintln(co.out, line)
	}
}
