package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vivid-arch/laravel-console/internal/app/template"
	"github.com/vivid-arch/laravel-console/internal/infra/logger"
)

const defaultStubsDir = "stubs/vivid"

func stubsPublishCmd(opts *globalOptions) *cobra.Command {
	var dir string
	var force bool

	c := &cobra.Command{
		Use:   "stubs:publish",
		Short: "Copy the built-in templates into the project for customisation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withProject(opts, func(p *projectCtx) error {
				target := strings.TrimSpace(dir)
				if target == "" {
					target = p.cfg.Paths.StubsDir
				}
				if target == "" {
					target = defaultStubsDir
				}
				target = inProject(p.root, target)

				builtin := template.NewLibrary()
				written := 0
				for _, name := range template.Names() {
					path := filepath.Join(target, name+".stub")
					if p.fs.Exists(path) && !force {
						continue
					}
					text, err := builtin.Load(name)
					if err != nil {
						return err
					}
					if err := p.fs.CreateFile(path, []byte(text)); err != nil {
						return err
					}
					written++
				}

				logger.L().Info("stubs.published", "dir", target, "written", written)

				w := cmd.OutOrStdout()
				fmt.Fprintln(w, styles.Success.Render(fmt.Sprintf("%d stub(s) published.", written)))
				fmt.Fprintf(w, "Find them at %s\n", styles.Comment.Render(p.layout.Relative(target)))
				if p.cfg.Paths.StubsDir == "" {
					fmt.Fprintf(w, "Set %s in vivid.yaml to use them.\n", styles.Comment.Render("vivid.paths.stubs_dir"))
				}
				return nil
			})
		},
	}

	c.Flags().StringVar(&dir, "dir", "", "Target directory (defaults to the configured stubs_dir, or stubs/vivid)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite stubs that were already published")
	return c
}
