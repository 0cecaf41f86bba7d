package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vivid-arch/laravel-console/internal/domain"
)

func listDevicesCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list:devices",
		Short: "List the devices of the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withProject(opts, func(p *projectCtx) error {
				devices, err := p.finder.ListDevices()
				if err != nil {
					return err
				}

				w := cmd.OutOrStdout()
				if len(devices) == 0 {
					fmt.Fprintln(w, "(no devices found)")
					return nil
				}

				rows := make([][]string, 0, len(devices))
				for _, d := range devices {
					rows = append(rows, []string{d.Name, d.Slug, d.RelativePath})
				}
				renderTable(w, []string{"Device", "Slug", "Path"}, rows)
				return nil
			})
		},
	}
}

func listFeaturesCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list:features [device]",
		Short: "List the features of every device, or of one device",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProject(opts, func(p *projectCtx) error {
				groups, err := p.finder.ListFeatures(optionalArg(args, 0))
				if err != nil {
					return err
				}

				w := cmd.OutOrStdout()
				if len(groups) == 0 {
					fmt.Fprintln(w, "(no devices found)")
					return nil
				}

				for _, g := range groups {
					fmt.Fprintln(w, styles.Title.Render(g.Device.Name))
					renderFeatures(w, g.Features)
				}
				return nil
			})
		},
	}
}

func listDomainsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list:domains",
		Short: "List the domains of the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withProject(opts, func(p *projectCtx) error {
				domains, err := p.finder.ListDomains()
				if err != nil {
					return err
				}

				w := cmd.OutOrStdout()
				if len(domains) == 0 {
					fmt.Fprintln(w, "(no domains found)")
					return nil
				}

				rows := make([][]string, 0, len(domains))
				for _, d := range domains {
					rows = append(rows, []string{d.Name, d.Slug, d.Namespace, d.RelativePath})
				}
				renderTable(w, []string{"Domain", "Slug", "Namespace", "Path"}, rows)
				return nil
			})
		},
	}
}

func listJobsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list:jobs [domain]",
		Short: "List the jobs of every domain, or of one domain",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProject(opts, func(p *projectCtx) error {
				groups, err := p.finder.ListJobs(optionalArg(args, 0))
				if err != nil {
					return err
				}

				w := cmd.OutOrStdout()
				if len(groups) == 0 {
					fmt.Fprintln(w, "(no domains found)")
					return nil
				}

				for _, g := range groups {
					fmt.Fprintln(w, styles.Title.Render(g.Domain.Name))
					renderJobs(w, g.Jobs)
				}
				return nil
			})
		},
	}
}

func listOperationsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list:operations [device]",
		Short: "List the operations of the project, or of one device",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProject(opts, func(p *projectCtx) error {
				ops, err := p.finder.ListOperations(optionalArg(args, 0))
				if err != nil {
					return err
				}

				w := cmd.OutOrStdout()
				if len(ops) == 0 {
					fmt.Fprintln(w, "(no operations found)")
					return nil
				}

				rows := make([][]string, 0, len(ops))
				for _, op := range ops {
					device := "-"
					if op.Device != nil {
						device = op.Device.Name
					}
					rows = append(rows, []string{op.Title, device, op.Namespace, op.RelativePath})
				}
				renderTable(w, []string{"Operation", "Device", "Namespace", "Path"}, rows)
				return nil
			})
		},
	}
}

func renderJobs(w io.Writer, jobs []domain.Job) {
	rows := make([][]string, 0, len(jobs))
	for _, j := range jobs {
		owner := "-"
		if j.Domain != nil {
			owner = j.Domain.Name
		}
		rows = append(rows, []string{j.Title, owner, j.File, j.RelativePath})
	}
	renderTable(w, []string{"Job", "Domain", "File", "Path"}, rows)
}

func renderFeatures(w io.Writer, features []domain.Feature) {
	rows := make([][]string, 0, len(features))
	for _, f := range features {
		owner := "-"
		if f.Device != nil {
			owner = f.Device.Name
		}
		rows = append(rows, []string{f.Title, owner, f.File, f.RelativePath})
	}
	renderTable(w, []string{"Feature", "Device", "File", "Path"}, rows)
}
