package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vivid-arch/laravel-console/internal/usecase"
)

func makeDeviceCmd(opts *globalOptions) *cobra.Command {
	var noAssets bool

	c := &cobra.Command{
		Use:   "make:device <name>",
		Short: "Create a new device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProject(opts, func(p *projectCtx) error {
				device, err := usecase.NewMakeDevice(p.deps()).Execute(args[0], !noAssets)
				if err != nil {
					return err
				}

				providers, err := p.layout.ProvidersNamespace(device.Name)
				if err != nil {
					return err
				}
				provider := providers + `\` + device.Name + "ServiceProvider"

				w := cmd.OutOrStdout()
				fmt.Fprintln(w, styles.Success.Render(fmt.Sprintf("Device %s created successfully.", device.Name)))
				fmt.Fprintln(w)
				fmt.Fprintf(w, "Activate it by registering %s\n", styles.Comment.Render(provider))
				fmt.Fprintln(w, "in config/vivid.php inside the devices array with the following:")
				fmt.Fprintln(w)
				fmt.Fprintln(w, styles.Comment.Render(fmt.Sprintf("'%s' => true,", provider)))
				return nil
			})
		},
	}

	c.Flags().BoolVar(&noAssets, "no-assets", false, "Do not create the resources directories and welcome view")
	return c
}

func makeControllerCmd(opts *globalOptions) *cobra.Command {
	var resource bool
	var invokable bool

	c := &cobra.Command{
		Use:   "make:controller <controller> <device>",
		Short: "Create a new controller in a device",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := usecase.PlainController
			switch {
			case resource:
				kind = usecase.ResourceController
			case invokable:
				kind = usecase.InvokableController
			}

			return withProject(opts, func(p *projectCtx) error {
				ctrl, err := usecase.NewMakeController(p.deps()).Execute(args[0], args[1], kind)
				if err != nil {
					return err
				}
				printCreated(cmd.OutOrStdout(), "Controller", ctrl.ClassName, ctrl.RelativePath)
				return nil
			})
		},
	}

	c.Flags().BoolVar(&resource, "resource", false, "Generate a resource controller")
	c.Flags().BoolVar(&invokable, "invokable", false, "Generate a single-action controller")
	c.MarkFlagsMutuallyExclusive("resource", "invokable")
	return c
}

func makeFeatureCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "make:feature <feature> [device]",
		Short: "Create a new feature and its test",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProject(opts, func(p *projectCtx) error {
				feature, err := usecase.NewMakeFeature(p.deps()).Execute(args[0], optionalArg(args, 1))
				if err != nil {
					return err
				}
				printCreated(cmd.OutOrStdout(), "Feature", feature.ClassName, feature.RelativePath)
				return nil
			})
		},
	}
}

func makeJobCmd(opts *globalOptions) *cobra.Command {
	var queue bool

	c := &cobra.Command{
		Use:   "make:job <job> <domain>",
		Short: "Create a new job and its test in a domain",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProject(opts, func(p *projectCtx) error {
				job, err := usecase.NewMakeJob(p.deps()).Execute(args[0], args[1], queue)
				if err != nil {
					return err
				}
				printCreated(cmd.OutOrStdout(), "Job", job.ClassName, job.RelativePath)
				return nil
			})
		},
	}

	c.Flags().BoolVarP(&queue, "queue", "Q", false, "Make the job queueable")
	return c
}

func makeOperationCmd(opts *globalOptions) *cobra.Command {
	var queue bool
	var jobs []string

	c := &cobra.Command{
		Use:   "make:operation <operation> [device]",
		Short: "Create a new operation and its test",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProject(opts, func(p *projectCtx) error {
				op, err := usecase.NewMakeOperation(p.deps()).Execute(usecase.OperationInput{
					Name:      args[0],
					Device:    optionalArg(args, 1),
					Queueable: queue,
					Jobs:      jobs,
				})
				if err != nil {
					return err
				}
				printCreated(cmd.OutOrStdout(), "Operation", op.ClassName, op.RelativePath)
				return nil
			})
		},
	}

	c.Flags().BoolVarP(&queue, "queue", "Q", false, "Make the operation queueable")
	c.Flags().StringArrayVar(&jobs, "job", nil, "Existing job to run from the operation (repeatable)")
	return c
}

func makeRequestCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "make:request <request> <device>",
		Short: "Create a new form request in a device",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProject(opts, func(p *projectCtx) error {
				req, err := usecase.NewMakeRequest(p.deps()).Execute(args[0], args[1])
				if err != nil {
					return err
				}
				printCreated(cmd.OutOrStdout(), "Request", req.ClassName, req.RelativePath)
				return nil
			})
		},
	}
}

func makePolicyCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "make:policy <policy>",
		Short: "Create a new policy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProject(opts, func(p *projectCtx) error {
				policy, err := usecase.NewMakePolicy(p.deps()).Execute(args[0])
				if err != nil {
					return err
				}
				printCreated(cmd.OutOrStdout(), "Policy", policy.ClassName, policy.RelativePath)
				return nil
			})
		},
	}
}

func makeModelCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "make:model <model>",
		Short: "Create a new Eloquent model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProject(opts, func(p *projectCtx) error {
				model, err := usecase.NewMakeModel(p.deps()).Execute(args[0])
				if err != nil {
					return err
				}
				printCreated(cmd.OutOrStdout(), "Model", model.ClassName, model.RelativePath)
				return nil
			})
		},
	}
}

func optionalArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
