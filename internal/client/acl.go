package client

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-proxy-keeper/internal/service"
	"github.com/MKhiriev/go-proxy-keeper/models"
	"github.com/spf13/cobra"
)

func (a *App) newACLCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "acl",
		Short: "Manage rule list sync jobs",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "schedule <route>",
			Short: "Schedule a rule list sync for route",
			Args:  cobra.ExactArgs(1),
			RunE:  a.withServices(a.scheduleACL),
		},
		&cobra.Command{
			Use:   "sync <route>",
			Short: "Download the rule list for route now",
			Args:  cobra.ExactArgs(1),
			RunE:  a.withServices(a.syncACL),
		},
		&cobra.Command{
			Use:   "list",
			Short: "List pending sync jobs",
			Args:  cobra.NoArgs,
			RunE:  a.withServices(a.listJobs),
		},
		&cobra.Command{
			Use:   "cancel <handle>",
			Short: "Cancel a pending sync job",
			Args:  cobra.ExactArgs(1),
			RunE:  a.withServices(a.cancelJob),
		},
	)

	return cmd
}

type servicesRunE func(cmd *cobra.Command, services *service.Services, args []string) error

// withServices opens the job services for the duration of one command.
func (a *App) withServices(run servicesRunE) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		services, release, err := a.deps.Services(cmd.Context(), a.cfg, a.handle, a.build.BuildVersion(), a.logger)
		if err != nil {
			return err
		}
		defer func() {
			if err := release(); err != nil {
				a.logger.Err(err).Msg("failed to release services")
			}
		}()

		return run(cmd, services, args)
	}
}

func (a *App) scheduleACL(cmd *cobra.Command, services *service.Services, args []string) error {
	handle, err := services.SyncJobScheduler.Schedule(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), handle)
	return nil
}

func (a *App) syncACL(cmd *cobra.Command, services *service.Services, args []string) error {
	route := args[0]

	outcome, err := services.JobRunners.Run(cmd.Context(), service.AclSyncJobKind, route)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", route, outcome)
	if outcome != models.JobSuccess {
		return fmt.Errorf("%w: %s", ErrJobNotSucceeded, outcome)
	}
	return nil
}

func (a *App) listJobs(cmd *cobra.Command, services *service.Services, _ []string) error {
	requests, err := services.SyncJobScheduler.Pending(cmd.Context())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "HANDLE\tTAG\tATTEMPTS\tRUNNABLE AT")
	for _, req := range requests {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", req.ID, req.Tag, req.Attempts, req.RunnableAt().Local().Format(time.DateTime))
	}
	return w.Flush()
}

func (a *App) cancelJob(cmd *cobra.Command, services *service.Services, args []string) error {
	return services.SyncJobScheduler.Cancel(cmd.Context(), args[0])
}
