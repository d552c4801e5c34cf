package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"campus-services-client/internal/lifecycle"
	"campus-services-client/internal/model"
	"campus-services-client/internal/screen"
)

func complaintsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complaints",
		Short: "File and track facility complaints",
	}
	cmd.AddCommand(
		complaintsListCmd(app),
		complaintsShowCmd(app),
		complaintsCreateCmd(app),
		complaintsSetStatusCmd(app),
	)
	return cmd
}

func complaintsListCmd(app *App) *cobra.Command {
	var status, ctype string
	var all bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your complaints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list := screen.NewComplaintList(app.API, app.Log)
			if err := list.Load(cmd.Context(), all); err != nil {
				return err
			}
			list.SetStatusFilter(status)
			list.SetTypeFilter(ctype)
			cs := list.Visible()
			if len(cs) == 0 {
				fmt.Fprintln(app.Out, "No complaints")
				return nil
			}
			w := tabwriter.NewWriter(app.Out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTYPE\tTITLE\tLOCATION\tPRIORITY\tSTATUS")
			for _, c := range cs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					c.ID, c.Type, c.Title, c.Location, c.Priority, lifecycle.ComplaintStatusLabel(c.Status))
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&status, "status", "all", "filter: "+strings.Join(screen.ComplaintStatusFilters, ", "))
	cmd.Flags().StringVar(&ctype, "type", "all", "filter by complaint type")
	cmd.Flags().BoolVar(&all, "all", false, "list every complaint (staff)")
	return cmd
}

func complaintsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one complaint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail := screen.NewComplaintDetail(app.API, app.Log)
			if err := detail.Load(cmd.Context(), args[0]); err != nil {
				return err
			}
			c := detail.Complaint()
			fmt.Fprintf(app.Out, "Complaint %s [%s]\n", c.ID, lifecycle.ComplaintStatusLabel(c.Status))
			fmt.Fprintf(app.Out, "  %s: %s\n", model.ComplaintTypeLabels[c.Type], c.Title)
			fmt.Fprintf(app.Out, "  %s\n", c.Description)
			fmt.Fprintf(app.Out, "  Location: %s", c.Location)
			if c.Building != "" {
				fmt.Fprintf(app.Out, ", %s", c.Building)
			}
			if c.Floor != "" {
				fmt.Fprintf(app.Out, ", floor %s", c.Floor)
			}
			fmt.Fprintln(app.Out)
			fmt.Fprintf(app.Out, "  Priority: %s\n", c.Priority)
			fmt.Fprintf(app.Out, "  Filed by: %s (%s)\n", c.User.Name, c.User.Role)
			if c.AssignedTo != nil {
				fmt.Fprintf(app.Out, "  Assigned: %s\n", c.AssignedTo.Name)
			}
			if c.AdminNotes != "" {
				fmt.Fprintf(app.Out, "  Notes:    %s\n", c.AdminNotes)
			}
			if c.ResolvedAt != nil {
				fmt.Fprintf(app.Out, "  Resolved: %s\n", c.ResolvedAt.Format("2006-01-02 15:04"))
			}
			if detail.CanUpdateStatus() {
				fmt.Fprintf(app.Out, "  You can set status to:")
				for _, s := range detail.Transitions() {
					fmt.Fprintf(app.Out, " %s", s)
				}
				fmt.Fprintln(app.Out)
			}
			return nil
		},
	}
}

func complaintsCreateCmd(app *App) *cobra.Command {
	var form screen.ComplaintForm
	var ctype, priority string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "File a new complaint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form.Type = model.ComplaintType(ctype)
			form.Priority = model.Priority(priority)
			c, err := screen.NewComplaintCreate(app.API, app.Log).Submit(cmd.Context(), form)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Complaint submitted: %s [%s]\n", c.ID, c.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&ctype, "type", "", "complaint type (ac, projector, wifi, ...)")
	cmd.Flags().StringVar(&form.Title, "title", "", "short title")
	cmd.Flags().StringVar(&form.Description, "description", "", "what is wrong")
	cmd.Flags().StringVar(&form.Location, "location", "", "where (room, lab, ...)")
	cmd.Flags().StringVar(&form.Building, "building", "", "building (optional)")
	cmd.Flags().StringVar(&form.Floor, "floor", "", "floor (optional)")
	cmd.Flags().StringVar(&priority, "priority", "medium", "low, medium, high or urgent")
	return cmd
}

func complaintsSetStatusCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "set-status ID STATUS",
		Short: "Set a complaint's status (staff only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail := screen.NewComplaintDetail(app.API, app.Log)
			if err := detail.Load(cmd.Context(), args[0]); err != nil {
				return err
			}
			declined := false
			confirm := func(prompt string) bool {
				if yes {
					return true
				}
				fmt.Fprintf(app.Out, "%s [y/N] ", prompt)
				answer := strings.ToLower(app.readLine())
				if answer != "y" && answer != "yes" {
					declined = true
					return false
				}
				return true
			}
			target := model.ComplaintStatus(args[1])
			if err := detail.SetStatus(cmd.Context(), target, confirm); err != nil {
				return err
			}
			if declined {
				fmt.Fprintln(app.Out, "Aborted")
				return nil
			}
			c := detail.Complaint()
			fmt.Fprintf(app.Out, "Complaint %s is now %s\n", c.ID, lifecycle.ComplaintStatusLabel(c.Status))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
