package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"campus-services-client/internal/lifecycle"
	"campus-services-client/internal/model"
	"campus-services-client/internal/screen"
)

func appointmentsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "appointments",
		Aliases: []string{"appt"},
		Short:   "View and manage appointments",
	}
	cmd.AddCommand(
		appointmentsListCmd(app),
		appointmentsShowCmd(app),
		appointmentsBookCmd(app),
		appointmentActionCmd(app, lifecycle.ActionApprove, "Approve a pending appointment (faculty)"),
		appointmentActionCmd(app, lifecycle.ActionReject, "Reject a pending appointment (faculty)"),
		appointmentActionCmd(app, lifecycle.ActionCancel, "Cancel a pending or approved appointment"),
	)
	return cmd
}

func appointmentsListCmd(app *App) *cobra.Command {
	var (
		filter string
		all    bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your appointments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list := screen.NewAppointmentList(app.API, app.Log)
			if err := list.Load(cmd.Context(), all); err != nil {
				return err
			}
			list.SetFilter(filter)
			apts := list.Visible()
			if len(apts) == 0 {
				fmt.Fprintln(app.Out, "No appointments")
				return nil
			}
			w := tabwriter.NewWriter(app.Out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tTIME\tMIN\tFACULTY\tSTUDENT\tSTATUS")
			for _, a := range apts {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
					a.ID, a.Date, a.Time, a.Duration, a.Faculty.Name, a.Student.Name, a.Status)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&filter, "status", "all", "filter: all, pending, approved, completed, rejected (includes cancelled), cancelled")
	cmd.Flags().BoolVar(&all, "all", false, "list every appointment (admin)")
	return cmd
}

func appointmentsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one appointment with the actions available to you",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail := screen.NewAppointmentDetail(app.API, app.Log)
			if err := detail.Load(cmd.Context(), args[0]); err != nil {
				return err
			}
			a := detail.Appointment()
			fmt.Fprintf(app.Out, "Appointment %s [%s]\n", a.ID, a.Status)
			fmt.Fprintf(app.Out, "  %s at %s (%d min)\n", a.Date, a.Time, a.Duration)
			fmt.Fprintf(app.Out, "  Faculty: %s (%s)\n", a.Faculty.Name, a.Faculty.Department)
			fmt.Fprintf(app.Out, "  Student: %s\n", a.Student.Name)
			fmt.Fprintf(app.Out, "  Reason:  %s\n", a.Reason)
			if a.MeetingLink != "" {
				fmt.Fprintf(app.Out, "  Meeting: %s\n", a.MeetingLink)
			}
			if a.FacultyNotes != "" {
				fmt.Fprintf(app.Out, "  Notes:   %s\n", a.FacultyNotes)
			}
			if actions := detail.Actions(); len(actions) > 0 {
				fmt.Fprintf(app.Out, "  Available (as %s):", detail.Viewer())
				for _, act := range actions {
					fmt.Fprintf(app.Out, " %s", act)
				}
				fmt.Fprintln(app.Out)
			} else {
				fmt.Fprintf(app.Out, "  %s\n", detail.Banner())
			}
			return nil
		},
	}
}

func appointmentsBookCmd(app *App) *cobra.Command {
	var form screen.BookingForm
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book an appointment with a faculty member",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := screen.NewBooking(app.API, app.Log).Submit(cmd.Context(), form)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Appointment requested: %s on %s at %s [%s]\n", a.ID, a.Date, a.Time, a.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&form.FacultyID, "faculty", "", "faculty id")
	cmd.Flags().StringVar(&form.Date, "date", "", "date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&form.Time, "time", "", "time (HH:MM, 24h)")
	cmd.Flags().IntVar(&form.Duration, "duration", 30, "duration in minutes: 15, 30, 45 or 60")
	cmd.Flags().StringVar(&form.Reason, "reason", "", "reason for the appointment")
	return cmd
}

func appointmentActionCmd(app *App, action lifecycle.Action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(action) + " ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail := screen.NewAppointmentDetail(app.API, app.Log)
			if err := detail.Load(cmd.Context(), args[0]); err != nil {
				return err
			}
			if err := detail.Apply(cmd.Context(), action); err != nil {
				return err
			}
			a := detail.Appointment()
			fmt.Fprintf(app.Out, "Appointment %s is now %s\n", a.ID, a.Status)
			if a.Status == model.AppointmentApproved && a.MeetingLink != "" {
				fmt.Fprintf(app.Out, "Meeting link: %s\n", a.MeetingLink)
			}
			return nil
		},
	}
}
