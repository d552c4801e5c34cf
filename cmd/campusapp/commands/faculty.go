package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"campus-services-client/internal/screen"
)

func facultyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "faculty",
		Short: "Browse the faculty directory",
	}
	cmd.AddCommand(facultyListCmd(app), facultyShowCmd(app))
	return cmd
}

func facultyListCmd(app *App) *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List faculty members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir := screen.NewFacultyDirectory(app.API, app.Log)
			if err := dir.Load(cmd.Context()); err != nil {
				return err
			}
			dir.Search(search)
			fs := dir.Visible()
			if len(fs) == 0 {
				fmt.Fprintln(app.Out, "No faculty found")
				return nil
			}
			w := tabwriter.NewWriter(app.Out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tDEPARTMENT\tDESIGNATION\tEMAIL")
			for _, f := range fs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", f.ID, f.Name, f.Department, f.Designation, f.Email)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "search by name, department, email or designation")
	return cmd
}

func facultyShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one faculty member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := app.API.GetFaculty(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "%s\n", f.Name)
			if f.Designation != "" {
				fmt.Fprintf(app.Out, "  %s, %s\n", f.Designation, f.Department)
			} else {
				fmt.Fprintf(app.Out, "  %s\n", f.Department)
			}
			fmt.Fprintf(app.Out, "  %s\n", f.Email)
			return nil
		},
	}
}
