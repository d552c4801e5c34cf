// Package commands wires the CLI: one subcommand per app screen.
package commands

import (
	"bufio"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"campus-services-client/internal/api"
	"campus-services-client/internal/config"
	"campus-services-client/internal/session"
)

// App carries the shared collaborators, built once in the root's
// PersistentPreRun.
type App struct {
	Config   *config.Config
	Log      *zap.Logger
	Sessions *session.Store
	API      *api.Client
	Out      io.Writer
	In       io.Reader
}

func Root() *cobra.Command {
	app := &App{}

	root := &cobra.Command{
		Use:           "campusapp",
		Short:         "Campus services client: appointments, complaints, faculty, parking",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.String("api-url", "http://localhost:3000/api", "backend base URL")
	pf.String("db-path", "campusapp.db", "path to local storage")
	pf.Duration("timeout", 15*time.Second, "request timeout")
	pf.Bool("verbose", false, "debug logging")

	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return app.init(cmd)
	}
	root.PersistentPostRun = func(*cobra.Command, []string) {
		app.close()
	}

	root.AddCommand(
		loginCmd(app),
		logoutCmd(app),
		signupCmd(app),
		whoamiCmd(app),
		forgotPasswordCmd(app),
		resetPasswordCmd(app),
		appointmentsCmd(app),
		complaintsCmd(app),
		facultyCmd(app),
		parkingCmd(app),
		mapCmd(app),
		healthCmd(app),
	)
	return root
}

func (a *App) init(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}
	a.Config = cfg

	lcfg := zap.NewDevelopmentConfig()
	if !cfg.Verbose {
		lcfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	log, err := lcfg.Build()
	if err != nil {
		return err
	}
	a.Log = log

	sessions, err := session.Open(cfg.DBPath, log)
	if err != nil {
		return err
	}
	a.Sessions = sessions
	a.API = api.New(cfg.APIURL, api.DefaultEndpoints(), sessions, cfg.Timeout, log)
	a.Out = cmd.OutOrStdout()
	a.In = cmd.InOrStdin()
	return nil
}

func (a *App) close() {
	if a.Sessions != nil {
		_ = a.Sessions.Close()
	}
	if a.Log != nil {
		_ = a.Log.Sync()
	}
}

// readLine reads one trimmed line from the command's input, for interactive
// prompts.
func (a *App) readLine() string {
	sc := bufio.NewScanner(a.In)
	if sc.Scan() {
		return strings.TrimSpace(sc.Text())
	}
	return ""
}
