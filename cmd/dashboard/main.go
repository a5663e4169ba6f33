package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Skotchmaster/restaurant_ordering/internal/dashboard"
	"github.com/Skotchmaster/restaurant_ordering/pkg/config"
	"github.com/Skotchmaster/restaurant_ordering/pkg/logging"
)

const usage = `usage: dashboard [flags] <login|show|logout>

  login -u <username> -p <password>   sign in and store the session
  show  [-days N] [-period day|week|month]
  logout                              forget the stored session
`

func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "sunrise", "admin_session.json")
}

func main() {
	global := flag.NewFlagSet("dashboard", flag.ExitOnError)
	apiURL := global.String("api", config.EnvDefault("DASHBOARD_API_URL", "http://localhost:8080/api"), "backend API root")
	sessionPath := global.String("session", config.EnvDefault("DASHBOARD_SESSION", defaultSessionPath()), "session file")
	logLevel := global.String("log-level", "warn", "log level")
	global.Usage = func() { fmt.Fprint(os.Stderr, usage); global.PrintDefaults() }
	_ = global.Parse(os.Args[1:])

	args := global.Args()
	if len(args) == 0 {
		global.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	ctx = logging.IntoContext(ctx, logging.NewWithWriter(os.Stderr, *logLevel))

	store := dashboard.FileStore{Path: *sessionPath}
	client := dashboard.NewClient(*apiURL)

	var err error
	switch args[0] {
	case "login":
		err = login(ctx, client, store, args[1:])
	case "show":
		err = show(ctx, client, store, args[1:])
	case "logout":
		err = store.Clear()
		if err == nil {
			fmt.Println("Logged out.")
		}
	default:
		global.Usage()
		os.Exit(2)
	}

	if errors.Is(err, dashboard.ErrUnauthenticated) {
		fmt.Fprintln(os.Stderr, "Not logged in. Run: dashboard login -u <username> -p <password>")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "dashboard: %v\n", err)
		os.Exit(1)
	}
}

func login(ctx context.Context, client *dashboard.Client, store dashboard.SessionStore, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	user := fs.String("u", "", "admin username")
	pass := fs.String("p", "", "admin password")
	_ = fs.Parse(args)
	if *user == "" || *pass == "" {
		return errors.New("login needs -u and -p")
	}

	sess, err := client.Login(ctx, *user, *pass)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := store.Save(sess); err != nil {
		return err
	}
	fmt.Printf("Logged in as %s.\n", sess.Admin.FullName)
	return nil
}

func show(ctx context.Context, client *dashboard.Client, store dashboard.SessionStore, args []string) error {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	days := fs.Int("days", dashboard.DefaultAnalyticsDays, "days of order analytics")
	period := fs.String("period", dashboard.DefaultReportPeriod, "revenue report period")
	_ = fs.Parse(args)

	sess, err := store.Load()
	if err != nil {
		return err
	}

	r := &dashboard.Renderer{
		API:    client,
		Demo:   dashboard.RandomDemo{},
		Days:   *days,
		Period: *period,
	}
	view, err := r.Build(ctx, sess)
	if err != nil {
		return err
	}
	return view.WriteText(os.Stdout)
}
