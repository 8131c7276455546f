// evctl is a command-line front end for the VoltMate marketplace API,
// driving the same client and store layer the app embeds.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/muhammedyasars/VoltMate-sub000/internal/api"
	"github.com/muhammedyasars/VoltMate-sub000/internal/apiclient"
	"github.com/muhammedyasars/VoltMate-sub000/internal/config"
	"github.com/muhammedyasars/VoltMate-sub000/internal/domain"
	"github.com/muhammedyasars/VoltMate-sub000/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := apiclient.New(cfg.APIBaseURL, cfg.HTTPTimeout, apiclient.NewFileTokenStore(cfg.TokenFile), logger)
	stores := store.New(client)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	if err := run(ctx, stores, os.Args[1], os.Args[2:]); err != nil {
		logger.Error("command failed", "cmd", os.Args[1], "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stores *store.Stores, cmd string, args []string) error {
	switch cmd {
	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		email := fs.String("email", "", "account email")
		password := fs.String("password", "", "account password")
		role := fs.String("role", "user", "login surface: user, manager or admin")
		_ = fs.Parse(args)
		in := api.Credentials{Email: *email, Password: *password}
		var err error
		switch *role {
		case "manager":
			err = stores.Auth.ManagerLogin(ctx, in)
		case "admin":
			err = stores.Auth.AdminLogin(ctx, in)
		default:
			err = stores.Auth.Login(ctx, in)
		}
		if err != nil {
			return err
		}
		u := stores.Auth.User()
		fmt.Printf("logged in as %s (%s)\n", u.Name, u.Role)
		return nil

	case "logout":
		return stores.Auth.Logout(ctx)

	case "stations":
		fs := flag.NewFlagSet("stations", flag.ExitOnError)
		status := fs.String("status", "", "filter by status")
		search := fs.String("search", "", "search term")
		_ = fs.Parse(args)
		if err := stores.Stations.FetchStations(ctx, api.StationListParams{
			Status: domain.StationStatus(*status),
			Search: *search,
		}); err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCITY\tSTATUS\tFREE\tPRICE/kWh")
		for _, st := range stores.Stations.Stations() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d/%d\t%.2f\n",
				st.ID, st.Name, st.City, st.Status, st.AvailableChargers, st.Chargers, st.PricePerKWh)
		}
		return w.Flush()

	case "bookings":
		fs := flag.NewFlagSet("bookings", flag.ExitOnError)
		status := fs.String("status", "", "filter by status")
		page := fs.Int("page", 1, "page number")
		perPage := fs.Int("per-page", 20, "items per page")
		_ = fs.Parse(args)
		if err := stores.Bookings.FetchBookings(ctx, api.BookingListParams{}); err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSTATION\tDATE\tTIME\tSTATUS\tAMOUNT")
		for _, b := range stores.Bookings.Page(domain.BookingStatus(*status), *page, *perPage) {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s-%s\t%s\t%.2f\n",
				b.ID, b.StationName, b.Date, b.StartTime, b.EndTime, b.Status, b.Amount)
		}
		return w.Flush()

	case "book":
		fs := flag.NewFlagSet("book", flag.ExitOnError)
		station := fs.String("station", "", "station id")
		date := fs.String("date", "", "date (yyyy-mm-dd)")
		start := fs.String("start", "", "start time (hh:mm)")
		end := fs.String("end", "", "end time (hh:mm)")
		_ = fs.Parse(args)
		in := api.BookingInput{StationID: *station, Date: *date, StartTime: *start, EndTime: *end}
		if err := stores.Bookings.CheckAvailability(ctx, in); err != nil {
			return err
		}
		if av := stores.Bookings.Availability(); av != nil && !av.Available {
			return fmt.Errorf("no charger free at %s %s-%s", *date, *start, *end)
		}
		if err := stores.Bookings.CreateBooking(ctx, in); err != nil {
			return err
		}
		b := stores.Bookings.Current()
		fmt.Printf("booked %s at %s for %.2f\n", b.ID, b.StationName, b.Amount)
		return nil

	case "cancel":
		fs := flag.NewFlagSet("cancel", flag.ExitOnError)
		id := fs.String("id", "", "booking id")
		_ = fs.Parse(args)
		if err := stores.Bookings.CancelBooking(ctx, *id); err != nil {
			return err
		}
		fmt.Printf("booking %s cancelled\n", *id)
		return nil

	case "dashboard":
		fs := flag.NewFlagSet("dashboard", flag.ExitOnError)
		role := fs.String("role", "user", "dashboard: user, manager or admin")
		_ = fs.Parse(args)
		var err error
		switch *role {
		case "manager":
			err = stores.Dashboard.FetchManager(ctx)
		case "admin":
			err = stores.Dashboard.FetchAdmin(ctx)
		default:
			err = stores.Dashboard.FetchUser(ctx)
		}
		if err != nil {
			return err
		}
		st := stores.Dashboard.Stats()
		fmt.Printf("bookings: %d  active: %d  revenue: %.2f  energy: %.1f kWh\n",
			st.TotalBookings, st.ActiveSessions, st.TotalRevenue, st.EnergyDelivered)
		return nil

	case "report":
		fs := flag.NewFlagSet("report", flag.ExitOnError)
		start := fs.String("start", "", "start date (yyyy-mm-dd)")
		end := fs.String("end", "", "end date (yyyy-mm-dd)")
		out := fs.String("out", "revenue.xlsx", "output file")
		_ = fs.Parse(args)
		if err := stores.Admin.ExportRevenueReport(ctx, *start, *end, *out); err != nil {
			return err
		}
		fmt.Printf("report written to %s\n", *out)
		return nil

	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: evctl <command> [flags]

commands:
  login      log in (user, manager or admin surface)
  logout     log out and clear the stored session
  stations   list stations, optionally filtered
  bookings   list your bookings
  book       check a slot and create a booking
  cancel     cancel a booking
  dashboard  show dashboard stats
  report     export the admin revenue report to xlsx`)
}
