package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-records/internal/client"
	"clinic-records/internal/delivery/dto"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc"
	"github.com/spf13/pflag"
)

const usage = `Usage: clinicctl [flags] <doctors|patients|receptionists|all> [list|add]

Examples:
  clinicctl doctors --search cardio
  clinicctl patients add --name "John Doe" --age 35
  clinicctl receptionists add --name "Emily Davis" --shift Morning --salary 4500
  clinicctl all

Flags:
`

type options struct {
	server    string
	timeout   time.Duration
	search    string
	name      string
	specialty string
	shift     string
	age       *int
	salary    *float64
	verbose   bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	fs := pflag.NewFlagSet("clinicctl", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	defaultServer := os.Getenv("CLINIC_SERVER")
	if defaultServer == "" {
		defaultServer = "http://localhost:8080"
	}

	var opts options
	var age int
	var salary float64
	fs.StringVarP(&opts.server, "server", "s", defaultServer, "API base URL (env CLINIC_SERVER)")
	fs.DurationVar(&opts.timeout, "timeout", client.DefaultTimeout, "per-request timeout")
	fs.StringVarP(&opts.search, "search", "q", "", "only show records with a field containing this text")
	fs.StringVar(&opts.name, "name", "", "name of the record to add")
	fs.StringVar(&opts.specialty, "specialty", "", "doctor specialty")
	fs.StringVar(&opts.shift, "shift", "", "receptionist shift")
	fs.IntVar(&age, "age", 0, "patient age")
	fs.Float64Var(&salary, "salary", 0, "receptionist salary")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "log requests")

	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.Changed("age") {
		opts.age = &age
	}
	if fs.Changed("salary") {
		opts.salary = &salary
	}
	if opts.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	positional := fs.Args()
	if len(positional) == 0 {
		fs.Usage()
		return 2
	}
	command := "list"
	if len(positional) > 1 {
		command = positional[1]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := client.New(opts.server, &http.Client{Timeout: opts.timeout})
	log.Debugf("Using API at %s", opts.server)

	var err error
	switch positional[0] {
	case "doctors":
		err = runResource(ctx, stdout, log, client.NewPage(api, client.Doctors), command, opts, func() *dto.CreateDoctorRequest {
			return &dto.CreateDoctorRequest{Name: opts.name, Specialty: opts.specialty}
		})
	case "patients":
		err = runResource(ctx, stdout, log, client.NewPage(api, client.Patients), command, opts, func() *dto.CreatePatientRequest {
			return &dto.CreatePatientRequest{Name: opts.name, Age: opts.age}
		})
	case "receptionists":
		err = runResource(ctx, stdout, log, client.NewPage(api, client.Receptionists), command, opts, func() *dto.CreateReceptionistRequest {
			return &dto.CreateReceptionistRequest{Name: opts.name, Shift: opts.shift, Salary: opts.salary}
		})
	case "all":
		err = runAll(ctx, stdout, api, opts.search)
	default:
		fs.Usage()
		return 2
	}

	if err != nil {
		log.Debugf("Command failed: %+v", err)
		return 1
	}
	return 0
}

func runResource[T any, Req any](
	ctx context.Context,
	out io.Writer,
	log *logrus.Logger,
	page *client.Page[T, Req],
	command string,
	opts options,
	form func() *Req,
) error {
	resource := page.Resource()

	switch command {
	case "list":
		err := page.Load(ctx)
		if renderErr := client.Render(out, resource, page.State, opts.search); renderErr != nil {
			return renderErr
		}
		return err

	case "add":
		if _, err := page.Submit(ctx, form()); err != nil {
			fmt.Fprintf(out, "✗ Failed to add %s: %v\n", resource.Singular, err)
			return err
		}
		log.Debugf("Created %s, reloaded %d records", resource.Singular, len(page.State.Records))
		fmt.Fprintf(out, "✓ %s added successfully!\n", resource.Singular)
		return client.Render(out, resource, page.State, "")

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

// runAll loads the three views concurrently and prints them in a fixed order.
func runAll(ctx context.Context, out io.Writer, api *client.Client, search string) error {
	doctors := client.NewPage(api, client.Doctors)
	patients := client.NewPage(api, client.Patients)
	receptionists := client.NewPage(api, client.Receptionists)

	var wg conc.WaitGroup
	wg.Go(func() { _ = doctors.Load(ctx) })
	wg.Go(func() { _ = patients.Load(ctx) })
	wg.Go(func() { _ = receptionists.Load(ctx) })
	wg.Wait()

	sections := []func() error{
		func() error { return client.Render(out, doctors.Resource(), doctors.State, search) },
		func() error { return client.Render(out, patients.Resource(), patients.State, search) },
		func() error { return client.Render(out, receptionists.Resource(), receptionists.State, search) },
	}
	titles := []string{"Doctors", "Patients", "Receptionists"}

	for i, render := range sections {
		fmt.Fprintf(out, "== %s ==\n", titles[i])
		if err := render(); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	for _, err := range []error{doctors.State.Err, patients.State.Err, receptionists.State.Err} {
		if err != nil {
			return err
		}
	}
	return nil
}
