// Package main provides bookingctl, a terminal client for the booking form.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"puresakura/models"
	"puresakura/services/booking"
	"puresakura/services/form"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const appName = "bookingctl"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Book a Pure Sakura spa treatment from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	logger := func() *zap.Logger { return newLogger(logLevel) }

	cmd.AddCommand(slotsCmd(), catalogCmd(), bookCmd(logger))
	return cmd
}

func slotsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slots",
		Short: "List the bookable time slots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range booking.GenerateTimeSlots() {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
}

func catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List treatments, durations and time slots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printCatalog(cmd.OutOrStdout(), models.Catalog{
				Treatments: models.Treatments,
				Durations:  models.Durations,
				TimeSlots:  booking.GenerateTimeSlots(),
			})
			return nil
		},
	}
}

type bookOptions struct {
	server  string
	timeout time.Duration
	fields  map[string]*string
}

func bookCmd(logger func() *zap.Logger) *cobra.Command {
	opts := bookOptions{fields: map[string]*string{}}
	for _, name := range models.RowColumns {
		opts.fields[name] = new(string)
	}

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Submit a booking to a running server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			submitter := form.NewHTTPSubmitter(opts.server, opts.timeout)
			ctrl := form.NewController(submitter, form.WithLogger(logger()))
			return runBook(cmd.Context(), cmd.OutOrStdout(), ctrl, opts.values())
		},
	}

	cmd.Flags().StringVar(&opts.server, "server", "http://localhost:8080", "Booking server base URL")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 15*time.Second, "Request timeout")
	cmd.Flags().StringVar(opts.fields[models.FieldFullName], "name", "", "Full name")
	cmd.Flags().StringVar(opts.fields[models.FieldContactNumber], "contact", "", "Contact number")
	cmd.Flags().StringVar(opts.fields[models.FieldEmailAddress], "email", "", "Email address")
	cmd.Flags().StringVar(opts.fields[models.FieldTreatment], "treatment", "", "Treatment name (run the catalog command for the list)")
	cmd.Flags().StringVar(opts.fields[models.FieldDuration], "duration", "", "Duration, e.g. 60mins")
	cmd.Flags().StringVar(opts.fields[models.FieldDate], "date", "", "Date as YYYY-MM-DD")
	cmd.Flags().StringVar(opts.fields[models.FieldTime], "time", "", "Time slot, e.g. \"3:00 PM\"")
	cmd.Flags().StringVar(opts.fields[models.FieldSpecialRequests], "notes", "", "Special requests")
	return cmd
}

func (o bookOptions) values() map[string]string {
	out := make(map[string]string, len(o.fields))
	for name, v := range o.fields {
		out[name] = *v
	}
	return out
}

// runBook fills the form, submits it once and reports the outcome.
func runBook(ctx context.Context, out io.Writer, ctrl *form.Controller, values map[string]string) error {
	for name, value := range values {
		if err := ctrl.SetField(name, value); err != nil {
			return err
		}
	}

	err := ctrl.Submit(ctx)
	var verr *form.ValidationError
	switch {
	case err == nil:
		fmt.Fprintln(out, "Booking Confirmed!")
		fmt.Fprintln(out, "Thank you for your booking. We'll contact you shortly to confirm your appointment.")
		return nil
	case errors.As(err, &verr):
		names := make([]string, 0, len(verr.Fields))
		for name := range verr.Fields {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(out, "%s: %s\n", name, verr.Fields[name])
		}
		return errors.New("booking not sent")
	default:
		return errors.New(ctrl.SubmitError())
	}
}

func printCatalog(out io.Writer, c models.Catalog) {
	fmt.Fprintf(out, "Treatments: %s\n", strings.Join(c.Treatments, ", "))
	fmt.Fprintf(out, "Durations:  %s\n", strings.Join(c.Durations, ", "))
	fmt.Fprintf(out, "Time slots: %s\n", strings.Join(c.TimeSlots, ", "))
}

func newLogger(level string) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
