package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"meditrack/internal/service"
	"meditrack/internal/usecase"
	"meditrack/pkg/validator"

	"github.com/sirupsen/logrus"
)

// Console is the interactive menu front end. It reads one command per line
// from in and writes prompts and results to out.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
	log *logrus.Logger

	validator             *validator.CustomValidator
	doctorUsecase         usecase.DoctorUsecase
	patientUsecase        usecase.PatientUsecase
	appointmentUsecase    usecase.AppointmentUsecase
	dataUsecase           usecase.DataUsecase
	auditLogUsecase       usecase.AuditLogUsecase
	recommendationService service.RecommendationService
}

func NewConsole(
	in io.Reader,
	out io.Writer,
	log *logrus.Logger,
	validator *validator.CustomValidator,
	doctorUsecase usecase.DoctorUsecase,
	patientUsecase usecase.PatientUsecase,
	appointmentUsecase usecase.AppointmentUsecase,
	dataUsecase usecase.DataUsecase,
	auditLogUsecase usecase.AuditLogUsecase,
	recommendationService service.RecommendationService,
) *Console {
	return &Console{
		in:                    bufio.NewScanner(in),
		out:                   out,
		log:                   log,
		validator:             validator,
		doctorUsecase:         doctorUsecase,
		patientUsecase:        patientUsecase,
		appointmentUsecase:    appointmentUsecase,
		dataUsecase:           dataUsecase,
		auditLogUsecase:       auditLogUsecase,
		recommendationService: recommendationService,
	}
}

type menuItem struct {
	key    string
	label  string
	action func(ctx context.Context) error
}

// Run shows the main menu until the user exits or input ends.
// Data is never saved implicitly.
func (c *Console) Run(ctx context.Context) error {
	err := c.runMenu(ctx, "MediTrack Clinic Management", "Exit", []menuItem{
		{"1", "Manage Patients", c.patientMenu},
		{"2", "Manage Doctors", c.doctorMenu},
		{"3", "Manage Appointments & Billing", c.appointmentMenu},
		{"4", "Helper (Recommendations & Analytics)", c.helperMenu},
		{"5", "Save data", c.saveData},
		{"6", "View audit log", c.showAuditLog},
	})
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, context.Canceled) {
		return err
	}

	c.println("Exiting MediTrack. Goodbye!")
	return nil
}

// runMenu loops over one menu. Only input and context errors end it early;
// failures inside an action are reported to the user by the action itself.
func (c *Console) runMenu(ctx context.Context, title, backLabel string, items []menuItem) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.printf("\n=== %s ===\n", title)
		for _, item := range items {
			c.printf("%s. %s\n", item.key, item.label)
		}
		c.printf("0. %s\n", backLabel)

		choice, err := c.readLine("Enter choice: ")
		if err != nil {
			return err
		}
		if choice == "0" {
			return nil
		}

		action := findAction(items, choice)
		if action == nil {
			c.println("Invalid choice. Please try again.")
			continue
		}
		if err := action(ctx); err != nil {
			return err
		}
	}
}

func findAction(items []menuItem, key string) func(ctx context.Context) error {
	for _, item := range items {
		if item.key == key {
			return item.action
		}
	}
	return nil
}

// readLine prints prompt and returns the next trimmed input line.
// It returns io.EOF once input is exhausted.
func (c *Console) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// readInt returns ok=false after telling the user the value was not a number
func (c *Console) readInt(prompt string) (int, bool, error) {
	line, err := c.readLine(prompt)
	if err != nil {
		return 0, false, err
	}
	n, convErr := strconv.Atoi(line)
	if convErr != nil {
		c.printf("Invalid number: %q\n", line)
		return 0, false, nil
	}
	return n, true, nil
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(args ...interface{}) {
	fmt.Fprintln(c.out, args...)
}

func (c *Console) printError(err error) {
	var validationErr *usecase.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.printf("Invalid %s: %s\n", validationErr.Field, validationErr.Message)
	case errors.Is(err, usecase.ErrNotFound):
		c.printf("%s.\n", capitalize(err.Error()))
	default:
		c.log.Warnf("Console action failed: %+v", err)
		c.printf("Error: %v\n", err)
	}
}

// printValidation reports every failing field, sorted by name
func (c *Console) printValidation(err error) {
	messages := c.validator.FormatValidationErrors(err)
	fields := make([]string, 0, len(messages))
	for field := range messages {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	c.println("Validation failed:")
	for _, field := range fields {
		c.printf("  %s: %s\n", field, messages[field])
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
